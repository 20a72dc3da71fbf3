package uuid62

import (
	"unicode/utf8"
)

const (
	// Alphabet lists the base62 digits in value order: '0' is 0, 'a' is 10,
	// 'A' is 36 and 'Z' is 61. It matches the digit order of math/big.
	Alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// EncodedLen is the fixed width of a base62-encoded 128-bit value.
	// 62^21 < 2^128 <= 62^22, so 22 digits always suffice.
	EncodedLen = 22

	base = uint64(len(Alphabet))
)

// invalidDigit marks bytes that are not part of Alphabet in decodeMap.
const invalidDigit = 0xFF

var decodeMap = func() [256]byte { //nolint: gochecknoglobals
	var m [256]byte
	for i := range m {
		m[i] = invalidDigit
	}
	for i := range len(Alphabet) {
		m[Alphabet[i]] = byte(i)
	}

	return m
}()

// Encode returns the 22-character base62 representation of v, left-padded
// with the zero digit.
func Encode(v Uint128) string {
	var buf [EncodedLen]byte

	return string(encode(&buf, v))
}

// AppendEncode appends the 22-character base62 representation of v to dst.
func AppendEncode(dst []byte, v Uint128) []byte {
	var buf [EncodedLen]byte

	return append(dst, encode(&buf, v)...)
}

func encode(buf *[EncodedLen]byte, v Uint128) []byte {
	i := EncodedLen
	for !v.IsZero() {
		var r uint64
		v, r = v.quoRem(base)
		i--
		buf[i] = Alphabet[r]
	}
	for i > 0 {
		i--
		buf[i] = Alphabet[0]
	}

	return buf[:]
}

// Decode parses a 22-character base62 string. It fails with ErrInvalidLength
// when s is not exactly EncodedLen characters long, with a *CharacterError for
// the first symbol outside Alphabet and with ErrOverflow when the value does
// not fit in 128 bits.
func Decode(s string) (Uint128, error) {
	if n := utf8.RuneCountInString(s); n != EncodedLen {
		return Uint128{}, &LengthError{Unit: "characters", Want: EncodedLen, Got: n}
	}

	var v Uint128
	// s is known to hold EncodedLen runes; a multi-byte rune is never a
	// digit, so byte offsets and character positions agree until the first
	// error.
	for i := range len(s) {
		d := decodeMap[s[i]]
		if d == invalidDigit {
			r, _ := utf8.DecodeRuneInString(s[i:])

			return Uint128{}, &CharacterError{Char: r, Index: i}
		}

		var overflow bool
		if v, overflow = v.mulAdd(base, uint64(d)); overflow {
			return Uint128{}, ErrOverflow
		}
	}

	return v, nil
}
