package uuid62

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// PackedAlphabet is the symbol table of the packed encoding: the RFC 2045
// base64 alphabet without its two punctuation symbols.
const PackedAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const (
	// 6-bit groups with the middle four bits set (30, 31, 62, 63) cannot all
	// be represented with 62 symbols; they are written as their low 5 bits.
	compactMask = 0x1E
	mask5Bits   = 0x1F
)

var packedDecodeMap = func() [256]byte { //nolint: gochecknoglobals
	var m [256]byte
	for i := range m {
		m[i] = invalidDigit
	}
	for i := range len(PackedAlphabet) {
		m[PackedAlphabet[i]] = byte(i)
	}

	return m
}()

// EncodePacked encodes data with the variable-length bit-packing base62 scheme
// used by earlier uuid62 releases. Bits are consumed six at a time, least
// significant bit of each byte first; a group whose middle four bits are all
// set is emitted as a 5-bit symbol and its top bit is re-read with the next
// group. A 16-byte input produces 22 to 26 symbols.
func EncodePacked(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data)*8/5 + 1)

	r := bitReader{buf: data}
	for r.more() {
		bits := r.read(6)
		if bits&compactMask == compactMask {
			r.off--
			bits &= mask5Bits
		}
		sb.WriteByte(PackedAlphabet[bits])
	}

	return sb.String()
}

// DecodePacked is the inverse of EncodePacked. Trailing bits that do not fill
// a whole byte are dropped. Every symbol before the first invalid one is
// ASCII, so the reported index is also a character position.
//
// A payload never needs more than len(s)*6/8 bytes; input whose symbols carry
// bits past that is rejected with a *LengthError counting bits.
func DecodePacked(s string) ([]byte, error) {
	w := bitWriter{buf: make([]byte, len(s)*6/8)}
	last := len(s) - 1
	for i := range len(s) {
		bits := packedDecodeMap[s[i]]
		if bits == invalidDigit {
			r, _ := utf8.DecodeRuneInString(s[i:])

			return nil, &CharacterError{Char: r, Index: i}
		}

		var n int
		switch {
		case bits&compactMask == compactMask:
			n = 5
		case i == last:
			// the last symbol only completes the current byte
			n = w.bitsToByte()
		default:
			n = 6
		}
		if !w.write(n, bits) {
			return nil, &LengthError{Unit: "bits", Want: len(w.buf) * 8, Got: w.off + n}
		}
	}

	return w.buf[:w.off/8], nil
}

// ToPackedBase62 returns the packed encoding of the 16 bytes of id.
func ToPackedBase62(id uuid.UUID) string {
	return EncodePacked(EncodeBytes(id))
}

// FromPackedBase62 parses a packed-encoded UUID. The decoded payload must be
// exactly 16 bytes long.
func FromPackedBase62(s string) (uuid.UUID, error) {
	b, err := DecodePacked(s)
	if err != nil {
		return uuid.Nil, err
	}

	return DecodeBytes(b)
}

type bitReader struct {
	buf []byte
	off int
}

func (r *bitReader) more() bool { return r.off < len(r.buf)*8 }

// read returns the next n (n < 8) bits; bits past the end of buf read as 0.
func (r *bitReader) read(n int) byte {
	bitNum, byteNum := r.off%8, r.off/8
	first := min(8-bitNum, n)
	second := n - first

	res := (r.buf[byteNum] >> bitNum) & (1<<first - 1)
	if second > 0 && byteNum+1 < len(r.buf) {
		res |= (r.buf[byteNum+1] & (1<<second - 1)) << first
	}
	r.off += n

	return res
}

type bitWriter struct {
	buf []byte
	off int
}

// bitsToByte is the number of bits needed to reach the next byte boundary.
func (w *bitWriter) bitsToByte() int {
	if bit := w.off % 8; bit != 0 {
		return 8 - bit
	}

	return 0
}

// write appends the low n bits of bits. It reports false, writing nothing,
// when they do not fit in buf.
func (w *bitWriter) write(n int, bits byte) bool {
	if n == 0 {
		return true
	}
	if w.off+n > len(w.buf)*8 {
		return false
	}

	bitNum, byteNum := w.off%8, w.off/8
	first := min(8-bitNum, n)
	second := n - first

	w.buf[byteNum] |= (bits & (1<<first - 1)) << bitNum
	if second > 0 {
		w.buf[byteNum+1] |= (bits >> first) & (1<<second - 1)
	}
	w.off += n

	return true
}
