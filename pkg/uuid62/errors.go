package uuid62

import (
	"fmt"

	"github.com/go-faster/errors"
)

// Error kinds reported by the codecs. They are sentinels meant to be matched
// with errors.Is; the concrete errors returned carry more detail.
var (
	// ErrInvalidLength is returned when a byte or character sequence does not
	// have the exact size the codec requires.
	ErrInvalidLength = errors.New("invalid length")
	// ErrInvalidCharacter is returned when a text encoding contains a symbol
	// outside of the codec's alphabet.
	ErrInvalidCharacter = errors.New("invalid character")
	// ErrOverflow is returned when a decoded value does not fit in 128 bits.
	ErrOverflow = errors.New("value overflows 128 bits")
)

// LengthError reports an input of the wrong size.
type LengthError struct {
	// Unit is what was counted: "bytes", "characters" or "bits".
	Unit string
	Want int
	Got  int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s: want %d %s, got %d", ErrInvalidLength, e.Want, e.Unit, e.Got)
}

// Is makes errors.Is(err, ErrInvalidLength) match.
func (e *LengthError) Is(target error) bool { return target == ErrInvalidLength }

// CharacterError reports the first symbol of a text encoding that is not part
// of the alphabet, together with its 0-based character position.
type CharacterError struct {
	Char  rune
	Index int
}

func (e *CharacterError) Error() string {
	return fmt.Sprintf("%s %q at index %d", ErrInvalidCharacter, e.Char, e.Index)
}

// Is makes errors.Is(err, ErrInvalidCharacter) match.
func (e *CharacterError) Is(target error) bool { return target == ErrInvalidCharacter }
