package uuid62

import (
	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

// Format names one of the text forms a UUID can be rendered in.
type Format string

const (
	// FormatBase62 is the fixed-width 22-character positional encoding.
	FormatBase62 Format = "base62"
	// FormatPacked is the variable-length bit-packing encoding.
	FormatPacked Format = "packed"
	// FormatCanonical is the 36-character hyphenated hexadecimal form.
	FormatCanonical Format = "canonical"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown uuid format")

// ParseFormat validates a format name. The empty string selects FormatBase62.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case "":
		return FormatBase62, nil
	case FormatBase62, FormatPacked, FormatCanonical:
		return f, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%q", s)
	}
}

// Encode renders id in format f. Unknown formats fall back to base62.
func (f Format) Encode(id uuid.UUID) string {
	switch f {
	case FormatPacked:
		return ToPackedBase62(id)
	case FormatCanonical:
		return id.String()
	default:
		return ToBase62(id)
	}
}

// Parse reads a UUID written in format f.
func (f Format) Parse(s string) (uuid.UUID, error) {
	switch f {
	case FormatPacked:
		return FromPackedBase62(s)
	case FormatCanonical:
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, errors.Wrap(err, "parse canonical uuid")
		}

		return id, nil
	default:
		return FromBase62(s)
	}
}

// ParseLenient reads s in format f and, when that fails and f is not already
// canonical, retries with the canonical hyphenated form. The error of the
// first attempt is returned when both fail.
func (f Format) ParseLenient(s string) (uuid.UUID, error) {
	id, err := f.Parse(s)
	if err == nil || f == FormatCanonical {
		return id, err
	}
	if id, cerr := uuid.Parse(s); cerr == nil {
		return id, nil
	}

	return uuid.Nil, err
}
