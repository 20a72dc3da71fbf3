// Package uuid62json reads and writes UUIDs in JSON documents using the
// compact uuid62 encodings. Output uses a single configured form; input
// accepts that form and, optionally, the canonical hyphenated form, so
// documents written by other systems keep decoding.
package uuid62json

import (
	"strings"
	"uuid62/pkg/uuid62"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

// ErrNotString is returned when a UUID is expected but the JSON value is not
// a string.
var ErrNotString = errors.New("uuid must be a json string")

// Options configure a Codec.
type Options struct {
	// Format is the form written by Encode and tried first by Decode.
	Format uuid62.Format
	// AcceptCanonical makes Decode fall back to the canonical hyphenated form
	// when the value is not valid in Format.
	AcceptCanonical bool
}

// DefaultOptions writes base62 and accepts both base62 and canonical input.
func DefaultOptions() Options {
	return Options{Format: uuid62.FormatBase62, AcceptCanonical: true}
}

// Codec encodes and decodes UUID values with jx. It holds no mutable state
// and is safe for concurrent use.
type Codec struct {
	opts Options
}

// New creates a Codec. An empty Format selects base62.
func New(opts Options) *Codec {
	if opts.Format == "" {
		opts.Format = uuid62.FormatBase62
	}

	return &Codec{opts: opts}
}

// Options returns the configuration the codec was built with.
func (c *Codec) Options() Options { return c.opts }

// Text renders id as a plain string in the configured form.
func (c *Codec) Text(id uuid.UUID) string {
	return c.opts.Format.Encode(id)
}

// Parse reads a plain string in the configured form, falling back to the
// canonical form when AcceptCanonical is set.
func (c *Codec) Parse(s string) (uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if c.opts.AcceptCanonical {
		return c.opts.Format.ParseLenient(s)
	}

	return c.opts.Format.Parse(s)
}

// Encode writes id as a JSON string.
func (c *Codec) Encode(e *jx.Encoder, id uuid.UUID) {
	e.Str(c.Text(id))
}

// Decode reads a UUID from the next JSON value, which must be a string.
func (c *Codec) Decode(d *jx.Decoder) (uuid.UUID, error) {
	if tt := d.Next(); tt != jx.String {
		return uuid.Nil, errors.Wrapf(ErrNotString, "got %s", tt)
	}

	s, err := d.Str()
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "read uuid string")
	}

	id, err := c.Parse(s)
	if err != nil {
		return uuid.Nil, errors.Wrapf(err, "decode uuid %q", s)
	}

	return id, nil
}

// Marshal returns the JSON encoding of id.
func (c *Codec) Marshal(id uuid.UUID) ([]byte, error) {
	var e jx.Encoder
	c.Encode(&e, id)

	return e.Bytes(), nil
}

// Unmarshal parses a JSON document holding a single UUID string.
func (c *Codec) Unmarshal(data []byte) (uuid.UUID, error) {
	return c.Decode(jx.DecodeBytes(data))
}
