package uuid62json

import (
	"uuid62/pkg/uuid62"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

var defaultCodec = New(DefaultOptions()) //nolint: gochecknoglobals

// ID is a uuid.UUID that is written as base62 in JSON and text encodings and
// read from either base62 or the canonical form. Struct fields that must keep
// the canonical form should use uuid.UUID instead.
type ID uuid.UUID

// UUID returns id as a uuid.UUID.
func (id ID) UUID() uuid.UUID { return uuid.UUID(id) }

// String returns the base62 form of id.
func (id ID) String() string { return uuid62.ToBase62(uuid.UUID(id)) }

// Encode implements jx-style encoding.
func (id ID) Encode(e *jx.Encoder) {
	defaultCodec.Encode(e, uuid.UUID(id))
}

// Decode implements jx-style decoding.
func (id *ID) Decode(d *jx.Decoder) error {
	if id == nil {
		return errors.New("invalid: unable to decode ID to nil")
	}

	v, err := defaultCodec.Decode(d)
	if err != nil {
		return err
	}
	*id = ID(v)

	return nil
}

// MarshalJSON implements json.Marshaler.
func (id ID) MarshalJSON() ([]byte, error) {
	return defaultCodec.Marshal(uuid.UUID(id))
}

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(data []byte) error {
	return id.Decode(jx.DecodeBytes(data))
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	return uuid62.AppendEncode(nil, uuid62.FromUUID(uuid.UUID(id))), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(data []byte) error {
	v, err := defaultCodec.Parse(string(data))
	if err != nil {
		return err
	}
	*id = ID(v)

	return nil
}
