package uuid62

import "github.com/google/uuid"

// ToBase62 returns the 22-character base62 form of id.
func ToBase62(id uuid.UUID) string {
	return Encode(FromUUID(id))
}

// FromBase62 parses the 22-character base62 form of a UUID. Errors are the
// ones returned by Decode.
func FromBase62(s string) (uuid.UUID, error) {
	v, err := Decode(s)
	if err != nil {
		return uuid.Nil, err
	}

	return v.UUID(), nil
}

// MustFromBase62 is like FromBase62 but panics on error. It is meant for
// constants and tests.
func MustFromBase62(s string) uuid.UUID {
	id, err := FromBase62(s)
	if err != nil {
		panic(err)
	}

	return id
}
