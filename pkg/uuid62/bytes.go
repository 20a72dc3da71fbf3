package uuid62

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// ByteLen is the size of the binary encoding of a UUID.
const ByteLen = 16

// EncodeBytes returns the 16-byte big-endian encoding of id: the most
// significant 64-bit word first, then the least significant one.
func EncodeBytes(id uuid.UUID) []byte {
	return AppendBytes(make([]byte, 0, ByteLen), id)
}

// AppendBytes appends the 16-byte encoding of id to dst.
func AppendBytes(dst []byte, id uuid.UUID) []byte {
	v := FromUUID(id)
	dst = binary.BigEndian.AppendUint64(dst, v.Hi)

	return binary.BigEndian.AppendUint64(dst, v.Lo)
}

// DecodeBytes rebuilds a UUID from its 16-byte encoding. Any bit pattern is
// accepted; only the length is checked.
func DecodeBytes(b []byte) (uuid.UUID, error) {
	if len(b) != ByteLen {
		return uuid.Nil, &LengthError{Unit: "bytes", Want: ByteLen, Got: len(b)}
	}

	return Uint128{
		Hi: binary.BigEndian.Uint64(b[:8]),
		Lo: binary.BigEndian.Uint64(b[8:]),
	}.UUID(), nil
}
