package uuid62

import (
	"encoding/binary"
	"math/bits"

	"github.com/google/uuid"
)

// Uint128 is an unsigned 128-bit integer stored as two 64-bit words.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// FromUUID interprets the UUID as a big-endian 128-bit integer: the most
// significant 64 bits of the UUID become Hi, the least significant become Lo.
func FromUUID(id uuid.UUID) Uint128 {
	return Uint128{
		Hi: binary.BigEndian.Uint64(id[:8]),
		Lo: binary.BigEndian.Uint64(id[8:]),
	}
}

// UUID is the inverse of FromUUID.
func (u Uint128) UUID() uuid.UUID {
	var id uuid.UUID
	binary.BigEndian.PutUint64(id[:8], u.Hi)
	binary.BigEndian.PutUint64(id[8:], u.Lo)

	return id
}

// IsZero reports whether u is 0.
func (u Uint128) IsZero() bool { return u.Hi == 0 && u.Lo == 0 }

// quoRem divides u by d and returns the quotient and remainder. d must not be 0.
func (u Uint128) quoRem(d uint64) (Uint128, uint64) {
	hi, r := bits.Div64(0, u.Hi, d)
	// r < d here, which is what Div64 requires of its high word.
	lo, r := bits.Div64(r, u.Lo, d)

	return Uint128{Hi: hi, Lo: lo}, r
}

// mulAdd returns u*m + a and whether the result overflowed 128 bits.
func (u Uint128) mulAdd(m, a uint64) (Uint128, bool) {
	carry, lo := bits.Mul64(u.Lo, m)
	top, hi := bits.Mul64(u.Hi, m)

	hi, c1 := bits.Add64(hi, carry, 0)
	lo, c2 := bits.Add64(lo, a, 0)
	hi, c3 := bits.Add64(hi, 0, c2)

	return Uint128{Hi: hi, Lo: lo}, top != 0 || c1 != 0 || c3 != 0
}
