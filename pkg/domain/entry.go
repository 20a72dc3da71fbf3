package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entry is a registered identifier.
type Entry struct {
	// ID is the registered UUID. Entries are ordered by its unsigned 128-bit
	// value, which equals the byte-wise order of its big-endian form.
	ID uuid.UUID
	// CreatedAt is set by the storage layer when the entry is stored.
	CreatedAt time.Time
}
