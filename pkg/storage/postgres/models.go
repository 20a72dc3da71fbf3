package postgres

import (
	"database/sql/driver"
	"time"
	"uuid62/pkg/domain"
	"uuid62/pkg/uuid62"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

// pgID stores a UUID as a 16-byte BYTEA in big-endian order, so the database
// orders rows by the identifier's 128-bit value.
type pgID uuid.UUID

// Value implements driver.Valuer.
func (id pgID) Value() (driver.Value, error) {
	return uuid62.EncodeBytes(uuid.UUID(id)), nil
}

// Scan implements sql.Scanner. Rows holding anything but 16 bytes are rejected
// with uuid62.ErrInvalidLength.
func (id *pgID) Scan(src any) error {
	b, ok := src.([]byte)
	if !ok {
		return errors.Errorf("unsupported id column type %T", src)
	}

	v, err := uuid62.DecodeBytes(b)
	if err != nil {
		return errors.Wrap(err, "decode id column")
	}
	*id = pgID(v)

	return nil
}

type PgEntry struct {
	ID        pgID      `db:"id"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgEntry) ToDomain() *domain.Entry {
	return &domain.Entry{
		ID:        uuid.UUID(p.ID),
		CreatedAt: p.CreatedAt,
	}
}

func (p *PgEntry) FromDomain(entry domain.Entry) {
	*p = PgEntry{
		ID:        pgID(entry.ID),
		CreatedAt: entry.CreatedAt,
	}
}

func pgEntriesToDomain(entries []PgEntry) []domain.Entry {
	out := make([]domain.Entry, 0, len(entries))
	for i := range entries {
		out = append(out, *entries[i].ToDomain())
	}

	return out
}
