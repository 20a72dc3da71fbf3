package storage

import (
	"context"
	"uuid62/pkg/domain"

	"github.com/google/uuid"
)

// EntryPage groups a page of entries together with the ID to continue after
// when fetching the next page.
type EntryPage struct {
	// Entries contains the current page, in ascending ID order.
	Entries []domain.Entry
	// NextCursor is the last ID of this page. It is nil when there is no next page.
	NextCursor *uuid.UUID
}

// EntryStorage defines persistence operations for registered identifiers.
type EntryStorage interface {
	// StoreEntry inserts an entry and returns it as stored. CreatedAt is
	// always assigned by the store; a value set by the caller is ignored. It
	// returns nil without an error when an entry with the same ID already
	// exists.
	StoreEntry(ctx context.Context, entry domain.Entry) (*domain.Entry, error)
	// EntryByID fetches an entry by ID. Returns nil when not found.
	EntryByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	// DeleteEntry removes an entry and returns it, or nil if it was not found.
	DeleteEntry(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	// Entries returns up to limit entries with an ID greater than after, in
	// ascending ID order. A nil after starts from the smallest ID.
	Entries(ctx context.Context, after *uuid.UUID, limit uint) (EntryPage, error)
}
