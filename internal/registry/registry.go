// Package registry implements the identifier registry: a set of UUIDs that
// clients add, look up, page through and delete using compact identifiers.
package registry

import (
	"context"
	"fmt"
	"uuid62/internal/config"
	"uuid62/pkg/domain"
	"uuid62/pkg/logger"
	"uuid62/pkg/serrors"
	"uuid62/pkg/storage"
	"uuid62/pkg/uuid62"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Options configure list paging.
type Options struct {
	// DefaultLimit is used when List is called with a zero limit.
	DefaultLimit uint
	// MaxLimit caps the limit accepted by List.
	MaxLimit uint
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		DefaultLimit: cfg.Registry.DefaultLimit,
		MaxLimit:     cfg.Registry.MaxLimit,
	}
}

// maxRandomAttempts bounds AddRandom retries on the (practically impossible)
// collision of a freshly generated UUID with a registered one.
const maxRandomAttempts = 3

// registry is the concrete implementation of the Registry interface.
type registry struct {
	options Options
	storage storage.Storage
	newID   func() (uuid.UUID, error)
}

// Add registers id. It returns a conflict error when id is already registered.
func (r registry) Add(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	var entry *domain.Entry
	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err := tx.StoreEntry(ctx, domain.Entry{ID: id})
		if err != nil {
			return fmt.Errorf("could not store entry: %w", err)
		}
		if stored == nil {
			return serrors.With(serrors.ErrConflict, "entry %s already exists", uuid62.ToBase62(id))
		}
		entry = stored

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not add entry: %w", err)
	}

	logger.Info(ctx, "entry added", logger.UUID("id", id))

	return entry, nil
}

// AddRandom registers a freshly generated random UUID.
func (r registry) AddRandom(ctx context.Context) (*domain.Entry, error) {
	for attempt := 1; ; attempt++ {
		id, err := r.newID()
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrInternal, err, "could not generate id")
		}

		entry, err := r.Add(ctx, id)
		if err == nil || attempt == maxRandomAttempts || serrors.KindOf(err) != serrors.ErrConflict {
			return entry, err
		}

		logger.Warn(ctx, "generated id collided with a registered one", logger.UUID("id", id),
			zap.Int("attempt", attempt))
	}
}

// Get returns the entry registered under id, or a not-found error.
func (r registry) Get(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	entry, err := r.storage.EntryByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get entry: %w", err)
	}
	if entry == nil {
		return nil, serrors.With(serrors.ErrNotFound, "entry %s not found", uuid62.ToBase62(id))
	}

	return entry, nil
}

// List returns a page of entries in ascending 128-bit order. The cursor is
// the base62 form of the last ID of the previous page; the returned cursor is
// empty on the last page. A zero limit selects the default and larger limits
// are capped.
func (r registry) List(ctx context.Context, cursor string, limit uint) ([]domain.Entry, string, error) {
	var after *uuid.UUID
	if cursor != "" {
		id, err := uuid62.FromBase62(cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		after = &id
	}

	switch {
	case limit == 0:
		limit = r.options.DefaultLimit
	case limit > r.options.MaxLimit:
		limit = r.options.MaxLimit
	}

	page, err := r.storage.Entries(ctx, after, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not list entries: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = uuid62.ToBase62(*page.NextCursor)
	}

	return page.Entries, next, nil
}

// Delete removes the entry registered under id, or returns a not-found error.
func (r registry) Delete(ctx context.Context, id uuid.UUID) error {
	entry, err := r.storage.DeleteEntry(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete entry: %w", err)
	}
	if entry == nil {
		return serrors.With(serrors.ErrNotFound, "entry %s not found", uuid62.ToBase62(id))
	}

	logger.Info(ctx, "entry deleted", logger.UUID("id", id))

	return nil
}

// New creates a new Registry backed by the provided storage and configured
// with the given options.
func New(storage storage.Storage, options Options) Registry {
	return newRegistry(storage, options, uuid.NewRandom)
}

func newRegistry(storage storage.Storage, options Options, newID func() (uuid.UUID, error)) Registry {
	if options.DefaultLimit == 0 {
		options.DefaultLimit = 20
	}
	if options.MaxLimit < options.DefaultLimit {
		options.MaxLimit = options.DefaultLimit
	}

	return &registry{
		options: options,
		storage: storage,
		newID:   newID,
	}
}
