// Package memory implements storage.Storage in process memory. It is the
// default driver and needs no external services; all data is lost on exit.
package memory

import (
	"bytes"
	"context"
	"slices"
	"sync"
	"sync/atomic"
	"time"
	"uuid62/pkg/domain"
	"uuid62/pkg/storage"

	"github.com/google/uuid"
)

// entrySet is the unsynchronized state shared by Memory and its transactions.
type entrySet map[uuid.UUID]domain.Entry

func (s entrySet) store(entry domain.Entry, now time.Time) *domain.Entry {
	if _, ok := s[entry.ID]; ok {
		return nil
	}
	entry.CreatedAt = now
	s[entry.ID] = entry

	return &entry
}

func (s entrySet) byID(id uuid.UUID) *domain.Entry {
	entry, ok := s[id]
	if !ok {
		return nil
	}

	return &entry
}

func (s entrySet) remove(id uuid.UUID) *domain.Entry {
	entry, ok := s[id]
	if !ok {
		return nil
	}
	delete(s, id)

	return &entry
}

func (s entrySet) page(after *uuid.UUID, limit uint) storage.EntryPage {
	entries := make([]domain.Entry, 0, len(s))
	for id, entry := range s {
		if after != nil && bytes.Compare(id[:], after[:]) <= 0 {
			continue
		}
		entries = append(entries, entry)
	}
	slices.SortFunc(entries, func(a, b domain.Entry) int {
		return bytes.Compare(a.ID[:], b.ID[:])
	})

	var nextCursor *uuid.UUID
	if uint(len(entries)) > limit {
		entries = entries[:limit]
		if limit > 0 {
			last := entries[len(entries)-1].ID
			nextCursor = &last
		}
	}

	return storage.EntryPage{Entries: entries, NextCursor: nextCursor}
}

func (s entrySet) clone() entrySet {
	out := make(entrySet, len(s))
	for id, entry := range s {
		out[id] = entry
	}

	return out
}

// Memory is an in-process storage.Storage. Reads see committed state; writes
// and transactions are serialized.
type Memory struct {
	// writeMu serializes writers; a transaction holds it from Begin until
	// Commit or Rollback.
	writeMu sync.Mutex
	// mu guards entries.
	mu      sync.RWMutex
	entries entrySet

	closed atomic.Bool
	now    func() time.Time
}

var _ storage.Storage = (*Memory)(nil)

// New creates an empty store.
func New() *Memory {
	return &Memory{
		entries: entrySet{},
		now:     time.Now,
	}
}

// Close marks the store closed. Entries stay readable; only Ping reports it.
func (m *Memory) Close() error {
	m.closed.Store(true)

	return nil
}

// Ping returns storage.ErrClosed after Close.
func (m *Memory) Ping(ctx context.Context) error {
	if m.closed.Load() {
		return storage.ErrClosed
	}

	return ctx.Err() //nolint: wrapcheck
}

// StoreEntry implements storage.EntryStorage.
func (m *Memory) StoreEntry(_ context.Context, entry domain.Entry) (*domain.Entry, error) {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.entries.store(entry, m.now().UTC()), nil
}

// EntryByID implements storage.EntryStorage.
func (m *Memory) EntryByID(_ context.Context, id uuid.UUID) (*domain.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.entries.byID(id), nil
}

// DeleteEntry implements storage.EntryStorage.
func (m *Memory) DeleteEntry(_ context.Context, id uuid.UUID) (*domain.Entry, error) {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.entries.remove(id), nil
}

// Entries implements storage.EntryStorage.
func (m *Memory) Entries(_ context.Context, after *uuid.UUID, limit uint) (storage.EntryPage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.entries.page(after, limit), nil
}

// Begin starts a transaction working on a private copy of the entries. Other
// writers block until it is committed or rolled back.
func (m *Memory) Begin(ctx context.Context) (storage.TxStorage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint: wrapcheck
	}

	m.writeMu.Lock()
	m.mu.RLock()
	snapshot := m.entries.clone()
	m.mu.RUnlock()

	return &tx{parent: m, entries: snapshot}, nil
}

// WithTx runs cb in a transaction, committing when it returns nil.
func (m *Memory) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	t, err := m.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			_ = t.Rollback()
			panic(r)
		}
	}()

	if err := cb(t); err != nil {
		_ = t.Rollback()

		return err
	}

	return t.Commit()
}

// tx is a transaction on a Memory store. It must be used by one goroutine.
type tx struct {
	parent  *Memory
	entries entrySet
	done    bool
}

func (t *tx) StoreEntry(_ context.Context, entry domain.Entry) (*domain.Entry, error) {
	if t.done {
		return nil, storage.ErrTxDone
	}

	return t.entries.store(entry, t.parent.now().UTC()), nil
}

func (t *tx) EntryByID(_ context.Context, id uuid.UUID) (*domain.Entry, error) {
	if t.done {
		return nil, storage.ErrTxDone
	}

	return t.entries.byID(id), nil
}

func (t *tx) DeleteEntry(_ context.Context, id uuid.UUID) (*domain.Entry, error) {
	if t.done {
		return nil, storage.ErrTxDone
	}

	return t.entries.remove(id), nil
}

func (t *tx) Entries(_ context.Context, after *uuid.UUID, limit uint) (storage.EntryPage, error) {
	if t.done {
		return storage.EntryPage{}, storage.ErrTxDone
	}

	return t.entries.page(after, limit), nil
}

func (t *tx) Commit() error {
	if t.done {
		return storage.ErrTxDone
	}
	t.done = true

	t.parent.mu.Lock()
	t.parent.entries = t.entries
	t.parent.mu.Unlock()
	t.parent.writeMu.Unlock()

	return nil
}

func (t *tx) Rollback() error {
	if t.done {
		return storage.ErrTxDone
	}
	t.done = true
	t.parent.writeMu.Unlock()

	return nil
}
