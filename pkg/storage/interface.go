// Package storage declares the persistence contract of the identifier
// registry. Backends (PostgreSQL and the in-process memory store) implement
// Storage; services only ever see these interfaces.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage is everything that can be done inside or outside a transaction.
type AllStorage interface {
	EntryStorage
}

// TxStorage is a handle bound to one transaction. Every method returns an
// error once Commit or Rollback has been called.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the root handle of a backend.
type Storage interface {
	AllStorage

	// Close releases the backend. The handle must not be used afterwards.
	Close() error
	// Ping reports whether the backend can serve requests.
	Ping(ctx context.Context) error

	// Begin starts a transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb in a transaction. The transaction is committed when cb
	// returns nil and rolled back otherwise, including when cb panics.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
