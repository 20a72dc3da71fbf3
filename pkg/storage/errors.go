package storage

import "errors"

var (
	// ErrAlreadyInTx is returned by Begin on a handle that is already a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned by Commit and Rollback on a handle that is not a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrTxDone is returned when a transaction handle is used after Commit or Rollback.
	ErrTxDone = errors.New("tx already committed or rolled back")
	// ErrClosed is returned by Ping after Close.
	ErrClosed = errors.New("storage closed")
)
