// Package postgres implements storage.Storage on PostgreSQL using a pgx
// connection pool, a database/sql wrapper and goqu for query building.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"uuid62/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// Options configure the connection pool.
type Options struct {
	Username string
	Password string
	Host     string
	// SslMode is passed to libpq as sslmode, e.g. "disable" or "require".
	SslMode  string
	Port     int
	Database string

	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	// MaxOpenConnections caps the pool size.
	MaxOpenConnections int
	// MaxIdleConnections is the number of connections the pool keeps open.
	MaxIdleConnections int
}

// DB is satisfied by both *sql.DB and *sql.Tx.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Builder is satisfied by both *goqu.Database and *goqu.TxDatabase.
type Builder interface {
	From(table ...interface{}) *goqu.SelectDataset
	Insert(table interface{}) *goqu.InsertDataset
	Delete(table interface{}) *goqu.DeleteDataset
}

// PgSQL is a storage.Storage backed by PostgreSQL. A PgSQL returned by Begin
// is bound to one transaction and has no Pool.
type PgSQL struct {
	// DB is a *sql.DB, or a *sql.Tx inside a transaction.
	DB DB
	// Builder builds queries bound to DB.
	Builder Builder
	Pool    *pgxpool.Pool
}

var _ storage.Storage = (*PgSQL)(nil)

// Close releases the pgx pool and its database/sql wrapper. Calling Close on
// a transaction handle does nothing.
func (p *PgSQL) Close() error {
	if p.Pool != nil {
		p.Pool.Close()
	}
	if db, ok := p.DB.(*sql.DB); ok {
		_ = db.Close()
	}

	return nil
}

// Ping checks that a connection to the server can be established.
func (p *PgSQL) Ping(ctx context.Context) error {
	if p.Pool == nil {
		return storage.ErrAlreadyInTx
	}
	if err := p.Pool.Ping(ctx); err != nil {
		return fmt.Errorf("could not ping postgres: %w", err)
	}

	return nil
}

// finish ends the transaction with commit or rollback. A transaction that is
// already finished reports storage.ErrTxDone, matching the memory store.
func (p *PgSQL) finish(commit bool) error {
	tx, ok := p.DB.(*sql.Tx)
	if !ok {
		return storage.ErrNotInTx
	}

	op, end := "rollback", tx.Rollback
	if commit {
		op, end = "commit", tx.Commit
	}

	if err := end(); err != nil {
		if errors.Is(err, sql.ErrTxDone) {
			return storage.ErrTxDone
		}

		return fmt.Errorf("could not %s tx: %w", op, err)
	}

	return nil
}

// Commit implements storage.TxStorage.
func (p *PgSQL) Commit() error { return p.finish(true) }

// Rollback implements storage.TxStorage.
func (p *PgSQL) Rollback() error { return p.finish(false) }

// Begin starts a transaction. It returns storage.ErrAlreadyInTx when p is
// itself a transaction; nested transactions are not supported.
func (p *PgSQL) Begin(ctx context.Context) (storage.TxStorage, error) {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return nil, storage.ErrAlreadyInTx
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin tx: %w", err)
	}

	return &PgSQL{
		DB:      tx,
		Builder: goqu.NewTx("postgres", tx),
	}, nil
}

// WithTx implements storage.Storage.
func (p *PgSQL) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := p.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	if err := cb(tx); err != nil {
		_ = tx.Rollback()

		return err
	}

	return tx.Commit()
}

// dsn renders the options as a libpq keyword/value connection string.
func (o Options) dsn() string {
	return fmt.Sprintf("host=%s port=%d user=%s dbname=%s password=%s sslmode=%s",
		o.Host, o.Port, o.Username, o.Database, o.Password, o.SslMode)
}

// New connects to PostgreSQL and returns a storage handle. The pgx pool is
// wrapped in a *sql.DB so goqu and goose can use it; the server is pinged once
// before New returns.
func New(ctx context.Context, options Options) (*PgSQL, error) {
	cfg, err := pgxpool.ParseConfig(options.dsn())
	if err != nil {
		return nil, fmt.Errorf("could not parse pgxpool config: %w", err)
	}
	if options.MaxOpenConnections > 0 {
		cfg.MaxConns = int32(options.MaxOpenConnections) //nolint: gosec
	}
	if options.MaxIdleConnections > 0 {
		cfg.MinConns = int32(options.MaxIdleConnections) //nolint: gosec
	}
	if options.ConnMaxLifetime > 0 {
		cfg.MaxConnLifetime = options.ConnMaxLifetime
	}
	if options.ConnMaxIdleTime > 0 {
		cfg.MaxConnIdleTime = options.ConnMaxIdleTime
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()

		return nil, fmt.Errorf("could not reach postgres: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	return &PgSQL{
		DB:      sqlDB,
		Builder: goqu.Dialect("postgres").DB(sqlDB),
		Pool:    pool,
	}, nil
}
