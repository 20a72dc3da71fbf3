package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"uuid62/pkg/storage"

	"github.com/pressly/goose/v3"
)

// MigrationsDir is the directory of the migrations file system read by Migrate.
const MigrationsDir = "migrations"

// Migrate applies every pending goose migration found under MigrationsDir in
// fsys and returns the applied ones. It cannot run inside a transaction.
func (p *PgSQL) Migrate(ctx context.Context, fsys fs.FS) ([]*goose.MigrationResult, error) {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return nil, storage.ErrAlreadyInTx
	}

	dir, err := fs.Sub(fsys, MigrationsDir)
	if err != nil {
		return nil, fmt.Errorf("could not open migrations dir: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, dir)
	if err != nil {
		return nil, fmt.Errorf("could not create goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return results, fmt.Errorf("could not migrate: %w", err)
	}

	return results, nil
}
