package postgres

import (
	"context"
	"fmt"
	"uuid62/pkg/domain"
	"uuid62/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	entriesTable = "entries"
)

// StoreEntry inserts an entry, returning nil when the ID is already registered.
func (p *PgSQL) StoreEntry(ctx context.Context, entry domain.Entry) (*domain.Entry, error) {
	var row PgEntry
	row.FromDomain(entry)

	found, err := p.Builder.Insert(entriesTable).
		Prepared(true).
		Rows(row).
		OnConflict(goqu.DoNothing()).
		Returning(&PgEntry{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store entry into pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// EntryByID returns the entry with the given ID, or nil when not found.
func (p *PgSQL) EntryByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	var row PgEntry
	found, err := p.Builder.From(entriesTable).
		Prepared(true).
		Where(goqu.I("id").Eq(pgID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not get entry by id from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteEntry removes the entry with the given ID and returns it, or nil when
// nothing was deleted.
func (p *PgSQL) DeleteEntry(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	var row PgEntry
	found, err := p.Builder.Delete(entriesTable).
		Prepared(true).
		Where(goqu.I("id").Eq(pgID(id))).
		Returning(&PgEntry{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete entry in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// Entries returns a page of entries ordered by id. BYTEA compares byte-wise,
// which for big-endian ids is the same as comparing their 128-bit values.
func (p *PgSQL) Entries(ctx context.Context, after *uuid.UUID, limit uint) (storage.EntryPage, error) {
	ds := p.Builder.From(entriesTable).Prepared(true)
	if after != nil {
		ds = ds.Where(goqu.I("id").Gt(pgID(*after)))
	}

	// fetch one extra to determine if there is a next page
	var rows []PgEntry
	if err := ds.Order(goqu.I("id").Asc()).
		Limit(limit+1).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.EntryPage{}, fmt.Errorf("could not fetch entries from pg: %w", err)
	}

	var nextCursor *uuid.UUID
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		if limit > 0 {
			last := uuid.UUID(rows[len(rows)-1].ID)
			nextCursor = &last
		}
	}

	return storage.EntryPage{
		Entries:    pgEntriesToDomain(rows),
		NextCursor: nextCursor,
	}, nil
}
