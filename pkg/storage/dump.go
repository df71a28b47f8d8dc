package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/leaptable/pkg/csvstore"
)

// CSVStore returns the CSV layout matching the table: all fields, indexed by
// the primary key.
func (t *Table) CSVStore() (*csvstore.Store, error) {
	return csvstore.New(t.schema.FieldNames(), t.schema.PrimaryKey...)
}

// QueryDump writes the records matching opts to the CSV file at path and
// returns how many were written. See csvstore.Store.Write for append rules.
func (t *Table) QueryDump(ctx context.Context, path string, opts QueryOptions) (int, error) {
	records, err := t.Query(ctx, opts)
	if err != nil {
		return 0, err
	}

	store, err := t.CSVStore()
	if err != nil {
		return 0, err
	}

	t.logger.Info("dumping records", slog.Int("count", len(records)), slog.String("path", path))
	if err := store.Write(path, records); err != nil {
		return 0, fmt.Errorf("failed to dump %s: %w", t.schema.Table, err)
	}
	t.logger.Info("dumping finished", slog.String("path", path))
	return len(records), nil
}

// LoadCSV inserts every row of the CSV file at path, whose header must match
// the table's fields, with a single statement. Empty cells are inserted as
// NULL. A file without rows inserts nothing.
func (t *Table) LoadCSV(ctx context.Context, path string) (int64, error) {
	store, err := t.CSVStore()
	if err != nil {
		return 0, err
	}

	records, err := store.Read(path)
	if err != nil {
		return 0, fmt.Errorf("failed to load %s: %w", t.schema.Table, err)
	}
	if len(records) == 0 {
		return 0, nil
	}

	for _, rec := range records {
		for _, col := range rec.Columns() {
			if rec.Value(col) == "" {
				rec.Set(col, nil)
			}
		}
	}

	t.logger.Info("loading records", slog.Int("count", len(records)), slog.String("path", path))
	return t.InsertMany(ctx, records)
}
