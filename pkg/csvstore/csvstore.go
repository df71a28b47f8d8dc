// Package csvstore reads and writes records as CSV files with a fixed header.
package csvstore

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/leapstack-labs/leaptable/pkg/core"
)

// ErrNoFields is returned by New without any field.
var ErrNoFields = errors.New("csv store requires at least one field")

// HeaderMismatchError is returned when an existing file's header differs from
// the store's fields.
type HeaderMismatchError struct {
	Path     string
	Expected []string
	Actual   []string
}

func (e *HeaderMismatchError) Error() string {
	return fmt.Sprintf("fields in %s do not match: expected %v, actual %v", e.Path, e.Expected, e.Actual)
}

// Store is a CSV layout: the ordered field list and the fields that identify
// a row.
type Store struct {
	fields []string
	index  []string
}

// New creates a store for fields. Index names the identifying fields.
func New(fields []string, index ...string) (*Store, error) {
	if len(fields) == 0 {
		return nil, ErrNoFields
	}
	return &Store{
		fields: slices.Clone(fields),
		index:  slices.Clone(index),
	}, nil
}

// Fields returns the header of the store.
func (s *Store) Fields() []string {
	return slices.Clone(s.fields)
}

// Index returns the identifying fields.
func (s *Store) Index() []string {
	return slices.Clone(s.index)
}

func (s *Store) String() string {
	return fmt.Sprintf("csvstore.Store(fields=%v, index=%v)", s.fields, s.index)
}

// Write saves records to path. A missing or empty file is created with a
// header; an existing file is appended to when its header equals the store's
// fields. Values are read from each record by field name; absent values and
// NULLs are written as empty cells. Writing zero records does nothing.
func (s *Store) Write(path string, records []*core.Record) error {
	if len(records) == 0 {
		return nil
	}

	header, err := ReadHeader(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		header = nil
	case err != nil:
		return err
	case header != nil && !slices.Equal(header, s.fields):
		return &HeaderMismatchError{Path: path, Expected: s.Fields(), Actual: header}
	}

	//nolint:gosec // path is chosen by the caller
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if header == nil {
		if err := w.Write(s.fields); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	row := make([]string, len(s.fields))
	for _, rec := range records {
		for i, field := range s.fields {
			row[i] = formatCell(rec.Value(field))
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// Read loads every row of path as a record of strings keyed by the header.
// The file's header must equal the store's fields.
func (s *Store) Read(path string) ([]*core.Record, error) {
	f, err := os.Open(path) //nolint:gosec // path is chosen by the caller
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}
	if !slices.Equal(header, s.fields) {
		return nil, &HeaderMismatchError{Path: path, Expected: s.Fields(), Actual: header}
	}

	var records []*core.Record
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		values := make([]any, len(row))
		for i, cell := range row {
			values[i] = cell
		}
		records = append(records, core.RecordFrom(header, values))
	}
	return records, nil
}

// ReadHeader returns the first row of path, or nil for an empty file.
func ReadHeader(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // path is chosen by the caller
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	header, err := csv.NewReader(f).Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}
	return header, nil
}

func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case time.Time:
		return x.Format(time.RFC3339Nano)
	default:
		return fmt.Sprint(x)
	}
}
