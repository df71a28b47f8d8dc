package storage

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/leapstack-labs/leaptable/pkg/core"
)

// Frame is a query result keyed by the primary key columns.
type Frame struct {
	// Index holds the key column names
	Index []string
	// Columns holds the remaining column names
	Columns []string
	Rows    []FrameRow

	positions map[string]int
}

// FrameRow is one row of a Frame.
type FrameRow struct {
	Key    []any
	Values []any
}

// NewFrame splits columns into index and value columns and indexes records
// by their key values.
func NewFrame(index, columns []string, records []*core.Record) *Frame {
	f := &Frame{
		Index:     slices.Clone(index),
		positions: make(map[string]int, len(records)),
	}
	for _, col := range columns {
		if !slices.Contains(index, col) {
			f.Columns = append(f.Columns, col)
		}
	}

	for _, rec := range records {
		row := FrameRow{
			Key:    make([]any, len(f.Index)),
			Values: make([]any, len(f.Columns)),
		}
		for i, col := range f.Index {
			row.Key[i] = rec.Value(col)
		}
		for i, col := range f.Columns {
			row.Values[i] = rec.Value(col)
		}
		f.positions[keyString(row.Key)] = len(f.Rows)
		f.Rows = append(f.Rows, row)
	}
	return f
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	return len(f.Rows)
}

// Lookup returns the row whose key equals key, compared by text form, as a
// record of the value columns.
func (f *Frame) Lookup(key ...any) (*core.Record, bool) {
	i, ok := f.positions[keyString(key)]
	if !ok {
		return nil, false
	}
	return core.RecordFrom(f.Columns, f.Rows[i].Values), true
}

// Render writes the frame as a table, key columns first.
func (f *Frame) Render(w io.Writer) {
	if len(f.Rows) == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, 0, len(f.Index)+len(f.Columns))
	for _, col := range f.Index {
		header = append(header, col)
	}
	for _, col := range f.Columns {
		header = append(header, col)
	}
	t.AppendHeader(header)

	for _, row := range f.Rows {
		out := make(table.Row, 0, len(header))
		for _, v := range row.Key {
			out = append(out, formatValue(v))
		}
		for _, v := range row.Values {
			out = append(out, formatValue(v))
		}
		t.AppendRow(out)
	}

	t.Render()
	_, _ = fmt.Fprintf(w, "(%d rows)\n", len(f.Rows))
}

func formatValue(v any) string {
	if v == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", v)
}

func keyString(key []any) string {
	parts := make([]string, len(key))
	for i, v := range key {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, "\x1f")
}
