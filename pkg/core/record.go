package core

import (
	"fmt"
	"strings"
)

// Record is an ordered mapping of column name to value.
// Column order is the order in which columns were first set.
type Record struct {
	columns []string
	values  []any
	index   map[string]int
}

// NewRecord builds a record from alternating column names and values,
// e.g. NewRecord("name", "Alice", "age", 25).
// It panics if kv has odd length or a name is not a string.
func NewRecord(kv ...any) *Record {
	if len(kv)%2 != 0 {
		panic(fmt.Sprintf("core.NewRecord: odd number of arguments (%d)", len(kv)))
	}
	r := &Record{index: make(map[string]int, len(kv)/2)}
	for i := 0; i < len(kv); i += 2 {
		name, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("core.NewRecord: column name at position %d is %T, not string", i, kv[i]))
		}
		r.Set(name, kv[i+1])
	}
	return r
}

// RecordFrom zips column names with values. Extra values are ignored and
// missing values are nil.
func RecordFrom(columns []string, values []any) *Record {
	r := &Record{index: make(map[string]int, len(columns))}
	for i, col := range columns {
		var v any
		if i < len(values) {
			v = values[i]
		}
		r.Set(col, v)
	}
	return r
}

// Set assigns value to column. An existing column keeps its position.
func (r *Record) Set(column string, value any) *Record {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if i, ok := r.index[column]; ok {
		r.values[i] = value
		return r
	}
	r.index[column] = len(r.columns)
	r.columns = append(r.columns, column)
	r.values = append(r.values, value)
	return r
}

// Get returns the value of column and whether it is present.
func (r *Record) Get(column string) (any, bool) {
	if r == nil {
		return nil, false
	}
	i, ok := r.index[column]
	if !ok {
		return nil, false
	}
	return r.values[i], true
}

// Value returns the value of column, or nil when absent.
func (r *Record) Value(column string) any {
	v, _ := r.Get(column)
	return v
}

// Len returns the number of columns.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.columns)
}

// Columns returns a copy of the column names in order.
func (r *Record) Columns() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.columns...)
}

// Values returns a copy of the values in column order.
func (r *Record) Values() []any {
	if r == nil {
		return nil
	}
	return append([]any(nil), r.values...)
}

// Map returns the record as an unordered map.
func (r *Record) Map() map[string]any {
	m := make(map[string]any, r.Len())
	if r == nil {
		return m
	}
	for i, col := range r.columns {
		m[col] = r.values[i]
	}
	return m
}

func (r *Record) String() string {
	if r == nil {
		return "{}"
	}
	var b strings.Builder
	b.WriteByte('{')
	for i, col := range r.columns {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %v", col, r.values[i])
	}
	b.WriteByte('}')
	return b.String()
}
