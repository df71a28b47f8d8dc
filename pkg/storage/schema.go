package storage

import (
	"fmt"
	"slices"

	"github.com/leapstack-labs/leaptable/pkg/core"
	"github.com/leapstack-labs/leaptable/pkg/dialect"
)

// TableSchema declares a table: its name, ordered fields, primary key and
// unique constraint.
//
// A nil PrimaryKey means "not declared" and selects the default key
// _{table}_pt; an empty non-nil PrimaryKey is invalid.
type TableSchema struct {
	Table      string
	Fields     []core.Field
	PrimaryKey []string
	Unique     []string
}

// DefaultKey returns the name of the synthesized primary key column of table.
func DefaultKey(table string) string {
	return "_" + table + "_pt"
}

// FieldNames returns the field names in declaration order.
func (s TableSchema) FieldNames() []string {
	return core.FieldNames(s.Fields)
}

// Field returns the field named name.
func (s TableSchema) Field(name string) (core.Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return core.Field{}, false
}

// Validate checks s against the type set of d and returns the schema to use:
// a copy of s with the primary key resolved and, for the default key, the key
// column appended with the dialect's integer type. s itself is not modified.
func (s TableSchema) Validate(d core.Dialect) (TableSchema, error) {
	types, err := dialect.Types(d)
	if err != nil {
		return TableSchema{}, err
	}

	invalid := func(field, format string, args ...any) (TableSchema, error) {
		return TableSchema{}, &core.SchemaError{Table: s.Table, Field: field, Reason: fmt.Sprintf(format, args...)}
	}

	if s.Table == "" {
		return invalid("", "table name is not defined")
	}
	if len(s.Fields) == 0 {
		return invalid("", "fields must be a non-empty list")
	}

	declared := make(map[string]core.Field, len(s.Fields))
	for i, f := range s.Fields {
		if f.Name == "" {
			return invalid("", "field %d has no name", i)
		}
		if _, dup := declared[f.Name]; dup {
			return invalid(f.Name, "field is declared more than once")
		}
		if f.Type.IsZero() {
			return invalid(f.Name, "field has no type")
		}
		if !types.Contains(f.Type) {
			if f.Type.Dialect != d {
				return invalid(f.Name, "type %s belongs to dialect %q, not %q", f.Type, f.Type.Dialect, d)
			}
			return invalid(f.Name, "type %s is not a %s type", f.Type, d)
		}
		declared[f.Name] = f
	}

	for _, name := range s.Unique {
		if _, ok := declared[name]; !ok {
			return invalid(name, "unique field is not defined in the fields")
		}
	}

	out := TableSchema{
		Table:  s.Table,
		Fields: slices.Clone(s.Fields),
		Unique: slices.Clone(s.Unique),
	}

	defaultKey := DefaultKey(s.Table)
	switch {
	case s.PrimaryKey == nil:
		out.PrimaryKey = []string{defaultKey}
	case len(s.PrimaryKey) == 0:
		return invalid("", "primary key must name at least one field")
	default:
		out.PrimaryKey = slices.Clone(s.PrimaryKey)
	}

	if len(out.PrimaryKey) == 1 && out.PrimaryKey[0] == defaultKey {
		if f, ok := declared[defaultKey]; ok {
			if !types.IsInteger(f.Type) {
				return invalid(defaultKey, "default primary key must have an integer type, got %s", f.Type)
			}
		} else {
			out.Fields = append(out.Fields, core.Field{Name: defaultKey, Type: types.Integer})
		}
		return out, nil
	}

	for _, name := range out.PrimaryKey {
		if _, ok := declared[name]; !ok {
			return invalid(name, "user specified primary key is not defined in the fields")
		}
	}
	return out, nil
}
