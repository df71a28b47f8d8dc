// Package clause composes individual SQL fragments.
//
// Every function is pure and returns the empty string for an absent or empty
// input, so callers can pass the results straight to Join without checking
// which clauses apply.
package clause

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/leapstack-labs/leaptable/pkg/core"
)

// Separators used when clauses are combined.
const (
	// StatementSep separates the clauses of a SELECT statement.
	StatementSep = "\n"
	// DeclareSep separates column declarations and table constraints.
	DeclareSep = ",\n"
)

var (
	// ErrEmptyKey is returned by PrimaryKey when no column is named.
	ErrEmptyKey = errors.New("primary key requires at least one column")

	// ErrInvalidField is returned for a field declaration without a name or type.
	ErrInvalidField = errors.New("invalid field declaration")

	// ErrNoFields is returned when a table declaration has no columns.
	ErrNoFields = errors.New("table requires at least one field")
)

// PrimaryKey renders PRIMARY KEY (n1, n2, ...).
// Callers omit the clause rather than pass an empty key.
func PrimaryKey(names []string) (string, error) {
	if len(names) == 0 {
		return "", ErrEmptyKey
	}
	return "PRIMARY KEY (" + strings.Join(names, ", ") + ")", nil
}

// FieldsDeclare renders "name TYPE" pairs in declaration order.
func FieldsDeclare(fields []core.Field) (string, error) {
	decls := make([]string, 0, len(fields))
	for i, f := range fields {
		if f.Name == "" {
			return "", fmt.Errorf("%w: field %d has no name", ErrInvalidField, i)
		}
		if f.Type.IsZero() {
			return "", fmt.Errorf("%w: field %q has no type", ErrInvalidField, f.Name)
		}
		decls = append(decls, f.Name+" "+f.Type.Name)
	}
	return strings.Join(decls, DeclareSep), nil
}

// Unique renders UNIQUE (n1, n2, ...).
func Unique(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return "UNIQUE (" + strings.Join(names, ", ") + ")"
}

// Where joins pre-rendered boolean expressions with AND.
// The expressions are emitted verbatim.
func Where(conditions []string) string {
	conds := nonEmpty(conditions)
	if len(conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(conds, " AND ")
}

// OrderBy renders ORDER BY in the given order. A term without a direction
// uses the engine default.
func OrderBy(terms []core.OrderTerm) string {
	parts := make([]string, 0, len(terms))
	for _, term := range terms {
		if term.Field == "" {
			continue
		}
		if term.Direction == "" {
			parts = append(parts, term.Field)
			continue
		}
		parts = append(parts, term.Field+" "+string(term.Direction))
	}
	if len(parts) == 0 {
		return ""
	}
	return "ORDER BY " + strings.Join(parts, ", ")
}

// Limit renders LIMIT n. Zero and negative values suppress the clause.
func Limit(n int) string {
	if n <= 0 {
		return ""
	}
	return "LIMIT " + strconv.Itoa(n)
}

// Offset renders OFFSET n. Zero and negative values suppress the clause.
func Offset(n int) string {
	if n <= 0 {
		return ""
	}
	return "OFFSET " + strconv.Itoa(n)
}

// Join concatenates the non-empty clauses with sep.
func Join(sep string, clauses ...string) string {
	return strings.Join(nonEmpty(clauses), sep)
}

func nonEmpty(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
