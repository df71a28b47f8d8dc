package core

import "strings"

// Dialect identifies a SQL engine's syntax and type variant.
type Dialect string

// Supported dialect identifiers. The set is closed: any other value is an
// invalid dialect.
const (
	DialectSQLite   Dialect = "sqlite"
	DialectMySQL    Dialect = "mysql"
	DialectPostgres Dialect = "postgres"
)

// Dialects returns every member of the dialect enumeration.
func Dialects() []Dialect {
	return []Dialect{DialectSQLite, DialectMySQL, DialectPostgres}
}

// Valid reports whether d is a member of the dialect enumeration.
func (d Dialect) Valid() bool {
	switch d {
	case DialectSQLite, DialectMySQL, DialectPostgres:
		return true
	}
	return false
}

func (d Dialect) String() string {
	return string(d)
}

// ParseDialect converts a user-supplied name into a Dialect.
// Matching is case-insensitive and "postgresql" is accepted for postgres.
func ParseDialect(name string) (Dialect, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "postgresql" {
		normalized = string(DialectPostgres)
	}
	d := Dialect(normalized)
	if !d.Valid() {
		return "", &InvalidDialectError{Value: name}
	}
	return d, nil
}
