// Package dialect provides the SQLite SQL dialect definition.
// This package is lightweight and has no database driver dependencies.
package dialect

import (
	"github.com/leapstack-labs/leaptable/pkg/core"
	"github.com/leapstack-labs/leaptable/pkg/dialect"
)

func init() {
	dialect.Register(SQLite)
	dialect.RegisterTypes(Types)
}

// Types holds the SQLite storage classes.
var Types = dialect.NewTypeSet(core.DialectSQLite,
	"INTEGER", "REAL", "TEXT", "BLOB", "NULL",
).WithIntegers("INTEGER")

// Column types, for declaring schemas in Go.
var (
	Integer = Types.MustType("INTEGER")
	Real    = Types.MustType("REAL")
	Text    = Types.MustType("TEXT")
	Blob    = Types.MustType("BLOB")
	Null    = Types.MustType("NULL")
)

// SQLite is the SQLite statement builder.
//
// Embedded double quotes are doubled, the only escape the SQLite tokenizer
// accepts inside a double-quoted token. LIMIT -1 means no limit.
var SQLite = &dialect.Base{
	Name:           core.DialectSQLite,
	UnboundedLimit: "LIMIT -1",
	EscapeText:     dialect.DoubleQuoteEscape,
}
