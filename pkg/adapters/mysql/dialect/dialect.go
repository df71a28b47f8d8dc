// Package dialect provides the MySQL SQL dialect definition.
// This package is lightweight and has no database driver dependencies.
package dialect

import (
	"github.com/leapstack-labs/leaptable/pkg/core"
	"github.com/leapstack-labs/leaptable/pkg/dialect"
)

func init() {
	dialect.Register(MySQL)
	dialect.RegisterTypes(Types)
}

// Types holds the MySQL column types leaptable declares.
// The default primary key is BIGINT AUTO_INCREMENT so that inserts which
// omit it still get a key, as they do with an SQLite INTEGER key.
var Types = dialect.NewTypeSet(core.DialectMySQL,
	"INT", "BIGINT", "BIGINT AUTO_INCREMENT", "DOUBLE", "VARCHAR(255)", "TEXT", "BLOB", "DATETIME",
).WithIntegers("BIGINT AUTO_INCREMENT", "BIGINT", "INT")

// Column types, for declaring schemas in Go.
var (
	Int      = Types.MustType("INT")
	BigInt   = Types.MustType("BIGINT")
	Serial   = Types.MustType("BIGINT AUTO_INCREMENT")
	Double   = Types.MustType("DOUBLE")
	Varchar  = Types.MustType("VARCHAR(255)")
	Text     = Types.MustType("TEXT")
	Blob     = Types.MustType("BLOB")
	DateTime = Types.MustType("DATETIME")
)

// MySQL is the MySQL statement builder.
//
// Text literals are double-quoted, which requires a sql_mode without
// ANSI_QUOTES. Tables use the InnoDB engine so that commits are transactional.
var MySQL = &dialect.Base{
	Name:         core.DialectMySQL,
	TableOptions: " ENGINE=InnoDB",
	// largest BIGINT UNSIGNED, the documented way to say "all rows"
	UnboundedLimit: "LIMIT 18446744073709551615",
	EscapeText:     dialect.BackslashEscape,
}
