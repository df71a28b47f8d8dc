// Package dialect provides the PostgreSQL column types.
//
// PostgreSQL is a reserved dialect: its types are registered so schemas can
// be declared against it, but no statement builder is, and resolving one
// fails with core.ErrUnsupportedDialect.
package dialect

import (
	"github.com/leapstack-labs/leaptable/pkg/core"
	"github.com/leapstack-labs/leaptable/pkg/dialect"
)

func init() {
	dialect.RegisterTypes(Types)
}

// Types holds the PostgreSQL column types leaptable declares.
var Types = dialect.NewTypeSet(core.DialectPostgres,
	"INT2", "INT4", "INT8", "FLOAT4", "FLOAT8", "CHAR", "VARCHAR", "TEXT",
).WithIntegers("INT8", "INT4", "INT2")

// Column types, for declaring schemas in Go.
var (
	Int2    = Types.MustType("INT2")
	Int4    = Types.MustType("INT4")
	Int8    = Types.MustType("INT8")
	Float4  = Types.MustType("FLOAT4")
	Float8  = Types.MustType("FLOAT8")
	Char    = Types.MustType("CHAR")
	Varchar = Types.MustType("VARCHAR")
	Text    = Types.MustType("TEXT")
)
