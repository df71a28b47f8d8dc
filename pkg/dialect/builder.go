// Package dialect assembles complete SQL statements for a specific SQL engine.
//
// The shared assembly lives in Base; each dialect package configures a Base
// with its own quoting, table options and limit rules, then registers it
// together with its column types from an init() function:
//
//	import _ "github.com/leapstack-labs/leaptable/pkg/adapters/sqlite/dialect"
package dialect

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/leaptable/pkg/clause"
	"github.com/leapstack-labs/leaptable/pkg/core"
)

// Builder renders complete statements for one dialect.
type Builder interface {
	// Dialect returns the dialect this builder renders for.
	Dialect() core.Dialect

	// QuerySQL renders a SELECT statement.
	QuerySQL(q Query) string

	// InsertSQL renders a multi-row INSERT. Column order follows the first record.
	InsertSQL(table string, records []*core.Record) (string, error)

	// CreateTableSQL renders a CREATE TABLE statement.
	CreateTableSQL(t CreateTable) (string, error)

	// DropSQL renders a DROP TABLE statement.
	DropSQL(table string, allowMissing bool) string

	// DeleteSQL renders an unconditional DELETE of every row.
	DeleteSQL(table string) string

	// Quote renders a scalar value as a SQL literal.
	Quote(value any) string
}

// Query describes a SELECT statement.
type Query struct {
	Table string
	// Fields to select; empty selects *
	Fields     []string
	Conditions []string
	OrderBy    []core.OrderTerm
	// Limit and Offset are omitted when zero
	Limit  int
	Offset int
}

// CreateTable describes a CREATE TABLE statement.
type CreateTable struct {
	Table      string
	Fields     []core.Field
	PrimaryKey []string
	Unique     []string
	// AllowExisting adds IF NOT EXISTS
	AllowExisting bool
}

// Base implements Builder for engines that share the common statement shapes.
type Base struct {
	// Name is the dialect identifier
	Name core.Dialect

	// TableOptions is appended after the closing parenthesis of CREATE TABLE
	// (e.g. " ENGINE=InnoDB").
	TableOptions string

	// UnboundedLimit is the LIMIT clause emitted when an offset is given
	// without a limit, since neither SQLite nor MySQL accept a bare OFFSET.
	UnboundedLimit string

	// EscapeText escapes a text value before it is wrapped in double quotes.
	EscapeText func(string) string
}

// Dialect returns the dialect identifier.
func (b *Base) Dialect() core.Dialect {
	return b.Name
}

// QuerySQL renders SELECT fields FROM table followed by the applicable clauses.
func (b *Base) QuerySQL(q Query) string {
	fields := "*"
	if len(q.Fields) > 0 {
		fields = strings.Join(q.Fields, ", ")
	}

	limit := clause.Limit(q.Limit)
	if limit == "" && q.Offset > 0 {
		limit = b.UnboundedLimit
	}

	return clause.Join(clause.StatementSep,
		"SELECT "+fields,
		"FROM "+q.Table,
		clause.Where(q.Conditions),
		clause.OrderBy(q.OrderBy),
		limit,
		clause.Offset(q.Offset),
	) + ";"
}

// InsertSQL renders INSERT INTO table (cols) VALUES (...), (...).
// Later records are read by the first record's column names; a missing
// column is rendered as NULL.
func (b *Base) InsertSQL(table string, records []*core.Record) (string, error) {
	if len(records) == 0 {
		return "", fmt.Errorf("%w: insert into %s requires at least one record", core.ErrEmptyInput, table)
	}
	columns := records[0].Columns()
	if len(columns) == 0 {
		return "", fmt.Errorf("%w: insert into %s requires at least one column", core.ErrEmptyInput, table)
	}

	rows := make([]string, len(records))
	values := make([]string, len(columns))
	for i, rec := range records {
		for j, col := range columns {
			values[j] = b.Quote(rec.Value(col))
		}
		rows[i] = "(" + strings.Join(values, ", ") + ")"
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES %s;",
		table, strings.Join(columns, ", "), strings.Join(rows, ", ")), nil
}

// CreateTableSQL renders the column declarations followed by the optional
// PRIMARY KEY and UNIQUE constraints.
func (b *Base) CreateTableSQL(t CreateTable) (string, error) {
	if len(t.Fields) == 0 {
		return "", fmt.Errorf("create table %s: %w", t.Table, clause.ErrNoFields)
	}
	fields, err := clause.FieldsDeclare(t.Fields)
	if err != nil {
		return "", fmt.Errorf("create table %s: %w", t.Table, err)
	}

	var primaryKey string
	if len(t.PrimaryKey) > 0 {
		if primaryKey, err = clause.PrimaryKey(t.PrimaryKey); err != nil {
			return "", fmt.Errorf("create table %s: %w", t.Table, err)
		}
	}

	head := "CREATE TABLE "
	if t.AllowExisting {
		head += "IF NOT EXISTS "
	}

	body := clause.Join(clause.DeclareSep, fields, primaryKey, clause.Unique(t.Unique))
	return head + t.Table + " (\n" + body + "\n)" + b.TableOptions + ";", nil
}

// DropSQL renders DROP TABLE [IF EXISTS] table.
func (b *Base) DropSQL(table string, allowMissing bool) string {
	if allowMissing {
		return "DROP TABLE IF EXISTS " + table + ";"
	}
	return "DROP TABLE " + table + ";"
}

// DeleteSQL renders DELETE FROM table.
func (b *Base) DeleteSQL(table string) string {
	return "DELETE FROM " + table + ";"
}

// Quote renders value with the dialect's text escaping.
func (b *Base) Quote(value any) string {
	escape := b.EscapeText
	if escape == nil {
		escape = BackslashEscape
	}
	return QuoteValue(value, escape)
}

// Ensure Base implements Builder
var _ Builder = (*Base)(nil)
