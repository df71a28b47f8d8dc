package dialect

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leaptable/pkg/clause"
	"github.com/leapstack-labs/leaptable/pkg/core"
)

func testBase() *Base {
	return &Base{
		Name:           core.DialectSQLite,
		UnboundedLimit: "LIMIT -1",
		EscapeText:     DoubleQuoteEscape,
	}
}

func TestBase_QuerySQL(t *testing.T) {
	b := testBase()

	tests := []struct {
		name  string
		query Query
		want  string
	}{
		{
			name:  "bare table",
			query: Query{Table: "users"},
			want:  "SELECT *\nFROM users;",
		},
		{
			name:  "fields",
			query: Query{Table: "users", Fields: []string{"name", "age"}},
			want:  "SELECT name, age\nFROM users;",
		},
		{
			name: "all clauses",
			query: Query{
				Table:      "users",
				Fields:     []string{"name", "age"},
				Conditions: []string{"age > 18", "name LIKE 'J%'"},
				OrderBy: []core.OrderTerm{
					{Field: "age", Direction: core.Desc},
					{Field: "name", Direction: core.Asc},
				},
				Limit:  10,
				Offset: 5,
			},
			want: "SELECT name, age\nFROM users\nWHERE age > 18 AND name LIKE 'J%'\nORDER BY age DESC, name ASC\nLIMIT 10\nOFFSET 5;",
		},
		{
			name:  "limit only",
			query: Query{Table: "users", Limit: 3},
			want:  "SELECT *\nFROM users\nLIMIT 3;",
		},
		{
			name:  "offset without limit",
			query: Query{Table: "users", Offset: 2},
			want:  "SELECT *\nFROM users\nLIMIT -1\nOFFSET 2;",
		},
		{
			name:  "blank conditions skipped",
			query: Query{Table: "users", Conditions: []string{"", "age = 1"}},
			want:  "SELECT *\nFROM users\nWHERE age = 1;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.QuerySQL(tt.query))
		})
	}
}

func TestBase_InsertSQL(t *testing.T) {
	b := testBase()

	t.Run("multiple rows", func(t *testing.T) {
		got, err := b.InsertSQL("users", []*core.Record{
			core.NewRecord("name", "John", "age", 25),
			core.NewRecord("name", "Jane", "age", 30),
		})
		require.NoError(t, err)
		assert.Equal(t, `INSERT INTO users (name, age) VALUES ("John", 25), ("Jane", 30);`, got)
	})

	t.Run("later records follow first record order", func(t *testing.T) {
		got, err := b.InsertSQL("users", []*core.Record{
			core.NewRecord("name", "John", "age", 25),
			core.NewRecord("age", 30, "name", "Jane"),
			core.NewRecord("name", "Solo"),
		})
		require.NoError(t, err)
		assert.Equal(t, `INSERT INTO users (name, age) VALUES ("John", 25), ("Jane", 30), ("Solo", NULL);`, got)
	})

	t.Run("non-finite floats insert NULL", func(t *testing.T) {
		got, err := b.InsertSQL("readings", []*core.Record{
			core.NewRecord("v", math.NaN()),
			core.NewRecord("v", math.Inf(1)),
		})
		require.NoError(t, err)
		assert.Equal(t, `INSERT INTO readings (v) VALUES (NULL), (NULL);`, got)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := b.InsertSQL("users", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrEmptyInput)
	})

	t.Run("record without columns", func(t *testing.T) {
		_, err := b.InsertSQL("users", []*core.Record{core.NewRecord()})
		assert.ErrorIs(t, err, core.ErrEmptyInput)
	})
}

func TestBase_CreateTableSQL(t *testing.T) {
	text := core.ColumnType{Dialect: core.DialectSQLite, Name: "TEXT"}
	integer := core.ColumnType{Dialect: core.DialectSQLite, Name: "INTEGER"}
	fields := []core.Field{{Name: "name", Type: text}, {Name: "age", Type: integer}}

	t.Run("full", func(t *testing.T) {
		got, err := testBase().CreateTableSQL(CreateTable{
			Table:         "users",
			Fields:        fields,
			PrimaryKey:    []string{"id"},
			Unique:        []string{"name"},
			AllowExisting: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "CREATE TABLE IF NOT EXISTS users (\nname TEXT,\nage INTEGER,\nPRIMARY KEY (id),\nUNIQUE (name)\n);", got)
	})

	t.Run("no constraints", func(t *testing.T) {
		got, err := testBase().CreateTableSQL(CreateTable{Table: "users", Fields: fields})
		require.NoError(t, err)
		assert.Equal(t, "CREATE TABLE users (\nname TEXT,\nage INTEGER\n);", got)
	})

	t.Run("table options", func(t *testing.T) {
		b := testBase()
		b.TableOptions = " ENGINE=InnoDB"
		got, err := b.CreateTableSQL(CreateTable{Table: "users", Fields: fields[:1], AllowExisting: true})
		require.NoError(t, err)
		assert.Equal(t, "CREATE TABLE IF NOT EXISTS users (\nname TEXT\n) ENGINE=InnoDB;", got)
	})

	t.Run("no fields", func(t *testing.T) {
		_, err := testBase().CreateTableSQL(CreateTable{Table: "users"})
		assert.ErrorIs(t, err, clause.ErrNoFields)
	})

	t.Run("untyped field", func(t *testing.T) {
		_, err := testBase().CreateTableSQL(CreateTable{Table: "users", Fields: []core.Field{{Name: "x"}}})
		assert.ErrorIs(t, err, clause.ErrInvalidField)
	})
}

func TestBase_DropAndDelete(t *testing.T) {
	b := testBase()
	assert.Equal(t, "DROP TABLE IF EXISTS users;", b.DropSQL("users", true))
	assert.Equal(t, "DROP TABLE users;", b.DropSQL("users", false))
	assert.Equal(t, "DELETE FROM users;", b.DeleteSQL("users"))
}

type label string

func TestQuoteValue(t *testing.T) {
	n := 7
	var nilPtr *int

	tests := []struct {
		name   string
		value  any
		escape func(string) string
		want   string
	}{
		{"nil", nil, BackslashEscape, "NULL"},
		{"string", "John", BackslashEscape, `"John"`},
		{"named string", label("x"), BackslashEscape, `"x"`},
		{"backslash escape", `say "hi" \o/`, BackslashEscape, `"say \"hi\" \\o/"`},
		{"double quote escape", `say "hi"`, DoubleQuoteEscape, `"say ""hi"""`},
		{"int", 25, BackslashEscape, "25"},
		{"negative int64", int64(-3), BackslashEscape, "-3"},
		{"uint8", uint8(200), BackslashEscape, "200"},
		{"float", 1.5, BackslashEscape, "1.5"},
		{"float32", float32(0.25), BackslashEscape, "0.25"},
		{"NaN", math.NaN(), BackslashEscape, "NULL"},
		{"positive infinity", math.Inf(1), BackslashEscape, "NULL"},
		{"negative infinity float32", float32(math.Inf(-1)), BackslashEscape, "NULL"},
		{"true", true, BackslashEscape, "TRUE"},
		{"false", false, BackslashEscape, "FALSE"},
		{"bytes", []byte{0xde, 0xad}, BackslashEscape, "X'DEAD'"},
		{"nil bytes", []byte(nil), BackslashEscape, "NULL"},
		{"pointer", &n, BackslashEscape, "7"},
		{"nil pointer", nilPtr, BackslashEscape, "NULL"},
		{
			"time",
			time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
			BackslashEscape,
			`"2024-01-02T03:04:05Z"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, QuoteValue(tt.value, tt.escape))
		})
	}
}

func TestBase_QuoteDefaultsToBackslash(t *testing.T) {
	b := &Base{Name: core.DialectMySQL}
	assert.Equal(t, `"a\"b"`, b.Quote(`a"b`))
}
