package clause

import (
	"strings"
	"testing"

	"github.com/leapstack-labs/leaptable/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	textType    = core.ColumnType{Dialect: core.DialectSQLite, Name: "TEXT"}
	integerType = core.ColumnType{Dialect: core.DialectSQLite, Name: "INTEGER"}
)

func TestPrimaryKey(t *testing.T) {
	got, err := PrimaryKey([]string{"id", "name"})
	require.NoError(t, err)
	assert.Equal(t, "PRIMARY KEY (id, name)", got)

	_, err = PrimaryKey(nil)
	assert.ErrorIs(t, err, ErrEmptyKey)
}

func TestFieldsDeclare(t *testing.T) {
	fields := []core.Field{
		{Name: "name", Type: textType},
		{Name: "age", Type: integerType},
		{Name: "id", Type: integerType},
	}

	got, err := FieldsDeclare(fields)
	require.NoError(t, err)
	assert.Equal(t, "name TEXT,\nage INTEGER,\nid INTEGER", got)
}

func TestFieldsDeclare_RoundTrip(t *testing.T) {
	fields := []core.Field{
		{Name: "zeta", Type: textType},
		{Name: "alpha", Type: integerType},
		{Name: "mid", Type: core.ColumnType{Dialect: core.DialectSQLite, Name: "REAL"}},
	}

	got, err := FieldsDeclare(fields)
	require.NoError(t, err)

	var parsed []core.Field
	for _, decl := range strings.Split(got, DeclareSep) {
		name, typ, ok := strings.Cut(decl, " ")
		require.True(t, ok, "declaration %q should be 'name TYPE'", decl)
		parsed = append(parsed, core.Field{Name: name, Type: core.ColumnType{Dialect: core.DialectSQLite, Name: typ}})
	}
	assert.Equal(t, fields, parsed)
}

func TestFieldsDeclare_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		fields []core.Field
	}{
		{"missing name", []core.Field{{Type: textType}}},
		{"missing type", []core.Field{{Name: "name"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FieldsDeclare(tt.fields)
			assert.ErrorIs(t, err, ErrInvalidField)
		})
	}

	got, err := FieldsDeclare(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOptionalClauses(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"unique", Unique([]string{"name"}), "UNIQUE (name)"},
		{"unique composite", Unique([]string{"name", "age"}), "UNIQUE (name, age)"},
		{"unique empty", Unique(nil), ""},
		{"where", Where([]string{"age > 20", `name = "John"`}), `WHERE age > 20 AND name = "John"`},
		{"where skips blanks", Where([]string{"", "age > 20"}), "WHERE age > 20"},
		{"where empty", Where(nil), ""},
		{"order by", OrderBy([]core.OrderTerm{{Field: "name", Direction: core.Asc}, {Field: "age", Direction: core.Desc}}), "ORDER BY name ASC, age DESC"},
		{"order by default direction", OrderBy([]core.OrderTerm{{Field: "name"}}), "ORDER BY name"},
		{"order by empty", OrderBy(nil), ""},
		{"limit", Limit(10), "LIMIT 10"},
		{"limit zero", Limit(0), ""},
		{"limit negative", Limit(-1), ""},
		{"offset", Offset(5), "OFFSET 5"},
		{"offset zero", Offset(0), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "WHERE a\nLIMIT 1", Join(StatementSep, "WHERE a", "", "", "LIMIT 1"))
	assert.Equal(t, "", Join(StatementSep, "", ""))
	assert.NotContains(t, Join(DeclareSep, "a INTEGER", "", "UNIQUE (a)"), ",\n,\n")
}
