package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leaptable/pkg/core"
	"github.com/leapstack-labs/leaptable/pkg/dialect"
)

func TestSQLite_Registered(t *testing.T) {
	b, err := dialect.Resolve(core.DialectSQLite)
	require.NoError(t, err)
	assert.Same(t, SQLite, b)

	types, err := dialect.Types(core.DialectSQLite)
	require.NoError(t, err)
	assert.Equal(t, Integer, types.Integer)
	assert.Equal(t, []string{"INTEGER", "REAL", "TEXT", "BLOB", "NULL"}, types.Names())
}

func TestSQLite_Statements(t *testing.T) {
	got, err := SQLite.CreateTableSQL(dialect.CreateTable{
		Table:         "users",
		Fields:        []core.Field{{Name: "name", Type: Text}, {Name: "age", Type: Integer}},
		PrimaryKey:    []string{"name"},
		AllowExisting: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "CREATE TABLE IF NOT EXISTS users (\nname TEXT,\nage INTEGER,\nPRIMARY KEY (name)\n);", got)

	assert.Equal(t, "SELECT *\nFROM users\nLIMIT -1\nOFFSET 4;", SQLite.QuerySQL(dialect.Query{Table: "users", Offset: 4}))
	assert.Equal(t, `"it""s ""quoted"""`, SQLite.Quote(`it"s "quoted"`))
	assert.Equal(t, `"back\slash"`, SQLite.Quote(`back\slash`))
}
