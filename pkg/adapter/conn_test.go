package adapter

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leaptable/pkg/core"
)

var testTarget = core.TargetConfig{Dialect: core.DialectSQLite, Path: "test.db"}

// newMockConn returns a Conn whose driver hands out a sqlmock handle.
func newMockConn(t *testing.T) (*Conn, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	c, err := New(testTarget, WithOpener(func(context.Context, core.TargetConfig, *slog.Logger) (*sql.DB, error) {
		return db, nil
	}))
	require.NoError(t, err)
	return c, mock
}

func TestConn_New(t *testing.T) {
	t.Run("unregistered dialect", func(t *testing.T) {
		_, err := New(core.TargetConfig{Dialect: core.DialectPostgres})
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrUnsupportedDialect)
	})

	t.Run("invalid dialect", func(t *testing.T) {
		_, err := New(core.TargetConfig{Dialect: "oracle"})
		assert.ErrorIs(t, err, core.ErrInvalidDialect)
	})

	t.Run("opener bypasses registry", func(t *testing.T) {
		c, err := New(core.TargetConfig{Dialect: core.DialectPostgres},
			WithOpener(func(context.Context, core.TargetConfig, *slog.Logger) (*sql.DB, error) {
				return nil, errors.New("unused")
			}))
		require.NoError(t, err)
		assert.False(t, c.IsConnected())
	})
}

func TestConn_NotConnected(t *testing.T) {
	c, mock := newMockConn(t)
	ctx := context.Background()

	_, err := c.Exec(ctx, "DELETE FROM users;")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNotConnected)

	var stateErr *core.ConnectionStateError
	require.True(t, errors.As(err, &stateErr))
	assert.Equal(t, "test.db", stateErr.Target)
	assert.Contains(t, err.Error(), "test.db")

	_, err = c.Query(ctx, "SELECT 1;")
	assert.ErrorIs(t, err, core.ErrNotConnected)

	err = c.Commit()
	assert.ErrorIs(t, err, core.ErrNotConnected)

	assert.NoError(t, c.Disconnect(), "disconnect on a closed conn is a no-op")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConn_ConnectIdempotent(t *testing.T) {
	opens := 0
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	c, err := New(testTarget, WithOpener(func(context.Context, core.TargetConfig, *slog.Logger) (*sql.DB, error) {
		opens++
		return db, nil
	}))
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, c.Connect(ctx))
	require.NoError(t, c.Connect(ctx))
	assert.Equal(t, 1, opens)
	assert.True(t, c.IsConnected())

	mock.ExpectClose()
	require.NoError(t, c.Disconnect())
	require.NoError(t, c.Disconnect())
	assert.False(t, c.IsConnected())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConn_ConnectFailure(t *testing.T) {
	boom := errors.New("no such file")
	c, err := New(testTarget, WithOpener(func(context.Context, core.TargetConfig, *slog.Logger) (*sql.DB, error) {
		return nil, boom
	}))
	require.NoError(t, err)

	err = c.Connect(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.False(t, c.IsConnected())
}

func TestConn_ExecCommit(t *testing.T) {
	c, mock := newMockConn(t)
	ctx := context.Background()
	require.NoError(t, c.Connect(ctx))

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO users (name) VALUES ("a"), ("b");`).WillReturnResult(sqlmock.NewResult(2, 2))
	mock.ExpectExec("DELETE FROM users;").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()
	mock.ExpectClose()

	n, err := c.Exec(ctx, `INSERT INTO users (name) VALUES ("a"), ("b");`)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = c.Exec(ctx, "DELETE FROM users;")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	require.NoError(t, c.Commit())
	require.NoError(t, c.Commit(), "commit without pending work is a no-op")
	require.NoError(t, c.Disconnect())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConn_DisconnectRollsBack(t *testing.T) {
	c, mock := newMockConn(t)
	ctx := context.Background()
	require.NoError(t, c.Connect(ctx))

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM users;").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectRollback()
	mock.ExpectClose()

	_, err := c.Exec(ctx, "DELETE FROM users;")
	require.NoError(t, err)
	require.NoError(t, c.Disconnect())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConn_ExecError(t *testing.T) {
	c, mock := newMockConn(t)
	ctx := context.Background()
	require.NoError(t, c.Connect(ctx))

	mock.ExpectBegin()
	mock.ExpectExec("INVALID SQL").WillReturnError(assert.AnError)

	_, err := c.Exec(ctx, "INVALID SQL")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrExecution)
	assert.ErrorIs(t, err, assert.AnError)

	var execErr *core.ExecutionError
	require.True(t, errors.As(err, &execErr))
	assert.Equal(t, "INVALID SQL", execErr.Statement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConn_Query(t *testing.T) {
	c, mock := newMockConn(t)
	ctx := context.Background()
	require.NoError(t, c.Connect(ctx))

	mock.ExpectQuery("SELECT name, age\nFROM users;").WillReturnRows(
		sqlmock.NewRows([]string{"name", "age"}).
			AddRow([]byte("Alice"), int64(25)).
			AddRow("Bob", nil),
	)

	res, err := c.Query(ctx, "SELECT name, age\nFROM users;")
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "age"}, res.Columns)
	require.Len(t, res.Rows, 2)
	assert.Equal(t, []any{"Alice", int64(25)}, res.Rows[0])
	assert.Equal(t, []any{"Bob", nil}, res.Rows[1])

	records := res.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "Alice", records[0].Value("name"))
	assert.Equal(t, []string{"name", "age"}, records[1].Columns())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConn_QueryKeepsBlobBytes(t *testing.T) {
	c, mock := newMockConn(t)
	ctx := context.Background()
	require.NoError(t, c.Connect(ctx))

	mock.ExpectQuery("SELECT data\nFROM files;").WillReturnRows(
		sqlmock.NewRowsWithColumnDefinition(sqlmock.NewColumn("data").OfType("BLOB", []byte{})).
			AddRow([]byte{0x01, 0x02}),
	)

	res, err := c.Query(ctx, "SELECT data\nFROM files;")
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	assert.Equal(t, []byte{0x01, 0x02}, res.Rows[0][0])
}

func TestConn_QueryError(t *testing.T) {
	c, mock := newMockConn(t)
	ctx := context.Background()
	require.NoError(t, c.Connect(ctx))

	mock.ExpectQuery("SELECT *\nFROM missing;").WillReturnError(assert.AnError)

	_, err := c.Query(ctx, "SELECT *\nFROM missing;")
	assert.ErrorIs(t, err, core.ErrExecution)
}

func TestConn_QueryJoinsPendingTransaction(t *testing.T) {
	c, mock := newMockConn(t)
	ctx := context.Background()
	require.NoError(t, c.Connect(ctx))

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM users;").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectQuery("SELECT name\nFROM users;").WillReturnRows(sqlmock.NewRows([]string{"name"}))
	mock.ExpectCommit()

	_, err := c.Exec(ctx, "DELETE FROM users;")
	require.NoError(t, err)
	_, err = c.Query(ctx, "SELECT name\nFROM users;")
	require.NoError(t, err)
	require.NoError(t, c.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConn_QueryLeavesNoTransaction(t *testing.T) {
	c, mock := newMockConn(t)
	ctx := context.Background()
	require.NoError(t, c.Connect(ctx))

	mock.ExpectQuery("SELECT 1;").WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(int64(1)))
	mock.ExpectClose()

	_, err := c.Query(ctx, "SELECT 1;")
	require.NoError(t, err)
	assert.Nil(t, c.tx, "a read outside a transaction must not open one")
	require.NoError(t, c.Disconnect())
	assert.NoError(t, mock.ExpectationsWereMet(), "no begin or rollback expected")
}
