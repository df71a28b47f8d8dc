package adapter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/leapstack-labs/leaptable/pkg/core"
)

// Conn is a lazily opened connection to one storage target.
//
// Exec runs inside a transaction that is begun on first use and ended by
// Commit or Disconnect. Query joins that transaction when one is pending and
// otherwise reads in autocommit mode, so no lock outlives a read. A Conn is
// not safe for concurrent use; give each goroutine its own.
type Conn struct {
	cfg    core.TargetConfig
	open   OpenFunc
	logger *slog.Logger

	db   *sql.DB
	tx   *sql.Tx
	refs int
	// owned is set when the outermost Acquire opened the connection
	owned bool
}

// New creates a disconnected Conn for cfg. Unless WithOpener is given, the
// driver registered for cfg.Dialect is used.
func New(cfg core.TargetConfig, opts ...Option) (*Conn, error) {
	c := &Conn{cfg: cfg}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	c.logger = c.logger.With(
		slog.String("conn_id", uuid.NewString()),
		slog.String("dialect", string(cfg.Dialect)),
	)

	if c.open == nil {
		open, err := Driver(cfg.Dialect)
		if err != nil {
			return nil, err
		}
		c.open = open
	}
	return c, nil
}

// Target returns the connection settings.
func (c *Conn) Target() core.TargetConfig {
	return c.cfg
}

// IsConnected returns true if the database connection is established.
func (c *Conn) IsConnected() bool {
	return c.db != nil
}

// Connect opens the connection. Calling it on an open Conn does nothing.
func (c *Conn) Connect(ctx context.Context) error {
	if c.db != nil {
		return nil
	}

	c.logger.Debug("connecting", slog.String("target", c.cfg.Address()))
	db, err := c.open(ctx, c.cfg, c.logger)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", c.cfg.Address(), err)
	}

	// One physical connection per Conn; for SQLite ":memory:" this is also
	// what keeps the database alive between statements.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	c.db = db
	return nil
}

// Disconnect rolls back uncommitted work and closes the connection.
// Calling it on a closed Conn does nothing.
func (c *Conn) Disconnect() error {
	if c.db == nil {
		return nil
	}

	var errs []error
	if c.tx != nil {
		c.logger.Debug("rolling back uncommitted work")
		if err := c.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			errs = append(errs, fmt.Errorf("failed to roll back: %w", err))
		}
		c.tx = nil
	}

	c.logger.Debug("closing database connection")
	if err := c.db.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
	}
	c.db = nil
	return errors.Join(errs...)
}

// Exec executes a statement that doesn't return rows and reports the number
// of affected rows.
func (c *Conn) Exec(ctx context.Context, query string) (int64, error) {
	tx, err := c.begin(ctx, "exec")
	if err != nil {
		return 0, err
	}

	c.logger.Debug("executing statement", slog.String("sql", query))
	res, err := tx.ExecContext(ctx, query)
	if err != nil {
		return 0, c.executionError(query, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		// not every driver reports it for DDL
		return 0, nil
	}
	return n, nil
}

// Query executes a statement that returns rows and reads all of them.
// Outside a pending transaction the read is not wrapped in one.
// Text returned by the driver as []byte is converted to string; columns
// declared as BLOB or BINARY keep their bytes.
func (c *Conn) Query(ctx context.Context, query string) (*Result, error) {
	if c.db == nil {
		return nil, &core.ConnectionStateError{Target: c.cfg.Address(), Op: "query"}
	}
	var q interface {
		QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	} = c.db
	if c.tx != nil {
		q = c.tx
	}

	c.logger.Debug("executing query", slog.String("sql", query))
	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, c.executionError(query, err)
	}
	defer func() { _ = rows.Close() }()

	types, err := rows.ColumnTypes()
	if err != nil {
		return nil, c.executionError(query, err)
	}

	result := &Result{Columns: make([]string, len(types))}
	binary := make([]bool, len(types))
	for i, ct := range types {
		result.Columns[i] = ct.Name()
		name := strings.ToUpper(ct.DatabaseTypeName())
		binary[i] = strings.Contains(name, "BLOB") || strings.Contains(name, "BINARY")
	}

	for rows.Next() {
		values := make([]any, len(types))
		dest := make([]any, len(types))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, c.executionError(query, err)
		}
		for i, v := range values {
			if b, ok := v.([]byte); ok && !binary[i] {
				values[i] = string(b)
			}
		}
		result.Rows = append(result.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, c.executionError(query, err)
	}
	return result, nil
}

// Commit makes the pending transaction durable. Without pending work it
// does nothing.
func (c *Conn) Commit() error {
	if c.db == nil {
		return &core.ConnectionStateError{Target: c.cfg.Address(), Op: "commit"}
	}
	if c.tx == nil {
		return nil
	}

	tx := c.tx
	c.tx = nil
	if err := tx.Commit(); err != nil {
		return c.executionError("COMMIT", err)
	}
	return nil
}

func (c *Conn) begin(ctx context.Context, op string) (*sql.Tx, error) {
	if c.db == nil {
		return nil, &core.ConnectionStateError{Target: c.cfg.Address(), Op: op}
	}
	if c.tx != nil {
		return c.tx, nil
	}

	// The transaction outlives the call that opened it.
	tx, err := c.db.BeginTx(context.WithoutCancel(ctx), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	c.tx = tx
	return tx, nil
}

func (c *Conn) executionError(query string, err error) error {
	c.logger.Error("failed to execute SQL",
		slog.String("sql", query),
		slog.String("error", err.Error()))
	return &core.ExecutionError{Statement: query, Err: err}
}
