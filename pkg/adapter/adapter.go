// Package adapter manages the lifecycle of a single database connection.
//
// A Conn opens one physical connection through the driver registered for its
// dialect, runs every statement inside a lazily begun transaction, and closes
// the connection again when the outermost scope is released. Concrete drivers
// live in pkg/adapters/ subdirectories and register themselves from init().
package adapter

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/leapstack-labs/leaptable/pkg/core"
)

// OpenFunc opens a database handle for cfg. The returned handle is owned by
// the Conn that requested it.
type OpenFunc func(ctx context.Context, cfg core.TargetConfig, logger *slog.Logger) (*sql.DB, error)

// Result holds the rows returned by Query, fully read.
type Result struct {
	Columns []string
	Rows    [][]any
}

// Records converts the result rows to records keyed by column name.
func (r *Result) Records() []*core.Record {
	if r == nil {
		return nil
	}
	records := make([]*core.Record, len(r.Rows))
	for i, row := range r.Rows {
		records[i] = core.RecordFrom(r.Columns, row)
	}
	return records
}

// Option configures a Conn.
type Option func(*Conn)

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Conn) {
		c.logger = logger
	}
}

// WithOpener replaces the registered driver for this connection.
func WithOpener(open OpenFunc) Option {
	return func(c *Conn) {
		c.open = open
	}
}
