// Package storage provides typed CRUD over a single database table.
//
// A Table binds a validated TableSchema to one storage target. Each Table
// owns one connection; use one Table per goroutine.
package storage

import (
	"context"
	"log/slog"

	"github.com/leapstack-labs/leaptable/pkg/adapter"
	"github.com/leapstack-labs/leaptable/pkg/core"
	"github.com/leapstack-labs/leaptable/pkg/dialect"

	// Register the dialects with a statement builder
	_ "github.com/leapstack-labs/leaptable/pkg/adapters/mysql"
	_ "github.com/leapstack-labs/leaptable/pkg/adapters/sqlite"
)

// QueryOptions restricts and orders a query. Zero values select everything.
type QueryOptions struct {
	Limit  int
	Offset int
	// Conditions are raw SQL expressions joined with AND
	Conditions []string
	OrderBy    []core.OrderTerm
}

// Option configures a Table.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	connOpts []adapter.Option
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithConnOptions passes options through to the table's connection.
func WithConnOptions(opts ...adapter.Option) Option {
	return func(o *options) {
		o.connOpts = append(o.connOpts, opts...)
	}
}

// Table is CRUD access to one table. The connection is opened lazily: each
// operation connects and disconnects around itself unless it runs inside
// Scope.
type Table struct {
	schema  TableSchema
	builder dialect.Builder
	conn    *adapter.Conn
	logger  *slog.Logger
}

// New resolves the target's dialect, validates schema against it and prepares
// a disconnected Table.
func New(target core.TargetConfig, schema TableSchema, opts ...Option) (*Table, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	logger := o.logger.With(slog.String("table", schema.Table))

	builder, err := dialect.Resolve(target.Dialect)
	if err != nil {
		logger.Error("failed to resolve dialect", slog.String("error", err.Error()))
		return nil, err
	}

	validated, err := schema.Validate(target.Dialect)
	if err != nil {
		logger.Error("invalid table schema", slog.String("error", err.Error()))
		return nil, err
	}

	conn, err := adapter.New(target, append([]adapter.Option{adapter.WithLogger(logger)}, o.connOpts...)...)
	if err != nil {
		return nil, err
	}

	return &Table{
		schema:  validated,
		builder: builder,
		conn:    conn,
		logger:  logger,
	}, nil
}

// Schema returns the validated schema.
func (t *Table) Schema() TableSchema {
	return t.schema
}

// Name returns the table name.
func (t *Table) Name() string {
	return t.schema.Table
}

// Conn returns the table's connection.
func (t *Table) Conn() *adapter.Conn {
	return t.conn
}

// Scope holds the connection open while fn runs.
func (t *Table) Scope(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.conn.Scope(ctx, fn)
}

// Create creates the table. With allowExisting, an existing table is kept.
func (t *Table) Create(ctx context.Context, allowExisting bool) error {
	query, err := t.builder.CreateTableSQL(dialect.CreateTable{
		Table:         t.schema.Table,
		Fields:        t.schema.Fields,
		PrimaryKey:    t.schema.PrimaryKey,
		Unique:        t.schema.Unique,
		AllowExisting: allowExisting,
	})
	if err != nil {
		return err
	}

	if err := t.exec(ctx, query); err != nil {
		return err
	}
	t.logger.Info("table created")
	return nil
}

// Drop drops the table. With allowMissing, a missing table is not an error.
func (t *Table) Drop(ctx context.Context, allowMissing bool) error {
	if err := t.exec(ctx, t.builder.DropSQL(t.schema.Table, allowMissing)); err != nil {
		return err
	}
	t.logger.Info("table dropped")
	return nil
}

// Query returns the records matching opts over all fields, in field order.
func (t *Table) Query(ctx context.Context, opts QueryOptions) ([]*core.Record, error) {
	query := t.builder.QuerySQL(dialect.Query{
		Table:      t.schema.Table,
		Fields:     t.schema.FieldNames(),
		Conditions: opts.Conditions,
		OrderBy:    opts.OrderBy,
		Limit:      opts.Limit,
		Offset:     opts.Offset,
	})

	var res *adapter.Result
	err := t.conn.Run(ctx, false, func(ctx context.Context) error {
		var err error
		res, err = t.conn.Query(ctx, query)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res.Records(), nil
}

// QueryFrame returns the records matching opts indexed by primary key.
func (t *Table) QueryFrame(ctx context.Context, opts QueryOptions) (*Frame, error) {
	records, err := t.Query(ctx, opts)
	if err != nil {
		return nil, err
	}
	return NewFrame(t.schema.PrimaryKey, t.schema.FieldNames(), records), nil
}

// Insert adds one record and returns the number of rows inserted.
func (t *Table) Insert(ctx context.Context, record *core.Record) (int64, error) {
	return t.InsertMany(ctx, []*core.Record{record})
}

// InsertMany adds records with a single statement and returns the number of
// rows inserted. Zero records is an error matching core.ErrEmptyInput.
func (t *Table) InsertMany(ctx context.Context, records []*core.Record) (int64, error) {
	query, err := t.builder.InsertSQL(t.schema.Table, records)
	if err != nil {
		return 0, err
	}
	return t.execCount(ctx, query)
}

// Empty deletes every row and returns how many were deleted.
func (t *Table) Empty(ctx context.Context) (int64, error) {
	return t.execCount(ctx, t.builder.DeleteSQL(t.schema.Table))
}

func (t *Table) exec(ctx context.Context, query string) error {
	_, err := t.execCount(ctx, query)
	return err
}

func (t *Table) execCount(ctx context.Context, query string) (int64, error) {
	var n int64
	err := t.conn.Run(ctx, true, func(ctx context.Context) error {
		var err error
		n, err = t.conn.Exec(ctx, query)
		return err
	})
	return n, err
}
