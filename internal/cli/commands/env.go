// Package commands implements the leaptable subcommands.
package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/leapstack-labs/leaptable/pkg/config"
	"github.com/leapstack-labs/leaptable/pkg/storage"
)

// Env is the state the root command prepares for subcommands.
type Env struct {
	Config     *config.Config
	Logger     *slog.Logger
	SchemaPath string
}

type envKey struct{}

// WithEnv stores env in ctx.
func WithEnv(ctx context.Context, env *Env) context.Context {
	return context.WithValue(ctx, envKey{}, env)
}

// EnvFrom returns the Env stored in ctx, if any.
func EnvFrom(ctx context.Context) (*Env, bool) {
	env, ok := ctx.Value(envKey{}).(*Env)
	return env, ok
}

// Schema loads and validates the schema file against the configured dialect.
func (e *Env) Schema() (storage.TableSchema, error) {
	schema, err := e.loadSchema()
	if err != nil {
		return storage.TableSchema{}, err
	}
	return schema.Validate(e.Config.Target.Dialect)
}

// Table opens storage for the schema file.
func (e *Env) Table() (*storage.Table, error) {
	schema, err := e.loadSchema()
	if err != nil {
		return nil, err
	}
	return storage.New(e.Config.Target, schema, storage.WithLogger(e.Logger))
}

func (e *Env) loadSchema() (storage.TableSchema, error) {
	if e.SchemaPath == "" {
		return storage.TableSchema{}, errors.New("no schema file given\nHint: pass --schema <file>")
	}
	return storage.LoadSchemaFile(e.SchemaPath, e.Config.Target.Dialect)
}

func envFrom(ctx context.Context) (*Env, error) {
	env, ok := EnvFrom(ctx)
	if !ok {
		return nil, errors.New("command run without configuration")
	}
	return env, nil
}

func openTable(ctx context.Context) (*storage.Table, error) {
	env, err := envFrom(ctx)
	if err != nil {
		return nil, err
	}
	return env.Table()
}
