package adapter

import (
	"context"
	"database/sql"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leaptable/pkg/core"
)

func TestRegisterDriver(t *testing.T) {
	RegisterDriver(core.DialectMySQL, func(context.Context, core.TargetConfig, *slog.Logger) (*sql.DB, error) {
		return nil, nil
	})

	assert.True(t, IsRegistered(core.DialectMySQL), "mysql should be registered after RegisterDriver()")
	assert.Contains(t, ListDrivers(), "mysql")

	open, err := Driver(core.DialectMySQL)
	require.NoError(t, err)
	assert.NotNil(t, open)
}

func TestDriver_Errors(t *testing.T) {
	_, err := Driver("fake_db")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidDialect)
	assert.Contains(t, err.Error(), "fake_db")

	_, err = Driver(core.DialectPostgres)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrUnsupportedDialect)
	assert.Contains(t, err.Error(), "driver")
}
