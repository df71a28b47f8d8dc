// Package sqlite opens SQLite databases for leaptable.
//
// Build modes:
//   - Default: pure Go modernc.org/sqlite
//   - CGO mode (CGO_ENABLED=1 -tags cgo_sqlite): mattn/go-sqlite3
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-viper/mapstructure/v2"

	"github.com/leapstack-labs/leaptable/pkg/core"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// DefaultBusyTimeout is how long a connection waits for a locked database.
const DefaultBusyTimeout = 5 * time.Second

// Params holds SQLite-specific configuration.
// Parsed from core.TargetConfig.Params using mapstructure.
type Params struct {
	// BusyTimeout bounds the wait on a locked database (e.g. "30s")
	BusyTimeout time.Duration `mapstructure:"busy_timeout"`

	// JournalMode: "delete", "wal", "memory", ...
	JournalMode string `mapstructure:"journal_mode"`

	// Synchronous: "off", "normal", "full"
	Synchronous string `mapstructure:"synchronous"`

	// ForeignKeys enables foreign key enforcement
	ForeignKeys bool `mapstructure:"foreign_keys"`
}

// DriverName returns the database/sql driver name in use.
func DriverName() string {
	return driverName
}

// DriverType returns "cgo" for mattn/go-sqlite3, "purego" for modernc.org/sqlite.
func DriverType() string {
	return driverType
}

// Open opens the database file named by cfg.Path. An empty path opens an
// in-memory database.
func Open(ctx context.Context, cfg core.TargetConfig, logger *slog.Logger) (*sql.DB, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	params, err := parseParams(cfg.Params)
	if err != nil {
		return nil, fmt.Errorf("invalid sqlite params: %w", err)
	}

	path := cfg.Path
	if path == "" {
		path = MemoryPath
	}

	logger.Debug("opening sqlite database",
		slog.String("path", path),
		slog.String("driver", driverType))

	db, err := sql.Open(driverName, buildDSN(path, params))
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}
	return db, nil
}

func parseParams(raw map[string]any) (Params, error) {
	params := Params{BusyTimeout: DefaultBusyTimeout}
	if len(raw) == 0 {
		return params, nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &params,
	})
	if err != nil {
		return params, err
	}
	if err := dec.Decode(raw); err != nil {
		return params, err
	}
	return params, nil
}
