// Package config loads leaptable settings from defaults, a YAML file,
// the environment and command-line flags, in that order of precedence.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/leaptable/pkg/core"
)

// Config is the top-level configuration.
type Config struct {
	Target core.TargetConfig `koanf:"target"`
	Log    LogConfig         `koanf:"log"`
}

// LogConfig controls the logger handed to storage components.
type LogConfig struct {
	Level  string `koanf:"level"`  // debug, info, warn, error
	Format string `koanf:"format"` // text or json
}

// NewLogger builds a slog logger writing to w.
func (c LogConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := c.level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// Validate checks level and format.
func (c LogConfig) Validate() error {
	if _, err := c.level(); err != nil {
		return err
	}
	switch strings.ToLower(c.Format) {
	case "", "text", "json":
		return nil
	default:
		return fmt.Errorf("invalid log format %q (must be text or json)", c.Format)
	}
}

func (c LogConfig) level() (slog.Level, error) {
	var level slog.Level
	if c.Level == "" {
		return level, nil
	}
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return level, fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}
	return level, nil
}

// ApplyTargetDefaults fills in defaults for fields the user left empty.
func ApplyTargetDefaults(t *core.TargetConfig) {
	switch t.Dialect {
	case core.DialectSQLite:
		if t.Params == nil {
			t.Params = map[string]any{}
		}
		if _, ok := t.Params["busy_timeout"]; !ok {
			t.Params["busy_timeout"] = DefaultBusyTimeout
		}
	case core.DialectMySQL:
		if t.Host == "" {
			t.Host = "localhost"
		}
		if t.Port == 0 {
			t.Port = 3306
		}
	case core.DialectPostgres:
		if t.Host == "" {
			t.Host = "localhost"
		}
		if t.Port == 0 {
			t.Port = 5432
		}
	}
}

// Validate checks the target configuration.
func (c *Config) Validate() error {
	d, err := core.ParseDialect(string(c.Target.Dialect))
	if err != nil {
		return fmt.Errorf("target.dialect: %w", err)
	}
	c.Target.Dialect = d

	switch {
	case d == core.DialectSQLite && c.Target.Path == "":
		return fmt.Errorf("target.path is required for sqlite\nHint: use %q for a throwaway in-memory database", ":memory:")
	case d != core.DialectSQLite && c.Target.Database == "":
		return fmt.Errorf("target.database is required for %s", d)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}
