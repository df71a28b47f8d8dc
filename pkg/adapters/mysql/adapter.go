// Package mysql opens MySQL databases for leaptable.
package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/go-viper/mapstructure/v2"

	"github.com/leapstack-labs/leaptable/pkg/core"
)

// DefaultPort is the MySQL server port used when the target has none.
const DefaultPort = 3306

// Params holds MySQL-specific configuration.
// Parsed from core.TargetConfig.Params using mapstructure.
type Params struct {
	// Charset for the session (default utf8mb4)
	Charset string `mapstructure:"charset"`

	// TLS: "true", "false", "skip-verify", "preferred" or a registered config name
	TLS string `mapstructure:"tls"`

	// ParseTime scans DATETIME columns into time.Time (default true)
	ParseTime bool `mapstructure:"parse_time"`

	// Timeout bounds the dial (e.g. "10s")
	Timeout time.Duration `mapstructure:"timeout"`
}

// Open connects to the MySQL server named by cfg.
func Open(ctx context.Context, cfg core.TargetConfig, logger *slog.Logger) (*sql.DB, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	params, err := parseParams(cfg.Params)
	if err != nil {
		return nil, fmt.Errorf("invalid mysql params: %w", err)
	}

	mcfg := buildConfig(cfg, params)
	mcfg.Logger = driverLogger{logger}

	logger.Debug("connecting to mysql", slog.String("addr", mcfg.Addr), slog.String("database", mcfg.DBName))

	connector, err := mysql.NewConnector(mcfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open mysql connection: %w", err)
	}
	db := sql.OpenDB(connector)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping mysql: %w", err)
	}
	return db, nil
}

// buildConfig constructs the driver configuration. Target options are passed
// through as connection parameters.
func buildConfig(cfg core.TargetConfig, params Params) *mysql.Config {
	host := cfg.Host
	if host == "" {
		host = "localhost"
	}

	port := cfg.Port
	if port == 0 {
		port = DefaultPort
	}

	mcfg := mysql.NewConfig()
	mcfg.User = cfg.User
	mcfg.Passwd = cfg.Password
	mcfg.Net = "tcp"
	mcfg.Addr = net.JoinHostPort(host, strconv.Itoa(port))
	mcfg.DBName = cfg.Database
	mcfg.ParseTime = params.ParseTime
	mcfg.Timeout = params.Timeout
	mcfg.TLSConfig = params.TLS

	mcfg.Params = map[string]string{"charset": params.Charset}
	for k, v := range cfg.Options {
		mcfg.Params[k] = v
	}
	return mcfg
}

func parseParams(raw map[string]any) (Params, error) {
	params := Params{
		Charset:   "utf8mb4",
		ParseTime: true,
		Timeout:   10 * time.Second,
	}
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

// driverLogger routes the driver's own diagnostics to slog.
type driverLogger struct {
	logger *slog.Logger
}

func (l driverLogger) Print(v ...any) {
	l.logger.Warn(fmt.Sprint(v...), slog.String("component", "mysql-driver"))
}
