package core

import (
	"fmt"
	"net"
	"strconv"
)

// TargetConfig holds configuration for connecting to a database.
type TargetConfig struct {
	Dialect Dialect `koanf:"dialect"`

	// File-based databases (SQLite). Use ":memory:" for an in-memory database.
	Path string `koanf:"path"`

	// Network databases
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Database string `koanf:"database"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`

	// Options contains additional driver-specific options
	Options map[string]string `koanf:"options"`

	// Params holds dialect-specific settings decoded by the driver package
	Params map[string]any `koanf:"params"`
}

// Address returns a human-readable name of the storage target for
// diagnostics. Credentials are never included.
func (t TargetConfig) Address() string {
	if t.Path != "" {
		return t.Path
	}
	if t.Host == "" && t.Database == "" {
		return fmt.Sprintf("%s database", t.Dialect)
	}
	host := t.Host
	if t.Port != 0 {
		host = net.JoinHostPort(t.Host, strconv.Itoa(t.Port))
	}
	return fmt.Sprintf("%s/%s", host, t.Database)
}
