package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const (
	// DefaultFileName is looked up in the working directory when no path is given.
	DefaultFileName = "leaptable.yaml"

	// EnvPrefix prefixes environment overrides, e.g. LEAPTABLE_TARGET__DIALECT.
	EnvPrefix = "LEAPTABLE_"

	// DefaultBusyTimeout is applied to SQLite targets without a busy_timeout param.
	DefaultBusyTimeout = "5s"
)

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"dialect":    "target.dialect",
	"path":       "target.path",
	"host":       "target.host",
	"port":       "target.port",
	"database":   "target.database",
	"user":       "target.user",
	"password":   "target.password",
	"log-level":  "log.level",
	"log-format": "log.format",
}

// BindFlags registers the flags Load understands on fs.
func BindFlags(fs *pflag.FlagSet) {
	fs.String("dialect", "", "database dialect (sqlite, mysql, postgres)")
	fs.String("path", "", "database file for sqlite targets")
	fs.String("host", "", "database host")
	fs.Int("port", 0, "database port")
	fs.String("database", "", "database name")
	fs.String("user", "", "database user")
	fs.String("password", "", "database password")
	fs.String("log-level", "", "log level (debug, info, warn, error)")
	fs.String("log-format", "", "log format (text, json)")
}

// Load reads configuration with precedence defaults < file < env < flags.
// An empty path falls back to DefaultFileName when it exists. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"target.dialect": "sqlite",
		"log.level":      "info",
		"log.format":     "text",
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path == "" {
		if _, err := os.Stat(DefaultFileName); err == nil {
			path = DefaultFileName
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// LEAPTABLE_TARGET__PARAMS__BUSY_TIMEOUT -> target.params.busy_timeout
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			key, ok := flagKeys[f.Name]
			if !ok || !f.Changed {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Target.User = expandEnvVars(cfg.Target.User)
	cfg.Target.Password = expandEnvVars(cfg.Target.Password)
	cfg.Target.Host = expandEnvVars(cfg.Target.Host)
	ApplyTargetDefaults(&cfg.Target)
	return &cfg, nil
}

// expandEnvVars replaces ${VAR} with the value of VAR. Unset variables
// expand to the empty string.
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(match[2 : len(match)-1])
	})
}
