// Package config provides the refframes configuration loader.
// Config is loaded by merging refframes.yaml → ~/.refframes/config.yaml → REFFRAMES_* env vars.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Defaults contains factory-default values applied before any config file is loaded.
var Defaults = map[string]any{
	"ephemeris.cache":      true,
	"ephemeris.truncation": "1m",
	"log.level":            "info",
	"log.format":           "text",
}

// ─────────────────────────────────────────────────────────────────────────────
// Config types
// ─────────────────────────────────────────────────────────────────────────────

// Config is the fully-decoded configuration.
type Config struct {
	Ephemeris EphemerisConfig `mapstructure:"ephemeris"`
	Output    OutputConfig    `mapstructure:"output"`
	Log       LogConfig       `mapstructure:"log"`
}

// EphemerisConfig locates the DE kernel and controls the state cache.
type EphemerisConfig struct {
	Kernel     string `mapstructure:"kernel"`     // path to the binary JPL DE ephemeris file
	Cache      bool   `mapstructure:"cache"`      // enable the bbolt state cache
	Truncation string `mapstructure:"truncation"` // epoch grid for cache-friendly sweeps, e.g. "1m"
}

// OutputConfig holds output locations.
type OutputConfig struct {
	HorizonDir string `mapstructure:"horizon_dir"` // directory receiving <planet>-<year>.csv files
}

// LogConfig controls the slog sinks.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug | info | warn | error
	Format string `mapstructure:"format"` // text | json
}

// CacheTruncation returns the parsed epoch-grid truncation used by sweep-style
// callers to quantize lookups onto cache-friendly epochs. Defaults to one minute.
func (c *Config) CacheTruncation() time.Duration {
	d, err := time.ParseDuration(c.Ephemeris.Truncation)
	if err != nil || d <= 0 {
		return time.Minute
	}
	return d
}

// ─────────────────────────────────────────────────────────────────────────────
// Loading
// ─────────────────────────────────────────────────────────────────────────────

// Load reads the configuration, optionally from an explicit file path.
func Load(explicitPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	for key, val := range Defaults {
		v.SetDefault(key, val)
	}

	// Environment variable binding: REFFRAMES_EPHEMERIS_KERNEL → ephemeris.kernel
	v.SetEnvPrefix("REFFRAMES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Load global config (~/.refframes/config.yaml) if it exists
	globalCfg := filepath.Join(Home(), "config.yaml")
	if _, err := os.Stat(globalCfg); err == nil {
		v.SetConfigFile(globalCfg)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read global config: %w", err)
		}
	}

	// Load project config
	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
	} else {
		path, err := discoverProjectConfig()
		if err == nil {
			v.SetConfigFile(path)
		}
	}

	if v.ConfigFileUsed() != "" || explicitPath != "" {
		if err := v.MergeInConfig(); err != nil && explicitPath != "" {
			return nil, fmt.Errorf("read project config %q: %w", explicitPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Ephemeris.Kernel = os.ExpandEnv(cfg.Ephemeris.Kernel)
	cfg.Output.HorizonDir = os.ExpandEnv(cfg.Output.HorizonDir)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Internal helpers
// ─────────────────────────────────────────────────────────────────────────────

// discoverProjectConfig walks up from the CWD looking for refframes.yaml.
func discoverProjectConfig() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, "refframes.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("refframes.yaml not found (searched up from cwd)")
}

// validate performs semantic validation on the loaded config.
func validate(cfg *Config) error {
	switch cfg.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", cfg.Log.Format)
	}
	if cfg.Ephemeris.Truncation != "" {
		if _, err := time.ParseDuration(cfg.Ephemeris.Truncation); err != nil {
			return fmt.Errorf("ephemeris.truncation: %w", err)
		}
	}
	return nil
}

// CachePath returns the location of the bbolt state cache.
func CachePath() string {
	return filepath.Join(Home(), "cache.db")
}

// Home returns the refframes home directory (~/.refframes).
func Home() string {
	if h := os.Getenv("REFFRAMES_HOME"); h != "" {
		return h
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".refframes"
	}
	return filepath.Join(home, ".refframes")
}
