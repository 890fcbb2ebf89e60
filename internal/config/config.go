// Package config loads the Pocketbook configuration from defaults, an
// optional TOML file and POCKETBOOK_ prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Storage drivers.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

var (
	ErrAPIURLMissing  = errors.New("api.url must be set, e.g. POCKETBOOK_API_URL=http://localhost:8080")
	ErrDriverUnknown  = errors.New("storage.driver must be one of 'memory' or 'sqlite'")
	ErrFailureRate    = errors.New("simulation.failure_rate must be between 0 and 1")
	ErrSeedNegative   = errors.New("seed.contacts and seed.contas must not be negative")
	ErrLogLevel       = errors.New("log.level is not a valid zerolog level")
	ErrSQLiteDSNEmpty = errors.New("storage.dsn must be set when storage.driver is 'sqlite'")
)

// Config holds application configuration.
type Config struct {
	API        APIConfig
	Log        LogConfig
	Storage    StorageConfig
	Simulation SimulationConfig
	Seed       SeedConfig
	CORS       CORSConfig
	Pprof      PprofConfig
	TUI        TUIConfig
}

// APIConfig holds the settings of the HTTP API.
type APIConfig struct {
	URL  string
	Port int
}

// LogConfig holds logging settings. An empty format means "decide by gin mode".
type LogConfig struct {
	Format string
	Level  string
}

// StorageConfig selects the record store.
type StorageConfig struct {
	Driver string
	DSN    string
}

// SimulationConfig controls the artificial latency and failures of store operations.
type SimulationConfig struct {
	Enabled     bool
	Delay       time.Duration
	FailureRate float64 `mapstructure:"failure_rate"`
	FailLoads   bool    `mapstructure:"fail_loads"`
}

// SeedConfig controls the demo data put into empty stores.
type SeedConfig struct {
	Contacts   int
	Contas     int
	RandomSeed uint64 `mapstructure:"random_seed"`
}

// CORSConfig holds the allowed origins, separated by whitespace.
type CORSConfig struct {
	AllowOrigins string `mapstructure:"allow_origins"`
}

type PprofConfig struct {
	Enabled bool
}

// TUIConfig holds settings for the terminal UI.
type TUIConfig struct {
	LogFile string `mapstructure:"log_file"`
	Start   string
}

// Load reads configuration from file and env. Env var overrides use prefix POCKETBOOK_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("api.url", "http://localhost:8080")
	v.SetDefault("api.port", 8080)
	v.SetDefault("log.format", "")
	v.SetDefault("log.level", "")
	v.SetDefault("storage.driver", DriverMemory)
	v.SetDefault("storage.dsn", filepath.Join("data", "pocketbook.db"))
	v.SetDefault("simulation.enabled", true)
	v.SetDefault("simulation.delay", 2*time.Second)
	v.SetDefault("simulation.failure_rate", 0.5)
	v.SetDefault("simulation.fail_loads", false)
	v.SetDefault("seed.contacts", 20)
	v.SetDefault("seed.contas", 8)
	v.SetDefault("seed.random_seed", uint64(0))
	v.SetDefault("cors.allow_origins", "")
	v.SetDefault("pprof.enabled", false)
	v.SetDefault("tui.log_file", filepath.Join(os.TempDir(), "pocketbook-tui.log"))
	v.SetDefault("tui.start", "contactsList")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("POCKETBOOK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "pocketbook"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("POCKETBOOK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// A missing default config file is fine, an explicitly requested one is not
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the configuration for values that cannot work.
func (c Config) Validate() error {
	if c.API.URL == "" {
		return ErrAPIURLMissing
	}

	if _, err := url.Parse(c.API.URL); err != nil {
		return fmt.Errorf("api.url is not a valid URL: %w", err)
	}

	switch c.Storage.Driver {
	case DriverMemory:
	case DriverSQLite:
		if c.Storage.DSN == "" {
			return ErrSQLiteDSNEmpty
		}
	default:
		return ErrDriverUnknown
	}

	if c.Simulation.FailureRate < 0 || c.Simulation.FailureRate > 1 {
		return ErrFailureRate
	}

	if c.Seed.Contacts < 0 || c.Seed.Contas < 0 {
		return ErrSeedNegative
	}

	return nil
}

// APIURL returns the parsed base URL of the API without a trailing slash.
func (c Config) APIURL() (*url.URL, error) {
	u, err := url.Parse(strings.TrimSuffix(c.API.URL, "/"))
	if err != nil {
		return nil, fmt.Errorf("api.url is not a valid URL: %w", err)
	}
	return u, nil
}
