// Package bootstrap wires configuration, logging and the record stores
// for the API server and the terminal UI.
package bootstrap

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pocketbook/backend/internal/config"
	"github.com/pocketbook/backend/internal/types"
	v1 "github.com/pocketbook/backend/pkg/controllers/v1"
	"github.com/pocketbook/backend/pkg/datasource"
	"github.com/pocketbook/backend/pkg/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Logger returns the logger for the configuration. Without an explicit
// format, human readable output is used when debug is set and JSON otherwise.
func Logger(cfg config.LogConfig, out io.Writer, debug bool) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	if cfg.Level != "" {
		l, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return zerolog.Logger{}, fmt.Errorf("%w: %s", config.ErrLogLevel, cfg.Level)
		}
		level = l
	}

	switch cfg.Format {
	case "human":
		out = zerolog.ConsoleWriter{Out: out}
	case "json":
	case "":
		if debug {
			out = zerolog.ConsoleWriter{Out: out}
		}
	default:
		return zerolog.Logger{}, fmt.Errorf("log.format must be 'human' or 'json', got %q", cfg.Format)
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}

// ConfigureLogging replaces the global logger.
func ConfigureLogging(cfg config.LogConfig, out io.Writer, debug bool) error {
	logger, err := Logger(cfg, out, debug)
	if err != nil {
		return err
	}

	zerolog.SetGlobalLevel(logger.GetLevel())
	log.Logger = logger
	return nil
}

// App holds the stores shared by all surfaces.
type App struct {
	Contacts  datasource.Store[models.Contact]
	Contas    datasource.Store[models.Conta]
	Simulator *datasource.Simulator

	db *gorm.DB
}

// New opens the configured stores and seeds them with demo records when
// they are empty.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	app := &App{
		Simulator: datasource.NewSimulator(
			cfg.Simulation.Enabled,
			cfg.Simulation.Delay,
			cfg.Simulation.FailureRate,
			cfg.Simulation.FailLoads,
			nil,
		),
	}

	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		if err := ensureDir(cfg.Storage.DSN); err != nil {
			return nil, err
		}

		db, err := models.Connect(cfg.Storage.DSN)
		if err != nil {
			return nil, err
		}

		app.db = db
		app.Contacts = datasource.NewSQLite[models.Contact](db)
		app.Contas = datasource.NewSQLite[models.Conta](db)
	default:
		app.Contacts = datasource.NewMemory[models.Contact]()
		app.Contas = datasource.NewMemory[models.Conta]()
	}

	if err := app.seed(ctx, cfg.Seed); err != nil {
		_ = app.Close()
		return nil, err
	}

	log.Info().
		Str("driver", cfg.Storage.Driver).
		Bool("simulation", cfg.Simulation.Enabled).
		Dur("delay", cfg.Simulation.Delay).
		Float64("failure_rate", cfg.Simulation.FailureRate).
		Msg("stores ready")

	return app, nil
}

func (a *App) seed(ctx context.Context, cfg config.SeedConfig) error {
	seed := cfg.RandomSeed
	if seed == 0 {
		seed = rand.Uint64()
	}
	r := rand.New(rand.NewPCG(seed, seed))

	now := time.Now()
	if err := datasource.SeedIfEmpty(ctx, a.Contacts, datasource.GenerateContacts(r, cfg.Contacts, now)); err != nil {
		return err
	}

	return datasource.SeedIfEmpty(ctx, a.Contas, datasource.GenerateContas(r, cfg.Contas, types.DateOf(now)))
}

// Controller returns the API controller working on the stores.
func (a *App) Controller() v1.Controller {
	return v1.Controller{
		Contacts:  a.Contacts,
		Contas:    a.Contas,
		Simulator: a.Simulator,
	}
}

// Close releases the database connection, if any.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}

	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ensureDir creates the directory of a file DSN.
func ensureDir(dsn string) error {
	if dsn == ":memory:" || strings.HasPrefix(dsn, "file:") {
		return nil
	}

	dir := filepath.Dir(strings.SplitN(dsn, "?", 2)[0])
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	return nil
}
