package bootstrap_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/pocketbook/backend/internal/bootstrap"
	"github.com/pocketbook/backend/internal/config"
	"github.com/pocketbook/backend/test"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(driver, dsn string) config.Config {
	return config.Config{
		API:     config.APIConfig{URL: "http://localhost:8080", Port: 8080},
		Storage: config.StorageConfig{Driver: driver, DSN: dsn},
		Simulation: config.SimulationConfig{
			Enabled:     false,
			Delay:       time.Second,
			FailureRate: 0.5,
		},
		Seed: config.SeedConfig{Contacts: 5, Contas: 3, RandomSeed: 42},
	}
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LogConfig
		debug   bool
		level   zerolog.Level
		console bool
		err     string
	}{
		{"Release default", config.LogConfig{}, false, zerolog.InfoLevel, false, ""},
		{"Debug default", config.LogConfig{}, true, zerolog.DebugLevel, true, ""},
		{"Explicit level", config.LogConfig{Level: "WARN"}, true, zerolog.WarnLevel, true, ""},
		{"JSON in debug", config.LogConfig{Format: "json"}, true, zerolog.DebugLevel, false, ""},
		{"Human in release", config.LogConfig{Format: "human"}, false, zerolog.InfoLevel, true, ""},
		{"Invalid level", config.LogConfig{Level: "loud"}, false, zerolog.NoLevel, false, "log.level"},
		{"Invalid format", config.LogConfig{Format: "xml"}, false, zerolog.NoLevel, false, "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := bootstrap.Logger(tt.cfg, &buf, tt.debug)
			if tt.err != "" {
				assert.ErrorContains(t, err, tt.err)
				return
			}

			require.Nil(t, err)
			assert.Equal(t, tt.level, logger.GetLevel())

			logger.WithLevel(zerolog.ErrorLevel).Msg("hello")
			if tt.console {
				assert.NotContains(t, buf.String(), `"message":"hello"`)
			} else {
				assert.Contains(t, buf.String(), `"message":"hello"`)
			}
		})
	}
}

func TestNewMemorySeeds(t *testing.T) {
	app, err := bootstrap.New(context.Background(), testConfig(config.DriverMemory, ""))
	require.Nil(t, err)
	defer app.Close()

	contacts, err := app.Contacts.FindAll(context.Background())
	require.Nil(t, err)
	assert.Len(t, contacts, 5)

	contas, err := app.Contas.FindAll(context.Background())
	require.Nil(t, err)
	assert.Len(t, contas, 3)

	assert.False(t, app.Simulator.Enabled)
	assert.Equal(t, time.Second, app.Simulator.Delay)

	co := app.Controller()
	assert.Equal(t, app.Contacts, co.Contacts)
	assert.Equal(t, app.Simulator, co.Simulator)
}

func TestNewSQLiteSeedsOnce(t *testing.T) {
	cfg := testConfig(config.DriverSQLite, test.TmpFile(t))

	app, err := bootstrap.New(context.Background(), cfg)
	require.Nil(t, err)

	contacts, err := app.Contacts.FindAll(context.Background())
	require.Nil(t, err)
	require.Len(t, contacts, 5)
	require.Nil(t, app.Close())

	// A second start finds the records and does not seed again
	cfg.Seed.Contacts = 10
	app, err = bootstrap.New(context.Background(), cfg)
	require.Nil(t, err)
	defer app.Close()

	contacts, err = app.Contacts.FindAll(context.Background())
	require.Nil(t, err)
	assert.Len(t, contacts, 5)
}
