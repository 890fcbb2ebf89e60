// Command pocketbook-tui runs the contacts and contas screens in the terminal.
//
// The start screen is read from tui.start and can be overridden by the first
// argument, e.g. "pocketbook-tui contactDetails/3".
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pocketbook/backend/internal/bootstrap"
	"github.com/pocketbook/backend/internal/config"
	"github.com/pocketbook/backend/internal/types"
	"github.com/pocketbook/backend/pkg/tui"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The terminal belongs to the UI, logs go to a file
	if err := os.MkdirAll(filepath.Dir(cfg.TUI.LogFile), 0o750); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	logFile, err := os.OpenFile(cfg.TUI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}
	if err := bootstrap.ConfigureLogging(cfg.Log, logFile, false); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	start := cfg.TUI.Start
	if len(os.Args) > 1 {
		start = os.Args[1]
	}

	route, err := tui.ParseRoute(start)
	if err != nil {
		log.Warn().Err(err).Str("route", start).Msg("falling back to the contacts list")
		route = tui.Route{Destination: tui.ContactsList}
	}

	p := tea.NewProgram(tui.New(ctx, tui.Deps{
		Contacts:  app.Contacts,
		Contas:    app.Contas,
		Simulator: app.Simulator,
		Today:     types.Today,
	}, route), tea.WithAltScreen(), tea.WithContext(ctx))

	log.Info().Str("route", route.String()).Msg("starting")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
