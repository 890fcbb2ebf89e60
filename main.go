package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocketbook/backend/internal/bootstrap"
	"github.com/pocketbook/backend/internal/config"
	"github.com/pocketbook/backend/pkg/router"
	"github.com/rs/zerolog/log"
)

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	if format, ok := os.LookupEnv("LOG_FORMAT"); ok && cfg.Log.Format == "" {
		cfg.Log.Format = format
	}

	if err := bootstrap.ConfigureLogging(cfg.Log, os.Stdout, gin.IsDebugging()); err != nil {
		log.Fatal().Msg(err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer app.Close()

	url, err := cfg.APIURL()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, err := router.Config(url, router.Options{
		AllowOrigins: strings.Fields(cfg.CORS.AllowOrigins),
		Pprof:        cfg.Pprof.Enabled,
	})
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	router.AttachRoutes(app.Controller(), r.Group("/"))

	srv := http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.API.Port),
		Handler:           r,
		ReadHeaderTimeout: 15 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("could not shut down the server")
		}
	}()

	log.Info().Str("addr", srv.Addr).Str("url", url.String()).Msg("listening")
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("failed to listen and serve")
		return
	}
	log.Info().Msg("server closed")
}
