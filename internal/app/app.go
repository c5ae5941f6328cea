package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/you/clinicsvc/internal/config"
	"github.com/you/clinicsvc/internal/infrastructure/auth"
	"github.com/you/clinicsvc/internal/infrastructure/database"
	"github.com/you/clinicsvc/internal/infrastructure/logging"
	"github.com/you/clinicsvc/internal/services"
)

// Run serves the API until SIGINT or SIGTERM, then drains in-flight requests
func Run(cfg *config.Config) error {
	logger := logging.New(cfg.LogLevel, cfg.LogPretty, os.Stdout)
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: c.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Str("login_mode", cfg.LoginMode).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

// Migrate creates the schema and seeds route policies without serving
func Migrate(cfg *config.Config) error {
	logger := logging.New(cfg.LogLevel, cfg.LogPretty, os.Stdout)

	db, err := database.Open(cfg.DBDriver, cfg.DSN, cfg.DBLogLevel)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer closeDB(db)

	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	cas, err := auth.NewCasbinService(db, cfg.CasbinModelPath)
	if err != nil {
		return fmt.Errorf("failed to initialize casbin: %w", err)
	}
	added, err := services.NewPolicyService(cas.E).EnsurePolicies(auth.DefaultPolicies)
	if err != nil {
		return fmt.Errorf("failed to seed casbin policies: %w", err)
	}

	logger.Info().Int("policies_added", added).Msg("migration complete")
	return nil
}
