package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"

	"github.com/heartmarshall/debt-recovery-backend/internal/config"
	"github.com/heartmarshall/debt-recovery-backend/internal/service/scoring"
	"github.com/heartmarshall/debt-recovery-backend/internal/transport/middleware"
	"github.com/heartmarshall/debt-recovery-backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, wires the
// application and serves HTTP until ctx is cancelled, then shuts down
// gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	deps := rest.RouterDeps{
		Logger:    logger,
		Validator: c.Auth,
		Tracker:   middleware.NewActionTracker(c.Actions, logger, cfg.Tracking),
		CORS:      cfg.CORS,
	}
	if cfg.RateLimit.Enabled {
		general := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer general.Stop()
		authLimiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer authLimiter.Stop()
		deps.RateLimit = general.Limit(cfg.RateLimit.RequestsPerMin)
		deps.AuthRateLimit = authLimiter.Limit(cfg.RateLimit.AuthPerMin)
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      rest.NewRouter(c.Handlers(), deps),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	workCtx, stopWork := context.WithCancel(ctx)
	defer stopWork()

	var wg sync.WaitGroup
	if cfg.Scoring.Enabled {
		poller := scoring.NewPoller(logger, c.Scoring, cfg.Scoring.Interval)
		wg.Add(1)
		go func() {
			defer wg.Done()
			poller.Run(workCtx)
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-errCh:
		stopWork()
		wg.Wait()
		return fmt.Errorf("app: http server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", slog.String("error", err.Error()))
	}

	stopWork()
	wg.Wait()
	logger.Info("stopped")
	return nil
}

// Handlers builds the REST handlers on top of the container services.
func (c *Container) Handlers() rest.Handlers {
	logger := c.Logger
	return rest.Handlers{
		Health:    rest.NewHealthHandler(c.Pool, BuildVersion(), c.modelProbe()),
		Auth:      rest.NewAuthHandler(c.Auth, logger),
		Users:     rest.NewUserAdminHandler(c.UserAdmin, logger),
		Admin:     rest.NewAdminHandler(c.Importer, c.Lifecycle, c.Reporting, c.UserAdmin, c.Config.Server.MaxUploadBytes, logger),
		Manager:   rest.NewManagerHandler(c.Lifecycle, c.UserAdmin, logger),
		Agent:     rest.NewAgentHandler(c.Lifecycle, logger),
		Debt:      rest.NewDebtHandler(c.Lifecycle, c.Reporting, logger),
		Backlog:   rest.NewBacklogHandler(c.Actions, logger),
		Audit:     rest.NewAuditHandler(c.Audit, logger),
		Report:    rest.NewReportHandler(c.Reporting, logger),
		Export:    rest.NewExportHandler(c.Reporting, logger),
		AI:        rest.NewAIHandler(c.Scoring, logger),
		Dashboard: rest.NewDashboardHandler(c.Reporting, logger),
	}
}

// modelProbe reports the scoring model on /health. The model is optional so
// an outage only degrades the result.
func (c *Container) modelProbe() rest.Probe {
	return rest.Probe{
		Name: "scoring",
		Check: func(ctx context.Context) error {
			if !c.Scoring.Health(ctx).Available {
				return errors.New("model unavailable")
			}
			return nil
		},
	}
}
