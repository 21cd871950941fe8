// Command cleanup-tokens deletes expired and revoked refresh tokens and
// spent one-time codes. It is meant to run from cron.
//
// Usage:
//
//	cleanup-tokens
//
// Configuration is read the same way as the server (CONFIG_PATH and env).
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/debt-recovery-backend/internal/adapter/postgres"
	tokenrepo "github.com/heartmarshall/debt-recovery-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/debt-recovery-backend/internal/app"
	"github.com/heartmarshall/debt-recovery-backend/internal/config"
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
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	n, err := tokenrepo.New(pool).DeleteExpired(ctx)
	if err != nil {
		return fmt.Errorf("cleanup tokens: %w", err)
	}

	logger.Info("token cleanup finished", slog.Int("deleted", n))
	return nil
}
