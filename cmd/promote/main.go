// Command promote makes an existing account a FedEx administrator. Admins
// cannot sign up through the API, so the first one is created with this tool.
//
// Usage:
//
//	promote --email=ops@fedex.example
//
// Configuration is read the same way as the server (CONFIG_PATH and env).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/debt-recovery-backend/internal/adapter/postgres"
	userrepo "github.com/heartmarshall/debt-recovery-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/debt-recovery-backend/internal/app"
	"github.com/heartmarshall/debt-recovery-backend/internal/config"
	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of user to promote to admin")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com")
		os.Exit(1)
	}

	if err := run(*email); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(email string) error {
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

	users := userrepo.New(pool)
	u, err := users.GetByEmail(ctx, domain.NormalizeEmail(email))
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("no user found with email %q", email)
	}
	if err != nil {
		return err
	}
	if u.Role == domain.RoleAdmin {
		return fmt.Errorf("user %q is already %s", u.Email, domain.RoleAdmin)
	}

	// Admins are not bound to an agency.
	err = postgres.NewTxManager(pool).RunInTx(ctx, func(ctx context.Context) error {
		if err := users.UpdateRole(ctx, u.Email, domain.RoleAdmin); err != nil {
			return err
		}
		return users.UpdateAgency(ctx, u.Email, nil)
	})
	if err != nil {
		return fmt.Errorf("promote %s: %w", u.Email, err)
	}

	logger.Info("user promoted",
		slog.String("email", u.Email),
		slog.String("previous_role", u.Role.String()))
	fmt.Printf("User %q promoted to %s.\n", u.Email, domain.RoleAdmin)
	return nil
}
