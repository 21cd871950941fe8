// Package testhelper provides a migrated PostgreSQL database and row
// builders for integration tests.
package testhelper

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/debt-recovery-backend/internal/adapter/postgres"
	"github.com/heartmarshall/debt-recovery-backend/internal/config"
)

// externalDSNEnv points the tests at an existing database instead of a
// container. The database is migrated but never cleaned.
const externalDSNEnv = "TEST_DATABASE_DSN"

var (
	once      sync.Once
	sharedDSN string
	initErr   error
)

// SetupTestDB returns a pool on a migrated database shared by the whole test
// binary. The first call starts a postgres container unless TEST_DATABASE_DSN
// is set. Tests are skipped in -short mode.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("testhelper: skipping database test in -short mode")
	}

	once.Do(func() {
		sharedDSN, initErr = prepare()
	})
	if initErr != nil {
		t.Fatalf("testhelper: setup test DB: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, config.DatabaseConfig{
		DSN:             sharedDSN,
		MaxConns:        8,
		MinConns:        1,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: time.Minute,
	})
	if err != nil {
		t.Fatalf("testhelper: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

func prepare() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dsn := os.Getenv(externalDSNEnv)
	if dsn == "" {
		var err error
		if dsn, err = startContainer(ctx); err != nil {
			return "", err
		}
	}

	m, err := postgres.NewMigrator(ctx, dsn)
	if err != nil {
		return "", err
	}
	defer m.Close()

	if _, err := m.Up(ctx); err != nil {
		return "", err
	}
	return dsn, nil
}

func startContainer(ctx context.Context) (string, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "dca",
				"POSTGRES_PASSWORD": "dca",
				"POSTGRES_DB":       "debt_recovery_test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("container port: %w", err)
	}

	return fmt.Sprintf("postgres://dca:dca@%s:%s/debt_recovery_test?sslmode=disable", host, port.Port()), nil
}
