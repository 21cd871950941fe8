package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/debt-recovery-backend/internal/adapter/notify"
	"github.com/heartmarshall/debt-recovery-backend/internal/adapter/notify/kafka"
	"github.com/heartmarshall/debt-recovery-backend/internal/adapter/postgres"
	actionlogrepo "github.com/heartmarshall/debt-recovery-backend/internal/adapter/postgres/actionlog"
	auditrepo "github.com/heartmarshall/debt-recovery-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/debt-recovery-backend/internal/adapter/postgres/debtcase"
	"github.com/heartmarshall/debt-recovery-backend/internal/adapter/postgres/investigation"
	tokenrepo "github.com/heartmarshall/debt-recovery-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/debt-recovery-backend/internal/adapter/postgres/user"
	scoringclient "github.com/heartmarshall/debt-recovery-backend/internal/adapter/scoring"
	"github.com/heartmarshall/debt-recovery-backend/internal/app/seeder"
	"github.com/heartmarshall/debt-recovery-backend/internal/auth"
	"github.com/heartmarshall/debt-recovery-backend/internal/config"
	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
	actionlogsvc "github.com/heartmarshall/debt-recovery-backend/internal/service/actionlog"
	auditsvc "github.com/heartmarshall/debt-recovery-backend/internal/service/audit"
	authsvc "github.com/heartmarshall/debt-recovery-backend/internal/service/auth"
	"github.com/heartmarshall/debt-recovery-backend/internal/service/caseimport"
	"github.com/heartmarshall/debt-recovery-backend/internal/service/caselifecycle"
	"github.com/heartmarshall/debt-recovery-backend/internal/service/reporting"
	"github.com/heartmarshall/debt-recovery-backend/internal/service/scoring"
	usersvc "github.com/heartmarshall/debt-recovery-backend/internal/service/user"
)

// Notifier delivers outbound notifications and releases its transport on Close.
type Notifier interface {
	Notify(ctx context.Context, msg domain.Notification) error
	Close() error
}

// Container holds the wired repositories and services shared by the HTTP
// server and the command line tools.
type Container struct {
	Config *config.Config
	Logger *slog.Logger
	Pool   *pgxpool.Pool
	Tx     *postgres.TxManager

	Users          *userrepo.Repo
	Cases          *debtcase.Repo
	Investigations *investigation.Repo
	AuditLog       *auditrepo.Repo
	ActionLog      *actionlogrepo.Repo
	Tokens         *tokenrepo.Repo

	Notifier Notifier
	JWT      *auth.JWTManager

	Audit      *auditsvc.Service
	Actions    *actionlogsvc.Service
	Auth       *authsvc.Service
	UserAdmin  *usersvc.Service
	Lifecycle  *caselifecycle.Service
	Importer   *caseimport.Service
	Reporting  *reporting.Service
	Scoring    *scoring.Service
	ScoreModel *scoringclient.Client
}

// NewContainer connects to the database and wires every service.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("app: connect database: %w", err)
	}

	var n Notifier
	if cfg.Kafka.Enabled {
		n = kafka.NewNotifier(cfg.Kafka, logger)
	} else {
		n = notify.NewLogNotifier(logger)
	}
	return Wire(pool, cfg, logger, n), nil
}

// Wire builds the container on an existing pool and notifier.
func Wire(pool *pgxpool.Pool, cfg *config.Config, logger *slog.Logger, n Notifier) *Container {
	c := &Container{
		Config:   cfg,
		Logger:   logger,
		Pool:     pool,
		Tx:       postgres.NewTxManager(pool),
		Notifier: n,

		Users:          userrepo.New(pool),
		Cases:          debtcase.New(pool),
		Investigations: investigation.New(pool),
		AuditLog:       auditrepo.New(pool),
		ActionLog:      actionlogrepo.New(pool),
		Tokens:         tokenrepo.New(pool),

		JWT: auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
	}

	c.Audit = auditsvc.NewService(logger, c.AuditLog)
	c.Actions = actionlogsvc.NewService(logger, c.ActionLog)
	c.Auth = authsvc.NewService(logger, c.Users, c.Tokens, c.Tx, c.JWT, c.Notifier, c.Audit, cfg.Auth)
	c.UserAdmin = usersvc.NewService(logger, c.Users, c.Investigations, c.Audit)
	c.Lifecycle = caselifecycle.NewService(logger, c.Cases, c.Investigations, c.Users, c.AuditLog, c.Tx, c.Notifier, c.Audit)
	c.Importer = caseimport.NewService(logger, c.Cases, c.Tx, c.Audit)
	c.Reporting = reporting.NewService(logger, c.Cases, c.Investigations, c.Users, c.Audit)
	c.ScoreModel = scoringclient.NewClient(cfg.Scoring.BaseURL, cfg.Scoring.Timeout, logger)
	c.Scoring = scoring.NewService(logger, c.Cases, c.ScoreModel)

	return c
}

// SeedStores returns the repositories the sample-data seeder writes to.
func (c *Container) SeedStores() seeder.Stores {
	return seeder.Stores{
		Users:          c.Users,
		Cases:          c.Cases,
		Investigations: c.Investigations,
		Audit:          c.AuditLog,
		Actions:        c.ActionLog,
		Tx:             c.Tx,
	}
}

// Close releases the notifier and the database pool.
func (c *Container) Close() {
	if err := c.Notifier.Close(); err != nil {
		c.Logger.Warn("close notifier", slog.String("error", err.Error()))
	}
	c.Pool.Close()
}
