// Package seeder loads sample users, cases and investigations into the
// database. Every phase is an upsert so the seed can be re-run safely.
package seeder

import (
	"context"

	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

// UserStore is implemented by user.Repo.
type UserStore interface {
	Upsert(ctx context.Context, u *domain.User) (*domain.User, error)
}

// CaseStore is implemented by debtcase.Repo.
type CaseStore interface {
	Upsert(ctx context.Context, c *domain.Case) (*domain.Case, error)
	GetByInvoice(ctx context.Context, invoice string) (*domain.Case, error)
}

// InvestigationStore is implemented by investigation.Repo.
type InvestigationStore interface {
	Put(ctx context.Context, inv *domain.Investigation) error
}

// AuditStore is implemented by audit.Repo.
type AuditStore interface {
	ExistsMarker(ctx context.Context, action, entityType, entityID string) (bool, error)
	Create(ctx context.Context, e *domain.AuditLogEntry) error
}

// ActionStore is implemented by actionlog.Repo.
type ActionStore interface {
	Create(ctx context.Context, e *domain.ActionLogEntry) error
}

// TxRunner is implemented by postgres.TxManager.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Stores bundles the repositories the pipeline writes to.
type Stores struct {
	Users          UserStore
	Cases          CaseStore
	Investigations InvestigationStore
	Audit          AuditStore
	Actions        ActionStore
	Tx             TxRunner
}
