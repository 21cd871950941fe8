// Package caselifecycle applies role-gated transitions to debt cases and
// their investigations: agency assignment by admins, agent assignment by
// managers, and stage or message updates by agents.
package caselifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

type caseRepo interface {
	GetByInvoice(ctx context.Context, invoice string) (*domain.Case, error)
	List(ctx context.Context) ([]domain.Case, error)
	ListByAssignee(ctx context.Context, agencyID string) ([]domain.Case, error)
	Search(ctx context.Context, s domain.CaseSearch) ([]domain.Case, error)
	UpdateAssignment(ctx context.Context, invoice string, status domain.Status, agencyID *string) error
	UpdateStatus(ctx context.Context, invoice string, status domain.Status) error
}

type investigationRepo interface {
	GetByCaseID(ctx context.Context, caseID int64) (*domain.Investigation, error)
	AgentDebts(ctx context.Context, email string) ([]domain.AgentDebt, error)
	Upsert(ctx context.Context, caseID int64, agentEmail string) (*domain.Investigation, error)
	UpdateStage(ctx context.Context, id int64, stage domain.Stage) error
	UpdateMessage(ctx context.Context, id int64, message string) error
}

type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ListByAgencyAndRole(ctx context.Context, agencyID string, role domain.Role) ([]domain.User, error)
}

type historyRepo interface {
	ListByEntity(ctx context.Context, entityType, entityID string) ([]domain.AuditLogEntry, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type notifier interface {
	Notify(ctx context.Context, msg domain.Notification) error
}

type auditLogger interface {
	LogCaseAssignment(ctx context.Context, actorEmail, invoice, assignedTo string)
	LogStageChange(ctx context.Context, actorEmail, invoice string, from, to domain.Stage)
	LogCaseUpdate(ctx context.Context, actorEmail, invoice, changes string)
}

// Service implements the case lifecycle.
type Service struct {
	log            *slog.Logger
	cases          caseRepo
	investigations investigationRepo
	users          userRepo
	history        historyRepo
	tx             txManager
	notify         notifier
	audit          auditLogger
	now            func() time.Time
}

// NewService creates a new case lifecycle service.
func NewService(
	logger *slog.Logger,
	cases caseRepo,
	investigations investigationRepo,
	users userRepo,
	history historyRepo,
	tx txManager,
	notify notifier,
	audit auditLogger,
) *Service {
	return &Service{
		log:            logger.With("service", "caselifecycle"),
		cases:          cases,
		investigations: investigations,
		users:          users,
		history:        history,
		tx:             tx,
		notify:         notify,
		audit:          audit,
		now:            time.Now,
	}
}

// getCase loads a case, turning a missing row into "Case not found: X".
func (s *Service) getCase(ctx context.Context, invoice string) (*domain.Case, error) {
	c, err := s.cases.GetByInvoice(ctx, invoice)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFound("Case not found: %s", invoice)
		}
		return nil, fmt.Errorf("get case %s: %w", invoice, err)
	}
	return c, nil
}

// getInvestigation loads the investigation of c, turning a missing row into
// "Invest record not found: X".
func (s *Service) getInvestigation(ctx context.Context, c *domain.Case) (*domain.Investigation, error) {
	inv, err := s.investigations.GetByCaseID(ctx, c.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFound("Invest record not found: %s", c.InvoiceNumber)
		}
		return nil, fmt.Errorf("get investigation %s: %w", c.InvoiceNumber, err)
	}
	return inv, nil
}

// currentAgency re-reads the actor's agency so that an admin change applies
// before the token is renewed.
func (s *Service) currentAgency(ctx context.Context, actor domain.Actor) (string, error) {
	u, err := s.users.GetByEmail(ctx, actor.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.NewNotFound("User not found")
		}
		return "", fmt.Errorf("get user: %w", err)
	}
	if u.AgencyOrEmpty() == "" {
		return "", domain.NewForbidden("No agency is associated with your account")
	}
	return u.AgencyOrEmpty(), nil
}

// itemError renders a per-item failure of a bulk operation. Classified
// errors keep their own message, anything else is reported with the invoice.
func itemError(invoice string, err error) string {
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return nf.Message
	}
	var me *domain.MessageError
	if errors.As(err, &me) {
		return me.Message + ": " + invoice
	}
	var ve *domain.ValidationError
	if errors.As(err, &ve) && len(ve.Errors) == 1 {
		return ve.Errors[0].Message + ": " + invoice
	}
	return fmt.Sprintf("Error updating %s: %s", invoice, err)
}

func requireInvoices(invoices []string) error {
	if len(invoices) == 0 {
		return domain.NewValidationError("invoiceNumbers", "At least one invoice number is required")
	}
	return nil
}
