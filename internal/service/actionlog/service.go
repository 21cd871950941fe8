// Package actionlog records intercepted requests and serves the backlog
// queries over them.
package actionlog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
	"github.com/heartmarshall/debt-recovery-backend/pkg/ctxutil"
)

const (
	defaultHours = 24
	maxHours     = 24 * 365
)

type actionLogRepo interface {
	Create(ctx context.Context, e *domain.ActionLogEntry) error
	GetByID(ctx context.Context, id string) (*domain.ActionLogEntry, error)
	Search(ctx context.Context, f domain.ActionLogFilter, page domain.PageRequest) (domain.Page[domain.ActionLogEntry], error)
	ListAll(ctx context.Context, f domain.ActionLogFilter) ([]domain.ActionLogEntry, error)
	CountSince(ctx context.Context, since time.Time, onlyFailed bool) (int64, error)
	CountByModuleSince(ctx context.Context, since time.Time) ([]domain.CountItem, error)
	CountByActionSince(ctx context.Context, since time.Time) ([]domain.CountItem, error)
}

// Service is the action log service.
type Service struct {
	log  *slog.Logger
	repo actionLogRepo
	now  func() time.Time
}

// NewService creates a new action log service.
func NewService(logger *slog.Logger, repo actionLogRepo) *Service {
	return &Service{
		log:  logger.With("service", "actionlog"),
		repo: repo,
		now:  time.Now,
	}
}

// Record persists an entry produced by the request interceptor.
func (s *Service) Record(ctx context.Context, entry *domain.ActionLogEntry) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.now().UTC()
	}
	if entry.PerformedBy == "" {
		entry.PerformedBy = domain.AnonymousActor
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return fmt.Errorf("actionlog.Record: %w", err)
	}
	return nil
}

// CreateInput is a manually written backlog entry.
type CreateInput struct {
	Action      string
	Module      string
	Description string
	PerformedBy string
	IPAddress   string
	Success     bool
}

// Validate checks the manual entry.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.Action) == "" {
		errs = append(errs, domain.FieldError{Field: "action", Message: "Action is required"})
	}
	if strings.TrimSpace(i.Module) == "" {
		errs = append(errs, domain.FieldError{Field: "module", Message: "Module is required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Create writes a manual entry. The performer defaults to the actor and the
// IP address to the client address of the request.
func (s *Service) Create(ctx context.Context, actor domain.Actor, input CreateInput) (*domain.ActionLogEntry, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	entry := &domain.ActionLogEntry{
		Action:      strings.TrimSpace(input.Action),
		Module:      strings.TrimSpace(input.Module),
		Description: input.Description,
		PerformedBy: input.PerformedBy,
		IPAddress:   input.IPAddress,
		Success:     input.Success,
	}
	if entry.PerformedBy == "" {
		entry.PerformedBy = actor.Email
	}
	if entry.IPAddress == "" {
		entry.IPAddress = ctxutil.ClientIPFromCtx(ctx)
	}
	if err := s.Record(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}
