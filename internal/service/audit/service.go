package audit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
	"github.com/heartmarshall/debt-recovery-backend/pkg/ctxutil"
)

const (
	defaultRecentHours = 24
	maxHours           = 24 * 365
)

type auditRepo interface {
	Create(ctx context.Context, e *domain.AuditLogEntry) error
	ListByUser(ctx context.Context, email string) ([]domain.AuditLogEntry, error)
	ListRecentByUser(ctx context.Context, email string, since time.Time) ([]domain.AuditLogEntry, error)
	ListByEntity(ctx context.Context, entityType, entityID string) ([]domain.AuditLogEntry, error)
	ListBetween(ctx context.Context, from, to time.Time, page domain.PageRequest) (domain.Page[domain.AuditLogEntry], error)
	List(ctx context.Context, page domain.PageRequest) (domain.Page[domain.AuditLogEntry], error)
	CountByActionSince(ctx context.Context, since time.Time) ([]domain.CountItem, error)
	CountByEntityTypeSince(ctx context.Context, since time.Time) ([]domain.CountItem, error)
}

// Service writes and queries the audit trail.
type Service struct {
	log  *slog.Logger
	repo auditRepo
	now  func() time.Time
}

// NewService creates a new audit service.
func NewService(logger *slog.Logger, repo auditRepo) *Service {
	return &Service{
		log:  logger.With("service", "audit"),
		repo: repo,
		now:  time.Now,
	}
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Log persists entry. Failures are logged and never returned: auditing must
// not break the operation being audited.
func (s *Service) Log(ctx context.Context, entry domain.AuditLogEntry) {
	if entry.IPAddress == "" {
		entry.IPAddress = ctxutil.ClientIPFromCtx(ctx)
	}
	if entry.Status == "" {
		entry.Status = domain.AuditSuccess
	}
	if err := s.repo.Create(context.WithoutCancel(ctx), &entry); err != nil {
		s.log.WarnContext(ctx, "audit entry not persisted",
			slog.String("action", entry.Action),
			slog.String("entity_id", entry.EntityID),
			slog.String("error", err.Error()),
		)
	}
}

// Record is the generic form of the Log helpers.
func (s *Service) Record(ctx context.Context, userEmail, action, entityType, entityID, details string, success bool) {
	status := domain.AuditSuccess
	if !success {
		status = domain.AuditFailure
	}
	s.Log(ctx, domain.AuditLogEntry{
		UserEmail:  userEmail,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
		Status:     status,
	})
}

func (s *Service) LogLogin(ctx context.Context, email string, success bool) {
	s.Record(ctx, email, domain.AuditActionLogin, domain.EntityUser, email, "User login attempt", success)
}

func (s *Service) LogLogout(ctx context.Context, email string) {
	s.Record(ctx, email, domain.AuditActionLogout, domain.EntityUser, email, "User logged out", true)
}

func (s *Service) LogCaseAssignment(ctx context.Context, actorEmail, invoice, assignedTo string) {
	s.Record(ctx, actorEmail, domain.AuditActionAssign, domain.EntityCase, invoice, "Assigned to: "+assignedTo, true)
}

func (s *Service) LogStageChange(ctx context.Context, actorEmail, invoice string, from, to domain.Stage) {
	s.Record(ctx, actorEmail, domain.AuditActionStageChange, domain.EntityInvestigation, invoice,
		fmt.Sprintf("Changed from %s to %s", from, to), true)
}

func (s *Service) LogCaseUpdate(ctx context.Context, actorEmail, invoice, changes string) {
	s.Record(ctx, actorEmail, domain.AuditActionUpdate, domain.EntityCase, invoice, changes, true)
}

func (s *Service) LogCSVUpload(ctx context.Context, actorEmail, filename string, imported, failed int) {
	s.Record(ctx, actorEmail, domain.AuditActionCSVUpload, domain.EntityImport, filename,
		fmt.Sprintf("Uploaded %d records, %d failed", imported, failed), failed == 0)
}

func (s *Service) LogExport(ctx context.Context, actorEmail, action string, count int) {
	s.Record(ctx, actorEmail, action, domain.EntityExport, "", fmt.Sprintf("Exported %d cases", count), true)
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// Stats summarizes audit activity over a window.
type Stats struct {
	PeriodHours      int
	ActionCounts     []domain.CountItem
	EntityTypeCounts []domain.CountItem
}

// MyActivity returns the actor's own entries of the last 24 hours.
func (s *Service) MyActivity(ctx context.Context, actor domain.Actor) ([]domain.AuditLogEntry, error) {
	entries, err := s.repo.ListRecentByUser(ctx, actor.Email, s.now().Add(-defaultRecentHours*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("audit.MyActivity: %w", err)
	}
	return entries, nil
}

func (s *Service) UserActivity(ctx context.Context, actor domain.Actor, email string) ([]domain.AuditLogEntry, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	entries, err := s.repo.ListByUser(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("audit.UserActivity: %w", err)
	}
	return entries, nil
}

func (s *Service) EntityHistory(ctx context.Context, actor domain.Actor, entityType, entityID string) ([]domain.AuditLogEntry, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	entries, err := s.repo.ListByEntity(ctx, entityType, entityID)
	if err != nil {
		return nil, fmt.Errorf("audit.EntityHistory: %w", err)
	}
	return entries, nil
}

func (s *Service) Between(ctx context.Context, actor domain.Actor, from, to time.Time, page domain.PageRequest) (domain.Page[domain.AuditLogEntry], error) {
	if err := requireAdmin(actor); err != nil {
		return domain.Page[domain.AuditLogEntry]{}, err
	}
	if to.Before(from) {
		return domain.Page[domain.AuditLogEntry]{}, domain.NewValidationError("end", "must not be before start")
	}
	p, err := s.repo.ListBetween(ctx, from, to, page.Normalize())
	if err != nil {
		return p, fmt.Errorf("audit.Between: %w", err)
	}
	return p, nil
}

func (s *Service) Recent(ctx context.Context, actor domain.Actor, email string, hours int) ([]domain.AuditLogEntry, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	entries, err := s.repo.ListRecentByUser(ctx, email, s.since(hours))
	if err != nil {
		return nil, fmt.Errorf("audit.Recent: %w", err)
	}
	return entries, nil
}

func (s *Service) Stats(ctx context.Context, actor domain.Actor, hours int) (*Stats, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	hours = clampHours(hours)
	since := s.since(hours)

	byAction, err := s.repo.CountByActionSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("audit.Stats actions: %w", err)
	}
	byEntity, err := s.repo.CountByEntityTypeSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("audit.Stats entity types: %w", err)
	}
	return &Stats{PeriodHours: hours, ActionCounts: byAction, EntityTypeCounts: byEntity}, nil
}

func (s *Service) All(ctx context.Context, actor domain.Actor, page domain.PageRequest) (domain.Page[domain.AuditLogEntry], error) {
	if err := requireAdmin(actor); err != nil {
		return domain.Page[domain.AuditLogEntry]{}, err
	}
	p, err := s.repo.List(ctx, page.Normalize())
	if err != nil {
		return p, fmt.Errorf("audit.All: %w", err)
	}
	return p, nil
}

func (s *Service) since(hours int) time.Time {
	return s.now().Add(-time.Duration(clampHours(hours)) * time.Hour)
}

func clampHours(hours int) int {
	if hours <= 0 {
		return defaultRecentHours
	}
	return min(hours, maxHours)
}

func requireAdmin(actor domain.Actor) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}
