// Package reporting computes read-only aggregates, filtered case views and
// exports. Nothing here mutates cases or investigations.
package reporting

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/debt-recovery-backend/internal/adapter/postgres/debtcase"
	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

type caseRepo interface {
	List(ctx context.Context) ([]domain.Case, error)
	ListByAssignee(ctx context.Context, agencyID string) ([]domain.Case, error)
	Count(ctx context.Context) (int64, error)
	TotalsByStatus(ctx context.Context) ([]debtcase.StatusTotals, error)
}

type investigationRepo interface {
	ListByCaseIDs(ctx context.Context, caseIDs []int64) ([]domain.Investigation, error)
	ListByAgents(ctx context.Context, emails []string) ([]domain.Investigation, error)
	CountAllStages(ctx context.Context) (map[domain.Stage]int64, error)
}

type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
	ListByAgencyAndRole(ctx context.Context, agencyID string, role domain.Role) ([]domain.User, error)
}

type auditLogger interface {
	LogExport(ctx context.Context, actorEmail, action string, count int)
}

// Service is the reporting service.
type Service struct {
	log            *slog.Logger
	cases          caseRepo
	investigations investigationRepo
	users          userRepo
	audit          auditLogger
	now            func() time.Time
}

// NewService creates a new reporting service.
func NewService(logger *slog.Logger, cases caseRepo, investigations investigationRepo, users userRepo, audit auditLogger) *Service {
	return &Service{
		log:            logger.With("service", "reporting"),
		cases:          cases,
		investigations: investigations,
		users:          users,
		audit:          audit,
		now:            time.Now,
	}
}

// requireStaff admits admins and managers.
func requireStaff(actor domain.Actor) error {
	if actor.IsAdmin() || actor.IsManager() {
		return nil
	}
	return domain.NewForbidden("You dont have permissions to perform this action")
}

// managerAgency re-reads the manager's agency.
func (s *Service) managerAgency(ctx context.Context, actor domain.Actor) (string, error) {
	u, err := s.users.GetByEmail(ctx, actor.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.NewNotFound("User not found")
		}
		return "", fmt.Errorf("reporting: get manager: %w", err)
	}
	if u.AgencyOrEmpty() == "" {
		return "", domain.NewForbidden("No agency is associated with your account")
	}
	return u.AgencyOrEmpty(), nil
}

// percent returns part/total*100, or 0 for an empty total.
func percent(part, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
