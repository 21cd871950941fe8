package user

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
	ListByAgency(ctx context.Context, agencyID string) ([]domain.User, error)
	ListByAgencyAndRole(ctx context.Context, agencyID string, role domain.Role) ([]domain.User, error)
	Search(ctx context.Context, query string) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context) (map[domain.Role]int64, error)
	UpdateRole(ctx context.Context, email string, role domain.Role) error
	UpdateAgency(ctx context.Context, email string, agencyID *string) error
	Delete(ctx context.Context, email string) error
}

// investigationRepo provides the per-agent case records behind manager views.
type investigationRepo interface {
	ListByAgent(ctx context.Context, email string) ([]domain.Investigation, error)
	ListByAgents(ctx context.Context, emails []string) ([]domain.Investigation, error)
}

// auditLogger records administrative changes.
type auditLogger interface {
	Record(ctx context.Context, userEmail, action, entityType, entityID, details string, success bool)
}

// Service implements user administration and manager views of agents.
type Service struct {
	log            *slog.Logger
	users          userRepo
	investigations investigationRepo
	audit          auditLogger
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	investigations investigationRepo,
	audit auditLogger,
) *Service {
	return &Service{
		log:            logger.With("service", "user"),
		users:          users,
		investigations: investigations,
		audit:          audit,
	}
}

func requireAdmin(actor domain.Actor) error {
	if !actor.IsAdmin() {
		return domain.NewForbidden("Access denied. Admin role required.")
	}
	return nil
}

func requireManager(actor domain.Actor) error {
	if !actor.IsManager() {
		return domain.NewForbidden("You dont have permissions to perform this action")
	}
	return nil
}
