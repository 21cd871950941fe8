package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

// ListAll returns every account (admin only).
func (s *Service) ListAll(ctx context.Context, actor domain.Actor) ([]domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.ListAll: %w", err)
	}
	return users, nil
}

// ListByRole returns the accounts holding role (admin only).
func (s *Service) ListByRole(ctx context.Context, actor domain.Actor, role string) ([]domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	r, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}
	users, err := s.users.ListByRole(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("user.ListByRole: %w", err)
	}
	return users, nil
}

// ListByAgency returns the accounts of an agency (admin only).
func (s *Service) ListByAgency(ctx context.Context, actor domain.Actor, agencyID string) ([]domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	users, err := s.users.ListByAgency(ctx, agencyID)
	if err != nil {
		return nil, fmt.Errorf("user.ListByAgency: %w", err)
	}
	return users, nil
}

// Search matches query against email and agency id, case-insensitively (admin only).
func (s *Service) Search(ctx context.Context, actor domain.Actor, query string) ([]domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	users, err := s.users.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("user.Search: %w", err)
	}
	return users, nil
}

// Counts returns the number of accounts in total and per role (admin only).
func (s *Service) Counts(ctx context.Context, actor domain.Actor) (*Counts, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.Counts total: %w", err)
	}
	byRole, err := s.users.CountByRole(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.Counts by role: %w", err)
	}

	return &Counts{
		Total:    total,
		Admins:   byRole[domain.RoleAdmin],
		Managers: byRole[domain.RoleManager],
		Agents:   byRole[domain.RoleAgent],
	}, nil
}

// UpdateRole changes the role of an account (admin only). Manager and agent
// roles need the account to already belong to an agency.
func (s *Service) UpdateRole(ctx context.Context, actor domain.Actor, input UpdateRoleInput) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	role, err := input.Validate()
	if err != nil {
		return err
	}

	target, err := s.target(ctx, input.Email)
	if err != nil {
		return err
	}
	if role.RequiresAgency() && target.AgencyID == nil {
		return domain.NewValidationError("role", "Agency is required for role "+role.String())
	}

	if err := s.users.UpdateRole(ctx, target.Email, role); err != nil {
		return fmt.Errorf("user.UpdateRole: %w", err)
	}

	s.audit.Record(ctx, actor.Email, domain.AuditActionUpdateRole, domain.EntityUser, target.Email,
		fmt.Sprintf("Role changed to %s", role), true)
	s.log.InfoContext(ctx, "user role updated",
		slog.String("target", target.Email),
		slog.String("new_role", role.String()))
	return nil
}

// UpdateAgency moves an account to another agency (admin only). An empty
// agency id clears it, which only admins may have.
func (s *Service) UpdateAgency(ctx context.Context, actor domain.Actor, input UpdateAgencyInput) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if err := input.Validate(); err != nil {
		return err
	}

	target, err := s.target(ctx, input.Email)
	if err != nil {
		return err
	}

	var agency *string
	if input.AgencyID != "" {
		agency = &input.AgencyID
	} else if target.Role.RequiresAgency() {
		return domain.NewValidationError("agencyId", "Agency is required for role "+target.Role.String())
	}

	if err := s.users.UpdateAgency(ctx, target.Email, agency); err != nil {
		return fmt.Errorf("user.UpdateAgency: %w", err)
	}

	s.audit.Record(ctx, actor.Email, domain.AuditActionUpdateAgency, domain.EntityUser, target.Email,
		fmt.Sprintf("Agency changed to %s", input.AgencyID), true)
	s.log.InfoContext(ctx, "user agency updated",
		slog.String("target", target.Email),
		slog.String("agency_id", input.AgencyID))
	return nil
}

// Delete removes an account (admin only). Admins cannot delete themselves.
func (s *Service) Delete(ctx context.Context, actor domain.Actor, email string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	email = domain.NormalizeEmail(email)
	if email == domain.NormalizeEmail(actor.Email) {
		return domain.NewValidationError("email", "Cannot delete your own account")
	}

	target, err := s.target(ctx, email)
	if err != nil {
		return err
	}
	if err := s.users.Delete(ctx, target.Email); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewNotFound("User not found")
		}
		return fmt.Errorf("user.Delete: %w", err)
	}

	s.audit.Record(ctx, actor.Email, domain.AuditActionDeleteUser, domain.EntityUser, target.Email,
		"User account deleted", true)
	s.log.InfoContext(ctx, "user deleted", slog.String("target", target.Email))
	return nil
}

func (s *Service) target(ctx context.Context, email string) (*domain.User, error) {
	u, err := s.users.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFound("User not found")
		}
		return nil, fmt.Errorf("user: get %s: %w", email, err)
	}
	return u, nil
}
