package caselifecycle

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

// GetCase returns a case the actor may see.
func (s *Service) GetCase(ctx context.Context, actor domain.Actor, invoice string) (*domain.Case, error) {
	c, err := s.getCase(ctx, invoice)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeView(ctx, actor, c); err != nil {
		return nil, err
	}
	return c, nil
}

// GetInvestigation returns the investigation of a case the actor may see.
func (s *Service) GetInvestigation(ctx context.Context, actor domain.Actor, invoice string) (*domain.Investigation, error) {
	c, err := s.GetCase(ctx, actor, invoice)
	if err != nil {
		return nil, err
	}
	return s.getInvestigation(ctx, c)
}

// GetCaseDetail returns a case with its investigation, if any.
func (s *Service) GetCaseDetail(ctx context.Context, actor domain.Actor, invoice string) (*domain.CaseDetail, error) {
	c, err := s.GetCase(ctx, actor, invoice)
	if err != nil {
		return nil, err
	}
	inv, err := s.investigations.GetByCaseID(ctx, c.ID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("caselifecycle.GetCaseDetail: %w", err)
	}
	return &domain.CaseDetail{Case: *c, Investigation: inv}, nil
}

// SearchCases applies the search predicates conjunctively and keeps the
// cases visible to the actor.
func (s *Service) SearchCases(ctx context.Context, actor domain.Actor, q domain.CaseSearch) ([]domain.Case, error) {
	if q.MinAmount != nil && q.MaxAmount != nil && q.MinAmount.GreaterThan(*q.MaxAmount) {
		return nil, domain.NewValidationError("minAmount", "minAmount must not exceed maxAmount")
	}
	cases, err := s.cases.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("caselifecycle.SearchCases: %w", err)
	}
	visible, err := s.visibility(ctx, actor)
	if err != nil {
		return nil, err
	}
	out := cases[:0]
	for _, c := range cases {
		if visible(&c) {
			out = append(out, c)
		}
	}
	return out, nil
}

// ListAll returns every case (admin only).
func (s *Service) ListAll(ctx context.Context, actor domain.Actor) ([]domain.Case, error) {
	if !actor.IsAdmin() {
		return nil, domain.NewForbidden("Access denied. Admin role required.")
	}
	cases, err := s.cases.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("caselifecycle.ListAll: %w", err)
	}
	return cases, nil
}

// ManagerTasks returns the cases assigned to the manager's agency.
func (s *Service) ManagerTasks(ctx context.Context, actor domain.Actor) ([]domain.Case, error) {
	if !actor.IsManager() {
		return nil, domain.NewForbidden("You dont have permissions to perform this action")
	}
	agency, err := s.currentAgency(ctx, actor)
	if err != nil {
		return nil, err
	}
	cases, err := s.cases.ListByAssignee(ctx, agency)
	if err != nil {
		return nil, fmt.Errorf("caselifecycle.ManagerTasks: %w", err)
	}
	return cases, nil
}

// authorizeView lets admins see every case, managers the cases of their
// agency and agents the cases they investigate.
func (s *Service) authorizeView(ctx context.Context, actor domain.Actor, c *domain.Case) error {
	visible, err := s.visibility(ctx, actor)
	if err != nil {
		return err
	}
	if !visible(c) {
		return domain.NewForbidden("Access denied")
	}
	return nil
}

func (s *Service) visibility(ctx context.Context, actor domain.Actor) (func(*domain.Case) bool, error) {
	switch {
	case actor.IsAdmin():
		return func(*domain.Case) bool { return true }, nil
	case actor.IsManager():
		agency, err := s.currentAgency(ctx, actor)
		if err != nil {
			return nil, err
		}
		return func(c *domain.Case) bool { return c.BelongsTo(agency) }, nil
	case actor.IsAgent():
		debts, err := s.investigations.AgentDebts(ctx, actor.Email)
		if err != nil {
			return nil, fmt.Errorf("caselifecycle: agent cases: %w", err)
		}
		owned := make(map[int64]struct{}, len(debts))
		for _, d := range debts {
			owned[d.Case.ID] = struct{}{}
		}
		return func(c *domain.Case) bool {
			_, ok := owned[c.ID]
			return ok
		}, nil
	}
	return nil, domain.NewForbidden("Access denied")
}
