package user

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

// ListAgents returns the agents of the manager's agency.
func (s *Service) ListAgents(ctx context.Context, actor domain.Actor) ([]domain.User, error) {
	agency, err := s.managerAgency(ctx, actor)
	if err != nil {
		return nil, err
	}
	agents, err := s.users.ListByAgencyAndRole(ctx, agency, domain.RoleAgent)
	if err != nil {
		return nil, fmt.Errorf("user.ListAgents: %w", err)
	}
	return agents, nil
}

// AgentPerformance returns stage counts per agent of the manager's agency,
// best collection rate first.
func (s *Service) AgentPerformance(ctx context.Context, actor domain.Actor) ([]AgentStats, error) {
	stats, err := s.agencyStats(ctx, actor)
	if err != nil {
		return nil, fmt.Errorf("user.AgentPerformance: %w", err)
	}
	slices.SortStableFunc(stats, func(a, b AgentStats) int {
		return cmp.Compare(b.CollectionRate, a.CollectionRate)
	})
	return stats, nil
}

// AgentWorkload returns stage counts per agent of the manager's agency, in
// agent order.
func (s *Service) AgentWorkload(ctx context.Context, actor domain.Actor) (*Workload, error) {
	stats, err := s.agencyStats(ctx, actor)
	if err != nil {
		return nil, fmt.Errorf("user.AgentWorkload: %w", err)
	}
	return &Workload{Agents: stats, TotalAgents: len(stats)}, nil
}

// AgentDetails returns an agent of the manager's agency with its counts.
func (s *Service) AgentDetails(ctx context.Context, actor domain.Actor, email string) (*AgentDetails, error) {
	agency, err := s.managerAgency(ctx, actor)
	if err != nil {
		return nil, err
	}

	agent, err := s.users.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFound("Agent not found")
		}
		return nil, fmt.Errorf("user.AgentDetails get agent: %w", err)
	}
	if agent.Role != domain.RoleAgent || agent.AgencyOrEmpty() != agency {
		return nil, domain.NewNotFound("Agent not found")
	}

	invs, err := s.investigations.ListByAgent(ctx, agent.Email)
	if err != nil {
		return nil, fmt.Errorf("user.AgentDetails list cases: %w", err)
	}

	return &AgentDetails{User: *agent, Stats: tally(agent.Email, invs)}, nil
}

// managerAgency resolves the current agency of the manager from the store,
// so an agency change applies without a new token.
func (s *Service) managerAgency(ctx context.Context, actor domain.Actor) (string, error) {
	if err := requireManager(actor); err != nil {
		return "", err
	}
	manager, err := s.users.GetByEmail(ctx, actor.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.NewNotFound("Manager not found")
		}
		return "", fmt.Errorf("get manager: %w", err)
	}
	agency := manager.AgencyOrEmpty()
	if agency == "" {
		return "", domain.NewForbidden("Manager has no agency")
	}
	return agency, nil
}

// AllAgentPerformance returns stage counts of every agent across agencies,
// best collection rate first (admin only).
func (s *Service) AllAgentPerformance(ctx context.Context, actor domain.Actor) ([]AgentStats, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	agents, err := s.users.ListByRole(ctx, domain.RoleAgent)
	if err != nil {
		return nil, fmt.Errorf("user.AllAgentPerformance list agents: %w", err)
	}
	stats, err := s.statsFor(ctx, agents)
	if err != nil {
		return nil, fmt.Errorf("user.AllAgentPerformance: %w", err)
	}
	slices.SortStableFunc(stats, func(a, b AgentStats) int {
		return cmp.Compare(b.CollectionRate, a.CollectionRate)
	})
	return stats, nil
}

func (s *Service) agencyStats(ctx context.Context, actor domain.Actor) ([]AgentStats, error) {
	agency, err := s.managerAgency(ctx, actor)
	if err != nil {
		return nil, err
	}
	agents, err := s.users.ListByAgencyAndRole(ctx, agency, domain.RoleAgent)
	if err != nil {
		return nil, fmt.Errorf("list agents: %w", err)
	}
	return s.statsFor(ctx, agents)
}

func (s *Service) statsFor(ctx context.Context, agents []domain.User) ([]AgentStats, error) {
	if len(agents) == 0 {
		return []AgentStats{}, nil
	}

	emails := make([]string, len(agents))
	for i, a := range agents {
		emails[i] = a.Email
	}
	invs, err := s.investigations.ListByAgents(ctx, emails)
	if err != nil {
		return nil, fmt.Errorf("list investigations: %w", err)
	}

	byAgent := make(map[string][]domain.Investigation, len(agents))
	for _, inv := range invs {
		key := domain.NormalizeEmail(inv.AssignedToEmail)
		byAgent[key] = append(byAgent[key], inv)
	}

	stats := make([]AgentStats, len(agents))
	for i, a := range agents {
		stats[i] = tally(a.Email, byAgent[domain.NormalizeEmail(a.Email)])
	}
	return stats, nil
}

func tally(email string, invs []domain.Investigation) AgentStats {
	st := AgentStats{
		Email:      email,
		Name:       strings.SplitN(email, "@", 2)[0],
		TotalCases: len(invs),
	}
	for _, inv := range invs {
		switch inv.Stage {
		case domain.StageCollected:
			st.Collected++
		case domain.StagePending, domain.StageInProgress:
			st.Pending++
		case domain.StageDisputed:
			st.Disputed++
		case domain.StagePromisedToPay:
			st.Promised++
		}
	}
	if st.TotalCases > 0 {
		st.CollectionRate = float64(st.Collected) / float64(st.TotalCases) * 100
	}
	return st
}
