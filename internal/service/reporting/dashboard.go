package reporting

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

const (
	topAgentsLimit   = 5
	recentCasesLimit = 10
)

// Dashboard is the landing page summary.
type Dashboard struct {
	TotalCases          int64
	TotalAgents         int
	TotalManagers       int
	TotalPortfolioValue decimal.Decimal
	PendingCases        int64
	CollectedCases      int64
	TopAgents           []TopAgent
	RecentCases         []RecentCase
}

// TopAgent ranks an agent by collected cases.
type TopAgent struct {
	Email           string
	Name            string
	CollectedCases  int
	CollectedAmount decimal.Decimal
}

// RecentCase is a recently updated case with its stage, PENDING when no
// investigation exists yet.
type RecentCase struct {
	InvoiceNumber string
	CustomerName  string
	Status        domain.Status
	Stage         domain.Stage
	Amount        decimal.Decimal
}

// Dashboard returns the summary for the actor. Admins see every agency,
// managers their own agency's staff and cases.
func (s *Service) Dashboard(ctx context.Context, actor domain.Actor) (*Dashboard, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}

	agency := ""
	if actor.IsManager() {
		var err error
		if agency, err = s.managerAgency(ctx, actor); err != nil {
			return nil, err
		}
	}

	var (
		p        *portfolio
		agents   []domain.User
		managers []domain.User
		cases    []domain.Case
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		p, err = s.loadPortfolio(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		agents, err = s.staff(gctx, agency, domain.RoleAgent)
		return err
	})
	g.Go(func() error {
		var err error
		managers, err = s.staff(gctx, agency, domain.RoleManager)
		return err
	})
	g.Go(func() error {
		var err error
		if agency == "" {
			cases, err = s.cases.List(gctx)
		} else {
			cases, err = s.cases.ListByAssignee(gctx, agency)
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("reporting.Dashboard: %w", err)
	}

	top, err := s.topAgents(ctx, agents, cases)
	if err != nil {
		return nil, fmt.Errorf("reporting.Dashboard agents: %w", err)
	}
	recent, err := s.recentCases(ctx, cases)
	if err != nil {
		return nil, fmt.Errorf("reporting.Dashboard recent: %w", err)
	}

	return &Dashboard{
		TotalCases:          p.total,
		TotalAgents:         len(agents),
		TotalManagers:       len(managers),
		TotalPortfolioValue: p.totalAmount(),
		PendingCases:        p.pending(),
		CollectedCases:      p.byStage[domain.StageCollected],
		TopAgents:           top,
		RecentCases:         recent,
	}, nil
}

func (s *Service) staff(ctx context.Context, agency string, role domain.Role) ([]domain.User, error) {
	if agency == "" {
		return s.users.ListByRole(ctx, role)
	}
	return s.users.ListByAgencyAndRole(ctx, agency, role)
}

func (s *Service) topAgents(ctx context.Context, agents []domain.User, cases []domain.Case) ([]TopAgent, error) {
	if len(agents) == 0 {
		return []TopAgent{}, nil
	}
	emails := make([]string, len(agents))
	for i, a := range agents {
		emails[i] = a.Email
	}
	invs, err := s.investigations.ListByAgents(ctx, emails)
	if err != nil {
		return nil, err
	}

	amounts := make(map[int64]decimal.Decimal, len(cases))
	for i := range cases {
		amounts[cases[i].ID] = cases[i].AmountOrZero()
	}

	byAgent := make(map[string]*TopAgent, len(agents))
	out := make([]TopAgent, len(agents))
	for i, a := range agents {
		out[i] = TopAgent{Email: a.Email, Name: agentName(a.Email), CollectedAmount: decimal.Zero}
		byAgent[domain.NormalizeEmail(a.Email)] = &out[i]
	}
	for _, inv := range invs {
		if inv.Stage != domain.StageCollected {
			continue
		}
		if t, ok := byAgent[domain.NormalizeEmail(inv.AssignedToEmail)]; ok {
			t.CollectedCases++
			t.CollectedAmount = t.CollectedAmount.Add(amounts[inv.CaseID])
		}
	}

	slices.SortStableFunc(out, func(a, b TopAgent) int { return b.CollectedCases - a.CollectedCases })
	if len(out) > topAgentsLimit {
		out = out[:topAgentsLimit]
	}
	return out, nil
}

func (s *Service) recentCases(ctx context.Context, cases []domain.Case) ([]RecentCase, error) {
	recent := slices.Clone(cases)
	sortByUpdated(recent)
	recent = head(recent, recentCasesLimit)

	invs, err := s.investigationsFor(ctx, recent)
	if err != nil {
		return nil, err
	}
	out := make([]RecentCase, len(recent))
	for i, c := range recent {
		stage := domain.StagePending
		if inv := invs[c.ID]; inv != nil {
			stage = inv.Stage
		}
		out[i] = RecentCase{
			InvoiceNumber: c.InvoiceNumber,
			CustomerName:  c.CustomerNameOrEmpty(),
			Status:        c.Status,
			Stage:         stage,
			Amount:        c.AmountOrZero(),
		}
	}
	return out, nil
}

// agentName is the local part of an email address.
func agentName(email string) string {
	name, _, _ := strings.Cut(email, "@")
	return name
}
