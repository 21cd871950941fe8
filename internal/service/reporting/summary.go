package reporting

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/debt-recovery-backend/internal/adapter/postgres/debtcase"
	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

const (
	DefaultHighValueMin   = 10000
	DefaultOverdueMinDays = 30
	trendTopN             = 10
)

// Summary is the portfolio overview shared by reports and exports.
type Summary struct {
	TotalCases      int64
	TotalAmount     decimal.Decimal
	AssignedCases   int64
	UnassignedCases int64
	CollectedCases  int64
	PendingCases    int64
	DisputedCases   int64
	AssignmentRate  float64
	CollectionRate  float64
}

// StatusBreakdown is the per-status count and amount.
type StatusBreakdown struct {
	Counts  map[domain.Status]int64
	Amounts map[domain.Status]decimal.Decimal
}

// CollectionTrend compares collected cases to the portfolio.
type CollectionTrend struct {
	TotalCases     int64
	CollectedCases int64
	RemainingCases int64
	CollectionRate float64
}

// DebtStats backs the /debt/stats view.
type DebtStats struct {
	TotalCases      int64
	TotalAmount     decimal.Decimal
	AssignedCases   int64
	UnassignedCases int64
	AssignmentRate  float64
}

// CollectionStats splits the portfolio by status and by outcome.
type CollectionStats struct {
	TotalCases      int64
	AssignedCases   int64
	UnassignedCases int64
	TotalAmount     decimal.Decimal
	CollectedAmount decimal.Decimal
	PendingAmount   decimal.Decimal
	CasesByStatus   map[domain.Status]int64
	CollectedCases  int64
	PendingCases    int64
	DisputedCases   int64
}

// ManagerSummary is the portfolio of the manager's agency.
type ManagerSummary struct {
	AgencyID    string
	TotalCases  int
	TotalAmount decimal.Decimal
}

// TrendAnalysis combines the distributions with the top high-value and most
// overdue cases.
type TrendAnalysis struct {
	StageDistribution  map[domain.Stage]int64
	StatusDistribution map[domain.Status]int64
	TopHighValueCases  []domain.Case
	MostOverdueCases   []domain.Case
}

// portfolio holds the aggregates most reports are derived from.
type portfolio struct {
	total    int64
	byStatus []debtcase.StatusTotals
	byStage  map[domain.Stage]int64
}

func (p *portfolio) statusCount(st domain.Status) int64 {
	for _, t := range p.byStatus {
		if t.Status == st.String() {
			return t.Count
		}
	}
	return 0
}

func (p *portfolio) totalAmount() decimal.Decimal {
	sum := decimal.Zero
	for _, t := range p.byStatus {
		sum = sum.Add(t.Amount)
	}
	return sum
}

func (p *portfolio) pending() int64 {
	return p.byStage[domain.StagePending] + p.byStage[domain.StageInProgress]
}

// loadPortfolio runs the independent aggregate queries concurrently.
func (s *Service) loadPortfolio(ctx context.Context) (*portfolio, error) {
	var p portfolio
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.cases.Count(gctx)
		if err != nil {
			return fmt.Errorf("count cases: %w", err)
		}
		p.total = n
		return nil
	})
	g.Go(func() error {
		totals, err := s.cases.TotalsByStatus(gctx)
		if err != nil {
			return fmt.Errorf("totals by status: %w", err)
		}
		p.byStatus = totals
		return nil
	})
	g.Go(func() error {
		stages, err := s.investigations.CountAllStages(gctx)
		if err != nil {
			return fmt.Errorf("count stages: %w", err)
		}
		p.byStage = stages
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Summary returns the portfolio overview.
func (s *Service) Summary(ctx context.Context, actor domain.Actor) (*Summary, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}
	p, err := s.loadPortfolio(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporting.Summary: %w", err)
	}

	assigned := p.statusCount(domain.StatusAssigned)
	collected := p.byStage[domain.StageCollected]
	return &Summary{
		TotalCases:      p.total,
		TotalAmount:     p.totalAmount(),
		AssignedCases:   assigned,
		UnassignedCases: p.statusCount(domain.StatusUnassigned),
		CollectedCases:  collected,
		PendingCases:    p.pending(),
		DisputedCases:   p.byStage[domain.StageDisputed],
		AssignmentRate:  percent(assigned, p.total),
		CollectionRate:  percent(collected, p.total),
	}, nil
}

// ByStatus returns counts and amounts for every status, zero-filled.
func (s *Service) ByStatus(ctx context.Context, actor domain.Actor) (*StatusBreakdown, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}
	totals, err := s.cases.TotalsByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporting.ByStatus: %w", err)
	}

	out := &StatusBreakdown{
		Counts:  make(map[domain.Status]int64, len(domain.AllStatuses)),
		Amounts: make(map[domain.Status]decimal.Decimal, len(domain.AllStatuses)),
	}
	for _, st := range domain.AllStatuses {
		out.Counts[st] = 0
		out.Amounts[st] = decimal.Zero
	}
	for _, t := range totals {
		out.Counts[domain.Status(t.Status)] = t.Count
		out.Amounts[domain.Status(t.Status)] = t.Amount
	}
	return out, nil
}

// ByStage returns the number of investigations per stage.
func (s *Service) ByStage(ctx context.Context, actor domain.Actor) (map[domain.Stage]int64, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}
	stages, err := s.investigations.CountAllStages(ctx)
	if err != nil {
		return nil, fmt.Errorf("reporting.ByStage: %w", err)
	}
	return stages, nil
}

// HighValue returns cases with an amount of at least minAmount ordered by
// amount.
func (s *Service) HighValue(ctx context.Context, actor domain.Actor, minAmount decimal.Decimal, descending bool) ([]domain.Case, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}
	return s.highValue(ctx, minAmount, descending, 0)
}

func (s *Service) highValue(ctx context.Context, minAmount decimal.Decimal, descending bool, limit int) ([]domain.Case, error) {
	cases, _, err := s.filter(ctx, domain.CaseFilter{
		MinAmount: &minAmount,
		SortBy:    SortAmount,
		Ascending: !descending,
	}, false)
	if err != nil {
		return nil, err
	}
	return head(cases, limit), nil
}

// Overdue returns cases at least minDays overdue, most overdue first.
func (s *Service) Overdue(ctx context.Context, actor domain.Actor, minDays int) ([]domain.Case, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}
	return s.overdue(ctx, minDays, 0)
}

func (s *Service) overdue(ctx context.Context, minDays, limit int) ([]domain.Case, error) {
	cases, _, err := s.filter(ctx, domain.CaseFilter{
		MinDaysOverdue: &minDays,
		SortBy:         SortDaysOverdue,
	}, false)
	if err != nil {
		return nil, err
	}
	return head(cases, limit), nil
}

// CollectionTrend returns collected versus remaining cases.
func (s *Service) CollectionTrend(ctx context.Context, actor domain.Actor) (*CollectionTrend, error) {
	sum, err := s.Summary(ctx, actor)
	if err != nil {
		return nil, err
	}
	return &CollectionTrend{
		TotalCases:     sum.TotalCases,
		CollectedCases: sum.CollectedCases,
		RemainingCases: sum.TotalCases - sum.CollectedCases,
		CollectionRate: sum.CollectionRate,
	}, nil
}

// DebtStats returns the assignment overview.
func (s *Service) DebtStats(ctx context.Context, actor domain.Actor) (*DebtStats, error) {
	sum, err := s.Summary(ctx, actor)
	if err != nil {
		return nil, err
	}
	return &DebtStats{
		TotalCases:      sum.TotalCases,
		TotalAmount:     sum.TotalAmount,
		AssignedCases:   sum.AssignedCases,
		UnassignedCases: sum.UnassignedCases,
		AssignmentRate:  sum.AssignmentRate,
	}, nil
}

// CollectionStats returns status counts and the collected and pending
// amounts. A case counts as collected when its investigation is COLLECTED.
func (s *Service) CollectionStats(ctx context.Context, actor domain.Actor) (*CollectionStats, error) {
	if !actor.IsAdmin() {
		return nil, domain.NewForbidden("Access denied. Admin role required.")
	}

	var (
		p         *portfolio
		collected decimal.Decimal
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		p, err = s.loadPortfolio(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		collected, err = s.collectedAmount(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("reporting.CollectionStats: %w", err)
	}

	byStatus := make(map[domain.Status]int64, len(domain.AllStatuses))
	for _, st := range domain.AllStatuses {
		byStatus[st] = p.statusCount(st)
	}
	total := p.totalAmount()
	return &CollectionStats{
		TotalCases:      p.total,
		AssignedCases:   byStatus[domain.StatusAssigned],
		UnassignedCases: byStatus[domain.StatusUnassigned],
		TotalAmount:     total,
		CollectedAmount: collected,
		PendingAmount:   total.Sub(collected),
		CasesByStatus:   byStatus,
		CollectedCases:  p.byStage[domain.StageCollected],
		PendingCases:    p.pending(),
		DisputedCases:   p.byStage[domain.StageDisputed],
	}, nil
}

func (s *Service) collectedAmount(ctx context.Context) (decimal.Decimal, error) {
	stage := domain.StageCollected
	cases, _, err := s.filter(ctx, domain.CaseFilter{Stage: &stage}, false)
	if err != nil {
		return decimal.Zero, err
	}
	return sumAmounts(cases), nil
}

// ManagerSummary returns the portfolio of the manager's agency.
func (s *Service) ManagerSummary(ctx context.Context, actor domain.Actor) (*ManagerSummary, error) {
	if !actor.IsManager() {
		return nil, domain.NewForbidden("You dont have permissions to perform this action")
	}
	agency, err := s.managerAgency(ctx, actor)
	if err != nil {
		return nil, err
	}
	cases, err := s.cases.ListByAssignee(ctx, agency)
	if err != nil {
		return nil, fmt.Errorf("reporting.ManagerSummary: %w", err)
	}
	return &ManagerSummary{
		AgencyID:    agency,
		TotalCases:  len(cases),
		TotalAmount: sumAmounts(cases),
	}, nil
}

// TrendAnalysis returns the stage and status distributions with the ten
// largest high-value and the ten most overdue cases.
func (s *Service) TrendAnalysis(ctx context.Context, actor domain.Actor) (*TrendAnalysis, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}

	var (
		out TrendAnalysis
		p   *portfolio
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		p, err = s.loadPortfolio(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		out.TopHighValueCases, err = s.highValue(gctx, decimal.NewFromInt(DefaultHighValueMin), true, trendTopN)
		return err
	})
	g.Go(func() error {
		var err error
		out.MostOverdueCases, err = s.overdue(gctx, DefaultOverdueMinDays, trendTopN)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("reporting.TrendAnalysis: %w", err)
	}

	out.StageDistribution = p.byStage
	out.StatusDistribution = make(map[domain.Status]int64, len(domain.AllStatuses))
	for _, st := range domain.AllStatuses {
		out.StatusDistribution[st] = p.statusCount(st)
	}
	return &out, nil
}

func sumAmounts(cases []domain.Case) decimal.Decimal {
	sum := decimal.Zero
	for i := range cases {
		sum = sum.Add(cases[i].AmountOrZero())
	}
	return sum
}

func head(cases []domain.Case, limit int) []domain.Case {
	if limit > 0 && len(cases) > limit {
		return cases[:limit]
	}
	return cases
}

// sortByUpdated orders cases most recently updated first.
func sortByUpdated(cases []domain.Case) {
	slices.SortStableFunc(cases, func(a, b domain.Case) int {
		if c := b.UpdatedAt.Compare(a.UpdatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
}
