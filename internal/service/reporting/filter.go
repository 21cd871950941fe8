package reporting

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

// Sort keys accepted by FilterCases. Anything else orders by id.
const (
	SortAmount        = "amount"
	SortDaysOverdue   = "daysoverdue"
	SortCustomerName  = "customername"
	SortInvoiceNumber = "invoicenumber"
)

// FilterInput is the raw filter as received from a caller. Empty strings
// mean "no predicate".
type FilterInput struct {
	Status         string
	Stage          string
	MinAmount      string
	MaxAmount      string
	MinDaysOverdue *int
	SortBy         string
	Ascending      bool
}

// Parse validates the raw filter. Unknown statuses or stages are rejected.
func (in FilterInput) Parse() (domain.CaseFilter, error) {
	f := domain.CaseFilter{
		MinDaysOverdue: in.MinDaysOverdue,
		SortBy:         in.SortBy,
		Ascending:      in.Ascending,
	}
	var errs []domain.FieldError

	if strings.TrimSpace(in.Status) != "" {
		st, err := domain.ParseStatus(in.Status)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status: " + in.Status})
		} else {
			f.Status = &st
		}
	}
	if strings.TrimSpace(in.Stage) != "" {
		st, err := domain.ParseStage(in.Stage)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "stage", Message: "invalid stage: " + in.Stage})
		} else {
			f.Stage = &st
		}
	}
	for _, a := range []struct {
		field string
		raw   string
		dst   **decimal.Decimal
	}{
		{"minAmount", in.MinAmount, &f.MinAmount},
		{"maxAmount", in.MaxAmount, &f.MaxAmount},
	} {
		if strings.TrimSpace(a.raw) == "" {
			continue
		}
		d, err := decimal.NewFromString(strings.TrimSpace(a.raw))
		if err != nil {
			errs = append(errs, domain.FieldError{Field: a.field, Message: "must be a number"})
			continue
		}
		*a.dst = &d
	}

	if len(errs) > 0 {
		return domain.CaseFilter{}, domain.NewValidationErrors(errs)
	}
	return f, nil
}

// FilterCases applies the predicates of f conjunctively over every case,
// then orders the result. An empty SortBy keeps repository order.
func (s *Service) FilterCases(ctx context.Context, actor domain.Actor, f domain.CaseFilter) ([]domain.Case, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}
	cases, _, err := s.filter(ctx, f, false)
	return cases, err
}

// filter returns the matching cases and, when withInvestigations is set or a
// stage predicate needs them, their investigations.
func (s *Service) filter(ctx context.Context, f domain.CaseFilter, withInvestigations bool) ([]domain.Case, map[int64]*domain.Investigation, error) {
	all, err := s.cases.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("reporting.FilterCases: %w", err)
	}

	var invs map[int64]*domain.Investigation
	if withInvestigations || f.Stage != nil {
		invs, err = s.investigationsFor(ctx, all)
		if err != nil {
			return nil, nil, fmt.Errorf("reporting.FilterCases investigations: %w", err)
		}
	}

	out := make([]domain.Case, 0, len(all))
	for _, c := range all {
		if matches(&c, invs[c.ID], f) {
			out = append(out, c)
		}
	}
	sortCases(out, f.SortBy, f.Ascending)
	return out, invs, nil
}

func matches(c *domain.Case, inv *domain.Investigation, f domain.CaseFilter) bool {
	if f.Status != nil && c.Status != *f.Status {
		return false
	}
	if f.Stage != nil && (inv == nil || inv.Stage != *f.Stage) {
		return false
	}
	if f.MinAmount != nil && (c.Amount == nil || c.Amount.LessThan(*f.MinAmount)) {
		return false
	}
	if f.MaxAmount != nil && (c.Amount == nil || c.Amount.GreaterThan(*f.MaxAmount)) {
		return false
	}
	if f.MinDaysOverdue != nil && (c.DaysOverdue == nil || *c.DaysOverdue < *f.MinDaysOverdue) {
		return false
	}
	return true
}

// sortCases orders cases in place. Missing values sort last in either
// direction.
func sortCases(cases []domain.Case, sortBy string, ascending bool) {
	key := strings.ToLower(strings.TrimSpace(sortBy))
	if key == "" {
		return
	}

	dir := func(n int) int {
		if ascending {
			return n
		}
		return -n
	}

	var compare func(a, b *domain.Case) int
	switch key {
	case SortAmount:
		compare = func(a, b *domain.Case) int {
			return nullsLast(a.Amount == nil, b.Amount == nil, func() int { return dir(a.Amount.Cmp(*b.Amount)) })
		}
	case SortDaysOverdue:
		compare = func(a, b *domain.Case) int {
			return nullsLast(a.DaysOverdue == nil, b.DaysOverdue == nil, func() int { return dir(cmp.Compare(*a.DaysOverdue, *b.DaysOverdue)) })
		}
	case SortCustomerName:
		compare = func(a, b *domain.Case) int {
			return nullsLast(a.CustomerName == nil, b.CustomerName == nil, func() int { return dir(strings.Compare(*a.CustomerName, *b.CustomerName)) })
		}
	case SortInvoiceNumber:
		compare = func(a, b *domain.Case) int { return dir(strings.Compare(a.InvoiceNumber, b.InvoiceNumber)) }
	default:
		compare = func(a, b *domain.Case) int { return dir(cmp.Compare(a.ID, b.ID)) }
	}

	slices.SortStableFunc(cases, func(a, b domain.Case) int { return compare(&a, &b) })
}

func nullsLast(aNil, bNil bool, both func() int) int {
	switch {
	case aNil && bNil:
		return 0
	case aNil:
		return 1
	case bNil:
		return -1
	}
	return both()
}
