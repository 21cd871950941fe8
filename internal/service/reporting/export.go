package reporting

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

// ExportColumns is the CSV export header, in order. Import accepts the same
// columns.
var ExportColumns = []string{
	"invoiceNumber", "customerName", "amount", "daysOverdue", "serviceType",
	"pastDefaults", "status", "assignedTo", "propensityScore",
}

// ExportCSV writes the filtered cases to w as CSV and returns the number of
// rows written.
func (s *Service) ExportCSV(ctx context.Context, actor domain.Actor, f domain.CaseFilter, w io.Writer) (int, error) {
	if err := requireStaff(actor); err != nil {
		return 0, err
	}
	cases, _, err := s.filter(ctx, f, false)
	if err != nil {
		return 0, err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(ExportColumns); err != nil {
		return 0, fmt.Errorf("reporting.ExportCSV: %w", err)
	}
	for i := range cases {
		if err := cw.Write(CSVRecord(&cases[i])); err != nil {
			return 0, fmt.Errorf("reporting.ExportCSV: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("reporting.ExportCSV: %w", err)
	}

	s.audit.LogExport(ctx, actor.Email, domain.AuditActionExportCSV, len(cases))
	return len(cases), nil
}

// CSVRecord renders c in ExportColumns order. Missing values are empty.
func CSVRecord(c *domain.Case) []string {
	rec := make([]string, 0, len(ExportColumns))
	rec = append(rec, c.InvoiceNumber, c.CustomerNameOrEmpty())

	if c.Amount != nil {
		rec = append(rec, c.Amount.String())
	} else {
		rec = append(rec, "")
	}
	rec = append(rec, optInt(c.DaysOverdue))
	if c.ServiceType != nil {
		rec = append(rec, c.ServiceType.String())
	} else {
		rec = append(rec, "")
	}
	rec = append(rec, optInt(c.PastDefaults), c.Status.String())
	if c.AssignedTo != nil {
		rec = append(rec, *c.AssignedTo)
	} else {
		rec = append(rec, "")
	}
	return append(rec, strconv.FormatFloat(c.PropensityScore, 'f', -1, 64))
}

func optInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

// ExportJSON returns the filtered cases. Investigations are attached only
// when includeInvestigation is set.
func (s *Service) ExportJSON(ctx context.Context, actor domain.Actor, f domain.CaseFilter, includeInvestigation bool) ([]domain.CaseDetail, error) {
	if err := requireStaff(actor); err != nil {
		return nil, err
	}
	cases, invs, err := s.filter(ctx, f, includeInvestigation)
	if err != nil {
		return nil, err
	}

	out := make([]domain.CaseDetail, len(cases))
	for i, c := range cases {
		out[i] = domain.CaseDetail{Case: c}
		if includeInvestigation {
			out[i].Investigation = invs[c.ID]
		}
	}

	s.audit.LogExport(ctx, actor.Email, domain.AuditActionExportJSON, len(out))
	return out, nil
}

// FilteredCount is the export summary plus the size of the filtered view.
type FilteredCount struct {
	Summary
	FilteredCount int
}

// CountFiltered returns the summary together with the number of cases
// matching f.
func (s *Service) CountFiltered(ctx context.Context, actor domain.Actor, f domain.CaseFilter) (*FilteredCount, error) {
	sum, err := s.Summary(ctx, actor)
	if err != nil {
		return nil, err
	}
	f.SortBy = ""
	cases, _, err := s.filter(ctx, f, false)
	if err != nil {
		return nil, err
	}
	return &FilteredCount{Summary: *sum, FilteredCount: len(cases)}, nil
}
