// Package caseimport loads debt cases from CSV uploads.
package caseimport

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

type caseRepo interface {
	ExistingInvoices(ctx context.Context, invoices []string) (map[string]bool, error)
	Create(ctx context.Context, c *domain.Case) (*domain.Case, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type auditLogger interface {
	LogCSVUpload(ctx context.Context, actorEmail, filename string, imported, failed int)
}

// Service imports cases.
type Service struct {
	log   *slog.Logger
	cases caseRepo
	tx    txManager
	audit auditLogger
}

// NewService creates a new import service.
func NewService(logger *slog.Logger, cases caseRepo, tx txManager, audit auditLogger) *Service {
	return &Service{
		log:   logger.With("service", "caseimport"),
		cases: cases,
		tx:    tx,
		audit: audit,
	}
}

// RowError reports why one line was not imported.
type RowError struct {
	Line    int
	Invoice string
	Message string
}

func (e RowError) String() string {
	if e.Invoice == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("line %d (%s): %s", e.Line, e.Invoice, e.Message)
}

// Result summarizes an import.
type Result struct {
	Imported int
	Failed   int
	Errors   []RowError
}

// ImportCSV parses r and inserts every valid row in one transaction (admin
// only). Lines that fail to parse, or whose invoice number already exists
// in the store or earlier in the file, are reported and skipped.
func (s *Service) ImportCSV(ctx context.Context, actor domain.Actor, r io.Reader, filename string) (*Result, error) {
	if !actor.IsAdmin() {
		return nil, domain.NewForbidden("You dont have enough permissions to do this action")
	}

	rows, err := Parse(r)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	candidates := make([]Row, 0, len(rows))
	invoices := make([]string, 0, len(rows))
	for _, row := range rows {
		if row.Err != nil {
			res.fail(row, row.Err.Error())
			continue
		}
		candidates = append(candidates, row)
		invoices = append(invoices, row.Case.InvoiceNumber)
	}

	existing, err := s.cases.ExistingInvoices(ctx, invoices)
	if err != nil {
		return nil, fmt.Errorf("caseimport.ImportCSV existing: %w", err)
	}

	seen := make(map[string]bool, len(candidates))
	valid := candidates[:0]
	for _, row := range candidates {
		inv := row.Case.InvoiceNumber
		switch {
		case existing[inv]:
			res.fail(row, "invoice number already exists")
		case seen[inv]:
			res.fail(row, "duplicate invoice number in file")
		default:
			seen[inv] = true
			valid = append(valid, row)
		}
	}

	if len(valid) > 0 {
		err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
			for i := range valid {
				if _, err := s.cases.Create(ctx, &valid[i].Case); err != nil {
					return fmt.Errorf("line %d: %w", valid[i].Line, err)
				}
			}
			return nil
		})
		if err != nil {
			s.audit.LogCSVUpload(ctx, actor.Email, filename, 0, len(rows))
			return nil, fmt.Errorf("caseimport.ImportCSV: %w", err)
		}
		res.Imported = len(valid)
	}

	s.audit.LogCSVUpload(ctx, actor.Email, filename, res.Imported, res.Failed)
	s.log.InfoContext(ctx, "csv imported",
		slog.String("file", filename),
		slog.Int("imported", res.Imported),
		slog.Int("failed", res.Failed))
	return res, nil
}

func (r *Result) fail(row Row, msg string) {
	r.Failed++
	r.Errors = append(r.Errors, RowError{Line: row.Line, Invoice: row.Case.InvoiceNumber, Message: msg})
}
