package caseimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

// Column names, matched case-insensitively. Unknown columns are ignored.
const (
	colInvoiceNumber   = "invoicenumber"
	colCustomerName    = "customername"
	colAmount          = "amount"
	colDaysOverdue     = "daysoverdue"
	colServiceType     = "servicetype"
	colPastDefaults    = "pastdefaults"
	colStatus          = "status"
	colAssignedTo      = "assignedto"
	colPropensityScore = "propensityscore"
)

// Row is one parsed data line. Err is set when the line could not be
// turned into a case.
type Row struct {
	Line int
	Case domain.Case
	Err  error
}

// Parse reads a header-driven CSV of cases. Lines are numbered from 1, the
// header being line 1. A malformed header or an unreadable stream aborts the
// parse; a bad data line yields a Row with Err set.
func Parse(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.NewValidationError("file", "File is empty!")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := index[colInvoiceNumber]; !ok {
		return nil, domain.NewValidationError("file", "missing invoiceNumber column")
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				rows = append(rows, Row{Line: perr.StartLine, Err: fmt.Errorf("malformed line: %w", perr.Err)})
				continue
			}
			return nil, fmt.Errorf("read csv: %w", err)
		}
		if blank(record) {
			continue
		}
		line, _ := reader.FieldPos(0)

		c, err := parseRecord(record, index)
		rows = append(rows, Row{Line: line, Case: c, Err: err})
	}
	return rows, nil
}

func parseRecord(record []string, index map[string]int) (domain.Case, error) {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	c := domain.Case{
		InvoiceNumber:   field(colInvoiceNumber),
		Status:          domain.StatusUnassigned,
		PropensityScore: domain.UnscoredPropensity,
	}
	if c.InvoiceNumber == "" {
		return c, errors.New("invoiceNumber is required")
	}

	if v := field(colCustomerName); v != "" {
		c.CustomerName = &v
	}
	if v := field(colAmount); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return c, fmt.Errorf("invalid amount %q", v)
		}
		if d.IsNegative() {
			return c, fmt.Errorf("amount must not be negative")
		}
		c.Amount = &d
	}
	var err error
	if c.DaysOverdue, err = optCount(field(colDaysOverdue), "daysOverdue"); err != nil {
		return c, err
	}
	if c.PastDefaults, err = optCount(field(colPastDefaults), "pastDefaults"); err != nil {
		return c, err
	}
	if v := field(colServiceType); v != "" {
		st, err := domain.ParseServiceType(v)
		if err != nil {
			return c, fmt.Errorf("invalid serviceType %q", v)
		}
		c.ServiceType = &st
	}
	if v := field(colStatus); v != "" {
		st, err := domain.ParseStatus(v)
		if err != nil {
			return c, fmt.Errorf("invalid status %q", v)
		}
		c.Status = st
	}
	if v := field(colAssignedTo); v != "" {
		c.AssignedTo = &v
	}
	if v := field(colPropensityScore); v != "" {
		score, err := strconv.ParseFloat(v, 64)
		if err != nil || (score != domain.UnscoredPropensity && (score < 0 || score > 1)) {
			return c, fmt.Errorf("invalid propensityScore %q", v)
		}
		c.PropensityScore = score
	}
	return c, nil
}

func optCount(v, name string) (*int, error) {
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("invalid %s %q", name, v)
	}
	return &n, nil
}

func blank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
