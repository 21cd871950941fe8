// Package debtcase implements the Case repository using PostgreSQL.
package debtcase

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/debt-recovery-backend/internal/adapter/postgres"
	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

const table = "debt_cases"

var columns = []string{
	"id", "invoice_number", "customer_name", "amount", "days_overdue", "service_type",
	"past_defaults", "status", "assigned_to", "propensity_score", "created_at", "updated_at",
}

// Repo provides case persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new case repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

func selectCases() squirrel.SelectBuilder {
	return postgres.Builder().Select(columns...).From(table)
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns a case by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Case, error) {
	row, err := postgres.Get[caseRow](ctx, r.q(ctx), selectCases().Where(squirrel.Eq{"id": id}))
	if err != nil {
		return nil, postgres.MapError(err, "case", id)
	}
	c := row.toDomain()
	return &c, nil
}

// GetByInvoice returns a case by its invoice number.
func (r *Repo) GetByInvoice(ctx context.Context, invoice string) (*domain.Case, error) {
	row, err := postgres.Get[caseRow](ctx, r.q(ctx), selectCases().Where(squirrel.Eq{"invoice_number": invoice}))
	if err != nil {
		return nil, postgres.MapError(err, "case", invoice)
	}
	c := row.toDomain()
	return &c, nil
}

// GetByInvoices returns the cases matching invoices, keyed by invoice number.
// Unknown invoices are simply absent from the map.
func (r *Repo) GetByInvoices(ctx context.Context, invoices []string) (map[string]domain.Case, error) {
	out := make(map[string]domain.Case, len(invoices))
	if len(invoices) == 0 {
		return out, nil
	}
	rows, err := postgres.Select[caseRow](ctx, r.q(ctx), selectCases().Where(squirrel.Eq{"invoice_number": invoices}))
	if err != nil {
		return nil, postgres.MapError(err, "case", strings.Join(invoices, ","))
	}
	for _, row := range rows {
		out[row.InvoiceNumber] = row.toDomain()
	}
	return out, nil
}

// ListByIDs returns the cases with the given ids, keyed by id.
func (r *Repo) ListByIDs(ctx context.Context, ids []int64) (map[int64]domain.Case, error) {
	out := make(map[int64]domain.Case, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := postgres.Select[caseRow](ctx, r.q(ctx), selectCases().Where(squirrel.Eq{"id": ids}))
	if err != nil {
		return nil, postgres.MapError(err, "case", "batch")
	}
	for _, row := range rows {
		out[row.ID] = row.toDomain()
	}
	return out, nil
}

// List returns every case ordered by id.
func (r *Repo) List(ctx context.Context) ([]domain.Case, error) {
	return r.list(ctx, selectCases().OrderBy("id ASC"))
}

// ListByStatus returns the cases in any of the given statuses, ordered by id.
func (r *Repo) ListByStatus(ctx context.Context, statuses ...domain.Status) ([]domain.Case, error) {
	return r.list(ctx, selectCases().Where(squirrel.Eq{"status": statusStrings(statuses)}).OrderBy("id ASC"))
}

// ListByAssignee returns the cases assigned to an agency, ordered by id.
func (r *Repo) ListByAssignee(ctx context.Context, agencyID string) ([]domain.Case, error) {
	return r.list(ctx, selectCases().Where(squirrel.Eq{"assigned_to": agencyID}).OrderBy("id ASC"))
}

// ListUnscored returns cases with a negative score in any of the statuses.
func (r *Repo) ListUnscored(ctx context.Context, statuses ...domain.Status) ([]domain.Case, error) {
	return r.list(ctx, selectCases().
		Where(squirrel.Lt{"propensity_score": 0}).
		Where(squirrel.Eq{"status": statusStrings(statuses)}).
		OrderBy("id ASC"))
}

// ListTopScored returns the highest-scored cases.
func (r *Repo) ListTopScored(ctx context.Context, limit int) ([]domain.Case, error) {
	return r.list(ctx, selectCases().
		Where(squirrel.GtOrEq{"propensity_score": 0}).
		OrderBy("propensity_score DESC", "id ASC").
		Limit(uint64(limit)))
}

// Search applies the ad-hoc /debt search predicates conjunctively.
func (r *Repo) Search(ctx context.Context, s domain.CaseSearch) ([]domain.Case, error) {
	b := selectCases()
	if s.CustomerName != "" {
		b = b.Where(squirrel.ILike{"customer_name": "%" + escapeLike(s.CustomerName) + "%"})
	}
	if s.InvoiceNumber != "" {
		b = b.Where(squirrel.Eq{"invoice_number": s.InvoiceNumber})
	}
	if s.Status != nil {
		b = b.Where(squirrel.Eq{"status": string(*s.Status)})
	}
	if s.MinAmount != nil {
		b = b.Where(squirrel.GtOrEq{"amount": *s.MinAmount})
	}
	if s.MaxAmount != nil {
		b = b.Where(squirrel.LtOrEq{"amount": *s.MaxAmount})
	}
	return r.list(ctx, b.OrderBy("id ASC"))
}

// ExistingInvoices reports which of invoices are already stored.
func (r *Repo) ExistingInvoices(ctx context.Context, invoices []string) (map[string]bool, error) {
	out := make(map[string]bool)
	if len(invoices) == 0 {
		return out, nil
	}
	found, err := postgres.Select[string](ctx, r.q(ctx), postgres.Builder().
		Select("invoice_number").From(table).
		Where(squirrel.Eq{"invoice_number": invoices}))
	if err != nil {
		return nil, postgres.MapError(err, "case", "existing")
	}
	for _, inv := range found {
		out[inv] = true
	}
	return out, nil
}

func (r *Repo) list(ctx context.Context, b squirrel.SelectBuilder) ([]domain.Case, error) {
	rows, err := postgres.Select[caseRow](ctx, r.q(ctx), b)
	if err != nil {
		return nil, postgres.MapError(err, "case", "list")
	}
	out := make([]domain.Case, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a case. A duplicate invoice number yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, c *domain.Case) (*domain.Case, error) {
	row, err := postgres.Get[caseRow](ctx, r.q(ctx), postgres.Builder().
		Insert(table).
		Columns(columns[1:10]...).
		Values(insertValues(c)...).
		Suffix("RETURNING "+strings.Join(columns, ", ")))
	if err != nil {
		return nil, postgres.MapError(err, "case", c.InvoiceNumber)
	}
	out := row.toDomain()
	return &out, nil
}

// Upsert inserts a case or overwrites every mutable field of the existing
// row with the same invoice number.
func (r *Repo) Upsert(ctx context.Context, c *domain.Case) (*domain.Case, error) {
	row, err := postgres.Get[caseRow](ctx, r.q(ctx), postgres.Builder().
		Insert(table).
		Columns(columns[1:10]...).
		Values(insertValues(c)...).
		Suffix(`ON CONFLICT (invoice_number) DO UPDATE SET
			customer_name = EXCLUDED.customer_name,
			amount = EXCLUDED.amount,
			days_overdue = EXCLUDED.days_overdue,
			service_type = EXCLUDED.service_type,
			past_defaults = EXCLUDED.past_defaults,
			status = EXCLUDED.status,
			assigned_to = EXCLUDED.assigned_to,
			propensity_score = EXCLUDED.propensity_score,
			updated_at = now()
			RETURNING `+strings.Join(columns, ", ")))
	if err != nil {
		return nil, postgres.MapError(err, "case", c.InvoiceNumber)
	}
	out := row.toDomain()
	return &out, nil
}

// UpdateAssignment sets status and assigned agency for one invoice.
func (r *Repo) UpdateAssignment(ctx context.Context, invoice string, status domain.Status, agencyID *string) error {
	return r.update(ctx, invoice, map[string]any{"status": string(status), "assigned_to": agencyID})
}

// UpdateStatus sets the status of one invoice.
func (r *Repo) UpdateStatus(ctx context.Context, invoice string, status domain.Status) error {
	return r.update(ctx, invoice, map[string]any{"status": string(status)})
}

// UpdateScore writes back a propensity score.
func (r *Repo) UpdateScore(ctx context.Context, invoice string, score float64) error {
	return r.update(ctx, invoice, map[string]any{"propensity_score": score})
}

func (r *Repo) update(ctx context.Context, invoice string, set map[string]any) error {
	n, err := postgres.Exec(ctx, r.q(ctx), postgres.Builder().
		Update(table).
		SetMap(set).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"invoice_number": invoice}))
	if err != nil {
		return postgres.MapError(err, "case", invoice)
	}
	if n == 0 {
		return domain.NewNotFound("Case not found: %s", invoice)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Aggregates
// ---------------------------------------------------------------------------

// Count returns the number of cases.
func (r *Repo) Count(ctx context.Context) (int64, error) {
	n, err := postgres.Count(ctx, r.q(ctx), postgres.Builder().Select("count(*)").From(table))
	if err != nil {
		return 0, postgres.MapError(err, "case", "count")
	}
	return n, nil
}

// StatusTotals is the per-status count and amount sum.
type StatusTotals struct {
	Status string          `db:"status"`
	Count  int64           `db:"count"`
	Amount decimal.Decimal `db:"amount"`
}

// TotalsByStatus returns count and amount sum per status.
func (r *Repo) TotalsByStatus(ctx context.Context) ([]StatusTotals, error) {
	rows, err := postgres.Select[StatusTotals](ctx, r.q(ctx), postgres.Builder().
		Select("status", "count(*) AS count", "COALESCE(sum(amount), 0) AS amount").
		From(table).
		GroupBy("status").
		OrderBy("status"))
	if err != nil {
		return nil, postgres.MapError(err, "case", "totals")
	}
	return rows, nil
}

// CountByStatus returns the number of cases per status.
func (r *Repo) CountByStatus(ctx context.Context) (map[domain.Status]int64, error) {
	totals, err := r.TotalsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[domain.Status]int64, len(totals))
	for _, t := range totals {
		out[domain.Status(t.Status)] = t.Count
	}
	return out, nil
}

// SumAmountByStatus returns the summed amount per status.
func (r *Repo) SumAmountByStatus(ctx context.Context) (map[domain.Status]decimal.Decimal, error) {
	totals, err := r.TotalsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[domain.Status]decimal.Decimal, len(totals))
	for _, t := range totals {
		out[domain.Status(t.Status)] = t.Amount
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

type caseRow struct {
	ID              int64            `db:"id"`
	InvoiceNumber   string           `db:"invoice_number"`
	CustomerName    *string          `db:"customer_name"`
	Amount          *decimal.Decimal `db:"amount"`
	DaysOverdue     *int             `db:"days_overdue"`
	ServiceType     *string          `db:"service_type"`
	PastDefaults    *int             `db:"past_defaults"`
	Status          string           `db:"status"`
	AssignedTo      *string          `db:"assigned_to"`
	PropensityScore float64          `db:"propensity_score"`
	CreatedAt       time.Time        `db:"created_at"`
	UpdatedAt       time.Time        `db:"updated_at"`
}

func (r caseRow) toDomain() domain.Case {
	c := domain.Case{
		ID:              r.ID,
		InvoiceNumber:   r.InvoiceNumber,
		CustomerName:    r.CustomerName,
		Amount:          r.Amount,
		DaysOverdue:     r.DaysOverdue,
		PastDefaults:    r.PastDefaults,
		Status:          domain.Status(r.Status),
		AssignedTo:      r.AssignedTo,
		PropensityScore: r.PropensityScore,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	if r.ServiceType != nil {
		st := domain.ServiceType(*r.ServiceType)
		c.ServiceType = &st
	}
	return c
}

func insertValues(c *domain.Case) []any {
	var st *string
	if c.ServiceType != nil {
		s := string(*c.ServiceType)
		st = &s
	}
	status := c.Status
	if status == "" {
		status = domain.StatusUnassigned
	}
	return []any{
		c.InvoiceNumber, c.CustomerName, c.Amount, c.DaysOverdue, st,
		c.PastDefaults, string(status), c.AssignedTo, c.PropensityScore,
	}
}

func statusStrings(statuses []domain.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
