// Package investigation implements the Investigation repository using PostgreSQL.
package investigation

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/debt-recovery-backend/internal/adapter/postgres"
	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

const table = "investigations"

var columns = []string{"id", "case_id", "assigned_to_email", "stage", "message", "created_at", "updated_at"}

// Repo provides investigation persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new investigation repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

func selectInvestigations() squirrel.SelectBuilder {
	return postgres.Builder().Select(prefixed("i")...).From(table + " i")
}

// GetByCaseID returns the investigation attached to a case.
func (r *Repo) GetByCaseID(ctx context.Context, caseID int64) (*domain.Investigation, error) {
	row, err := postgres.Get[investigationRow](ctx, r.q(ctx), selectInvestigations().Where(squirrel.Eq{"i.case_id": caseID}))
	if err != nil {
		return nil, postgres.MapError(err, "investigation", caseID)
	}
	inv := row.toDomain()
	return &inv, nil
}

// GetByInvoice returns the investigation of the case with the given invoice.
func (r *Repo) GetByInvoice(ctx context.Context, invoice string) (*domain.Investigation, error) {
	row, err := postgres.Get[investigationRow](ctx, r.q(ctx), selectInvestigations().
		Join("debt_cases c ON c.id = i.case_id").
		Where(squirrel.Eq{"c.invoice_number": invoice}))
	if err != nil {
		return nil, postgres.MapError(err, "investigation", invoice)
	}
	inv := row.toDomain()
	return &inv, nil
}

// ListByCaseIDs returns the investigations of the given cases. Cases without
// an investigation are absent from the result.
func (r *Repo) ListByCaseIDs(ctx context.Context, caseIDs []int64) ([]domain.Investigation, error) {
	if len(caseIDs) == 0 {
		return nil, nil
	}
	return r.list(ctx, selectInvestigations().Where(squirrel.Eq{"i.case_id": caseIDs}))
}

// List returns every investigation ordered by id.
func (r *Repo) List(ctx context.Context) ([]domain.Investigation, error) {
	return r.list(ctx, selectInvestigations().OrderBy("i.id ASC"))
}

// ListByAgent returns the investigations assigned to an agent (case-insensitive).
func (r *Repo) ListByAgent(ctx context.Context, email string) ([]domain.Investigation, error) {
	return r.list(ctx, selectInvestigations().
		Where(squirrel.Expr("lower(i.assigned_to_email) = lower(?)", email)).
		OrderBy("i.id ASC"))
}

// ListByAgents returns the investigations assigned to any of emails.
func (r *Repo) ListByAgents(ctx context.Context, emails []string) ([]domain.Investigation, error) {
	if len(emails) == 0 {
		return nil, nil
	}
	lowered := make([]string, len(emails))
	for i, e := range emails {
		lowered[i] = strings.ToLower(e)
	}
	return r.list(ctx, selectInvestigations().
		Where(squirrel.Eq{"lower(i.assigned_to_email)": lowered}).
		OrderBy("i.id ASC"))
}

// AgentDebts returns the investigations of an agent joined with their cases.
func (r *Repo) AgentDebts(ctx context.Context, email string) ([]domain.AgentDebt, error) {
	cols := append(prefixed("i"),
		"c.invoice_number", "c.customer_name", "c.amount", "c.days_overdue", "c.service_type",
		"c.past_defaults", "c.status", "c.assigned_to", "c.propensity_score")
	rows, err := postgres.Select[agentDebtRow](ctx, r.q(ctx), postgres.Builder().
		Select(cols...).
		From(table+" i").
		Join("debt_cases c ON c.id = i.case_id").
		Where(squirrel.Expr("lower(i.assigned_to_email) = lower(?)", email)).
		OrderBy("i.id ASC"))
	if err != nil {
		return nil, postgres.MapError(err, "investigation", email)
	}
	out := make([]domain.AgentDebt, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

func (r *Repo) list(ctx context.Context, b squirrel.SelectBuilder) ([]domain.Investigation, error) {
	rows, err := postgres.Select[investigationRow](ctx, r.q(ctx), b)
	if err != nil {
		return nil, postgres.MapError(err, "investigation", "list")
	}
	out := make([]domain.Investigation, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// Upsert creates a PENDING investigation for caseID or reassigns the
// existing one to agentEmail, keeping its stage and message.
func (r *Repo) Upsert(ctx context.Context, caseID int64, agentEmail string) (*domain.Investigation, error) {
	row, err := postgres.Get[investigationRow](ctx, r.q(ctx), postgres.Builder().
		Insert(table).
		Columns("case_id", "assigned_to_email", "stage").
		Values(caseID, agentEmail, string(domain.StagePending)).
		Suffix(`ON CONFLICT (case_id) DO UPDATE SET
			assigned_to_email = EXCLUDED.assigned_to_email,
			updated_at = now()
			RETURNING `+strings.Join(columns, ", ")))
	if err != nil {
		return nil, postgres.MapError(err, "investigation", caseID)
	}
	inv := row.toDomain()
	return &inv, nil
}

// Put inserts or fully overwrites the investigation of a case. Used by seeding.
func (r *Repo) Put(ctx context.Context, inv *domain.Investigation) error {
	_, err := postgres.Exec(ctx, r.q(ctx), postgres.Builder().
		Insert(table).
		Columns("case_id", "assigned_to_email", "stage", "message").
		Values(inv.CaseID, inv.AssignedToEmail, string(inv.Stage), inv.Message).
		Suffix(`ON CONFLICT (case_id) DO UPDATE SET
			assigned_to_email = EXCLUDED.assigned_to_email,
			stage = EXCLUDED.stage,
			message = EXCLUDED.message,
			updated_at = now()`))
	if err != nil {
		return postgres.MapError(err, "investigation", inv.CaseID)
	}
	return nil
}

// UpdateStage sets the stage of the investigation with the given id.
func (r *Repo) UpdateStage(ctx context.Context, id int64, stage domain.Stage) error {
	return r.update(ctx, id, "stage", string(stage))
}

// UpdateMessage overwrites the free-text message.
func (r *Repo) UpdateMessage(ctx context.Context, id int64, message string) error {
	return r.update(ctx, id, "message", message)
}

func (r *Repo) update(ctx context.Context, id int64, column string, value any) error {
	n, err := postgres.Exec(ctx, r.q(ctx), postgres.Builder().
		Update(table).
		Set(column, value).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "investigation", id)
	}
	if n == 0 {
		return domain.NewNotFound("Invest record not found: %d", id)
	}
	return nil
}

// CountByStage returns the number of investigations in stage.
func (r *Repo) CountByStage(ctx context.Context, stage domain.Stage) (int64, error) {
	n, err := postgres.Count(ctx, r.q(ctx), postgres.Builder().
		Select("count(*)").From(table).Where(squirrel.Eq{"stage": string(stage)}))
	if err != nil {
		return 0, postgres.MapError(err, "investigation", stage)
	}
	return n, nil
}

// CountAllStages returns the number of investigations per stage. Every stage
// is present in the result, possibly with zero.
func (r *Repo) CountAllStages(ctx context.Context) (map[domain.Stage]int64, error) {
	rows, err := postgres.Select[domain.CountItem](ctx, r.q(ctx), postgres.Builder().
		Select("stage AS key", "count(*) AS count").From(table).GroupBy("stage"))
	if err != nil {
		return nil, postgres.MapError(err, "investigation", "stages")
	}
	out := make(map[domain.Stage]int64, len(domain.AllStages))
	for _, s := range domain.AllStages {
		out[s] = 0
	}
	for _, row := range rows {
		out[domain.Stage(row.Key)] = row.Count
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

func prefixed(alias string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}

type investigationRow struct {
	ID              int64     `db:"id"`
	CaseID          int64     `db:"case_id"`
	AssignedToEmail string    `db:"assigned_to_email"`
	Stage           string    `db:"stage"`
	Message         string    `db:"message"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (r investigationRow) toDomain() domain.Investigation {
	return domain.Investigation{
		ID:              r.ID,
		CaseID:          r.CaseID,
		AssignedToEmail: r.AssignedToEmail,
		Stage:           domain.Stage(r.Stage),
		Message:         r.Message,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}
