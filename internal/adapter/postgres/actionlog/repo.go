// Package actionlog implements the append-only request action log using PostgreSQL.
package actionlog

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/oklog/ulid/v2"

	"github.com/heartmarshall/debt-recovery-backend/internal/adapter/postgres"
	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

const table = "action_logs"

var columns = []string{
	"id", "action", "module", "description", "entity_type", "entity_id",
	"request_data", "response_data", "performed_by", "ip_address", "user_agent",
	"timestamp", "duration_ms", "success", "error_message", "http_method", "endpoint",
}

// Repo provides action log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new action log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

func selectEntries() squirrel.SelectBuilder {
	return postgres.Builder().Select(columns...).From(table)
}

// Create appends an entry. A ULID is assigned when ID is empty so ids sort
// by creation time.
func (r *Repo) Create(ctx context.Context, e *domain.ActionLogEntry) error {
	if e.ID == "" {
		e.ID = ulid.Make().String()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	_, err := postgres.Exec(ctx, r.q(ctx), postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			e.ID, e.Action, e.Module, e.Description, e.EntityType, e.EntityID,
			e.RequestData, e.ResponseData, e.PerformedBy, e.IPAddress, e.UserAgent,
			e.Timestamp, e.DurationMs, e.Success, e.ErrorMessage, e.HTTPMethod, e.Endpoint,
		))
	if err != nil {
		return postgres.MapError(err, "action_log", e.ID)
	}
	return nil
}

// GetByID returns one entry.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.ActionLogEntry, error) {
	row, err := postgres.Get[entryRow](ctx, r.q(ctx), selectEntries().Where(squirrel.Eq{"id": id}))
	if err != nil {
		return nil, postgres.MapError(err, "action_log", id)
	}
	e := domain.ActionLogEntry(row)
	return &e, nil
}

// Search returns a page of entries matching f, newest first.
func (r *Repo) Search(ctx context.Context, f domain.ActionLogFilter, page domain.PageRequest) (domain.Page[domain.ActionLogEntry], error) {
	page = page.Normalize()
	where := filterWhere(f)

	total, err := postgres.Count(ctx, r.q(ctx), postgres.Builder().Select("count(*)").From(table).Where(where))
	if err != nil {
		return domain.Page[domain.ActionLogEntry]{}, postgres.MapError(err, "action_log", "search")
	}
	items, err := r.list(ctx, selectEntries().
		Where(where).
		OrderBy("timestamp DESC", "id DESC").
		Limit(uint64(page.Size)).
		Offset(uint64(page.Offset())))
	if err != nil {
		return domain.Page[domain.ActionLogEntry]{}, err
	}
	return domain.NewPage(items, page, int(total)), nil
}

// ListAll returns every entry matching f, newest first, without paging.
func (r *Repo) ListAll(ctx context.Context, f domain.ActionLogFilter) ([]domain.ActionLogEntry, error) {
	return r.list(ctx, selectEntries().Where(filterWhere(f)).OrderBy("timestamp DESC", "id DESC"))
}

// CountSince returns the number of entries since the given time, optionally
// only failed ones.
func (r *Repo) CountSince(ctx context.Context, since time.Time, onlyFailed bool) (int64, error) {
	b := postgres.Builder().Select("count(*)").From(table).Where(squirrel.GtOrEq{"timestamp": since})
	if onlyFailed {
		b = b.Where(squirrel.Eq{"success": false})
	}
	n, err := postgres.Count(ctx, r.q(ctx), b)
	if err != nil {
		return 0, postgres.MapError(err, "action_log", "count")
	}
	return n, nil
}

// CountByModuleSince groups entries since the given time by module.
func (r *Repo) CountByModuleSince(ctx context.Context, since time.Time) ([]domain.CountItem, error) {
	return r.countBy(ctx, "module", since)
}

// CountByActionSince groups entries since the given time by action.
func (r *Repo) CountByActionSince(ctx context.Context, since time.Time) ([]domain.CountItem, error) {
	return r.countBy(ctx, "action", since)
}

func (r *Repo) countBy(ctx context.Context, column string, since time.Time) ([]domain.CountItem, error) {
	rows, err := postgres.Select[domain.CountItem](ctx, r.q(ctx), postgres.Builder().
		Select(column+" AS key", "count(*) AS count").
		From(table).
		Where(squirrel.GtOrEq{"timestamp": since}).
		GroupBy(column).
		OrderBy("count DESC", "key ASC"))
	if err != nil {
		return nil, postgres.MapError(err, "action_log", column)
	}
	return rows, nil
}

func (r *Repo) list(ctx context.Context, b squirrel.SelectBuilder) ([]domain.ActionLogEntry, error) {
	rows, err := postgres.Select[entryRow](ctx, r.q(ctx), b)
	if err != nil {
		return nil, postgres.MapError(err, "action_log", "list")
	}
	out := make([]domain.ActionLogEntry, len(rows))
	for i, row := range rows {
		out[i] = domain.ActionLogEntry(row)
	}
	return out, nil
}

func filterWhere(f domain.ActionLogFilter) squirrel.And {
	where := squirrel.And{}
	if f.PerformedBy != "" {
		where = append(where, squirrel.Expr("lower(performed_by) = lower(?)", f.PerformedBy))
	}
	if f.Module != "" {
		where = append(where, squirrel.Eq{"module": f.Module})
	}
	if f.Action != "" {
		where = append(where, squirrel.Eq{"action": f.Action})
	}
	if f.EntityType != "" {
		where = append(where, squirrel.Eq{"entity_type": f.EntityType})
	}
	if f.EntityID != "" {
		where = append(where, squirrel.Eq{"entity_id": f.EntityID})
	}
	if f.Success != nil {
		where = append(where, squirrel.Eq{"success": *f.Success})
	}
	if f.From != nil {
		where = append(where, squirrel.GtOrEq{"timestamp": *f.From})
	}
	if f.To != nil {
		where = append(where, squirrel.LtOrEq{"timestamp": *f.To})
	}
	return where
}

type entryRow struct {
	ID           string    `db:"id"`
	Action       string    `db:"action"`
	Module       string    `db:"module"`
	Description  string    `db:"description"`
	EntityType   string    `db:"entity_type"`
	EntityID     string    `db:"entity_id"`
	RequestData  string    `db:"request_data"`
	ResponseData string    `db:"response_data"`
	PerformedBy  string    `db:"performed_by"`
	IPAddress    string    `db:"ip_address"`
	UserAgent    string    `db:"user_agent"`
	Timestamp    time.Time `db:"timestamp"`
	DurationMs   int64     `db:"duration_ms"`
	Success      bool      `db:"success"`
	ErrorMessage string    `db:"error_message"`
	HTTPMethod   string    `db:"http_method"`
	Endpoint     string    `db:"endpoint"`
}
