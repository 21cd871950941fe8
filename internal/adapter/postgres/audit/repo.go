// Package audit implements the audit log repository using PostgreSQL.
// It provides append-only operations for audit log entries.
package audit

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/debt-recovery-backend/internal/adapter/postgres"
	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

const table = "audit_logs"

var columns = []string{"id", "user_email", "action", "entity_type", "entity_id", "details", "ip_address", "timestamp", "status"}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

func selectEntries() squirrel.SelectBuilder {
	return postgres.Builder().Select(columns...).From(table)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new audit entry. Missing id, timestamp and status are filled in.
func (r *Repo) Create(ctx context.Context, e *domain.AuditLogEntry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	if e.Status == "" {
		e.Status = domain.AuditSuccess
	}
	_, err := postgres.Exec(ctx, r.q(ctx), postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(e.ID, e.UserEmail, e.Action, e.EntityType, e.EntityID, e.Details, e.IPAddress, e.Timestamp, string(e.Status)))
	if err != nil {
		return postgres.MapError(err, "audit_log", e.ID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByUser returns the entries of a user, newest first.
func (r *Repo) ListByUser(ctx context.Context, email string) ([]domain.AuditLogEntry, error) {
	return r.list(ctx, selectEntries().
		Where(squirrel.Expr("lower(user_email) = lower(?)", email)).
		OrderBy("timestamp DESC"))
}

// ListRecentByUser returns the entries of a user since the given time, newest first.
func (r *Repo) ListRecentByUser(ctx context.Context, email string, since time.Time) ([]domain.AuditLogEntry, error) {
	return r.list(ctx, selectEntries().
		Where(squirrel.Expr("lower(user_email) = lower(?)", email)).
		Where(squirrel.GtOrEq{"timestamp": since}).
		OrderBy("timestamp DESC"))
}

// ListByEntity returns the history of one entity, newest first.
func (r *Repo) ListByEntity(ctx context.Context, entityType, entityID string) ([]domain.AuditLogEntry, error) {
	return r.list(ctx, selectEntries().
		Where(squirrel.Eq{"entity_type": entityType, "entity_id": entityID}).
		OrderBy("timestamp DESC"))
}

// ListBetween returns a page of entries in [from, to], newest first.
func (r *Repo) ListBetween(ctx context.Context, from, to time.Time, page domain.PageRequest) (domain.Page[domain.AuditLogEntry], error) {
	where := squirrel.And{squirrel.GtOrEq{"timestamp": from}, squirrel.LtOrEq{"timestamp": to}}
	return r.page(ctx, where, page)
}

// List returns a page of all entries, newest first.
func (r *Repo) List(ctx context.Context, page domain.PageRequest) (domain.Page[domain.AuditLogEntry], error) {
	return r.page(ctx, squirrel.And{}, page)
}

// ExistsMarker reports whether an entry with the given action, entity type
// and entity id has been written.
func (r *Repo) ExistsMarker(ctx context.Context, action, entityType, entityID string) (bool, error) {
	n, err := postgres.Count(ctx, r.q(ctx), postgres.Builder().
		Select("count(*)").From(table).
		Where(squirrel.Eq{"action": action, "entity_type": entityType, "entity_id": entityID}))
	if err != nil {
		return false, postgres.MapError(err, "audit_log", entityID)
	}
	return n > 0, nil
}

// CountByActionSince groups entries since the given time by action.
func (r *Repo) CountByActionSince(ctx context.Context, since time.Time) ([]domain.CountItem, error) {
	return r.countBy(ctx, "action", since)
}

// CountByEntityTypeSince groups entries since the given time by entity type.
func (r *Repo) CountByEntityTypeSince(ctx context.Context, since time.Time) ([]domain.CountItem, error) {
	return r.countBy(ctx, "entity_type", since)
}

func (r *Repo) countBy(ctx context.Context, column string, since time.Time) ([]domain.CountItem, error) {
	rows, err := postgres.Select[domain.CountItem](ctx, r.q(ctx), postgres.Builder().
		Select(column+" AS key", "count(*) AS count").
		From(table).
		Where(squirrel.GtOrEq{"timestamp": since}).
		GroupBy(column).
		OrderBy("count DESC", "key ASC"))
	if err != nil {
		return nil, postgres.MapError(err, "audit_log", column)
	}
	return rows, nil
}

func (r *Repo) page(ctx context.Context, where squirrel.Sqlizer, req domain.PageRequest) (domain.Page[domain.AuditLogEntry], error) {
	req = req.Normalize()
	total, err := postgres.Count(ctx, r.q(ctx), postgres.Builder().Select("count(*)").From(table).Where(where))
	if err != nil {
		return domain.Page[domain.AuditLogEntry]{}, postgres.MapError(err, "audit_log", "page")
	}
	items, err := r.list(ctx, selectEntries().
		Where(where).
		OrderBy("timestamp DESC").
		Limit(uint64(req.Size)).
		Offset(uint64(req.Offset())))
	if err != nil {
		return domain.Page[domain.AuditLogEntry]{}, err
	}
	return domain.NewPage(items, req, int(total)), nil
}

func (r *Repo) list(ctx context.Context, b squirrel.SelectBuilder) ([]domain.AuditLogEntry, error) {
	rows, err := postgres.Select[entryRow](ctx, r.q(ctx), b)
	if err != nil {
		return nil, postgres.MapError(err, "audit_log", "list")
	}
	out := make([]domain.AuditLogEntry, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

type entryRow struct {
	ID         uuid.UUID `db:"id"`
	UserEmail  string    `db:"user_email"`
	Action     string    `db:"action"`
	EntityType string    `db:"entity_type"`
	EntityID   string    `db:"entity_id"`
	Details    string    `db:"details"`
	IPAddress  string    `db:"ip_address"`
	Timestamp  time.Time `db:"timestamp"`
	Status     string    `db:"status"`
}

func (r entryRow) toDomain() domain.AuditLogEntry {
	return domain.AuditLogEntry{
		ID:         r.ID,
		UserEmail:  r.UserEmail,
		Action:     r.Action,
		EntityType: r.EntityType,
		EntityID:   r.EntityID,
		Details:    r.Details,
		IPAddress:  r.IPAddress,
		Timestamp:  r.Timestamp,
		Status:     domain.AuditStatus(r.Status),
	}
}
