// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/debt-recovery-backend/internal/adapter/postgres"
	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

const table = "users"

var columns = []string{"id", "email", "password_hash", "role", "agency_id", "created_at", "updated_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

func selectUsers() squirrel.SelectBuilder {
	return postgres.Builder().Select(columns...).From(table)
}

func byEmail(email string) squirrel.Sqlizer {
	return squirrel.Expr("lower(email) = lower(?)", strings.TrimSpace(email))
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByEmail returns a user by email address, case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	row, err := postgres.Get[userRow](ctx, r.q(ctx), selectUsers().Where(byEmail(email)))
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	u := row.toDomain()
	return &u, nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	row, err := postgres.Get[userRow](ctx, r.q(ctx), selectUsers().Where(squirrel.Eq{"id": id}))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	u := row.toDomain()
	return &u, nil
}

// ExistsByEmail reports whether a user with the email exists.
func (r *Repo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	n, err := postgres.Count(ctx, r.q(ctx), postgres.Builder().
		Select("count(*)").From(table).Where(byEmail(email)))
	if err != nil {
		return false, postgres.MapError(err, "user", email)
	}
	return n > 0, nil
}

// List returns every user ordered by email.
func (r *Repo) List(ctx context.Context) ([]domain.User, error) {
	return r.list(ctx, selectUsers().OrderBy("email ASC"))
}

// ListByRole returns users with the given role.
func (r *Repo) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	return r.list(ctx, selectUsers().Where(squirrel.Eq{"role": string(role)}).OrderBy("email ASC"))
}

// ListByAgency returns users of an agency.
func (r *Repo) ListByAgency(ctx context.Context, agencyID string) ([]domain.User, error) {
	return r.list(ctx, selectUsers().Where(squirrel.Eq{"agency_id": agencyID}).OrderBy("email ASC"))
}

// ListByAgencyAndRole returns users of an agency with the given role.
func (r *Repo) ListByAgencyAndRole(ctx context.Context, agencyID string, role domain.Role) ([]domain.User, error) {
	return r.list(ctx, selectUsers().
		Where(squirrel.Eq{"agency_id": agencyID, "role": string(role)}).
		OrderBy("email ASC"))
}

// Search matches query against email or agency id, case-insensitively.
func (r *Repo) Search(ctx context.Context, query string) ([]domain.User, error) {
	pattern := "%" + strings.TrimSpace(query) + "%"
	return r.list(ctx, selectUsers().
		Where(squirrel.Or{squirrel.ILike{"email": pattern}, squirrel.ILike{"agency_id": pattern}}).
		OrderBy("email ASC"))
}

// Count returns the number of users.
func (r *Repo) Count(ctx context.Context) (int64, error) {
	n, err := postgres.Count(ctx, r.q(ctx), postgres.Builder().Select("count(*)").From(table))
	if err != nil {
		return 0, postgres.MapError(err, "user", "count")
	}
	return n, nil
}

// CountByRole returns the number of users per role; every role is present.
func (r *Repo) CountByRole(ctx context.Context) (map[domain.Role]int64, error) {
	rows, err := postgres.Select[domain.CountItem](ctx, r.q(ctx), postgres.Builder().
		Select("role AS key", "count(*) AS count").From(table).GroupBy("role"))
	if err != nil {
		return nil, postgres.MapError(err, "user", "count")
	}
	out := map[domain.Role]int64{domain.RoleAdmin: 0, domain.RoleManager: 0, domain.RoleAgent: 0}
	for _, row := range rows {
		out[domain.Role(row.Key)] = row.Count
	}
	return out, nil
}

func (r *Repo) list(ctx context.Context, b squirrel.SelectBuilder) ([]domain.User, error) {
	rows, err := postgres.Select[userRow](ctx, r.q(ctx), b)
	if err != nil {
		return nil, postgres.MapError(err, "user", "list")
	}
	out := make([]domain.User, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a new user. The email is stored normalized.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	id := u.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	row, err := postgres.Get[userRow](ctx, r.q(ctx), postgres.Builder().
		Insert(table).
		Columns("id", "email", "password_hash", "role", "agency_id").
		Values(id, domain.NormalizeEmail(u.Email), u.PasswordHash, string(u.Role), u.AgencyID).
		Suffix("RETURNING "+strings.Join(columns, ", ")))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}
	out := row.toDomain()
	return &out, nil
}

// Upsert inserts a user or overwrites password, role and agency of the
// existing row with the same email.
func (r *Repo) Upsert(ctx context.Context, u *domain.User) (*domain.User, error) {
	id := u.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	row, err := postgres.Get[userRow](ctx, r.q(ctx), postgres.Builder().
		Insert(table).
		Columns("id", "email", "password_hash", "role", "agency_id").
		Values(id, domain.NormalizeEmail(u.Email), u.PasswordHash, string(u.Role), u.AgencyID).
		Suffix(`ON CONFLICT ((lower(email))) DO UPDATE SET
			password_hash = EXCLUDED.password_hash,
			role = EXCLUDED.role,
			agency_id = EXCLUDED.agency_id,
			updated_at = now()
			RETURNING `+strings.Join(columns, ", ")))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}
	out := row.toDomain()
	return &out, nil
}

// UpdateRole changes the role of a user.
func (r *Repo) UpdateRole(ctx context.Context, email string, role domain.Role) error {
	return r.update(ctx, email, "role", string(role))
}

// UpdateAgency changes the agency of a user. A nil agency clears it.
func (r *Repo) UpdateAgency(ctx context.Context, email string, agencyID *string) error {
	return r.update(ctx, email, "agency_id", agencyID)
}

// UpdatePassword replaces the password hash.
func (r *Repo) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	return r.update(ctx, email, "password_hash", passwordHash)
}

func (r *Repo) update(ctx context.Context, email, column string, value any) error {
	n, err := postgres.Exec(ctx, r.q(ctx), postgres.Builder().
		Update(table).
		Set(column, value).
		Set("updated_at", squirrel.Expr("now()")).
		Where(byEmail(email)))
	if err != nil {
		return postgres.MapError(err, "user", email)
	}
	if n == 0 {
		return domain.NewNotFound("User not found: %s", email)
	}
	return nil
}

// Delete removes a user by email.
func (r *Repo) Delete(ctx context.Context, email string) error {
	n, err := postgres.Exec(ctx, r.q(ctx), postgres.Builder().Delete(table).Where(byEmail(email)))
	if err != nil {
		return postgres.MapError(err, "user", email)
	}
	if n == 0 {
		return domain.NewNotFound("User not found: %s", email)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

type userRow struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	AgencyID     *string   `db:"agency_id"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r userRow) toDomain() domain.User {
	return domain.User{
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Role:         domain.Role(r.Role),
		AgencyID:     r.AgencyID,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
