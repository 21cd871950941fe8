// Package token implements refresh-token and one-time-code persistence using PostgreSQL.
package token

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/debt-recovery-backend/internal/adapter/postgres"
	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

// Repo provides token persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new token repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// ---------------------------------------------------------------------------
// Refresh tokens
// ---------------------------------------------------------------------------

// Create inserts a new refresh token.
func (r *Repo) Create(ctx context.Context, token *domain.RefreshToken) error {
	id := token.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	_, err := postgres.Exec(ctx, r.q(ctx), postgres.Builder().
		Insert("refresh_tokens").
		Columns("id", "user_id", "token_hash", "expires_at").
		Values(id, token.UserID, token.TokenHash, token.ExpiresAt))
	if err != nil {
		return postgres.MapError(err, "refresh_token", token.UserID)
	}
	return nil
}

// GetByHash returns an active (non-revoked, non-expired) refresh token by its hash.
// Returns domain.ErrNotFound if the token does not exist, is revoked, or is expired.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	row, err := postgres.Get[refreshRow](ctx, r.q(ctx), postgres.Builder().
		Select("id", "user_id", "token_hash", "expires_at", "created_at", "revoked_at").
		From("refresh_tokens").
		Where(squirrel.Eq{"token_hash": tokenHash, "revoked_at": nil}).
		Where("expires_at > now()"))
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", "hash")
	}
	t := domain.RefreshToken(row)
	return &t, nil
}

// RevokeByID revokes a specific refresh token. Revoking twice is not an error.
func (r *Repo) RevokeByID(ctx context.Context, id uuid.UUID) error {
	_, err := postgres.Exec(ctx, r.q(ctx), postgres.Builder().
		Update("refresh_tokens").
		Set("revoked_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "revoked_at": nil}))
	if err != nil {
		return postgres.MapError(err, "refresh_token", id)
	}
	return nil
}

// RevokeAllByUser revokes all active refresh tokens for the given user.
func (r *Repo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	_, err := postgres.Exec(ctx, r.q(ctx), postgres.Builder().
		Update("refresh_tokens").
		Set("revoked_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"user_id": userID, "revoked_at": nil}))
	if err != nil {
		return postgres.MapError(err, "refresh_token", userID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// One-time codes
// ---------------------------------------------------------------------------

// CreateOneTime stores a hashed signup or password-reset code.
func (r *Repo) CreateOneTime(ctx context.Context, t *domain.OneTimeToken) error {
	id := t.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	_, err := postgres.Exec(ctx, r.q(ctx), postgres.Builder().
		Insert("one_time_tokens").
		Columns("id", "email", "purpose", "token_hash", "expires_at").
		Values(id, t.Email, string(t.Purpose), t.TokenHash, t.ExpiresAt))
	if err != nil {
		return postgres.MapError(err, "one_time_token", t.Email)
	}
	return nil
}

// GetActiveOneTime returns an unconsumed, unexpired code for email and purpose.
func (r *Repo) GetActiveOneTime(ctx context.Context, email string, purpose domain.TokenPurpose, tokenHash string) (*domain.OneTimeToken, error) {
	row, err := postgres.Get[oneTimeRow](ctx, r.q(ctx), postgres.Builder().
		Select("id", "email", "purpose", "token_hash", "expires_at", "consumed_at", "created_at").
		From("one_time_tokens").
		Where(squirrel.Expr("lower(email) = lower(?)", email)).
		Where(squirrel.Eq{"purpose": string(purpose), "token_hash": tokenHash, "consumed_at": nil}).
		Where("expires_at > now()").
		OrderBy("created_at DESC").
		Limit(1))
	if err != nil {
		return nil, postgres.MapError(err, "one_time_token", email)
	}
	t := row.toDomain()
	return &t, nil
}

// ConsumeOneTime marks a code as used. Only the first caller succeeds; later
// callers get domain.ErrNotFound.
func (r *Repo) ConsumeOneTime(ctx context.Context, id uuid.UUID) error {
	n, err := postgres.Exec(ctx, r.q(ctx), postgres.Builder().
		Update("one_time_tokens").
		Set("consumed_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "consumed_at": nil}))
	if err != nil {
		return postgres.MapError(err, "one_time_token", id)
	}
	if n == 0 {
		return postgres.MapError(pgx.ErrNoRows, "one_time_token", id)
	}
	return nil
}

// DeleteExpired removes expired or revoked refresh tokens and expired or
// consumed one-time codes. Returns the total number of rows deleted.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	q := r.q(ctx)
	refresh, err := postgres.Exec(ctx, q, postgres.Builder().
		Delete("refresh_tokens").
		Where(squirrel.Or{squirrel.Expr("expires_at < now()"), squirrel.NotEq{"revoked_at": nil}}))
	if err != nil {
		return 0, postgres.MapError(err, "refresh_token", "expired")
	}
	oneTime, err := postgres.Exec(ctx, q, postgres.Builder().
		Delete("one_time_tokens").
		Where(squirrel.Or{squirrel.Expr("expires_at < now()"), squirrel.NotEq{"consumed_at": nil}}))
	if err != nil {
		return int(refresh), postgres.MapError(err, "one_time_token", "expired")
	}
	return int(refresh + oneTime), nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

type refreshRow struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	TokenHash string     `db:"token_hash"`
	ExpiresAt time.Time  `db:"expires_at"`
	CreatedAt time.Time  `db:"created_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}

type oneTimeRow struct {
	ID         uuid.UUID  `db:"id"`
	Email      string     `db:"email"`
	Purpose    string     `db:"purpose"`
	TokenHash  string     `db:"token_hash"`
	ExpiresAt  time.Time  `db:"expires_at"`
	ConsumedAt *time.Time `db:"consumed_at"`
	CreatedAt  time.Time  `db:"created_at"`
}

func (r oneTimeRow) toDomain() domain.OneTimeToken {
	return domain.OneTimeToken{
		ID:         r.ID,
		Email:      r.Email,
		Purpose:    domain.TokenPurpose(r.Purpose),
		TokenHash:  r.TokenHash,
		ExpiresAt:  r.ExpiresAt,
		ConsumedAt: r.ConsumedAt,
		CreatedAt:  r.CreatedAt,
	}
}
