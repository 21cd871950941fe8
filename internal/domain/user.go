package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is an account that can sign in.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         Role
	AgencyID     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AgencyOrEmpty returns the agency id or "".
func (u *User) AgencyOrEmpty() string {
	if u.AgencyID == nil {
		return ""
	}
	return *u.AgencyID
}

// Actor returns the principal for u.
func (u *User) Actor() Actor {
	return Actor{Email: u.Email, Role: u.Role, AgencyID: u.AgencyOrEmpty()}
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail performs the minimal shape check used at signup.
func ValidEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1 && !strings.ContainsAny(email, " \t\n")
}

// Actor is the authenticated principal performing an operation.
type Actor struct {
	Email    string
	Role     Role
	AgencyID string
}

func (a Actor) IsAdmin() bool   { return a.Role == RoleAdmin }
func (a Actor) IsManager() bool { return a.Role == RoleManager }
func (a Actor) IsAgent() bool   { return a.Role == RoleAgent }

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}

// OneTimeToken is a hashed signup or password-reset code.
type OneTimeToken struct {
	ID         uuid.UUID
	Email      string
	Purpose    TokenPurpose
	TokenHash  string
	ExpiresAt  time.Time
	ConsumedAt *time.Time
	CreatedAt  time.Time
}

// IsUsable reports whether the code can still be redeemed at now.
func (t *OneTimeToken) IsUsable(now time.Time) bool {
	return t.ConsumedAt == nil && t.ExpiresAt.After(now)
}

// FoldText lowercases s and collapses runs of whitespace, for
// case-insensitive substring matching.
func FoldText(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
