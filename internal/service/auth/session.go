package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/debt-recovery-backend/internal/auth"
	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

// Refresh performs token rotation and returns new access/refresh tokens.
// If the refresh token is not found (revoked or reused), logs a warning and returns ErrUnauthorized.
// If the token is expired or the user is deleted, returns ErrUnauthorized.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	token, err := s.tokens.GetByHash(ctx, auth.HashToken(input.RefreshToken))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh token reuse attempted")
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get token: %w", err)
	}

	if token.IsExpired(s.now()) {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get user: %w", err)
	}

	if err := s.tokens.RevokeByID(ctx, token.ID); err != nil {
		return nil, fmt.Errorf("auth.Refresh revoke old token: %w", err)
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh issue tokens: %w", err)
	}
	return result, nil
}

// Logout revokes every refresh token of the actor. Access tokens stay valid
// until they expire.
func (s *Service) Logout(ctx context.Context, actor domain.Actor) error {
	user, err := s.users.GetByEmail(ctx, actor.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrUnauthorized
		}
		return fmt.Errorf("auth.Logout get user: %w", err)
	}

	if err := s.tokens.RevokeAllByUser(ctx, user.ID); err != nil {
		return fmt.Errorf("auth.Logout revoke tokens: %w", err)
	}

	s.audit.LogLogout(ctx, user.Email)
	s.log.InfoContext(ctx, "user logged out", slog.String("email", user.Email))
	return nil
}

// ValidateToken validates an access token and returns its principal.
func (s *Service) ValidateToken(_ context.Context, token string) (domain.Actor, error) {
	actor, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return domain.Actor{}, domain.ErrUnauthorized
	}
	return actor, nil
}

// Me returns the account of the actor.
func (s *Service) Me(ctx context.Context, actor domain.Actor) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, actor.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFound("User not found")
		}
		return nil, fmt.Errorf("auth.Me: %w", err)
	}
	return user, nil
}

// CleanupExpiredTokens deletes expired refresh tokens and one-time codes.
func (s *Service) CleanupExpiredTokens(ctx context.Context) (int, error) {
	n, err := s.tokens.DeleteExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("auth.CleanupExpiredTokens: %w", err)
	}
	s.log.InfoContext(ctx, "expired tokens deleted", slog.Int("count", n))
	return n, nil
}
