package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

// Login authenticates a user with email + password. An unknown email yields
// a not-found error and a wrong password ErrUnauthorized; both outcomes are
// audited.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Email = domain.NormalizeEmail(input.Email)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.audit.LogLogin(ctx, input.Email, false)
			return nil, domain.NewNotFound("User not found")
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		s.audit.LogLogin(ctx, user.Email, false)
		return nil, domain.NewUnauthorized("Invalid credentials")
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue tokens: %w", err)
	}

	s.audit.LogLogin(ctx, user.Email, true)
	s.log.InfoContext(ctx, "user logged in",
		slog.String("email", user.Email),
		slog.String("role", user.Role.String()))

	return result, nil
}
