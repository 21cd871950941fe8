package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/debt-recovery-backend/internal/auth"
	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

const invalidResetCode = "Invalid or expired reset code"

// ForgotPassword sends a reset code to an existing account.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	email = domain.NormalizeEmail(email)
	if email == "" {
		return domain.NewValidationError("email", "Email is required")
	}

	if _, err := s.users.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewNotFound("Email not found")
		}
		return fmt.Errorf("auth.ForgotPassword get user: %w", err)
	}

	if err := s.sendCode(ctx, email, domain.PurposePasswordReset, s.cfg.ResetCodeTTL); err != nil {
		return fmt.Errorf("auth.ForgotPassword: %w", err)
	}

	s.log.InfoContext(ctx, "password reset code issued", slog.String("email", email))
	return nil
}

// ValidateResetCode reports whether code is an active reset code for email.
func (s *Service) ValidateResetCode(ctx context.Context, email, code string) (bool, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || code == "" {
		return false, nil
	}

	token, err := s.tokens.GetActiveOneTime(ctx, email, domain.PurposePasswordReset, auth.HashToken(code))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("auth.ValidateResetCode: %w", err)
	}
	return token.IsUsable(s.now()), nil
}

// ResetPassword redeems a reset code, sets the new password and revokes all
// refresh tokens of the account.
func (s *Service) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	input.Email = domain.NormalizeEmail(input.Email)
	if err := input.Validate(); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), s.cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("auth.ResetPassword hash password: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.redeemCode(ctx, input.Email, domain.PurposePasswordReset, input.Code, invalidResetCode); err != nil {
			return err
		}

		user, err := s.users.GetByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewNotFound("User not found")
			}
			return fmt.Errorf("get user: %w", err)
		}

		if err := s.users.UpdatePassword(ctx, user.Email, string(hash)); err != nil {
			return fmt.Errorf("update password: %w", err)
		}
		if err := s.tokens.RevokeAllByUser(ctx, user.ID); err != nil {
			return fmt.Errorf("revoke tokens: %w", err)
		}
		return nil
	})
	if err != nil {
		return wrapUnlessDomain("auth.ResetPassword", err)
	}

	s.audit.Record(ctx, input.Email, domain.AuditActionPassword, domain.EntityUser, input.Email,
		"Password reset with emailed code", true)
	s.log.InfoContext(ctx, "password reset", slog.String("email", input.Email))
	return nil
}

// ChangePassword replaces the password of the authenticated user after
// verifying the current one.
func (s *Service) ChangePassword(ctx context.Context, actor domain.Actor, input ChangePasswordInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	user, err := s.users.GetByEmail(ctx, actor.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewNotFound("User not found")
		}
		return fmt.Errorf("auth.ChangePassword get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)); err != nil {
		s.audit.Record(ctx, user.Email, domain.AuditActionPassword, domain.EntityUser, user.Email,
			"Current password rejected", false)
		return domain.NewUnauthorized("Current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), s.cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("auth.ChangePassword hash password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, user.Email, string(hash)); err != nil {
		return fmt.Errorf("auth.ChangePassword update: %w", err)
	}

	s.audit.Record(ctx, user.Email, domain.AuditActionPassword, domain.EntityUser, user.Email,
		"Password changed", true)
	return nil
}
