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

const verificationFailed = "Verification failed please try again"

// RequestSignupCode sends a verification code to an email that has no
// account yet.
func (s *Service) RequestSignupCode(ctx context.Context, email string) error {
	email = domain.NormalizeEmail(email)
	if !domain.ValidEmail(email) {
		return domain.NewValidationError("email", "Invalid email")
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("auth.RequestSignupCode check email: %w", err)
	}
	if exists {
		return domain.NewAlreadyExists("Email already exists")
	}

	if err := s.sendCode(ctx, email, domain.PurposeSignup, s.cfg.SignupCodeTTL); err != nil {
		return fmt.Errorf("auth.RequestSignupCode: %w", err)
	}

	s.log.InfoContext(ctx, "signup code issued", slog.String("email", email))
	return nil
}

// Signup redeems a verification code and creates the account. The role
// defaults to DCA_AGENT.
func (s *Service) Signup(ctx context.Context, input SignupInput) (*domain.User, error) {
	input.Email = domain.NormalizeEmail(input.Email)
	role, err := input.Validate()
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Signup hash password: %w", err)
	}

	var created *domain.User
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		exists, err := s.users.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return fmt.Errorf("check email: %w", err)
		}
		if exists {
			return domain.NewAlreadyExists("Email already exists")
		}

		if err := s.redeemCode(ctx, input.Email, domain.PurposeSignup, input.Code, verificationFailed); err != nil {
			return err
		}

		user := &domain.User{
			Email:        input.Email,
			PasswordHash: string(hash),
			Role:         role,
		}
		if role.RequiresAgency() {
			agency := input.AgencyID
			user.AgencyID = &agency
		}
		created, err = s.users.Create(ctx, user)
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, wrapUnlessDomain("auth.Signup", err)
	}

	s.audit.Record(ctx, created.Email, domain.AuditActionSignup, domain.EntityUser, created.Email,
		"Account created with role: "+created.Role.String(), true)
	s.log.InfoContext(ctx, "account created",
		slog.String("email", created.Email),
		slog.String("role", created.Role.String()))

	return created, nil
}

// redeemCode finds an active code and consumes it. A missing, expired or
// already consumed code is reported as a validation error with failMsg.
func (s *Service) redeemCode(ctx context.Context, email string, purpose domain.TokenPurpose, code, failMsg string) error {
	token, err := s.tokens.GetActiveOneTime(ctx, email, purpose, auth.HashToken(code))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("code", failMsg)
		}
		return fmt.Errorf("get code: %w", err)
	}
	if !token.IsUsable(s.now()) {
		return domain.NewValidationError("code", failMsg)
	}

	if err := s.tokens.ConsumeOneTime(ctx, token.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("code", failMsg)
		}
		return fmt.Errorf("consume code: %w", err)
	}
	return nil
}

// wrapUnlessDomain adds op context to infrastructure errors while leaving
// classified domain errors untouched for the transport layer.
func wrapUnlessDomain(op string, err error) error {
	for _, sentinel := range []error{
		domain.ErrValidation, domain.ErrNotFound, domain.ErrAlreadyExists,
		domain.ErrUnauthorized, domain.ErrForbidden, domain.ErrConflict,
	} {
		if errors.Is(err, sentinel) {
			return err
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
