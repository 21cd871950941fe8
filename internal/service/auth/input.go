package auth

import (
	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 8

const maxPasswordLength = 72

// LoginInput holds parameters for email + password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "Email is required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "Password is required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SignupInput holds parameters for account creation with a verification code.
type SignupInput struct {
	Email    string
	Password string
	Role     string
	AgencyID string
	Code     string
}

// Validate validates the signup input and returns the resolved role.
func (i SignupInput) Validate() (domain.Role, error) {
	var errs []domain.FieldError

	if !domain.ValidEmail(i.Email) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "Invalid email"})
	}
	errs = appendPasswordErrors(errs, "password", i.Password)
	if i.Code == "" {
		errs = append(errs, domain.FieldError{Field: "code", Message: "Verification code is required"})
	}

	role := domain.RoleAgent
	if i.Role != "" {
		parsed, err := domain.ParseRole(i.Role)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "role", Message: "Invalid role: " + i.Role})
		} else {
			role = parsed
		}
	}
	if role.RequiresAgency() && i.AgencyID == "" {
		errs = append(errs, domain.FieldError{Field: "agencyId", Message: "Agency is required for role " + role.String()})
	}

	if len(errs) > 0 {
		return "", domain.NewValidationErrors(errs)
	}
	return role, nil
}

// ResetPasswordInput holds parameters for redeeming a reset code.
type ResetPasswordInput struct {
	Email           string
	Code            string
	NewPassword     string
	ConfirmPassword string
}

// Validate validates the reset input.
func (i ResetPasswordInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "Email is required"})
	}
	if i.Code == "" {
		errs = append(errs, domain.FieldError{Field: "token", Message: "Reset code is required"})
	}
	if i.NewPassword != i.ConfirmPassword {
		errs = append(errs, domain.FieldError{Field: "confirmPassword", Message: "Passwords do not match"})
	} else {
		errs = appendPasswordErrors(errs, "newPassword", i.NewPassword)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ChangePasswordInput holds parameters for an authenticated password change.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// Validate validates the change input.
func (i ChangePasswordInput) Validate() error {
	var errs []domain.FieldError

	if i.CurrentPassword == "" {
		errs = append(errs, domain.FieldError{Field: "currentPassword", Message: "Current password is required"})
	}
	errs = appendPasswordErrors(errs, "newPassword", i.NewPassword)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.RefreshToken == "" {
		errs = append(errs, domain.FieldError{Field: "refreshToken", Message: "required"})
	} else if len(i.RefreshToken) > 512 {
		errs = append(errs, domain.FieldError{Field: "refreshToken", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func appendPasswordErrors(errs []domain.FieldError, field, password string) []domain.FieldError {
	switch {
	case len(password) < MinPasswordLength:
		return append(errs, domain.FieldError{Field: field, Message: "Password must be at least 8 characters"})
	case len(password) > maxPasswordLength:
		return append(errs, domain.FieldError{Field: field, Message: "Password must be at most 72 characters"})
	}
	return errs
}
