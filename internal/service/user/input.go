package user

import (
	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

// UpdateRoleInput holds parameters for changing a user's role.
type UpdateRoleInput struct {
	Email string
	Role  string
}

// Validate validates the input and returns the parsed role.
func (i UpdateRoleInput) Validate() (domain.Role, error) {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "Email is required"})
	}
	role, err := domain.ParseRole(i.Role)
	if err != nil {
		errs = append(errs, domain.FieldError{Field: "role", Message: "Invalid role: " + i.Role})
	}

	if len(errs) > 0 {
		return "", domain.NewValidationErrors(errs)
	}
	return role, nil
}

// UpdateAgencyInput holds parameters for moving a user to another agency.
type UpdateAgencyInput struct {
	Email    string
	AgencyID string
}

// Validate validates the input.
func (i UpdateAgencyInput) Validate() error {
	if i.Email == "" {
		return domain.NewValidationError("email", "Email is required")
	}
	return nil
}
