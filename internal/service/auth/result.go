package auth

import "github.com/heartmarshall/debt-recovery-backend/internal/domain"

// AuthResult is returned by Login and Refresh.
type AuthResult struct {
	AccessToken  string
	RefreshToken string
	User         *domain.User
}
