package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
	"github.com/heartmarshall/debt-recovery-backend/internal/service/auth"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	RequestSignupCode(ctx context.Context, email string) error
	Signup(ctx context.Context, input auth.SignupInput) (*domain.User, error)
	ForgotPassword(ctx context.Context, email string) error
	ValidateResetCode(ctx context.Context, email, code string) (bool, error)
	ResetPassword(ctx context.Context, input auth.ResetPasswordInput) error
	ChangePassword(ctx context.Context, actor domain.Actor, input auth.ChangePasswordInput) error
	Refresh(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error)
	Logout(ctx context.Context, actor domain.Actor) error
	ValidateToken(ctx context.Context, token string) (domain.Actor, error)
	Me(ctx context.Context, actor domain.Actor) (*domain.User, error)
}

// AuthHandler serves auth REST endpoints.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type emailRequest struct {
	Email string `json:"email"`
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	AgencyID string `json:"agencyId"`
	Code     string `json:"code"`
}

type resetPasswordRequest struct {
	Email           string `json:"email"`
	Code            string `json:"code"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

type validateResetRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type authResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	Email        string `json:"email"`
	Role         string `json:"role"`
}

type validateResponse struct {
	Valid bool   `json:"valid"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// Login handles POST /api/auth/login and the legacy POST /login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.Login(r.Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

// RequestSignupCode handles POST /api/auth/signup/code.
func (h *AuthHandler) RequestSignupCode(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.svc.RequestSignupCode(r.Context(), req.Email); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeMessage(w, "Verification code sent to your email")
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	user, err := h.svc.Signup(r.Context(), auth.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		AgencyID: req.AgencyID,
		Code:     req.Code,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUser(user))
}

// ForgotPassword handles POST /api/auth/forgot-password.
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.svc.ForgotPassword(r.Context(), req.Email); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeMessage(w, "Password reset code sent to your email")
}

// ValidateResetToken handles POST /api/auth/validate-reset-token.
func (h *AuthHandler) ValidateResetToken(w http.ResponseWriter, r *http.Request) {
	var req validateResetRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	valid, err := h.svc.ValidateResetCode(r.Context(), req.Email, req.Code)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, validateResponse{Valid: valid})
}

// ResetPassword handles POST /api/auth/reset-password.
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	err := h.svc.ResetPassword(r.Context(), auth.ResetPasswordInput{
		Email:           req.Email,
		Code:            req.Code,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeMessage(w, "Password has been reset successfully")
}

// ChangePassword handles POST /api/auth/change-password.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	err := h.svc.ChangePassword(r.Context(), actorFrom(r), auth.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeMessage(w, "Password changed successfully")
}

// Refresh handles POST /api/auth/refresh.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	result, err := h.svc.Refresh(r.Context(), auth.RefreshInput{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAuthResponse(result))
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Logout(r.Context(), actorFrom(r)); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeMessage(w, "Logged out successfully")
}

// Validate handles POST /api/auth/validate. An invalid token is reported in
// the body, not as an error status.
func (h *AuthHandler) Validate(w http.ResponseWriter, r *http.Request) {
	token := extractBearer(r)
	if token == "" {
		writeJSON(w, http.StatusOK, validateResponse{Valid: false})
		return
	}
	actor, err := h.svc.ValidateToken(r.Context(), token)
	if err != nil {
		writeJSON(w, http.StatusOK, validateResponse{Valid: false})
		return
	}
	writeJSON(w, http.StatusOK, validateResponse{Valid: true, Email: actor.Email, Role: actor.Role.String()})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.Me(r.Context(), actorFrom(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUser(user))
}

// Health handles GET /api/auth/health.
func (h *AuthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "UP", "service": "auth"})
}

func extractBearer(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func toAuthResponse(result *auth.AuthResult) authResponse {
	return authResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		Email:        result.User.Email,
		Role:         result.User.Role.String(),
	}
}
