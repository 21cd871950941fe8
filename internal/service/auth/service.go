package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/debt-recovery-backend/internal/config"
	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

// tokenRepo defines the refresh and one-time token storage needed by auth service.
type tokenRepo interface {
	Create(ctx context.Context, token *domain.RefreshToken) error
	GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeByID(ctx context.Context, id uuid.UUID) error
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) error
	CreateOneTime(ctx context.Context, token *domain.OneTimeToken) error
	GetActiveOneTime(ctx context.Context, email string, purpose domain.TokenPurpose, tokenHash string) (*domain.OneTimeToken, error)
	ConsumeOneTime(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context) (int, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// jwtManager defines the token primitives needed by auth service.
type jwtManager interface {
	GenerateAccessToken(actor domain.Actor) (string, error)
	ValidateAccessToken(token string) (domain.Actor, error)
	GenerateRefreshToken() (raw string, hash string, err error)
	GenerateOneTimeCode() (raw string, hash string, err error)
}

// notifier delivers signup and reset codes.
type notifier interface {
	Notify(ctx context.Context, msg domain.Notification) error
}

// auditLogger records security-relevant events.
type auditLogger interface {
	LogLogin(ctx context.Context, email string, success bool)
	LogLogout(ctx context.Context, email string)
	Record(ctx context.Context, userEmail, action, entityType, entityID, details string, success bool)
}

// Service implements auth operations.
type Service struct {
	log    *slog.Logger
	users  userRepo
	tokens tokenRepo
	tx     txManager
	jwt    jwtManager
	notify notifier
	audit  auditLogger
	cfg    config.AuthConfig
	now    func() time.Time
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tokens tokenRepo,
	tx txManager,
	jwt jwtManager,
	notify notifier,
	audit auditLogger,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		users:  users,
		tokens: tokens,
		tx:     tx,
		jwt:    jwt,
		notify: notify,
		audit:  audit,
		cfg:    cfg,
		now:    time.Now,
	}
}

// issueTokens generates access and refresh tokens for the given user, stores
// the refresh token hash in DB, and returns an AuthResult.
func (s *Service) issueTokens(ctx context.Context, user *domain.User) (*AuthResult, error) {
	accessToken, err := s.jwt.GenerateAccessToken(user.Actor())
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	rawRefresh, hashRefresh, err := s.jwt.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	refreshToken := &domain.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashRefresh,
		ExpiresAt: s.now().Add(s.cfg.RefreshTokenTTL),
	}
	if err := s.tokens.Create(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &AuthResult{
		AccessToken:  accessToken,
		RefreshToken: rawRefresh,
		User:         user,
	}, nil
}

// sendCode stores a hashed one-time code and delivers the raw code. Delivery
// failures are logged; the code stays redeemable.
func (s *Service) sendCode(ctx context.Context, email string, purpose domain.TokenPurpose, ttl time.Duration) error {
	raw, hash, err := s.jwt.GenerateOneTimeCode()
	if err != nil {
		return fmt.Errorf("generate code: %w", err)
	}

	token := &domain.OneTimeToken{
		Email:     email,
		Purpose:   purpose,
		TokenHash: hash,
		ExpiresAt: s.now().Add(ttl),
	}
	if err := s.tokens.CreateOneTime(ctx, token); err != nil {
		return fmt.Errorf("store code: %w", err)
	}

	msg := codeNotification(email, purpose, raw, ttl)
	msg.CreatedAt = s.now()
	if err := s.notify.Notify(ctx, msg); err != nil {
		s.log.WarnContext(ctx, "code delivery failed",
			slog.String("purpose", purpose.String()),
			slog.String("email", email),
			slog.String("error", err.Error()))
	}
	return nil
}

func codeNotification(email string, purpose domain.TokenPurpose, code string, ttl time.Duration) domain.Notification {
	if purpose == domain.PurposePasswordReset {
		return domain.Notification{
			Kind:      domain.NotifyPasswordReset,
			Recipient: email,
			Subject:   "Password Reset Code",
			Body:      fmt.Sprintf("Your password reset code is: %s\nIt expires in %s.", code, ttl),
			Data:      map[string]string{"code": code},
		}
	}
	return domain.Notification{
		Kind:      domain.NotifySignupCode,
		Recipient: email,
		Subject:   "Account Verification Code",
		Body:      fmt.Sprintf("Your verification code is: %s\nIt expires in %s.", code, ttl),
		Data:      map[string]string{"code": code},
	}
}
