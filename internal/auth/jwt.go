package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

// JWTManager handles JWT access token generation and validation,
// plus refresh token and one-time code generation and hashing.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
	}
}

// accessClaims extends standard JWT claims with the user's role and agency.
type accessClaims struct {
	jwt.RegisteredClaims
	Role   string `json:"role"`
	Agency string `json:"agency,omitempty"`
}

// GenerateAccessToken creates a signed HS256 JWT with the email as subject
// and role as a custom claim.
func (m *JWTManager) GenerateAccessToken(actor domain.Actor) (string, error) {
	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.Email,
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role:   actor.Role.String(),
		Agency: actor.AgencyID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateAccessToken parses and validates a JWT access token and returns
// the principal it was issued to.
func (m *JWTManager) ValidateAccessToken(tokenString string) (domain.Actor, error) {
	if tokenString == "" {
		return domain.Actor{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return domain.Actor{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return domain.Actor{}, fmt.Errorf("invalid token claims")
	}

	if claims.Issuer != m.issuer {
		return domain.Actor{}, fmt.Errorf("invalid issuer: expected %s, got %s", m.issuer, claims.Issuer)
	}

	if claims.Subject == "" {
		return domain.Actor{}, fmt.Errorf("token has no subject")
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("invalid role claim: %w", err)
	}

	return domain.Actor{Email: claims.Subject, Role: role, AgencyID: claims.Agency}, nil
}

// GenerateRefreshToken creates a cryptographically random refresh token.
// Returns both the raw token (to send to client) and its SHA-256 hash (to store in DB).
func (m *JWTManager) GenerateRefreshToken() (raw string, hash string, err error) {
	return randomToken(32)
}

// GenerateOneTimeCode creates a short random URL-safe code used for signup
// and password reset. Only the hash is persisted.
func (m *JWTManager) GenerateOneTimeCode() (raw string, hash string, err error) {
	return randomToken(12)
}

func randomToken(n int) (string, string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", "", fmt.Errorf("generate random bytes: %w", err)
	}
	raw := base64.RawURLEncoding.EncodeToString(b)
	return raw, HashToken(raw), nil
}

// HashToken computes the SHA-256 hash of a token and returns it as a hex string.
func HashToken(raw string) string {
	h := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(h[:])
}
