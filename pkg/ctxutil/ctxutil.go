package ctxutil

import (
	"context"
	"strings"
)

type ctxKey string

const (
	userEmailKey ctxKey = "user_email"
	roleKey      ctxKey = "role"
	agencyKey    ctxKey = "agency_id"
	requestIDKey ctxKey = "request_id"
	clientIPKey  ctxKey = "client_ip"
)

const adminRole = "FEDEX_ADMIN"

// WithUserEmail stores the authenticated user's email in the context.
func WithUserEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, userEmailKey, email)
}

// UserEmailFromCtx extracts the user email from the context.
// Returns "" and false if the value is missing, blank, or wrong type.
func UserEmailFromCtx(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(userEmailKey).(string)
	if !ok || strings.TrimSpace(email) == "" {
		return "", false
	}
	return email, true
}

// WithRole stores the authenticated user's role name in the context.
func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

// RoleFromCtx extracts the role name from the context.
func RoleFromCtx(ctx context.Context) string {
	role, _ := ctx.Value(roleKey).(string)
	return role
}

// IsAdminCtx reports whether the context carries the admin role.
func IsAdminCtx(ctx context.Context) bool {
	return RoleFromCtx(ctx) == adminRole
}

// WithAgencyID stores the authenticated user's agency in the context.
func WithAgencyID(ctx context.Context, agency string) context.Context {
	return context.WithValue(ctx, agencyKey, agency)
}

// AgencyIDFromCtx extracts the agency identifier, "" when absent.
func AgencyIDFromCtx(ctx context.Context) string {
	agency, _ := ctx.Value(agencyKey).(string)
	return agency
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithClientIP stores the caller's IP address in the context.
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey, ip)
}

// ClientIPFromCtx extracts the caller's IP address, "" when absent.
func ClientIPFromCtx(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey).(string)
	return ip
}
