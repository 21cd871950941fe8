package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"slices"
	"strings"

	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
	"github.com/heartmarshall/debt-recovery-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (domain.Actor, error)
}

// Auth resolves the bearer token into a principal stored in the context.
// Requests without a token pass through anonymously; an invalid token is
// rejected with 401.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			actor, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}
			ctx := ctxutil.WithUserEmail(r.Context(), actor.Email)
			ctx = ctxutil.WithRole(ctx, actor.Role.String())
			ctx = ctxutil.WithAgencyID(ctx, actor.AgencyID)
			annotateUser(ctx, actor.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects anonymous requests with 401.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserEmailFromCtx(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole rejects anonymous requests with 401 and principals whose role
// is not listed with 403.
func RequireRole(roles ...domain.Role) Middleware {
	allowed := make([]string, len(roles))
	for i, role := range roles {
		allowed[i] = role.String()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ctxutil.UserEmailFromCtx(r.Context()); !ok {
				writeError(w, http.StatusUnauthorized, "Authentication required")
				return
			}
			if !slices.Contains(allowed, ctxutil.RoleFromCtx(r.Context())) {
				writeError(w, http.StatusForbidden, "Access denied")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// writeError writes the same {"error","status"} body the REST handlers use.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"error": msg, "status": status})
}
