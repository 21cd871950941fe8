package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/debt-recovery-backend/pkg/ctxutil"
)

// RequestIDHeader is the header carrying the request correlation id.
const RequestIDHeader = "X-Request-Id"

// RequestID propagates or generates the request id and records the client IP.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}
			ctx := ctxutil.WithRequestID(r.Context(), id)
			ctx = ctxutil.WithClientIP(ctx, ClientIP(r))
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClientIP returns the first X-Forwarded-For entry, falling back to the
// host part of RemoteAddr.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
