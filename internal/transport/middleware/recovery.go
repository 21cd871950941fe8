package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/debt-recovery-backend/pkg/ctxutil"
)

// Recovery turns a handler panic into a 500 JSON error and logs it with the
// stack, the request ID and the caller. http.ErrAbortHandler is re-raised so
// net/http can abort the connection.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				attrs := []any{
					slog.Any("panic", rec),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
					slog.String("stack", string(debug.Stack())),
				}
				if email, ok := ctxutil.UserEmailFromCtx(r.Context()); ok {
					attrs = append(attrs, slog.String("user", email))
				}
				logger.ErrorContext(r.Context(), "panic recovered", attrs...)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}()
			next.ServeHTTP(w, r)
		})
	}
}
