package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/debt-recovery-backend/internal/config"
)

// exposedHeaders are readable by browser clients. Content-Disposition
// carries the export file name.
const exposedHeaders = "X-Request-Id, X-RateLimit-Limit, X-RateLimit-Remaining, Retry-After, Content-Disposition"

// CORS answers preflight requests and decorates responses for allowed
// origins. The matching origin is echoed back, so "*" works together with
// credentials.
func CORS(cfg config.CORSConfig) Middleware {
	anyOrigin := false
	origins := make(map[string]struct{})
	for _, o := range strings.Split(cfg.AllowedOrigins, ",") {
		o = strings.TrimSpace(o)
		switch o {
		case "":
		case "*":
			anyOrigin = true
		default:
			origins[strings.TrimSuffix(o, "/")] = struct{}{}
		}
	}
	allowed := func(origin string) bool {
		if anyOrigin {
			return true
		}
		_, ok := origins[origin]
		return ok
	}
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Add("Vary", "Origin")
			preflight := r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != ""

			if !allowed(origin) {
				if preflight {
					writeError(w, http.StatusForbidden, "Invalid CORS request")
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			h.Set("Access-Control-Allow-Origin", origin)
			if cfg.AllowCredentials {
				h.Set("Access-Control-Allow-Credentials", "true")
			}

			if preflight {
				h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				h.Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			h.Set("Access-Control-Expose-Headers", exposedHeaders)
			next.ServeHTTP(w, r)
		})
	}
}
