package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/debt-recovery-backend/internal/config"
	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
	"github.com/heartmarshall/debt-recovery-backend/pkg/ctxutil"
)

const truncatedMarker = "... [TRUNCATED]"

// maxCapturedBody bounds how much of a request or response body is buffered
// for the action log, independent of the stored cap.
const maxCapturedBody = 64 << 10

var sensitiveRequest = regexp.MustCompile(`(?i)login|passwordreset|resetpassword|changepassword|signup`)

type actionRecorder interface {
	Record(ctx context.Context, entry *domain.ActionLogEntry) error
}

// RouteMeta describes how a route is reported in the action log.
type RouteMeta struct {
	// Handler is "Type.Method", used to derive Action and Module when they
	// are empty.
	Handler       string
	Action        string
	Module        string
	Description   string
	EntityType    string
	EntityIDParam string
	// RequestType names the request payload; sensitive types have their
	// body masked.
	RequestType string
	LogRequest  bool
	LogResponse bool
}

// ActionTracker records one ActionLogEntry per tracked request.
type ActionTracker struct {
	recorder   actionRecorder
	log        *slog.Logger
	enabled    bool
	maxPayload int
	maxError   int
}

// NewActionTracker creates an ActionTracker persisting through recorder.
func NewActionTracker(recorder actionRecorder, logger *slog.Logger, cfg config.TrackingConfig) *ActionTracker {
	return &ActionTracker{
		recorder:   recorder,
		log:        logger.With("middleware", "action_tracker"),
		enabled:    cfg.Enabled,
		maxPayload: cfg.MaxPayloadChars,
		maxError:   cfg.MaxErrorChars,
	}
}

// Route returns middleware tracking a single route described by meta.
func (t *ActionTracker) Route(meta RouteMeta) Middleware {
	meta = meta.resolved()
	return func(next http.Handler) http.Handler {
		if !t.enabled {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			entry := &domain.ActionLogEntry{
				Action:      meta.Action,
				Module:      meta.Module,
				Description: meta.Description,
				EntityType:  meta.EntityType,
				PerformedBy: performer(r.Context()),
				IPAddress:   ClientIP(r),
				UserAgent:   r.UserAgent(),
				Timestamp:   start,
				HTTPMethod:  r.Method,
				Endpoint:    r.URL.Path,
			}
			if meta.LogRequest {
				entry.RequestData = Truncate(captureRequest(r, meta.RequestType), t.maxPayload)
			}

			cw := &captureWriter{ResponseWriter: w, status: http.StatusOK}
			defer func() {
				p := recover()
				entry.DurationMs = time.Since(start).Milliseconds()
				entry.EntityID = entityID(r, meta.EntityIDParam)

				switch {
				case p != nil:
					entry.Success = false
					entry.ErrorMessage = Truncate(fmt.Sprint(p), t.maxError)
				case cw.status >= http.StatusBadRequest:
					entry.Success = false
					entry.ErrorMessage = Truncate(errorMessage(cw.status, cw.body.Bytes()), t.maxError)
				default:
					entry.Success = true
				}
				if meta.LogResponse && p == nil {
					entry.ResponseData = Truncate(cw.body.String(), t.maxPayload)
				}

				t.persist(r.Context(), entry)

				if p != nil {
					panic(p)
				}
			}()

			next.ServeHTTP(cw, r)
		})
	}
}

func (t *ActionTracker) persist(ctx context.Context, entry *domain.ActionLogEntry) {
	if err := t.recorder.Record(context.WithoutCancel(ctx), entry); err != nil {
		t.log.WarnContext(ctx, "action log not persisted",
			slog.String("action", entry.Action),
			slog.String("endpoint", entry.Endpoint),
			slog.String("error", err.Error()),
		)
	}
}

// Truncate caps s at limit characters, appending a truncation marker.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + truncatedMarker
}

// ActionName converts a camelCase method name to UPPER_SNAKE_CASE.
func ActionName(method string) string {
	var b strings.Builder
	for i, r := range method {
		if unicode.IsUpper(r) && i > 0 {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// ModuleName strips the Handler or Controller suffix from a type name.
func ModuleName(typeName string) string {
	typeName = strings.TrimSuffix(typeName, "Handler")
	return strings.TrimSuffix(typeName, "Controller")
}

func (m RouteMeta) resolved() RouteMeta {
	typeName, method, ok := strings.Cut(m.Handler, ".")
	if !ok {
		method, typeName = m.Handler, ""
	}
	if m.Action == "" {
		m.Action = ActionName(method)
	}
	if m.Module == "" {
		m.Module = ModuleName(typeName)
	}
	if m.Description == "" && method != "" {
		m.Description = method + " called"
	}
	return m
}

func performer(ctx context.Context) string {
	if email, ok := ctxutil.UserEmailFromCtx(ctx); ok {
		return email
	}
	return domain.AnonymousActor
}

func entityID(r *http.Request, param string) string {
	if param == "" {
		return ""
	}
	if v := chi.URLParam(r, param); v != "" {
		return v
	}
	return r.URL.Query().Get(param)
}

type capturedRequest struct {
	Path  map[string]string `json:"path,omitempty"`
	Query map[string]string `json:"query,omitempty"`
	Body  json.RawMessage   `json:"body,omitempty"`
}

var maskedBody = json.RawMessage(`{"***":"***"}`)

// captureRequest serializes path params, query and a JSON body. The body is
// restored so the handler can still read it.
func captureRequest(r *http.Request, requestType string) string {
	var c capturedRequest

	if rctx := chi.RouteContext(r.Context()); rctx != nil && len(rctx.URLParams.Keys) > 0 {
		c.Path = make(map[string]string, len(rctx.URLParams.Keys))
		for i, k := range rctx.URLParams.Keys {
			if k == "*" {
				continue
			}
			c.Path[k] = rctx.URLParams.Values[i]
		}
	}

	if q := r.URL.Query(); len(q) > 0 {
		c.Query = make(map[string]string, len(q))
		for k := range q {
			c.Query[k] = q.Get(k)
		}
	}

	if r.Body != nil && isJSON(r.Header.Get("Content-Type")) {
		data, err := io.ReadAll(io.LimitReader(r.Body, maxCapturedBody))
		if err == nil {
			r.Body = io.NopCloser(io.MultiReader(bytes.NewReader(data), r.Body))
			switch {
			case len(bytes.TrimSpace(data)) == 0:
			case sensitiveRequest.MatchString(requestType):
				c.Body = maskedBody
			case json.Valid(data):
				c.Body = json.RawMessage(data)
			default:
				quoted, _ := json.Marshal(string(data))
				c.Body = quoted
			}
		}
	} else if sensitiveRequest.MatchString(requestType) && r.ContentLength != 0 {
		c.Body = maskedBody
	}

	out, err := json.Marshal(c)
	if err != nil {
		return "Unable to serialize request data"
	}
	return string(out)
}

func isJSON(contentType string) bool {
	if contentType == "" {
		return true
	}
	mt, _, err := mime.ParseMediaType(contentType)
	return err == nil && (mt == "application/json" || strings.HasSuffix(mt, "+json"))
}

// errorMessage prefers the "error" field of a JSON error body.
func errorMessage(status int, body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.Error != "" {
		return payload.Error
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return http.StatusText(status)
}

// captureWriter records the status and a bounded copy of the response body.
type captureWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	body        bytes.Buffer
}

func (w *captureWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *captureWriter) Write(p []byte) (int, error) {
	w.wroteHeader = true
	if room := maxCapturedBody - w.body.Len(); room > 0 {
		if len(p) > room {
			w.body.Write(p[:room])
		} else {
			w.body.Write(p)
		}
	}
	return w.ResponseWriter.Write(p)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *captureWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
