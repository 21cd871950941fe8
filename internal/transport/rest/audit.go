package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
	"github.com/heartmarshall/debt-recovery-backend/internal/service/audit"
)

type auditQueries interface {
	MyActivity(ctx context.Context, actor domain.Actor) ([]domain.AuditLogEntry, error)
	UserActivity(ctx context.Context, actor domain.Actor, email string) ([]domain.AuditLogEntry, error)
	EntityHistory(ctx context.Context, actor domain.Actor, entityType, entityID string) ([]domain.AuditLogEntry, error)
	Between(ctx context.Context, actor domain.Actor, from, to time.Time, page domain.PageRequest) (domain.Page[domain.AuditLogEntry], error)
	Recent(ctx context.Context, actor domain.Actor, email string, hours int) ([]domain.AuditLogEntry, error)
	Stats(ctx context.Context, actor domain.Actor, hours int) (*audit.Stats, error)
	All(ctx context.Context, actor domain.Actor, page domain.PageRequest) (domain.Page[domain.AuditLogEntry], error)
}

// AuditHandler serves /api/audit.
type AuditHandler struct {
	audit auditQueries
	log   *slog.Logger
}

// NewAuditHandler creates an AuditHandler.
func NewAuditHandler(svc auditQueries, logger *slog.Logger) *AuditHandler {
	return &AuditHandler{audit: svc, log: logger.With("handler", "audit")}
}

type auditStatsResponse struct {
	PeriodHours      int             `json:"periodHours"`
	ActionCounts     []countResponse `json:"actionCounts"`
	EntityTypeCounts []countResponse `json:"entityTypeCounts"`
}

// MyActivity handles GET /api/audit/my-activity.
func (h *AuditHandler) MyActivity(w http.ResponseWriter, r *http.Request) {
	entries, err := h.audit.MyActivity(r.Context(), actorFrom(r))
	h.list(w, r, entries, err)
}

// UserActivity handles GET /api/audit/user/{email}. With ?hours= only the
// recent window is returned.
func (h *AuditHandler) UserActivity(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if r.URL.Query().Has("hours") {
		hours, err := queryInt(r, "hours", defaultWindowHours)
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		entries, err := h.audit.Recent(r.Context(), actorFrom(r), email, hours)
		h.list(w, r, entries, err)
		return
	}
	entries, err := h.audit.UserActivity(r.Context(), actorFrom(r), email)
	h.list(w, r, entries, err)
}

// EntityHistory handles GET /api/audit/entity/{type}/{id}.
func (h *AuditHandler) EntityHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.audit.EntityHistory(r.Context(), actorFrom(r), chi.URLParam(r, "type"), chi.URLParam(r, "id"))
	h.list(w, r, entries, err)
}

// Between handles GET /api/audit/range?start=&end=.
func (h *AuditHandler) Between(w http.ResponseWriter, r *http.Request) {
	from, err := requiredTime(r, "start")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	to, err := requiredTime(r, "end")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	h.page(w, r, func(page domain.PageRequest) (domain.Page[domain.AuditLogEntry], error) {
		return h.audit.Between(r.Context(), actorFrom(r), from, to, page)
	})
}

// Stats handles GET /api/audit/stats?hours=.
func (h *AuditHandler) Stats(w http.ResponseWriter, r *http.Request) {
	hours, err := queryInt(r, "hours", defaultWindowHours)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	st, err := h.audit.Stats(r.Context(), actorFrom(r), hours)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, auditStatsResponse{
		PeriodHours:      st.PeriodHours,
		ActionCounts:     toCounts(st.ActionCounts),
		EntityTypeCounts: toCounts(st.EntityTypeCounts),
	})
}

// All handles GET /api/audit/all.
func (h *AuditHandler) All(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, func(page domain.PageRequest) (domain.Page[domain.AuditLogEntry], error) {
		return h.audit.All(r.Context(), actorFrom(r), page)
	})
}

func (h *AuditHandler) list(w http.ResponseWriter, r *http.Request, entries []domain.AuditLogEntry, err error) {
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAuditLogs(entries))
}

func (h *AuditHandler) page(w http.ResponseWriter, r *http.Request, fetch func(domain.PageRequest) (domain.Page[domain.AuditLogEntry], error)) {
	req, err := pageRequest(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	p, err := fetch(req)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPage(p, toAuditLogs))
}
