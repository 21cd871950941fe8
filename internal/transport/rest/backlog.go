package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
	"github.com/heartmarshall/debt-recovery-backend/internal/service/actionlog"
)

const defaultWindowHours = 24

type backlogService interface {
	All(ctx context.Context, actor domain.Actor, page domain.PageRequest) (domain.Page[domain.ActionLogEntry], error)
	Get(ctx context.Context, actor domain.Actor, id string) (*domain.ActionLogEntry, error)
	ByUser(ctx context.Context, actor domain.Actor, email string) ([]domain.ActionLogEntry, error)
	RecentByUser(ctx context.Context, actor domain.Actor, email string, hours int) ([]domain.ActionLogEntry, error)
	ByModule(ctx context.Context, actor domain.Actor, module string) ([]domain.ActionLogEntry, error)
	ByAction(ctx context.Context, actor domain.Actor, action string) ([]domain.ActionLogEntry, error)
	ByEntity(ctx context.Context, actor domain.Actor, entityType, entityID string) ([]domain.ActionLogEntry, error)
	Between(ctx context.Context, actor domain.Actor, from, to time.Time, page domain.PageRequest) (domain.Page[domain.ActionLogEntry], error)
	Failed(ctx context.Context, actor domain.Actor, page domain.PageRequest) (domain.Page[domain.ActionLogEntry], error)
	Search(ctx context.Context, actor domain.Actor, f domain.ActionLogFilter, page domain.PageRequest) (domain.Page[domain.ActionLogEntry], error)
	Summary(ctx context.Context, actor domain.Actor, hours int) (*actionlog.Summary, error)
	ModuleStats(ctx context.Context, actor domain.Actor, hours int) ([]domain.CountItem, error)
	ActionStats(ctx context.Context, actor domain.Actor, hours int) ([]domain.CountItem, error)
	Create(ctx context.Context, actor domain.Actor, input actionlog.CreateInput) (*domain.ActionLogEntry, error)
}

// BacklogHandler serves /backlog, the query API over tracked actions.
type BacklogHandler struct {
	backlog backlogService
	log     *slog.Logger
}

// NewBacklogHandler creates a BacklogHandler.
func NewBacklogHandler(backlog backlogService, logger *slog.Logger) *BacklogHandler {
	return &BacklogHandler{backlog: backlog, log: logger.With("handler", "backlog")}
}

type createBacklogRequest struct {
	Action      string `json:"action"`
	Module      string `json:"module"`
	Description string `json:"description"`
	PerformedBy string `json:"performedBy"`
	IPAddress   string `json:"ipAddress"`
	Success     *bool  `json:"success"`
}

type backlogSummaryResponse struct {
	PeriodHours     int             `json:"periodHours"`
	TotalActivities int64           `json:"totalActivities"`
	FailedCount     int64           `json:"failedCount"`
	ModuleStats     []countResponse `json:"moduleStats"`
	ActionStats     []countResponse `json:"actionStats"`
}

// All handles GET /backlog.
func (h *BacklogHandler) All(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, func(page domain.PageRequest) (domain.Page[domain.ActionLogEntry], error) {
		return h.backlog.All(r.Context(), actorFrom(r), page)
	})
}

// Get handles GET /backlog/{id}.
func (h *BacklogHandler) Get(w http.ResponseWriter, r *http.Request) {
	e, err := h.backlog.Get(r.Context(), actorFrom(r), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toActionLogs([]domain.ActionLogEntry{*e})[0])
}

// ByUser handles GET /backlog/user/{email}.
func (h *BacklogHandler) ByUser(w http.ResponseWriter, r *http.Request) {
	entries, err := h.backlog.ByUser(r.Context(), actorFrom(r), chi.URLParam(r, "email"))
	h.list(w, r, entries, err)
}

// RecentByUser handles GET /backlog/user/{email}/recent?hours=.
func (h *BacklogHandler) RecentByUser(w http.ResponseWriter, r *http.Request) {
	hours, err := queryInt(r, "hours", defaultWindowHours)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	entries, err := h.backlog.RecentByUser(r.Context(), actorFrom(r), chi.URLParam(r, "email"), hours)
	h.list(w, r, entries, err)
}

// ByModule handles GET /backlog/module/{module}.
func (h *BacklogHandler) ByModule(w http.ResponseWriter, r *http.Request) {
	entries, err := h.backlog.ByModule(r.Context(), actorFrom(r), chi.URLParam(r, "module"))
	h.list(w, r, entries, err)
}

// ByAction handles GET /backlog/action/{action}.
func (h *BacklogHandler) ByAction(w http.ResponseWriter, r *http.Request) {
	entries, err := h.backlog.ByAction(r.Context(), actorFrom(r), chi.URLParam(r, "action"))
	h.list(w, r, entries, err)
}

// ByEntity handles GET /backlog/entity/{entityType}/{entityId}.
func (h *BacklogHandler) ByEntity(w http.ResponseWriter, r *http.Request) {
	entries, err := h.backlog.ByEntity(r.Context(), actorFrom(r),
		chi.URLParam(r, "entityType"), chi.URLParam(r, "entityId"))
	h.list(w, r, entries, err)
}

// Between handles GET /backlog/range?start=&end=.
func (h *BacklogHandler) Between(w http.ResponseWriter, r *http.Request) {
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
	h.page(w, r, func(page domain.PageRequest) (domain.Page[domain.ActionLogEntry], error) {
		return h.backlog.Between(r.Context(), actorFrom(r), from, to, page)
	})
}

// Failed handles GET /backlog/failed.
func (h *BacklogHandler) Failed(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, func(page domain.PageRequest) (domain.Page[domain.ActionLogEntry], error) {
		return h.backlog.Failed(r.Context(), actorFrom(r), page)
	})
}

// Search handles GET /backlog/search.
func (h *BacklogHandler) Search(w http.ResponseWriter, r *http.Request) {
	f, err := actionFilterFromQuery(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	h.page(w, r, func(page domain.PageRequest) (domain.Page[domain.ActionLogEntry], error) {
		return h.backlog.Search(r.Context(), actorFrom(r), f, page)
	})
}

// Summary handles GET /backlog/summary?hours=.
func (h *BacklogHandler) Summary(w http.ResponseWriter, r *http.Request) {
	hours, err := queryInt(r, "hours", defaultWindowHours)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	sum, err := h.backlog.Summary(r.Context(), actorFrom(r), hours)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, backlogSummaryResponse{
		PeriodHours:     sum.PeriodHours,
		TotalActivities: sum.TotalActivities,
		FailedCount:     sum.FailedCount,
		ModuleStats:     toCounts(sum.ModuleStats),
		ActionStats:     toCounts(sum.ActionStats),
	})
}

// ModuleStats handles GET /backlog/stats/module?hours=.
func (h *BacklogHandler) ModuleStats(w http.ResponseWriter, r *http.Request) {
	h.counts(w, r, h.backlog.ModuleStats)
}

// ActionStats handles GET /backlog/stats/action?hours=.
func (h *BacklogHandler) ActionStats(w http.ResponseWriter, r *http.Request) {
	h.counts(w, r, h.backlog.ActionStats)
}

// Create handles POST /backlog.
func (h *BacklogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBacklogRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	in := actionlog.CreateInput{
		Action:      req.Action,
		Module:      req.Module,
		Description: req.Description,
		PerformedBy: req.PerformedBy,
		IPAddress:   req.IPAddress,
		Success:     req.Success == nil || *req.Success,
	}
	e, err := h.backlog.Create(r.Context(), actorFrom(r), in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toActionLogs([]domain.ActionLogEntry{*e})[0])
}

func (h *BacklogHandler) list(w http.ResponseWriter, r *http.Request, entries []domain.ActionLogEntry, err error) {
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toActionLogs(entries))
}

func (h *BacklogHandler) page(w http.ResponseWriter, r *http.Request, fetch func(domain.PageRequest) (domain.Page[domain.ActionLogEntry], error)) {
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
	writeJSON(w, http.StatusOK, toPage(p, toActionLogs))
}

func (h *BacklogHandler) counts(w http.ResponseWriter, r *http.Request, fetch func(context.Context, domain.Actor, int) ([]domain.CountItem, error)) {
	hours, err := queryInt(r, "hours", defaultWindowHours)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	items, err := fetch(r.Context(), actorFrom(r), hours)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCounts(items))
}

func actionFilterFromQuery(r *http.Request) (domain.ActionLogFilter, error) {
	q := r.URL.Query()
	f := domain.ActionLogFilter{
		PerformedBy: q.Get("performedBy"),
		Module:      q.Get("module"),
		Action:      q.Get("action"),
		EntityType:  q.Get("entityType"),
		EntityID:    q.Get("entityId"),
	}
	if q.Get("success") != "" {
		ok, err := queryBool(r, "success", true)
		if err != nil {
			return f, err
		}
		f.Success = &ok
	}
	var err error
	if f.From, err = queryTime(r, "start"); err != nil {
		return f, err
	}
	if f.To, err = queryTime(r, "end"); err != nil {
		return f, err
	}
	return f, nil
}
