package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
	"github.com/heartmarshall/debt-recovery-backend/internal/service/user"
)

type managerCaseService interface {
	ManagerTasks(ctx context.Context, actor domain.Actor) ([]domain.Case, error)
	AssignCaseToAgent(ctx context.Context, actor domain.Actor, invoice, agentEmail string) (*domain.Investigation, error)
	AssignCasesToAgent(ctx context.Context, actor domain.Actor, invoices []string, agentEmail string) (*domain.BulkResult, error)
}

type agentDirectory interface {
	ListAgents(ctx context.Context, actor domain.Actor) ([]domain.User, error)
	AgentPerformance(ctx context.Context, actor domain.Actor) ([]user.AgentStats, error)
	AgentWorkload(ctx context.Context, actor domain.Actor) (*user.Workload, error)
	AgentDetails(ctx context.Context, actor domain.Actor, email string) (*user.AgentDetails, error)
}

// ManagerHandler serves /api/manager.
type ManagerHandler struct {
	cases  managerCaseService
	agents agentDirectory
	log    *slog.Logger
}

// NewManagerHandler creates a ManagerHandler.
func NewManagerHandler(cases managerCaseService, agents agentDirectory, logger *slog.Logger) *ManagerHandler {
	return &ManagerHandler{cases: cases, agents: agents, log: logger.With("handler", "manager")}
}

// assignAgentRequest accepts a single invoice or a list.
type assignAgentRequest struct {
	InvoiceNumber  string   `json:"invoiceNumber"`
	InvoiceNumbers []string `json:"invoiceNumbers"`
	AgentEmail     string   `json:"agentEmail"`
}

type workloadResponse struct {
	Agents      []agentStatsResponse `json:"agents"`
	TotalAgents int                  `json:"totalAgents"`
}

type agentDetailsResponse struct {
	User  userResponse       `json:"user"`
	Stats agentStatsResponse `json:"stats"`
}

// Tasks handles GET /api/manager/tasks.
func (h *ManagerHandler) Tasks(w http.ResponseWriter, r *http.Request) {
	cases, err := h.cases.ManagerTasks(r.Context(), actorFrom(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCases(cases))
}

// Assign handles POST /api/manager/assign.
func (h *ManagerHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req assignAgentRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if len(req.InvoiceNumbers) == 0 && strings.TrimSpace(req.InvoiceNumber) != "" {
		inv, err := h.cases.AssignCaseToAgent(r.Context(), actorFrom(r), req.InvoiceNumber, req.AgentEmail)
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, toInvestigation(inv, req.InvoiceNumber))
		return
	}

	res, err := h.cases.AssignCasesToAgent(r.Context(), actorFrom(r), req.InvoiceNumbers, req.AgentEmail)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBulk(res, "assignment"))
}

// ListAgents handles GET /api/manager/agents/list.
func (h *ManagerHandler) ListAgents(w http.ResponseWriter, r *http.Request) {
	agents, err := h.agents.ListAgents(r.Context(), actorFrom(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUsers(agents))
}

// AgentPerformance handles GET /api/manager/agents/performance.
func (h *ManagerHandler) AgentPerformance(w http.ResponseWriter, r *http.Request) {
	stats, err := h.agents.AgentPerformance(r.Context(), actorFrom(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAgentStats(stats))
}

// AgentWorkload handles GET /api/manager/agents/workload.
func (h *ManagerHandler) AgentWorkload(w http.ResponseWriter, r *http.Request) {
	wl, err := h.agents.AgentWorkload(r.Context(), actorFrom(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, workloadResponse{Agents: toAgentStats(wl.Agents), TotalAgents: wl.TotalAgents})
}

// AgentDetails handles GET /api/manager/agents/details/{email}.
func (h *ManagerHandler) AgentDetails(w http.ResponseWriter, r *http.Request) {
	d, err := h.agents.AgentDetails(r.Context(), actorFrom(r), chi.URLParam(r, "email"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, agentDetailsResponse{User: toUser(&d.User), Stats: agentStatsResponse(d.Stats)})
}
