package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

type agentCaseService interface {
	AgentDebts(ctx context.Context, actor domain.Actor) ([]domain.AgentDebt, error)
	ChangeStage(ctx context.Context, actor domain.Actor, invoice, stage string) (*domain.Investigation, error)
	ChangeMessage(ctx context.Context, actor domain.Actor, invoice, message string) (*domain.Investigation, error)
}

// AgentHandler serves /api/agent.
type AgentHandler struct {
	cases agentCaseService
	log   *slog.Logger
}

// NewAgentHandler creates an AgentHandler.
func NewAgentHandler(cases agentCaseService, logger *slog.Logger) *AgentHandler {
	return &AgentHandler{cases: cases, log: logger.With("handler", "agent")}
}

type changeMessageRequest struct {
	InvoiceNumber string `json:"invoiceNumber"`
	Message       string `json:"message"`
}

// Debts handles GET /api/agent/debts.
func (h *AgentHandler) Debts(w http.ResponseWriter, r *http.Request) {
	debts, err := h.cases.AgentDebts(r.Context(), actorFrom(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAgentDebts(debts))
}

// ChangeStage handles PUT /api/agent/stage?invoiceNumber=&stage=.
func (h *AgentHandler) ChangeStage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	invoice := q.Get("invoiceNumber")
	inv, err := h.cases.ChangeStage(r.Context(), actorFrom(r), invoice, q.Get("stage"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toInvestigation(inv, invoice))
}

// ChangeMessage handles PUT /api/agent/message.
func (h *AgentHandler) ChangeMessage(w http.ResponseWriter, r *http.Request) {
	var req changeMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	inv, err := h.cases.ChangeMessage(r.Context(), actorFrom(r), req.InvoiceNumber, req.Message)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toInvestigation(inv, req.InvoiceNumber))
}
