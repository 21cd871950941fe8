package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
	"github.com/heartmarshall/debt-recovery-backend/internal/service/reporting"
)

type debtCaseService interface {
	GetCase(ctx context.Context, actor domain.Actor, invoice string) (*domain.Case, error)
	GetInvestigation(ctx context.Context, actor domain.Actor, invoice string) (*domain.Investigation, error)
	GetCaseDetail(ctx context.Context, actor domain.Actor, invoice string) (*domain.CaseDetail, error)
	SearchCases(ctx context.Context, actor domain.Actor, q domain.CaseSearch) ([]domain.Case, error)
	StatusHistory(ctx context.Context, actor domain.Actor, invoice string) ([]domain.StatusHistoryItem, error)
	BulkUpdateStatus(ctx context.Context, actor domain.Actor, invoices []string, status string, assignedTo *string) (*domain.BulkResult, error)
	BulkUpdateStage(ctx context.Context, actor domain.Actor, invoices []string, stage string) (*domain.BulkResult, error)
	BulkAssign(ctx context.Context, actor domain.Actor, invoices []string, agentEmail string) (*domain.BulkResult, error)
}

type debtReports interface {
	HighValue(ctx context.Context, actor domain.Actor, minAmount decimal.Decimal, descending bool) ([]domain.Case, error)
	Overdue(ctx context.Context, actor domain.Actor, minDays int) ([]domain.Case, error)
	DebtStats(ctx context.Context, actor domain.Actor) (*reporting.DebtStats, error)
}

// DebtHandler serves /debt.
type DebtHandler struct {
	cases   debtCaseService
	reports debtReports
	log     *slog.Logger
}

// NewDebtHandler creates a DebtHandler.
func NewDebtHandler(cases debtCaseService, reports debtReports, logger *slog.Logger) *DebtHandler {
	return &DebtHandler{cases: cases, reports: reports, log: logger.With("handler", "debt")}
}

type bulkStatusRequest struct {
	InvoiceNumbers []string `json:"invoiceNumbers"`
	Status         string   `json:"status"`
	AssignedTo     *string  `json:"assignedTo"`
}

type bulkStageRequest struct {
	InvoiceNumbers []string `json:"invoiceNumbers"`
	Stage          string   `json:"stage"`
}

type bulkAssignRequest struct {
	InvoiceNumbers []string `json:"invoiceNumbers"`
	AgentEmail     string   `json:"agentEmail"`
}

type debtStatsResponse struct {
	TotalCases      int64           `json:"totalCases"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	AssignedCases   int64           `json:"assignedCases"`
	UnassignedCases int64           `json:"unassignedCases"`
	AssignmentRate  float64         `json:"assignmentRate"`
}

// GetCase handles GET /debt/case/{invoiceNumber}.
func (h *DebtHandler) GetCase(w http.ResponseWriter, r *http.Request) {
	c, err := h.cases.GetCase(r.Context(), actorFrom(r), chi.URLParam(r, "invoiceNumber"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCase(c))
}

// GetInvestigation handles GET /debt/case/{invoiceNumber}/details.
func (h *DebtHandler) GetInvestigation(w http.ResponseWriter, r *http.Request) {
	invoice := chi.URLParam(r, "invoiceNumber")
	inv, err := h.cases.GetInvestigation(r.Context(), actorFrom(r), invoice)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toInvestigation(inv, invoice))
}

// GetCaseDetail handles GET /debt/case/{invoiceNumber}/full.
func (h *DebtHandler) GetCaseDetail(w http.ResponseWriter, r *http.Request) {
	d, err := h.cases.GetCaseDetail(r.Context(), actorFrom(r), chi.URLParam(r, "invoiceNumber"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCaseDetail(d))
}

// Search handles GET /debt/search.
func (h *DebtHandler) Search(w http.ResponseWriter, r *http.Request) {
	q, err := parseCaseSearch(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	cases, err := h.cases.SearchCases(r.Context(), actorFrom(r), q)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCases(cases))
}

// HighValue handles GET /debt/high-value?minAmount=.
func (h *DebtHandler) HighValue(w http.ResponseWriter, r *http.Request) {
	minAmount := decimal.NewFromInt(reporting.DefaultHighValueMin)
	if v := strings.TrimSpace(r.URL.Query().Get("minAmount")); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("minAmount", "minAmount must be a number"))
			return
		}
		minAmount = d
	}
	cases, err := h.reports.HighValue(r.Context(), actorFrom(r), minAmount, true)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCases(cases))
}

// Overdue handles GET /debt/overdue?minDays=.
func (h *DebtHandler) Overdue(w http.ResponseWriter, r *http.Request) {
	minDays, err := queryInt(r, "minDays", reporting.DefaultOverdueMinDays)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	cases, err := h.reports.Overdue(r.Context(), actorFrom(r), minDays)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCases(cases))
}

// Stats handles GET /debt/stats.
func (h *DebtHandler) Stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.reports.DebtStats(r.Context(), actorFrom(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, debtStatsResponse(*st))
}

// StatusHistory handles GET /debt/status-history/{invoiceNumber}.
func (h *DebtHandler) StatusHistory(w http.ResponseWriter, r *http.Request) {
	items, err := h.cases.StatusHistory(r.Context(), actorFrom(r), chi.URLParam(r, "invoiceNumber"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toHistory(items))
}

// BulkStatus handles POST /debt/bulk/status.
func (h *DebtHandler) BulkStatus(w http.ResponseWriter, r *http.Request) {
	var req bulkStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	res, err := h.cases.BulkUpdateStatus(r.Context(), actorFrom(r), req.InvoiceNumbers, req.Status, req.AssignedTo)
	h.writeBulk(w, r, res, err, "status update")
}

// BulkStage handles POST /debt/bulk/stage.
func (h *DebtHandler) BulkStage(w http.ResponseWriter, r *http.Request) {
	var req bulkStageRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	res, err := h.cases.BulkUpdateStage(r.Context(), actorFrom(r), req.InvoiceNumbers, req.Stage)
	h.writeBulk(w, r, res, err, "stage update")
}

// BulkAssign handles POST /debt/bulk/assign.
func (h *DebtHandler) BulkAssign(w http.ResponseWriter, r *http.Request) {
	var req bulkAssignRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	res, err := h.cases.BulkAssign(r.Context(), actorFrom(r), req.InvoiceNumbers, req.AgentEmail)
	h.writeBulk(w, r, res, err, "assignment")
}

func (h *DebtHandler) writeBulk(w http.ResponseWriter, r *http.Request, res *domain.BulkResult, err error, op string) {
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBulk(res, op))
}

func parseCaseSearch(r *http.Request) (domain.CaseSearch, error) {
	q := r.URL.Query()
	s := domain.CaseSearch{
		CustomerName:  strings.TrimSpace(q.Get("customerName")),
		InvoiceNumber: strings.TrimSpace(q.Get("invoiceNumber")),
	}
	var errs []domain.FieldError
	if v := q.Get("status"); strings.TrimSpace(v) != "" {
		st, err := domain.ParseStatus(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status: " + v})
		} else {
			s.Status = &st
		}
	}
	for _, a := range []struct {
		name string
		dst  **decimal.Decimal
	}{
		{"minAmount", &s.MinAmount},
		{"maxAmount", &s.MaxAmount},
	} {
		v := strings.TrimSpace(q.Get(a.name))
		if v == "" {
			continue
		}
		d, err := decimal.NewFromString(v)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: a.name, Message: a.name + " must be a number"})
			continue
		}
		*a.dst = &d
	}
	if len(errs) > 0 {
		return domain.CaseSearch{}, domain.NewValidationErrors(errs)
	}
	return s, nil
}
