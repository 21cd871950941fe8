package rest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
	"github.com/heartmarshall/debt-recovery-backend/internal/service/reporting"
)

type reportService interface {
	Summary(ctx context.Context, actor domain.Actor) (*reporting.Summary, error)
	ByStatus(ctx context.Context, actor domain.Actor) (*reporting.StatusBreakdown, error)
	ByStage(ctx context.Context, actor domain.Actor) (map[domain.Stage]int64, error)
	HighValue(ctx context.Context, actor domain.Actor, minAmount decimal.Decimal, descending bool) ([]domain.Case, error)
	Overdue(ctx context.Context, actor domain.Actor, minDays int) ([]domain.Case, error)
	CollectionTrend(ctx context.Context, actor domain.Actor) (*reporting.CollectionTrend, error)
	ManagerSummary(ctx context.Context, actor domain.Actor) (*reporting.ManagerSummary, error)
	TrendAnalysis(ctx context.Context, actor domain.Actor) (*reporting.TrendAnalysis, error)
}

type exportService interface {
	Summary(ctx context.Context, actor domain.Actor) (*reporting.Summary, error)
	ExportCSV(ctx context.Context, actor domain.Actor, f domain.CaseFilter, w io.Writer) (int, error)
	ExportJSON(ctx context.Context, actor domain.Actor, f domain.CaseFilter, includeInvestigation bool) ([]domain.CaseDetail, error)
	CountFiltered(ctx context.Context, actor domain.Actor, f domain.CaseFilter) (*reporting.FilteredCount, error)
}

type dashboardService interface {
	Dashboard(ctx context.Context, actor domain.Actor) (*reporting.Dashboard, error)
}

type summaryResponse struct {
	TotalCases      int64           `json:"totalCases"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	AssignedCases   int64           `json:"assignedCases"`
	UnassignedCases int64           `json:"unassignedCases"`
	CollectedCases  int64           `json:"collectedCases"`
	PendingCases    int64           `json:"pendingCases"`
	DisputedCases   int64           `json:"disputedCases"`
	AssignmentRate  float64         `json:"assignmentRate"`
	CollectionRate  float64         `json:"collectionRate"`
}

type statusBreakdownResponse struct {
	Counts  map[string]int64           `json:"counts"`
	Amounts map[string]decimal.Decimal `json:"amounts"`
}

type collectionTrendResponse struct {
	TotalCases     int64   `json:"totalCases"`
	CollectedCases int64   `json:"collectedCases"`
	RemainingCases int64   `json:"remainingCases"`
	CollectionRate float64 `json:"collectionRate"`
}

type collectionStatsResponse struct {
	TotalCases      int64            `json:"totalCases"`
	AssignedCases   int64            `json:"assignedCases"`
	UnassignedCases int64            `json:"unassignedCases"`
	TotalAmount     decimal.Decimal  `json:"totalAmount"`
	CollectedAmount decimal.Decimal  `json:"collectedAmount"`
	PendingAmount   decimal.Decimal  `json:"pendingAmount"`
	CasesByStatus   map[string]int64 `json:"casesByStatus"`
	CollectedCases  int64            `json:"collectedCases"`
	PendingCases    int64            `json:"pendingCases"`
	DisputedCases   int64            `json:"disputedCases"`
}

type managerSummaryResponse struct {
	AgencyID    string          `json:"agencyId"`
	TotalCases  int             `json:"totalCases"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

type trendAnalysisResponse struct {
	StageDistribution  map[string]int64 `json:"stageDistribution"`
	StatusDistribution map[string]int64 `json:"statusDistribution"`
	TopHighValueCases  []caseResponse   `json:"topHighValueCases"`
	MostOverdueCases   []caseResponse   `json:"mostOverdueCases"`
}

type filteredCountResponse struct {
	summaryResponse
	FilteredCount int `json:"filteredCount"`
}

type dashboardResponse struct {
	TotalCases          int64                `json:"totalCases"`
	TotalAgents         int                  `json:"totalAgents"`
	TotalManagers       int                  `json:"totalManagers"`
	TotalPortfolioValue decimal.Decimal      `json:"totalPortfolioValue"`
	PendingCases        int64                `json:"pendingCases"`
	CollectedCases      int64                `json:"collectedCases"`
	TopAgents           []topAgentResponse   `json:"topAgents"`
	RecentCases         []recentCaseResponse `json:"recentCases"`
}

type topAgentResponse struct {
	Email           string          `json:"email"`
	Name            string          `json:"name"`
	CollectedCases  int             `json:"collectedCases"`
	CollectedAmount decimal.Decimal `json:"collectedAmount"`
}

type recentCaseResponse struct {
	InvoiceNumber string          `json:"invoiceNumber"`
	CustomerName  string          `json:"customerName"`
	Status        domain.Status   `json:"status"`
	Stage         domain.Stage    `json:"stage"`
	Amount        decimal.Decimal `json:"amount"`
}

func statusKeys(m map[domain.Status]int64) map[string]int64 {
	out := make(map[string]int64, len(m))
	for k, v := range m {
		out[k.String()] = v
	}
	return out
}

func stageKeys(m map[domain.Stage]int64) map[string]int64 {
	out := make(map[string]int64, len(m))
	for k, v := range m {
		out[k.String()] = v
	}
	return out
}

// ReportHandler serves /api/reports.
type ReportHandler struct {
	reports reportService
	log     *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(reports reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{reports: reports, log: logger.With("handler", "report")}
}

// Summary handles GET /api/reports/summary.
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.reports.Summary(r.Context(), actorFrom(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, summaryResponse(*sum))
}

// ByStatus handles GET /api/reports/by-status.
func (h *ReportHandler) ByStatus(w http.ResponseWriter, r *http.Request) {
	b, err := h.reports.ByStatus(r.Context(), actorFrom(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	amounts := make(map[string]decimal.Decimal, len(b.Amounts))
	for k, v := range b.Amounts {
		amounts[k.String()] = v
	}
	writeJSON(w, http.StatusOK, statusBreakdownResponse{Counts: statusKeys(b.Counts), Amounts: amounts})
}

// ByStage handles GET /api/reports/by-stage.
func (h *ReportHandler) ByStage(w http.ResponseWriter, r *http.Request) {
	m, err := h.reports.ByStage(r.Context(), actorFrom(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, stageKeys(m))
}

// HighValue handles GET /api/reports/high-value?minAmount=&descending=.
func (h *ReportHandler) HighValue(w http.ResponseWriter, r *http.Request) {
	minAmount := decimal.NewFromInt(reporting.DefaultHighValueMin)
	if v := strings.TrimSpace(r.URL.Query().Get("minAmount")); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("minAmount", "minAmount must be a number"))
			return
		}
		minAmount = d
	}
	descending, err := queryBool(r, "descending", true)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	cases, err := h.reports.HighValue(r.Context(), actorFrom(r), minAmount, descending)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCases(cases))
}

// Overdue handles GET /api/reports/overdue?minDays=.
func (h *ReportHandler) Overdue(w http.ResponseWriter, r *http.Request) {
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

// CollectionTrend handles GET /api/reports/collection-trend.
func (h *ReportHandler) CollectionTrend(w http.ResponseWriter, r *http.Request) {
	t, err := h.reports.CollectionTrend(r.Context(), actorFrom(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, collectionTrendResponse(*t))
}

// ManagerSummary handles GET /api/reports/manager-summary.
func (h *ReportHandler) ManagerSummary(w http.ResponseWriter, r *http.Request) {
	m, err := h.reports.ManagerSummary(r.Context(), actorFrom(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, managerSummaryResponse(*m))
}

// TrendAnalysis handles GET /api/reports/trend-analysis.
func (h *ReportHandler) TrendAnalysis(w http.ResponseWriter, r *http.Request) {
	t, err := h.reports.TrendAnalysis(r.Context(), actorFrom(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, trendAnalysisResponse{
		StageDistribution:  stageKeys(t.StageDistribution),
		StatusDistribution: statusKeys(t.StatusDistribution),
		TopHighValueCases:  toCases(t.TopHighValueCases),
		MostOverdueCases:   toCases(t.MostOverdueCases),
	})
}

// ExportHandler serves /api/export.
type ExportHandler struct {
	exports exportService
	log     *slog.Logger
	now     func() time.Time
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exports exportService, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{exports: exports, log: logger.With("handler", "export"), now: time.Now}
}

// CSV handles GET /api/export/csv. The body is rendered before any header
// is written so a failed export still gets a JSON error.
func (h *ExportHandler) CSV(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromQuery(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var buf bytes.Buffer
	if _, err := h.exports.ExportCSV(r.Context(), actorFrom(r), f, &buf); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	name := fmt.Sprintf("cases_export_%s.csv", h.now().UTC().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// JSON handles GET /api/export/json.
func (h *ExportHandler) JSON(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromQuery(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	withInv, err := queryBool(r, "includeInvestigation", false)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	h.exportJSON(w, r, f, withInv)
}

// All handles GET /api/export/all: filtered cases with their investigation.
// descending=true wins over ascending.
func (h *ExportHandler) All(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromQuery(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	descending, err := queryBool(r, "descending", false)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if descending {
		f.Ascending = false
	}
	h.exportJSON(w, r, f, true)
}

func (h *ExportHandler) exportJSON(w http.ResponseWriter, r *http.Request, f domain.CaseFilter, withInv bool) {
	details, err := h.exports.ExportJSON(r.Context(), actorFrom(r), f, withInv)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCaseDetails(details))
}

// Summary handles GET /api/export/summary.
func (h *ExportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.exports.Summary(r.Context(), actorFrom(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, summaryResponse(*sum))
}

// Count handles GET /api/export/count.
func (h *ExportHandler) Count(w http.ResponseWriter, r *http.Request) {
	f, err := filterFromQuery(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	c, err := h.exports.CountFiltered(r.Context(), actorFrom(r), f)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, filteredCountResponse{
		summaryResponse: summaryResponse(c.Summary),
		FilteredCount:   c.FilteredCount,
	})
}

// filterFromQuery reads the export filter. Without sortBy the result is
// ordered by amount, descending unless ascending=true.
func filterFromQuery(r *http.Request) (domain.CaseFilter, error) {
	q := r.URL.Query()
	ascending, err := queryBool(r, "ascending", false)
	if err != nil {
		return domain.CaseFilter{}, err
	}
	sortBy := strings.TrimSpace(q.Get("sortBy"))
	if sortBy == "" {
		sortBy = reporting.SortAmount
	}
	in := reporting.FilterInput{
		Status:    q.Get("status"),
		Stage:     q.Get("stage"),
		MinAmount: q.Get("minAmount"),
		MaxAmount: q.Get("maxAmount"),
		SortBy:    sortBy,
		Ascending: ascending,
	}
	if v := strings.TrimSpace(q.Get("minDaysOverdue")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return domain.CaseFilter{}, domain.NewValidationError("minDaysOverdue", "minDaysOverdue must be an integer")
		}
		in.MinDaysOverdue = &n
	}
	return in.Parse()
}

// DashboardHandler serves /api/dashboard.
type DashboardHandler struct {
	dashboard dashboardService
	log       *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(dashboard dashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, log: logger.With("handler", "dashboard")}
}

// Summary handles GET /api/dashboard/summary.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	d, err := h.dashboard.Dashboard(r.Context(), actorFrom(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	resp := dashboardResponse{
		TotalCases:          d.TotalCases,
		TotalAgents:         d.TotalAgents,
		TotalManagers:       d.TotalManagers,
		TotalPortfolioValue: d.TotalPortfolioValue,
		PendingCases:        d.PendingCases,
		CollectedCases:      d.CollectedCases,
		TopAgents:           make([]topAgentResponse, len(d.TopAgents)),
		RecentCases:         make([]recentCaseResponse, len(d.RecentCases)),
	}
	for i, a := range d.TopAgents {
		resp.TopAgents[i] = topAgentResponse(a)
	}
	for i, c := range d.RecentCases {
		resp.RecentCases[i] = recentCaseResponse(c)
	}
	writeJSON(w, http.StatusOK, resp)
}
