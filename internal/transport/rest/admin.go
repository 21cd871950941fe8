package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
	"github.com/heartmarshall/debt-recovery-backend/internal/service/caseimport"
	"github.com/heartmarshall/debt-recovery-backend/internal/service/reporting"
	"github.com/heartmarshall/debt-recovery-backend/internal/service/user"
)

type userAdminService interface {
	ListAll(ctx context.Context, actor domain.Actor) ([]domain.User, error)
	ListByRole(ctx context.Context, actor domain.Actor, role string) ([]domain.User, error)
	ListByAgency(ctx context.Context, actor domain.Actor, agencyID string) ([]domain.User, error)
	Search(ctx context.Context, actor domain.Actor, query string) ([]domain.User, error)
	Counts(ctx context.Context, actor domain.Actor) (*user.Counts, error)
	UpdateRole(ctx context.Context, actor domain.Actor, input user.UpdateRoleInput) error
	UpdateAgency(ctx context.Context, actor domain.Actor, input user.UpdateAgencyInput) error
	Delete(ctx context.Context, actor domain.Actor, email string) error
	AllAgentPerformance(ctx context.Context, actor domain.Actor) ([]user.AgentStats, error)
}

type caseImporter interface {
	ImportCSV(ctx context.Context, actor domain.Actor, r io.Reader, filename string) (*caseimport.Result, error)
}

type agencyAssigner interface {
	AssignCasesToAgency(ctx context.Context, actor domain.Actor, invoices []string, agencyID string) (*domain.BulkResult, error)
	ListAll(ctx context.Context, actor domain.Actor) ([]domain.Case, error)
}

type collectionStats interface {
	CollectionStats(ctx context.Context, actor domain.Actor) (*reporting.CollectionStats, error)
}

// UserAdminHandler serves /api/admin/users.
type UserAdminHandler struct {
	users userAdminService
	log   *slog.Logger
}

// NewUserAdminHandler creates a UserAdminHandler.
func NewUserAdminHandler(users userAdminService, logger *slog.Logger) *UserAdminHandler {
	return &UserAdminHandler{users: users, log: logger.With("handler", "user_admin")}
}

type updateRoleRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type updateAgencyRequest struct {
	Email    string `json:"email"`
	AgencyID string `json:"agencyId"`
}

type userCountsResponse struct {
	Total    int64 `json:"total"`
	Admins   int64 `json:"admins"`
	Managers int64 `json:"managers"`
	Agents   int64 `json:"agents"`
}

// List handles GET /api/admin/users/list.
func (h *UserAdminHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListAll(r.Context(), actorFrom(r))
	h.writeUsers(w, r, users, err)
}

// ListByRole handles GET /api/admin/users/list/{role}.
func (h *UserAdminHandler) ListByRole(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListByRole(r.Context(), actorFrom(r), chi.URLParam(r, "role"))
	h.writeUsers(w, r, users, err)
}

// ListByAgency handles GET /api/admin/users/agency/{agencyId}.
func (h *UserAdminHandler) ListByAgency(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListByAgency(r.Context(), actorFrom(r), chi.URLParam(r, "agencyId"))
	h.writeUsers(w, r, users, err)
}

// Search handles GET /api/admin/users/search?query=.
func (h *UserAdminHandler) Search(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.Search(r.Context(), actorFrom(r), r.URL.Query().Get("query"))
	h.writeUsers(w, r, users, err)
}

// Count handles GET /api/admin/users/count.
func (h *UserAdminHandler) Count(w http.ResponseWriter, r *http.Request) {
	c, err := h.users.Counts(r.Context(), actorFrom(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, userCountsResponse{
		Total:    c.Total,
		Admins:   c.Admins,
		Managers: c.Managers,
		Agents:   c.Agents,
	})
}

// UpdateRole handles PUT /api/admin/users/update-role.
func (h *UserAdminHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	var req updateRoleRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	err := h.users.UpdateRole(r.Context(), actorFrom(r), user.UpdateRoleInput{Email: req.Email, Role: req.Role})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeMessage(w, "Role updated successfully")
}

// UpdateAgency handles PUT /api/admin/users/update-agency.
func (h *UserAdminHandler) UpdateAgency(w http.ResponseWriter, r *http.Request) {
	var req updateAgencyRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	err := h.users.UpdateAgency(r.Context(), actorFrom(r), user.UpdateAgencyInput{Email: req.Email, AgencyID: req.AgencyID})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeMessage(w, "Agency updated successfully")
}

// Delete handles DELETE /api/admin/users/delete/{email}.
func (h *UserAdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.users.Delete(r.Context(), actorFrom(r), chi.URLParam(r, "email")); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeMessage(w, "User deleted successfully")
}

func (h *UserAdminHandler) writeUsers(w http.ResponseWriter, r *http.Request, users []domain.User, err error) {
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUsers(users))
}

// AdminHandler serves the case administration endpoints under /api/admin.
type AdminHandler struct {
	importer     caseImporter
	cases        agencyAssigner
	stats        collectionStats
	users        userAdminService
	maxUploadLen int64
	log          *slog.Logger
}

// NewAdminHandler creates an AdminHandler. Uploads larger than maxUpload
// bytes are rejected.
func NewAdminHandler(importer caseImporter, cases agencyAssigner, stats collectionStats, users userAdminService, maxUpload int64, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		importer:     importer,
		cases:        cases,
		stats:        stats,
		users:        users,
		maxUploadLen: maxUpload,
		log:          logger.With("handler", "admin"),
	}
}

type assignAgencyRequest struct {
	InvoiceNumbers []string `json:"invoiceNumbers"`
	AgencyID       string   `json:"agencyId"`
}

type rowErrorResponse struct {
	Line    int    `json:"line"`
	Invoice string `json:"invoiceNumber,omitempty"`
	Message string `json:"message"`
}

type importResponse struct {
	Message  string             `json:"message"`
	Imported int                `json:"imported"`
	Failed   int                `json:"failed"`
	Errors   []rowErrorResponse `json:"errors"`
}

type agentStatsResponse struct {
	Email          string  `json:"email"`
	Name           string  `json:"name"`
	TotalCases     int     `json:"totalCases"`
	Collected      int     `json:"collected"`
	Pending        int     `json:"pending"`
	Disputed       int     `json:"disputed"`
	Promised       int     `json:"promised"`
	CollectionRate float64 `json:"collectionRate"`
}

// UploadCases handles POST /api/admin/cases/upload (multipart "file").
func (h *AdminHandler) UploadCases(w http.ResponseWriter, r *http.Request) {
	if h.maxUploadLen > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadLen)
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "File is too large")
			return
		}
		writeError(w, http.StatusBadRequest, "Please upload a CSV file")
		return
	}
	defer file.Close()

	res, err := h.importer.ImportCSV(r.Context(), actorFrom(r), file, header.Filename)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := importResponse{
		Message:  "File uploaded successfully",
		Imported: res.Imported,
		Failed:   res.Failed,
		Errors:   make([]rowErrorResponse, len(res.Errors)),
	}
	for i, e := range res.Errors {
		out.Errors[i] = rowErrorResponse{Line: e.Line, Invoice: e.Invoice, Message: e.Message}
	}
	writeJSON(w, http.StatusOK, out)
}

// AssignCases handles POST /api/admin/cases/assign.
func (h *AdminHandler) AssignCases(w http.ResponseWriter, r *http.Request) {
	var req assignAgencyRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	res, err := h.cases.AssignCasesToAgency(r.Context(), actorFrom(r), req.InvoiceNumbers, req.AgencyID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toBulk(res, "assignment"))
}

// ListCases handles GET /api/admin/cases.
func (h *AdminHandler) ListCases(w http.ResponseWriter, r *http.Request) {
	cases, err := h.cases.ListAll(r.Context(), actorFrom(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCases(cases))
}

// CollectionStats handles GET /api/admin/stats/collections.
func (h *AdminHandler) CollectionStats(w http.ResponseWriter, r *http.Request) {
	st, err := h.stats.CollectionStats(r.Context(), actorFrom(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, collectionStatsResponse{
		TotalCases:      st.TotalCases,
		AssignedCases:   st.AssignedCases,
		UnassignedCases: st.UnassignedCases,
		TotalAmount:     st.TotalAmount,
		CollectedAmount: st.CollectedAmount,
		PendingAmount:   st.PendingAmount,
		CasesByStatus:   statusKeys(st.CasesByStatus),
		CollectedCases:  st.CollectedCases,
		PendingCases:    st.PendingCases,
		DisputedCases:   st.DisputedCases,
	})
}

// AgentPerformance handles GET /api/admin/stats/agent-performance.
func (h *AdminHandler) AgentPerformance(w http.ResponseWriter, r *http.Request) {
	stats, err := h.users.AllAgentPerformance(r.Context(), actorFrom(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAgentStats(stats))
}

func toAgentStats(stats []user.AgentStats) []agentStatsResponse {
	out := make([]agentStatsResponse, len(stats))
	for i, s := range stats {
		out[i] = agentStatsResponse(s)
	}
	return out
}
