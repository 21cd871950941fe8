package rest

import (
	"context"
	"log/slog"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/debt-recovery-backend/internal/config"
	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
	"github.com/heartmarshall/debt-recovery-backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (domain.Actor, error)
}

// Handlers groups the handlers mounted by NewRouter.
type Handlers struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	Users     *UserAdminHandler
	Admin     *AdminHandler
	Manager   *ManagerHandler
	Agent     *AgentHandler
	Debt      *DebtHandler
	Backlog   *BacklogHandler
	Audit     *AuditHandler
	Report    *ReportHandler
	Export    *ExportHandler
	AI        *AIHandler
	Dashboard *DashboardHandler
}

// RouterDeps carries the cross-cutting pieces of the router. RateLimit and
// AuthRateLimit may be nil.
type RouterDeps struct {
	Logger        *slog.Logger
	Validator     tokenValidator
	Tracker       *middleware.ActionTracker
	CORS          config.CORSConfig
	RateLimit     middleware.Middleware
	AuthRateLimit middleware.Middleware
}

// NewRouter builds the HTTP API.
func NewRouter(h Handlers, deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	global := []middleware.Middleware{
		middleware.Recovery(deps.Logger),
		middleware.RequestID(),
		middleware.Logger(deps.Logger),
		middleware.CORS(deps.CORS),
		middleware.Auth(deps.Validator),
	}
	if deps.RateLimit != nil {
		global = append(global, deps.RateLimit)
	}
	r.Use(global...)

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)

	t := tracker{at: deps.Tracker}

	authLimited := r.With()
	if deps.AuthRateLimit != nil {
		authLimited = r.With(deps.AuthRateLimit)
	}
	t.post(authLimited, "/login", h.Auth.Login, meta("AuthHandler.Login", "", "LoginRequest"))

	r.Route("/api/auth", func(r chi.Router) {
		limited := r.With()
		if deps.AuthRateLimit != nil {
			limited = r.With(deps.AuthRateLimit)
		}
		t.post(limited, "/login", h.Auth.Login, meta("AuthHandler.Login", "", "LoginRequest"))
		t.post(limited, "/signup/code", h.Auth.RequestSignupCode, meta("AuthHandler.RequestSignupCode", "", "SignupCodeRequest"))
		t.post(limited, "/signup", h.Auth.Signup, meta("AuthHandler.Signup", "", "SignupRequest"))
		t.post(limited, "/forgot-password", h.Auth.ForgotPassword, meta("AuthHandler.ForgotPassword", "", "ForgotPasswordRequest"))
		t.post(limited, "/reset-password", h.Auth.ResetPassword, meta("AuthHandler.ResetPassword", "", "ResetPasswordRequest"))
		t.post(limited, "/validate-reset-token", h.Auth.ValidateResetToken, meta("AuthHandler.ValidateResetToken", "", "ValidateResetRequest"))
		t.post(r, "/refresh", h.Auth.Refresh, meta("AuthHandler.Refresh", "", "RefreshRequest"))
		t.post(r, "/validate", h.Auth.Validate, meta("AuthHandler.Validate", "", ""))
		t.get(r, "/health", h.Auth.Health, meta("AuthHandler.Health", "", ""))

		authed := t.guarded(middleware.RequireAuth)
		authed.post(r, "/logout", h.Auth.Logout, meta("AuthHandler.Logout", "", ""))
		authed.post(r, "/change-password", h.Auth.ChangePassword, meta("AuthHandler.ChangePassword", "", "ChangePasswordRequest"))
		authed.get(r, "/me", h.Auth.Me, meta("AuthHandler.Me", "", ""))
	})

	r.Route("/api/admin", func(r chi.Router) {
		t := t.guarded(middleware.RequireRole(domain.RoleAdmin))

		r.Route("/users", func(r chi.Router) {
			t.get(r, "/list", h.Users.List, meta("UserAdminHandler.List", domain.EntityUser, ""))
			t.get(r, "/list/{role}", h.Users.ListByRole, meta("UserAdminHandler.ListByRole", domain.EntityUser, ""))
			t.get(r, "/agency/{agencyId}", h.Users.ListByAgency, meta("UserAdminHandler.ListByAgency", domain.EntityUser, ""))
			t.get(r, "/count", h.Users.Count, meta("UserAdminHandler.Count", domain.EntityUser, ""))
			t.get(r, "/search", h.Users.Search, meta("UserAdminHandler.Search", domain.EntityUser, ""))
			t.put(r, "/update-role", h.Users.UpdateRole, meta("UserAdminHandler.UpdateRole", domain.EntityUser, "UpdateRoleRequest"))
			t.put(r, "/update-agency", h.Users.UpdateAgency, meta("UserAdminHandler.UpdateAgency", domain.EntityUser, "UpdateAgencyRequest"))
			t.delete(r, "/delete/{email}", h.Users.Delete, withID(meta("UserAdminHandler.Delete", domain.EntityUser, ""), "email"))
		})

		t.post(r, "/cases/upload", h.Admin.UploadCases, meta("AdminHandler.UploadCases", domain.EntityCase, "MultipartFile"))
		t.post(r, "/cases/assign", h.Admin.AssignCases, meta("AdminHandler.AssignCases", domain.EntityCase, "AssignAgencyRequest"))
		t.get(r, "/cases", h.Admin.ListCases, meta("AdminHandler.ListCases", domain.EntityCase, ""))
		t.get(r, "/stats/collections", h.Admin.CollectionStats, meta("AdminHandler.CollectionStats", "", ""))
		t.get(r, "/stats/agent-performance", h.Admin.AgentPerformance, meta("AdminHandler.AgentPerformance", domain.EntityUser, ""))
	})

	r.Route("/api/manager", func(r chi.Router) {
		t := t.guarded(middleware.RequireRole(domain.RoleManager))
		t.get(r, "/tasks", h.Manager.Tasks, meta("ManagerHandler.Tasks", domain.EntityCase, ""))
		t.post(r, "/assign", h.Manager.Assign, meta("ManagerHandler.Assign", domain.EntityCase, "AssignAgentRequest"))
		t.get(r, "/agents/list", h.Manager.ListAgents, meta("ManagerHandler.ListAgents", domain.EntityUser, ""))
		t.get(r, "/agents/performance", h.Manager.AgentPerformance, meta("ManagerHandler.AgentPerformance", domain.EntityUser, ""))
		t.get(r, "/agents/workload", h.Manager.AgentWorkload, meta("ManagerHandler.AgentWorkload", domain.EntityUser, ""))
		t.get(r, "/agents/details/{email}", h.Manager.AgentDetails, withID(meta("ManagerHandler.AgentDetails", domain.EntityUser, ""), "email"))
	})

	r.Route("/api/agent", func(r chi.Router) {
		t := t.guarded(middleware.RequireRole(domain.RoleAgent))
		t.get(r, "/debts", h.Agent.Debts, meta("AgentHandler.Debts", domain.EntityCase, ""))
		t.put(r, "/stage", h.Agent.ChangeStage, withID(meta("AgentHandler.ChangeStage", domain.EntityCase, ""), "invoiceNumber"))
		t.put(r, "/message", h.Agent.ChangeMessage, meta("AgentHandler.ChangeMessage", domain.EntityCase, "ChangeMessageRequest"))
	})

	r.Route("/debt", func(r chi.Router) {
		t := t.guarded(middleware.RequireAuth)
		t.get(r, "/case/{invoiceNumber}", h.Debt.GetCase, withID(meta("DebtHandler.GetCase", domain.EntityCase, ""), "invoiceNumber"))
		t.get(r, "/case/{invoiceNumber}/details", h.Debt.GetInvestigation, withID(meta("DebtHandler.GetInvestigation", domain.EntityCase, ""), "invoiceNumber"))
		t.get(r, "/case/{invoiceNumber}/full", h.Debt.GetCaseDetail, withID(meta("DebtHandler.GetCaseDetail", domain.EntityCase, ""), "invoiceNumber"))
		t.get(r, "/search", h.Debt.Search, meta("DebtHandler.Search", domain.EntityCase, ""))
		t.get(r, "/high-value", h.Debt.HighValue, meta("DebtHandler.HighValue", domain.EntityCase, ""))
		t.get(r, "/overdue", h.Debt.Overdue, meta("DebtHandler.Overdue", domain.EntityCase, ""))
		t.get(r, "/stats", h.Debt.Stats, meta("DebtHandler.Stats", "", ""))
		t.get(r, "/status-history/{invoiceNumber}", h.Debt.StatusHistory, withID(meta("DebtHandler.StatusHistory", domain.EntityCase, ""), "invoiceNumber"))
		t.post(r, "/bulk/status", h.Debt.BulkStatus, meta("DebtHandler.BulkStatus", domain.EntityCase, "BulkStatusRequest"))
		t.post(r, "/bulk/stage", h.Debt.BulkStage, meta("DebtHandler.BulkStage", domain.EntityCase, "BulkStageRequest"))
		t.post(r, "/bulk/assign", h.Debt.BulkAssign, meta("DebtHandler.BulkAssign", domain.EntityCase, "BulkAssignRequest"))
	})

	r.Route("/backlog", func(r chi.Router) {
		t := t.guarded(middleware.RequireRole(domain.RoleAdmin))
		t.get(r, "/", h.Backlog.All, meta("BacklogHandler.All", domain.EntityActionLog, ""))
		t.post(r, "/", h.Backlog.Create, meta("BacklogHandler.Create", domain.EntityActionLog, "CreateBacklogRequest"))
		t.get(r, "/user/{email}", h.Backlog.ByUser, meta("BacklogHandler.ByUser", domain.EntityActionLog, ""))
		t.get(r, "/user/{email}/recent", h.Backlog.RecentByUser, meta("BacklogHandler.RecentByUser", domain.EntityActionLog, ""))
		t.get(r, "/module/{module}", h.Backlog.ByModule, meta("BacklogHandler.ByModule", domain.EntityActionLog, ""))
		t.get(r, "/action/{action}", h.Backlog.ByAction, meta("BacklogHandler.ByAction", domain.EntityActionLog, ""))
		t.get(r, "/entity/{entityType}/{entityId}", h.Backlog.ByEntity, meta("BacklogHandler.ByEntity", domain.EntityActionLog, ""))
		t.get(r, "/range", h.Backlog.Between, meta("BacklogHandler.Between", domain.EntityActionLog, ""))
		t.get(r, "/failed", h.Backlog.Failed, meta("BacklogHandler.Failed", domain.EntityActionLog, ""))
		t.get(r, "/summary", h.Backlog.Summary, meta("BacklogHandler.Summary", domain.EntityActionLog, ""))
		t.get(r, "/stats/module", h.Backlog.ModuleStats, meta("BacklogHandler.ModuleStats", domain.EntityActionLog, ""))
		t.get(r, "/stats/action", h.Backlog.ActionStats, meta("BacklogHandler.ActionStats", domain.EntityActionLog, ""))
		t.get(r, "/search", h.Backlog.Search, meta("BacklogHandler.Search", domain.EntityActionLog, ""))
		t.get(r, "/{id}", h.Backlog.Get, withID(meta("BacklogHandler.Get", domain.EntityActionLog, ""), "id"))
	})

	r.Route("/api/audit", func(r chi.Router) {
		t := t.guarded(middleware.RequireAuth)
		t.get(r, "/my-activity", h.Audit.MyActivity, meta("AuditHandler.MyActivity", domain.EntityAuditLog, ""))
		t.get(r, "/user/{email}", h.Audit.UserActivity, meta("AuditHandler.UserActivity", domain.EntityAuditLog, ""))
		t.get(r, "/entity/{type}/{id}", h.Audit.EntityHistory, meta("AuditHandler.EntityHistory", domain.EntityAuditLog, ""))
		t.get(r, "/range", h.Audit.Between, meta("AuditHandler.Between", domain.EntityAuditLog, ""))
		t.get(r, "/stats", h.Audit.Stats, meta("AuditHandler.Stats", domain.EntityAuditLog, ""))
		t.get(r, "/all", h.Audit.All, meta("AuditHandler.All", domain.EntityAuditLog, ""))
	})

	r.Group(func(r chi.Router) {
		t := t.guarded(middleware.RequireRole(domain.RoleAdmin, domain.RoleManager))

		r.Route("/api/reports", func(r chi.Router) {
			t.get(r, "/summary", h.Report.Summary, meta("ReportHandler.Summary", "", ""))
			t.get(r, "/by-status", h.Report.ByStatus, meta("ReportHandler.ByStatus", "", ""))
			t.get(r, "/by-stage", h.Report.ByStage, meta("ReportHandler.ByStage", "", ""))
			t.get(r, "/high-value", h.Report.HighValue, meta("ReportHandler.HighValue", domain.EntityCase, ""))
			t.get(r, "/overdue", h.Report.Overdue, meta("ReportHandler.Overdue", domain.EntityCase, ""))
			t.get(r, "/collection-trend", h.Report.CollectionTrend, meta("ReportHandler.CollectionTrend", "", ""))
			t.get(r, "/manager-summary", h.Report.ManagerSummary, meta("ReportHandler.ManagerSummary", "", ""))
			t.get(r, "/trend-analysis", h.Report.TrendAnalysis, meta("ReportHandler.TrendAnalysis", "", ""))
		})

		r.Route("/api/export", func(r chi.Router) {
			t.get(r, "/csv", h.Export.CSV, meta("ExportHandler.CSV", domain.EntityCase, ""))
			t.get(r, "/json", h.Export.JSON, meta("ExportHandler.JSON", domain.EntityCase, ""))
			t.get(r, "/summary", h.Export.Summary, meta("ExportHandler.Summary", "", ""))
			t.get(r, "/all", h.Export.All, meta("ExportHandler.All", domain.EntityCase, ""))
			t.get(r, "/count", h.Export.Count, meta("ExportHandler.Count", "", ""))
		})

		t.get(r, "/api/dashboard/summary", h.Dashboard.Summary, meta("DashboardHandler.Summary", "", ""))
	})

	r.Route("/api/ai", func(r chi.Router) {
		t := t.guarded(middleware.RequireAuth)
		t.get(r, "/health", h.AI.Health, meta("AIHandler.Health", "", ""))
		t.get(r, "/score/statistics", h.AI.Statistics, meta("AIHandler.Statistics", domain.EntityCase, ""))
		t.get(r, "/score/top/{limit}", h.AI.Top, meta("AIHandler.Top", domain.EntityCase, ""))
		t.get(r, "/score/{invoiceNumber}", h.AI.Score, withID(meta("AIHandler.Score", domain.EntityCase, ""), "invoiceNumber"))
		t.post(r, "/score/batch", h.AI.Batch, meta("AIHandler.Batch", domain.EntityCase, "BatchScoreRequest"))
		t.post(r, "/score/all-unassigned", h.AI.AllUnassigned, meta("AIHandler.AllUnassigned", domain.EntityCase, ""))
	})

	return r
}

func meta(handler, entityType, requestType string) middleware.RouteMeta {
	return middleware.RouteMeta{
		Handler:     handler,
		EntityType:  entityType,
		RequestType: requestType,
		LogRequest:  true,
	}
}

func withID(m middleware.RouteMeta, param string) middleware.RouteMeta {
	m.EntityIDParam = param
	return m
}

// tracker registers routes wrapped by the action tracker. Guards run inside
// the tracker so rejected requests are logged as failed actions.
type tracker struct {
	at     *middleware.ActionTracker
	guards []middleware.Middleware
}

func (t tracker) guarded(guards ...middleware.Middleware) tracker {
	return tracker{at: t.at, guards: append(slices.Clone(t.guards), guards...)}
}

func (t tracker) handle(r chi.Router, method, pattern string, h http.HandlerFunc, m middleware.RouteMeta) {
	chain := append([]middleware.Middleware{t.at.Route(m)}, t.guards...)
	r.With(chain...).Method(method, pattern, h)
}

func (t tracker) get(r chi.Router, pattern string, h http.HandlerFunc, m middleware.RouteMeta) {
	t.handle(r, http.MethodGet, pattern, h, m)
}

func (t tracker) post(r chi.Router, pattern string, h http.HandlerFunc, m middleware.RouteMeta) {
	t.handle(r, http.MethodPost, pattern, h, m)
}

func (t tracker) put(r chi.Router, pattern string, h http.HandlerFunc, m middleware.RouteMeta) {
	t.handle(r, http.MethodPut, pattern, h, m)
}

func (t tracker) delete(r chi.Router, pattern string, h http.HandlerFunc, m middleware.RouteMeta) {
	t.handle(r, http.MethodDelete, pattern, h, m)
}
