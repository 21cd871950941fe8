package rest

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

type caseResponse struct {
	ID              int64            `json:"id"`
	InvoiceNumber   string           `json:"invoiceNumber"`
	CustomerName    *string          `json:"customerName"`
	Amount          *decimal.Decimal `json:"amount"`
	DaysOverdue     *int             `json:"daysOverdue"`
	ServiceType     *string          `json:"serviceType"`
	PastDefaults    *int             `json:"pastDefaults"`
	Status          string           `json:"status"`
	AssignedTo      *string          `json:"assignedTo"`
	PropensityScore float64          `json:"propensityScore"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

func toCase(c *domain.Case) caseResponse {
	out := caseResponse{
		ID:              c.ID,
		InvoiceNumber:   c.InvoiceNumber,
		CustomerName:    c.CustomerName,
		Amount:          c.Amount,
		DaysOverdue:     c.DaysOverdue,
		PastDefaults:    c.PastDefaults,
		Status:          c.Status.String(),
		AssignedTo:      c.AssignedTo,
		PropensityScore: c.PropensityScore,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
	if c.ServiceType != nil {
		st := c.ServiceType.String()
		out.ServiceType = &st
	}
	return out
}

func toCases(cases []domain.Case) []caseResponse {
	out := make([]caseResponse, len(cases))
	for i := range cases {
		out[i] = toCase(&cases[i])
	}
	return out
}

type investigationResponse struct {
	ID            int64     `json:"id"`
	CaseID        int64     `json:"caseId"`
	InvoiceNumber string    `json:"invoiceNumber,omitempty"`
	AssignedTo    string    `json:"assignedTo"`
	Stage         string    `json:"stage"`
	Message       string    `json:"message"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func toInvestigation(inv *domain.Investigation, invoice string) investigationResponse {
	return investigationResponse{
		ID:            inv.ID,
		CaseID:        inv.CaseID,
		InvoiceNumber: invoice,
		AssignedTo:    inv.AssignedToEmail,
		Stage:         inv.Stage.String(),
		Message:       inv.Message,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
}

type caseDetailResponse struct {
	Case          caseResponse           `json:"case"`
	Investigation *investigationResponse `json:"investigation"`
}

func toCaseDetail(d *domain.CaseDetail) caseDetailResponse {
	out := caseDetailResponse{Case: toCase(&d.Case)}
	if d.Investigation != nil {
		inv := toInvestigation(d.Investigation, d.Case.InvoiceNumber)
		out.Investigation = &inv
	}
	return out
}

func toCaseDetails(details []domain.CaseDetail) []caseDetailResponse {
	out := make([]caseDetailResponse, len(details))
	for i := range details {
		out[i] = toCaseDetail(&details[i])
	}
	return out
}

type agentDebtResponse struct {
	investigationResponse
	Case caseResponse `json:"case"`
}

func toAgentDebts(debts []domain.AgentDebt) []agentDebtResponse {
	out := make([]agentDebtResponse, len(debts))
	for i := range debts {
		d := &debts[i]
		out[i] = agentDebtResponse{
			investigationResponse: toInvestigation(&d.Investigation, d.Case.InvoiceNumber),
			Case:                  toCase(&d.Case),
		}
	}
	return out
}

type bulkResponse struct {
	SuccessCount   int      `json:"successCount"`
	FailCount      int      `json:"failCount"`
	TotalProcessed int      `json:"totalProcessed"`
	Errors         []string `json:"errors"`
	Message        string   `json:"message"`
}

func toBulk(res *domain.BulkResult, op string) bulkResponse {
	errs := res.Errors
	if errs == nil {
		errs = []string{}
	}
	return bulkResponse{
		SuccessCount:   res.SuccessCount,
		FailCount:      res.FailCount,
		TotalProcessed: res.Total(),
		Errors:         errs,
		Message:        res.Message(op),
	}
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	AgencyID  *string   `json:"agencyId"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUser(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Role:      u.Role.String(),
		AgencyID:  u.AgencyID,
		CreatedAt: u.CreatedAt,
	}
}

func toUsers(users []domain.User) []userResponse {
	out := make([]userResponse, len(users))
	for i := range users {
		out[i] = toUser(&users[i])
	}
	return out
}

type historyResponse struct {
	Status      string    `json:"status,omitempty"`
	Stage       string    `json:"stage,omitempty"`
	Action      string    `json:"action"`
	ChangedBy   string    `json:"changedBy"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

func toHistory(items []domain.StatusHistoryItem) []historyResponse {
	out := make([]historyResponse, len(items))
	for i, it := range items {
		out[i] = historyResponse(it)
	}
	return out
}

type actionLogResponse struct {
	ID           string    `json:"id"`
	Action       string    `json:"action"`
	Module       string    `json:"module"`
	Description  string    `json:"description"`
	EntityType   string    `json:"entityType,omitempty"`
	EntityID     string    `json:"entityId,omitempty"`
	RequestData  string    `json:"requestData,omitempty"`
	ResponseData string    `json:"responseData,omitempty"`
	PerformedBy  string    `json:"performedBy"`
	IPAddress    string    `json:"ipAddress,omitempty"`
	UserAgent    string    `json:"userAgent,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
	DurationMs   int64     `json:"durationMs"`
	Success      bool      `json:"success"`
	ErrorMessage string    `json:"errorMessage,omitempty"`
	HTTPMethod   string    `json:"httpMethod,omitempty"`
	Endpoint     string    `json:"endpoint,omitempty"`
}

func toActionLogs(entries []domain.ActionLogEntry) []actionLogResponse {
	out := make([]actionLogResponse, len(entries))
	for i, e := range entries {
		out[i] = actionLogResponse(e)
	}
	return out
}

type auditLogResponse struct {
	ID         string    `json:"id"`
	UserEmail  string    `json:"userEmail"`
	Action     string    `json:"action"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityId"`
	Details    string    `json:"details"`
	IPAddress  string    `json:"ipAddress,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	Status     string    `json:"status"`
}

func toAuditLogs(entries []domain.AuditLogEntry) []auditLogResponse {
	out := make([]auditLogResponse, len(entries))
	for i, e := range entries {
		out[i] = auditLogResponse{
			ID:         e.ID.String(),
			UserEmail:  e.UserEmail,
			Action:     e.Action,
			EntityType: e.EntityType,
			EntityID:   e.EntityID,
			Details:    e.Details,
			IPAddress:  e.IPAddress,
			Timestamp:  e.Timestamp,
			Status:     string(e.Status),
		}
	}
	return out
}

type pageResponse[T any] struct {
	Content       []T `json:"content"`
	Page          int `json:"page"`
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
}

func toPage[S, T any](p domain.Page[S], conv func([]S) []T) pageResponse[T] {
	return pageResponse[T]{
		Content:       conv(p.Items),
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
	}
}

type countResponse struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

func toCounts(items []domain.CountItem) []countResponse {
	out := make([]countResponse, len(items))
	for i, it := range items {
		out[i] = countResponse(it)
	}
	return out
}
