package investigation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

type agentDebtRow struct {
	ID              int64            `db:"id"`
	CaseID          int64            `db:"case_id"`
	AssignedToEmail string           `db:"assigned_to_email"`
	Stage           string           `db:"stage"`
	Message         string           `db:"message"`
	CreatedAt       time.Time        `db:"created_at"`
	UpdatedAt       time.Time        `db:"updated_at"`
	InvoiceNumber   string           `db:"invoice_number"`
	CustomerName    *string          `db:"customer_name"`
	Amount          *decimal.Decimal `db:"amount"`
	DaysOverdue     *int             `db:"days_overdue"`
	ServiceType     *string          `db:"service_type"`
	PastDefaults    *int             `db:"past_defaults"`
	Status          string           `db:"status"`
	AssignedTo      *string          `db:"assigned_to"`
	PropensityScore float64          `db:"propensity_score"`
}

func (r agentDebtRow) toDomain() domain.AgentDebt {
	c := domain.Case{
		ID:              r.CaseID,
		InvoiceNumber:   r.InvoiceNumber,
		CustomerName:    r.CustomerName,
		Amount:          r.Amount,
		DaysOverdue:     r.DaysOverdue,
		PastDefaults:    r.PastDefaults,
		Status:          domain.Status(r.Status),
		AssignedTo:      r.AssignedTo,
		PropensityScore: r.PropensityScore,
	}
	if r.ServiceType != nil {
		st := domain.ServiceType(*r.ServiceType)
		c.ServiceType = &st
	}
	inv := investigationRow{
		ID:              r.ID,
		CaseID:          r.CaseID,
		AssignedToEmail: r.AssignedToEmail,
		Stage:           r.Stage,
		Message:         r.Message,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	return domain.AgentDebt{Investigation: inv.toDomain(), Case: c}
}
