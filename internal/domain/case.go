package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnscoredPropensity marks a case the scoring service has not seen yet.
const UnscoredPropensity = -1.0

// Case is a debt-recovery record keyed by invoice number.
type Case struct {
	ID              int64
	InvoiceNumber   string
	CustomerName    *string
	Amount          *decimal.Decimal
	DaysOverdue     *int
	ServiceType     *ServiceType
	PastDefaults    *int
	Status          Status
	AssignedTo      *string
	PropensityScore float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsScored reports whether the scoring service has produced a score.
func (c *Case) IsScored() bool {
	return c.PropensityScore >= 0
}

// AmountOrZero returns the amount, treating a missing value as zero.
func (c *Case) AmountOrZero() decimal.Decimal {
	if c.Amount == nil {
		return decimal.Zero
	}
	return *c.Amount
}

// DaysOverdueOrZero returns days overdue, treating a missing value as zero.
func (c *Case) DaysOverdueOrZero() int {
	if c.DaysOverdue == nil {
		return 0
	}
	return *c.DaysOverdue
}

// PastDefaultsOrZero returns past defaults, treating a missing value as zero.
func (c *Case) PastDefaultsOrZero() int {
	if c.PastDefaults == nil {
		return 0
	}
	return *c.PastDefaults
}

// CustomerNameOrEmpty returns the customer name or "".
func (c *Case) CustomerNameOrEmpty() string {
	if c.CustomerName == nil {
		return ""
	}
	return *c.CustomerName
}

// BelongsTo reports whether the case is assigned to the given agency.
func (c *Case) BelongsTo(agencyID string) bool {
	return c.AssignedTo != nil && agencyID != "" && *c.AssignedTo == agencyID
}

// Investigation is the per-case working record of an agent.
type Investigation struct {
	ID              int64
	CaseID          int64
	AssignedToEmail string
	Stage           Stage
	Message         string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OwnedBy reports whether the investigation is assigned to email (case-insensitive).
func (i *Investigation) OwnedBy(email string) bool {
	return NormalizeEmail(i.AssignedToEmail) == NormalizeEmail(email)
}

// CaseDetail is a case together with its investigation, if any.
type CaseDetail struct {
	Case          Case
	Investigation *Investigation
}

// AgentDebt is an investigation joined with its case, as seen by an agent.
type AgentDebt struct {
	Investigation Investigation
	Case          Case
}

// StatusHistoryItem is one point in a case's status/stage history.
type StatusHistoryItem struct {
	Status      string
	Stage       string
	Action      string
	ChangedBy   string
	Description string
	Timestamp   time.Time
}
