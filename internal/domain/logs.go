package domain

import (
	"time"

	"github.com/google/uuid"
)

// AnonymousActor is recorded when a request carries no identity.
const AnonymousActor = "ANONYMOUS"

// ActionLogEntry records one intercepted request. Entries are append-only.
type ActionLogEntry struct {
	ID           string
	Action       string
	Module       string
	Description  string
	EntityType   string
	EntityID     string
	RequestData  string
	ResponseData string
	PerformedBy  string
	IPAddress    string
	UserAgent    string
	Timestamp    time.Time
	DurationMs   int64
	Success      bool
	ErrorMessage string
	HTTPMethod   string
	Endpoint     string
}

// AuditLogEntry records a business event written explicitly by a service.
type AuditLogEntry struct {
	ID         uuid.UUID
	UserEmail  string
	Action     string
	EntityType string
	EntityID   string
	Details    string
	IPAddress  string
	Timestamp  time.Time
	Status     AuditStatus
}

// ActionLogFilter narrows action log searches. Zero values mean "any".
type ActionLogFilter struct {
	PerformedBy string
	Module      string
	Action      string
	EntityType  string
	EntityID    string
	Success     *bool
	From        *time.Time
	To          *time.Time
}

// CountItem is a labelled count used by statistics endpoints.
type CountItem struct {
	Key   string `db:"key"`
	Count int64  `db:"count"`
}
