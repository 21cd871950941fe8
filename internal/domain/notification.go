package domain

import "time"

// Notification kinds.
const (
	NotifyCasesAssigned = "CASES_ASSIGNED"
	NotifyAgentAssigned = "AGENT_ASSIGNED"
	NotifySignupCode    = "SIGNUP_CODE"
	NotifyPasswordReset = "PASSWORD_RESET"
)

// Notification is a message for a single recipient.
type Notification struct {
	Kind      string            `json:"kind"`
	Recipient string            `json:"recipient"`
	Subject   string            `json:"subject"`
	Body      string            `json:"body"`
	Data      map[string]string `json:"data,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}
