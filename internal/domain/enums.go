package domain

import "strings"

// Role is the access role of a user.
type Role string

const (
	RoleAdmin   Role = "FEDEX_ADMIN"
	RoleManager Role = "DCA_MANAGER"
	RoleAgent   Role = "DCA_AGENT"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleAgent:
		return true
	}
	return false
}

// RequiresAgency reports whether users with this role must belong to an agency.
func (r Role) RequiresAgency() bool {
	return r == RoleManager || r == RoleAgent
}

// ParseRole parses a role name case-insensitively.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !r.IsValid() {
		return "", NewValidationError("role", "invalid role: "+s)
	}
	return r, nil
}

// Status is the case-level assignment state.
type Status string

const (
	StatusUnassigned         Status = "UN_ASSIGNED"
	StatusAssigned           Status = "ASSIGNED"
	StatusAssignedAndWaiting Status = "ASSIGNED_AND_WAITING"
)

// AllStatuses lists statuses in declaration order.
var AllStatuses = []Status{StatusUnassigned, StatusAssigned, StatusAssignedAndWaiting}

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusUnassigned, StatusAssigned, StatusAssignedAndWaiting:
		return true
	}
	return false
}

// ParseStatus parses a case status case-insensitively.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", NewValidationError("status", "invalid status: "+s)
	}
	return st, nil
}

// Stage is the agent-facing workflow label of an investigation.
// Any stage may follow any other.
type Stage string

const (
	StagePending       Stage = "PENDING"
	StageInProgress    Stage = "IN_PROGRESS"
	StagePromisedToPay Stage = "PROMISED_TO_PAY"
	StageDisputed      Stage = "DISPUTED"
	StageCollected     Stage = "COLLECTED"
)

// AllStages lists stages in declaration order.
var AllStages = []Stage{StagePending, StageInProgress, StagePromisedToPay, StageDisputed, StageCollected}

func (s Stage) String() string { return string(s) }

func (s Stage) IsValid() bool {
	switch s {
	case StagePending, StageInProgress, StagePromisedToPay, StageDisputed, StageCollected:
		return true
	}
	return false
}

// IsOpen reports whether the stage counts as pending work.
func (s Stage) IsOpen() bool {
	return s == StagePending || s == StageInProgress
}

// ParseStage parses an investigation stage case-insensitively.
func ParseStage(s string) (Stage, error) {
	st := Stage(strings.ToUpper(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", NewValidationError("stage", "invalid stage: "+s)
	}
	return st, nil
}

// ServiceType is the shipping product the invoice was raised for.
type ServiceType string

const (
	ServiceExpress ServiceType = "EXPRESS"
	ServiceGround  ServiceType = "GROUND"
	ServiceFreight ServiceType = "FREIGHT"
)

func (s ServiceType) String() string { return string(s) }

func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceExpress, ServiceGround, ServiceFreight:
		return true
	}
	return false
}

// ParseServiceType parses a service type case-insensitively.
func ParseServiceType(s string) (ServiceType, error) {
	st := ServiceType(strings.ToUpper(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", NewValidationError("serviceType", "invalid service type: "+s)
	}
	return st, nil
}

// AuditStatus is the outcome recorded on an audit entry.
type AuditStatus string

const (
	AuditSuccess AuditStatus = "SUCCESS"
	AuditFailure AuditStatus = "FAILURE"
	AuditPending AuditStatus = "PENDING"
)

func (s AuditStatus) String() string { return string(s) }

func (s AuditStatus) IsValid() bool {
	switch s {
	case AuditSuccess, AuditFailure, AuditPending:
		return true
	}
	return false
}

// ParseAuditStatus parses an audit status case-insensitively.
func ParseAuditStatus(s string) (AuditStatus, error) {
	st := AuditStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", NewValidationError("status", "invalid audit status: "+s)
	}
	return st, nil
}

// TokenPurpose distinguishes one-time codes.
type TokenPurpose string

const (
	PurposeSignup        TokenPurpose = "SIGNUP"
	PurposePasswordReset TokenPurpose = "PASSWORD_RESET"
)

func (p TokenPurpose) String() string { return string(p) }

func (p TokenPurpose) IsValid() bool {
	switch p {
	case PurposeSignup, PurposePasswordReset:
		return true
	}
	return false
}

// ParseTokenPurpose parses a token purpose case-insensitively.
func ParseTokenPurpose(s string) (TokenPurpose, error) {
	p := TokenPurpose(strings.ToUpper(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", NewValidationError("purpose", "invalid token purpose: "+s)
	}
	return p, nil
}

// Audit actions written by services.
const (
	AuditActionLogin        = "LOGIN"
	AuditActionLogout       = "LOGOUT"
	AuditActionSignup       = "SIGNUP"
	AuditActionPassword     = "PASSWORD_CHANGE"
	AuditActionAssign       = "ASSIGN"
	AuditActionStageChange  = "STAGE_CHANGE"
	AuditActionUpdate       = "UPDATE"
	AuditActionCSVUpload    = "CSV_UPLOAD"
	AuditActionExportCSV    = "EXPORT_CSV"
	AuditActionExportJSON   = "EXPORT_JSON"
	AuditActionUpdateRole   = "UPDATE_ROLE"
	AuditActionUpdateAgency = "UPDATE_AGENCY"
	AuditActionDeleteUser   = "DELETE_USER"
	AuditActionSeed         = "SEED"
)

// Entity types used in audit and action log entries.
const (
	EntityCase          = "Case"
	EntityInvestigation = "Investigation"
	EntityUser          = "User"
	EntityImport        = "Import"
	EntityExport        = "Export"
	EntityActionLog     = "ActionLog"
	EntityAuditLog      = "AuditLog"
	EntitySystem        = "SYSTEM"
)
