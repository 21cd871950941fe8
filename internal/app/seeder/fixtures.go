package seeder

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

//go:embed sample.yaml
var sampleFixtures []byte

// Fixtures is the content of a seed file.
type Fixtures struct {
	Password       string               `yaml:"password"`
	MarkerID       string               `yaml:"marker_id"`
	Users          []UserFixture        `yaml:"users"`
	Cases          []CaseFixture        `yaml:"cases"`
	Investigations []InvestigationEntry `yaml:"investigations"`
}

// UserFixture is a seeded account. An empty Password falls back to the
// file-level password.
type UserFixture struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
	AgencyID string `yaml:"agency_id"`
}

// CaseFixture is a seeded debt case.
type CaseFixture struct {
	InvoiceNumber   string   `yaml:"invoice_number"`
	CustomerName    string   `yaml:"customer_name"`
	Amount          string   `yaml:"amount"`
	DaysOverdue     int      `yaml:"days_overdue"`
	ServiceType     string   `yaml:"service_type"`
	PastDefaults    int      `yaml:"past_defaults"`
	Status          string   `yaml:"status"`
	AssignedTo      string   `yaml:"assigned_to"`
	PropensityScore *float64 `yaml:"propensity_score"`
}

// InvestigationEntry is a seeded investigation, keyed by invoice.
type InvestigationEntry struct {
	InvoiceNumber string `yaml:"invoice_number"`
	AgentEmail    string `yaml:"agent_email"`
	Stage         string `yaml:"stage"`
	Message       string `yaml:"message"`
}

// LoadFixtures reads a seed file. An empty path loads the bundled sample data.
func LoadFixtures(path string) (*Fixtures, error) {
	data := sampleFixtures
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("seeder: read %s: %w", path, err)
		}
	}
	return ParseFixtures(data)
}

// ParseFixtures decodes and validates seed YAML.
func ParseFixtures(data []byte) (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("seeder: decode fixtures: %w", err)
	}
	if f.MarkerID == "" {
		f.MarkerID = "SAMPLE_DATA_V1"
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *Fixtures) validate() error {
	var errs []domain.FieldError
	add := func(field, format string, args ...any) {
		errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	for i, u := range f.Users {
		field := fmt.Sprintf("users[%d]", i)
		if !domain.ValidEmail(u.Email) {
			add(field, "invalid email %q", u.Email)
		}
		role, err := domain.ParseRole(u.Role)
		if err != nil {
			add(field, "invalid role %q", u.Role)
		} else if role.RequiresAgency() && strings.TrimSpace(u.AgencyID) == "" {
			add(field, "%s requires agency_id", role)
		}
		if u.Password == "" && f.Password == "" {
			add(field, "no password for %s", u.Email)
		}
	}
	for i, c := range f.Cases {
		field := fmt.Sprintf("cases[%d]", i)
		if strings.TrimSpace(c.InvoiceNumber) == "" {
			add(field, "invoice_number is required")
		}
		if _, err := decimal.NewFromString(c.Amount); err != nil {
			add(field, "invalid amount %q", c.Amount)
		}
		if _, err := domain.ParseServiceType(c.ServiceType); err != nil {
			add(field, "invalid service_type %q", c.ServiceType)
		}
		if c.Status != "" {
			if _, err := domain.ParseStatus(c.Status); err != nil {
				add(field, "invalid status %q", c.Status)
			}
		}
	}
	for i, inv := range f.Investigations {
		field := fmt.Sprintf("investigations[%d]", i)
		if _, err := domain.ParseStage(inv.Stage); err != nil {
			add(field, "invalid stage %q", inv.Stage)
		}
		if !domain.ValidEmail(inv.AgentEmail) {
			add(field, "invalid agent_email %q", inv.AgentEmail)
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (u UserFixture) toDomain(passwordHash string) domain.User {
	role, _ := domain.ParseRole(u.Role)
	out := domain.User{
		Email:        domain.NormalizeEmail(u.Email),
		PasswordHash: passwordHash,
		Role:         role,
	}
	if a := strings.TrimSpace(u.AgencyID); a != "" {
		out.AgencyID = &a
	}
	return out
}

func (c CaseFixture) toDomain() domain.Case {
	amount, _ := decimal.NewFromString(c.Amount)
	st, _ := domain.ParseServiceType(c.ServiceType)
	status := domain.StatusUnassigned
	if c.Status != "" {
		status, _ = domain.ParseStatus(c.Status)
	}
	out := domain.Case{
		InvoiceNumber:   c.InvoiceNumber,
		Amount:          &amount,
		DaysOverdue:     &c.DaysOverdue,
		ServiceType:     &st,
		PastDefaults:    &c.PastDefaults,
		Status:          status,
		PropensityScore: domain.UnscoredPropensity,
	}
	if c.CustomerName != "" {
		name := c.CustomerName
		out.CustomerName = &name
	}
	if c.AssignedTo != "" {
		agency := c.AssignedTo
		out.AssignedTo = &agency
	}
	if c.PropensityScore != nil {
		out.PropensityScore = *c.PropensityScore
	}
	return out
}
