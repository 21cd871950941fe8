package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with the given role and agency and a placeholder
// password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.Role, agency *string) domain.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	u := domain.User{
		ID:           uuid.New(),
		Email:        "user-" + UniqueSuffix() + "@dca.test",
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderplaceho",
		Role:         role,
		AgencyID:     agency,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, password_hash, role, agency_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Email, u.PasswordHash, string(u.Role), u.AgencyID, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return u
}

// SeedCase inserts an unscored case with a unique invoice number.
func SeedCase(t *testing.T, pool *pgxpool.Pool, status domain.Status, agency *string, amount string) domain.Case {
	t.Helper()

	amt := decimal.RequireFromString(amount)
	days, defaults := 30, 0
	name := "Customer " + UniqueSuffix()
	st := domain.ServiceGround
	c := domain.Case{
		InvoiceNumber:   "INV-T-" + UniqueSuffix(),
		CustomerName:    &name,
		Amount:          &amt,
		DaysOverdue:     &days,
		ServiceType:     &st,
		PastDefaults:    &defaults,
		Status:          status,
		AssignedTo:      agency,
		PropensityScore: domain.UnscoredPropensity,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO debt_cases (invoice_number, customer_name, amount, days_overdue, service_type,
		                         past_defaults, status, assigned_to, propensity_score)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at, updated_at`,
		c.InvoiceNumber, c.CustomerName, c.Amount, c.DaysOverdue, string(st),
		c.PastDefaults, string(c.Status), c.AssignedTo, c.PropensityScore,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedCase: %v", err)
	}
	return c
}

// SeedInvestigation attaches an investigation to caseID.
func SeedInvestigation(t *testing.T, pool *pgxpool.Pool, caseID int64, agentEmail string, stage domain.Stage) domain.Investigation {
	t.Helper()

	inv := domain.Investigation{CaseID: caseID, AssignedToEmail: agentEmail, Stage: stage}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO investigations (case_id, assigned_to_email, stage)
		 VALUES ($1, $2, $3)
		 RETURNING id, message, created_at, updated_at`,
		caseID, agentEmail, string(stage),
	).Scan(&inv.ID, &inv.Message, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedInvestigation: %v", err)
	}
	return inv
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
