package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

// allPhases defines the canonical execution order.
var allPhases = []string{"users", "cases", "investigations", "history"}

const seedActor = "seed@system"

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Updated  int
	Skipped  int
	Errors   int
	Duration time.Duration
	Err      error
}

// Hasher turns a plain password into a stored hash.
type Hasher func(password string) (string, error)

// BcryptHasher hashes with the given bcrypt cost.
func BcryptHasher(cost int) Hasher {
	return func(password string) (string, error) {
		b, err := bcrypt.GenerateFromPassword([]byte(password), cost)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

// Pipeline writes a set of fixtures phase by phase.
type Pipeline struct {
	log      *slog.Logger
	stores   Stores
	fixtures *Fixtures
	hash     Hasher
	now      func() time.Time
	results  map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, stores Stores, fixtures *Fixtures, hash Hasher) *Pipeline {
	return &Pipeline{
		log:      log.With("component", "seeder"),
		stores:   stores,
		fixtures: fixtures,
		hash:     hash,
		now:      func() time.Time { return time.Now().UTC() },
		results:  make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil || r.Errors > 0 {
			return true
		}
	}
	return false
}

// Run executes the pipeline. If phases is non-empty, only the listed phases
// run. Each phase commits in its own transaction.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	toRun, err := selectPhases(phases)
	if err != nil {
		return err
	}

	for _, phase := range toRun {
		if err := ctx.Err(); err != nil {
			return err
		}
		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		result.Err = p.stores.Tx.RunInTx(ctx, func(ctx context.Context) error {
			var err error
			switch phase {
			case "users":
				result, err = p.runUsers(ctx)
			case "cases":
				result, err = p.runCases(ctx)
			case "investigations":
				result, err = p.runInvestigations(ctx)
			case "history":
				result, err = p.runHistory(ctx)
			}
			return err
		})
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
			continue
		}
		p.log.Info("phase completed",
			slog.String("phase", phase),
			slog.Int("inserted", result.Inserted),
			slog.Int("updated", result.Updated),
			slog.Int("skipped", result.Skipped),
			slog.Duration("duration", result.Duration),
		)
	}
	return nil
}

func selectPhases(phases []string) ([]string, error) {
	if len(phases) == 0 {
		return allPhases, nil
	}
	filter := make(map[string]bool, len(phases))
	for _, ph := range phases {
		filter[ph] = true
	}
	var out []string
	for _, ph := range allPhases {
		if filter[ph] {
			out = append(out, ph)
			delete(filter, ph)
		}
	}
	for ph := range filter {
		return nil, fmt.Errorf("seeder: unknown phase %q", ph)
	}
	return out, nil
}

func (p *Pipeline) runUsers(ctx context.Context) (PhaseResult, error) {
	var res PhaseResult
	hashes := make(map[string]string)
	for _, fx := range p.fixtures.Users {
		password := fx.Password
		if password == "" {
			password = p.fixtures.Password
		}
		hash, ok := hashes[password]
		if !ok {
			var err error
			if hash, err = p.hash(password); err != nil {
				return res, fmt.Errorf("hash password for %s: %w", fx.Email, err)
			}
			hashes[password] = hash
		}

		u := fx.toDomain(hash)
		saved, err := p.stores.Users.Upsert(ctx, &u)
		if err != nil {
			return res, fmt.Errorf("upsert user %s: %w", u.Email, err)
		}
		countWrite(&res, saved.CreatedAt, saved.UpdatedAt)
	}
	return res, nil
}

func (p *Pipeline) runCases(ctx context.Context) (PhaseResult, error) {
	var res PhaseResult
	for _, fx := range p.fixtures.Cases {
		c := fx.toDomain()
		saved, err := p.stores.Cases.Upsert(ctx, &c)
		if err != nil {
			return res, fmt.Errorf("upsert case %s: %w", c.InvoiceNumber, err)
		}
		countWrite(&res, saved.CreatedAt, saved.UpdatedAt)
	}
	return res, nil
}

// runInvestigations skips entries whose case does not exist yet.
func (p *Pipeline) runInvestigations(ctx context.Context) (PhaseResult, error) {
	var res PhaseResult
	for _, fx := range p.fixtures.Investigations {
		c, err := p.stores.Cases.GetByInvoice(ctx, fx.InvoiceNumber)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				p.log.Warn("investigation without case",
					slog.String("invoice", fx.InvoiceNumber))
				res.Skipped++
				continue
			}
			return res, fmt.Errorf("lookup case %s: %w", fx.InvoiceNumber, err)
		}

		stage, _ := domain.ParseStage(fx.Stage)
		inv := &domain.Investigation{
			CaseID:          c.ID,
			AssignedToEmail: domain.NormalizeEmail(fx.AgentEmail),
			Stage:           stage,
			Message:         fx.Message,
		}
		if err := p.stores.Investigations.Put(ctx, inv); err != nil {
			return res, fmt.Errorf("put investigation %s: %w", fx.InvoiceNumber, err)
		}
		res.Inserted++
	}
	return res, nil
}

// runHistory writes the sample audit and action log rows once, guarded by a
// marker audit entry.
func (p *Pipeline) runHistory(ctx context.Context) (PhaseResult, error) {
	var res PhaseResult
	exists, err := p.stores.Audit.ExistsMarker(ctx, domain.AuditActionSeed, domain.EntitySystem, p.fixtures.MarkerID)
	if err != nil {
		return res, fmt.Errorf("check seed marker: %w", err)
	}
	if exists {
		res.Skipped++
		return res, nil
	}

	now := p.now()
	audits := []domain.AuditLogEntry{
		{
			UserEmail:  seedActor,
			Action:     domain.AuditActionSeed,
			EntityType: domain.EntitySystem,
			EntityID:   p.fixtures.MarkerID,
			Details:    "Initialized sample data",
		},
		{
			UserEmail:  "admin@fedex.local",
			Action:     domain.AuditActionLogin,
			EntityType: domain.EntityUser,
			EntityID:   "admin@fedex.local",
			Details:    "Sample login",
		},
		{
			UserEmail:  "manager@dca.local",
			Action:     domain.AuditActionAssign,
			EntityType: domain.EntityCase,
			EntityID:   "INV-10002",
			Details:    "Sample assignment to AGENCY_ALPHA",
		},
	}
	for i := range audits {
		audits[i].IPAddress = "127.0.0.1"
		audits[i].Timestamp = now
		if err := p.stores.Audit.Create(ctx, &audits[i]); err != nil {
			return res, fmt.Errorf("create audit entry: %w", err)
		}
		res.Inserted++
	}

	actions := []domain.ActionLogEntry{
		{Action: "INIT", Module: "SEED", Description: "Sample data initialized", PerformedBy: seedActor},
		{Action: "CSV_UPLOAD", Module: "CSV", Description: "Sample CSV upload", PerformedBy: "admin@fedex.local", EntityType: domain.EntityImport},
		{Action: "ASSIGN", Module: "DEBT", Description: "Sample case assignment", PerformedBy: "manager@dca.local", EntityType: domain.EntityCase, EntityID: "INV-10002"},
	}
	for i := range actions {
		actions[i].IPAddress = "127.0.0.1"
		actions[i].UserAgent = "SampleDataInitializer"
		actions[i].Timestamp = now
		actions[i].Success = true
		if err := p.stores.Actions.Create(ctx, &actions[i]); err != nil {
			return res, fmt.Errorf("create action log entry: %w", err)
		}
		res.Inserted++
	}
	return res, nil
}

func countWrite(res *PhaseResult, created, updated time.Time) {
	if updated.After(created) {
		res.Updated++
		return
	}
	res.Inserted++
}
