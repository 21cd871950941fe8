package actionlog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

// Summary aggregates action log activity over a window.
type Summary struct {
	PeriodHours     int
	TotalActivities int64
	FailedCount     int64
	ModuleStats     []domain.CountItem
	ActionStats     []domain.CountItem
}

// All returns a page of every entry, newest first.
func (s *Service) All(ctx context.Context, actor domain.Actor, page domain.PageRequest) (domain.Page[domain.ActionLogEntry], error) {
	return s.search(ctx, actor, domain.ActionLogFilter{}, page, "All")
}

// Get returns one entry.
func (s *Service) Get(ctx context.Context, actor domain.Actor, id string) (*domain.ActionLogEntry, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFound("Log entry not found: %s", id)
		}
		return nil, fmt.Errorf("actionlog.Get: %w", err)
	}
	return e, nil
}

// ByUser returns the entries performed by email, newest first.
func (s *Service) ByUser(ctx context.Context, actor domain.Actor, email string) ([]domain.ActionLogEntry, error) {
	return s.list(ctx, actor, domain.ActionLogFilter{PerformedBy: email}, "ByUser")
}

// RecentByUser returns the entries performed by email in the last hours.
func (s *Service) RecentByUser(ctx context.Context, actor domain.Actor, email string, hours int) ([]domain.ActionLogEntry, error) {
	since := s.since(hours)
	return s.list(ctx, actor, domain.ActionLogFilter{PerformedBy: email, From: &since}, "RecentByUser")
}

func (s *Service) ByModule(ctx context.Context, actor domain.Actor, module string) ([]domain.ActionLogEntry, error) {
	return s.list(ctx, actor, domain.ActionLogFilter{Module: module}, "ByModule")
}

func (s *Service) ByAction(ctx context.Context, actor domain.Actor, action string) ([]domain.ActionLogEntry, error) {
	return s.list(ctx, actor, domain.ActionLogFilter{Action: action}, "ByAction")
}

func (s *Service) ByEntity(ctx context.Context, actor domain.Actor, entityType, entityID string) ([]domain.ActionLogEntry, error) {
	return s.list(ctx, actor, domain.ActionLogFilter{EntityType: entityType, EntityID: entityID}, "ByEntity")
}

// Between returns a page of entries with a timestamp in [from, to].
func (s *Service) Between(ctx context.Context, actor domain.Actor, from, to time.Time, page domain.PageRequest) (domain.Page[domain.ActionLogEntry], error) {
	if to.Before(from) {
		return domain.Page[domain.ActionLogEntry]{}, domain.NewValidationError("end", "must not be before start")
	}
	return s.search(ctx, actor, domain.ActionLogFilter{From: &from, To: &to}, page, "Between")
}

// Failed returns a page of failed requests.
func (s *Service) Failed(ctx context.Context, actor domain.Actor, page domain.PageRequest) (domain.Page[domain.ActionLogEntry], error) {
	failed := false
	return s.search(ctx, actor, domain.ActionLogFilter{Success: &failed}, page, "Failed")
}

// Search combines the optional module, action and user predicates with a
// mandatory time range.
func (s *Service) Search(ctx context.Context, actor domain.Actor, f domain.ActionLogFilter, page domain.PageRequest) (domain.Page[domain.ActionLogEntry], error) {
	if f.From == nil || f.To == nil {
		return domain.Page[domain.ActionLogEntry]{}, domain.NewValidationError("start", "start and end are required")
	}
	if f.To.Before(*f.From) {
		return domain.Page[domain.ActionLogEntry]{}, domain.NewValidationError("end", "must not be before start")
	}
	return s.search(ctx, actor, f, page, "Search")
}

// Summary counts activity of the last hours, overall and per module and action.
func (s *Service) Summary(ctx context.Context, actor domain.Actor, hours int) (*Summary, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	hours = clampHours(hours)
	since := s.since(hours)

	total, err := s.repo.CountSince(ctx, since, false)
	if err != nil {
		return nil, fmt.Errorf("actionlog.Summary total: %w", err)
	}
	failed, err := s.repo.CountSince(ctx, since, true)
	if err != nil {
		return nil, fmt.Errorf("actionlog.Summary failed: %w", err)
	}
	modules, err := s.repo.CountByModuleSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("actionlog.Summary modules: %w", err)
	}
	actions, err := s.repo.CountByActionSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("actionlog.Summary actions: %w", err)
	}
	return &Summary{
		PeriodHours:     hours,
		TotalActivities: total,
		FailedCount:     failed,
		ModuleStats:     modules,
		ActionStats:     actions,
	}, nil
}

func (s *Service) ModuleStats(ctx context.Context, actor domain.Actor, hours int) ([]domain.CountItem, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	items, err := s.repo.CountByModuleSince(ctx, s.since(hours))
	if err != nil {
		return nil, fmt.Errorf("actionlog.ModuleStats: %w", err)
	}
	return items, nil
}

func (s *Service) ActionStats(ctx context.Context, actor domain.Actor, hours int) ([]domain.CountItem, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	items, err := s.repo.CountByActionSince(ctx, s.since(hours))
	if err != nil {
		return nil, fmt.Errorf("actionlog.ActionStats: %w", err)
	}
	return items, nil
}

func (s *Service) list(ctx context.Context, actor domain.Actor, f domain.ActionLogFilter, op string) ([]domain.ActionLogEntry, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	entries, err := s.repo.ListAll(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("actionlog.%s: %w", op, err)
	}
	return entries, nil
}

func (s *Service) search(ctx context.Context, actor domain.Actor, f domain.ActionLogFilter, page domain.PageRequest, op string) (domain.Page[domain.ActionLogEntry], error) {
	if err := requireAdmin(actor); err != nil {
		return domain.Page[domain.ActionLogEntry]{}, err
	}
	p, err := s.repo.Search(ctx, f, page.Normalize())
	if err != nil {
		return p, fmt.Errorf("actionlog.%s: %w", op, err)
	}
	return p, nil
}

func (s *Service) since(hours int) time.Time {
	return s.now().Add(-time.Duration(clampHours(hours)) * time.Hour)
}

func clampHours(hours int) int {
	if hours <= 0 {
		return defaultHours
	}
	return min(hours, maxHours)
}

func requireAdmin(actor domain.Actor) error {
	if !actor.IsAdmin() {
		return domain.NewForbidden("Access denied. Admin role required.")
	}
	return nil
}
