package caselifecycle

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

// StatusHistory returns the current state of a case followed by the audited
// changes to the case and its investigation, newest first.
func (s *Service) StatusHistory(ctx context.Context, actor domain.Actor, invoice string) ([]domain.StatusHistoryItem, error) {
	c, err := s.GetCase(ctx, actor, invoice)
	if err != nil {
		return nil, err
	}

	current := domain.StatusHistoryItem{
		Status:      c.Status.String(),
		Action:      "CURRENT",
		Description: "Current state",
		Timestamp:   c.UpdatedAt,
	}
	if c.AssignedTo != nil {
		current.ChangedBy = *c.AssignedTo
	}
	inv, err := s.investigations.GetByCaseID(ctx, c.ID)
	switch {
	case err == nil:
		current.Stage = inv.Stage.String()
		current.ChangedBy = inv.AssignedToEmail
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("caselifecycle.StatusHistory investigation: %w", err)
	}

	var changes []domain.AuditLogEntry
	for _, entityType := range []string{domain.EntityCase, domain.EntityInvestigation} {
		entries, err := s.history.ListByEntity(ctx, entityType, invoice)
		if err != nil {
			return nil, fmt.Errorf("caselifecycle.StatusHistory %s: %w", entityType, err)
		}
		for _, e := range entries {
			if e.Status == domain.AuditSuccess {
				changes = append(changes, e)
			}
		}
	}
	slices.SortStableFunc(changes, func(a, b domain.AuditLogEntry) int {
		return b.Timestamp.Compare(a.Timestamp)
	})

	history := make([]domain.StatusHistoryItem, 0, len(changes)+1)
	history = append(history, current)
	for _, e := range changes {
		history = append(history, domain.StatusHistoryItem{
			Action:      e.Action,
			ChangedBy:   e.UserEmail,
			Description: e.Details,
			Timestamp:   e.Timestamp,
		})
	}
	return history, nil
}
