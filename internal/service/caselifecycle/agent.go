package caselifecycle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

const maxMessageLength = 4000

// ChangeStage sets the stage of the agent's investigation of invoice. Any
// stage may follow any other.
func (s *Service) ChangeStage(ctx context.Context, actor domain.Actor, invoice, stage string) (*domain.Investigation, error) {
	if !actor.IsAgent() {
		return nil, domain.NewForbidden("You dont have permission to change this stage")
	}
	newStage, err := domain.ParseStage(stage)
	if err != nil {
		return nil, err
	}

	inv, err := s.ownedInvestigation(ctx, actor, invoice)
	if err != nil {
		return nil, err
	}

	prev := inv.Stage
	if err := s.investigations.UpdateStage(ctx, inv.ID, newStage); err != nil {
		return nil, fmt.Errorf("caselifecycle.ChangeStage: %w", err)
	}
	inv.Stage = newStage

	s.audit.LogStageChange(ctx, actor.Email, invoice, prev, newStage)
	s.log.InfoContext(ctx, "stage changed",
		slog.String("invoice", invoice),
		slog.String("from", prev.String()),
		slog.String("to", newStage.String()))
	return inv, nil
}

// ChangeMessage overwrites the free-text message of the agent's investigation.
func (s *Service) ChangeMessage(ctx context.Context, actor domain.Actor, invoice, message string) (*domain.Investigation, error) {
	if !actor.IsAgent() {
		return nil, domain.NewForbidden("You dont have permission to perform this action")
	}
	if len(message) > maxMessageLength {
		return nil, domain.NewValidationError("message", "Message is too long")
	}

	inv, err := s.ownedInvestigation(ctx, actor, invoice)
	if err != nil {
		return nil, err
	}

	if err := s.investigations.UpdateMessage(ctx, inv.ID, message); err != nil {
		return nil, fmt.Errorf("caselifecycle.ChangeMessage: %w", err)
	}
	inv.Message = message

	s.audit.LogCaseUpdate(ctx, actor.Email, invoice, "Agent message updated")
	return inv, nil
}

// AgentDebts returns the investigations assigned to the agent, with their cases.
func (s *Service) AgentDebts(ctx context.Context, actor domain.Actor) ([]domain.AgentDebt, error) {
	if !actor.IsAgent() {
		return nil, domain.NewForbidden("Only DCA agents have assigned debts")
	}
	debts, err := s.investigations.AgentDebts(ctx, actor.Email)
	if err != nil {
		return nil, fmt.Errorf("caselifecycle.AgentDebts: %w", err)
	}
	return debts, nil
}

// ownedInvestigation loads the investigation of invoice and checks that it is
// assigned to actor.
func (s *Service) ownedInvestigation(ctx context.Context, actor domain.Actor, invoice string) (*domain.Investigation, error) {
	c, err := s.getCase(ctx, invoice)
	if err != nil {
		return nil, err
	}
	inv, err := s.getInvestigation(ctx, c)
	if err != nil {
		return nil, err
	}
	if !inv.OwnedBy(actor.Email) {
		return nil, domain.NewForbidden("Case is not assigned to you")
	}
	return inv, nil
}
