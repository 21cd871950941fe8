package caselifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

// BulkUpdateStatus sets the status of every case, and the assignee when
// assignedTo is given (admin only).
func (s *Service) BulkUpdateStatus(ctx context.Context, actor domain.Actor, invoices []string, status string, assignedTo *string) (*domain.BulkResult, error) {
	if !actor.IsAdmin() {
		return nil, domain.NewForbidden("Access denied. Admin role required.")
	}
	if err := requireInvoices(invoices); err != nil {
		return nil, err
	}
	newStatus, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	res := &domain.BulkResult{}
	for _, invoice := range invoices {
		if _, err := s.getCase(ctx, invoice); err != nil {
			res.Fail(itemError(invoice, err))
			continue
		}

		if assignedTo != nil {
			err = s.cases.UpdateAssignment(ctx, invoice, newStatus, assignedTo)
		} else {
			err = s.cases.UpdateStatus(ctx, invoice, newStatus)
		}
		if err != nil {
			res.Fail(itemError(invoice, err))
			continue
		}

		s.audit.LogCaseUpdate(ctx, actor.Email, invoice, "Status changed to "+newStatus.String())
		res.Succeed()
	}

	s.log.InfoContext(ctx, "bulk status update",
		slog.String("status", newStatus.String()),
		slog.Int("succeeded", res.SuccessCount),
		slog.Int("failed", res.FailCount))
	return res, nil
}

// BulkUpdateStage sets the stage of the investigation of every case. Admins
// may touch any case, managers only cases of their agency.
func (s *Service) BulkUpdateStage(ctx context.Context, actor domain.Actor, invoices []string, stage string) (*domain.BulkResult, error) {
	agency, err := s.supervisorScope(ctx, actor)
	if err != nil {
		return nil, err
	}
	if err := requireInvoices(invoices); err != nil {
		return nil, err
	}
	newStage, err := domain.ParseStage(stage)
	if err != nil {
		return nil, err
	}

	res := &domain.BulkResult{}
	for _, invoice := range invoices {
		if err := s.updateStage(ctx, actor, agency, invoice, newStage); err != nil {
			res.Fail(itemError(invoice, err))
			continue
		}
		res.Succeed()
	}
	return res, nil
}

func (s *Service) updateStage(ctx context.Context, actor domain.Actor, agency, invoice string, stage domain.Stage) error {
	c, err := s.getCase(ctx, invoice)
	if err != nil {
		return err
	}
	if agency != "" && !c.BelongsTo(agency) {
		return domain.NewForbidden("Case is not assigned to your agency")
	}
	inv, err := s.getInvestigation(ctx, c)
	if err != nil {
		return err
	}
	if err := s.investigations.UpdateStage(ctx, inv.ID, stage); err != nil {
		return err
	}
	s.audit.LogStageChange(ctx, actor.Email, invoice, inv.Stage, stage)
	return nil
}

// BulkAssign marks every case ASSIGNED to the agent's agency and creates or
// reassigns its investigation to the agent. Admins may assign any case,
// managers only cases of their agency to their own agents.
func (s *Service) BulkAssign(ctx context.Context, actor domain.Actor, invoices []string, agentEmail string) (*domain.BulkResult, error) {
	scope, err := s.supervisorScope(ctx, actor)
	if err != nil {
		return nil, err
	}
	if err := requireInvoices(invoices); err != nil {
		return nil, err
	}

	agent, err := s.users.GetByEmail(ctx, domain.NormalizeEmail(agentEmail))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFound("Agent not found: %s", agentEmail)
		}
		return nil, fmt.Errorf("caselifecycle.BulkAssign get agent: %w", err)
	}
	if agent.Role != domain.RoleAgent || agent.AgencyOrEmpty() == "" {
		return nil, domain.NewValidationError("agentEmail", agent.Email+" is not a DCA agent")
	}
	if scope != "" && agent.AgencyOrEmpty() != scope {
		return nil, domain.NewForbidden("Agent belongs to another agency")
	}
	agency := agent.AgencyOrEmpty()

	res := &domain.BulkResult{}
	for _, invoice := range invoices {
		err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
			c, err := s.getCase(ctx, invoice)
			if err != nil {
				return err
			}
			if scope != "" && !c.BelongsTo(scope) {
				return domain.NewForbidden("Case is not assigned to your agency")
			}
			if err := s.cases.UpdateAssignment(ctx, invoice, domain.StatusAssigned, &agency); err != nil {
				return err
			}
			_, err = s.investigations.Upsert(ctx, c.ID, agent.Email)
			return err
		})
		if err != nil {
			res.Fail(itemError(invoice, err))
			continue
		}
		s.audit.LogCaseAssignment(ctx, actor.Email, invoice, agent.Email)
		res.Succeed()
	}

	if res.SuccessCount > 0 {
		s.notifyAgent(ctx, agent.Email, res.SuccessCount)
	}
	return res, nil
}

// supervisorScope returns "" for admins and the agency of managers. Other
// roles are rejected.
func (s *Service) supervisorScope(ctx context.Context, actor domain.Actor) (string, error) {
	switch {
	case actor.IsAdmin():
		return "", nil
	case actor.IsManager():
		return s.currentAgency(ctx, actor)
	default:
		return "", domain.NewForbidden("You dont have permissions to perform this action")
	}
}
