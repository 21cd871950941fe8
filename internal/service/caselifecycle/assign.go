package caselifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

// AssignCasesToAgency marks each case ASSIGNED to agencyID (admin only).
// Unknown invoices fail individually; the rest of the batch is applied.
// The managers of the agency are notified once if anything was assigned.
func (s *Service) AssignCasesToAgency(ctx context.Context, actor domain.Actor, invoices []string, agencyID string) (*domain.BulkResult, error) {
	if !actor.IsAdmin() {
		return nil, domain.NewForbidden("You dont have enough permissions to do this action")
	}
	if err := requireInvoices(invoices); err != nil {
		return nil, err
	}
	agencyID = strings.TrimSpace(agencyID)
	if agencyID == "" {
		return nil, domain.NewValidationError("agencyId", "Agency is required")
	}

	res := &domain.BulkResult{}
	for _, invoice := range invoices {
		if err := s.assignToAgency(ctx, actor, invoice, agencyID); err != nil {
			res.Fail(itemError(invoice, err))
			continue
		}
		res.Succeed()
	}

	if res.SuccessCount > 0 {
		s.notifyManagers(ctx, agencyID, res.SuccessCount)
	}

	s.log.InfoContext(ctx, "cases assigned to agency",
		slog.String("agency_id", agencyID),
		slog.Int("assigned", res.SuccessCount),
		slog.Int("failed", res.FailCount))
	return res, nil
}

func (s *Service) assignToAgency(ctx context.Context, actor domain.Actor, invoice, agencyID string) error {
	if _, err := s.getCase(ctx, invoice); err != nil {
		return err
	}
	if err := s.cases.UpdateAssignment(ctx, invoice, domain.StatusAssigned, &agencyID); err != nil {
		return err
	}
	s.audit.LogCaseAssignment(ctx, actor.Email, invoice, agencyID)
	return nil
}

// AssignCaseToAgent assigns one case of the manager's agency to an agent of
// the same agency. The investigation is created PENDING, or reassigned with
// its stage kept. The case status is not changed.
func (s *Service) AssignCaseToAgent(ctx context.Context, actor domain.Actor, invoice, agentEmail string) (*domain.Investigation, error) {
	agency, agent, err := s.agentAssignment(ctx, actor, agentEmail)
	if err != nil {
		return nil, err
	}

	inv, err := s.assignToAgent(ctx, actor, agency, invoice, agent.Email)
	if err != nil {
		return nil, err
	}
	s.notifyAgent(ctx, agent.Email, 1)
	return inv, nil
}

// AssignCasesToAgent is the batch form of AssignCaseToAgent.
func (s *Service) AssignCasesToAgent(ctx context.Context, actor domain.Actor, invoices []string, agentEmail string) (*domain.BulkResult, error) {
	if err := requireInvoices(invoices); err != nil {
		return nil, err
	}
	agency, agent, err := s.agentAssignment(ctx, actor, agentEmail)
	if err != nil {
		return nil, err
	}

	res := &domain.BulkResult{}
	for _, invoice := range invoices {
		if _, err := s.assignToAgent(ctx, actor, agency, invoice, agent.Email); err != nil {
			res.Fail(itemError(invoice, err))
			continue
		}
		res.Succeed()
	}

	if res.SuccessCount > 0 {
		s.notifyAgent(ctx, agent.Email, res.SuccessCount)
	}
	return res, nil
}

// agentAssignment checks that actor is a manager and agentEmail is an agent
// of the manager's agency. It returns the agency and the agent.
func (s *Service) agentAssignment(ctx context.Context, actor domain.Actor, agentEmail string) (string, *domain.User, error) {
	if !actor.IsManager() {
		return "", nil, domain.NewForbidden("You dont have permissions to perform this action")
	}
	agentEmail = domain.NormalizeEmail(agentEmail)
	if agentEmail == "" {
		return "", nil, domain.NewValidationError("agentEmail", "Agent email is required")
	}

	agency, err := s.currentAgency(ctx, actor)
	if err != nil {
		return "", nil, err
	}

	agent, err := s.users.GetByEmail(ctx, agentEmail)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.NewNotFound("Agent not found: %s", agentEmail)
		}
		return "", nil, fmt.Errorf("caselifecycle: get agent: %w", err)
	}
	if agent.Role != domain.RoleAgent {
		return "", nil, domain.NewValidationError("agentEmail", agentEmail+" is not a DCA agent")
	}
	if agent.AgencyOrEmpty() != agency {
		return "", nil, domain.NewForbidden("Agent belongs to another agency")
	}
	return agency, agent, nil
}

func (s *Service) assignToAgent(ctx context.Context, actor domain.Actor, agency, invoice, agentEmail string) (*domain.Investigation, error) {
	c, err := s.getCase(ctx, invoice)
	if err != nil {
		return nil, err
	}
	if !c.BelongsTo(agency) {
		return nil, domain.NewForbidden("Case is not assigned to your agency")
	}

	inv, err := s.investigations.Upsert(ctx, c.ID, agentEmail)
	if err != nil {
		return nil, fmt.Errorf("assign %s: %w", invoice, err)
	}
	s.audit.LogCaseAssignment(ctx, actor.Email, invoice, agentEmail)
	return inv, nil
}
