package caselifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

const managerNotice = `Hello,
You have been assigned new debt recovery cases.
Please log in to your dashboard to review the case details, check the customer profiles, and begin the outreach process.
All updates and call logs must be recorded directly in the portal for compliance.
Regards,
FedEx System Administrator`

const agentNotice = `Hello,

You have been assigned new debt recovery cases.
Please log in to your dashboard to review the customer details, check the overdue invoices,
and begin the outreach process.
All communication logs and payment promises must be updated directly in the system.
Regards,
DCA Management System`

// notifyManagers tells every manager of agencyID about new cases. Delivery
// failures are logged and do not affect the assignment.
func (s *Service) notifyManagers(ctx context.Context, agencyID string, count int) {
	managers, err := s.users.ListByAgencyAndRole(ctx, agencyID, domain.RoleManager)
	if err != nil {
		s.log.WarnContext(ctx, "list agency managers failed",
			slog.String("agency_id", agencyID),
			slog.String("error", err.Error()))
		return
	}
	for _, m := range managers {
		s.send(ctx, domain.Notification{
			Kind:      domain.NotifyCasesAssigned,
			Recipient: m.Email,
			Subject:   "Action required : New cases assigned",
			Body:      managerNotice,
			Data: map[string]string{
				"agencyId": agencyID,
				"count":    strconv.Itoa(count),
			},
		})
	}
}

func (s *Service) notifyAgent(ctx context.Context, agentEmail string, count int) {
	s.send(ctx, domain.Notification{
		Kind:      domain.NotifyAgentAssigned,
		Recipient: agentEmail,
		Subject:   "Debt assigned",
		Body:      agentNotice,
		Data:      map[string]string{"count": fmt.Sprint(count)},
	})
}

func (s *Service) send(ctx context.Context, msg domain.Notification) {
	msg.CreatedAt = s.now()
	if err := s.notify.Notify(ctx, msg); err != nil {
		s.log.WarnContext(ctx, "notification not delivered",
			slog.String("kind", msg.Kind),
			slog.String("recipient", msg.Recipient),
			slog.String("error", err.Error()))
	}
}
