// Package notify delivers user notifications (assignment events, signup and
// password-reset codes).
package notify

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/debt-recovery-backend/internal/domain"
)

// LogNotifier writes notifications to the log only. It is used when no
// broker is configured.
type LogNotifier struct {
	log *slog.Logger
}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{log: logger.With("adapter", "notify")}
}

// Notify logs n at info level. Message bodies may hold one-time codes, so
// only the kind, recipient and subject are logged.
func (n *LogNotifier) Notify(ctx context.Context, msg domain.Notification) error {
	n.log.InfoContext(ctx, "notification",
		slog.String("kind", msg.Kind),
		slog.String("recipient", msg.Recipient),
		slog.String("subject", msg.Subject),
	)
	return nil
}

// Close is a no-op.
func (n *LogNotifier) Close() error { return nil }
