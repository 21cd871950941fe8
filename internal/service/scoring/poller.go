package scoring

import (
	"context"
	"log/slog"
	"time"
)

const defaultInterval = 90 * time.Second

// Poller periodically scores unscored cases.
type Poller struct {
	svc      *Service
	interval time.Duration
	log      *slog.Logger
}

// NewPoller creates a Poller. A non-positive interval means 90s.
func NewPoller(logger *slog.Logger, svc *Service, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		svc:      svc,
		interval: interval,
		log:      logger.With("worker", "scoring"),
	}
}

// Run polls once immediately and then on every tick until ctx is done.
// Errors are logged and never stop the loop.
func (p *Poller) Run(ctx context.Context) {
	p.log.InfoContext(ctx, "scoring poller started", slog.Duration("interval", p.interval))

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			p.log.InfoContext(ctx, "scoring poller stopped")
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	if _, err := p.svc.ScoreUnscored(ctx); err != nil && ctx.Err() == nil {
		p.log.ErrorContext(ctx, "scoring cycle failed", slog.String("error", err.Error()))
	}
}
