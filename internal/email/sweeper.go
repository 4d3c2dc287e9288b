package email

import (
	"context"
	"log/slog"
	"time"
)

// Cleaner removes expired attachments.
type Cleaner interface {
	RemoveExpiredAt(ctx context.Context, now time.Time) (int, error)
}

// Sweeper periodically removes expired attachments until its context ends.
type Sweeper struct {
	cleaner  Cleaner
	interval time.Duration
	logger   *slog.Logger
}

const defaultSweepInterval = 5 * time.Minute

// NewSweeper builds a sweeper running every interval.
func NewSweeper(cleaner Cleaner, interval time.Duration, logger *slog.Logger) *Sweeper {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &Sweeper{
		cleaner:  cleaner,
		interval: interval,
		logger:   logger,
	}
}

// Run sweeps once immediately, then on every tick. Failures are logged and
// the loop keeps going. Returns nil when ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) error {
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-ctx.Done():
			return nil
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	removed, err := s.cleaner.RemoveExpiredAt(ctx, time.Now())
	if err != nil {
		s.logger.WarnContext(ctx, "temp file sweep failed",
			"removed", removed,
			"error", err.Error(),
		)
		return
	}
	if removed > 0 {
		s.logger.InfoContext(ctx, "expired temp files removed", "removed", removed)
	}
}
