package worker

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Sweeper drops expired entries and reports how many went.
type Sweeper interface {
	Sweep() int
}

// SessionJanitor periodically purges expired in-memory sessions.
type SessionJanitor struct {
	store    Sweeper
	interval time.Duration
	logger   *zap.Logger
}

// NewSessionJanitor builds a janitor sweeping store every interval.
func NewSessionJanitor(store Sweeper, interval time.Duration, logger *zap.Logger) *SessionJanitor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionJanitor{store: store, interval: interval, logger: logger}
}

// Run sweeps until ctx is cancelled.
func (j *SessionJanitor) Run(ctx context.Context) {
	if j.store == nil || j.interval <= 0 {
		return
	}
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.logger.Info("session janitor started", zap.Duration("interval", j.interval))
	for {
		select {
		case <-ctx.Done():
			j.logger.Info("session janitor stopped")
			return
		case <-ticker.C:
			if removed := j.store.Sweep(); removed > 0 {
				j.logger.Debug("expired sessions removed", zap.Int("count", removed))
			}
		}
	}
}
