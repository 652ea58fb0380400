package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// RefreshTokenPurger deletes refresh token rows that expired before a cutoff
type RefreshTokenPurger interface {
	DeleteExpiredRefreshTokens(ctx context.Context, before time.Time) (int64, error)
}

type TokenJobs struct {
	purger    RefreshTokenPurger
	retention time.Duration
	now       func() time.Time
}

// NewTokenJobs keeps expired refresh tokens for retention before deleting them.
func NewTokenJobs(purger RefreshTokenPurger, retention time.Duration) *TokenJobs {
	return &TokenJobs{
		purger:    purger,
		retention: retention,
		now:       time.Now,
	}
}

func (j *TokenJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("purge_expired_refresh_tokens", interval, j.PurgeExpiredRefreshTokens)
}

func (j *TokenJobs) PurgeExpiredRefreshTokens(ctx context.Context) error {
	cutoff := j.now().Add(-j.retention)

	deleted, err := j.purger.DeleteExpiredRefreshTokens(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to purge refresh tokens: %w", err)
	}
	if deleted > 0 {
		slog.Info("Cron: Purged expired refresh tokens", "count", deleted, "cutoff", cutoff)
	}
	return nil
}
