package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"io.winapps.wellness/internal/store"
)

// DigestScheduler logs a daily aggregate of all check-ins on a cron
// schedule, so trends show up in the logs without opening the dashboard.
type DigestScheduler struct {
	store       store.Store
	logger      *zap.SugaredLogger
	cronManager *cron.Cron
}

// NewDigestScheduler registers the digest job with the given cron spec
// (UTC). Call Start to begin scheduling.
func NewDigestScheduler(st store.Store, logger *zap.SugaredLogger, schedule string) (*DigestScheduler, error) {
	c := cron.New(cron.WithLocation(time.UTC))

	d := &DigestScheduler{
		store:       st,
		logger:      logger,
		cronManager: c,
	}

	if _, err := c.AddFunc(schedule, d.logDigest); err != nil {
		return nil, fmt.Errorf("failed to schedule daily digest: %w", err)
	}

	return d, nil
}

func (d *DigestScheduler) Start() {
	d.cronManager.Start()
}

func (d *DigestScheduler) Stop() {
	d.cronManager.Stop()
}

func (d *DigestScheduler) logDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	summary, err := d.store.Summarize(ctx)
	if err != nil {
		d.logger.Errorw("failed to compute daily digest", "error", err)
		return
	}

	if summary.Count == 0 {
		d.logger.Infow("daily digest", "count", 0)
		return
	}

	d.logger.Infow("daily digest",
		"count", summary.Count,
		"avg_rating", summary.AvgRating,
		"median_rating", summary.MedianRating,
		"avg_sentiment", summary.AvgSentiment,
	)
}
