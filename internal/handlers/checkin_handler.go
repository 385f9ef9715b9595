package handlers

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"io.winapps.wellness/internal/store"
)

// summaryCacheKey holds the cached summary JSON in Redis.
const summaryCacheKey = "wellness:summary"

type CheckinHandler struct {
	store    store.Store
	redis    *redis.Client
	logger   *zap.SugaredLogger
	cacheTTL time.Duration
}

// NewCheckinHandler creates a new check-in handler. The Redis client may be
// nil, in which case summary caching is disabled.
func NewCheckinHandler(st store.Store, redisClient *redis.Client, logger *zap.SugaredLogger, cacheTTL time.Duration) *CheckinHandler {
	return &CheckinHandler{
		store:    st,
		redis:    redisClient,
		logger:   logger,
		cacheTTL: cacheTTL,
	}
}

// invalidateSummaryCache drops the cached summary after a write. Best-effort:
// cache failures are logged, never surfaced.
func (h *CheckinHandler) invalidateSummaryCache(ctx context.Context) {
	if h.redis == nil {
		return
	}
	if err := h.redis.Del(ctx, summaryCacheKey).Err(); err != nil {
		h.logger.Warnw("failed to invalidate summary cache", "error", err)
	}
}
