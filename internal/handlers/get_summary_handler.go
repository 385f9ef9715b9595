package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	summarymodels "io.winapps.wellness/internal/models/summary"
)

// GetSummary returns aggregate stats over all check-ins: count only when the
// store is empty, otherwise count plus mean/median rating and mean
// sentiment. The result is cached in Redis when a client is configured.
func (h *CheckinHandler) GetSummary(c *gin.Context) {
	ctx := c.Request.Context()

	if h.redis != nil {
		if cached, err := h.redis.Get(ctx, summaryCacheKey).Result(); err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
			return
		}
	}

	summary, err := h.store.Summarize(ctx)
	if err != nil {
		h.logError(c, err, "failed to summarize check-ins")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load summary"})
		return
	}

	response := summarymodels.SummaryResponse{Count: summary.Count}
	if summary.Count > 0 {
		response.AvgRating = &summary.AvgRating
		response.MedianRating = &summary.MedianRating
		response.AvgSentiment = &summary.AvgSentiment
	}

	if h.redis != nil {
		if payload, err := json.Marshal(response); err == nil {
			if err := h.redis.Set(ctx, summaryCacheKey, payload, h.cacheTTL).Err(); err != nil {
				h.logError(c, err, "failed to cache summary")
			}
		}
	}

	c.JSON(http.StatusOK, response)
}
