package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"io.winapps.wellness/internal/advice"
	submitmodels "io.winapps.wellness/internal/models/submit_checkin"
)

// SubmitCheckin handles a new mood check-in. The rating must parse as an
// integer; out-of-range values are left to the form's own constraints. On
// success the entry is persisted and the recommendations for it returned.
func (h *CheckinHandler) SubmitCheckin(c *gin.Context) {
	var req submitmodels.SubmitCheckinRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	rating, err := strconv.Atoi(strings.TrimSpace(req.Rating))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be an integer"})
		return
	}

	ctx := c.Request.Context()

	entry, err := h.store.CreateEntry(ctx, rating, req.Note)
	if err != nil {
		h.logError(c, err, "failed to save check-in")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save check-in"})
		return
	}

	h.invalidateSummaryCache(ctx)

	c.JSON(http.StatusCreated, submitmodels.SubmitCheckinResponse{
		Recommendations: advice.Recommend(entry.Rating, entry.Sentiment, entry.Note),
		Sentiment:       entry.Sentiment,
	})
}
