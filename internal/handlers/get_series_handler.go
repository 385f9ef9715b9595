package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetSeries returns all check-ins in insertion order as (date, rating)
// pairs for charting.
func (h *CheckinHandler) GetSeries(c *gin.Context) {
	series, err := h.store.ListSeries(c.Request.Context())
	if err != nil {
		h.logError(c, err, "failed to load series")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load series"})
		return
	}

	c.JSON(http.StatusOK, series)
}
