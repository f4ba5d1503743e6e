package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatsHandler handles statistics requests.
type StatsHandler struct {
	statsService StatsServiceInterface
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(statsService StatsServiceInterface) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStatistics handles GET /stats.
func (h *StatsHandler) GetStatistics(c *gin.Context) {
	stats, err := h.statsService.GetStatistics()
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, statisticsToResponse(stats))
}
