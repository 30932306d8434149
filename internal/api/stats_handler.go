package api

import (
	"net/http"

	"waltgoat/walker-app/internal/service"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsService service.StatsService
}

func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStats godoc
// @Summary Progress report
// @Description Lifetime, weekly and monthly totals, records, streak and chart series.
// @Tags Stats
// @Produce json
// @Success 200 {object} stats.Report
// @Failure 503 {object} gin.H
// @Router /stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	report, err := h.statsService.GetStats(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
