package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"carequest/internal/services"
)

// StatsHandler handles per-user stats endpoints
type StatsHandler struct {
	checkIns *services.CheckInService
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(checkIns *services.CheckInService) *StatsHandler {
	return &StatsHandler{checkIns: checkIns}
}

// GetUserStats returns a user's stats aggregate and recent check-ins
// GET /stats/:userId
func (h *StatsHandler) GetUserStats(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid user ID",
		})
		return
	}

	stats, checkIns, err := h.checkIns.GetUserStats(c.Request.Context(), uint(userID))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"stats":    stats,
		"checkIns": checkIns,
	})
}
