package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"carequest/internal/services"
)

// LeaderboardHandler handles the community leaderboard endpoint
type LeaderboardHandler struct {
	leaderboard *services.LeaderboardService
}

// NewLeaderboardHandler creates a new LeaderboardHandler
func NewLeaderboardHandler(leaderboard *services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboard: leaderboard}
}

// GetLeaderboard returns the ranked community leaderboard
// GET /leaderboard?limit=N
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	limit := services.DefaultLeaderboardLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Invalid limit",
			})
			return
		}
		limit = parsed
	}

	entries, err := h.leaderboard.GetLeaderboard(c.Request.Context(), limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"leaderboard": entries,
	})
}
