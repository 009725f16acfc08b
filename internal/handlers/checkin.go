package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carequest/internal/services"
)

// CheckInHandler handles daily check-in endpoints
type CheckInHandler struct {
	checkIns *services.CheckInService
}

// NewCheckInHandler creates a new CheckInHandler
func NewCheckInHandler(checkIns *services.CheckInService) *CheckInHandler {
	return &CheckInHandler{checkIns: checkIns}
}

// SubmitCheckIn records today's mood check-in for a wallet
// POST /checkin
func (h *CheckInHandler) SubmitCheckIn(c *gin.Context) {
	var req struct {
		WalletAddress string `json:"walletAddress" binding:"required"`
		Mood          int    `json:"mood" binding:"required"`
		MoodLabel     string `json:"moodLabel" binding:"required"`
		GratitudeNote string `json:"gratitudeNote"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	result, err := h.checkIns.SubmitCheckIn(c.Request.Context(), req.WalletAddress, req.Mood, req.MoodLabel, req.GratitudeNote)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"points":  result.Points,
		"streak":  result.Streak,
		"checkin": result.CheckIn,
	})
}

// GetTodayStatus reports whether a wallet has checked in today
// GET /checkin/today?walletAddress=A
func (h *CheckInHandler) GetTodayStatus(c *gin.Context) {
	walletAddress := c.Query("walletAddress")

	checkedIn, streak, err := h.checkIns.TodayStatus(c.Request.Context(), walletAddress)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"checkedIn": checkedIn,
		"streak":    streak,
	})
}
