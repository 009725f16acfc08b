package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"carequest/internal/services"
)

// ObjectiveHandler handles community objective endpoints
type ObjectiveHandler struct {
	objectives *services.ObjectiveService
}

// NewObjectiveHandler creates a new ObjectiveHandler
func NewObjectiveHandler(objectives *services.ObjectiveService) *ObjectiveHandler {
	return &ObjectiveHandler{objectives: objectives}
}

// SubmitObjective records a completed community objective
// POST /objectives
func (h *ObjectiveHandler) SubmitObjective(c *gin.Context) {
	var req struct {
		UserID      uint   `json:"userId" binding:"required"`
		Username    string `json:"username" binding:"required"`
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		Category    string `json:"category" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	objective, err := h.objectives.SubmitObjective(c.Request.Context(), req.UserID, req.Username, req.Title, req.Description, req.Category)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"objective": objective,
	})
}

// ListObjectives returns objectives newest-first, optionally for one user
// GET /objectives?userId=ID
func (h *ObjectiveHandler) ListObjectives(c *gin.Context) {
	var userID uint
	if raw := c.Query("userId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Invalid user ID",
			})
			return
		}
		userID = uint(parsed)
	}

	objectives, err := h.objectives.ListObjectives(c.Request.Context(), userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"objectives": objectives,
	})
}
