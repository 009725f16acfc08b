package services

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"carequest/internal/models"
)

// objectivePoints maps each community objective category to its award.
// Unknown categories fall back to defaultObjectivePoints.
var objectivePoints = map[models.ObjectiveCategory]int{
	models.ObjectiveCategoryMentorship: 100,
	models.ObjectiveCategoryContent:    75,
	models.ObjectiveCategorySupport:    50,
	models.ObjectiveCategoryEvents:     125,
}

const defaultObjectivePoints = 50

// PointsForCategory returns the point award for an objective category
func PointsForCategory(category string) int {
	if points, ok := objectivePoints[models.ObjectiveCategory(category)]; ok {
		return points
	}
	return defaultObjectivePoints
}

// ObjectiveService records community objective completions. Objectives do
// not touch the stats aggregate; their points are merged into totals at
// leaderboard read time.
type ObjectiveService struct {
	db *gorm.DB
}

// NewObjectiveService creates a new ObjectiveService
func NewObjectiveService(db *gorm.DB) *ObjectiveService {
	return &ObjectiveService{db: db}
}

// SubmitObjective records a completed community objective for a user.
// Objectives are completed at creation under current policy.
func (s *ObjectiveService) SubmitObjective(ctx context.Context, userID uint, username, title, description, category string) (*models.CareObjective, error) {
	if userID == 0 {
		return nil, validationErr("userId", "is required")
	}
	if strings.TrimSpace(username) == "" {
		return nil, validationErr("username", "is required")
	}
	if strings.TrimSpace(title) == "" {
		return nil, validationErr("title", "is required")
	}
	if strings.TrimSpace(category) == "" {
		return nil, validationErr("category", "is required")
	}

	now := time.Now()
	objective := models.CareObjective{
		UserID:      userID,
		Username:    username,
		Title:       title,
		Description: description,
		Category:    category,
		Points:      PointsForCategory(category),
		Status:      models.ObjectiveStatusCompleted,
		CompletedAt: &now,
	}

	if err := s.db.WithContext(ctx).Create(&objective).Error; err != nil {
		return nil, &PersistenceError{Op: "create objective", Err: err}
	}

	return &objective, nil
}

// ListObjectives returns objectives newest-first, optionally filtered by
// user. userID 0 means no filter.
func (s *ObjectiveService) ListObjectives(ctx context.Context, userID uint) ([]models.CareObjective, error) {
	query := s.db.WithContext(ctx).Order("created_at DESC")
	if userID != 0 {
		query = query.Where("user_id = ?", userID)
	}

	var objectives []models.CareObjective
	if err := query.Find(&objectives).Error; err != nil {
		return nil, &PersistenceError{Op: "list objectives", Err: err}
	}
	return objectives, nil
}
