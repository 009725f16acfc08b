package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"carequest/internal/models"
)

func TestPointsForCategory(t *testing.T) {
	tests := []struct {
		category string
		expected int
	}{
		{"mentorship", 100},
		{"content", 75},
		{"support", 50},
		{"events", 125},
		{"something-else", 50},
		{"", 50},
	}

	for _, tt := range tests {
		got := PointsForCategory(tt.category)
		if got != tt.expected {
			t.Errorf("PointsForCategory(%q) = %d, want %d", tt.category, got, tt.expected)
		}
	}
}

func TestSubmitObjective(t *testing.T) {
	db := setupTestDB(t)
	service := NewObjectiveService(db)

	objective, err := service.SubmitObjective(context.Background(), 1, "sunshine", "Hosted a circle", "Weekly support circle", "events")
	if err != nil {
		t.Fatalf("SubmitObjective failed: %v", err)
	}

	if objective.Points != 125 {
		t.Errorf("expected 125 points, got %d", objective.Points)
	}
	if objective.Status != models.ObjectiveStatusCompleted {
		t.Errorf("expected objective to be auto-completed, got %s", objective.Status)
	}
	if objective.CompletedAt == nil {
		t.Error("expected completion timestamp to be set")
	}
	if objective.ID == uuid.Nil {
		t.Error("expected objective to be assigned an ID")
	}
}

func TestSubmitObjectiveValidation(t *testing.T) {
	db := setupTestDB(t)
	service := NewObjectiveService(db)
	ctx := context.Background()

	tests := []struct {
		name     string
		userID   uint
		username string
		title    string
		category string
	}{
		{"missing user", 0, "sunshine", "Title", "support"},
		{"missing username", 1, "", "Title", "support"},
		{"missing title", 1, "sunshine", "", "support"},
		{"missing category", 1, "sunshine", "Title", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.SubmitObjective(ctx, tt.userID, tt.username, tt.title, "", tt.category)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestListObjectives(t *testing.T) {
	db := setupTestDB(t)
	service := NewObjectiveService(db)
	ctx := context.Background()

	base := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)
	seed := []models.CareObjective{
		{UserID: 1, Username: "a", Title: "oldest", Category: "support", Points: 50, Status: models.ObjectiveStatusCompleted, CreatedAt: base},
		{UserID: 2, Username: "b", Title: "middle", Category: "content", Points: 75, Status: models.ObjectiveStatusCompleted, CreatedAt: base.Add(time.Hour)},
		{UserID: 1, Username: "a", Title: "newest", Category: "mentorship", Points: 100, Status: models.ObjectiveStatusCompleted, CreatedAt: base.Add(2 * time.Hour)},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("failed to seed objective: %v", err)
		}
	}

	all, err := service.ListObjectives(ctx, 0)
	if err != nil {
		t.Fatalf("ListObjectives failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 objectives, got %d", len(all))
	}
	if all[0].Title != "newest" || all[2].Title != "oldest" {
		t.Errorf("expected newest-first ordering, got %s .. %s", all[0].Title, all[2].Title)
	}

	mine, err := service.ListObjectives(ctx, 1)
	if err != nil {
		t.Fatalf("ListObjectives filtered failed: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 objectives for user 1, got %d", len(mine))
	}
	for _, objective := range mine {
		if objective.UserID != 1 {
			t.Errorf("unexpected user %d in filtered list", objective.UserID)
		}
	}
}
