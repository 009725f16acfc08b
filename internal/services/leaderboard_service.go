package services

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"carequest/internal/models"
)

// DefaultLeaderboardLimit caps the leaderboard size when the caller does
// not ask for one.
const DefaultLeaderboardLimit = 100

// LeaderboardService merges check-in totals with community objective
// totals into a ranked view. It is recomputed from current state on every
// call, never cached.
type LeaderboardService struct {
	db *gorm.DB
}

// NewLeaderboardService creates a new LeaderboardService
func NewLeaderboardService(db *gorm.DB) *LeaderboardService {
	return &LeaderboardService{db: db}
}

// GetLeaderboard returns up to limit entries ordered by total points
// descending. Only users with a stats row participate. Ties are broken by
// ascending user ID so the ordering is deterministic across calls.
func (s *LeaderboardService) GetLeaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}

	type statsRow struct {
		UserID        uint
		Username      string
		WalletAddress string
		TotalPoints   int
		CurrentStreak int
		LongestStreak int
		Level         int
		TotalCheckins int
		LastCheckIn   string
	}

	var rows []statsRow
	err := s.db.WithContext(ctx).
		Table("user_stats").
		Select("user_stats.user_id, users.username, users.wallet_address, user_stats.total_points, user_stats.current_streak, user_stats.longest_streak, user_stats.level, user_stats.total_checkins, user_stats.last_check_in").
		Joins("JOIN users ON users.id = user_stats.user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, &PersistenceError{Op: "load user stats", Err: err}
	}

	type objectiveSum struct {
		UserID uint
		Total  int
	}

	var sums []objectiveSum
	err = s.db.WithContext(ctx).
		Model(&models.CareObjective{}).
		Select("user_id, SUM(points) AS total").
		Where("status = ?", models.ObjectiveStatusCompleted).
		Group("user_id").
		Scan(&sums).Error
	if err != nil {
		return nil, &PersistenceError{Op: "sum objectives", Err: err}
	}

	objectivesByUser := make(map[uint]int, len(sums))
	for _, sum := range sums {
		objectivesByUser[sum.UserID] = sum.Total
	}

	entries := make([]models.LeaderboardEntry, 0, len(rows))
	for _, row := range rows {
		objectiveTotal := objectivesByUser[row.UserID]
		entries = append(entries, models.LeaderboardEntry{
			UserID:          row.UserID,
			Username:        row.Username,
			WalletAddress:   row.WalletAddress,
			SelfCarePoints:  row.TotalPoints,
			ObjectivePoints: objectiveTotal,
			TotalPoints:     row.TotalPoints + objectiveTotal,
			CurrentStreak:   row.CurrentStreak,
			LongestStreak:   row.LongestStreak,
			Level:           row.Level,
			TotalCheckins:   row.TotalCheckins,
			LastCheckIn:     row.LastCheckIn,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalPoints != entries[j].TotalPoints {
			return entries[i].TotalPoints > entries[j].TotalPoints
		}
		return entries[i].UserID < entries[j].UserID
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}

	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries, nil
}
