package models

// LeaderboardEntry is a computed projection, never stored. SelfCarePoints
// comes from UserStats, ObjectivePoints from summing completed objectives,
// and TotalPoints is their sum.
type LeaderboardEntry struct {
	UserID          uint   `json:"user_id"`
	Username        string `json:"username"`
	WalletAddress   string `json:"wallet_address"`
	SelfCarePoints  int    `json:"self_care_points"`
	ObjectivePoints int    `json:"objective_points"`
	TotalPoints     int    `json:"total_points"`
	CurrentStreak   int    `json:"current_streak"`
	LongestStreak   int    `json:"longest_streak"`
	Level           int    `json:"level"`
	TotalCheckins   int    `json:"total_checkins"`
	LastCheckIn     string `json:"last_checkin"`
	Rank            int    `json:"rank"`
}
