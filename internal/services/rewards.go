package services

import (
	"github.com/shopspring/decimal"
)

const (
	basePoints     = 10
	gratitudeBonus = 5

	// pointsPerLevel is how many total points advance the user one level
	pointsPerLevel = 100
)

// multiplierTiers are evaluated highest-first; the first tier whose
// minimum streak is met wins. Streaks below 3 days earn no multiplier.
var multiplierTiers = []struct {
	minStreak  int
	multiplier decimal.Decimal
}{
	{14, decimal.NewFromInt(2)},
	{7, decimal.RequireFromString("1.5")},
	{3, decimal.RequireFromString("1.25")},
}

// ComputePoints returns the points awarded for a check-in at the given
// streak length. The result is floored after applying the multiplier.
func ComputePoints(streak int, hasGratitudeNote bool) int {
	points := decimal.NewFromInt(basePoints)
	if hasGratitudeNote {
		points = points.Add(decimal.NewFromInt(gratitudeBonus))
	}

	multiplier := decimal.NewFromInt(1)
	for _, tier := range multiplierTiers {
		if streak >= tier.minStreak {
			multiplier = tier.multiplier
			break
		}
	}

	return int(points.Mul(multiplier).Floor().IntPart())
}

// LevelForPoints derives the user level from their total points.
// Levels start at 1 and advance every 100 points.
func LevelForPoints(totalPoints int) int {
	level := totalPoints/pointsPerLevel + 1
	if level < 1 {
		level = 1
	}
	return level
}
