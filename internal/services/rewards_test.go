package services

import (
	"testing"
)

func TestComputePoints(t *testing.T) {
	tests := []struct {
		name     string
		streak   int
		hasNote  bool
		expected int
	}{
		{"first day", 1, false, 10},
		{"first day with note", 1, true, 15},
		{"streak 2 no multiplier", 2, false, 10},
		{"streak 3 enters 1.25 tier", 3, false, 12},
		{"streak 3 with note", 3, true, 18},
		{"streak 6 still 1.25", 6, false, 12},
		{"streak 7 enters 1.5 tier", 7, false, 15},
		{"streak 7 with note", 7, true, 22},
		{"streak 13 still 1.5", 13, false, 15},
		{"streak 14 enters 2.0 tier", 14, false, 20},
		{"streak 14 with note", 14, true, 30},
		{"streak 30 stays 2.0", 30, false, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputePoints(tt.streak, tt.hasNote)
			if got != tt.expected {
				t.Errorf("ComputePoints(%d, %v) = %d, want %d", tt.streak, tt.hasNote, got, tt.expected)
			}
		})
	}
}

func TestLevelForPoints(t *testing.T) {
	tests := []struct {
		points   int
		expected int
	}{
		{0, 1},
		{50, 1},
		{99, 1},
		{100, 2},
		{199, 2},
		{200, 3},
		{250, 3},
		{1000, 11},
	}

	for _, tt := range tests {
		got := LevelForPoints(tt.points)
		if got != tt.expected {
			t.Errorf("LevelForPoints(%d) = %d, want %d", tt.points, got, tt.expected)
		}
	}
}
