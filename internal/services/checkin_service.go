package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"carequest/internal/models"
	"carequest/internal/wallet"
)

// dateLayout is the date-only format used for check-in days
const dateLayout = "2006-01-02"

// recentCheckInCount is how many check-ins the stats endpoint returns
const recentCheckInCount = 10

// CheckInService records daily mood check-ins and is the sole writer of
// the per-user stats aggregate.
type CheckInService struct {
	db    *gorm.DB
	users *UserService
	now   func() time.Time
}

// NewCheckInService creates a new CheckInService
func NewCheckInService(db *gorm.DB, users *UserService) *CheckInService {
	return &CheckInService{
		db:    db,
		users: users,
		now:   time.Now,
	}
}

// CheckInResult is the outcome of a successful check-in submission
type CheckInResult struct {
	Points  int                  `json:"points"`
	Streak  int                  `json:"streak"`
	CheckIn *models.DailyCheckIn `json:"checkin"`
}

// SubmitCheckIn records today's check-in for the wallet's user. The streak
// continues when the previous check-in was exactly yesterday and resets to
// 1 on any longer gap. The check-in insert and the stats update run in one
// transaction; the (user_id, date) unique index is the duplicate guard, so
// concurrent same-day submissions cannot both succeed.
func (s *CheckInService) SubmitCheckIn(ctx context.Context, walletAddress string, mood int, moodLabel, gratitudeNote string) (*CheckInResult, error) {
	if mood < 1 || mood > 5 {
		return nil, validationErr("mood", "must be between 1 and 5")
	}
	if strings.TrimSpace(moodLabel) == "" {
		return nil, validationErr("moodLabel", "is required")
	}

	user, err := s.users.ResolveByWallet(ctx, walletAddress, "")
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := now.Format(dateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(dateLayout)
	hasNote := strings.TrimSpace(gratitudeNote) != ""

	var result *CheckInResult
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var stats models.UserStats
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", user.ID).
			First(&stats).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Normally created by ResolveByWallet; recreate if missing.
			stats = models.UserStats{UserID: user.ID, Level: 1}
			if err := tx.Create(&stats).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		newStreak := 1
		switch stats.LastCheckIn {
		case yesterday:
			newStreak = stats.CurrentStreak + 1
		case today:
			// The insert below still rejects the duplicate.
			newStreak = stats.CurrentStreak
		}

		points := ComputePoints(newStreak, hasNote)

		checkIn := models.DailyCheckIn{
			UserID:        user.ID,
			Date:          today,
			Mood:          mood,
			MoodLabel:     moodLabel,
			GratitudeNote: gratitudeNote,
			Points:        points,
			Streak:        newStreak,
		}
		if err := tx.Create(&checkIn).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateCheckIn
			}
			return err
		}

		stats.TotalPoints += points
		stats.CurrentStreak = newStreak
		if newStreak > stats.LongestStreak {
			stats.LongestStreak = newStreak
		}
		stats.Level = LevelForPoints(stats.TotalPoints)
		stats.TotalCheckins++
		stats.LastCheckIn = today
		if err := tx.Save(&stats).Error; err != nil {
			return err
		}

		result = &CheckInResult{Points: points, Streak: newStreak, CheckIn: &checkIn}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrDuplicateCheckIn) {
			return nil, ErrDuplicateCheckIn
		}
		return nil, &PersistenceError{Op: "submit check-in", Err: err}
	}

	return result, nil
}

// TodayStatus reports whether the wallet's user has checked in today and
// their current streak. Unknown wallets are simply not checked in yet.
func (s *CheckInService) TodayStatus(ctx context.Context, walletAddress string) (bool, int, error) {
	if err := wallet.ValidateAddress(walletAddress); err != nil {
		return false, 0, validationErr("walletAddress", err.Error())
	}

	var user models.User
	err := s.db.WithContext(ctx).Where("wallet_address = ?", walletAddress).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, 0, nil
	}
	if err != nil {
		return false, 0, &PersistenceError{Op: "lookup user", Err: err}
	}

	var stats models.UserStats
	err = s.db.WithContext(ctx).Where("user_id = ?", user.ID).First(&stats).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, 0, nil
	}
	if err != nil {
		return false, 0, &PersistenceError{Op: "lookup stats", Err: err}
	}

	today := s.now().Format(dateLayout)
	return stats.LastCheckIn == today, stats.CurrentStreak, nil
}

// GetUserStats returns a user's stats aggregate together with their most
// recent check-ins, newest first.
func (s *CheckInService) GetUserStats(ctx context.Context, userID uint) (*models.UserStats, []models.DailyCheckIn, error) {
	var stats models.UserStats
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&stats).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, &PersistenceError{Op: "lookup stats", Err: err}
	}

	var checkIns []models.DailyCheckIn
	err = s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(recentCheckInCount).
		Find(&checkIns).Error
	if err != nil {
		return nil, nil, &PersistenceError{Op: "list check-ins", Err: err}
	}

	return &stats, checkIns, nil
}
