package services

import (
	"context"
	"errors"
	"testing"

	"carequest/internal/models"
)

const (
	testWallet  = "4Nd1mBQtrMJVYVfKf2PJy9NZUZdTAsp7D4xWLs4gDB4T"
	testWallet2 = "So11111111111111111111111111111111111111112"
)

func TestResolveByWalletCreatesUserAndStats(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db)
	ctx := context.Background()

	user, err := service.ResolveByWallet(ctx, testWallet, "")
	if err != nil {
		t.Fatalf("ResolveByWallet failed: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected user to be assigned an ID")
	}
	if user.Username != "user_"+testWallet[len(testWallet)-6:] {
		t.Errorf("unexpected default username: %s", user.Username)
	}

	var stats models.UserStats
	if err := db.Where("user_id = ?", user.ID).First(&stats).Error; err != nil {
		t.Fatalf("expected stats row to be created: %v", err)
	}
	if stats.TotalPoints != 0 || stats.CurrentStreak != 0 || stats.TotalCheckins != 0 {
		t.Errorf("expected zeroed stats, got %+v", stats)
	}
	if stats.Level != 1 {
		t.Errorf("expected level 1, got %d", stats.Level)
	}
}

func TestResolveByWalletIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db)
	ctx := context.Background()

	first, err := service.ResolveByWallet(ctx, testWallet, "")
	if err != nil {
		t.Fatalf("first resolve failed: %v", err)
	}

	second, err := service.ResolveByWallet(ctx, testWallet, "different-hint")
	if err != nil {
		t.Fatalf("second resolve failed: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("expected same user, got IDs %d and %d", first.ID, second.ID)
	}

	var count int64
	db.Model(&models.User{}).Where("wallet_address = ?", testWallet).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 user row, got %d", count)
	}
}

func TestResolveByWalletUsesHint(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db)

	user, err := service.ResolveByWallet(context.Background(), testWallet2, "sunshine")
	if err != nil {
		t.Fatalf("ResolveByWallet failed: %v", err)
	}
	if user.Username != "sunshine" {
		t.Errorf("expected username sunshine, got %s", user.Username)
	}
}

func TestResolveByWalletRejectsBadAddress(t *testing.T) {
	db := setupTestDB(t)
	service := NewUserService(db)

	for _, addr := range []string{"", "short", "not-a-base58-address-with-valid-length!!"} {
		_, err := service.ResolveByWallet(context.Background(), addr, "")
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Errorf("address %q: expected ValidationError, got %v", addr, err)
		}
	}
}
