package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"carequest/internal/models"
	"carequest/internal/wallet"
)

// UserService resolves wallet addresses to user records, creating them on
// first contact.
type UserService struct {
	db *gorm.DB
}

// NewUserService creates a new UserService
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// ResolveByWallet finds the user for a wallet address, creating the user
// and their zeroed stats row on first contact. Idempotent per address:
// repeated calls never create duplicates, including under a concurrent
// first-contact race (the unique index on wallet_address decides the
// winner and the loser re-reads the winner's row).
func (s *UserService) ResolveByWallet(ctx context.Context, walletAddress, usernameHint string) (*models.User, error) {
	if err := wallet.ValidateAddress(walletAddress); err != nil {
		return nil, validationErr("walletAddress", err.Error())
	}

	var user models.User
	err := s.db.WithContext(ctx).Where("wallet_address = ?", walletAddress).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &PersistenceError{Op: "lookup user", Err: err}
	}

	username := usernameHint
	if username == "" {
		username = defaultUsername(walletAddress)
	}

	user = models.User{
		WalletAddress: walletAddress,
		Username:      username,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&models.UserStats{UserID: user.ID, Level: 1}).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a create race for the same address; the winner's row stands.
			var existing models.User
			if lookupErr := s.db.WithContext(ctx).Where("wallet_address = ?", walletAddress).First(&existing).Error; lookupErr == nil {
				return &existing, nil
			}
		}
		return nil, &PersistenceError{Op: "create user", Err: err}
	}

	log.Printf("New user created: wallet=%s (ID: %d)", walletAddress, user.ID)
	return &user, nil
}

// GetUserByID retrieves a user by ID
func (s *UserService) GetUserByID(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, &PersistenceError{Op: "lookup user", Err: err}
	}
	return &user, nil
}

// defaultUsername derives a placeholder username from the tail of the
// wallet address
func defaultUsername(walletAddress string) string {
	suffix := walletAddress
	if len(suffix) > 6 {
		suffix = suffix[len(suffix)-6:]
	}
	return fmt.Sprintf("user_%s", suffix)
}
