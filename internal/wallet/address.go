package wallet

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// ValidateAddress checks that addr is a well-formed Solana wallet address
func ValidateAddress(addr string) error {
	if addr == "" {
		return fmt.Errorf("wallet address is required")
	}
	if len(addr) < 32 || len(addr) > 44 {
		return fmt.Errorf("invalid wallet address length")
	}
	if _, err := solana.PublicKeyFromBase58(addr); err != nil {
		return fmt.Errorf("invalid wallet address: %w", err)
	}
	return nil
}

// IsValidAddress reports whether addr is a well-formed Solana wallet address
func IsValidAddress(addr string) bool {
	return ValidateAddress(addr) == nil
}
