// Package usecase implements the ledger business logic.
package usecase

import (
	"context"
	"fmt"
	"math/big"

	"github.com/frankieli/baccarat_game/internal/modules/ledger/domain"
	"github.com/frankieli/baccarat_game/pkg/logger"
)

// LedgerUseCase handles per-user balance operations
type LedgerUseCase struct {
	accountRepo domain.AccountRepository
}

// NewLedgerUseCase creates a new ledger use case
func NewLedgerUseCase(accountRepo domain.AccountRepository) *LedgerUseCase {
	return &LedgerUseCase{accountRepo: accountRepo}
}

// Login overwrites the account balance unconditionally. A repeated
// login resets the balance, it never merges with the previous one.
func (uc *LedgerUseCase) Login(ctx context.Context, username string, balance *big.Int) error {
	ctx = logger.WithFields(ctx, map[string]interface{}{
		"username": username,
	})

	if err := uc.accountRepo.Upsert(ctx, username, balance); err != nil {
		logger.Error(ctx).Err(err).Msg("Failed to persist login balance")
		return fmt.Errorf("failed to login %s: %w", username, err)
	}

	logger.Info(ctx).Str("balance", balance.String()).Msg("User logged in")
	return nil
}

// GetBalance reads the persisted balance. A missing account surfaces
// as domain.ErrUnknownUser, never as a zero balance.
func (uc *LedgerUseCase) GetBalance(ctx context.Context, username string) (*big.Int, error) {
	balance, err := uc.accountRepo.GetBalance(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance for %s: %w", username, err)
	}
	return balance, nil
}

// SetBalance overwrites the account's balance
func (uc *LedgerUseCase) SetBalance(ctx context.Context, username string, balance *big.Int) error {
	if err := uc.accountRepo.Upsert(ctx, username, balance); err != nil {
		logger.Error(ctx).Err(err).Str("username", username).Msg("Failed to persist balance")
		return fmt.Errorf("failed to set balance for %s: %w", username, err)
	}
	return nil
}
