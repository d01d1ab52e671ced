// Package db provides the gorm-backed account repository.
package db

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/frankieli/baccarat_game/internal/modules/ledger/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AccountRepository implements domain.AccountRepository on postgres
type AccountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Upsert(ctx context.Context, username string, balance *big.Int) error {
	account := &domain.Account{
		Username: username,
		Balance:  balance.String(),
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoUpdates: clause.AssignmentColumns([]string{"balance", "updated_at"}),
	}).Create(account).Error
	if err != nil {
		return fmt.Errorf("failed to upsert account %s: %w", username, err)
	}
	return nil
}

func (r *AccountRepository) GetBalance(ctx context.Context, username string) (*big.Int, error) {
	var account domain.Account
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUnknownUser
		}
		return nil, fmt.Errorf("failed to get account %s: %w", username, err)
	}
	return account.BalanceInt()
}
