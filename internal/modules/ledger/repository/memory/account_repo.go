// Package memory provides a memory-based account repository.
package memory

import (
	"context"
	"math/big"
	"sync"

	"github.com/frankieli/baccarat_game/internal/modules/ledger/domain"
)

// AccountRepository implements domain.AccountRepository in memory
type AccountRepository struct {
	balances map[string]*big.Int
	mu       sync.RWMutex
}

// NewAccountRepository creates a new memory account repository
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		balances: make(map[string]*big.Int),
	}
}

func (r *AccountRepository) Upsert(ctx context.Context, username string, balance *big.Int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.balances[username] = new(big.Int).Set(balance)
	return nil
}

func (r *AccountRepository) GetBalance(ctx context.Context, username string) (*big.Int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	balance, exists := r.balances[username]
	if !exists {
		return nil, domain.ErrUnknownUser
	}
	return new(big.Int).Set(balance), nil
}
