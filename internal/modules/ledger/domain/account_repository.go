package domain

import (
	"context"
	"math/big"
)

// AccountRepository persists per-username balances. Implementations
// must keep concurrent writes to different usernames from corrupting
// each other's records; same-username races are last-writer-wins.
type AccountRepository interface {
	// Upsert overwrites the balance for a username, creating the
	// account if needed
	Upsert(ctx context.Context, username string, balance *big.Int) error

	// GetBalance reads the persisted balance. Returns ErrUnknownUser
	// when no record exists.
	GetBalance(ctx context.Context, username string) (*big.Int, error)
}
