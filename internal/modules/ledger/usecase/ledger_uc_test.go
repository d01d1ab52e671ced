package usecase

import (
	"context"
	"math/big"
	"testing"

	"github.com/frankieli/baccarat_game/internal/modules/ledger/domain"
	"github.com/frankieli/baccarat_game/internal/modules/ledger/repository/memory"
	"github.com/stretchr/testify/assert"
)

func TestLoginOverwrites(t *testing.T) {
	ctx := context.Background()
	uc := NewLedgerUseCase(memory.NewAccountRepository())

	assert.NoError(t, uc.Login(ctx, "kenneth", big.NewInt(100)))
	assert.NoError(t, uc.Login(ctx, "kenneth", big.NewInt(250)))

	// Second login replaces the balance, it never accumulates
	balance, err := uc.GetBalance(ctx, "kenneth")
	assert.NoError(t, err)
	assert.Equal(t, big.NewInt(250), balance)
}

func TestGetBalanceUnknownUser(t *testing.T) {
	uc := NewLedgerUseCase(memory.NewAccountRepository())

	_, err := uc.GetBalance(context.Background(), "nobody")
	assert.ErrorIs(t, err, domain.ErrUnknownUser)
}

func TestSetBalance(t *testing.T) {
	ctx := context.Background()
	uc := NewLedgerUseCase(memory.NewAccountRepository())

	assert.NoError(t, uc.Login(ctx, "alice", big.NewInt(100)))
	assert.NoError(t, uc.SetBalance(ctx, "alice", big.NewInt(42)))

	balance, err := uc.GetBalance(ctx, "alice")
	assert.NoError(t, err)
	assert.Equal(t, big.NewInt(42), balance)
}

func TestBigBalances(t *testing.T) {
	ctx := context.Background()
	uc := NewLedgerUseCase(memory.NewAccountRepository())

	huge, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	assert.True(t, ok)

	assert.NoError(t, uc.Login(ctx, "whale", huge))
	balance, err := uc.GetBalance(ctx, "whale")
	assert.NoError(t, err)
	assert.Equal(t, huge, balance)
}
