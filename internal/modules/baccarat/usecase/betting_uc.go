// Package usecase implements the betting orchestration for the
// baccarat module.
package usecase

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/frankieli/baccarat_game/internal/modules/baccarat/domain"
	"github.com/frankieli/baccarat_game/internal/modules/baccarat/engine"
	"github.com/frankieli/baccarat_game/pkg/logger"
)

// LedgerService is the balance store the betting flow depends on
type LedgerService interface {
	GetBalance(ctx context.Context, username string) (*big.Int, error)
	SetBalance(ctx context.Context, username string, balance *big.Int) error
}

// Settlement classifies how a resolved bet affected the balance
type Settlement int

const (
	SettlementWon        Settlement = iota // matching win, 1x payout
	SettlementWonSixCard                   // banker six-card win, 2x payout
	SettlementTieWon                       // tie bet on a draw, 8x payout
	SettlementPush                         // non-tie bet on a draw, refunded
	SettlementLost                         // bet subtracted
)

// DealResult is the full outcome of one bet-and-deal transaction
type DealResult struct {
	Round      *domain.RoundResult
	Settlement Settlement
	NewBalance *big.Int
}

// BettingUseCase orchestrates one round: balance check, deal, payout,
// balance persistence and the audit record.
type BettingUseCase struct {
	engine       *engine.DealEngine
	ledger       LedgerService
	betOrderRepo domain.BetOrderRepository
}

// NewBettingUseCase creates a new betting use case. betOrderRepo may be
// nil when auditing is disabled.
func NewBettingUseCase(dealEngine *engine.DealEngine, ledger LedgerService, betOrderRepo domain.BetOrderRepository) *BettingUseCase {
	return &BettingUseCase{
		engine:       dealEngine,
		ledger:       ledger,
		betOrderRepo: betOrderRepo,
	}
}

// PlaceBet validates a bet against the current balance. No cards are
// drawn and nothing is persisted.
func (uc *BettingUseCase) PlaceBet(ctx context.Context, username string, amount *big.Int) error {
	balance, err := uc.ledger.GetBalance(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to check balance: %w", err)
	}
	if balance.Cmp(amount) < 0 {
		return domain.ErrInsufficientBalance
	}
	return nil
}

// Deal runs one full betting round for the given side and amount.
// The balance is validated before any card is drawn; an insufficient
// balance means the round never starts.
func (uc *BettingUseCase) Deal(ctx context.Context, username string, side domain.Side, amount *big.Int) (*DealResult, error) {
	ctx = logger.WithFields(ctx, map[string]interface{}{
		"username": username,
	})

	logger.Info(ctx).
		Str("side", string(side)).
		Str("amount", amount.String()).
		Msg("Deal requested")

	balance, err := uc.ledger.GetBalance(ctx, username)
	if err != nil {
		logger.Error(ctx).Err(err).Msg("Balance lookup failed")
		return nil, fmt.Errorf("failed to check balance: %w", err)
	}
	if balance.Cmp(amount) < 0 {
		logger.Warn(ctx).
			Str("balance", balance.String()).
			Str("amount", amount.String()).
			Msg("Insufficient balance for deal")
		return nil, domain.ErrInsufficientBalance
	}

	round, err := uc.engine.Deal(ctx)
	if err != nil {
		logger.Warn(ctx).Err(err).Msg("Round aborted")
		return nil, fmt.Errorf("failed to deal: %w", err)
	}

	settlement, newBalance := settle(round.Outcome, side, amount, balance)

	if err := uc.ledger.SetBalance(ctx, username, newBalance); err != nil {
		logger.Error(ctx).Err(err).Msg("Failed to persist settled balance")
		return nil, fmt.Errorf("failed to update balance: %w", err)
	}

	uc.recordOrder(ctx, username, side, amount, round, settlement)

	logger.Info(ctx).
		Str("outcome", round.Outcome.String()).
		Int("settlement", int(settlement)).
		Str("new_balance", newBalance.String()).
		Msg("Deal settled")

	return &DealResult{
		Round:      round,
		Settlement: settlement,
		NewBalance: newBalance,
	}, nil
}

// settle applies the payout policy and returns the new balance.
// The input balance is not mutated.
func settle(outcome domain.Outcome, side domain.Side, amount, balance *big.Int) (Settlement, *big.Int) {
	newBalance := new(big.Int).Set(balance)

	switch outcome {
	case domain.OutcomePlayerWin:
		if side == domain.SidePlayer {
			return SettlementWon, newBalance.Add(newBalance, amount)
		}
	case domain.OutcomeBankerWin:
		if side == domain.SideBanker {
			return SettlementWon, newBalance.Add(newBalance, amount)
		}
	case domain.OutcomeBankerWinSixCard:
		if side == domain.SideBanker {
			payout := new(big.Int).Mul(amount, big.NewInt(2))
			return SettlementWonSixCard, newBalance.Add(newBalance, payout)
		}
	case domain.OutcomeDraw:
		if side == domain.SideTie {
			payout := new(big.Int).Mul(amount, big.NewInt(8))
			return SettlementTieWon, newBalance.Add(newBalance, payout)
		}
		// Push: the bet is refunded, not lost
		return SettlementPush, newBalance
	}

	return SettlementLost, newBalance.Sub(newBalance, amount)
}

// recordOrder persists the audit record for a settled deal. Failures
// are logged only; the round is already settled.
func (uc *BettingUseCase) recordOrder(ctx context.Context, username string, side domain.Side, amount *big.Int, round *domain.RoundResult, settlement Settlement) {
	if uc.betOrderRepo == nil {
		return
	}

	now := time.Now()
	order := &domain.BetOrder{
		OrderID:   domain.NewOrderID(),
		Username:  username,
		Side:      string(side),
		Amount:    amount.String(),
		Payout:    payoutAmount(amount, settlement).String(),
		Outcome:   round.Outcome.String(),
		Status:    domain.BetOrderStatusSettled,
		CreatedAt: now,
		SettledAt: &now,
	}

	if err := uc.betOrderRepo.Create(ctx, order); err != nil {
		logger.Error(ctx).
			Err(err).
			Str("order_id", order.OrderID).
			Msg("Failed to persist bet order")
	}
}

// payoutAmount returns the amount credited for a settlement; losses
// are recorded as a negative payout, a push as zero.
func payoutAmount(amount *big.Int, settlement Settlement) *big.Int {
	switch settlement {
	case SettlementWon:
		return new(big.Int).Set(amount)
	case SettlementWonSixCard:
		return new(big.Int).Mul(amount, big.NewInt(2))
	case SettlementTieWon:
		return new(big.Int).Mul(amount, big.NewInt(8))
	case SettlementLost:
		return new(big.Int).Neg(amount)
	default:
		return big.NewInt(0)
	}
}
