// Package engine implements the baccarat deal engine: the shared shoe,
// the fixed drawing rule and the rolling outcome history.
package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/frankieli/baccarat_game/internal/modules/baccarat/domain"
	"github.com/frankieli/baccarat_game/pkg/logger"
)

// thirdCardThreshold: a hand draws its third card while the raw
// two-card sum is at or below this value
const thirdCardThreshold = 15

// DealEngine owns the shared shoe and resolves rounds. The
// draw-resolve-persist sequence runs under one lock, so concurrent
// rounds can never interleave draws or double-issue a card.
type DealEngine struct {
	mu       sync.Mutex // held for one full draw-resolve-persist sequence
	shoe     *domain.Shoe
	shoeRepo domain.ShoeRepository
	history  *HistoryLog
}

// NewDealEngine creates a deal engine over a loaded shoe
func NewDealEngine(shoe *domain.Shoe, shoeRepo domain.ShoeRepository, history *HistoryLog) *DealEngine {
	return &DealEngine{
		shoe:     shoe,
		shoeRepo: shoeRepo,
		history:  history,
	}
}

// LoadOrCreateShoe loads the persisted shoe, generating and persisting
// a fresh shuffled one of decks*52 cards when no record exists.
func LoadOrCreateShoe(ctx context.Context, repo domain.ShoeRepository, decks int) (*domain.Shoe, error) {
	cards, err := repo.Load(ctx)
	switch {
	case err == nil:
		logger.Info(ctx).Int("remaining", len(cards)).Msg("Loaded persisted shoe")
	case errors.Is(err, domain.ErrShoeNotFound):
		cards = domain.NewShoeCards(decks, rand.New(rand.NewSource(time.Now().UnixNano())))
		if err := repo.Save(ctx, cards); err != nil {
			return nil, fmt.Errorf("failed to persist fresh shoe: %w", err)
		}
		logger.Info(ctx).Int("decks", decks).Int("cards", len(cards)).Msg("Generated fresh shoe")
	default:
		return nil, fmt.Errorf("failed to load shoe: %w", err)
	}
	return domain.NewShoe(cards), nil
}

// Remaining returns the number of cards left in the shoe
func (e *DealEngine) Remaining() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.shoe.Size()
}

// Deal resolves one round under the shoe lock.
//
// Drawing rule: two cards each for player and banker; either hand draws
// exactly one more card while its raw two-card sum is <= 15; final sums
// reduce mod 10. Banker winning with exactly 6 points is classified
// separately for the special payout.
//
// A mid-round shortage aborts with domain.ErrShoeExhausted. Cards drawn
// before the shortage stay consumed.
func (e *DealEngine) Deal(ctx context.Context) (*domain.RoundResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	// A full round needs at least four cards before any draw happens
	if e.shoe.Size() < 4 {
		return nil, domain.ErrShoeExhausted
	}

	playerCards, err := e.shoe.Draw(2)
	if err != nil {
		return nil, err
	}
	bankerCards, err := e.shoe.Draw(2)
	if err != nil {
		return nil, err
	}

	playerSum := handSum(playerCards)
	bankerSum := handSum(bankerCards)

	if playerSum <= thirdCardThreshold {
		third, err := e.shoe.Draw(1)
		if err != nil {
			e.persistShoe(ctx)
			return nil, err
		}
		playerCards = append(playerCards, third[0])
		playerSum += third[0].Value()
	}

	// Banker's third card depends only on the raw two-card sum,
	// independent of the player's draw
	if bankerSum <= thirdCardThreshold {
		third, err := e.shoe.Draw(1)
		if err != nil {
			e.persistShoe(ctx)
			return nil, err
		}
		bankerCards = append(bankerCards, third[0])
		bankerSum += third[0].Value()
	}

	playerSum = reduce(playerSum)
	bankerSum = reduce(bankerSum)

	result := &domain.RoundResult{
		PlayerCards: playerCards,
		BankerCards: bankerCards,
		PlayerTotal: playerSum,
		BankerTotal: bankerSum,
	}
	switch {
	case playerSum > bankerSum:
		result.Outcome = domain.OutcomePlayerWin
	case bankerSum > playerSum:
		if bankerSum == 6 {
			result.Outcome = domain.OutcomeBankerWinSixCard
		} else {
			result.Outcome = domain.OutcomeBankerWin
		}
	default:
		result.Outcome = domain.OutcomeDraw
	}

	e.history.Append(ctx, result.Outcome.Code())
	e.persistShoe(ctx)

	logger.Debug(ctx).
		Ints("player_cards", result.PlayerValues()).
		Ints("banker_cards", result.BankerValues()).
		Int("player_total", playerSum).
		Int("banker_total", bankerSum).
		Str("outcome", result.Outcome.String()).
		Int("shoe_remaining", e.shoe.Size()).
		Msg("Round resolved")

	return result, nil
}

// persistShoe writes the remaining sequence to durable storage. The
// round is already resolved in memory; a storage failure here is
// logged, not propagated, so one bad write cannot fail the round.
func (e *DealEngine) persistShoe(ctx context.Context) {
	if err := e.shoeRepo.Save(ctx, e.shoe.Cards()); err != nil {
		logger.Error(ctx).Err(err).Int("remaining", e.shoe.Size()).Msg("Failed to persist shoe")
	}
}

func handSum(cards []domain.Card) int {
	sum := 0
	for _, c := range cards {
		sum += c.Value()
	}
	return sum
}

// reduce maps a raw hand sum to its baccarat value in [0,9].
// Raw sums top out at 25: a third card only lands on a raw sum of 15
// or less.
func reduce(sum int) int {
	if sum >= 20 {
		return sum - 20
	}
	if sum >= 10 {
		return sum - 10
	}
	return sum
}
