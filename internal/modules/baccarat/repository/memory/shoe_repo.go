// Package memory provides memory-based repositories for the baccarat
// module, used in tests and standalone runs.
package memory

import (
	"context"
	"sync"

	"github.com/frankieli/baccarat_game/internal/modules/baccarat/domain"
)

// ShoeRepository implements domain.ShoeRepository in memory
type ShoeRepository struct {
	mu    sync.RWMutex
	cards []domain.Card
	set   bool
}

// NewShoeRepository creates an empty memory shoe repository
func NewShoeRepository() *ShoeRepository {
	return &ShoeRepository{}
}

func (r *ShoeRepository) Save(ctx context.Context, cards []domain.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cards = make([]domain.Card, len(cards))
	copy(r.cards, cards)
	r.set = true
	return nil
}

func (r *ShoeRepository) Load(ctx context.Context) ([]domain.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.set {
		return nil, domain.ErrShoeNotFound
	}
	out := make([]domain.Card, len(r.cards))
	copy(out, r.cards)
	return out, nil
}
