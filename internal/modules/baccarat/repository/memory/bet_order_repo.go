package memory

import (
	"context"
	"sync"

	"github.com/frankieli/baccarat_game/internal/modules/baccarat/domain"
)

// BetOrderRepository implements domain.BetOrderRepository in memory
type BetOrderRepository struct {
	mu     sync.RWMutex
	orders []*domain.BetOrder
}

// NewBetOrderRepository creates an empty memory bet order repository
func NewBetOrderRepository() *BetOrderRepository {
	return &BetOrderRepository{}
}

func (r *BetOrderRepository) Create(ctx context.Context, order *domain.BetOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = append(r.orders, order)
	return nil
}

func (r *BetOrderRepository) ListByUsername(ctx context.Context, username string, limit int) ([]*domain.BetOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.BetOrder, 0, limit)
	for i := len(r.orders) - 1; i >= 0 && len(out) < limit; i-- {
		if r.orders[i].Username == username {
			out = append(out, r.orders[i])
		}
	}
	return out, nil
}
