package domain

import "context"

// BetOrderRepository persists settled bet audit records
type BetOrderRepository interface {
	// Create inserts one settled bet order
	Create(ctx context.Context, order *BetOrder) error

	// ListByUsername returns up to limit orders for a user, newest first
	ListByUsername(ctx context.Context, username string, limit int) ([]*BetOrder, error)
}
