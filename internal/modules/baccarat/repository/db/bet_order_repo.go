package db

import (
	"context"
	"fmt"

	"github.com/frankieli/baccarat_game/internal/modules/baccarat/domain"
	"gorm.io/gorm"
)

// BetOrderRepository implements domain.BetOrderRepository on postgres
type BetOrderRepository struct {
	db *gorm.DB
}

// NewBetOrderRepository creates a new bet order repository
func NewBetOrderRepository(db *gorm.DB) *BetOrderRepository {
	return &BetOrderRepository{db: db}
}

func (r *BetOrderRepository) Create(ctx context.Context, order *domain.BetOrder) error {
	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return fmt.Errorf("failed to create bet order: %w", err)
	}
	return nil
}

func (r *BetOrderRepository) ListByUsername(ctx context.Context, username string, limit int) ([]*domain.BetOrder, error) {
	var orders []*domain.BetOrder
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bet orders for %s: %w", username, err)
	}
	return orders, nil
}
