package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/frankieli/baccarat_game/internal/modules/baccarat/domain"
	"gorm.io/gorm"
)

// HistoryRepository implements domain.HistoryRepository on postgres
type HistoryRepository struct {
	db *gorm.DB
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) AppendBatch(ctx context.Context, codes []string) error {
	if len(codes) == 0 {
		return nil
	}
	batch := &domain.HistoryBatch{
		Entries: strings.Join(codes, ","),
	}
	if err := r.db.WithContext(ctx).Create(batch).Error; err != nil {
		return fmt.Errorf("failed to append history batch: %w", err)
	}
	return nil
}

func (r *HistoryRepository) Reset(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Where("1 = 1").Delete(&domain.HistoryBatch{}).Error; err != nil {
		return fmt.Errorf("failed to reset history: %w", err)
	}
	return nil
}

func (r *HistoryRepository) RecentBatches(ctx context.Context, limit int) ([]string, error) {
	var batches []domain.HistoryBatch
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Find(&batches).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list history batches: %w", err)
	}

	lines := make([]string, len(batches))
	for i, b := range batches {
		lines[i] = b.Entries
	}
	return lines, nil
}
