// Package db provides gorm-backed repositories for the baccarat module.
package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/frankieli/baccarat_game/internal/modules/baccarat/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// shoeStateID: a server owns exactly one shoe record
const shoeStateID = 1

// ShoeRepository implements domain.ShoeRepository on postgres
type ShoeRepository struct {
	db *gorm.DB
}

// NewShoeRepository creates a new shoe repository
func NewShoeRepository(db *gorm.DB) *ShoeRepository {
	return &ShoeRepository{db: db}
}

func (r *ShoeRepository) Save(ctx context.Context, cards []domain.Card) error {
	state := &domain.ShoeState{
		ID:    shoeStateID,
		Cards: domain.EncodeCards(cards),
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"cards", "updated_at"}),
	}).Create(state).Error
	if err != nil {
		return fmt.Errorf("failed to save shoe state: %w", err)
	}
	return nil
}

func (r *ShoeRepository) Load(ctx context.Context) ([]domain.Card, error) {
	var state domain.ShoeState
	if err := r.db.WithContext(ctx).First(&state, shoeStateID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrShoeNotFound
		}
		return nil, fmt.Errorf("failed to load shoe state: %w", err)
	}
	return domain.DecodeCards(state.Cards)
}
