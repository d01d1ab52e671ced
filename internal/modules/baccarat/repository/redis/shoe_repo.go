// Package redis provides a redis-backed shoe repository.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/frankieli/baccarat_game/internal/modules/baccarat/domain"
	"github.com/redis/go-redis/v9"
)

const shoeKey = "baccarat:shoe"

// ShoeRepository implements domain.ShoeRepository on redis. The whole
// remaining sequence is written as one value, so a save is atomic.
type ShoeRepository struct {
	client *redis.Client
}

// NewShoeRepository creates a new redis shoe repository
func NewShoeRepository(client *redis.Client) *ShoeRepository {
	return &ShoeRepository{client: client}
}

func (r *ShoeRepository) Save(ctx context.Context, cards []domain.Card) error {
	if err := r.client.Set(ctx, shoeKey, domain.EncodeCards(cards), 0).Err(); err != nil {
		return fmt.Errorf("failed to save shoe to redis: %w", err)
	}
	return nil
}

func (r *ShoeRepository) Load(ctx context.Context) ([]domain.Card, error) {
	encoded, err := r.client.Get(ctx, shoeKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrShoeNotFound
		}
		return nil, fmt.Errorf("failed to load shoe from redis: %w", err)
	}
	return domain.DecodeCards(encoded)
}
