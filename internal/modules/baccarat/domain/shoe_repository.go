package domain

import "context"

// ShoeRepository persists the remaining ordered card sequence
type ShoeRepository interface {
	// Save overwrites the durable shoe record with the given sequence
	Save(ctx context.Context, cards []Card) error

	// Load reads the persisted sequence. Returns ErrShoeNotFound when
	// no record exists yet.
	Load(ctx context.Context) ([]Card, error)
}
