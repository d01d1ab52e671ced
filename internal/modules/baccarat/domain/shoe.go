package domain

// Shoe is the ordered pool of cards available for dealing. Cards are
// drawn from the front and never return until a new shoe is generated.
//
// Shoe is not safe for concurrent use; the deal engine serializes all
// access behind its round lock.
type Shoe struct {
	cards []Card
}

// NewShoe creates a shoe over the given ordered card sequence
func NewShoe(cards []Card) *Shoe {
	return &Shoe{cards: cards}
}

// Size returns the number of cards remaining
func (s *Shoe) Size() int {
	return len(s.cards)
}

// Draw removes and returns the first n cards in current order.
// If fewer than n cards remain, nothing is drawn and ErrShoeExhausted
// is returned.
func (s *Shoe) Draw(n int) ([]Card, error) {
	if len(s.cards) < n {
		return nil, ErrShoeExhausted
	}
	drawn := make([]Card, n)
	copy(drawn, s.cards[:n])
	s.cards = s.cards[n:]
	return drawn, nil
}

// Cards returns a copy of the remaining ordered sequence
func (s *Shoe) Cards() []Card {
	out := make([]Card, len(s.cards))
	copy(out, s.cards)
	return out
}
