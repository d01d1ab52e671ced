// Package domain defines the core baccarat types: cards, the shoe,
// round results and the repository contracts behind them.
package domain

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// Card is a single playing card. Rank 1-13, suit 1-4.
// Rank 11 is Jack, 12 Queen, 13 King.
type Card struct {
	Rank int
	Suit int
}

// Value returns the baccarat value of the card: face cards count as 10.
func (c Card) Value() int {
	if c.Rank > 10 {
		return 10
	}
	return c.Rank
}

// String encodes the card in the persisted "rank.suit" form
func (c Card) String() string {
	return fmt.Sprintf("%d.%d", c.Rank, c.Suit)
}

// ParseCard decodes a card from its "rank.suit" form
func ParseCard(s string) (Card, error) {
	rankStr, suitStr, ok := strings.Cut(s, ".")
	if !ok {
		return Card{}, fmt.Errorf("malformed card %q", s)
	}
	rank, err := strconv.Atoi(rankStr)
	if err != nil {
		return Card{}, fmt.Errorf("malformed card rank %q: %w", s, err)
	}
	suit, err := strconv.Atoi(suitStr)
	if err != nil {
		return Card{}, fmt.Errorf("malformed card suit %q: %w", s, err)
	}
	if rank < 1 || rank > 13 || suit < 1 || suit > 4 {
		return Card{}, fmt.Errorf("card %q out of range", s)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// NewShoeCards generates decks*52 cards in shuffled order
func NewShoeCards(decks int, rnd *rand.Rand) []Card {
	cards := make([]Card, 0, decks*52)
	for i := 0; i < decks; i++ {
		for rank := 1; rank <= 13; rank++ {
			for suit := 1; suit <= 4; suit++ {
				cards = append(cards, Card{Rank: rank, Suit: suit})
			}
		}
	}
	rnd.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return cards
}

// EncodeCards serializes an ordered card sequence for storage
func EncodeCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, ",")
}

// DecodeCards parses a card sequence produced by EncodeCards
func DecodeCards(encoded string) ([]Card, error) {
	if encoded == "" {
		return []Card{}, nil
	}
	parts := strings.Split(encoded, ",")
	cards := make([]Card, 0, len(parts))
	for _, p := range parts {
		card, err := ParseCard(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}
