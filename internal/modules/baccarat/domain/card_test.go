package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardValue(t *testing.T) {
	for rank := 1; rank <= 13; rank++ {
		card := Card{Rank: rank, Suit: 1}
		want := rank
		if rank > 10 {
			want = 10
		}
		if got := card.Value(); got != want {
			t.Errorf("Card rank %d: expected value %d, got %d", rank, want, got)
		}
	}
}

func TestNewShoeCards(t *testing.T) {
	decks := 2
	cards := NewShoeCards(decks, rand.New(rand.NewSource(42)))

	if len(cards) != decks*52 {
		t.Fatalf("Expected %d cards, got %d", decks*52, len(cards))
	}

	// Every distinct card must appear exactly once per deck
	counts := make(map[Card]int)
	for _, c := range cards {
		counts[c]++
	}
	if len(counts) != 52 {
		t.Errorf("Expected 52 distinct cards, got %d", len(counts))
	}
	for c, n := range counts {
		if n != decks {
			t.Errorf("Card %s appears %d times, expected %d", c, n, decks)
		}
	}
}

func TestEncodeDecodeCards(t *testing.T) {
	cards := []Card{{Rank: 1, Suit: 1}, {Rank: 13, Suit: 4}, {Rank: 10, Suit: 2}}

	decoded, err := DecodeCards(EncodeCards(cards))
	assert.NoError(t, err)
	assert.Equal(t, cards, decoded)

	empty, err := DecodeCards("")
	assert.NoError(t, err)
	assert.Empty(t, empty)
}

func TestParseCardRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "5", "x.1", "5.y", "0.1", "14.1", "5.0", "5.5"} {
		if _, err := ParseCard(s); err == nil {
			t.Errorf("ParseCard(%q): expected error", s)
		}
	}
}

func TestShoeDraw(t *testing.T) {
	cards := []Card{{Rank: 1, Suit: 1}, {Rank: 2, Suit: 1}, {Rank: 3, Suit: 1}}
	shoe := NewShoe(cards)

	drawn, err := shoe.Draw(2)
	assert.NoError(t, err)
	assert.Equal(t, cards[:2], drawn, "cards come off the front in order")
	assert.Equal(t, 1, shoe.Size())

	// A short shoe refuses the draw and keeps its cards
	_, err = shoe.Draw(2)
	assert.ErrorIs(t, err, ErrShoeExhausted)
	assert.Equal(t, 1, shoe.Size())

	drawn, err = shoe.Draw(1)
	assert.NoError(t, err)
	assert.Equal(t, cards[2], drawn[0])
	assert.Equal(t, 0, shoe.Size())
}
