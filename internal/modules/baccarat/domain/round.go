package domain

import "fmt"

// Outcome classifies a resolved round
type Outcome int

const (
	OutcomePlayerWin Outcome = iota
	OutcomeBankerWin
	OutcomeBankerWinSixCard // banker wins with exactly 6 points, special payout
	OutcomeDraw
)

// Code returns the single-letter history code for the outcome
func (o Outcome) Code() string {
	switch o {
	case OutcomePlayerWin:
		return "P"
	case OutcomeBankerWin, OutcomeBankerWinSixCard:
		return "B"
	default:
		return "D"
	}
}

func (o Outcome) String() string {
	switch o {
	case OutcomePlayerWin:
		return "player_win"
	case OutcomeBankerWin:
		return "banker_win"
	case OutcomeBankerWinSixCard:
		return "banker_win_six_card"
	default:
		return "draw"
	}
}

// Side is the bet selection: Player, Banker or Tie
type Side string

const (
	SidePlayer Side = "P"
	SideBanker Side = "B"
	SideTie    Side = "D"
)

// ParseSide validates a protocol side token
func ParseSide(s string) (Side, error) {
	switch Side(s) {
	case SidePlayer, SideBanker, SideTie:
		return Side(s), nil
	}
	return "", fmt.Errorf("invalid side %q", s)
}

// RoundResult is the structured outcome of one resolved round.
// Totals are the mod-10 reduced hand values, always in [0,9].
type RoundResult struct {
	PlayerCards []Card
	BankerCards []Card
	PlayerTotal int
	BankerTotal int
	Outcome     Outcome
}

// PlayerValues returns the dealt player card values in draw order
func (r *RoundResult) PlayerValues() []int {
	return cardValues(r.PlayerCards)
}

// BankerValues returns the dealt banker card values in draw order
func (r *RoundResult) BankerValues() []int {
	return cardValues(r.BankerCards)
}

func cardValues(cards []Card) []int {
	values := make([]int, len(cards))
	for i, c := range cards {
		values[i] = c.Value()
	}
	return values
}
