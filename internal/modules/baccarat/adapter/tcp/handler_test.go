package tcp

import (
	"bufio"
	"context"
	"net"
	"testing"

	"github.com/frankieli/baccarat_game/internal/modules/baccarat/domain"
	"github.com/frankieli/baccarat_game/internal/modules/baccarat/engine"
	"github.com/frankieli/baccarat_game/internal/modules/baccarat/repository/memory"
	"github.com/frankieli/baccarat_game/internal/modules/baccarat/usecase"
	ledgerMemory "github.com/frankieli/baccarat_game/internal/modules/ledger/repository/memory"
	ledgerUsecase "github.com/frankieli/baccarat_game/internal/modules/ledger/usecase"
	"github.com/stretchr/testify/assert"
)

// startTestConn runs a handler over one end of a pipe and returns the
// client side
func startTestConn(t *testing.T, cards []domain.Card) (*bufio.Scanner, *bufio.Writer) {
	t.Helper()

	shoeRepo := memory.NewShoeRepository()
	history := engine.NewHistoryLog(memory.NewHistoryRepository())
	dealEngine := engine.NewDealEngine(domain.NewShoe(cards), shoeRepo, history)
	ledger := ledgerUsecase.NewLedgerUseCase(ledgerMemory.NewAccountRepository())
	betting := usecase.NewBettingUseCase(dealEngine, ledger, memory.NewBetOrderRepository())
	handler := NewHandler(betting, ledger)

	server, client := net.Pipe()
	go handler.HandleConn(context.Background(), server)
	t.Cleanup(func() { client.Close() })

	return bufio.NewScanner(client), bufio.NewWriter(client)
}

func send(t *testing.T, w *bufio.Writer, line string) {
	t.Helper()
	if _, err := w.WriteString(line + "\n"); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("flush failed: %v", err)
	}
}

func readLine(t *testing.T, r *bufio.Scanner) string {
	t.Helper()
	if !r.Scan() {
		t.Fatalf("connection closed early: %v", r.Err())
	}
	return r.Text()
}

func card(rank int) domain.Card {
	return domain.Card{Rank: rank, Suit: 1}
}

func TestLoginCommand(t *testing.T) {
	r, w := startTestConn(t, nil)

	send(t, w, "login|alice|100")
	assert.Equal(t, "User alice logged in with balance: 100", readLine(t, r))
}

func TestBetCommand(t *testing.T) {
	r, w := startTestConn(t, nil)

	send(t, w, "login|alice|100")
	readLine(t, r)

	send(t, w, "bet|50|alice")
	assert.Equal(t, "alice - Bet of 50 placed.", readLine(t, r))

	send(t, w, "bet|500|alice")
	assert.Equal(t, "Insufficient amount", readLine(t, r))
}

func TestDealCommand(t *testing.T) {
	// Player 10+9 -> 9, banker 10+8 -> 8: player wins
	r, w := startTestConn(t, []domain.Card{card(10), card(9), card(10), card(8)})

	send(t, w, "login|alice|100")
	readLine(t, r)

	send(t, w, "deal|P|50|alice")
	assert.Equal(t, "P|10|9,B|10|8 - Player wins with 9 points.", readLine(t, r))
	assert.Equal(t, "Bet won. Balance updated: 150", readLine(t, r))
}

func TestDealSixCardRule(t *testing.T) {
	// Player 10+10 -> 0, banker 10+6 -> 6: six-card rule pays double
	r, w := startTestConn(t, []domain.Card{card(10), card(13), card(10), card(6)})

	send(t, w, "login|alice|100")
	readLine(t, r)

	send(t, w, "deal|B|10|alice")
	assert.Equal(t, "P|10|10,B|10|6 - Banker wins with '6-Card Rule'", readLine(t, r))
	assert.Equal(t, "Bet won with '6-Card Rule'. Balance updated: 120", readLine(t, r))
}

func TestDealPush(t *testing.T) {
	// Draw with a non-tie side refunds the bet
	r, w := startTestConn(t, []domain.Card{card(10), card(9), card(9), card(10)})

	send(t, w, "login|alice|100")
	readLine(t, r)

	send(t, w, "deal|B|10|alice")
	assert.Equal(t, "P|10|9,B|9|10 - Draw", readLine(t, r))
	assert.Equal(t, "It's a draw. Bet refunded.", readLine(t, r))
}

func TestDealNotEnoughCards(t *testing.T) {
	r, w := startTestConn(t, []domain.Card{card(1), card(2)})

	send(t, w, "login|alice|100")
	readLine(t, r)

	send(t, w, "deal|P|10|alice")
	assert.Equal(t, "Not enough cards to deal.", readLine(t, r))
}

func TestDealInsufficientAmount(t *testing.T) {
	r, w := startTestConn(t, []domain.Card{card(10), card(9), card(10), card(8)})

	send(t, w, "login|alice|5")
	readLine(t, r)

	send(t, w, "deal|P|10|alice")
	assert.Equal(t, "Insufficient amount", readLine(t, r))
}

func TestUnknownUserCommand(t *testing.T) {
	r, w := startTestConn(t, nil)

	send(t, w, "bet|10|ghost")
	assert.Equal(t, "Unknown user ghost. Please login first.", readLine(t, r))
}

func TestInvalidCommand(t *testing.T) {
	r, w := startTestConn(t, nil)

	send(t, w, "shuffle")
	assert.Equal(t, "Invalid command.", readLine(t, r))

	send(t, w, "deal|X|10|alice")
	assert.Equal(t, "Invalid command.", readLine(t, r))

	send(t, w, "login|alice|notanumber")
	assert.Equal(t, "Invalid command.", readLine(t, r))
}

func TestExitClosesOnlyThisConnection(t *testing.T) {
	r, w := startTestConn(t, nil)

	send(t, w, "exit")
	assert.Equal(t, "You have exited the game!", readLine(t, r))

	// The handler closes the connection after the acknowledgement
	if r.Scan() {
		t.Fatalf("expected closed connection, read %q", r.Text())
	}
}
