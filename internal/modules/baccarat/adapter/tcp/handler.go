// Package tcp serves the legacy line protocol over a stream socket.
package tcp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"math/big"
	"net"
	"strings"

	"github.com/frankieli/baccarat_game/internal/modules/baccarat/domain"
	"github.com/frankieli/baccarat_game/internal/modules/baccarat/usecase"
	ledgerDomain "github.com/frankieli/baccarat_game/internal/modules/ledger/domain"
	ledgerUsecase "github.com/frankieli/baccarat_game/internal/modules/ledger/usecase"
	"github.com/frankieli/baccarat_game/pkg/logger"
)

// Handler serves one connection of the pipe-delimited line protocol:
//
//	login|<username>|<balance>
//	bet|<amount>|<username>
//	deal|<side>|<amount>|<username>
//	exit
type Handler struct {
	betting *usecase.BettingUseCase
	ledger  *ledgerUsecase.LedgerUseCase
}

// NewHandler creates a new protocol handler
func NewHandler(betting *usecase.BettingUseCase, ledger *ledgerUsecase.LedgerUseCase) *Handler {
	return &Handler{
		betting: betting,
		ledger:  ledger,
	}
}

// HandleConn reads commands line by line until the client exits or the
// connection drops. Every error stays local to this connection.
func (h *Handler) HandleConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	remote := conn.RemoteAddr().String()
	logger.Info(ctx).Str("remote", remote).Msg("Client connected")

	scanner := bufio.NewScanner(conn)
	writer := bufio.NewWriter(conn)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cctx := logger.WithRequestID(ctx, logger.GenerateRequestID())
		cctx = logger.WithFields(cctx, map[string]interface{}{
			"remote": remote,
		})
		logger.Debug(cctx).Str("line", line).Msg("Command received")

		response, closeConn := h.dispatch(cctx, line)
		for _, l := range response {
			writer.WriteString(l)
			writer.WriteString("\n")
		}
		if err := writer.Flush(); err != nil {
			logger.Warn(cctx).Err(err).Msg("Failed to write response")
			return
		}
		if closeConn {
			logger.Info(cctx).Msg("Client exited")
			return
		}
	}

	if err := scanner.Err(); err != nil {
		logger.Warn(ctx).Err(err).Str("remote", remote).Msg("Connection read error")
	} else {
		logger.Info(ctx).Str("remote", remote).Msg("Client disconnected")
	}
}

// dispatch runs one command and returns the response lines plus
// whether the connection should close afterwards
func (h *Handler) dispatch(ctx context.Context, line string) ([]string, bool) {
	fields := strings.Split(line, "|")

	switch strings.ToLower(fields[0]) {
	case "login":
		return h.handleLogin(ctx, fields), false
	case "bet":
		return h.handleBet(ctx, fields), false
	case "deal":
		return h.handleDeal(ctx, fields), false
	case "exit":
		// Exit only ends this connection, never the process
		return []string{"You have exited the game!"}, true
	default:
		return []string{"Invalid command."}, false
	}
}

func (h *Handler) handleLogin(ctx context.Context, fields []string) []string {
	if len(fields) != 3 {
		return []string{"Invalid command."}
	}
	username := fields[1]
	balance, ok := new(big.Int).SetString(fields[2], 10)
	if !ok {
		return []string{"Invalid command."}
	}

	if err := h.ledger.Login(ctx, username, balance); err != nil {
		return []string{"Error logging in. Please try again."}
	}
	return []string{fmt.Sprintf("User %s logged in with balance: %s", username, balance)}
}

func (h *Handler) handleBet(ctx context.Context, fields []string) []string {
	if len(fields) != 3 {
		return []string{"Invalid command."}
	}
	amount, ok := new(big.Int).SetString(fields[1], 10)
	if !ok {
		return []string{"Invalid command."}
	}
	username := fields[2]

	err := h.betting.PlaceBet(ctx, username, amount)
	switch {
	case err == nil:
		return []string{fmt.Sprintf("%s - Bet of %s placed.", username, amount)}
	case errors.Is(err, domain.ErrInsufficientBalance):
		return []string{"Insufficient amount"}
	case errors.Is(err, ledgerDomain.ErrUnknownUser):
		return []string{fmt.Sprintf("Unknown user %s. Please login first.", username)}
	default:
		return []string{"Error placing bet. Please try again."}
	}
}

func (h *Handler) handleDeal(ctx context.Context, fields []string) []string {
	if len(fields) != 4 {
		return []string{"Invalid command."}
	}
	side, err := domain.ParseSide(fields[1])
	if err != nil {
		return []string{"Invalid command."}
	}
	amount, ok := new(big.Int).SetString(fields[2], 10)
	if !ok {
		return []string{"Invalid command."}
	}
	username := fields[3]

	result, err := h.betting.Deal(ctx, username, side, amount)
	switch {
	case err == nil:
		return []string{renderRound(result.Round), renderSettlement(result)}
	case errors.Is(err, domain.ErrInsufficientBalance):
		return []string{"Insufficient amount"}
	case errors.Is(err, domain.ErrShoeExhausted):
		return []string{"Not enough cards to deal."}
	case errors.Is(err, ledgerDomain.ErrUnknownUser):
		return []string{fmt.Sprintf("Unknown user %s. Please login first.", username)}
	default:
		return []string{"Error dealing round. Please try again."}
	}
}

// renderRound formats the dealt hands and result text, e.g.
// "P|1|10|3,B|10|10|7 - Banker wins with 7 points."
func renderRound(round *domain.RoundResult) string {
	var sb strings.Builder
	sb.WriteString("P")
	for _, v := range round.PlayerValues() {
		fmt.Fprintf(&sb, "|%d", v)
	}
	sb.WriteString(",B")
	for _, v := range round.BankerValues() {
		fmt.Fprintf(&sb, "|%d", v)
	}
	sb.WriteString(" - ")
	sb.WriteString(outcomeText(round))
	return sb.String()
}

func outcomeText(round *domain.RoundResult) string {
	switch round.Outcome {
	case domain.OutcomePlayerWin:
		return fmt.Sprintf("Player wins with %d points.", round.PlayerTotal)
	case domain.OutcomeBankerWin:
		return fmt.Sprintf("Banker wins with %d points.", round.BankerTotal)
	case domain.OutcomeBankerWinSixCard:
		return "Banker wins with '6-Card Rule'"
	default:
		return "Draw"
	}
}

func renderSettlement(result *usecase.DealResult) string {
	switch result.Settlement {
	case usecase.SettlementWon:
		return fmt.Sprintf("Bet won. Balance updated: %s", result.NewBalance)
	case usecase.SettlementWonSixCard:
		return fmt.Sprintf("Bet won with '6-Card Rule'. Balance updated: %s", result.NewBalance)
	case usecase.SettlementTieWon:
		return fmt.Sprintf("It's a 'Tie' bet. Balance updated: %s", result.NewBalance)
	case usecase.SettlementPush:
		return "It's a draw. Bet refunded."
	default:
		return fmt.Sprintf("Bet lost. Balance remains: %s", result.NewBalance)
	}
}
