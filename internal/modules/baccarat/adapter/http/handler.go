// Package http exposes the read-only admin surface over HTTP.
package http

import (
	"errors"
	"net/http"

	"github.com/frankieli/baccarat_game/internal/modules/baccarat/domain"
	"github.com/frankieli/baccarat_game/internal/modules/baccarat/engine"
	ledgerDomain "github.com/frankieli/baccarat_game/internal/modules/ledger/domain"
	ledgerUsecase "github.com/frankieli/baccarat_game/internal/modules/ledger/usecase"
	"github.com/gin-gonic/gin"
)

// Handler serves admin endpoints: health, shoe and history inspection,
// balance and bet-order lookups
type Handler struct {
	engine       *engine.DealEngine
	history      *engine.HistoryLog
	historyRepo  domain.HistoryRepository
	ledger       *ledgerUsecase.LedgerUseCase
	betOrderRepo domain.BetOrderRepository
}

// NewHandler creates a new admin HTTP handler
func NewHandler(
	dealEngine *engine.DealEngine,
	history *engine.HistoryLog,
	historyRepo domain.HistoryRepository,
	ledger *ledgerUsecase.LedgerUseCase,
	betOrderRepo domain.BetOrderRepository,
) *Handler {
	return &Handler{
		engine:       dealEngine,
		history:      history,
		historyRepo:  historyRepo,
		ledger:       ledger,
		betOrderRepo: betOrderRepo,
	}
}

// RegisterRoutes mounts the admin routes on the router
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/healthz", h.health)

	api := r.Group("/api")
	api.GET("/shoe", h.shoe)
	api.GET("/history", h.historyView)
	api.GET("/accounts/:username/balance", h.balance)
	api.GET("/accounts/:username/orders", h.orders)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) shoe(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"remaining": h.engine.Remaining(),
	})
}

func (h *Handler) historyView(c *gin.Context) {
	batches, err := h.historyRepo.RecentBatches(c.Request.Context(), 20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"pending": h.history.Snapshot(),
		"batches": batches,
	})
}

func (h *Handler) balance(c *gin.Context) {
	username := c.Param("username")
	balance, err := h.ledger.GetBalance(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, ledgerDomain.ErrUnknownUser) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown user"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read balance"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"username": username,
		"balance":  balance.String(),
	})
}

func (h *Handler) orders(c *gin.Context) {
	username := c.Param("username")
	orders, err := h.betOrderRepo.ListByUsername(c.Request.Context(), username, 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"username": username,
		"orders":   orders,
	})
}
