package http

import (
	"context"
	"encoding/json"
	"math/big"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/frankieli/baccarat_game/internal/modules/baccarat/domain"
	"github.com/frankieli/baccarat_game/internal/modules/baccarat/engine"
	"github.com/frankieli/baccarat_game/internal/modules/baccarat/repository/memory"
	ledgerMemory "github.com/frankieli/baccarat_game/internal/modules/ledger/repository/memory"
	ledgerUsecase "github.com/frankieli/baccarat_game/internal/modules/ledger/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(t *testing.T) (*gin.Engine, *ledgerUsecase.LedgerUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cards := domain.NewShoeCards(1, rand.New(rand.NewSource(1)))
	shoeRepo := memory.NewShoeRepository()
	historyRepo := memory.NewHistoryRepository()
	history := engine.NewHistoryLog(historyRepo)
	dealEngine := engine.NewDealEngine(domain.NewShoe(cards), shoeRepo, history)
	ledger := ledgerUsecase.NewLedgerUseCase(ledgerMemory.NewAccountRepository())

	handler := NewHandler(dealEngine, history, historyRepo, ledger, memory.NewBetOrderRepository())
	router := gin.New()
	handler.RegisterRoutes(router)
	return router, ledger
}

func TestHealthz(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestShoeEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/shoe", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]int
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 52, body["remaining"])
}

func TestBalanceEndpoint(t *testing.T) {
	router, ledger := newTestRouter(t)
	assert.NoError(t, ledger.Login(context.Background(), "alice", big.NewInt(100)))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/accounts/alice/balance", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "100", body["balance"])

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/accounts/ghost/balance", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
