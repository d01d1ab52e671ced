package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof" // Register pprof handlers
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frankieli/baccarat_game/internal/config"
	baccaratHttp "github.com/frankieli/baccarat_game/internal/modules/baccarat/adapter/http"
	baccaratTcp "github.com/frankieli/baccarat_game/internal/modules/baccarat/adapter/tcp"
	baccaratDomain "github.com/frankieli/baccarat_game/internal/modules/baccarat/domain"
	baccaratEngine "github.com/frankieli/baccarat_game/internal/modules/baccarat/engine"
	baccaratDB "github.com/frankieli/baccarat_game/internal/modules/baccarat/repository/db"
	baccaratRedis "github.com/frankieli/baccarat_game/internal/modules/baccarat/repository/redis"
	baccaratUseCase "github.com/frankieli/baccarat_game/internal/modules/baccarat/usecase"
	ledgerDomain "github.com/frankieli/baccarat_game/internal/modules/ledger/domain"
	ledgerDB "github.com/frankieli/baccarat_game/internal/modules/ledger/repository/db"
	ledgerUseCase "github.com/frankieli/baccarat_game/internal/modules/ledger/usecase"
	"github.com/frankieli/baccarat_game/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	pprofPort := flag.String("pprof-port", "", "Port to run pprof server on (e.g., 6060)")
	background := flag.Bool("d", false, "Run in background mode (disable console logging)")
	flag.Parse()

	config.LoadEnvFile()
	cfg := config.LoadBaccaratConfig()

	logger.InitWithFile(cfg.Server.LogFile, cfg.Server.LogLevel, "json", !*background)
	defer logger.Flush()

	if *pprofPort != "" {
		go func() {
			addr := "localhost:" + *pprofPort
			logger.InfoGlobal().Str("addr", addr).Msg("Starting pprof server")
			if err := http.ListenAndServe(addr, nil); err != nil {
				logger.ErrorGlobal().Err(err).Msg("Failed to start pprof server")
			}
		}()
	}

	logger.InfoGlobal().Msg("Starting Baccarat Server...")

	// Infrastructure
	dbConnStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.User, cfg.Database.Password, cfg.Database.Name)

	gormLog := logger.NewGormLogger()
	gormLog.LogLevel = gormlogger.Warn

	db, err := gorm.Open(postgres.Open(dbConnStr), &gorm.Config{
		Logger: gormLog,
	})
	if err != nil {
		logger.FatalGlobal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.FatalGlobal().Err(err).Msg("Failed to get database instance")
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		logger.FatalGlobal().Err(err).Msg("Failed to ping database")
	}
	logger.InfoGlobal().Msg("Database connected")

	if err := db.AutoMigrate(
		&ledgerDomain.Account{},
		&baccaratDomain.ShoeState{},
		&baccaratDomain.HistoryBatch{},
		&baccaratDomain.BetOrder{},
	); err != nil {
		logger.FatalGlobal().Err(err).Msg("Failed to migrate schema")
	}

	// Shoe storage backend: db by default, redis when configured
	var shoeRepo baccaratDomain.ShoeRepository
	if cfg.Game.ShoeBackend == "redis" {
		rdb := redis.NewClient(&redis.Options{
			Addr: fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		})
		defer rdb.Close()
		shoeRepo = baccaratRedis.NewShoeRepository(rdb)
		logger.InfoGlobal().Msg("Shoe backend: redis")
	} else {
		shoeRepo = baccaratDB.NewShoeRepository(db)
		logger.InfoGlobal().Msg("Shoe backend: postgres")
	}

	ctx := context.Background()

	// Game engine
	shoe, err := baccaratEngine.LoadOrCreateShoe(ctx, shoeRepo, cfg.Game.Decks)
	if err != nil {
		logger.FatalGlobal().Err(err).Msg("Failed to initialize shoe")
	}

	historyRepo := baccaratDB.NewHistoryRepository(db)
	if err := historyRepo.Reset(ctx); err != nil {
		logger.FatalGlobal().Err(err).Msg("Failed to reset game history")
	}
	logger.InfoGlobal().Msg("Game history reset")

	history := baccaratEngine.NewHistoryLog(historyRepo)
	dealEngine := baccaratEngine.NewDealEngine(shoe, shoeRepo, history)

	// Ledger module
	accountRepo := ledgerDB.NewAccountRepository(db)
	ledgerUC := ledgerUseCase.NewLedgerUseCase(accountRepo)

	// Betting module
	betOrderRepo := baccaratDB.NewBetOrderRepository(db)
	bettingUC := baccaratUseCase.NewBettingUseCase(dealEngine, ledgerUC, betOrderRepo)

	// Admin HTTP surface
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), logger.GinMiddleware())
	adminHandler := baccaratHttp.NewHandler(dealEngine, history, historyRepo, ledgerUC, betOrderRepo)
	adminHandler.RegisterRoutes(router)

	adminSrv := &http.Server{
		Addr:    ":" + cfg.Server.AdminPort,
		Handler: router,
	}
	go func() {
		logger.InfoGlobal().Str("port", cfg.Server.AdminPort).Msg("Admin HTTP server listening")
		if err := adminSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.ErrorGlobal().Err(err).Msg("Admin server failed")
		}
	}()

	// TCP line protocol server
	tcpHandler := baccaratTcp.NewHandler(bettingUC, ledgerUC)
	tcpServer := baccaratTcp.NewServer(":"+cfg.Server.Port, int64(cfg.Game.MaxWorkers), tcpHandler)

	serverCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	errChan := make(chan error, 1)
	go func() {
		errChan <- tcpServer.Start(serverCtx)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.InfoGlobal().Str("signal", sig.String()).Msg("Shutting down...")
	case err := <-errChan:
		if err != nil {
			logger.ErrorGlobal().Err(err).Msg("TCP server failed")
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 10*time.Second)
	defer shutdownCancel()

	cancel()
	if err := tcpServer.Shutdown(shutdownCtx); err != nil {
		logger.WarnGlobal().Err(err).Msg("TCP shutdown timed out")
	}
	if err := adminSrv.Shutdown(shutdownCtx); err != nil {
		logger.WarnGlobal().Err(err).Msg("Admin shutdown timed out")
	}

	logger.InfoGlobal().Msg("Server stopped")
}
