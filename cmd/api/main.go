package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"interaction-tracking-service/internal/config"
	reportingDomain "interaction-tracking-service/internal/reporting/core/domain"

	trackingHttp "interaction-tracking-service/internal/tracking/adapters/http/fiber"
	trackingRepo "interaction-tracking-service/internal/tracking/adapters/sqlite"
	trackingUsecase "interaction-tracking-service/internal/tracking/core/usecase"

	reportingHttp "interaction-tracking-service/internal/reporting/adapters/http/fiber"
	reportingRepo "interaction-tracking-service/internal/reporting/adapters/sqlite"
	reportingUsecase "interaction-tracking-service/internal/reporting/core/usecase"

	_ "interaction-tracking-service/docs"
)

func main() {
	// Config (.env is optional)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := buildLogger(cfg.Logging.Level)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// Embedded store. WAL keeps dashboard reads from blocking the append
	// path; busy_timeout covers writer contention.
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on", cfg.Database.Path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		logger.Fatal("failed to open sqlite store", zap.Error(err))
	}
	defer db.Close()

	db.SetMaxOpenConns(8)
	db.SetMaxIdleConns(4)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		logger.Fatal("failed to ping sqlite store", zap.Error(err))
	}

	if err := trackingRepo.EnsureSchema(context.Background(), db); err != nil {
		logger.Fatal("failed to ensure schema", zap.Error(err))
	}

	// Adapter-level DB wrappers
	trackingDB := trackingRepo.NewSQLDB(db)
	reportingDB := reportingRepo.NewSQLDB(db)

	// Repositories
	trackingRepository := trackingRepo.NewTrackingRepository(trackingDB)
	statsRepository := reportingRepo.NewStatsRepository(reportingDB, reportingDomain.ClassifyFunction)

	// Usecases
	guard := trackingUsecase.NewTokenGuard(cfg.Service.APIToken)
	recordUC := trackingUsecase.NewRecordInteractionUseCase(guard, trackingRepository)
	syncUC := trackingUsecase.NewSyncUsersUseCase(guard, trackingRepository)
	dashboardUC := reportingUsecase.NewBuildDashboardUseCase(statsRepository)
	rangeUC := reportingUsecase.NewBuildRangeReportUseCase(statsRepository)

	// HTTP (Fiber) app + handlers
	app := fiber.New()

	trackingHandler := trackingHttp.NewTrackingHandler(recordUC, syncUC, logger)
	app.Post("/api/track", trackingHandler.TrackInteraction)
	app.Get("/api/track", trackingHandler.TrackUsage)
	app.Post("/api/sync-users", trackingHandler.SyncUsers)
	app.Get("/api/sync-users", trackingHandler.SyncUsersUsage)

	reportingHandler := reportingHttp.NewReportingHandler(dashboardUC, rangeUC, logger)
	app.Get("/api/dashboard", reportingHandler.GetDashboard)
	app.Post("/api/dashboard/range", reportingHandler.BuildRangeReport)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Service.Port)
	go func() {
		if err := app.Listen(addr); err != nil {
			logger.Error("fiber stopped", zap.Error(err))
		}
	}()

	logger.Info("server started", zap.String("addr", addr), zap.String("db", cfg.Database.Path))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("fiber shutdown error", zap.Error(err))
	}

	logger.Info("server exiting")
}

func buildLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)

	return zapCfg.Build()
}
