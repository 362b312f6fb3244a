package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"

	"github.com/Suleymanaz/DB-TECHv2/internal/app"
	"github.com/Suleymanaz/DB-TECHv2/internal/catalog"
	"github.com/Suleymanaz/DB-TECHv2/internal/expenses"
	"github.com/Suleymanaz/DB-TECHv2/internal/platform/cache"
	"github.com/Suleymanaz/DB-TECHv2/internal/platform/db"
	"github.com/Suleymanaz/DB-TECHv2/internal/reports"
	"github.com/Suleymanaz/DB-TECHv2/internal/shared"
	"github.com/Suleymanaz/DB-TECHv2/internal/trading"
	"github.com/Suleymanaz/DB-TECHv2/jobs"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	auditLogger := shared.NewAuditLogger(pool)
	productsRepo := catalog.NewRepository(pool)
	tradingService := trading.NewService(logger, trading.NewRepository(pool), auditLogger)
	expensesService := expenses.NewService(logger, expenses.NewRepository(pool), auditLogger)
	reportsService := reports.NewService(logger, tradingService, expensesService, redisClient)

	stockAlertJob := jobs.NewStockAlertJob(pool, productsRepo, logger)
	warmupJob := jobs.NewReportsWarmupJob(pool, reportsService, logger)

	scanTask, err := jobs.NewStockAlertTask(jobs.StockAlertPayload{})
	if err != nil {
		logger.Error("build stock alert task", slog.Any("error", err))
		os.Exit(1)
	}
	warmupTask, err := jobs.NewReportsWarmupTask(jobs.ReportsWarmupPayload{Period: "month"})
	if err != nil {
		logger.Error("build warmup task", slog.Any("error", err))
		os.Exit(1)
	}

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:    logger,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskStockAlertScan, Handler: stockAlertJob.Handle},
			{Type: jobs.TaskReportsWarmup, Handler: warmupJob.Handle},
		},
		Cron: []jobs.CronRegistration{
			{Spec: jobs.IntervalSpec(cfg.StockAlertInterval), Task: scanTask, Options: []asynq.Option{asynq.MaxRetry(3)}},
			{Spec: "30 5 * * *", Task: warmupTask, Options: []asynq.Option{asynq.MaxRetry(3)}},
		},
	})
	if err != nil {
		logger.Error("init worker", slog.Any("error", err))
		os.Exit(1)
	}

	if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("worker run", slog.Any("error", err))
		os.Exit(1)
	}
}
