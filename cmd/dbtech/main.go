package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"

	"github.com/Suleymanaz/DB-TECHv2/internal/app"
	"github.com/Suleymanaz/DB-TECHv2/internal/auth"
	"github.com/Suleymanaz/DB-TECHv2/internal/catalog"
	"github.com/Suleymanaz/DB-TECHv2/internal/contacts"
	"github.com/Suleymanaz/DB-TECHv2/internal/expenses"
	"github.com/Suleymanaz/DB-TECHv2/internal/platform/cache"
	"github.com/Suleymanaz/DB-TECHv2/internal/platform/db"
	"github.com/Suleymanaz/DB-TECHv2/internal/rbac"
	"github.com/Suleymanaz/DB-TECHv2/internal/reports"
	"github.com/Suleymanaz/DB-TECHv2/internal/shared"
	"github.com/Suleymanaz/DB-TECHv2/internal/trading"
	"github.com/Suleymanaz/DB-TECHv2/internal/users"
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

	dbpool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer dbpool.Close()

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

	sessionManager := shared.NewSessionManager(redisClient, "dbtech_session", cfg.SessionSecret, cfg.SessionTTL, cfg.IsProduction())
	auditLogger := shared.NewAuditLogger(dbpool)
	rbacMiddleware := rbac.Middleware{Logger: logger}

	usersService := users.NewService(users.NewRepository(dbpool))
	catalogService := catalog.NewService(catalog.NewRepository(dbpool))
	contactsService := contacts.NewService(contacts.NewRepository(dbpool))
	tradingService := trading.NewService(logger, trading.NewRepository(dbpool), auditLogger)
	expensesService := expenses.NewService(logger, expenses.NewRepository(dbpool), auditLogger)
	reportsService := reports.NewService(logger, tradingService, expensesService, redisClient)

	jobsClient, err := jobs.NewClient(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	if err != nil {
		logger.Error("init jobs client", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := jobsClient.Close(); err != nil {
			logger.Warn("jobs client close", slog.Any("error", err))
		}
	}()

	// a commit changes stock and the P&L picture; an expense changes only the P&L
	tradingService.OnCommit(func(ctx context.Context, companyID int64) {
		reportsService.Invalidate(ctx, companyID)
		if _, err := jobsClient.EnqueueStockAlertScan(ctx, companyID); err != nil {
			logger.Warn("enqueue stock alert scan", slog.Any("error", err))
		}
	})
	expensesService.OnChange(reportsService.Invalidate)

	authMiddleware := auth.Middleware{Logger: logger, Sessions: sessionManager, Users: usersService}
	router := app.NewRouter(app.RouterConfig{
		Middleware: app.MiddlewareStack(app.MiddlewareConfig{
			Logger: logger,
			Config: cfg,
			Auth:   authMiddleware,
		}),
		Auth:     auth.NewHandler(logger, usersService, sessionManager),
		Catalog:  catalog.NewHandler(logger, catalogService, rbacMiddleware),
		Contacts: contacts.NewHandler(logger, contactsService, rbacMiddleware),
		Trading:  trading.NewHandler(logger, tradingService, catalogService, contactsService, rbacMiddleware),
		Expenses: expenses.NewHandler(logger, expensesService, rbacMiddleware),
		Reports:  reports.NewHandler(logger, reportsService, rbacMiddleware),
		Users:    users.NewHandler(logger, usersService, rbacMiddleware),
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.String("addr", cfg.AppAddr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown", slog.Any("error", err))
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server run", slog.Any("error", err))
			os.Exit(1)
		}
	}
}
