package reports

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/Suleymanaz/DB-TECHv2/internal/expenses"
	"github.com/Suleymanaz/DB-TECHv2/internal/trading"
)

const cacheTTL = 5 * time.Minute

type TransactionSource interface {
	List(ctx context.Context, companyID int64, filters trading.ListFilters) ([]trading.Transaction, int, error)
}

type ExpenseSource interface {
	List(ctx context.Context, companyID int64, filters expenses.ListFilters) ([]expenses.Expense, int, error)
}

// Report is the full response payload: the P&L summary plus the expense
// breakdown used by the dashboard chart.
type Report struct {
	Summary    Summary                       `json:"summary"`
	ByCategory map[expenses.Category]float64 `json:"expenses_by_category"`
	Period     map[string]string             `json:"period,omitempty"`
}

type Service struct {
	logger       *slog.Logger
	transactions TransactionSource
	expenses     ExpenseSource
	cache        *redis.Client
}

func NewService(logger *slog.Logger, transactions TransactionSource, expenseSource ExpenseSource, cache *redis.Client) *Service {
	return &Service{
		logger:       logger,
		transactions: transactions,
		expenses:     expenseSource,
		cache:        cache,
	}
}

// Build assembles a report for the period, fetching transactions and
// expenses concurrently. Results are held in a short-lived cache snapshot;
// a stale read window of a few minutes is acceptable for dashboards.
func (s *Service) Build(ctx context.Context, companyID int64, filter Filter) (Report, error) {
	key := cacheKey(companyID, filter)
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, key).Bytes(); err == nil {
			var cached Report
			if err := json.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
		}
	}

	var (
		transactionList []trading.Transaction
		expenseList     []expenses.Expense
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		transactionList, _, err = s.transactions.List(gctx, companyID, trading.ListFilters{})
		return err
	})
	g.Go(func() error {
		var err error
		expenseList, _, err = s.expenses.List(gctx, companyID, expenses.ListFilters{})
		return err
	})
	if err := g.Wait(); err != nil {
		return Report{}, fmt.Errorf("build report: %w", err)
	}

	report := Report{
		Summary:    Summarize(transactionList, expenseList, filter),
		ByCategory: ExpensesByCategory(expenseList, filter),
		Period:     periodLabels(filter),
	}

	if s.cache != nil {
		raw, err := json.Marshal(report)
		if err == nil {
			if err := s.cache.Set(ctx, key, raw, cacheTTL).Err(); err != nil {
				s.logger.Warn("report cache write", slog.Any("error", err))
			}
		}
	}
	return report, nil
}

// Invalidate drops every cached snapshot for the tenant, called after a
// commit or expense change.
func (s *Service) Invalidate(ctx context.Context, companyID int64) {
	if s.cache == nil {
		return
	}
	pattern := fmt.Sprintf("reports:summary:%d:*", companyID)
	iter := s.cache.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := s.cache.Del(ctx, iter.Val()).Err(); err != nil {
			s.logger.Warn("report cache invalidate", slog.Any("error", err))
		}
	}
	if err := iter.Err(); err != nil {
		s.logger.Warn("report cache scan", slog.Any("error", err))
	}
}

func cacheKey(companyID int64, filter Filter) string {
	return fmt.Sprintf("reports:summary:%d:%s:%s",
		companyID, filter.Start.Format(time.DateOnly), filter.End.Format(time.DateOnly))
}

func periodLabels(filter Filter) map[string]string {
	out := make(map[string]string, 2)
	if !filter.Start.IsZero() {
		out["start"] = filter.Start.Format(time.DateOnly)
	}
	if !filter.End.IsZero() {
		out["end"] = filter.End.Format(time.DateOnly)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
