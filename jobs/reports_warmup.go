package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Suleymanaz/DB-TECHv2/internal/reports"
	"github.com/Suleymanaz/DB-TECHv2/internal/shared"
)

// ReportsWarmupJob precomputes P&L snapshots into the report cache.
type ReportsWarmupJob struct {
	pool    *pgxpool.Pool
	reports *reports.Service
	logger  *slog.Logger
}

func NewReportsWarmupJob(pool *pgxpool.Pool, reportsService *reports.Service, logger *slog.Logger) *ReportsWarmupJob {
	return &ReportsWarmupJob{pool: pool, reports: reportsService, logger: logger}
}

func (j *ReportsWarmupJob) Handle(ctx context.Context, t *asynq.Task) error {
	var payload ReportsWarmupPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}

	filter := reports.Filter{}
	if payload.Period == "month" {
		now := shared.DateOnly(time.Now().UTC())
		filter.Start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		filter.End = now
	}

	companyIDs := []int64{payload.CompanyID}
	if payload.CompanyID == 0 {
		rows, err := j.pool.Query(ctx, `SELECT id FROM companies WHERE active`)
		if err != nil {
			return err
		}
		defer rows.Close()
		companyIDs = companyIDs[:0]
		for rows.Next() {
			var id int64
			if err := rows.Scan(&id); err != nil {
				return err
			}
			companyIDs = append(companyIDs, id)
		}
		if err := rows.Err(); err != nil {
			return err
		}
	}

	for _, companyID := range companyIDs {
		if _, err := j.reports.Build(ctx, companyID, filter); err != nil {
			j.logger.Error("report warmup",
				slog.Int64("company_id", companyID),
				slog.Any("error", err))
			return err
		}
	}
	return nil
}
