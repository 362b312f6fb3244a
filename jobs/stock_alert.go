package jobs

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Suleymanaz/DB-TECHv2/internal/catalog"
)

// StockAlertJob walks tenant catalogs and logs every product at or below its
// reorder threshold. Alert delivery (mail, dashboard badge) reads these logs.
type StockAlertJob struct {
	pool     *pgxpool.Pool
	products catalog.Repository
	logger   *slog.Logger
}

func NewStockAlertJob(pool *pgxpool.Pool, products catalog.Repository, logger *slog.Logger) *StockAlertJob {
	return &StockAlertJob{pool: pool, products: products, logger: logger}
}

func (j *StockAlertJob) Handle(ctx context.Context, t *asynq.Task) error {
	var payload StockAlertPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}

	companyIDs := []int64{payload.CompanyID}
	if payload.CompanyID == 0 {
		var err error
		if companyIDs, err = j.activeCompanies(ctx); err != nil {
			return err
		}
	}

	for _, companyID := range companyIDs {
		critical, err := j.products.ListBelowThreshold(ctx, companyID)
		if err != nil {
			return err
		}
		for _, p := range critical {
			j.logger.Warn("stock below threshold",
				slog.Int64("company_id", companyID),
				slog.String("sku", p.SKU),
				slog.Int64("stock", p.Stock),
				slog.Int64("threshold", p.CriticalThreshold))
		}
		if _, err := j.pool.Exec(ctx,
			`INSERT INTO stock_alert_runs (company_id, critical_count, ran_at) VALUES ($1, $2, now())`,
			companyID, len(critical)); err != nil {
			return err
		}
	}
	return nil
}

func (j *StockAlertJob) activeCompanies(ctx context.Context) ([]int64, error) {
	rows, err := j.pool.Query(ctx, `SELECT id FROM companies WHERE active`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
