package jobs

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskStockAlertScan scans a tenant's catalog for products at or below
	// their critical threshold.
	TaskStockAlertScan = "stock:alert_scan"
	// TaskReportsWarmup precomputes the dashboard report snapshot so the
	// first morning request is served from cache.
	TaskReportsWarmup = "reports:warmup"
)

// IntervalSpec converts a configured cadence into an asynq periodic entry
// spec. Sub-minute intervals are clamped, the scheduler ticks once a minute.
func IntervalSpec(every time.Duration) string {
	if every < time.Minute {
		every = time.Minute
	}
	return "@every " + every.String()
}

// StockAlertPayload selects which tenants to scan. An empty CompanyID scans
// every active company.
type StockAlertPayload struct {
	CompanyID int64 `json:"company_id,omitempty"`
}

// ReportsWarmupPayload selects the period to precompute.
type ReportsWarmupPayload struct {
	CompanyID int64  `json:"company_id,omitempty"`
	Period    string `json:"period"` // "month" or "all"
}

// NewStockAlertTask constructs an Asynq task.
func NewStockAlertTask(payload StockAlertPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskStockAlertScan, data), nil
}

// NewReportsWarmupTask constructs an Asynq task.
func NewReportsWarmupTask(payload ReportsWarmupPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskReportsWarmup, data), nil
}
