package reports

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Suleymanaz/DB-TECHv2/internal/platform/httpx"
	"github.com/Suleymanaz/DB-TECHv2/internal/rbac"
	"github.com/Suleymanaz/DB-TECHv2/internal/shared"
)

type Handler struct {
	logger  *slog.Logger
	service *Service
	rbac    rbac.Middleware
}

func NewHandler(logger *slog.Logger, service *Service, rbacMiddleware rbac.Middleware) *Handler {
	return &Handler{logger: logger, service: service, rbac: rbacMiddleware}
}

func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(h.rbac.RequireAny(rbac.ActionReportsView))
	r.Get("/summary", h.Summary)
	r.Get("/summary.csv", h.SummaryCSV)
	return r
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	report, err := h.buildReport(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, report)
}

func (h *Handler) SummaryCSV(w http.ResponseWriter, r *http.Request) {
	report, err := h.buildReport(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="financial-report-`+time.Now().Format("2006-01-02")+`.csv"`)
	if err := WriteSummaryCSV(w, report); err != nil {
		h.logger.Error("write report csv", slog.Any("error", err))
	}
}

func (h *Handler) buildReport(r *http.Request) (Report, error) {
	companyID, err := shared.TenantFromContext(r.Context())
	if err != nil {
		return Report{}, httpx.ErrUnauthorized
	}

	q := r.URL.Query()
	start, end, err := shared.ParseDateRange(q.Get("start"), q.Get("end"))
	if err != nil {
		return Report{}, fmt.Errorf("%w: %s", httpx.ErrValidation, err)
	}

	report, err := h.service.Build(r.Context(), companyID, Filter{Start: start, End: end})
	if err != nil {
		h.logger.Error("build report", slog.Any("error", err))
		return Report{}, err
	}
	return report, nil
}

// WriteSummaryCSV serialises the P&L figures and the expense breakdown as a
// two-column export.
func WriteSummaryCSV(w io.Writer, report Report) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	rows := [][]string{
		{"Metric", "Value"},
		{"Total Sales", shared.FormatCurrency(report.Summary.TotalSales)},
		{"Inventory Purchases", shared.FormatCurrency(report.Summary.TotalInventoryPurchases)},
		{"Operating Expenses", shared.FormatCurrency(report.Summary.TotalExpenses)},
		{"Net Profit", shared.FormatCurrency(report.Summary.NetProfit)},
		{"Expense/Revenue %", fmt.Sprintf("%.2f", report.Summary.ExpenseToRevenuePct)},
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	for _, category := range sortedCategories(report.ByCategory) {
		if err := writer.Write([]string{"Expense: " + string(category), shared.FormatCurrency(report.ByCategory[category])}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
