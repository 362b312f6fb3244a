package catalog

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/Suleymanaz/DB-TECHv2/internal/platform/httpx"
	"github.com/Suleymanaz/DB-TECHv2/internal/pricing"
	"github.com/Suleymanaz/DB-TECHv2/internal/rbac"
	"github.com/Suleymanaz/DB-TECHv2/internal/shared"
)

type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
	rbac      rbac.Middleware
}

func NewHandler(logger *slog.Logger, service *Service, rbacMiddleware rbac.Middleware) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		validator: validator.New(),
		rbac:      rbacMiddleware,
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	companyID, err := shared.TenantFromContext(r.Context())
	if err != nil {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}

	filters := listFiltersFromQuery(r)
	products, total, err := h.service.List(r.Context(), companyID, filters)
	if err != nil {
		h.logger.Error("list products", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]any{
		"products":   products,
		"pagination": shared.NewPagination(filters.Page, filters.Limit, total),
	})
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	companyID, err := shared.TenantFromContext(r.Context())
	if err != nil {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: invalid product id", httpx.ErrValidation))
		return
	}

	product, err := h.service.Get(r.Context(), companyID, id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"product":          product,
		"landed_unit_cost": pricing.LandedUnitCost(product.Pricing),
		"net_unit_cost":    pricing.NetUnitCost(product.Pricing),
	})
}

// Profit simulates selling one unit of the product at a candidate price
// through a marketplace channel. Without a price query parameter the
// suggested markup price is used.
func (h *Handler) Profit(w http.ResponseWriter, r *http.Request) {
	companyID, err := shared.TenantFromContext(r.Context())
	if err != nil {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: invalid product id", httpx.ErrValidation))
		return
	}

	product, err := h.service.Get(r.Context(), companyID, id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	q := r.URL.Query()
	channel := pricing.ChannelStore
	if raw := q.Get("channel"); raw != "" {
		channel = pricing.Channel(raw)
		if !channel.Valid() {
			httpx.RespondError(w, fmt.Errorf("%w: unknown channel %q", httpx.ErrValidation, raw))
			return
		}
	}
	price := pricing.SuggestedPrice(product.Pricing)
	if raw := q.Get("price"); raw != "" {
		price, err = strconv.ParseFloat(raw, 64)
		if err != nil || price < 0 {
			httpx.RespondError(w, fmt.Errorf("%w: invalid price %q", httpx.ErrValidation, raw))
			return
		}
	}

	httpx.JSON(w, http.StatusOK, map[string]any{
		"product_id": product.ID,
		"simulation": pricing.SimulateProfit(product.Pricing, price, channel),
		"channels":   pricing.Channels(),
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	companyID, err := shared.TenantFromContext(r.Context())
	if err != nil {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}

	form, err := h.decodeForm(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	created, err := h.service.Create(r.Context(), form.toProduct(companyID))
	if err != nil {
		h.logger.Error("create product", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	companyID, err := shared.TenantFromContext(r.Context())
	if err != nil {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: invalid product id", httpx.ErrValidation))
		return
	}

	form, err := h.decodeForm(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	if err := h.service.Update(r.Context(), id, form.toProduct(companyID)); err != nil {
		h.logger.Error("update product", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *Handler) Archive(w http.ResponseWriter, r *http.Request) {
	companyID, err := shared.TenantFromContext(r.Context())
	if err != nil {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: invalid product id", httpx.ErrValidation))
		return
	}

	if err := h.service.Archive(r.Context(), companyID, id); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "archived"})
}

// Import ingests a bulk CSV upload. A malformed file aborts the whole batch.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	companyID, err := shared.TenantFromContext(r.Context())
	if err != nil {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}

	products, err := ParseImportCSV(r.Body, companyID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	count, err := h.service.Import(r.Context(), products)
	if err != nil {
		h.logger.Error("import products", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	h.logger.Info("products imported", slog.Int("count", count), slog.Int64("company_id", companyID))
	httpx.JSON(w, http.StatusCreated, map[string]int{"imported": count})
}

func (h *Handler) Valuation(w http.ResponseWriter, r *http.Request) {
	report, err := h.valuationReport(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, report)
}

func (h *Handler) ValuationCSV(w http.ResponseWriter, r *http.Request) {
	report, err := h.valuationReport(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="inventory-valuation-`+time.Now().Format("2006-01-02")+`.csv"`)
	if err := WriteValuationCSV(w, report); err != nil {
		h.logger.Error("write valuation csv", slog.Any("error", err))
	}
}

func (h *Handler) valuationReport(r *http.Request) (ValuationReport, error) {
	companyID, err := shared.TenantFromContext(r.Context())
	if err != nil {
		return ValuationReport{}, httpx.ErrUnauthorized
	}
	products, _, err := h.service.List(r.Context(), companyID, listFiltersFromQuery(r))
	if err != nil {
		return ValuationReport{}, err
	}
	return Valuation(products), nil
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	companyID, err := shared.TenantFromContext(r.Context())
	if err != nil {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}
	categories, err := h.service.ListCategories(r.Context(), companyID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"categories": categories})
}

func (h *Handler) AddCategory(w http.ResponseWriter, r *http.Request) {
	h.addName(w, r, func(companyID int64, name string) (any, error) {
		return h.service.AddCategory(r.Context(), companyID, name)
	})
}

func (h *Handler) ListUnits(w http.ResponseWriter, r *http.Request) {
	companyID, err := shared.TenantFromContext(r.Context())
	if err != nil {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}
	units, err := h.service.ListUnits(r.Context(), companyID)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"units": units})
}

func (h *Handler) AddUnit(w http.ResponseWriter, r *http.Request) {
	h.addName(w, r, func(companyID int64, name string) (any, error) {
		return h.service.AddUnit(r.Context(), companyID, name)
	})
}

func (h *Handler) addName(w http.ResponseWriter, r *http.Request, add func(int64, string) (any, error)) {
	companyID, err := shared.TenantFromContext(r.Context())
	if err != nil {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}
	var payload struct {
		Name string `json:"name"`
	}
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: invalid payload", httpx.ErrValidation))
		return
	}
	created, err := add(companyID, payload.Name)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}

func (h *Handler) decodeForm(r *http.Request) (ProductForm, error) {
	var form ProductForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		return ProductForm{}, fmt.Errorf("%w: invalid payload", httpx.ErrValidation)
	}
	if err := h.validator.Struct(form); err != nil {
		return ProductForm{}, fmt.Errorf("%w: %s", httpx.ErrValidation, err)
	}
	return form, nil
}

func (f ProductForm) toProduct(companyID int64) Product {
	cost := pricing.Pricing{
		PurchasePrice: f.PurchasePrice,
		ExchangeRate:  f.ExchangeRate,
		VATRate:       f.VATRate,
		OtherExpenses: f.OtherExpenses,
	}
	// Zero rates are treated as omitted, same defaults as the CSV importer:
	// lira purchases at rate 1, standard VAT.
	if cost.ExchangeRate == 0 {
		cost.ExchangeRate = 1
	}
	if cost.VATRate == 0 {
		cost.VATRate = pricing.StandardVATRate
	}
	return Product{
		CompanyID:         companyID,
		SKU:               f.SKU,
		Name:              f.Name,
		Category:          f.Category,
		Unit:              f.Unit,
		Stock:             f.Stock,
		CriticalThreshold: f.CriticalThreshold,
		Pricing:           cost,
		SellingPrice:      f.SellingPrice,
	}
}

func listFiltersFromQuery(r *http.Request) ListFilters {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit < 0 {
		limit = 0
	}
	return ListFilters{
		Search:          q.Get("search"),
		Category:        q.Get("category"),
		IncludeArchived: q.Get("include_archived") == "true",
		Page:            page,
		Limit:           limit,
		SortBy:          q.Get("sort"),
		SortDir:         q.Get("dir"),
	}
}
