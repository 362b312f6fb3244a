package trading

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/Suleymanaz/DB-TECHv2/internal/catalog"
	"github.com/Suleymanaz/DB-TECHv2/internal/checkout"
	"github.com/Suleymanaz/DB-TECHv2/internal/contacts"
	"github.com/Suleymanaz/DB-TECHv2/internal/platform/httpx"
	"github.com/Suleymanaz/DB-TECHv2/internal/rbac"
	"github.com/Suleymanaz/DB-TECHv2/internal/shared"
)

type Handler struct {
	logger    *slog.Logger
	service   *Service
	products  *catalog.Service
	contacts  *contacts.Service
	validator *validator.Validate
	rbac      rbac.Middleware
}

func NewHandler(logger *slog.Logger, service *Service, products *catalog.Service, contactsService *contacts.Service, rbacMiddleware rbac.Middleware) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		products:  products,
		contacts:  contactsService,
		validator: validator.New(),
		rbac:      rbacMiddleware,
	}
}

// Commit turns a checkout payload into a committed transaction.
func (h *Handler) Commit(w http.ResponseWriter, r *http.Request) {
	actor, ok := shared.ActorFromContext(r.Context())
	if !ok {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}

	form, err := h.decodeForm(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	action := rbac.ActionSalesCreate
	if form.Direction == checkout.DirectionIn {
		action = rbac.ActionPurchaseCreate
	}
	if !rbac.CanPerform(rbac.Role(actor.Role), action) {
		httpx.RespondError(w, httpx.ErrForbidden)
		return
	}

	counterparty, err := h.contacts.Get(r.Context(), actor.CompanyID, form.ContactID)
	if err != nil {
		httpx.RespondError(w, fmt.Errorf("%w: contact %d not found", httpx.ErrValidation, form.ContactID))
		return
	}

	cart, err := buildCart(r.Context(), h.products, actor.CompanyID, form)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	transaction, err := h.service.Commit(r.Context(), actor, counterparty, cart, form.Note)
	if err != nil {
		h.logger.Error("commit transaction", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, transaction)
}

// Preview prices a checkout payload without committing it.
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
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
	cart, err := buildCart(r.Context(), h.products, companyID, form)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, map[string]any{
		"lines":  cart.Lines,
		"totals": cart.Totals(),
		"tax":    cart.TaxBreakdown(),
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	companyID, err := shared.TenantFromContext(r.Context())
	if err != nil {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}

	filters, err := listFiltersFromQuery(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	transactions, total, err := h.service.List(r.Context(), companyID, filters)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"transactions": transactions,
		"pagination":   shared.NewPagination(filters.Page, filters.Limit, total),
	})
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	companyID, err := shared.TenantFromContext(r.Context())
	if err != nil {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}
	transaction, err := h.service.Get(r.Context(), companyID, chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, transaction)
}

// ExportCSV streams the filtered transaction list as a CSV download.
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	companyID, err := shared.TenantFromContext(r.Context())
	if err != nil {
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}
	filters, err := listFiltersFromQuery(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	filters.Limit = 0 // export is unpaginated

	transactions, _, err := h.service.List(r.Context(), companyID, filters)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="transactions-`+time.Now().Format("2006-01-02")+`.csv"`)
	if err := WriteTransactionsCSV(w, transactions); err != nil {
		h.logger.Error("write transactions csv", slog.Any("error", err))
	}
}

func (h *Handler) decodeForm(r *http.Request) (CheckoutForm, error) {
	var form CheckoutForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		return CheckoutForm{}, fmt.Errorf("%w: invalid payload", httpx.ErrValidation)
	}
	if err := h.validator.Struct(form); err != nil {
		return CheckoutForm{}, fmt.Errorf("%w: %s", httpx.ErrValidation, err)
	}
	return form, nil
}

func listFiltersFromQuery(r *http.Request) (ListFilters, error) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(q.Get("limit"))
	contactID, _ := strconv.ParseInt(q.Get("contact_id"), 10, 64)

	filters := ListFilters{
		Direction: checkout.Direction(q.Get("direction")),
		ContactID: contactID,
		Page:      page,
		Limit:     limit,
	}
	var err error
	if filters.Start, filters.End, err = shared.ParseDateRange(q.Get("start"), q.Get("end")); err != nil {
		return ListFilters{}, fmt.Errorf("%w: %s", httpx.ErrValidation, err)
	}
	// repository treats End as exclusive
	if !filters.End.IsZero() {
		filters.End = filters.End.AddDate(0, 0, 1)
	}
	return filters, nil
}
