package contacts

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/Suleymanaz/DB-TECHv2/internal/platform/httpx"
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

	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(q.Get("limit"))
	filters := ListFilters{
		Type:            Type(q.Get("type")),
		Search:          q.Get("search"),
		IncludeArchived: q.Get("include_archived") == "true",
		Page:            page,
		Limit:           limit,
	}

	contacts, total, err := h.service.List(r.Context(), companyID, filters)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"contacts":   contacts,
		"pagination": shared.NewPagination(filters.Page, filters.Limit, total),
	})
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	companyID, id, err := h.tenantAndID(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	contact, err := h.service.Get(r.Context(), companyID, id)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, contact)
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

	created, err := h.service.Create(r.Context(), form.toContact(companyID))
	if err != nil {
		h.logger.Error("create contact", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, created)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	companyID, id, err := h.tenantAndID(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	form, err := h.decodeForm(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}

	if err := h.service.Update(r.Context(), id, form.toContact(companyID)); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *Handler) Archive(w http.ResponseWriter, r *http.Request) {
	companyID, id, err := h.tenantAndID(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := h.service.Archive(r.Context(), companyID, id); err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "archived"})
}

func (h *Handler) tenantAndID(r *http.Request) (int64, int64, error) {
	companyID, err := shared.TenantFromContext(r.Context())
	if err != nil {
		return 0, 0, httpx.ErrUnauthorized
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid contact id", httpx.ErrValidation)
	}
	return companyID, id, nil
}

func (h *Handler) decodeForm(r *http.Request) (ContactForm, error) {
	var form ContactForm
	if err := httpx.DecodeJSON(r, &form); err != nil {
		return ContactForm{}, fmt.Errorf("%w: invalid payload", httpx.ErrValidation)
	}
	if err := h.validator.Struct(form); err != nil {
		return ContactForm{}, fmt.Errorf("%w: %s", httpx.ErrValidation, err)
	}
	return form, nil
}

func (f ContactForm) toContact(companyID int64) Contact {
	return Contact{
		CompanyID: companyID,
		Type:      f.Type,
		Name:      f.Name,
		Phone:     f.Phone,
		Email:     f.Email,
		Address:   f.Address,
		TaxNumber: f.TaxNumber,
	}
}
