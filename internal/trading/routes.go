package trading

import (
	"github.com/go-chi/chi/v5"

	"github.com/Suleymanaz/DB-TECHv2/internal/rbac"
)

func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(h.rbac.RequireAny(rbac.ActionLedgerView))
		r.Get("/", h.List)
		r.Get("/export.csv", h.ExportCSV)
		r.Get("/{id}", h.Show)
	})

	// purchases and sales are split capabilities; either may price a cart
	r.Group(func(r chi.Router) {
		r.Use(h.rbac.RequireAny(rbac.ActionPurchaseCreate, rbac.ActionSalesCreate))
		r.Post("/", h.Commit)
		r.Post("/preview", h.Preview)
	})

	return r
}
