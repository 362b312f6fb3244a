package catalog

import (
	"github.com/go-chi/chi/v5"

	"github.com/Suleymanaz/DB-TECHv2/internal/rbac"
)

func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(h.rbac.RequireAny(rbac.ActionCatalogView))
		r.Get("/", h.List)
		r.Get("/{id}", h.Show)
		r.Get("/categories", h.ListCategories)
		r.Get("/units", h.ListUnits)
	})

	r.Group(func(r chi.Router) {
		r.Use(h.rbac.RequireAny(rbac.ActionCatalogEdit))
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Archive)
		r.Post("/categories", h.AddCategory)
		r.Post("/units", h.AddUnit)
	})

	r.With(h.rbac.RequireAny(rbac.ActionCatalogImport)).Post("/import", h.Import)

	r.Group(func(r chi.Router) {
		r.Use(h.rbac.RequireAny(rbac.ActionCatalogValue))
		r.Get("/valuation", h.Valuation)
		r.Get("/valuation.csv", h.ValuationCSV)
		r.Get("/{id}/profit", h.Profit)
	})

	return r
}
