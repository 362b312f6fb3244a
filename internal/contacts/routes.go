package contacts

import (
	"github.com/go-chi/chi/v5"

	"github.com/Suleymanaz/DB-TECHv2/internal/rbac"
)

func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		r.Use(h.rbac.RequireAny(rbac.ActionContactsView))
		r.Get("/", h.List)
		r.Get("/{id}", h.Show)
	})

	r.Group(func(r chi.Router) {
		r.Use(h.rbac.RequireAny(rbac.ActionContactsEdit))
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Archive)
	})

	return r
}
