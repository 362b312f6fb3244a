package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Suleymanaz/DB-TECHv2/internal/auth"
	"github.com/Suleymanaz/DB-TECHv2/internal/catalog"
	"github.com/Suleymanaz/DB-TECHv2/internal/contacts"
	"github.com/Suleymanaz/DB-TECHv2/internal/expenses"
	"github.com/Suleymanaz/DB-TECHv2/internal/platform/httpx"
	"github.com/Suleymanaz/DB-TECHv2/internal/reports"
	"github.com/Suleymanaz/DB-TECHv2/internal/trading"
	"github.com/Suleymanaz/DB-TECHv2/internal/users"
)

// RouterConfig carries every mounted handler.
type RouterConfig struct {
	Middleware []func(http.Handler) http.Handler
	Auth       *auth.Handler
	Catalog    *catalog.Handler
	Contacts   *contacts.Handler
	Trading    *trading.Handler
	Expenses   *expenses.Handler
	Reports    *reports.Handler
	Users      *users.Handler
}

// NewRouter assembles the HTTP surface.
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()
	for _, mw := range cfg.Middleware {
		r.Use(mw)
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/auth", cfg.Auth.Routes())
		r.Mount("/products", cfg.Catalog.Routes())
		r.Mount("/contacts", cfg.Contacts.Routes())
		r.Mount("/transactions", cfg.Trading.Routes())
		r.Mount("/expenses", cfg.Expenses.Routes())
		r.Mount("/reports", cfg.Reports.Routes())
		r.Mount("/users", cfg.Users.Routes())
	})

	return r
}
