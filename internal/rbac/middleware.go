package rbac

import (
	"log/slog"
	"net/http"

	"github.com/Suleymanaz/DB-TECHv2/internal/shared"
)

// Middleware wires capability checks into HTTP handlers.
type Middleware struct {
	Logger *slog.Logger
}

// RequireAny ensures the authenticated user holds at least one of the given
// actions. The check runs once at the route boundary; handlers never re-derive
// role logic.
func (m Middleware) RequireAny(actions ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(actions) == 0 {
				next.ServeHTTP(w, r)
				return
			}
			actor, ok := shared.ActorFromContext(r.Context())
			if !ok {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
			role := Role(actor.Role)
			for _, action := range actions {
				if CanPerform(role, action) {
					next.ServeHTTP(w, r)
					return
				}
			}
			if m.Logger != nil {
				m.Logger.Warn("capability denied",
					slog.String("role", actor.Role),
					slog.String("path", r.URL.Path))
			}
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		})
	}
}
