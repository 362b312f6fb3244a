package auth

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Suleymanaz/DB-TECHv2/internal/shared"
	"github.com/Suleymanaz/DB-TECHv2/internal/users"
)

// Middleware loads the cookie session and resolves it to an actor. Handlers
// downstream read the actor from context; an unauthenticated request simply
// carries no actor and fails at the capability check.
type Middleware struct {
	Logger   *slog.Logger
	Sessions *shared.SessionManager
	Users    *users.Service
}

func (m Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		sess, err := m.Sessions.Load(ctx, r)
		if err != nil {
			m.Logger.Error("session load", slog.Any("error", err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		ctx = shared.ContextWithSession(ctx, sess)

		if id, err := strconv.ParseInt(sess.User(), 10, 64); err == nil && id > 0 {
			if user, err := m.Users.Get(ctx, id); err == nil && user.Active {
				ctx = shared.ContextWithActor(ctx, shared.Actor{
					ID:        user.ID,
					Name:      user.Name,
					Role:      string(user.Role),
					CompanyID: user.CompanyID,
				})
			}
		}

		ww := &sessionWriter{ResponseWriter: w, commit: func() {
			if err := m.Sessions.Commit(ctx, w, sess); err != nil {
				m.Logger.Error("session commit", slog.Any("error", err))
			}
		}}
		next.ServeHTTP(ww, r.WithContext(ctx))
		ww.flushSession()
	})
}

// sessionWriter commits the session right before the first byte of the
// response, so Set-Cookie headers are never written too late.
type sessionWriter struct {
	http.ResponseWriter
	commit    func()
	committed bool
}

func (w *sessionWriter) WriteHeader(code int) {
	w.flushSession()
	w.ResponseWriter.WriteHeader(code)
}

func (w *sessionWriter) Write(b []byte) (int, error) {
	w.flushSession()
	return w.ResponseWriter.Write(b)
}

func (w *sessionWriter) flushSession() {
	if !w.committed {
		w.committed = true
		w.commit()
	}
}
