package shared

import "context"

type sessionContextKey struct{}

type actorContextKey struct{}

// Actor describes the authenticated user attached to a request.
type Actor struct {
	ID        int64
	Name      string
	Role      string
	CompanyID int64
}

// ContextWithSession stores the session in context.
func ContextWithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, sess)
}

// SessionFromContext extracts the session from context.
func SessionFromContext(ctx context.Context) *Session {
	sess, _ := ctx.Value(sessionContextKey{}).(*Session)
	return sess
}

// ContextWithActor stores the authenticated actor in context.
func ContextWithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actor)
}

// ActorFromContext extracts the authenticated actor from context.
func ActorFromContext(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorContextKey{}).(Actor)
	return actor, ok
}

// TenantFromContext returns the actor's company scope.
func TenantFromContext(ctx context.Context) (int64, error) {
	actor, ok := ActorFromContext(ctx)
	if !ok || actor.CompanyID == 0 {
		return 0, ErrTenantMissing
	}
	return actor.CompanyID, nil
}
