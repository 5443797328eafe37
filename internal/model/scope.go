package model

import "context"

// Scope identifies the caller on whose behalf an operation runs.
type Scope struct {
	UserID    string
	Email     string
	SessionID string
}

type scopeCtxKey struct{}

// SetScopeToContext stores sc in ctx.
func SetScopeToContext(ctx context.Context, sc Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

// GetScopeFromContext returns the scope stored in ctx, if any.
func GetScopeFromContext(ctx context.Context) (Scope, bool) {
	sc, ok := ctx.Value(scopeCtxKey{}).(Scope)
	return sc, ok
}
