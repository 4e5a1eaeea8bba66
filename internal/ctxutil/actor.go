// Package ctxutil provides context utilities that can be safely imported
// anywhere. This package has no internal dependencies to avoid import cycles.
package ctxutil

import "context"

// ActorKey is the context key for the acting agent's name.
type ActorKey struct{}

// WithActor returns a context carrying the acting agent's name. The CLI
// resolves the actor once and services use it as the fallback author or
// agent when none is given explicitly.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, ActorKey{}, actor)
}

// ActorFromContext returns the actor name from context, or empty string if
// not set.
func ActorFromContext(ctx context.Context) string {
	if v := ctx.Value(ActorKey{}); v != nil {
		return v.(string)
	}
	return ""
}
