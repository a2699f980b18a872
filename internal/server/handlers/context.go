package handlers

import (
	"context"

	"github.com/accountd-dev/accountd/internal/server/sessions"
)

type contextKey string

const identityKey contextKey = "identity"

// ContextWithIdentity stores a resolved identity in the request context.
// Used by the auth middleware.
func ContextWithIdentity(ctx context.Context, identity *sessions.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext returns the identity stored by the auth middleware, or
// nil when the request is unauthenticated.
func IdentityFromContext(ctx context.Context) *sessions.Identity {
	identity, _ := ctx.Value(identityKey).(*sessions.Identity)
	return identity
}
