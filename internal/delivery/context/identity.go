package context

import (
	"context"

	"notekeeper/internal/domain/entity"
)

// WithIdentity returns a new context carrying the decoded identity claim.
func WithIdentity(ctx context.Context, identity entity.IdentityClaim) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext extracts the identity claim attached by the auth middleware.
func IdentityFromContext(ctx context.Context) (entity.IdentityClaim, bool) {
	identity, ok := ctx.Value(identityKey).(entity.IdentityClaim)

	return identity, ok
}
