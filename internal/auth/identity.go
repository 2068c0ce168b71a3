package auth

import (
	"context"

	"github.com/hongminglow/field-checkin/internal/models"
)

// Identity is the verified caller of a single request.
type Identity struct {
	UserID int64
	Name   string
	Email  string
	Role   string
}

// IsManager reports whether the caller may read team reports.
func (i Identity) IsManager() bool {
	return i.Role == models.RoleManager
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// FromContext returns the identity stored by the auth middleware.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
