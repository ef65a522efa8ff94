package middleware

import (
	"context"

	"github.com/hrkit/employee-service/internal/domain"
)

type ctxKey string

const ctxIdentity ctxKey = "identity"

// WithIdentity stores the authenticated caller for downstream handlers.
func WithIdentity(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, ctxIdentity, id)
}

// IdentityFromContext returns the authenticated caller, if the auth
// middleware ran on this request.
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	v, ok := ctx.Value(ctxIdentity).(domain.Identity)
	return v, ok && v.ID != 0
}
