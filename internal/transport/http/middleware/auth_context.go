package middleware

import (
	"context"

	"github.com/elevatescholar/scholarship-api/internal/security"
)

type ctxKey string

const ctxPrincipal ctxKey = "principal"

func WithPrincipal(ctx context.Context, p security.Principal) context.Context {
	return context.WithValue(ctx, ctxPrincipal, p)
}

func PrincipalFromContext(ctx context.Context) (security.Principal, bool) {
	p, ok := ctx.Value(ctxPrincipal).(security.Principal)
	return p, ok && p.Email != ""
}
