package middleware

import (
	"context"
	"net/http"

	"github.com/elevatescholar/scholarship-api/internal/domain"
)

type RoleLookup interface {
	LookupRole(ctx context.Context, email string) (domain.Role, error)
}

// RequireAdmin checks the stored role of the principal bound by Auth.
// It never reads an email from the request itself.
func RequireAdmin(roles RoleLookup, writeErr WriteErrFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFromContext(r.Context())
			if !ok {
				// Auth not applied, or context missing
				writeErr(w, r, domain.ErrTokenInvalid())
				return
			}

			role, err := roles.LookupRole(r.Context(), p.Email)
			if err != nil {
				if domain.Is(err, domain.ErrUserNotFound().Code) {
					writeErr(w, r, domain.ErrInsufficientRole(domain.RoleAdmin.String()))
					return
				}
				writeErr(w, r, err)
				return
			}

			if !role.IsAdmin() {
				writeErr(w, r, domain.ErrInsufficientRole(domain.RoleAdmin.String()))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
