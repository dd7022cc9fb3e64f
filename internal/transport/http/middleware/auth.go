package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/elevatescholar/scholarship-api/internal/domain"
	"github.com/elevatescholar/scholarship-api/internal/security"
)

type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (security.Principal, error)
}

type WriteErrFunc func(http.ResponseWriter, *http.Request, error)

// Auth verifies Authorization: Bearer <token> and binds the principal into the request context.
// A missing or malformed header is rejected without calling the verifier.
func Auth(verifier IdentityVerifier, writeErr WriteErrFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if h == "" {
				writeErr(w, r, domain.ErrTokenMissing())
				return
			}

			parts := strings.SplitN(h, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				writeErr(w, r, domain.ErrTokenInvalid())
				return
			}

			raw := strings.TrimSpace(parts[1])
			if raw == "" {
				writeErr(w, r, domain.ErrTokenInvalid())
				return
			}

			p, err := verifier.Verify(r.Context(), raw)
			if err != nil {
				reason := "invalid"
				if errors.Is(err, security.ErrTokenExpired) {
					reason = "expired"
				}
				writeErr(w, r, domain.WithMeta(domain.ErrTokenInvalid(), map[string]string{"reason": reason}))
				return
			}
			if strings.TrimSpace(p.Email) == "" {
				writeErr(w, r, domain.ErrTokenInvalid())
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		})
	}
}
