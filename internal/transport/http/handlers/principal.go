package handlers

import (
	"net/http"

	"github.com/elevatescholar/scholarship-api/internal/domain"
	"github.com/elevatescholar/scholarship-api/internal/security"
	"github.com/elevatescholar/scholarship-api/internal/transport/http/middleware"
	"github.com/elevatescholar/scholarship-api/internal/transport/http/response"
)

// mustPrincipal writes 401 and returns false when the auth middleware did not run.
func mustPrincipal(w http.ResponseWriter, r *http.Request) (security.Principal, bool) {
	p, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenInvalid())
		return security.Principal{}, false
	}
	return p, true
}
