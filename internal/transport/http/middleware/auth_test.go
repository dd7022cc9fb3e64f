package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/elevatescholar/scholarship-api/internal/domain"
	"github.com/elevatescholar/scholarship-api/internal/security"
	"github.com/elevatescholar/scholarship-api/internal/transport/http/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fakes ----

type fakeVerifier struct {
	principal security.Principal
	err       error
	calls     int
	gotTok    string
}

func (f *fakeVerifier) Verify(ctx context.Context, token string) (security.Principal, error) {
	f.calls++
	f.gotTok = token
	return f.principal, f.err
}

type fakeRoles struct {
	roles map[string]domain.Role
	err   error
	calls int
}

func (f *fakeRoles) LookupRole(ctx context.Context, email string) (domain.Role, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	r, ok := f.roles[email]
	if !ok {
		return "", domain.ErrUserNotFound()
	}
	return r, nil
}

type nextRecorder struct {
	calls int
	got   security.Principal
}

func (n *nextRecorder) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	n.calls++
	n.got, _ = PrincipalFromContext(r.Context())
	w.WriteHeader(http.StatusOK)
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name          string
		header        string
		verifier      *fakeVerifier
		wantStatus    int
		wantVerifier  int
		wantNextCalls int
	}{
		{"missing_header", "", &fakeVerifier{}, http.StatusUnauthorized, 0, 0},
		{"wrong_scheme", "Basic abc", &fakeVerifier{}, http.StatusUnauthorized, 0, 0},
		{"no_token_part", "Bearer", &fakeVerifier{}, http.StatusUnauthorized, 0, 0},
		{"blank_token", "Bearer    ", &fakeVerifier{}, http.StatusUnauthorized, 0, 0},
		{"verifier_rejects", "Bearer tok", &fakeVerifier{err: security.ErrTokenInvalid}, http.StatusUnauthorized, 1, 0},
		{"verifier_expired", "Bearer tok", &fakeVerifier{err: security.ErrTokenExpired}, http.StatusUnauthorized, 1, 0},
		{"principal_without_email", "Bearer tok", &fakeVerifier{principal: security.Principal{Subject: "x"}}, http.StatusUnauthorized, 1, 0},
		{"ok", "bearer tok", &fakeVerifier{principal: security.Principal{Email: "a@example.com", Subject: "uid"}}, http.StatusOK, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			nx := &nextRecorder{}

			Auth(tt.verifier, response.WriteError)(nx).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantVerifier, tt.verifier.calls)
			assert.Equal(t, tt.wantNextCalls, nx.calls)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Contains(t, rr.Body.String(), `"message":"unauthorized access"`)
			}
		})
	}
}

func TestAuth_BindsPrincipalAndPassesToken(t *testing.T) {
	v := &fakeVerifier{principal: security.Principal{Email: "a@example.com", Subject: "uid-9"}}
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer  the-token ")
	nx := &nextRecorder{}

	Auth(v, response.WriteError)(nx).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "the-token", v.gotTok)
	assert.Equal(t, "a@example.com", nx.got.Email)
	assert.Equal(t, "uid-9", nx.got.Subject)
}

func TestRequireAdmin(t *testing.T) {
	roles := &fakeRoles{roles: map[string]domain.Role{
		"admin@example.com":   domain.RoleAdmin,
		"student@example.com": domain.RoleStudent,
		"mod@example.com":     domain.RoleModerator,
	}}

	run := func(t *testing.T, roles RoleLookup, p *security.Principal) (*httptest.ResponseRecorder, *nextRecorder) {
		t.Helper()
		req := httptest.NewRequest(http.MethodPost, "/scholarships", nil)
		if p != nil {
			req = req.WithContext(WithPrincipal(req.Context(), *p))
		}
		rr := httptest.NewRecorder()
		nx := &nextRecorder{}
		RequireAdmin(roles, response.WriteError)(nx).ServeHTTP(rr, req)
		return rr, nx
	}

	t.Run("no_principal_is_unauthorized", func(t *testing.T) {
		rr, nx := run(t, roles, nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Zero(t, nx.calls)
	})

	t.Run("admin_passes", func(t *testing.T) {
		rr, nx := run(t, roles, &security.Principal{Email: "admin@example.com"})
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 1, nx.calls)
	})

	for _, email := range []string{"student@example.com", "mod@example.com", "ghost@example.com"} {
		t.Run("forbidden_"+email, func(t *testing.T) {
			rr, nx := run(t, roles, &security.Principal{Email: email})
			assert.Equal(t, http.StatusForbidden, rr.Code)
			assert.Zero(t, nx.calls)
		})
	}

	t.Run("store_failure_is_internal", func(t *testing.T) {
		broken := &fakeRoles{err: domain.ErrStore(errors.New("timeout"))}
		rr, nx := run(t, broken, &security.Principal{Email: "admin@example.com"})
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Zero(t, nx.calls)
	})
}

func TestAuthThenRequireAdmin_IgnoresBodyEmail(t *testing.T) {
	v := &fakeVerifier{principal: security.Principal{Email: "student@example.com"}}
	roles := &fakeRoles{roles: map[string]domain.Role{
		"admin@example.com":   domain.RoleAdmin,
		"student@example.com": domain.RoleStudent,
	}}
	req := httptest.NewRequest(http.MethodPost, "/scholarships?email=admin@example.com", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rr := httptest.NewRecorder()
	nx := &nextRecorder{}

	Auth(v, response.WriteError)(RequireAdmin(roles, response.WriteError)(nx)).ServeHTTP(rr, req)

	require.Equal(t, http.StatusForbidden, rr.Code)
	assert.Zero(t, nx.calls)
}
