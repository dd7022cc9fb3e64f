package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/elevatescholar/scholarship-api/internal/domain"
	reqctx "github.com/elevatescholar/scholarship-api/internal/pkg/context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"validation", domain.ErrInvalidID("id"), http.StatusBadRequest, "invalid_id", "invalid identifier"},
		{"auth", domain.ErrTokenMissing(), http.StatusUnauthorized, "token_missing", "unauthorized access"},
		{"forbidden", domain.ErrInsufficientRole("admin"), http.StatusForbidden, "insufficient_role", "forbidden access"},
		{"not_found", domain.ErrScholarshipNotFound(), http.StatusNotFound, "scholarship_not_found", "scholarship not found"},
		{"store_error_hides_cause", domain.ErrStore(errors.New("mongo: socket closed")), http.StatusInternalServerError, "store_error", "internal error"},
		{"generic_error", errors.New("db crash"), http.StatusInternalServerError, "internal_error", "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			req = req.WithContext(reqctx.WithRequestID(req.Context(), "rid-1"))

			WriteError(rr, req, tt.err)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))

			var body ErrorBody
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMsg, body.Message)
			assert.Equal(t, "rid-1", body.RequestID)
			assert.NotContains(t, rr.Body.String(), "socket closed")
			assert.NotContains(t, rr.Body.String(), "db crash")
		})
	}
}

func TestOK_WritesValueUnwrapped(t *testing.T) {
	rr := httptest.NewRecorder()
	OK(rr, map[string]int64{"deletedCount": 1})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"deletedCount":1}`, rr.Body.String())
}
