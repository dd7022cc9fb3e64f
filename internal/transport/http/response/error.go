package response

import (
	"errors"
	"net/http"

	"github.com/elevatescholar/scholarship-api/internal/domain"
	reqctx "github.com/elevatescholar/scholarship-api/internal/pkg/context"
	zlog "github.com/rs/zerolog/log"
)

type ErrorBody struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Meta      map[string]string `json:"meta,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// WriteError converts a domain error into a consistent JSON HTTP error response.
// Causes and non-domain errors stay in the logs; clients only see the safe message.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	var de *domain.Error
	if !errors.As(err, &de) {
		de = domain.ErrInternal(err)
	}
	status := statusFromKind(de.Kind)

	requestID := reqctx.GetRequestID(r.Context())
	if status >= http.StatusInternalServerError {
		zlog.Error().Err(err).
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
	}

	WriteJSON(w, status, ErrorBody{
		Code:      de.Code,
		Message:   de.Message,
		Meta:      de.Meta,
		RequestID: requestID,
	})
}

// statusFromKind maps domain error kinds to HTTP status codes.
func statusFromKind(kind domain.ErrKind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindAuth:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
