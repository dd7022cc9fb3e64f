package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorders_DoNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		InFlightInc()
		InFlightDec()
		RecordHTTPRequest("GET", "/scholarships/{id}", 200, 15*time.Millisecond)
		RecordCheckoutSession()
		RecordPaymentConfirmation("paid")
		RecordPaymentConfirmation("unpaid")
		RecordApplicationSubmitted()
		SetDependencyHealth("mongo", true)
		SetDependencyHealth("redis", false)
	})
}

func TestHandler_ExposesBusinessCounters(t *testing.T) {
	RecordCheckoutSession()
	RecordPaymentConfirmation("paid")

	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "scholarship_api_checkout_sessions_created_total")
	assert.Contains(t, string(body), `scholarship_api_payment_confirmations_total{result="paid"}`)
}
