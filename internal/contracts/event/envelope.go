package event

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	Version  = 1
	Producer = "scholarship-api"

	RoutingApplicationSubmitted = "application.submitted"
	RoutingPaymentConfirmed     = "payment.confirmed"
)

// DomainEventEnvelope is the stable contract for every message this service emits.
type DomainEventEnvelope[T any] struct {
	Version    int       `json:"version"`
	Producer   string    `json:"producer"`
	MessageID  string    `json:"message_id"`
	TraceID    string    `json:"trace_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    T         `json:"payload"`
}

type ApplicationSubmittedPayload struct {
	ApplicationID string `json:"application_id"`
	UserEmail     string `json:"user_email"`
	ScholarshipID string `json:"scholarship_id"`
}

type PaymentConfirmedPayload struct {
	SessionID     string `json:"session_id"`
	TransactionID string `json:"transaction_id,omitempty"`
	ScholarshipID string `json:"scholarship_id"`
	StudentEmail  string `json:"student_email,omitempty"`
	AmountMinor   int64  `json:"amount_minor"`
	Currency      string `json:"currency"`
}

// Encode wraps payload in an envelope and returns its message id and JSON body.
func Encode[T any](payload T, traceID string, now time.Time) (string, []byte, error) {
	env := DomainEventEnvelope[T]{
		Version:    Version,
		Producer:   Producer,
		MessageID:  uuid.NewString(),
		TraceID:    traceID,
		OccurredAt: now.UTC(),
		Payload:    payload,
	}
	body, err := json.Marshal(env)
	if err != nil {
		return "", nil, err
	}
	return env.MessageID, body, nil
}
