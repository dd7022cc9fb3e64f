package payment

import (
	"context"
	"time"

	"github.com/elevatescholar/scholarship-api/internal/domain"
)

type Clock interface {
	Now() time.Time
}

// Provider is the external checkout provider. It is the only source of truth for payment status.
type Provider interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (CheckoutSession, error)
	GetSession(ctx context.Context, sessionID string) (Session, error)
}

type CheckoutRequest struct {
	AmountMinor   int64
	Currency      string
	ProductName   string
	Description   string
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
	Metadata      map[string]string
}

type CheckoutSession struct {
	ID  string
	URL string
}

type Session struct {
	ID            string
	PaymentStatus string
	// TransactionID is the provider's payment reference, empty until paid.
	TransactionID string
	AmountTotal   int64
	Currency      string
	Metadata      map[string]string
}

type Scholarships interface {
	Get(ctx context.Context, id string) (*domain.Scholarship, error)
	MarkPaid(ctx context.Context, id string) (domain.UpdateResult, error)
}

type Applications interface {
	MarkPaid(ctx context.Context, email, scholarshipID, transactionID string) (bool, error)
}

type EventPublisher interface {
	PublishEvent(ctx context.Context, routingKey, messageID string, body []byte) error
}

type AuditFunc func(ctx context.Context, action string, fields map[string]string)
