package stripe

import (
	"context"
	"errors"
	"net/http"

	stripego "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"

	"github.com/elevatescholar/scholarship-api/internal/application/payment"
	"github.com/elevatescholar/scholarship-api/internal/domain"
)

// ErrNotConfigured is returned by every call when no secret key was supplied.
var ErrNotConfigured = errors.New("stripe: secret key not configured")

// Provider implements payment.Provider on Stripe Checkout.
type Provider struct {
	api *client.API
}

var _ payment.Provider = (*Provider)(nil)

// New returns a provider for secretKey. An empty key yields a provider that always fails with ErrNotConfigured.
func New(secretKey string) *Provider {
	return NewWithBackends(secretKey, nil)
}

// NewWithBackends lets tests point the SDK at a fake server.
func NewWithBackends(secretKey string, backends *stripego.Backends) *Provider {
	if secretKey == "" {
		return &Provider{}
	}
	return &Provider{api: client.New(secretKey, backends)}
}

func (p *Provider) CreateCheckoutSession(ctx context.Context, req payment.CheckoutRequest) (payment.CheckoutSession, error) {
	if p.api == nil {
		return payment.CheckoutSession{}, ErrNotConfigured
	}
	s, err := p.api.CheckoutSessions.New(checkoutParams(ctx, req))
	if err != nil {
		return payment.CheckoutSession{}, err
	}
	return payment.CheckoutSession{ID: s.ID, URL: s.URL}, nil
}

// GetSession maps an unknown session id to a validation error; other failures pass through.
func (p *Provider) GetSession(ctx context.Context, sessionID string) (payment.Session, error) {
	if p.api == nil {
		return payment.Session{}, ErrNotConfigured
	}
	params := &stripego.CheckoutSessionParams{}
	params.Context = ctx

	s, err := p.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		var se *stripego.Error
		if errors.As(err, &se) && (se.HTTPStatusCode == http.StatusNotFound || se.Code == stripego.ErrorCodeResourceMissing) {
			return payment.Session{}, domain.ErrInvalidField("successId", "unknown checkout session")
		}
		return payment.Session{}, err
	}
	return toSession(s), nil
}

func checkoutParams(ctx context.Context, req payment.CheckoutRequest) *stripego.CheckoutSessionParams {
	product := &stripego.CheckoutSessionLineItemPriceDataProductDataParams{
		Name: stripego.String(req.ProductName),
	}
	if req.Description != "" {
		product.Description = stripego.String(req.Description)
	}

	params := &stripego.CheckoutSessionParams{
		Mode:       stripego.String(string(stripego.CheckoutSessionModePayment)),
		SuccessURL: stripego.String(req.SuccessURL),
		CancelURL:  stripego.String(req.CancelURL),
		LineItems: []*stripego.CheckoutSessionLineItemParams{{
			PriceData: &stripego.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripego.String(req.Currency),
				UnitAmount:  stripego.Int64(req.AmountMinor),
				ProductData: product,
			},
			Quantity: stripego.Int64(1),
		}},
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripego.String(req.CustomerEmail)
	}
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}
	params.Context = ctx
	return params
}

func toSession(s *stripego.CheckoutSession) payment.Session {
	out := payment.Session{
		ID:            s.ID,
		PaymentStatus: string(s.PaymentStatus),
		AmountTotal:   s.AmountTotal,
		Currency:      string(s.Currency),
		Metadata:      s.Metadata,
	}
	if s.PaymentIntent != nil {
		out.TransactionID = s.PaymentIntent.ID
	}
	if out.Metadata == nil {
		out.Metadata = map[string]string{}
	}
	return out
}
