package payment

import (
	"context"
	"strings"

	"github.com/elevatescholar/scholarship-api/internal/domain"
	"github.com/elevatescholar/scholarship-api/internal/metrics"
	zlog "github.com/rs/zerolog/log"
)

type InitiateCmd struct {
	PrincipalEmail string
	ScholarshipID  string
}

type InitiateResult struct {
	URL       string
	SessionID string
}

// Initiate opens a checkout session for the scholarship's stored application fee.
// Nothing is written locally.
func (s *Service) Initiate(ctx context.Context, cmd InitiateCmd) (InitiateResult, error) {
	email := domain.NormalizeEmail(cmd.PrincipalEmail)
	if email == "" {
		return InitiateResult{}, domain.ErrTokenMissing()
	}
	sid := strings.TrimSpace(cmd.ScholarshipID)
	if !domain.IsValidID(sid) {
		return InitiateResult{}, domain.ErrInvalidID("scholarshipId")
	}

	sc, err := s.scholarships.Get(ctx, sid)
	if err != nil {
		return InitiateResult{}, err
	}
	amount := MinorUnits(sc.ApplicationFees)
	if amount <= 0 {
		return InitiateResult{}, domain.ErrInvalidField("applicationFees", "must be > 0")
	}

	sess, err := s.provider.CreateCheckoutSession(ctx, CheckoutRequest{
		AmountMinor:   amount,
		Currency:      s.cfg.Currency,
		ProductName:   sc.ScholarshipName,
		Description:   sc.UniversityName,
		CustomerEmail: email,
		SuccessURL:    successURL(s.cfg.SuccessURL),
		CancelURL:     s.cfg.CancelURL,
		Metadata: map[string]string{
			metaScholarshipID: sc.ID,
			metaStudentEmail:  email,
		},
	})
	if err != nil {
		return InitiateResult{}, domain.ErrPaymentProvider(err)
	}

	metrics.RecordCheckoutSession()
	zlog.Info().
		Str("session_id", sess.ID).
		Str("scholarship_id", sc.ID).
		Int64("amount_minor", amount).
		Msg("checkout session created")

	return InitiateResult{URL: sess.URL, SessionID: sess.ID}, nil
}
