package payment

import (
	"context"
	"errors"
	"strings"

	"github.com/elevatescholar/scholarship-api/internal/contracts/event"
	"github.com/elevatescholar/scholarship-api/internal/domain"
	"github.com/elevatescholar/scholarship-api/internal/metrics"
	reqctx "github.com/elevatescholar/scholarship-api/internal/pkg/context"
	zlog "github.com/rs/zerolog/log"
)

type ConfirmResult struct {
	Success            bool
	PaymentStatus      string
	ScholarshipID      string
	TransactionID      string
	MatchedCount       int64
	ModifiedCount      int64
	ApplicationUpdated bool
}

// Confirm reconciles local payment state with the provider session. Only sessionID comes
// from the caller; status and metadata are read from the provider.
// Confirming the same paid session again rewrites the same state.
func (s *Service) Confirm(ctx context.Context, sessionID string) (ConfirmResult, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ConfirmResult{}, domain.ErrMissingField("successId")
	}

	sess, err := s.provider.GetSession(ctx, sessionID)
	if err != nil {
		metrics.RecordPaymentConfirmation("error")
		var de *domain.Error
		if errors.As(err, &de) {
			return ConfirmResult{}, de
		}
		return ConfirmResult{}, domain.ErrPaymentProvider(err)
	}

	if sess.PaymentStatus != StatusPaid {
		metrics.RecordPaymentConfirmation("unpaid")
		return ConfirmResult{Success: false, PaymentStatus: sess.PaymentStatus}, nil
	}

	sid := strings.TrimSpace(sess.Metadata[metaScholarshipID])
	if !domain.IsValidID(sid) {
		metrics.RecordPaymentConfirmation("error")
		return ConfirmResult{}, domain.ErrInvalidField("metadata.scholarshipId", "missing or malformed")
	}

	res, err := s.scholarships.MarkPaid(ctx, sid)
	if err != nil {
		metrics.RecordPaymentConfirmation("error")
		return ConfirmResult{}, err
	}

	out := ConfirmResult{
		Success:       true,
		PaymentStatus: sess.PaymentStatus,
		ScholarshipID: sid,
		TransactionID: sess.TransactionID,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}

	studentEmail := domain.NormalizeEmail(sess.Metadata[metaStudentEmail])
	if s.applications != nil && studentEmail != "" {
		updated, err := s.applications.MarkPaid(ctx, studentEmail, sid, sess.TransactionID)
		if err != nil {
			// scholarship is already paid; re-confirming retries this write
			zlog.Warn().Err(err).Str("session_id", sessionID).Msg("mark application paid failed")
		}
		out.ApplicationUpdated = updated
	}

	metrics.RecordPaymentConfirmation("paid")
	s.audit(ctx, "payment.confirmed", map[string]string{
		"session_id":     sessionID,
		"scholarship_id": sid,
		"student":        studentEmail,
	})
	s.publishConfirmed(ctx, sess, sid, studentEmail)

	return out, nil
}

func (s *Service) publishConfirmed(ctx context.Context, sess Session, sid, studentEmail string) {
	if s.pub == nil {
		return
	}
	msgID, body, err := event.Encode(event.PaymentConfirmedPayload{
		SessionID:     sess.ID,
		TransactionID: sess.TransactionID,
		ScholarshipID: sid,
		StudentEmail:  studentEmail,
		AmountMinor:   sess.AmountTotal,
		Currency:      sess.Currency,
	}, reqctx.GetRequestID(ctx), s.clock.Now())
	if err != nil {
		zlog.Warn().Err(err).Msg("encode payment.confirmed failed")
		return
	}
	if err := s.pub.PublishEvent(ctx, event.RoutingPaymentConfirmed, msgID, body); err != nil {
		zlog.Warn().Err(err).Str("session_id", sess.ID).Msg("publish payment.confirmed failed")
	}
}
