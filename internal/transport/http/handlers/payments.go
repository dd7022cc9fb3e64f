package handlers

import (
	"net/http"

	"github.com/elevatescholar/scholarship-api/internal/application/payment"
	"github.com/elevatescholar/scholarship-api/internal/transport/http/dto"
	"github.com/elevatescholar/scholarship-api/internal/transport/http/response"
	"github.com/elevatescholar/scholarship-api/internal/transport/http/validate"
)

type PaymentsHandler struct {
	svc *payment.Service
}

func NewPaymentsHandler(svc *payment.Service) *PaymentsHandler {
	return &PaymentsHandler{svc: svc}
}

func (h *PaymentsHandler) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}
	var req dto.CheckoutRequest
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Initiate(r.Context(), payment.InitiateCmd{
		PrincipalEmail: p.Email,
		ScholarshipID:  req.ScholarshipID,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.CheckoutResponse{URL: res.URL, SessionID: res.SessionID})
}

// ConfirmPayment reads only successId from the request; status comes from the provider.
func (h *PaymentsHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Confirm(r.Context(), r.URL.Query().Get("successId"))
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.PaymentConfirmResponse{
		Success:            res.Success,
		PaymentStatus:      res.PaymentStatus,
		ScholarshipID:      res.ScholarshipID,
		TransactionID:      res.TransactionID,
		MatchedCount:       res.MatchedCount,
		ModifiedCount:      res.ModifiedCount,
		ApplicationUpdated: res.ApplicationUpdated,
	})
}
