package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/elevatescholar/scholarship-api/internal/application/review"
	"github.com/elevatescholar/scholarship-api/internal/domain"
	"github.com/elevatescholar/scholarship-api/internal/transport/http/dto"
	"github.com/elevatescholar/scholarship-api/internal/transport/http/response"
	"github.com/elevatescholar/scholarship-api/internal/transport/http/validate"
)

type ReviewsHandler struct {
	svc *review.Service
}

func NewReviewsHandler(svc *review.Service) *ReviewsHandler {
	return &ReviewsHandler{svc: svc}
}

func (h *ReviewsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := h.svc.List(r.Context(), domain.ReviewFilter{
		Email:         q.Get("email"),
		ScholarshipID: q.Get("scholarshipId"),
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.Reviews(items))
}

func (h *ReviewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}
	var req dto.CreateReviewRequest
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Create(r.Context(), review.CreateCmd{
		PrincipalEmail: p.Email,
		ReviewerName:   req.ReviewerName,
		ReviewerImage:  req.ReviewerImage,
		ScholarshipID:  req.ScholarshipID,
		Rating:         req.Rating,
		Comment:        req.Comment,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.Inserted(res))
}

func (h *ReviewsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}
	res, err := h.svc.Delete(r.Context(), p.Email, chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.Deleted(res))
}
