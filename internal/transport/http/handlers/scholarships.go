package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/elevatescholar/scholarship-api/internal/application/scholarship"
	"github.com/elevatescholar/scholarship-api/internal/transport/http/dto"
	"github.com/elevatescholar/scholarship-api/internal/transport/http/response"
	"github.com/elevatescholar/scholarship-api/internal/transport/http/validate"
)

type ScholarshipsHandler struct {
	svc *scholarship.Service
}

func NewScholarshipsHandler(svc *scholarship.Service) *ScholarshipsHandler {
	return &ScholarshipsHandler{svc: svc}
}

// Public
func (h *ScholarshipsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context(), r.URL.Query().Get("filter"))
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.Scholarships(items))
}

func (h *ScholarshipsHandler) Get(w http.ResponseWriter, r *http.Request) {
	sc, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.Scholarship(sc))
}

// Admin
func (h *ScholarshipsHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}
	var req dto.ScholarshipRequest
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	fields, err := req.Fields()
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Create(r.Context(), scholarship.CreateCmd{ActorEmail: p.Email, Fields: fields})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.Inserted(res))
}

func (h *ScholarshipsHandler) Update(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}
	var req dto.ScholarshipRequest
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	fields, err := req.Fields()
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Update(r.Context(), scholarship.UpdateCmd{
		ActorEmail:    p.Email,
		ScholarshipID: chi.URLParam(r, "id"),
		Fields:        fields,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.Updated(res))
}

func (h *ScholarshipsHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
