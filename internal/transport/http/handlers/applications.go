package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/elevatescholar/scholarship-api/internal/application/applications"
	"github.com/elevatescholar/scholarship-api/internal/domain"
	"github.com/elevatescholar/scholarship-api/internal/transport/http/dto"
	"github.com/elevatescholar/scholarship-api/internal/transport/http/response"
	"github.com/elevatescholar/scholarship-api/internal/transport/http/validate"
)

type ApplicationsHandler struct {
	svc *applications.Service
}

func NewApplicationsHandler(svc *applications.Service) *ApplicationsHandler {
	return &ApplicationsHandler{svc: svc}
}

func (h *ApplicationsHandler) List(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}
	items, err := h.svc.List(r.Context(), p.Email, r.URL.Query().Get("email"))
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.Applications(items))
}

func (h *ApplicationsHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}
	var req dto.CreateApplicationRequest
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Create(r.Context(), p.Email, req.Input())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	if !res.Created {
		response.OK(w, dto.Exists("application"))
		return
	}
	response.OK(w, dto.Inserted(domain.InsertResult{InsertedID: res.ApplicationID}))
}

func (h *ApplicationsHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
