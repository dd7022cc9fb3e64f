package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/elevatescholar/scholarship-api/internal/application/user"
	"github.com/elevatescholar/scholarship-api/internal/transport/http/dto"
	"github.com/elevatescholar/scholarship-api/internal/transport/http/response"
	"github.com/elevatescholar/scholarship-api/internal/transport/http/validate"
)

type UsersHandler struct {
	svc *user.Service
}

func NewUsersHandler(svc *user.Service) *UsersHandler {
	return &UsersHandler{svc: svc}
}

func (h *UsersHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterUserRequest
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Register(r.Context(), user.RegisterCmd{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	if !res.Created {
		response.OK(w, dto.Exists("user"))
		return
	}
	response.OK(w, dto.InsertResult{Acknowledged: true, InsertedID: res.Email})
}

// Role never fails: unknown emails report the default role.
func (h *UsersHandler) Role(w http.ResponseWriter, r *http.Request) {
	role := h.svc.GetRole(r.Context(), chi.URLParam(r, "email"))
	response.OK(w, dto.RoleResponse{Role: role.String()})
}

func (h *UsersHandler) Profile(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}
	u, err := h.svc.Profile(r.Context(), p.Email)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.User(u))
}

func (h *UsersHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}
	var req dto.UpdateProfileRequest
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.UpdateProfile(r.Context(), p.Email, req.Update())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.Updated(res))
}

// Admin
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context(), r.URL.Query().Get("filter"))
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.Users(items))
}

func (h *UsersHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}
	var req dto.UpdateRoleRequest
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.SetRole(r.Context(), user.SetRoleCmd{
		ActorEmail:  p.Email,
		TargetEmail: chi.URLParam(r, "email"),
		Role:        req.Role,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.Updated(res))
}
