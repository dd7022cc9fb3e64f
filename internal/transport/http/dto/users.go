package dto

import (
	"time"

	"github.com/elevatescholar/scholarship-api/internal/domain"
)

type RegisterUserRequest struct {
	Email       string `json:"email" validate:"required,email,max=254"`
	DisplayName string `json:"displayName" validate:"max=120"`
	PhotoURL    string `json:"photoURL" validate:"omitempty,max=2048"`
}

// UpdateProfileRequest has no role or email field; those keys are dropped during decoding.
type UpdateProfileRequest struct {
	DisplayName *string `json:"displayName" validate:"omitempty,max=120"`
	PhotoURL    *string `json:"photoURL" validate:"omitempty,max=2048"`
}

func (r UpdateProfileRequest) Update() domain.ProfileUpdate {
	return domain.ProfileUpdate{DisplayName: r.DisplayName, PhotoURL: r.PhotoURL}
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

type UserResponse struct {
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName,omitempty"`
	PhotoURL    string    `json:"photoURL,omitempty"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func User(u *domain.User) UserResponse {
	return UserResponse{
		Email:       u.Email,
		DisplayName: u.DisplayName,
		PhotoURL:    u.PhotoURL,
		Role:        string(u.Role),
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func Users(items []*domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(items))
	for _, u := range items {
		out = append(out, User(u))
	}
	return out
}
