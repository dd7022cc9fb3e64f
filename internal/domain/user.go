package domain

import (
	"net/mail"
	"strings"
	"time"
)

type User struct {
	Email       string
	DisplayName string
	PhotoURL    string
	Role        Role
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProfileUpdate lists the only fields a user may change on their own record.
type ProfileUpdate struct {
	DisplayName *string
	PhotoURL    *string
}

func NewUser(email, displayName, photoURL string, now time.Time) (*User, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, ErrMissingField("email")
	}
	if !ValidEmail(email) {
		return nil, ErrInvalidField("email", "must be a valid email address")
	}
	displayName = strings.TrimSpace(displayName)
	if len(displayName) > 120 {
		return nil, ErrInvalidField("displayName", "must be <= 120 chars")
	}
	return &User{
		Email:       email,
		DisplayName: displayName,
		PhotoURL:    strings.TrimSpace(photoURL),
		Role:        DefaultRole,
		CreatedAt:   now.UTC(),
		UpdatedAt:   now.UTC(),
	}, nil
}

func (p ProfileUpdate) Validate() error {
	if p.DisplayName != nil {
		v := strings.TrimSpace(*p.DisplayName)
		if v == "" || len(v) > 120 {
			return ErrInvalidField("displayName", "must be non-empty and <= 120 chars")
		}
	}
	if p.PhotoURL != nil && len(*p.PhotoURL) > 2048 {
		return ErrInvalidField("photoURL", "too long")
	}
	return nil
}

func (p ProfileUpdate) Empty() bool {
	return p.DisplayName == nil && p.PhotoURL == nil
}

func ValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
