package user

import (
	"context"
	"errors"

	"github.com/elevatescholar/scholarship-api/internal/domain"
)

type RegisterCmd struct {
	Email       string
	DisplayName string
	PhotoURL    string
}

// Register is idempotent on email: an existing record is returned as the sentinel and never touched.
func (s *Service) Register(ctx context.Context, cmd RegisterCmd) (RegisterResult, error) {
	u, err := domain.NewUser(cmd.Email, cmd.DisplayName, cmd.PhotoURL, s.clock.Now())
	if err != nil {
		return RegisterResult{}, err
	}

	_, err = s.users.GetByEmail(ctx, u.Email)
	switch {
	case err == nil:
		return RegisterResult{Created: false, Email: u.Email}, nil
	case !domain.Is(err, domain.ErrUserNotFound().Code):
		return RegisterResult{}, err
	}

	if err := s.users.Insert(ctx, u); err != nil {
		// lost a race against an identical registration
		if errors.Is(err, domain.ErrDuplicate) {
			return RegisterResult{Created: false, Email: u.Email}, nil
		}
		return RegisterResult{}, err
	}
	return RegisterResult{Created: true, Email: u.Email}, nil
}
