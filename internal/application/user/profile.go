package user

import (
	"context"
	"strings"

	"github.com/elevatescholar/scholarship-api/internal/domain"
)

func (s *Service) Profile(ctx context.Context, principalEmail string) (*domain.User, error) {
	email := domain.NormalizeEmail(principalEmail)
	if email == "" {
		return nil, domain.ErrTokenInvalid()
	}
	return s.users.GetByEmail(ctx, email)
}

// UpdateProfile edits the principal's own record. Only display name and photo are writable here;
// role and email changes have no path through this call.
func (s *Service) UpdateProfile(ctx context.Context, principalEmail string, p domain.ProfileUpdate) (domain.UpdateResult, error) {
	email := domain.NormalizeEmail(principalEmail)
	if email == "" {
		return domain.UpdateResult{}, domain.ErrTokenInvalid()
	}
	if err := p.Validate(); err != nil {
		return domain.UpdateResult{}, err
	}
	if p.DisplayName != nil {
		v := strings.TrimSpace(*p.DisplayName)
		p.DisplayName = &v
	}
	if p.PhotoURL != nil {
		v := strings.TrimSpace(*p.PhotoURL)
		p.PhotoURL = &v
	}

	res, err := s.users.UpdateProfile(ctx, email, p, s.clock.Now())
	if err != nil {
		return domain.UpdateResult{}, err
	}
	if res.MatchedCount == 0 {
		return domain.UpdateResult{}, domain.ErrUserNotFound()
	}
	return res, nil
}

// List is admin-only; the route applies the role gate.
func (s *Service) List(ctx context.Context, query string) ([]*domain.User, error) {
	items, err := s.users.List(ctx, strings.TrimSpace(query), domain.PageSize)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*domain.User{}
	}
	return items, nil
}
