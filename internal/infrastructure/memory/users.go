package memory

import (
	"context"
	"time"

	"github.com/elevatescholar/scholarship-api/internal/domain"
)

type UserRepo struct{ s *Store }

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound()
	}
	return &u, nil
}

func (r *UserRepo) Insert(ctx context.Context, u *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.Email]; ok {
		return domain.ErrDuplicate
	}
	r.s.users[u.Email] = *u
	return nil
}

func (r *UserRepo) List(ctx context.Context, query string, limit int) ([]*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*domain.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		if query != "" && !containsFold(u.DisplayName, query) && !containsFold(u.Email, query) {
			continue
		}
		out = append(out, &u)
	}
	sortNewestFirst(out, func(u *domain.User) int64 { return u.CreatedAt.UnixNano() })
	return capped(out, limit), nil
}

func (r *UserRepo) UpdateProfile(ctx context.Context, email string, p domain.ProfileUpdate, now time.Time) (domain.UpdateResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[email]
	if !ok {
		return domain.UpdateResult{}, nil
	}
	before := u
	if p.DisplayName != nil {
		u.DisplayName = *p.DisplayName
	}
	if p.PhotoURL != nil {
		u.PhotoURL = *p.PhotoURL
	}
	changed := before != u
	u.UpdatedAt = now.UTC()
	r.s.users[email] = u
	return domain.UpdateResult{MatchedCount: 1, ModifiedCount: boolCount(changed)}, nil
}

func (r *UserRepo) SetRole(ctx context.Context, email string, role domain.Role, now time.Time) (domain.UpdateResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[email]
	if !ok {
		return domain.UpdateResult{}, nil
	}
	changed := u.Role != role
	u.Role = role
	u.UpdatedAt = now.UTC()
	r.s.users[email] = u
	return domain.UpdateResult{MatchedCount: 1, ModifiedCount: boolCount(changed)}, nil
}

func boolCount(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
