package memory

import (
	"context"

	"github.com/elevatescholar/scholarship-api/internal/domain"
)

type ReviewRepo struct{ s *Store }

func (r *ReviewRepo) Insert(ctx context.Context, rv *domain.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.reviews[rv.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.reviews[rv.ID] = *rv
	return nil
}

func (r *ReviewRepo) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rv, ok := r.s.reviews[id]
	if !ok {
		return nil, domain.ErrReviewNotFound()
	}
	return &rv, nil
}

func (r *ReviewRepo) List(ctx context.Context, f domain.ReviewFilter) ([]*domain.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*domain.Review, 0, len(r.s.reviews))
	for _, rv := range r.s.reviews {
		if f.Email != "" && rv.Email != f.Email {
			continue
		}
		if f.ScholarshipID != "" && rv.ScholarshipID != f.ScholarshipID {
			continue
		}
		out = append(out, &rv)
	}
	sortNewestFirst(out, func(rv *domain.Review) int64 { return rv.CreatedAt.UnixNano() })
	return out, nil
}

func (r *ReviewRepo) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.reviews[id]; !ok {
		return domain.DeleteResult{}, nil
	}
	delete(r.s.reviews, id)
	return domain.DeleteResult{DeletedCount: 1}, nil
}
