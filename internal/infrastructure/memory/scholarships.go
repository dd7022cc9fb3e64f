package memory

import (
	"context"
	"time"

	"github.com/elevatescholar/scholarship-api/internal/domain"
)

type ScholarshipRepo struct{ s *Store }

func (r *ScholarshipRepo) Insert(ctx context.Context, sc *domain.Scholarship) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.scholarships[sc.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.scholarships[sc.ID] = *sc
	return nil
}

func (r *ScholarshipRepo) GetByID(ctx context.Context, id string) (*domain.Scholarship, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sc, ok := r.s.scholarships[id]
	if !ok {
		return nil, domain.ErrScholarshipNotFound()
	}
	return &sc, nil
}

func (r *ScholarshipRepo) List(ctx context.Context, query string, limit int) ([]*domain.Scholarship, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*domain.Scholarship, 0, len(r.s.scholarships))
	for _, sc := range r.s.scholarships {
		if query != "" &&
			!containsFold(sc.UniversityName, query) &&
			!containsFold(sc.ScholarshipName, query) &&
			!containsFold(sc.Degree, query) {
			continue
		}
		out = append(out, &sc)
	}
	sortNewestFirst(out, func(sc *domain.Scholarship) int64 { return sc.CreatedAt.UnixNano() })
	return capped(out, limit), nil
}

func (r *ScholarshipRepo) UpdateFields(ctx context.Context, sc *domain.Scholarship) (domain.UpdateResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.scholarships[sc.ID]
	if !ok {
		return domain.UpdateResult{}, nil
	}
	next := cur
	next.UniversityName = sc.UniversityName
	next.ScholarshipName = sc.ScholarshipName
	next.Degree = sc.Degree
	next.UniversityCountry = sc.UniversityCountry
	next.UniversityCity = sc.UniversityCity
	next.SubjectCategory = sc.SubjectCategory
	next.ScholarshipCategory = sc.ScholarshipCategory
	next.TuitionFees = sc.TuitionFees
	next.ApplicationFees = sc.ApplicationFees
	next.ServiceCharge = sc.ServiceCharge
	next.Deadline = sc.Deadline
	next.UpdatedAt = sc.UpdatedAt
	r.s.scholarships[sc.ID] = next
	return domain.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *ScholarshipRepo) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.scholarships[id]; !ok {
		return domain.DeleteResult{}, nil
	}
	delete(r.s.scholarships, id)
	return domain.DeleteResult{DeletedCount: 1}, nil
}

func (r *ScholarshipRepo) SetPaid(ctx context.Context, id string, payAt time.Time) (domain.UpdateResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sc, ok := r.s.scholarships[id]
	if !ok {
		return domain.UpdateResult{}, nil
	}
	sc.MarkPaid(payAt)
	r.s.scholarships[id] = sc
	return domain.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}
