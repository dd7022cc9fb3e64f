package memory

import (
	"context"

	"github.com/elevatescholar/scholarship-api/internal/domain"
)

type ApplicationRepo struct{ s *Store }

func (r *ApplicationRepo) Insert(ctx context.Context, a *domain.Application) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, cur := range r.s.applications {
		if cur.UserEmail == a.UserEmail && cur.ScholarshipID == a.ScholarshipID {
			return domain.ErrDuplicate
		}
	}
	r.s.applications[a.ID] = *a
	return nil
}

func (r *ApplicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	a, ok := r.s.applications[id]
	if !ok {
		return nil, domain.ErrApplicationNotFound()
	}
	return &a, nil
}

func (r *ApplicationRepo) FindByUserAndScholarship(ctx context.Context, email, scholarshipID string) (*domain.Application, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, a := range r.s.applications {
		if a.UserEmail == email && a.ScholarshipID == scholarshipID {
			return &a, nil
		}
	}
	return nil, domain.ErrApplicationNotFound()
}

func (r *ApplicationRepo) List(ctx context.Context, email string) ([]*domain.Application, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*domain.Application, 0, len(r.s.applications))
	for _, a := range r.s.applications {
		if email != "" && a.UserEmail != email {
			continue
		}
		out = append(out, &a)
	}
	sortNewestFirst(out, func(a *domain.Application) int64 { return a.ApplicationDate.UnixNano() })
	return out, nil
}

func (r *ApplicationRepo) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.applications[id]; !ok {
		return domain.DeleteResult{}, nil
	}
	delete(r.s.applications, id)
	return domain.DeleteResult{DeletedCount: 1}, nil
}

func (r *ApplicationRepo) SetPaid(ctx context.Context, email, scholarshipID, transactionID string) (domain.UpdateResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, a := range r.s.applications {
		if a.UserEmail != email || a.ScholarshipID != scholarshipID {
			continue
		}
		changed := a.PaymentStatus != domain.PaymentPaid || a.TransactionID != transactionID
		a.PaymentStatus = domain.PaymentPaid
		a.TransactionID = transactionID
		r.s.applications[id] = a
		return domain.UpdateResult{MatchedCount: 1, ModifiedCount: boolCount(changed)}, nil
	}
	return domain.UpdateResult{}, nil
}
