package scholarship

import (
	"context"

	"github.com/elevatescholar/scholarship-api/internal/domain"
)

type CreateCmd struct {
	ActorEmail string
	Fields     domain.ScholarshipFields
}

func (s *Service) Create(ctx context.Context, cmd CreateCmd) (domain.InsertResult, error) {
	sc, err := domain.NewScholarship(cmd.Fields, cmd.ActorEmail, s.clock.Now())
	if err != nil {
		return domain.InsertResult{}, err
	}
	if err := s.repo.Insert(ctx, sc); err != nil {
		return domain.InsertResult{}, err
	}
	s.audit(ctx, "scholarship.create", map[string]string{
		"actor":          cmd.ActorEmail,
		"scholarship_id": sc.ID,
	})
	return domain.InsertResult{InsertedID: sc.ID}, nil
}
