package scholarship

import (
	"context"
	"strings"

	"github.com/elevatescholar/scholarship-api/internal/domain"
)

type UpdateCmd struct {
	ActorEmail    string
	ScholarshipID string
	Fields        domain.ScholarshipFields
}

func (s *Service) Update(ctx context.Context, cmd UpdateCmd) (domain.UpdateResult, error) {
	id := strings.TrimSpace(cmd.ScholarshipID)
	if !domain.IsValidID(id) {
		return domain.UpdateResult{}, domain.ErrInvalidID("id")
	}

	sc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	if err := sc.ApplyUpdate(cmd.Fields, s.clock.Now()); err != nil {
		return domain.UpdateResult{}, err
	}

	res, err := s.repo.UpdateFields(ctx, sc)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	if res.MatchedCount == 0 {
		return domain.UpdateResult{}, domain.ErrScholarshipNotFound()
	}

	s.invalidate(ctx, id)
	s.audit(ctx, "scholarship.update", map[string]string{
		"actor":          cmd.ActorEmail,
		"scholarship_id": id,
	})
	return res, nil
}
