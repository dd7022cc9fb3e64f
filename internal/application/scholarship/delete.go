package scholarship

import (
	"context"
	"strings"

	"github.com/elevatescholar/scholarship-api/internal/domain"
)

func (s *Service) Delete(ctx context.Context, actorEmail, id string) (domain.DeleteResult, error) {
	id = strings.TrimSpace(id)
	if !domain.IsValidID(id) {
		return domain.DeleteResult{}, domain.ErrInvalidID("id")
	}
	res, err := s.repo.Delete(ctx, id)
	if err != nil {
		return domain.DeleteResult{}, err
	}
	if res.DeletedCount == 0 {
		return domain.DeleteResult{}, domain.ErrScholarshipNotFound()
	}

	s.invalidate(ctx, id)
	s.audit(ctx, "scholarship.delete", map[string]string{
		"actor":          actorEmail,
		"scholarship_id": id,
	})
	return res, nil
}
