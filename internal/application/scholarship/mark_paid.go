package scholarship

import (
	"context"
	"strings"

	"github.com/elevatescholar/scholarship-api/internal/domain"
)

// MarkPaid sets paymentStatus=paid and payAt=now. Repeating it for a paid record is harmless.
// Only the payment workflow calls this.
func (s *Service) MarkPaid(ctx context.Context, id string) (domain.UpdateResult, error) {
	id = strings.TrimSpace(id)
	if !domain.IsValidID(id) {
		return domain.UpdateResult{}, domain.ErrInvalidID("scholarshipId")
	}
	res, err := s.repo.SetPaid(ctx, id, s.clock.Now().UTC())
	if err != nil {
		return domain.UpdateResult{}, err
	}
	if res.MatchedCount == 0 {
		return domain.UpdateResult{}, domain.ErrScholarshipNotFound()
	}
	s.invalidate(ctx, id)
	return res, nil
}
