package scholarship

import (
	"context"
	"strings"

	"github.com/elevatescholar/scholarship-api/internal/domain"
)

// List matches query case-insensitively against university name, scholarship name or degree.
// Results are newest first and capped at domain.PageSize. An empty query lists everything.
func (s *Service) List(ctx context.Context, query string) ([]*domain.Scholarship, error) {
	items, err := s.repo.List(ctx, strings.TrimSpace(query), domain.PageSize)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*domain.Scholarship{}
	}
	return items, nil
}
