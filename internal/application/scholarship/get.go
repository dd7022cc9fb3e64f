package scholarship

import (
	"context"
	"strings"

	"github.com/elevatescholar/scholarship-api/internal/domain"
	zlog "github.com/rs/zerolog/log"
)

// Get validates the id format before any lookup, then serves from cache when possible.
func (s *Service) Get(ctx context.Context, id string) (*domain.Scholarship, error) {
	id = strings.TrimSpace(id)
	if !domain.IsValidID(id) {
		return nil, domain.ErrInvalidID("id")
	}

	key := cacheKeyDetails(id)
	if s.cache != nil {
		var cached domain.Scholarship
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			zlog.Warn().Err(err).Str("key", key).Msg("cache get failed")
		} else if found {
			zlog.Debug().Str("key", key).Msg("cache hit")
			return &cached, nil
		}
	}

	sc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, sc, s.ttlDetails); err != nil {
			zlog.Warn().Err(err).Str("key", key).Msg("cache set failed")
		}
	}
	return sc, nil
}

func (s *Service) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	key := cacheKeyDetails(id)
	if err := s.cache.Delete(ctx, key); err != nil {
		zlog.Warn().Err(err).Str("key", key).Msg("cache invalidate failed")
	}
}
