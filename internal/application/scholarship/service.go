package scholarship

import (
	"context"
	"time"
)

type Service struct {
	repo  Repo
	cache Cache
	clock Clock
	audit AuditFunc

	ttlDetails time.Duration
}

func New(repo Repo, clock Clock, cache Cache, ttlDetails time.Duration) *Service {
	if ttlDetails <= 0 {
		ttlDetails = 5 * time.Minute
	}
	return &Service{
		repo:       repo,
		cache:      cache,
		clock:      clock,
		audit:      func(context.Context, string, map[string]string) {},
		ttlDetails: ttlDetails,
	}
}

func (s *Service) WithAudit(fn AuditFunc) *Service {
	if fn != nil {
		s.audit = fn
	}
	return s
}
