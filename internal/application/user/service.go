package user

import (
	"context"
)

type Service struct {
	users Repo
	clock Clock
	audit AuditFunc
}

func NewService(users Repo, clock Clock) *Service {
	return &Service{
		users: users,
		clock: clock,
		audit: func(context.Context, string, map[string]string) {},
	}
}

func (s *Service) WithAudit(fn AuditFunc) *Service {
	if fn != nil {
		s.audit = fn
	}
	return s
}

// RegisterResult is either the id of a new record or the "exists" sentinel.
type RegisterResult struct {
	Created bool
	Email   string
}
