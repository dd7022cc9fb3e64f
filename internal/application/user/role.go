package user

import (
	"context"

	"github.com/elevatescholar/scholarship-api/internal/domain"
	zlog "github.com/rs/zerolog/log"
)

// LookupRole returns the stored role. A missing record yields domain.ErrUserNotFound.
func (s *Service) LookupRole(ctx context.Context, email string) (domain.Role, error) {
	u, err := s.users.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return "", err
	}
	if !u.Role.Valid() {
		return domain.DefaultRole, nil
	}
	return u.Role, nil
}

// GetRole never fails: unknown users and store errors both report the default role.
func (s *Service) GetRole(ctx context.Context, email string) domain.Role {
	role, err := s.LookupRole(ctx, email)
	if err != nil {
		if !domain.Is(err, domain.ErrUserNotFound().Code) {
			zlog.Warn().Err(err).Msg("role lookup failed; reporting default role")
		}
		return domain.DefaultRole
	}
	return role
}

type SetRoleCmd struct {
	ActorEmail  string
	TargetEmail string
	Role        string
}

// SetRole validates the role before touching the store.
func (s *Service) SetRole(ctx context.Context, cmd SetRoleCmd) (domain.UpdateResult, error) {
	const action = "admin.set_user_role"

	role, ok := domain.ParseRole(cmd.Role)
	if !ok {
		return domain.UpdateResult{}, domain.ErrInvalidRole(cmd.Role)
	}
	target := domain.NormalizeEmail(cmd.TargetEmail)
	if target == "" {
		return domain.UpdateResult{}, domain.ErrMissingField("email")
	}

	current, err := s.users.GetByEmail(ctx, target)
	if err != nil {
		return domain.UpdateResult{}, err
	}

	res, err := s.users.SetRole(ctx, target, role, s.clock.Now())
	if err != nil {
		return domain.UpdateResult{}, err
	}
	if res.MatchedCount == 0 {
		return domain.UpdateResult{}, domain.ErrUserNotFound()
	}

	s.audit(ctx, action, map[string]string{
		"actor":    cmd.ActorEmail,
		"target":   target,
		"old_role": current.Role.String(),
		"new_role": role.String(),
	})
	return res, nil
}
