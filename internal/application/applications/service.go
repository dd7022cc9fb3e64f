package applications

import (
	"context"
	"errors"
	"strings"

	"github.com/elevatescholar/scholarship-api/internal/contracts/event"
	"github.com/elevatescholar/scholarship-api/internal/domain"
	"github.com/elevatescholar/scholarship-api/internal/metrics"
	reqctx "github.com/elevatescholar/scholarship-api/internal/pkg/context"
	zlog "github.com/rs/zerolog/log"
)

type Service struct {
	repo  Repo
	roles RoleLookup
	pub   EventPublisher
	clock Clock
}

func New(repo Repo, roles RoleLookup, pub EventPublisher, clock Clock) *Service {
	return &Service{repo: repo, roles: roles, pub: pub, clock: clock}
}

type CreateResult struct {
	Created       bool
	ApplicationID string
}

// Create is a no-op returning Created=false when the principal already applied to the scholarship.
func (s *Service) Create(ctx context.Context, principalEmail string, in domain.ApplicationInput) (CreateResult, error) {
	a, err := domain.NewApplication(principalEmail, in, s.clock.Now())
	if err != nil {
		return CreateResult{}, err
	}

	existing, err := s.repo.FindByUserAndScholarship(ctx, a.UserEmail, a.ScholarshipID)
	switch {
	case err == nil:
		return CreateResult{Created: false, ApplicationID: existing.ID}, nil
	case !domain.Is(err, domain.ErrApplicationNotFound().Code):
		return CreateResult{}, err
	}

	if err := s.repo.Insert(ctx, a); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return CreateResult{Created: false}, nil
		}
		return CreateResult{}, err
	}

	metrics.RecordApplicationSubmitted()
	s.publishSubmitted(ctx, a)
	return CreateResult{Created: true, ApplicationID: a.ID}, nil
}

// List scopes non-admin principals to their own applications regardless of the email filter.
func (s *Service) List(ctx context.Context, principalEmail, emailFilter string) ([]*domain.Application, error) {
	role, err := s.roleOf(ctx, principalEmail)
	if err != nil {
		return nil, err
	}
	email := domain.NormalizeEmail(emailFilter)
	if !role.IsAdmin() {
		email = domain.NormalizeEmail(principalEmail)
	}
	items, err := s.repo.List(ctx, email)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*domain.Application{}
	}
	return items, nil
}

// Delete removes exactly the application named by id.
func (s *Service) Delete(ctx context.Context, principalEmail, id string) (domain.DeleteResult, error) {
	id = strings.TrimSpace(id)
	if !domain.IsValidID(id) {
		return domain.DeleteResult{}, domain.ErrInvalidID("id")
	}
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.DeleteResult{}, err
	}
	role, err := s.roleOf(ctx, principalEmail)
	if err != nil {
		return domain.DeleteResult{}, err
	}
	if !a.CanDelete(principalEmail, role) {
		return domain.DeleteResult{}, domain.ErrNotOwner()
	}

	res, err := s.repo.Delete(ctx, id)
	if err != nil {
		return domain.DeleteResult{}, err
	}
	if res.DeletedCount == 0 {
		return domain.DeleteResult{}, domain.ErrApplicationNotFound()
	}
	return res, nil
}

// MarkPaid flags the (email, scholarship) application as paid when one exists.
// Used by the payment workflow; a missing application is not an error.
func (s *Service) MarkPaid(ctx context.Context, email, scholarshipID, transactionID string) (bool, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || !domain.IsValidID(scholarshipID) {
		return false, nil
	}
	res, err := s.repo.SetPaid(ctx, email, scholarshipID, transactionID)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (s *Service) roleOf(ctx context.Context, email string) (domain.Role, error) {
	role, err := s.roles.LookupRole(ctx, email)
	if err != nil {
		if domain.Is(err, domain.ErrUserNotFound().Code) {
			return domain.DefaultRole, nil
		}
		return "", err
	}
	return role, nil
}

func (s *Service) publishSubmitted(ctx context.Context, a *domain.Application) {
	if s.pub == nil {
		return
	}
	msgID, body, err := event.Encode(event.ApplicationSubmittedPayload{
		ApplicationID: a.ID,
		UserEmail:     a.UserEmail,
		ScholarshipID: a.ScholarshipID,
	}, reqctx.GetRequestID(ctx), s.clock.Now())
	if err != nil {
		zlog.Warn().Err(err).Msg("encode application.submitted failed")
		return
	}
	if err := s.pub.PublishEvent(ctx, event.RoutingApplicationSubmitted, msgID, body); err != nil {
		zlog.Warn().Err(err).Str("application_id", a.ID).Msg("publish application.submitted failed")
	}
}
