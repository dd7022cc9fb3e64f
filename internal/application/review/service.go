package review

import (
	"context"
	"strings"

	"github.com/elevatescholar/scholarship-api/internal/domain"
)

type Service struct {
	repo  Repo
	roles RoleLookup
	clock Clock
	audit AuditFunc
}

func New(repo Repo, roles RoleLookup, clock Clock) *Service {
	return &Service{
		repo:  repo,
		roles: roles,
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

type CreateCmd struct {
	PrincipalEmail string
	ReviewerName   string
	ReviewerImage  string
	ScholarshipID  string
	Rating         int
	Comment        string
}

// Create always records the verified principal as author, whatever the body claims.
func (s *Service) Create(ctx context.Context, cmd CreateCmd) (domain.InsertResult, error) {
	r, err := domain.NewReview(cmd.PrincipalEmail, cmd.ReviewerName, cmd.ReviewerImage, cmd.ScholarshipID, cmd.Rating, cmd.Comment, s.clock.Now())
	if err != nil {
		return domain.InsertResult{}, err
	}
	if err := s.repo.Insert(ctx, r); err != nil {
		return domain.InsertResult{}, err
	}
	return domain.InsertResult{InsertedID: r.ID}, nil
}

func (s *Service) List(ctx context.Context, f domain.ReviewFilter) ([]*domain.Review, error) {
	f.Email = domain.NormalizeEmail(f.Email)
	f.ScholarshipID = strings.TrimSpace(f.ScholarshipID)
	if f.ScholarshipID != "" && !domain.IsValidID(f.ScholarshipID) {
		return nil, domain.ErrInvalidID("scholarshipId")
	}
	items, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*domain.Review{}
	}
	return items, nil
}

// Delete: 404 when missing, 403 unless the principal wrote it or is an admin.
func (s *Service) Delete(ctx context.Context, principalEmail, id string) (domain.DeleteResult, error) {
	id = strings.TrimSpace(id)
	if !domain.IsValidID(id) {
		return domain.DeleteResult{}, domain.ErrInvalidID("id")
	}
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.DeleteResult{}, err
	}

	role, err := s.roleOf(ctx, principalEmail)
	if err != nil {
		return domain.DeleteResult{}, err
	}
	if !r.CanDelete(principalEmail, role) {
		return domain.DeleteResult{}, domain.ErrNotOwner()
	}

	res, err := s.repo.Delete(ctx, id)
	if err != nil {
		return domain.DeleteResult{}, err
	}
	if res.DeletedCount == 0 {
		return domain.DeleteResult{}, domain.ErrReviewNotFound()
	}

	if role.IsAdmin() && domain.NormalizeEmail(principalEmail) != r.Email {
		s.audit(ctx, "review.delete_by_admin", map[string]string{
			"actor":     principalEmail,
			"review_id": id,
			"author":    r.Email,
		})
	}
	return res, nil
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
