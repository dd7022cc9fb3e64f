package review

import (
	"context"
	"time"

	"github.com/elevatescholar/scholarship-api/internal/domain"
)

type Clock interface{ Now() time.Time }

// Repo: GetByID returns domain.ErrReviewNotFound when nothing matches.
type Repo interface {
	Insert(ctx context.Context, r *domain.Review) error
	GetByID(ctx context.Context, id string) (*domain.Review, error)
	List(ctx context.Context, f domain.ReviewFilter) ([]*domain.Review, error)
	Delete(ctx context.Context, id string) (domain.DeleteResult, error)
}

// RoleLookup returns the stored role for an email, or domain.ErrUserNotFound.
type RoleLookup interface {
	LookupRole(ctx context.Context, email string) (domain.Role, error)
}

type AuditFunc func(ctx context.Context, action string, fields map[string]string)
