package scholarship

import (
	"context"
	"time"

	"github.com/elevatescholar/scholarship-api/internal/domain"
)

type Clock interface {
	Now() time.Time
}

// Repo is the persistence port for scholarships.
// GetByID returns domain.ErrScholarshipNotFound when nothing matches.
type Repo interface {
	Insert(ctx context.Context, s *domain.Scholarship) error
	GetByID(ctx context.Context, id string) (*domain.Scholarship, error)
	List(ctx context.Context, query string, limit int) ([]*domain.Scholarship, error)
	// UpdateFields writes only the admin-editable fields and updatedAt.
	UpdateFields(ctx context.Context, s *domain.Scholarship) (domain.UpdateResult, error)
	Delete(ctx context.Context, id string) (domain.DeleteResult, error)
	SetPaid(ctx context.Context, id string, payAt time.Time) (domain.UpdateResult, error)
}

// Cache is a best-effort JSON cache; every failure is logged and ignored.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, val any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type AuditFunc func(ctx context.Context, action string, fields map[string]string)
