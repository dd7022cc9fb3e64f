package user

import (
	"context"
	"time"

	"github.com/elevatescholar/scholarship-api/internal/domain"
)

type Clock interface {
	Now() time.Time
}

/*
Repo
----
Persistence port for users, keyed by normalized email.
GetByEmail returns domain.ErrUserNotFound when no record exists.
Insert returns domain.ErrDuplicate when the email is already taken.
*/
type Repo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Insert(ctx context.Context, u *domain.User) error
	List(ctx context.Context, query string, limit int) ([]*domain.User, error)
	UpdateProfile(ctx context.Context, email string, p domain.ProfileUpdate, now time.Time) (domain.UpdateResult, error)
	SetRole(ctx context.Context, email string, role domain.Role, now time.Time) (domain.UpdateResult, error)
}

type AuditFunc func(ctx context.Context, action string, fields map[string]string)
