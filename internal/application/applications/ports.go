package applications

import (
	"context"
	"time"

	"github.com/elevatescholar/scholarship-api/internal/domain"
)

type Clock interface{ Now() time.Time }

/*
Repo
----
FindByUserAndScholarship and GetByID return domain.ErrApplicationNotFound when nothing matches.
Insert returns domain.ErrDuplicate if the (userEmail, scholarshipId) pair already exists.
*/
type Repo interface {
	Insert(ctx context.Context, a *domain.Application) error
	GetByID(ctx context.Context, id string) (*domain.Application, error)
	FindByUserAndScholarship(ctx context.Context, email, scholarshipID string) (*domain.Application, error)
	List(ctx context.Context, email string) ([]*domain.Application, error)
	Delete(ctx context.Context, id string) (domain.DeleteResult, error)
	SetPaid(ctx context.Context, email, scholarshipID, transactionID string) (domain.UpdateResult, error)
}

type RoleLookup interface {
	LookupRole(ctx context.Context, email string) (domain.Role, error)
}

// EventPublisher emits a JSON body under routingKey. messageID must stay stable across retries.
type EventPublisher interface {
	PublishEvent(ctx context.Context, routingKey, messageID string, body []byte) error
}
