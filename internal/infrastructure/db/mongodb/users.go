package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/elevatescholar/scholarship-api/internal/domain"
)

// UserRepo keys users by lowercase email; the unique index backs Insert's duplicate check.
type UserRepo struct {
	coll *mongo.Collection
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var doc userDoc
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrUserNotFound()
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepo) Insert(ctx context.Context, u *domain.User) error {
	_, err := r.coll.InsertOne(ctx, toUserDoc(u))
	return storeErr(err)
}

func (r *UserRepo) List(ctx context.Context, query string, limit int) ([]*domain.User, error) {
	cur, err := r.coll.Find(ctx, containsAny(query, "displayName", "email"), newestFirst("createdAt", limit))
	if err != nil {
		return nil, storeErr(err)
	}
	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, storeErr(err)
	}
	out := make([]*domain.User, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *UserRepo) UpdateProfile(ctx context.Context, email string, p domain.ProfileUpdate, now time.Time) (domain.UpdateResult, error) {
	set := bson.M{"updatedAt": now.UTC()}
	if p.DisplayName != nil {
		set["displayName"] = *p.DisplayName
	}
	if p.PhotoURL != nil {
		set["photoURL"] = *p.PhotoURL
	}
	return r.update(ctx, email, set)
}

func (r *UserRepo) SetRole(ctx context.Context, email string, role domain.Role, now time.Time) (domain.UpdateResult, error) {
	return r.update(ctx, email, bson.M{"role": role.String(), "updatedAt": now.UTC()})
}

func (r *UserRepo) update(ctx context.Context, email string, set bson.M) (domain.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": set})
	if err != nil {
		return domain.UpdateResult{}, storeErr(err)
	}
	return domain.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}
