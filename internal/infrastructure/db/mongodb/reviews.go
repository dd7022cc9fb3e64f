package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/elevatescholar/scholarship-api/internal/domain"
)

type ReviewRepo struct {
	coll *mongo.Collection
}

func (r *ReviewRepo) Insert(ctx context.Context, rv *domain.Review) error {
	doc, err := toReviewDoc(rv)
	if err != nil {
		return err
	}
	_, err = r.coll.InsertOne(ctx, doc)
	return storeErr(err)
}

func (r *ReviewRepo) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	filter, ok := byID(id)
	if !ok {
		return nil, domain.ErrReviewNotFound()
	}
	var doc reviewDoc
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrReviewNotFound()
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return doc.toDomain(), nil
}

func (r *ReviewRepo) List(ctx context.Context, f domain.ReviewFilter) ([]*domain.Review, error) {
	filter := bson.M{}
	if f.Email != "" {
		filter["email"] = f.Email
	}
	if f.ScholarshipID != "" {
		filter["scholarshipId"] = f.ScholarshipID
	}
	cur, err := r.coll.Find(ctx, filter, newestFirst("createdAt", 0))
	if err != nil {
		return nil, storeErr(err)
	}
	var docs []reviewDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, storeErr(err)
	}
	out := make([]*domain.Review, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *ReviewRepo) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
	filter, ok := byID(id)
	if !ok {
		return domain.DeleteResult{}, nil
	}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return domain.DeleteResult{}, storeErr(err)
	}
	return domain.DeleteResult{DeletedCount: res.DeletedCount}, nil
}
