package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/elevatescholar/scholarship-api/internal/domain"
)

type ApplicationRepo struct {
	coll *mongo.Collection
}

func (r *ApplicationRepo) Insert(ctx context.Context, a *domain.Application) error {
	doc, err := toApplicationDoc(a)
	if err != nil {
		return err
	}
	_, err = r.coll.InsertOne(ctx, doc)
	return storeErr(err)
}

func (r *ApplicationRepo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	filter, ok := byID(id)
	if !ok {
		return nil, domain.ErrApplicationNotFound()
	}
	return r.findOne(ctx, filter)
}

func (r *ApplicationRepo) FindByUserAndScholarship(ctx context.Context, email, scholarshipID string) (*domain.Application, error) {
	return r.findOne(ctx, bson.M{"userEmail": email, "scholarshipId": scholarshipID})
}

func (r *ApplicationRepo) findOne(ctx context.Context, filter bson.M) (*domain.Application, error) {
	var doc applicationDoc
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrApplicationNotFound()
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return doc.toDomain(), nil
}

// List returns every application when email is empty.
func (r *ApplicationRepo) List(ctx context.Context, email string) ([]*domain.Application, error) {
	filter := bson.M{}
	if email != "" {
		filter["userEmail"] = email
	}
	cur, err := r.coll.Find(ctx, filter, newestFirst("applicationDate", 0))
	if err != nil {
		return nil, storeErr(err)
	}
	var docs []applicationDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, storeErr(err)
	}
	out := make([]*domain.Application, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *ApplicationRepo) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
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

func (r *ApplicationRepo) SetPaid(ctx context.Context, email, scholarshipID, transactionID string) (domain.UpdateResult, error) {
	set := bson.M{"paymentStatus": string(domain.PaymentPaid)}
	if transactionID != "" {
		set["transactionId"] = transactionID
	}
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"userEmail": email, "scholarshipId": scholarshipID},
		bson.M{"$set": set},
	)
	if err != nil {
		return domain.UpdateResult{}, storeErr(err)
	}
	return domain.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}
