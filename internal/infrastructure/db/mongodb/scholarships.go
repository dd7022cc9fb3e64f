package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/elevatescholar/scholarship-api/internal/domain"
)

type ScholarshipRepo struct {
	coll *mongo.Collection
}

func (r *ScholarshipRepo) Insert(ctx context.Context, s *domain.Scholarship) error {
	doc, err := toScholarshipDoc(s)
	if err != nil {
		return err
	}
	_, err = r.coll.InsertOne(ctx, doc)
	return storeErr(err)
}

func (r *ScholarshipRepo) GetByID(ctx context.Context, id string) (*domain.Scholarship, error) {
	filter, ok := byID(id)
	if !ok {
		return nil, domain.ErrScholarshipNotFound()
	}
	var doc scholarshipDoc
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrScholarshipNotFound()
	}
	if err != nil {
		return nil, storeErr(err)
	}
	return doc.toDomain(), nil
}

func (r *ScholarshipRepo) List(ctx context.Context, query string, limit int) ([]*domain.Scholarship, error) {
	filter := containsAny(query, "universityName", "scholarshipName", "degree")
	cur, err := r.coll.Find(ctx, filter, newestFirst("createdAt", limit))
	if err != nil {
		return nil, storeErr(err)
	}
	var docs []scholarshipDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, storeErr(err)
	}
	out := make([]*domain.Scholarship, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *ScholarshipRepo) UpdateFields(ctx context.Context, s *domain.Scholarship) (domain.UpdateResult, error) {
	filter, ok := byID(s.ID)
	if !ok {
		return domain.UpdateResult{}, nil
	}
	set := bson.M{
		"universityName":      s.UniversityName,
		"scholarshipName":     s.ScholarshipName,
		"degree":              s.Degree,
		"universityCountry":   s.UniversityCountry,
		"universityCity":      s.UniversityCity,
		"subjectCategory":     s.SubjectCategory,
		"scholarshipCategory": s.ScholarshipCategory,
		"tuitionFees":         s.TuitionFees,
		"applicationFees":     s.ApplicationFees,
		"serviceCharge":       s.ServiceCharge,
		"updatedAt":           s.UpdatedAt,
	}
	if s.Deadline != nil {
		set["deadline"] = *s.Deadline
	}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return domain.UpdateResult{}, storeErr(err)
	}
	return domain.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (r *ScholarshipRepo) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
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

func (r *ScholarshipRepo) SetPaid(ctx context.Context, id string, payAt time.Time) (domain.UpdateResult, error) {
	filter, ok := byID(id)
	if !ok {
		return domain.UpdateResult{}, nil
	}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{
		"paymentStatus": string(domain.PaymentPaid),
		"payAt":         payAt.UTC(),
	}})
	if err != nil {
		return domain.UpdateResult{}, storeErr(err)
	}
	return domain.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}
