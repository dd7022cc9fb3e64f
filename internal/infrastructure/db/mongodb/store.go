package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/elevatescholar/scholarship-api/internal/domain"
)

const (
	collScholarships = "scholarships"
	collUsers        = "users"
	collReviews      = "reviews"
	collApplications = "applications"
)

type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

type Options struct {
	URI         string
	Database    string
	MaxPoolSize uint64
}

// Connect dials, pings and ensures indexes before returning.
func Connect(ctx context.Context, o Options) (*Store, error) {
	if o.URI == "" {
		return nil, errors.New("mongodb: empty uri")
	}
	opts := options.Client().ApplyURI(o.URI)
	if o.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(o.MaxPoolSize)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongodb ping: %w", err)
	}

	s := &Store{client: client, db: client.Database(o.Database)}
	if err := s.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return s, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// EnsureIndexes is idempotent.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		collUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_email")},
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		},
		collApplications: {
			{
				Keys:    bson.D{{Key: "userEmail", Value: 1}, {Key: "scholarshipId", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_user_scholarship"),
			},
			{Keys: bson.D{{Key: "applicationDate", Value: -1}}},
		},
		collScholarships: {
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		},
		collReviews: {
			{Keys: bson.D{{Key: "scholarshipId", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "email", Value: 1}}},
		},
	}
	for coll, models := range indexes {
		if _, err := s.db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("mongodb indexes %s: %w", coll, err)
		}
	}
	return nil
}

func (s *Store) Scholarships() *ScholarshipRepo {
	return &ScholarshipRepo{coll: s.db.Collection(collScholarships)}
}

func (s *Store) Users() *UserRepo {
	return &UserRepo{coll: s.db.Collection(collUsers)}
}

func (s *Store) Reviews() *ReviewRepo {
	return &ReviewRepo{coll: s.db.Collection(collReviews)}
}

func (s *Store) Applications() *ApplicationRepo {
	return &ApplicationRepo{coll: s.db.Collection(collApplications)}
}

// storeErr maps driver errors onto the domain: duplicates become domain.ErrDuplicate,
// everything else is an internal store error.
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrDuplicate
	}
	return domain.ErrStore(err)
}
