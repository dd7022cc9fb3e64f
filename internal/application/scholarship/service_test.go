package scholarship

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/elevatescholar/scholarship-api/internal/domain"
	"github.com/elevatescholar/scholarship-api/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mocks & Helpers ---

type fakeClock struct{ t time.Time }

func (c fakeClock) Now() time.Time { return c.t }

type jsonCache struct {
	store   map[string][]byte
	getErr  error
	deleted []string
}

func newJSONCache() *jsonCache { return &jsonCache{store: map[string][]byte{}} }

func (c *jsonCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	if c.getErr != nil {
		return false, c.getErr
	}
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dest)
}

func (c *jsonCache) Set(ctx context.Context, key string, val any, ttl time.Duration) error {
	b, err := json.Marshal(val)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}

func (c *jsonCache) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.store, k)
		c.deleted = append(c.deleted, k)
	}
	return nil
}

func strp(s string) *string   { return &s }
func f64p(f float64) *float64 { return &f }
func now() time.Time          { return time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC) }

func newSvc(t *testing.T) (*Service, *memory.ScholarshipRepo, *jsonCache) {
	t.Helper()
	repo := memory.New().Scholarships()
	cache := newJSONCache()
	return New(repo, fakeClock{t: now()}, cache, time.Minute), repo, cache
}

func validFields() domain.ScholarshipFields {
	return domain.ScholarshipFields{
		UniversityName:  strp("MIT"),
		ScholarshipName: strp("Merit Award"),
		Degree:          strp("Masters"),
		ApplicationFees: f64p(25.5),
	}
}

// --- Test Cases ---

func TestService_Create(t *testing.T) {
	svc, repo, _ := newSvc(t)
	var audited []string
	svc.WithAudit(func(ctx context.Context, action string, fields map[string]string) {
		audited = append(audited, action)
	})

	res, err := svc.Create(context.Background(), CreateCmd{ActorEmail: "Admin@Example.com", Fields: validFields()})
	require.NoError(t, err)
	require.True(t, domain.IsValidID(res.InsertedID))

	sc, err := repo.GetByID(context.Background(), res.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", sc.CreatedBy)
	assert.Equal(t, domain.PaymentUnpaid, sc.PaymentStatus)
	assert.Equal(t, now(), sc.CreatedAt)
	assert.Equal(t, []string{"scholarship.create"}, audited)
}

func TestService_Create_MissingName(t *testing.T) {
	svc, _, _ := newSvc(t)
	f := validFields()
	f.ScholarshipName = nil

	_, err := svc.Create(context.Background(), CreateCmd{ActorEmail: "admin@example.com", Fields: f})
	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestService_Get(t *testing.T) {
	svc, repo, cache := newSvc(t)
	ctx := context.Background()
	res, err := svc.Create(ctx, CreateCmd{ActorEmail: "admin@example.com", Fields: validFields()})
	require.NoError(t, err)

	t.Run("malformed_id_is_bad_request", func(t *testing.T) {
		_, err := svc.Get(ctx, "not-an-id")
		assert.True(t, domain.Is(err, "invalid_id"))
	})

	t.Run("missing_is_not_found", func(t *testing.T) {
		_, err := svc.Get(ctx, domain.NewID())
		assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	})

	t.Run("populates_cache", func(t *testing.T) {
		sc, err := svc.Get(ctx, res.InsertedID)
		require.NoError(t, err)
		assert.Equal(t, "MIT", sc.UniversityName)
		assert.Contains(t, cache.store, cacheKeyDetails(res.InsertedID))
	})

	t.Run("cache_hit_skips_repo", func(t *testing.T) {
		_, err := repo.Delete(ctx, res.InsertedID)
		require.NoError(t, err)
		sc, err := svc.Get(ctx, res.InsertedID)
		require.NoError(t, err)
		assert.Equal(t, res.InsertedID, sc.ID)
	})

	t.Run("cache_error_falls_back_to_repo", func(t *testing.T) {
		cache.getErr = errors.New("redis down")
		defer func() { cache.getErr = nil }()
		_, err := svc.Get(ctx, res.InsertedID)
		assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	})
}

func TestService_Update(t *testing.T) {
	svc, repo, cache := newSvc(t)
	ctx := context.Background()
	res, err := svc.Create(ctx, CreateCmd{ActorEmail: "admin@example.com", Fields: validFields()})
	require.NoError(t, err)
	_, err = svc.Get(ctx, res.InsertedID)
	require.NoError(t, err)

	up, err := svc.Update(ctx, UpdateCmd{
		ActorEmail:    "admin@example.com",
		ScholarshipID: res.InsertedID,
		Fields:        domain.ScholarshipFields{Degree: strp("PhD")},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), up.MatchedCount)

	sc, err := repo.GetByID(ctx, res.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, "PhD", sc.Degree)
	assert.Equal(t, "Merit Award", sc.ScholarshipName)
	assert.NotContains(t, cache.store, cacheKeyDetails(res.InsertedID))

	_, err = svc.Update(ctx, UpdateCmd{ScholarshipID: domain.NewID(), Fields: domain.ScholarshipFields{Degree: strp("PhD")}})
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))

	_, err = svc.Update(ctx, UpdateCmd{ScholarshipID: res.InsertedID, Fields: domain.ScholarshipFields{TuitionFees: f64p(-1)}})
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestService_Delete(t *testing.T) {
	svc, _, _ := newSvc(t)
	ctx := context.Background()
	res, err := svc.Create(ctx, CreateCmd{ActorEmail: "admin@example.com", Fields: validFields()})
	require.NoError(t, err)

	del, err := svc.Delete(ctx, "admin@example.com", res.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), del.DeletedCount)

	_, err = svc.Delete(ctx, "admin@example.com", res.InsertedID)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))

	_, err = svc.Delete(ctx, "admin@example.com", "")
	assert.True(t, domain.Is(err, "invalid_id"))
}

func TestService_MarkPaid_IsRepeatable(t *testing.T) {
	svc, repo, _ := newSvc(t)
	ctx := context.Background()
	res, err := svc.Create(ctx, CreateCmd{ActorEmail: "admin@example.com", Fields: validFields()})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err := svc.MarkPaid(ctx, res.InsertedID)
		require.NoError(t, err)
	}
	sc, err := repo.GetByID(ctx, res.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, sc.PaymentStatus)
	require.NotNil(t, sc.PayAt)
	assert.Equal(t, now(), *sc.PayAt)

	_, err = svc.MarkPaid(ctx, domain.NewID())
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestService_List_NeverNil(t *testing.T) {
	svc, _, _ := newSvc(t)
	items, err := svc.List(context.Background(), "nothing")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
