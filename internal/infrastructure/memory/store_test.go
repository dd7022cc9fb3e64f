package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/elevatescholar/scholarship-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func seedScholarship(t *testing.T, r *ScholarshipRepo, uni, name, degree string, age time.Duration) *domain.Scholarship {
	t.Helper()
	sc := &domain.Scholarship{
		ID:              domain.NewID(),
		UniversityName:  uni,
		ScholarshipName: name,
		Degree:          degree,
		PaymentStatus:   domain.PaymentUnpaid,
		CreatedAt:       base.Add(-age),
	}
	require.NoError(t, r.Insert(context.Background(), sc))
	return sc
}

func TestScholarshipRepo_List_FilterIsCaseInsensitiveAcrossFields(t *testing.T) {
	repo := New().Scholarships()
	ctx := context.Background()

	older := seedScholarship(t, repo, "MIT", "Global Merit", "Masters", 2*time.Hour)
	newer := seedScholarship(t, repo, "Stanford", "mit alumni fund", "PhD", time.Hour)
	seedScholarship(t, repo, "Oxford", "Rhodes", "Bachelor", 0)

	got, err := repo.List(ctx, "mIt", domain.PageSize)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, newer.ID, got[0].ID)
	assert.Equal(t, older.ID, got[1].ID)
}

func TestScholarshipRepo_List_CapsAndOrders(t *testing.T) {
	repo := New().Scholarships()
	for i := 0; i < 15; i++ {
		seedScholarship(t, repo, fmt.Sprintf("Uni %d", i), "Award", "BSc", time.Duration(i)*time.Minute)
	}

	got, err := repo.List(context.Background(), "", domain.PageSize)
	require.NoError(t, err)
	require.Len(t, got, domain.PageSize)
	for i := 1; i < len(got); i++ {
		assert.True(t, !got[i].CreatedAt.After(got[i-1].CreatedAt), "results must be newest first")
	}
	assert.Equal(t, "Uni 0", got[0].UniversityName)
}

func TestScholarshipRepo_UpdateFieldsNeverTouchesPaymentStatus(t *testing.T) {
	repo := New().Scholarships()
	ctx := context.Background()
	sc := seedScholarship(t, repo, "MIT", "Merit", "MSc", 0)

	stale, err := repo.GetByID(ctx, sc.ID)
	require.NoError(t, err)

	_, err = repo.SetPaid(ctx, sc.ID, base)
	require.NoError(t, err)

	stale.Degree = "PhD"
	res, err := repo.UpdateFields(ctx, stale)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.MatchedCount)

	got, err := repo.GetByID(ctx, sc.ID)
	require.NoError(t, err)
	assert.Equal(t, "PhD", got.Degree)
	assert.Equal(t, domain.PaymentPaid, got.PaymentStatus)
	require.NotNil(t, got.PayAt)
}

func TestScholarshipRepo_MissingRecord(t *testing.T) {
	repo := New().Scholarships()
	ctx := context.Background()
	id := domain.NewID()

	_, err := repo.GetByID(ctx, id)
	assert.True(t, domain.Is(err, domain.ErrScholarshipNotFound().Code))

	del, err := repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.Zero(t, del.DeletedCount)

	upd, err := repo.SetPaid(ctx, id, base)
	require.NoError(t, err)
	assert.Zero(t, upd.MatchedCount)
}

func TestUserRepo_UniqueEmailAndFilter(t *testing.T) {
	repo := New().Users()
	ctx := context.Background()

	alice, err := domain.NewUser("alice@example.com", "Alice", "", base)
	require.NoError(t, err)
	require.NoError(t, repo.Insert(ctx, alice))
	assert.ErrorIs(t, repo.Insert(ctx, alice), domain.ErrDuplicate)

	bob, err := domain.NewUser("bob@uni.edu", "Bobby", "", base.Add(time.Minute))
	require.NoError(t, err)
	require.NoError(t, repo.Insert(ctx, bob))

	got, err := repo.List(ctx, "UNI.EDU", domain.PageSize)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "bob@uni.edu", got[0].Email)

	got, err = repo.List(ctx, "", domain.PageSize)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "bob@uni.edu", got[0].Email)
}

func TestUserRepo_SetRoleReportsModified(t *testing.T) {
	repo := New().Users()
	ctx := context.Background()
	u, err := domain.NewUser("carol@example.com", "Carol", "", base)
	require.NoError(t, err)
	require.NoError(t, repo.Insert(ctx, u))

	res, err := repo.SetRole(ctx, u.Email, domain.RoleStudent, base)
	require.NoError(t, err)
	assert.Equal(t, domain.UpdateResult{MatchedCount: 1, ModifiedCount: 0}, res)

	res, err = repo.SetRole(ctx, u.Email, domain.RoleAdmin, base)
	require.NoError(t, err)
	assert.Equal(t, domain.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, res)
}

func TestReviewRepo_ListFilters(t *testing.T) {
	repo := New().Reviews()
	ctx := context.Background()
	sid := domain.NewID()

	r1, err := domain.NewReview("a@example.com", "A", "", sid, 5, "great", base)
	require.NoError(t, err)
	r2, err := domain.NewReview("b@example.com", "B", "", sid, 3, "ok", base.Add(time.Minute))
	require.NoError(t, err)
	r3, err := domain.NewReview("a@example.com", "A", "", domain.NewID(), 4, "fine", base.Add(2*time.Minute))
	require.NoError(t, err)
	for _, r := range []*domain.Review{r1, r2, r3} {
		require.NoError(t, repo.Insert(ctx, r))
	}

	all, err := repo.List(ctx, domain.ReviewFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, r3.ID, all[0].ID)

	byEmail, err := repo.List(ctx, domain.ReviewFilter{Email: "a@example.com"})
	require.NoError(t, err)
	assert.Len(t, byEmail, 2)

	both, err := repo.List(ctx, domain.ReviewFilter{Email: "a@example.com", ScholarshipID: sid})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, r1.ID, both[0].ID)
}

func TestApplicationRepo_UniquePairAndSetPaid(t *testing.T) {
	repo := New().Applications()
	ctx := context.Background()
	sid := domain.NewID()

	a, err := domain.NewApplication("s@example.com", domain.ApplicationInput{ScholarshipID: sid}, base)
	require.NoError(t, err)
	require.NoError(t, repo.Insert(ctx, a))

	dup, err := domain.NewApplication("s@example.com", domain.ApplicationInput{ScholarshipID: sid}, base)
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Insert(ctx, dup), domain.ErrDuplicate)

	res, err := repo.SetPaid(ctx, "s@example.com", sid, "pi_123")
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.ModifiedCount)

	res, err = repo.SetPaid(ctx, "s@example.com", sid, "pi_123")
	require.NoError(t, err)
	assert.Equal(t, domain.UpdateResult{MatchedCount: 1, ModifiedCount: 0}, res)

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, got.PaymentStatus)
	assert.Equal(t, "pi_123", got.TransactionID)
}
