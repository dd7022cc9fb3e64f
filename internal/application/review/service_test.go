package review

import (
	"context"
	"testing"
	"time"

	"github.com/elevatescholar/scholarship-api/internal/domain"
	"github.com/elevatescholar/scholarship-api/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c fakeClock) Now() time.Time { return c.t }

type roleMap map[string]domain.Role

func (m roleMap) LookupRole(ctx context.Context, email string) (domain.Role, error) {
	r, ok := m[email]
	if !ok {
		return "", domain.ErrUserNotFound()
	}
	return r, nil
}

func setup(t *testing.T) (*Service, *memory.ReviewRepo) {
	t.Helper()
	repo := memory.New().Reviews()
	roles := roleMap{"admin@example.com": domain.RoleAdmin, "mod@example.com": domain.RoleModerator}
	return New(repo, roles, fakeClock{t: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)}), repo
}

func TestCreate_AuthorIsAlwaysPrincipal(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()

	res, err := svc.Create(ctx, CreateCmd{
		PrincipalEmail: "real@example.com",
		ReviewerName:   "Real",
		ScholarshipID:  domain.NewID(),
		Rating:         4,
		Comment:        "helpful",
	})
	require.NoError(t, err)

	r, err := repo.GetByID(ctx, res.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, "real@example.com", r.Email)
}

func TestCreate_Validation(t *testing.T) {
	svc, _ := setup(t)
	cases := []struct {
		name string
		cmd  CreateCmd
	}{
		{"bad_scholarship_id", CreateCmd{PrincipalEmail: "a@example.com", ScholarshipID: "123", Rating: 3}},
		{"rating_too_high", CreateCmd{PrincipalEmail: "a@example.com", ScholarshipID: domain.NewID(), Rating: 6}},
		{"rating_zero", CreateCmd{PrincipalEmail: "a@example.com", ScholarshipID: domain.NewID(), Rating: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.cmd)
			assert.Equal(t, domain.KindValidation, domain.KindOf(err))
		})
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, svc *Service) string {
		res, err := svc.Create(ctx, CreateCmd{PrincipalEmail: "author@example.com", ScholarshipID: domain.NewID(), Rating: 5})
		require.NoError(t, err)
		return res.InsertedID
	}

	t.Run("non_owner_forbidden_and_record_persists", func(t *testing.T) {
		svc, repo := setup(t)
		id := seed(t, svc)

		_, err := svc.Delete(ctx, "other@example.com", id)
		require.Error(t, err)
		assert.Equal(t, domain.KindForbidden, domain.KindOf(err))

		_, err = repo.GetByID(ctx, id)
		assert.NoError(t, err)
	})

	t.Run("moderator_is_not_admin", func(t *testing.T) {
		svc, _ := setup(t)
		id := seed(t, svc)
		_, err := svc.Delete(ctx, "mod@example.com", id)
		assert.Equal(t, domain.KindForbidden, domain.KindOf(err))
	})

	t.Run("owner_can_delete", func(t *testing.T) {
		svc, _ := setup(t)
		id := seed(t, svc)
		res, err := svc.Delete(ctx, "AUTHOR@example.com", id)
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.DeletedCount)
	})

	t.Run("admin_can_delete_and_is_audited", func(t *testing.T) {
		svc, _ := setup(t)
		var actions []string
		svc.WithAudit(func(ctx context.Context, action string, f map[string]string) { actions = append(actions, action) })
		id := seed(t, svc)

		_, err := svc.Delete(ctx, "admin@example.com", id)
		require.NoError(t, err)
		assert.Equal(t, []string{"review.delete_by_admin"}, actions)
	})

	t.Run("missing_is_not_found", func(t *testing.T) {
		svc, _ := setup(t)
		_, err := svc.Delete(ctx, "author@example.com", domain.NewID())
		assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
	})
}

func TestList_Filters(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()
	sid := domain.NewID()
	_, err := svc.Create(ctx, CreateCmd{PrincipalEmail: "a@example.com", ScholarshipID: sid, Rating: 5})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateCmd{PrincipalEmail: "b@example.com", ScholarshipID: sid, Rating: 2})
	require.NoError(t, err)

	all, err := svc.List(ctx, domain.ReviewFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := svc.List(ctx, domain.ReviewFilter{Email: "A@example.com"})
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	_, err = svc.List(ctx, domain.ReviewFilter{ScholarshipID: "zzz"})
	assert.True(t, domain.Is(err, "invalid_id"))
}
