package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mishasvintus/product_review_service/internal/domain"
	"github.com/mishasvintus/product_review_service/internal/service"
)

func users(ids ...string) []domain.User {
	out := make([]domain.User, len(ids))
	for i, id := range ids {
		out[i] = domain.User{UserID: id, Username: id, IsActive: true}
	}
	return out
}

func TestReviewerAssigner_SelectReviewers(t *testing.T) {
	assigner := service.NewReviewerAssigner()

	t.Run("empty candidates returns empty", func(t *testing.T) {
		got, err := assigner.SelectReviewers(nil, 2)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("zero count returns empty", func(t *testing.T) {
		got, err := assigner.SelectReviewers(users("u1"), 0)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("fewer candidates than count returns all", func(t *testing.T) {
		got, err := assigner.SelectReviewers(users("u1", "u2"), 2)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"u1", "u2"}, got)
	})

	t.Run("more candidates returns distinct subset", func(t *testing.T) {
		got, err := assigner.SelectReviewers(users("u1", "u2", "u3", "u4"), 2)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.NotEqual(t, got[0], got[1])
		assert.Subset(t, []string{"u1", "u2", "u3", "u4"}, got)
	})

	t.Run("single pick", func(t *testing.T) {
		got, err := assigner.SelectReviewers(users("u1", "u2", "u3"), 1)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestReviewerAssigner_Candidates(t *testing.T) {
	assigner := service.NewReviewerAssigner()

	all := users("author", "r1", "r2", "r3")
	all[3].IsActive = false

	got := assigner.Candidates(all, "author", "r1")
	require.Len(t, got, 1)
	assert.Equal(t, "r2", got[0].UserID)

	assert.Empty(t, assigner.Candidates(users("a"), "a"))
}
