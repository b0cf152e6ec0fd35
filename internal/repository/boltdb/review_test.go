package boltdb_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository/boltdb"
)

func newTestStore(t *testing.T) *boltdb.ReviewStore {
	t.Helper()
	dir := t.TempDir()
	s, err := boltdb.NewReviewStore(filepath.Join(dir, "reviews.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestReviewStore_ListEmpty(t *testing.T) {
	s := newTestStore(t)

	reviews, err := s.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)
}

func TestReviewStore_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	review := &domain.Review{
		Name:    "Meena",
		Rating:  5,
		Comment: "Roller was delivered on time.",
		Date:    "12/08/2026",
	}
	require.NoError(t, s.Prepend(ctx, review))

	reviews, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, *review, reviews[0])
	assert.Equal(t, int32(5), reviews[0].Rating)
	assert.NotEmpty(t, reviews[0].Date)
}

func TestReviewStore_NewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Prepend(ctx, &domain.Review{Name: "First", Rating: 3, Date: "01/08/2026"}))
	require.NoError(t, s.Prepend(ctx, &domain.Review{Name: "Second", Rating: 4, Date: "02/08/2026"}))
	require.NoError(t, s.Prepend(ctx, &domain.Review{Name: "Third", Rating: 5, Date: "03/08/2026"}))

	reviews, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, reviews, 3)
	assert.Equal(t, "Third", reviews[0].Name)
	assert.Equal(t, "Second", reviews[1].Name)
	assert.Equal(t, "First", reviews[2].Name)
}

func TestReviewStore_EarlierEntriesUntouched(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := &domain.Review{Name: "First", Rating: 2, Comment: "ok", Date: "01/08/2026"}
	require.NoError(t, s.Prepend(ctx, first))
	require.NoError(t, s.Prepend(ctx, &domain.Review{Name: "Second", Rating: 4, Date: "02/08/2026"}))

	reviews, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, *first, reviews[1])
}
