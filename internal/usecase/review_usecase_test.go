package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"complab/internal/adapter/repository"
	"complab/internal/domain/entity"
	"complab/pkg/errors"
)

type reviewFixture struct {
	uc       *ReviewUseCase
	products *repository.MemoryProductRepository
	reviews  *repository.MemoryReviewRepository
}

func newReviewFixture(t *testing.T) *reviewFixture {
	t.Helper()
	ctx := context.Background()

	users := repository.NewMemoryUserRepository()
	require.NoError(t, users.Create(ctx, &entity.User{ID: "user-1", Email: "ivan@example.com", FirstName: "Иван", LastName: "Петров"}))

	reviews := repository.NewMemoryReviewRepository()
	products := repository.NewMemoryProductRepository()
	products.AttachReviews(reviews)
	require.NoError(t, products.Create(ctx, &entity.Product{ID: "p-1", Name: "GPU", Slug: "gpu", Price: 5000, InStock: true}))

	uc := NewReviewUseCase(reviews, products, users)
	uc.now = func() time.Time { return time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC) }
	return &reviewFixture{uc: uc, products: products, reviews: reviews}
}

func addReview(t *testing.T, f *reviewFixture, rating int) {
	t.Helper()
	_, err := f.uc.AddReview(context.Background(), "user-1", AddReviewInput{
		ProductID: "p-1",
		Rating:    rating,
		Title:     "Отличный товар",
		Content:   "Работает быстро и тихо",
	})
	require.NoError(t, err)
}

func TestAddReviewRecomputesProductAggregate(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()

	for _, rating := range []int{5, 4, 4} {
		addReview(t, f, rating)
	}

	product, err := f.products.GetByID(ctx, "p-1")
	require.NoError(t, err)
	assert.InDelta(t, 4.3, product.Rating, 0.0001, "mean of 5,4,4 rounded to one decimal")
	assert.Equal(t, 3, product.ReviewsCount)
}

func TestAddReviewValidation(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()

	_, err := f.uc.AddReview(ctx, "user-1", AddReviewInput{ProductID: "p-1", Rating: 6, Title: "x", Content: "long enough text"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = f.uc.AddReview(ctx, "user-1", AddReviewInput{ProductID: "p-1", Rating: 4, Title: "  ", Content: "long enough text"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = f.uc.AddReview(ctx, "user-1", AddReviewInput{ProductID: "p-1", Rating: 4, Title: "ok", Content: "short"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = f.uc.AddReview(ctx, "user-1", AddReviewInput{ProductID: "missing", Rating: 4, Title: "ok", Content: "long enough text"})
	assert.True(t, errors.IsNotFound(err))
}

func TestGetStatsDistribution(t *testing.T) {
	f := newReviewFixture(t)

	for _, rating := range []int{5, 5, 4, 2} {
		addReview(t, f, rating)
	}

	stats, err := f.uc.GetStats(context.Background(), "p-1")
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalReviews)
	assert.InDelta(t, 4.0, stats.AverageRating, 0.0001)
	assert.Equal(t, map[int]int{1: 0, 2: 1, 3: 0, 4: 1, 5: 2}, stats.RatingDistribution)
}

func TestGetStatsWithoutReviewsIsZeros(t *testing.T) {
	f := newReviewFixture(t)

	stats, err := f.uc.GetStats(context.Background(), "p-1")
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalReviews)
	assert.Zero(t, stats.AverageRating)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}, stats.RatingDistribution)
}

func TestMarkHelpful(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()

	review, err := f.uc.AddReview(ctx, "user-1", AddReviewInput{
		ProductID: "p-1", Rating: 5, Title: "ok", Content: "long enough text",
	})
	require.NoError(t, err)

	require.NoError(t, f.uc.MarkHelpful(ctx, review.ID))
	require.NoError(t, f.uc.MarkHelpful(ctx, review.ID))

	stored, err := f.reviews.GetByID(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.HelpfulCount)

	err = f.uc.MarkHelpful(ctx, "missing")
	assert.True(t, errors.IsNotFound(err))
}

func TestListReviewsSorting(t *testing.T) {
	f := newReviewFixture(t)
	ctx := context.Background()

	for _, rating := range []int{3, 5, 4} {
		addReview(t, f, rating)
	}

	page, err := f.uc.ListReviews(ctx, "p-1", entity.ReviewSortRating, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, 5, page.Items[0].Rating)
	assert.Equal(t, 3, page.Items[2].Rating)

	_, err = f.uc.ListReviews(ctx, "p-1", "bogus", 1, 10)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}
