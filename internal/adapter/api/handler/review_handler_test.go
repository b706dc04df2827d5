package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"complab/internal/adapter/repository"
	"complab/internal/domain/entity"
	"complab/internal/usecase"
)

func newReviewHandlerFixture(t *testing.T) (*echo.Echo, *ReviewHandler) {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	products := repository.NewMemoryProductRepository()
	require.NoError(t, products.Create(ctx, &entity.Product{
		ID: "p-1", Name: "Alpha", Slug: "alpha", Brand: "ASUS", CategorySlug: "laptops", Price: 1000, InStock: true,
	}))

	users := repository.NewMemoryUserRepository()
	require.NoError(t, users.Create(ctx, &entity.User{ID: "user-1", FirstName: "Иван", LastName: "Петров"}))

	reviews := repository.NewMemoryReviewRepository()
	for i, rev := range []*entity.Review{
		{ID: "r-1", ProductID: "p-1", UserID: "user-1", UserName: "Иван Петров", Rating: 5, Title: "Отлично", Content: "Очень доволен покупкой"},
		{ID: "r-2", ProductID: "p-1", UserID: "user-1", UserName: "Иван Петров", Rating: 4, Title: "Хорошо", Content: "Работает без нареканий"},
		{ID: "r-3", ProductID: "p-1", UserID: "user-1", UserName: "Иван Петров", Rating: 4, Title: "Неплохо", Content: "В целом всё устраивает"},
	} {
		rev.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, reviews.Create(ctx, rev))
	}

	e := echo.New()
	h := NewReviewHandler(usecase.NewReviewUseCase(reviews, products, users))
	return e, h
}

func TestListReviewsSimpleMode(t *testing.T) {
	e, h := newReviewHandlerFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/reviews?productId=p-1&simple=true", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.ListReviews(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Contains(t, body, "reviews")
	assert.NotContains(t, body, "total")
	assert.NotContains(t, body, "totalPages")

	var reviews []entity.Review
	require.NoError(t, json.Unmarshal(body["reviews"], &reviews))
	assert.Len(t, reviews, 3)
}

func TestListReviewsPaginatedIncludesStats(t *testing.T) {
	e, h := newReviewHandlerFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/reviews?productId=p-1", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.ListReviews(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Reviews []entity.Review     `json:"reviews"`
		Stats   *entity.ReviewStats `json:"stats"`
		Total   int64               `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Reviews, 3)
	assert.Equal(t, int64(3), body.Total)
	require.NotNil(t, body.Stats)
	assert.InDelta(t, 4.3, body.Stats.AverageRating, 0.001)
	assert.Equal(t, 3, body.Stats.TotalReviews)
	assert.Equal(t, 2, body.Stats.RatingDistribution[4])
}

func TestListReviewsRequiresProductID(t *testing.T) {
	e, h := newReviewHandlerFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/reviews", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.ListReviews(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
