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

func newProductHandlerFixture(t *testing.T) (*echo.Echo, *ProductHandler) {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	products := repository.NewMemoryProductRepository()
	for i, p := range []*entity.Product{
		{ID: "p-1", Name: "Alpha", Slug: "alpha", Brand: "ASUS", CategorySlug: "laptops", Price: 1000, InStock: true, IsFeatured: true},
		{ID: "p-2", Name: "Beta", Slug: "beta", Brand: "Apple", CategorySlug: "laptops", Price: 2000, InStock: true},
		{ID: "p-3", Name: "Gamma", Slug: "gamma", Brand: "AMD", CategorySlug: "processors", Price: 500, InStock: true},
	} {
		p.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, products.Create(ctx, p))
	}

	e := echo.New()
	h := NewProductHandler(usecase.NewProductUseCase(products, repository.NewMemoryCategoryRepository()))
	return e, h
}

func TestListProductsFiltered(t *testing.T) {
	e, h := newProductHandlerFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/products?categorySlug=laptops&sortBy=price&sortOrder=desc", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.ListProducts(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Products   []entity.Product `json:"products"`
		Total      int64            `json:"total"`
		TotalPages int              `json:"totalPages"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Products, 2)
	assert.Equal(t, "beta", body.Products[0].Slug)
	assert.Equal(t, int64(2), body.Total)
	assert.Equal(t, 1, body.TotalPages)
}

func TestListProductsRejectsUnknownSortField(t *testing.T) {
	e, h := newProductHandlerFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/products?sortBy=popularity", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.ListProducts(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListProductsFeaturedShelf(t *testing.T) {
	e, h := newProductHandlerFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/products?featured=true", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.ListProducts(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Products []entity.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Products, 1)
	assert.Equal(t, "alpha", body.Products[0].Slug)
}

func TestGetProductBySlugNotFound(t *testing.T) {
	e, h := newProductHandlerFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/products/slug/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("slug")
	c.SetParamValues("missing")

	require.NoError(t, h.GetProductBySlug(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetProductRelatedReturnsOnlyRelatedList(t *testing.T) {
	e, h := newProductHandlerFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/products/p-1?related=true", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("p-1")

	require.NoError(t, h.GetProduct(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Contains(t, body, "products")
	assert.NotContains(t, body, "product")
	assert.NotContains(t, body, "related")

	var related []entity.Product
	require.NoError(t, json.Unmarshal(body["products"], &related))
	require.Len(t, related, 1)
	assert.Equal(t, "beta", related[0].Slug)
}

func TestListProductsCards(t *testing.T) {
	e, h := newProductHandlerFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/products?cards=true", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.ListProducts(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Products []entity.ProductCard `json:"products"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Products, 1)
	assert.Equal(t, "alpha", body.Products[0].Slug)
	assert.Equal(t, "/placeholder-product.jpg", body.Products[0].Image)
}
