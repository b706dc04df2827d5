package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"complab/internal/adapter/api"
	"complab/internal/adapter/repository"
	"complab/internal/domain/entity"
	"complab/internal/usecase"
)

func newOrderHandlerFixture(t *testing.T) (*echo.Echo, *OrderHandler) {
	t.Helper()
	ctx := context.Background()

	users := repository.NewMemoryUserRepository()
	require.NoError(t, users.Create(ctx, &entity.User{ID: "user-1", Email: "ivan@example.com"}))

	addresses := repository.NewMemoryAddressRepository()
	require.NoError(t, addresses.Create(ctx, &entity.Address{ID: "addr-1", UserID: "user-1", City: "Москва"}))

	products := repository.NewMemoryProductRepository()
	require.NoError(t, products.Create(ctx, &entity.Product{ID: "p-1", Name: "GPU", Slug: "gpu", Price: 5000, InStock: true, StockQuantity: 10}))

	promos := repository.NewMemoryPromoCodeRepository()
	require.NoError(t, promos.Create(ctx, &entity.PromoCode{Code: "WINTER10", Discount: 10, DiscountType: entity.DiscountTypePercentage, IsActive: true}))

	uc := usecase.NewOrderUseCase(
		repository.NewMemoryOrderRepository(),
		products, addresses, users, promos,
		usecase.CheckoutConfig{FreeShippingThreshold: 10000, FlatShippingCost: 500},
	)

	e := echo.New()
	e.Validator = api.NewValidator()
	return e, NewOrderHandler(uc)
}

func TestValidatePromoCodeEndpoint(t *testing.T) {
	e, h := newOrderHandlerFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/promo/validate", strings.NewReader(`{"code":"winter10"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.ValidatePromoCode(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Valid        bool   `json:"valid"`
		Discount     int64  `json:"discount"`
		DiscountType string `json:"discountType"`
		Message      string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Valid)
	assert.Equal(t, int64(10), body.Discount)
	assert.Equal(t, "percentage", body.DiscountType)
	assert.NotEmpty(t, body.Message)
}

func TestValidatePromoCodeEndpointRequiresCode(t *testing.T) {
	e, h := newOrderHandlerFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/promo/validate", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.ValidatePromoCode(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Validation failed")
}

func TestCreateOrderEndpoint(t *testing.T) {
	e, h := newOrderHandlerFixture(t)

	payload := `{
		"userId": "user-1",
		"items": [{"productId": "p-1", "quantity": 2}],
		"shippingAddressId": "addr-1",
		"paymentMethod": "card"
	}`
	req := httptest.NewRequest(http.MethodPost, "/v1/orders", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.CreateOrder(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var order entity.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Equal(t, int64(10000), order.Subtotal)
	assert.Equal(t, int64(0), order.ShippingCost)
	assert.Equal(t, order.Subtotal, order.Total)
}

func TestCreateOrderEndpointRejectsBadPaymentMethod(t *testing.T) {
	e, h := newOrderHandlerFixture(t)

	payload := `{
		"userId": "user-1",
		"items": [{"productId": "p-1", "quantity": 1}],
		"shippingAddressId": "addr-1",
		"paymentMethod": "barter"
	}`
	req := httptest.NewRequest(http.MethodPost, "/v1/orders", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.CreateOrder(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListOrdersRequiresUserID(t *testing.T) {
	e, h := newOrderHandlerFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/orders", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.ListOrders(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
