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

type orderFixture struct {
	uc       *OrderUseCase
	products *repository.MemoryProductRepository
	now      time.Time
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	ctx := context.Background()

	users := repository.NewMemoryUserRepository()
	require.NoError(t, users.Create(ctx, &entity.User{ID: "user-1", Email: "ivan@example.com", FirstName: "Иван", LastName: "Петров"}))

	addresses := repository.NewMemoryAddressRepository()
	require.NoError(t, addresses.Create(ctx, &entity.Address{ID: "addr-1", UserID: "user-1", City: "Москва", IsDefault: true}))
	require.NoError(t, addresses.Create(ctx, &entity.Address{ID: "addr-other", UserID: "user-2", City: "Казань"}))

	products := repository.NewMemoryProductRepository()
	require.NoError(t, products.Create(ctx, &entity.Product{ID: "p-1", Name: "GPU", Slug: "gpu", Price: 5000, InStock: true, StockQuantity: 10}))
	require.NoError(t, products.Create(ctx, &entity.Product{ID: "p-2", Name: "Mouse", Slug: "mouse", Price: 999, InStock: true, StockQuantity: 3}))
	require.NoError(t, products.Create(ctx, &entity.Product{ID: "p-3", Name: "Rare", Slug: "rare", Price: 100, InStock: false, StockQuantity: 0}))

	promos := repository.NewMemoryPromoCodeRepository()
	require.NoError(t, promos.Create(ctx, &entity.PromoCode{Code: "WINTER10", Discount: 10, DiscountType: entity.DiscountTypePercentage, IsActive: true}))
	require.NoError(t, promos.Create(ctx, &entity.PromoCode{Code: "WELCOME500", Discount: 500, DiscountType: entity.DiscountTypeFixed, IsActive: true}))
	require.NoError(t, promos.Create(ctx, &entity.PromoCode{Code: "EXPIRED", Discount: 50, DiscountType: entity.DiscountTypePercentage, IsActive: false}))

	uc := NewOrderUseCase(
		repository.NewMemoryOrderRepository(),
		products,
		addresses,
		users,
		promos,
		CheckoutConfig{FreeShippingThreshold: 10000, FlatShippingCost: 500},
	)
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	return &orderFixture{uc: uc, products: products, now: now}
}

func TestCreateOrderTotalsInvariant(t *testing.T) {
	f := newOrderFixture(t)

	order, err := f.uc.CreateOrder(context.Background(), "user-1", CreateOrderInput{
		Items:             []OrderItemInput{{ProductID: "p-1", Quantity: 1}, {ProductID: "p-2", Quantity: 2}},
		ShippingAddressID: "addr-1",
		PaymentMethod:     "card",
		PromoCode:         "WINTER10",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(6998), order.Subtotal)
	assert.Equal(t, int64(500), order.ShippingCost)
	assert.Equal(t, int64(699), order.Discount)
	assert.Equal(t, order.Subtotal+order.ShippingCost-order.Discount, order.Total)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	require.Len(t, order.StatusHistory, 1)
	assert.Equal(t, entity.OrderStatusPending, order.StatusHistory[0].Status)
	assert.Regexp(t, `^CL-2024-\d{6}$`, order.OrderNumber)
}

func TestCreateOrderShippingBoundary(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	require.NoError(t, f.products.Create(ctx, &entity.Product{ID: "p-9999", Name: "A", Slug: "a", Price: 9999, InStock: true, StockQuantity: 5}))
	require.NoError(t, f.products.Create(ctx, &entity.Product{ID: "p-10000", Name: "B", Slug: "b", Price: 10000, InStock: true, StockQuantity: 5}))

	below, err := f.uc.CreateOrder(ctx, "user-1", CreateOrderInput{
		Items:             []OrderItemInput{{ProductID: "p-9999", Quantity: 1}},
		ShippingAddressID: "addr-1",
		PaymentMethod:     "cash",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(500), below.ShippingCost)

	at, err := f.uc.CreateOrder(ctx, "user-1", CreateOrderInput{
		Items:             []OrderItemInput{{ProductID: "p-10000", Quantity: 1}},
		ShippingAddressID: "addr-1",
		PaymentMethod:     "cash",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), at.ShippingCost, "threshold is inclusive")
}

func TestCreateOrderFixedDiscountClampedToSubtotal(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	require.NoError(t, f.products.Create(ctx, &entity.Product{ID: "p-cheap", Name: "Cable", Slug: "cable", Price: 300, InStock: true, StockQuantity: 5}))

	order, err := f.uc.CreateOrder(ctx, "user-1", CreateOrderInput{
		Items:             []OrderItemInput{{ProductID: "p-cheap", Quantity: 1}},
		ShippingAddressID: "addr-1",
		PaymentMethod:     "card",
		PromoCode:         "WELCOME500",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(300), order.Discount)
	assert.Equal(t, order.ShippingCost, order.Total, "total never drops below shipping")
}

func TestCreateOrderSnapshotsProduct(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order, err := f.uc.CreateOrder(ctx, "user-1", CreateOrderInput{
		Items:             []OrderItemInput{{ProductID: "p-1", Quantity: 1}},
		ShippingAddressID: "addr-1",
		PaymentMethod:     "card",
	})
	require.NoError(t, err)

	// Reprice the product after checkout.
	product, err := f.products.GetByID(ctx, "p-1")
	require.NoError(t, err)
	product.Price = 9000
	require.NoError(t, f.products.Update(ctx, product))

	fetched, err := f.uc.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), fetched.Items[0].Price)
	assert.Equal(t, int64(5000), fetched.Items[0].Product.Price)
	assert.Equal(t, int64(5000), fetched.Subtotal)
}

func TestCreateOrderRejections(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	_, err := f.uc.CreateOrder(ctx, "user-1", CreateOrderInput{
		Items:             []OrderItemInput{{ProductID: "p-3", Quantity: 1}},
		ShippingAddressID: "addr-1",
		PaymentMethod:     "card",
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"), "out of stock product")

	_, err = f.uc.CreateOrder(ctx, "user-1", CreateOrderInput{
		Items:             []OrderItemInput{{ProductID: "p-1", Quantity: 1}},
		ShippingAddressID: "addr-other",
		PaymentMethod:     "card",
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"), "address of another user")

	_, err = f.uc.CreateOrder(ctx, "user-1", CreateOrderInput{
		Items:             []OrderItemInput{{ProductID: "p-1", Quantity: 1}},
		ShippingAddressID: "addr-1",
		PaymentMethod:     "card",
		PromoCode:         "NOPE",
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"), "unknown promo code")
}

func TestSetStatusAppendsHistory(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order, err := f.uc.CreateOrder(ctx, "user-1", CreateOrderInput{
		Items:             []OrderItemInput{{ProductID: "p-1", Quantity: 1}},
		ShippingAddressID: "addr-1",
		PaymentMethod:     "card",
	})
	require.NoError(t, err)

	steps := []entity.OrderStatus{
		entity.OrderStatusConfirmed,
		entity.OrderStatusProcessing,
		entity.OrderStatusShipped,
	}
	for _, s := range steps {
		order, err = f.uc.SetStatus(ctx, order.ID, s, "")
		require.NoError(t, err)
	}

	assert.Equal(t, entity.OrderStatusShipped, order.Status)
	require.Len(t, order.StatusHistory, 1+len(steps))
	assert.Equal(t, order.Status, order.StatusHistory[len(order.StatusHistory)-1].Status)
}

func TestSetStatusRejectsTransitionsOutOfTerminalStates(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	order, err := f.uc.CreateOrder(ctx, "user-1", CreateOrderInput{
		Items:             []OrderItemInput{{ProductID: "p-1", Quantity: 1}},
		ShippingAddressID: "addr-1",
		PaymentMethod:     "card",
	})
	require.NoError(t, err)

	_, err = f.uc.SetStatus(ctx, order.ID, entity.OrderStatusCancelled, "changed my mind")
	require.NoError(t, err)

	_, err = f.uc.SetStatus(ctx, order.ID, entity.OrderStatusConfirmed, "")
	assert.True(t, errors.Is(err, "CONFLICT"))

	_, err = f.uc.SetStatus(ctx, order.ID, "teleported", "")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestValidatePromoCodeIsCaseInsensitive(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	lower, err := f.uc.ValidatePromoCode(ctx, "winter10")
	require.NoError(t, err)
	upper, err := f.uc.ValidatePromoCode(ctx, "WINTER10")
	require.NoError(t, err)

	assert.Equal(t, upper, lower)
	assert.True(t, lower.Valid)
	assert.Equal(t, int64(10), lower.Discount)
	assert.Equal(t, entity.DiscountTypePercentage, lower.DiscountType)
}

func TestValidatePromoCodeNegativeAnswers(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	unknown, err := f.uc.ValidatePromoCode(ctx, "NOPE")
	require.NoError(t, err)
	assert.False(t, unknown.Valid)
	assert.Equal(t, int64(0), unknown.Discount)
	assert.NotEmpty(t, unknown.Message)

	inactive, err := f.uc.ValidatePromoCode(ctx, "EXPIRED")
	require.NoError(t, err)
	assert.False(t, inactive.Valid)
}
