package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"complab/internal/domain/entity"
	"complab/internal/domain/repository"
	"complab/pkg/errors"
)

// CheckoutConfig carries the pricing knobs applied at order creation.
type CheckoutConfig struct {
	FreeShippingThreshold int64
	FlatShippingCost      int64
}

type OrderUseCase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	addressRepo repository.AddressRepository
	userRepo    repository.UserRepository
	promoRepo   repository.PromoCodeRepository
	checkout    CheckoutConfig
	now         func() time.Time
}

func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	addressRepo repository.AddressRepository,
	userRepo repository.UserRepository,
	promoRepo repository.PromoCodeRepository,
	checkout CheckoutConfig,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		addressRepo: addressRepo,
		userRepo:    userRepo,
		promoRepo:   promoRepo,
		checkout:    checkout,
		now:         time.Now,
	}
}

type OrderItemInput struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type CreateOrderInput struct {
	Items             []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	ShippingAddressID string           `json:"shippingAddressId" validate:"required"`
	PaymentMethod     string           `json:"paymentMethod" validate:"required,oneof=card cash online"`
	PromoCode         string           `json:"promoCode,omitempty"`
	Notes             string           `json:"notes,omitempty"`
}

type PromoValidation struct {
	Valid        bool                `json:"valid"`
	Discount     int64               `json:"discount"`
	DiscountType entity.DiscountType `json:"discountType"`
	Message      string              `json:"message,omitempty"`
}

// CreateOrder builds an order from live catalog data: each item records a
// snapshot of the product at checkout time, so later catalog edits leave the
// order untouched. Totals are computed server-side; client-sent prices are
// never trusted.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, userID string, input CreateOrderInput) (*entity.Order, error) {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.BadRequest("Unknown user", err)
		}
		return nil, err
	}

	address, err := uc.addressRepo.GetByID(ctx, input.ShippingAddressID)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.BadRequest("Unknown shipping address", err)
		}
		return nil, err
	}
	if address.UserID != userID {
		return nil, errors.BadRequest("Shipping address belongs to another user", nil)
	}

	var (
		items    []entity.OrderItem
		subtotal int64
	)
	for _, in := range input.Items {
		product, err := uc.productRepo.GetByID(ctx, in.ProductID)
		if err != nil {
			if errors.IsNotFound(err) {
				return nil, errors.BadRequest(fmt.Sprintf("Product %s not found", in.ProductID), err)
			}
			return nil, err
		}
		if !product.InStock || product.StockQuantity < in.Quantity {
			return nil, errors.BadRequest(fmt.Sprintf("Product %s is out of stock", product.Name), nil)
		}
		items = append(items, entity.OrderItem{
			ProductID: product.ID,
			Product:   *product,
			Quantity:  in.Quantity,
			Price:     product.Price,
		})
		subtotal += product.Price * int64(in.Quantity)
	}

	shippingCost := uc.checkout.FlatShippingCost
	if subtotal >= uc.checkout.FreeShippingThreshold {
		shippingCost = 0
	}

	var (
		discount  int64
		promoCode string
	)
	if input.PromoCode != "" {
		promo, err := uc.lookupPromo(ctx, input.PromoCode)
		if err != nil {
			return nil, err
		}
		if promo == nil {
			return nil, errors.BadRequest("Invalid promo code", nil)
		}
		discount = applyDiscount(promo, subtotal)
		promoCode = promo.Code
	}

	now := uc.now()
	order := &entity.Order{
		ID:          uuid.New().String(),
		OrderNumber: generateOrderNumber(now),
		UserID:      userID,
		Items:       items,
		Status:      entity.OrderStatusPending,
		StatusHistory: []entity.OrderStatusHistory{
			{Status: entity.OrderStatusPending, Timestamp: now},
		},
		ShippingAddress: *address,
		PaymentMethod:   entity.PaymentMethod(input.PaymentMethod),
		PaymentStatus:   entity.PaymentStatusPending,
		Subtotal:        subtotal,
		ShippingCost:    shippingCost,
		Discount:        discount,
		Total:           subtotal + shippingCost - discount,
		PromoCode:       promoCode,
		Notes:           input.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (uc *OrderUseCase) ListOrders(ctx context.Context, userID string, status entity.OrderStatus, page, limit int) (*repository.OrderPage, error) {
	if status != "" && !status.Valid() {
		return nil, errors.BadRequest("Invalid order status", nil)
	}
	return uc.orderRepo.ListByUser(ctx, userID, status, page, limit)
}

func (uc *OrderUseCase) ListAllOrders(ctx context.Context, userID string) ([]*entity.Order, error) {
	return uc.orderRepo.ListAllByUser(ctx, userID)
}

func (uc *OrderUseCase) GetOrderByID(ctx context.Context, id string) (*entity.Order, error) {
	return uc.orderRepo.GetByID(ctx, id)
}

func (uc *OrderUseCase) GetOrderByNumber(ctx context.Context, orderNumber string) (*entity.Order, error) {
	return uc.orderRepo.GetByNumber(ctx, orderNumber)
}

// SetStatus advances an order's status, appending one history entry.
// Terminal orders (delivered, cancelled, returned) admit no further
// transitions.
func (uc *OrderUseCase) SetStatus(ctx context.Context, orderID string, status entity.OrderStatus, comment string) (*entity.Order, error) {
	if !status.Valid() {
		return nil, errors.BadRequest("Invalid order status", nil)
	}

	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status.Terminal() {
		return nil, errors.Conflict(fmt.Sprintf("Order is already %s", order.Status), nil)
	}

	now := uc.now()
	order.Status = status
	order.StatusHistory = append(order.StatusHistory, entity.OrderStatusHistory{
		Status:    status,
		Timestamp: now,
		Comment:   comment,
	})
	order.UpdatedAt = now

	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// ValidatePromoCode checks a code case-insensitively. An unknown or inactive
// code is a valid negative answer, not an error.
func (uc *OrderUseCase) ValidatePromoCode(ctx context.Context, code string) (*PromoValidation, error) {
	promo, err := uc.lookupPromo(ctx, code)
	if err != nil {
		return nil, err
	}
	if promo == nil {
		return &PromoValidation{
			Valid:        false,
			DiscountType: entity.DiscountTypeFixed,
			Message:      "Промокод недействителен",
		}, nil
	}

	message := fmt.Sprintf("Скидка %d₽ применена!", promo.Discount)
	if promo.DiscountType == entity.DiscountTypePercentage {
		message = fmt.Sprintf("Скидка %d%% применена!", promo.Discount)
	}
	return &PromoValidation{
		Valid:        true,
		Discount:     promo.Discount,
		DiscountType: promo.DiscountType,
		Message:      message,
	}, nil
}

func (uc *OrderUseCase) lookupPromo(ctx context.Context, code string) (*entity.PromoCode, error) {
	promo, err := uc.promoRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if !promo.IsActive {
		return nil, nil
	}
	return promo, nil
}

// applyDiscount computes the discount amount for a subtotal. A fixed
// discount is clamped to the subtotal so the total never drops below the
// shipping cost.
func applyDiscount(promo *entity.PromoCode, subtotal int64) int64 {
	var discount int64
	switch promo.DiscountType {
	case entity.DiscountTypePercentage:
		discount = subtotal * promo.Discount / 100
	case entity.DiscountTypeFixed:
		discount = promo.Discount
	}
	if discount > subtotal {
		discount = subtotal
	}
	return discount
}

func generateOrderNumber(now time.Time) string {
	return fmt.Sprintf("CL-%d-%06d", now.Year(), now.UnixMilli()%1_000_000)
}
