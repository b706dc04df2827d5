package repository

import (
	"context"

	"complab/internal/domain/entity"
)

type OrderPage struct {
	Items      []*entity.Order
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	GetByNumber(ctx context.Context, orderNumber string) (*entity.Order, error)
	ListByUser(ctx context.Context, userID string, status entity.OrderStatus, page, limit int) (*OrderPage, error)
	ListAllByUser(ctx context.Context, userID string) ([]*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
}

type PromoCodeRepository interface {
	// GetByCode looks the code up case-insensitively.
	GetByCode(ctx context.Context, code string) (*entity.PromoCode, error)
	Create(ctx context.Context, promo *entity.PromoCode) error
}
