package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"complab/internal/domain/entity"
	"complab/internal/domain/repository"
	"complab/pkg/errors"
	"complab/pkg/utils"
)

type gormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &gormOrderRepository{db: db}
}

// Create persists the order and its items in one transaction; a failure
// leaves no partial write behind.
func (r *gormOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	now := time.Now()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now
	for i := range order.Items {
		if order.Items[i].ID == "" {
			order.Items[i].ID = uuid.NewString()
		}
		order.Items[i].OrderID = order.ID
	}

	if err := r.db.WithContext(ctx).Create(order).Error; err != nil {
		return wrapWrite("Order", err)
	}
	return nil
}

func (r *gormOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).Preload("Items").First(&order, "id = ?", id).Error
	if err != nil {
		return nil, wrapRead("Order", err)
	}
	return &order, nil
}

func (r *gormOrderRepository) GetByNumber(ctx context.Context, orderNumber string) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).Preload("Items").First(&order, "order_number = ?", orderNumber).Error
	if err != nil {
		return nil, wrapRead("Order", err)
	}
	return &order, nil
}

func (r *gormOrderRepository) ListByUser(ctx context.Context, userID string, status entity.OrderStatus, page, limit int) (*repository.OrderPage, error) {
	query := r.db.WithContext(ctx).Model(&entity.Order{}).Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, errors.Internal("Failed to count orders", err)
	}

	var orders []*entity.Order
	err := query.Preload("Items").
		Order("created_at DESC, id ASC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&orders).Error
	if err != nil {
		return nil, errors.Internal("Failed to list orders", err)
	}

	return &repository.OrderPage{
		Items:      orders,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: utils.TotalPages(total, limit),
	}, nil
}

func (r *gormOrderRepository) ListAllByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	var orders []*entity.Order
	err := r.db.WithContext(ctx).Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC, id ASC").
		Find(&orders).Error
	if err != nil {
		return nil, errors.Internal("Failed to list orders", err)
	}
	return orders, nil
}

func (r *gormOrderRepository) Update(ctx context.Context, order *entity.Order) error {
	order.UpdatedAt = time.Now()
	result := r.db.WithContext(ctx).Model(&entity.Order{ID: order.ID}).
		Select("status", "status_history", "payment_status", "tracking_number", "updated_at").
		Updates(order)
	if result.Error != nil {
		return wrapWrite("Order", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("Order", nil)
	}
	return nil
}

type gormPromoCodeRepository struct {
	db *gorm.DB
}

func NewGormPromoCodeRepository(db *gorm.DB) repository.PromoCodeRepository {
	return &gormPromoCodeRepository{db: db}
}

func (r *gormPromoCodeRepository) GetByCode(ctx context.Context, code string) (*entity.PromoCode, error) {
	var promo entity.PromoCode
	err := r.db.WithContext(ctx).First(&promo, "UPPER(code) = ?", strings.ToUpper(code)).Error
	if err != nil {
		return nil, wrapRead("Promo code", err)
	}
	return &promo, nil
}

func (r *gormPromoCodeRepository) Create(ctx context.Context, promo *entity.PromoCode) error {
	promo.Code = strings.ToUpper(promo.Code)
	if err := r.db.WithContext(ctx).Create(promo).Error; err != nil {
		return wrapWrite("Promo code", err)
	}
	return nil
}
