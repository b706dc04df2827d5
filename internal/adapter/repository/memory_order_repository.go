package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"complab/internal/domain/entity"
	"complab/internal/domain/repository"
	"complab/pkg/errors"
	"complab/pkg/utils"
)

// MemoryOrderRepository is the in-memory test double for orders.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []*entity.Order
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{}
}

func (r *MemoryOrderRepository) Create(_ context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	now := time.Now()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now
	for _, o := range r.orders {
		if o.OrderNumber == order.OrderNumber {
			return errors.Conflict("Order already exists", nil)
		}
	}
	for i := range order.Items {
		if order.Items[i].ID == "" {
			order.Items[i].ID = uuid.NewString()
		}
		order.Items[i].OrderID = order.ID
	}
	clone := *order
	r.orders = append(r.orders, &clone)
	return nil
}

func (r *MemoryOrderRepository) GetByID(_ context.Context, id string) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.ID == id {
			clone := *o
			return &clone, nil
		}
	}
	return nil, errors.NotFound("Order", nil)
}

func (r *MemoryOrderRepository) GetByNumber(_ context.Context, orderNumber string) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.orders {
		if o.OrderNumber == orderNumber {
			clone := *o
			return &clone, nil
		}
	}
	return nil, errors.NotFound("Order", nil)
}

func (r *MemoryOrderRepository) ListByUser(_ context.Context, userID string, status entity.OrderStatus, page, limit int) (*repository.OrderPage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*entity.Order
	for _, o := range r.orders {
		if o.UserID == userID && (status == "" || o.Status == status) {
			clone := *o
			matched = append(matched, &clone)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := (page - 1) * limit
	end := start + limit
	if start > len(matched) {
		start = len(matched)
	}
	if end > len(matched) {
		end = len(matched)
	}

	return &repository.OrderPage{
		Items:      matched[start:end],
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: utils.TotalPages(total, limit),
	}, nil
}

func (r *MemoryOrderRepository) ListAllByUser(_ context.Context, userID string) ([]*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*entity.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			clone := *o
			result = append(result, &clone)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *MemoryOrderRepository) Update(_ context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, o := range r.orders {
		if o.ID == order.ID {
			clone := *order
			clone.CreatedAt = o.CreatedAt
			clone.UpdatedAt = time.Now()
			r.orders[i] = &clone
			order.UpdatedAt = clone.UpdatedAt
			return nil
		}
	}
	return errors.NotFound("Order", nil)
}

// MemoryPromoCodeRepository is the in-memory test double for promo codes.
type MemoryPromoCodeRepository struct {
	mu     sync.RWMutex
	promos map[string]*entity.PromoCode
}

func NewMemoryPromoCodeRepository() *MemoryPromoCodeRepository {
	return &MemoryPromoCodeRepository{promos: map[string]*entity.PromoCode{}}
}

func (r *MemoryPromoCodeRepository) GetByCode(_ context.Context, code string) (*entity.PromoCode, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	promo, ok := r.promos[strings.ToUpper(code)]
	if !ok {
		return nil, errors.NotFound("Promo code", nil)
	}
	clone := *promo
	return &clone, nil
}

func (r *MemoryPromoCodeRepository) Create(_ context.Context, promo *entity.PromoCode) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := strings.ToUpper(promo.Code)
	if _, ok := r.promos[key]; ok {
		return errors.Conflict("Promo code already exists", nil)
	}
	clone := *promo
	clone.Code = key
	r.promos[key] = &clone
	return nil
}
