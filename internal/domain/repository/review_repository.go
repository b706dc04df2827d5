package repository

import (
	"context"

	"complab/internal/domain/entity"
)

type ReviewPage struct {
	Items      []*entity.Review
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	GetByID(ctx context.Context, id string) (*entity.Review, error)
	ListByProduct(ctx context.Context, productID string, sort entity.ReviewSort, page, limit int) (*ReviewPage, error)
	ListAllByProduct(ctx context.Context, productID string) ([]*entity.Review, error)
	Stats(ctx context.Context, productID string) (*entity.ReviewStats, error)
	// IncrementHelpful bumps helpfulCount atomically.
	IncrementHelpful(ctx context.Context, id string) error
}
