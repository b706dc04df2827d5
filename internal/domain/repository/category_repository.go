package repository

import (
	"context"

	"complab/internal/domain/entity"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Category, error)
	ListAll(ctx context.Context) ([]*entity.Category, error)
	ListRoots(ctx context.Context) ([]*entity.Category, error)
	ListChildren(ctx context.Context, parentID string) ([]*entity.Category, error)
	ListByActive(ctx context.Context, isActive bool) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id string) error
}
