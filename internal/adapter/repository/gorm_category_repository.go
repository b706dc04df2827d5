package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"complab/internal/domain/entity"
	"complab/internal/domain/repository"
	"complab/pkg/errors"
)

type gormCategoryRepository struct {
	db *gorm.DB
}

func NewGormCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &gormCategoryRepository{db: db}
}

func (r *gormCategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return wrapWrite("Category", err)
	}
	return nil
}

func (r *gormCategoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	var category entity.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, wrapRead("Category", err)
	}
	return &category, nil
}

func (r *gormCategoryRepository) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	var category entity.Category
	if err := r.db.WithContext(ctx).First(&category, "slug = ?", slug).Error; err != nil {
		return nil, wrapRead("Category", err)
	}
	return &category, nil
}

func (r *gormCategoryRepository) ListAll(ctx context.Context) ([]*entity.Category, error) {
	return r.list(ctx, r.db.WithContext(ctx))
}

func (r *gormCategoryRepository) ListRoots(ctx context.Context) ([]*entity.Category, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("parent_id IS NULL"))
}

func (r *gormCategoryRepository) ListChildren(ctx context.Context, parentID string) ([]*entity.Category, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("parent_id = ?", parentID))
}

func (r *gormCategoryRepository) ListByActive(ctx context.Context, isActive bool) ([]*entity.Category, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("is_active = ?", isActive))
}

func (r *gormCategoryRepository) list(_ context.Context, query *gorm.DB) ([]*entity.Category, error) {
	var categories []*entity.Category
	if err := query.Order("sort_order ASC").Find(&categories).Error; err != nil {
		return nil, errors.Internal("Failed to list categories", err)
	}
	return categories, nil
}

func (r *gormCategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	result := r.db.WithContext(ctx).Model(&entity.Category{ID: category.ID}).
		Select("*").Omit("id").Updates(category)
	if result.Error != nil {
		return wrapWrite("Category", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("Category", nil)
	}
	return nil
}

func (r *gormCategoryRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&entity.Category{}, "id = ?", id)
	if result.Error != nil {
		return errors.Internal("Failed to delete category", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("Category", nil)
	}
	return nil
}
