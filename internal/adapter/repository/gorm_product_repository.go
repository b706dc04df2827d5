package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"complab/internal/domain/entity"
	"complab/internal/domain/repository"
	"complab/pkg/errors"
	"complab/pkg/utils"
)

type gormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) repository.ProductRepository {
	return &gormProductRepository{db: db}
}

func (r *gormProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return wrapWrite("Product", err)
	}
	return nil
}

func (r *gormProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	var product entity.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, wrapRead("Product", err)
	}
	return &product, nil
}

func (r *gormProductRepository) GetBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	var product entity.Product
	if err := r.db.WithContext(ctx).First(&product, "slug = ?", slug).Error; err != nil {
		return nil, wrapRead("Product", err)
	}
	return &product, nil
}

func (r *gormProductRepository) List(ctx context.Context, filter repository.ProductFilter, sort *repository.ProductSort, page, limit int) (*repository.ProductPage, error) {
	query := r.db.WithContext(ctx).Model(&entity.Product{})
	query = applyProductFilter(query, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, errors.Internal("Failed to count products", err)
	}

	query = query.Order(orderClause(sort))

	var products []*entity.Product
	offset := (page - 1) * limit
	if err := query.Limit(limit).Offset(offset).Find(&products).Error; err != nil {
		return nil, errors.Internal("Failed to list products", err)
	}

	return &repository.ProductPage{
		Items:      products,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: utils.TotalPages(total, limit),
	}, nil
}

func applyProductFilter(query *gorm.DB, filter repository.ProductFilter) *gorm.DB {
	if filter.CategorySlug != "" {
		query = query.Where("category_slug = ?", filter.CategorySlug)
	}
	if len(filter.Brands) > 0 {
		query = query.Where("brand IN ?", filter.Brands)
	}
	if filter.PriceMin != nil {
		query = query.Where("price >= ?", *filter.PriceMin)
	}
	if filter.PriceMax != nil {
		query = query.Where("price <= ?", *filter.PriceMax)
	}
	if filter.InStock != nil {
		query = query.Where("in_stock = ?", *filter.InStock)
	}
	if filter.IsNew {
		query = query.Where("is_new = ?", true)
	}
	if filter.IsOnSale {
		query = query.Where("is_on_sale = ?", true)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"name ILIKE ? OR short_description ILIKE ? OR brand ILIKE ?",
			pattern, pattern, pattern,
		)
	}
	return query
}

// orderClause maps a sort spec to SQL. created_at plus id act as the stable
// tie-break so equal keys keep insertion order.
func orderClause(sort *repository.ProductSort) string {
	if sort == nil {
		return "created_at ASC, id ASC"
	}
	column := map[repository.SortField]string{
		repository.SortByPrice:     "price",
		repository.SortByRating:    "rating",
		repository.SortByCreatedAt: "created_at",
		repository.SortByName:      "name",
	}[sort.Field]
	direction := "ASC"
	if sort.Order == repository.SortDesc {
		direction = "DESC"
	}
	return column + " " + direction + ", created_at ASC, id ASC"
}

func (r *gormProductRepository) ListFeatured(ctx context.Context, limit int) ([]*entity.Product, error) {
	return r.listFlagged(ctx, "is_featured", limit)
}

func (r *gormProductRepository) ListNew(ctx context.Context, limit int) ([]*entity.Product, error) {
	return r.listFlagged(ctx, "is_new", limit)
}

func (r *gormProductRepository) ListOnSale(ctx context.Context, limit int) ([]*entity.Product, error) {
	return r.listFlagged(ctx, "is_on_sale", limit)
}

func (r *gormProductRepository) listFlagged(ctx context.Context, column string, limit int) ([]*entity.Product, error) {
	var products []*entity.Product
	err := r.db.WithContext(ctx).
		Where(column+" = ?", true).
		Order("created_at ASC, id ASC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, errors.Internal("Failed to list products", err)
	}
	return products, nil
}

func (r *gormProductRepository) ListRelated(ctx context.Context, product *entity.Product, limit int) ([]*entity.Product, error) {
	var products []*entity.Product
	err := r.db.WithContext(ctx).
		Where("category_slug = ? AND id <> ?", product.CategorySlug, product.ID).
		Order("created_at ASC, id ASC").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, errors.Internal("Failed to list related products", err)
	}
	return products, nil
}

func (r *gormProductRepository) ListAll(ctx context.Context) ([]*entity.Product, error) {
	var products []*entity.Product
	err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&products).Error
	if err != nil {
		return nil, errors.Internal("Failed to list products", err)
	}
	return products, nil
}

func (r *gormProductRepository) Brands(ctx context.Context) ([]string, error) {
	var brands []string
	err := r.db.WithContext(ctx).
		Model(&entity.Product{}).
		Distinct("brand").
		Order("brand ASC").
		Pluck("brand", &brands).Error
	if err != nil {
		return nil, errors.Internal("Failed to list brands", err)
	}
	return brands, nil
}

func (r *gormProductRepository) Update(ctx context.Context, product *entity.Product) error {
	product.UpdatedAt = time.Now()
	result := r.db.WithContext(ctx).Model(&entity.Product{ID: product.ID}).
		Select("*").Omit("id", "created_at").Updates(product)
	if result.Error != nil {
		return wrapWrite("Product", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("Product", nil)
	}
	return nil
}

func (r *gormProductRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&entity.Product{}, "id = ?", id)
	if result.Error != nil {
		return errors.Internal("Failed to delete product", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("Product", nil)
	}
	return nil
}

// UpdateRatingAggregate folds the product's review stats into the catalog row
// with one statement, so concurrent review submissions cannot lose updates.
func (r *gormProductRepository) UpdateRatingAggregate(ctx context.Context, productID string) error {
	err := r.db.WithContext(ctx).Exec(`
		UPDATE products SET
			rating = COALESCE((SELECT ROUND(AVG(rating)::numeric, 1) FROM reviews WHERE product_id = ?), 0),
			reviews_count = (SELECT COUNT(*) FROM reviews WHERE product_id = ?),
			updated_at = ?
		WHERE id = ?`,
		productID, productID, time.Now(), productID,
	).Error
	if err != nil {
		return errors.Internal("Failed to update product rating", err)
	}
	return nil
}
