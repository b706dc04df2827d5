package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"complab/internal/domain/entity"
	"complab/internal/domain/repository"
	"complab/pkg/errors"
	"complab/pkg/utils"
)

// MemoryProductRepository is the in-memory test double for the catalog. It
// mirrors the filter, sort and pagination semantics of the GORM
// implementation so usecase tests run without a database.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products []*entity.Product
	reviews  *MemoryReviewRepository
}

func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{}
}

// AttachReviews wires the review double in so rating aggregates can be
// recomputed.
func (r *MemoryProductRepository) AttachReviews(reviews *MemoryReviewRepository) {
	r.reviews = reviews
}

func (r *MemoryProductRepository) Create(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	for _, p := range r.products {
		if p.Slug == product.Slug {
			return errors.Conflict("Product already exists", nil)
		}
	}
	clone := *product
	r.products = append(r.products, &clone)
	return nil
}

func (r *MemoryProductRepository) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, errors.NotFound("Product", nil)
}

func (r *MemoryProductRepository) GetBySlug(_ context.Context, slug string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.Slug == slug {
			clone := *p
			return &clone, nil
		}
	}
	return nil, errors.NotFound("Product", nil)
}

func matchesFilter(p *entity.Product, filter repository.ProductFilter) bool {
	if filter.CategorySlug != "" && p.CategorySlug != filter.CategorySlug {
		return false
	}
	if len(filter.Brands) > 0 {
		found := false
		for _, b := range filter.Brands {
			if p.Brand == b {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if filter.PriceMin != nil && p.Price < *filter.PriceMin {
		return false
	}
	if filter.PriceMax != nil && p.Price > *filter.PriceMax {
		return false
	}
	if filter.InStock != nil && p.InStock != *filter.InStock {
		return false
	}
	if filter.IsNew && !p.IsNew {
		return false
	}
	if filter.IsOnSale && !p.IsOnSale {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.ShortDescription), needle) &&
			!strings.Contains(strings.ToLower(p.Brand), needle) {
			return false
		}
	}
	return true
}

func (r *MemoryProductRepository) List(_ context.Context, filter repository.ProductFilter, sortSpec *repository.ProductSort, page, limit int) (*repository.ProductPage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*entity.Product
	for _, p := range r.products {
		if matchesFilter(p, filter) {
			clone := *p
			matched = append(matched, &clone)
		}
	}

	if sortSpec != nil {
		less := productLess(sortSpec.Field)
		sort.SliceStable(matched, func(i, j int) bool {
			if sortSpec.Order == repository.SortDesc {
				return less(matched[j], matched[i])
			}
			return less(matched[i], matched[j])
		})
	}

	total := int64(len(matched))
	start := (page - 1) * limit
	end := start + limit
	if start > len(matched) {
		start = len(matched)
	}
	if end > len(matched) {
		end = len(matched)
	}

	return &repository.ProductPage{
		Items:      matched[start:end],
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: utils.TotalPages(total, limit),
	}, nil
}

func productLess(field repository.SortField) func(a, b *entity.Product) bool {
	switch field {
	case repository.SortByPrice:
		return func(a, b *entity.Product) bool { return a.Price < b.Price }
	case repository.SortByRating:
		return func(a, b *entity.Product) bool { return a.Rating < b.Rating }
	case repository.SortByName:
		return func(a, b *entity.Product) bool { return a.Name < b.Name }
	default:
		return func(a, b *entity.Product) bool { return a.CreatedAt.Before(b.CreatedAt) }
	}
}

func (r *MemoryProductRepository) ListFeatured(_ context.Context, limit int) ([]*entity.Product, error) {
	return r.listWhere(func(p *entity.Product) bool { return p.IsFeatured }, limit), nil
}

func (r *MemoryProductRepository) ListNew(_ context.Context, limit int) ([]*entity.Product, error) {
	return r.listWhere(func(p *entity.Product) bool { return p.IsNew }, limit), nil
}

func (r *MemoryProductRepository) ListOnSale(_ context.Context, limit int) ([]*entity.Product, error) {
	return r.listWhere(func(p *entity.Product) bool { return p.IsOnSale }, limit), nil
}

func (r *MemoryProductRepository) ListRelated(_ context.Context, product *entity.Product, limit int) ([]*entity.Product, error) {
	return r.listWhere(func(p *entity.Product) bool {
		return p.CategorySlug == product.CategorySlug && p.ID != product.ID
	}, limit), nil
}

func (r *MemoryProductRepository) listWhere(pred func(*entity.Product) bool, limit int) []*entity.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*entity.Product, 0)
	for _, p := range r.products {
		if pred(p) {
			clone := *p
			result = append(result, &clone)
			if limit > 0 && len(result) == limit {
				break
			}
		}
	}
	return result
}

func (r *MemoryProductRepository) ListAll(_ context.Context) ([]*entity.Product, error) {
	return r.listWhere(func(*entity.Product) bool { return true }, 0), nil
}

func (r *MemoryProductRepository) Brands(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := map[string]bool{}
	var brands []string
	for _, p := range r.products {
		if !seen[p.Brand] {
			seen[p.Brand] = true
			brands = append(brands, p.Brand)
		}
	}
	sort.Strings(brands)
	return brands, nil
}

func (r *MemoryProductRepository) Update(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.ID == product.ID {
			clone := *product
			clone.CreatedAt = p.CreatedAt
			r.products[i] = &clone
			return nil
		}
	}
	return errors.NotFound("Product", nil)
}

func (r *MemoryProductRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return errors.NotFound("Product", nil)
}

func (r *MemoryProductRepository) UpdateRatingAggregate(ctx context.Context, productID string) error {
	if r.reviews == nil {
		return errors.Internal("review repository not attached", nil)
	}
	stats, err := r.reviews.Stats(ctx, productID)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.ID == productID {
			p.Rating = stats.AverageRating
			p.ReviewsCount = stats.TotalReviews
			return nil
		}
	}
	return errors.NotFound("Product", nil)
}
