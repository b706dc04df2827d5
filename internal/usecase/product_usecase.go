package usecase

import (
	"context"

	"complab/internal/domain/entity"
	"complab/internal/domain/repository"
)

type ProductUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

func NewProductUseCase(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

const (
	defaultRelatedLimit = 4
	defaultCardLimit    = 12
)

// ListProducts runs the catalog query: conjunctive filters, single-field
// sort, 1-indexed pagination. A page past the end yields an empty item list.
func (uc *ProductUseCase) ListProducts(ctx context.Context, filter repository.ProductFilter, sort *repository.ProductSort, page, limit int) (*repository.ProductPage, error) {
	return uc.productRepo.List(ctx, filter, sort, page, limit)
}

func (uc *ProductUseCase) SearchProducts(ctx context.Context, query string, limit int) ([]*entity.Product, error) {
	page, err := uc.productRepo.List(ctx, repository.ProductFilter{Search: query}, nil, 1, limit)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

func (uc *ProductUseCase) GetProductByID(ctx context.Context, id string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

func (uc *ProductUseCase) GetProductBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	return uc.productRepo.GetBySlug(ctx, slug)
}

func (uc *ProductUseCase) GetRelatedProducts(ctx context.Context, productID string, limit int) ([]*entity.Product, error) {
	if limit <= 0 {
		limit = defaultRelatedLimit
	}
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	return uc.productRepo.ListRelated(ctx, product, limit)
}

func (uc *ProductUseCase) ListFeatured(ctx context.Context, limit int) ([]*entity.Product, error) {
	return uc.productRepo.ListFeatured(ctx, limit)
}

// ListFeaturedCards projects the featured shelf into the trimmed card shape
// used by product grids.
func (uc *ProductUseCase) ListFeaturedCards(ctx context.Context, limit int) ([]entity.ProductCard, error) {
	if limit <= 0 {
		limit = defaultCardLimit
	}
	products, err := uc.productRepo.ListFeatured(ctx, limit)
	if err != nil {
		return nil, err
	}
	cards := make([]entity.ProductCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, p.ToCard())
	}
	return cards, nil
}

func (uc *ProductUseCase) ListNew(ctx context.Context, limit int) ([]*entity.Product, error) {
	return uc.productRepo.ListNew(ctx, limit)
}

func (uc *ProductUseCase) ListOnSale(ctx context.Context, limit int) ([]*entity.Product, error) {
	return uc.productRepo.ListOnSale(ctx, limit)
}

func (uc *ProductUseCase) ListAll(ctx context.Context) ([]*entity.Product, error) {
	return uc.productRepo.ListAll(ctx)
}

func (uc *ProductUseCase) ListBrands(ctx context.Context) ([]string, error) {
	return uc.productRepo.Brands(ctx)
}
