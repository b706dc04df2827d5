package repository

import (
	"context"

	"complab/internal/domain/entity"
)

// ProductFilter narrows a catalog listing. All fields are conjunctive;
// Brands is a set-membership test and Search matches name, short
// description or brand case-insensitively.
type ProductFilter struct {
	CategorySlug string
	Brands       []string
	PriceMin     *int64
	PriceMax     *int64
	InStock      *bool
	IsNew        bool
	IsOnSale     bool
	Search       string
}

type SortField string

const (
	SortByPrice     SortField = "price"
	SortByRating    SortField = "rating"
	SortByCreatedAt SortField = "createdAt"
	SortByName      SortField = "name"
)

func (f SortField) Valid() bool {
	return f == SortByPrice || f == SortByRating || f == SortByCreatedAt || f == SortByName
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func (o SortOrder) Valid() bool {
	return o == SortAsc || o == SortDesc
}

// ProductSort orders by exactly one field. Equal keys keep insertion order.
type ProductSort struct {
	Field SortField
	Order SortOrder
}

type ProductPage struct {
	Items      []*entity.Product
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Product, error)
	List(ctx context.Context, filter ProductFilter, sort *ProductSort, page, limit int) (*ProductPage, error)
	ListFeatured(ctx context.Context, limit int) ([]*entity.Product, error)
	ListNew(ctx context.Context, limit int) ([]*entity.Product, error)
	ListOnSale(ctx context.Context, limit int) ([]*entity.Product, error)
	ListRelated(ctx context.Context, product *entity.Product, limit int) ([]*entity.Product, error)
	ListAll(ctx context.Context) ([]*entity.Product, error)
	Brands(ctx context.Context) ([]string, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	// UpdateRatingAggregate recomputes rating and reviewsCount from the
	// reviews table in a single statement, safe under concurrent writes.
	UpdateRatingAggregate(ctx context.Context, productID string) error
}
