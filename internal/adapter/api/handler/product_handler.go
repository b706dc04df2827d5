package handler

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"complab/internal/domain/entity"
	"complab/internal/domain/repository"
	"complab/internal/usecase"
	"complab/pkg/response"
	"complab/pkg/utils"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
}

func NewProductHandler(productUseCase *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
	}
}

type productListResponse struct {
	Products   []*entity.Product `json:"products"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"totalPages"`
}

type productsBody struct {
	Products []*entity.Product `json:"products"`
}

// ListProducts dispatches on the query mode: full-text search, card
// projections of the featured shelf, one of the curated shelves (featured,
// new, onSale, all), or the filtered and paginated catalog query.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()
	pagination := utils.GetPaginationParams(c)

	if query := c.QueryParam("query"); query != "" {
		products, err := h.productUseCase.SearchProducts(ctx, query, pagination.Limit)
		if err != nil {
			return response.Error(c, err)
		}
		return response.OK(c, productsBody{Products: emptySafe(products)})
	}

	if isTrue(c.QueryParam("cards")) {
		limit, _ := strconv.Atoi(c.QueryParam("limit"))
		cards, err := h.productUseCase.ListFeaturedCards(ctx, limit)
		if err != nil {
			return response.Error(c, err)
		}
		return response.OK(c, map[string][]entity.ProductCard{"products": cards})
	}

	shelves := []struct {
		param string
		list  func() ([]*entity.Product, error)
	}{
		{"featured", func() ([]*entity.Product, error) { return h.productUseCase.ListFeatured(ctx, pagination.Limit) }},
		{"new", func() ([]*entity.Product, error) { return h.productUseCase.ListNew(ctx, pagination.Limit) }},
		{"onSale", func() ([]*entity.Product, error) { return h.productUseCase.ListOnSale(ctx, pagination.Limit) }},
		{"all", func() ([]*entity.Product, error) { return h.productUseCase.ListAll(ctx) }},
	}
	for _, shelf := range shelves {
		if isTrue(c.QueryParam(shelf.param)) {
			products, err := shelf.list()
			if err != nil {
				return response.Error(c, err)
			}
			return response.OK(c, productsBody{Products: emptySafe(products)})
		}
	}

	filter, err := parseProductFilter(c)
	if err != nil {
		return response.Error(c, err)
	}
	sort, err := parseProductSort(c)
	if err != nil {
		return response.Error(c, err)
	}

	page, err := h.productUseCase.ListProducts(ctx, filter, sort, pagination.Page, pagination.Limit)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, productListResponse{
		Products:   emptySafe(page.Items),
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
	})
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	if isTrue(c.QueryParam("related")) {
		relatedLimit, _ := strconv.Atoi(c.QueryParam("relatedLimit"))
		related, err := h.productUseCase.GetRelatedProducts(ctx, id, relatedLimit)
		if err != nil {
			return response.Error(c, err)
		}
		return response.OK(c, productsBody{Products: emptySafe(related)})
	}

	product, err := h.productUseCase.GetProductByID(ctx, id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, product)
}

func (h *ProductHandler) GetProductBySlug(c echo.Context) error {
	product, err := h.productUseCase.GetProductBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, product)
}

func (h *ProductHandler) ListBrands(c echo.Context) error {
	brands, err := h.productUseCase.ListBrands(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	if brands == nil {
		brands = []string{}
	}
	return response.OK(c, map[string][]string{"brands": brands})
}

func parseProductFilter(c echo.Context) (repository.ProductFilter, error) {
	filter := repository.ProductFilter{
		CategorySlug: c.QueryParam("categorySlug"),
	}

	if brands := c.QueryParam("brands"); brands != "" {
		for _, b := range strings.Split(brands, ",") {
			if b = strings.TrimSpace(b); b != "" {
				filter.Brands = append(filter.Brands, b)
			}
		}
	}

	var err error
	if filter.PriceMin, err = parseOptionalInt64(c.QueryParam("priceMin"), "priceMin"); err != nil {
		return filter, err
	}
	if filter.PriceMax, err = parseOptionalInt64(c.QueryParam("priceMax"), "priceMax"); err != nil {
		return filter, err
	}

	if raw := c.QueryParam("inStock"); raw != "" {
		inStock := isTrue(raw)
		filter.InStock = &inStock
	}
	filter.IsNew = isTrue(c.QueryParam("isNew"))
	filter.IsOnSale = isTrue(c.QueryParam("isOnSale"))
	return filter, nil
}

// parseProductSort rejects unknown sort fields and orders instead of
// coercing them to a default.
func parseProductSort(c echo.Context) (*repository.ProductSort, error) {
	sortBy := c.QueryParam("sortBy")
	if sortBy == "" {
		return nil, nil
	}

	field := repository.SortField(sortBy)
	if !field.Valid() {
		return nil, apperrBadParam("sortBy must be one of: price, rating, createdAt, name")
	}

	order := repository.SortAsc
	if raw := c.QueryParam("sortOrder"); raw != "" {
		order = repository.SortOrder(raw)
		if !order.Valid() {
			return nil, apperrBadParam("sortOrder must be asc or desc")
		}
	}
	return &repository.ProductSort{Field: field, Order: order}, nil
}

func emptySafe(products []*entity.Product) []*entity.Product {
	if products == nil {
		return []*entity.Product{}
	}
	return products
}
