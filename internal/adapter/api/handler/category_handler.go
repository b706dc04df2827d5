package handler

import (
	"github.com/labstack/echo/v4"

	"complab/internal/domain/entity"
	"complab/internal/usecase"
	"complab/pkg/response"
)

type CategoryHandler struct {
	categoryUseCase *usecase.CategoryUseCase
}

func NewCategoryHandler(categoryUseCase *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{
		categoryUseCase: categoryUseCase,
	}
}

type categoriesBody struct {
	Categories interface{} `json:"categories"`
}

// ListCategories dispatches on the query mode: the two-level tree, root
// categories only, every category, or children of a given parent. An
// isActive filter applies when none of the modes is requested.
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	ctx := c.Request().Context()

	if isTrue(c.QueryParam("tree")) {
		tree, err := h.categoryUseCase.Tree(ctx)
		if err != nil {
			return response.Error(c, err)
		}
		if tree == nil {
			tree = []*entity.CategoryWithChildren{}
		}
		return response.OK(c, categoriesBody{Categories: tree})
	}

	var (
		categories []*entity.Category
		err        error
	)
	switch {
	case isTrue(c.QueryParam("root")):
		categories, err = h.categoryUseCase.ListRoots(ctx)
	case c.QueryParam("parentId") != "":
		categories, err = h.categoryUseCase.ListChildren(ctx, c.QueryParam("parentId"))
	case c.QueryParam("isActive") != "":
		categories, err = h.categoryUseCase.ListByActive(ctx, isTrue(c.QueryParam("isActive")))
	default:
		categories, err = h.categoryUseCase.ListAll(ctx)
	}
	if err != nil {
		return response.Error(c, err)
	}
	if categories == nil {
		categories = []*entity.Category{}
	}
	return response.OK(c, categoriesBody{Categories: categories})
}

func (h *CategoryHandler) GetCategoryBySlug(c echo.Context) error {
	detail, err := h.categoryUseCase.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, detail)
}
