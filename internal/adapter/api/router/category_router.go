package router

import (
	"github.com/labstack/echo/v4"

	"complab/internal/adapter/api/handler"
)

func SetupCategoryRouter(e *echo.Echo, categoryHandler *handler.CategoryHandler) {
	categories := e.Group("/v1/categories")
	categories.GET("", categoryHandler.ListCategories)
	categories.GET("/:slug", categoryHandler.GetCategoryBySlug)
}
