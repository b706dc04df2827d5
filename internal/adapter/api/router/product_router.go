package router

import (
	"github.com/labstack/echo/v4"

	"complab/internal/adapter/api/handler"
)

func SetupProductRouter(e *echo.Echo, productHandler *handler.ProductHandler) {
	products := e.Group("/v1/products")
	products.GET("", productHandler.ListProducts)
	products.GET("/brands", productHandler.ListBrands)
	products.GET("/slug/:slug", productHandler.GetProductBySlug)
	products.GET("/:id", productHandler.GetProduct)
}
