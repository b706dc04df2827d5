package router

import (
	"github.com/labstack/echo/v4"

	"complab/internal/adapter/api/handler"
)

func SetupOrderRouter(e *echo.Echo, orderHandler *handler.OrderHandler) {
	orders := e.Group("/v1/orders")
	orders.GET("", orderHandler.ListOrders)
	orders.POST("", orderHandler.CreateOrder)
	orders.GET("/:id", orderHandler.GetOrder)
	orders.PATCH("/:id", orderHandler.SetStatus)

	e.POST("/v1/promo/validate", orderHandler.ValidatePromoCode)
}
