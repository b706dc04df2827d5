package router

import (
	"github.com/labstack/echo/v4"

	"complab/internal/adapter/api/handler"
)

func SetupUserRouter(e *echo.Echo, userHandler *handler.UserHandler) {
	users := e.Group("/v1/users")
	users.GET("/:id/profile", userHandler.GetProfile)
	users.POST("/:id/addresses", userHandler.CreateAddress)
	users.PUT("/:id/addresses/:addressId", userHandler.UpdateAddress)
	users.DELETE("/:id/addresses/:addressId", userHandler.DeleteAddress)
	users.POST("/:id/addresses/:addressId/default", userHandler.SetDefaultAddress)
}
