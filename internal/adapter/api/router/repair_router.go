package router

import (
	"github.com/labstack/echo/v4"

	"complab/internal/adapter/api/handler"
)

func SetupRepairRouter(e *echo.Echo, repairHandler *handler.RepairHandler) {
	services := e.Group("/v1/repair/services")
	services.GET("", repairHandler.ListServices)
	services.GET("/:id", repairHandler.GetService)

	requests := e.Group("/v1/repair/requests")
	requests.GET("", repairHandler.ListRequests)
	requests.POST("", repairHandler.CreateRequest)
	requests.GET("/:id", repairHandler.GetRequest)
	requests.PATCH("/:id", repairHandler.SetStatus)
}
