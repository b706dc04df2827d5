package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"complab/internal/adapter/api/handler"
)

// Handlers bundles every feature handler the router wires up.
type Handlers struct {
	Product  *handler.ProductHandler
	Category *handler.CategoryHandler
	Order    *handler.OrderHandler
	Repair   *handler.RepairHandler
	Review   *handler.ReviewHandler
	User     *handler.UserHandler
	Banner   *handler.BannerHandler
}

func Setup(e *echo.Echo, h Handlers) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	SetupProductRouter(e, h.Product)
	SetupCategoryRouter(e, h.Category)
	SetupOrderRouter(e, h.Order)
	SetupRepairRouter(e, h.Repair)
	SetupReviewRouter(e, h.Review)
	SetupUserRouter(e, h.User)
	SetupBannerRouter(e, h.Banner)
}
