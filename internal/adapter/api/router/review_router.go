package router

import (
	"github.com/labstack/echo/v4"

	"complab/internal/adapter/api/handler"
)

func SetupReviewRouter(e *echo.Echo, reviewHandler *handler.ReviewHandler) {
	reviews := e.Group("/v1/reviews")
	reviews.GET("", reviewHandler.ListReviews)
	reviews.POST("", reviewHandler.AddReview)
	reviews.POST("/:id/helpful", reviewHandler.MarkHelpful)
}
