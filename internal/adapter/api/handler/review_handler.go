package handler

import (
	"github.com/labstack/echo/v4"

	"complab/internal/domain/entity"
	"complab/internal/usecase"
	"complab/pkg/response"
	"complab/pkg/utils"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type reviewListResponse struct {
	Reviews    []*entity.Review    `json:"reviews"`
	Stats      *entity.ReviewStats `json:"stats"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	TotalPages int                 `json:"totalPages"`
}

type addReviewRequest struct {
	UserID string `json:"userId" validate:"required"`
	usecase.AddReviewInput
}

// ListReviews serves three query modes for one product: aggregate stats
// only, a simple unpaginated list, or the sorted and paginated default.
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	ctx := c.Request().Context()

	productID := c.QueryParam("productId")
	if productID == "" {
		return response.BadRequest(c, "productId is required")
	}

	if isTrue(c.QueryParam("stats")) {
		stats, err := h.reviewUseCase.GetStats(ctx, productID)
		if err != nil {
			return response.Error(c, err)
		}
		return response.OK(c, map[string]*entity.ReviewStats{"stats": stats})
	}

	if isTrue(c.QueryParam("simple")) {
		reviews, err := h.reviewUseCase.ListAllReviews(ctx, productID)
		if err != nil {
			return response.Error(c, err)
		}
		return response.OK(c, map[string][]*entity.Review{"reviews": emptyReviews(reviews)})
	}

	pagination := utils.GetPaginationParams(c)
	page, err := h.reviewUseCase.ListReviews(ctx, productID, entity.ReviewSort(c.QueryParam("sortBy")), pagination.Page, pagination.Limit)
	if err != nil {
		return response.Error(c, err)
	}
	stats, err := h.reviewUseCase.GetStats(ctx, productID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, reviewListResponse{
		Reviews:    emptyReviews(page.Items),
		Stats:      stats,
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
	})
}

func (h *ReviewHandler) AddReview(c echo.Context) error {
	var req addReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.AddReview(c.Request().Context(), req.UserID, req.AddReviewInput)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, review)
}

func (h *ReviewHandler) MarkHelpful(c echo.Context) error {
	if err := h.reviewUseCase.MarkHelpful(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, map[string]bool{"success": true})
}

func emptyReviews(reviews []*entity.Review) []*entity.Review {
	if reviews == nil {
		return []*entity.Review{}
	}
	return reviews
}
