package handler

import (
	"github.com/labstack/echo/v4"

	"complab/internal/domain/entity"
	"complab/internal/usecase"
	"complab/pkg/response"
	"complab/pkg/utils"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

type orderListResponse struct {
	Orders     []*entity.Order `json:"orders"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"totalPages"`
}

type createOrderRequest struct {
	UserID string `json:"userId" validate:"required"`
	usecase.CreateOrderInput
}

type setOrderStatusRequest struct {
	Status  string `json:"status" validate:"required"`
	Comment string `json:"comment,omitempty"`
}

type validatePromoRequest struct {
	Code string `json:"code" validate:"required"`
}

// ListOrders returns a user's orders, newest first. With simple=true the
// whole history comes back unpaginated.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()

	userID := c.QueryParam("userId")
	if userID == "" {
		return response.BadRequest(c, "userId is required")
	}

	if isTrue(c.QueryParam("simple")) {
		orders, err := h.orderUseCase.ListAllOrders(ctx, userID)
		if err != nil {
			return response.Error(c, err)
		}
		return response.OK(c, map[string][]*entity.Order{"orders": emptyOrders(orders)})
	}

	pagination := utils.GetPaginationParams(c)
	page, err := h.orderUseCase.ListOrders(ctx, userID, entity.OrderStatus(c.QueryParam("status")), pagination.Page, pagination.Limit)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, orderListResponse{
		Orders:     emptyOrders(page.Items),
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
	})
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.CreateOrder(c.Request().Context(), req.UserID, req.CreateOrderInput)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, order)
}

// GetOrder resolves the path parameter as an order id first and falls back
// to the human-readable order number.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	key := c.Param("id")

	order, err := h.orderUseCase.GetOrderByID(ctx, key)
	if err == nil {
		return response.OK(c, order)
	}
	order, numErr := h.orderUseCase.GetOrderByNumber(ctx, key)
	if numErr != nil {
		return response.Error(c, err)
	}
	return response.OK(c, order)
}

func (h *OrderHandler) SetStatus(c echo.Context) error {
	var req setOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.SetStatus(c.Request().Context(), c.Param("id"), entity.OrderStatus(req.Status), req.Comment)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, order)
}

func (h *OrderHandler) ValidatePromoCode(c echo.Context) error {
	var req validatePromoRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.orderUseCase.ValidatePromoCode(c.Request().Context(), req.Code)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, result)
}

func emptyOrders(orders []*entity.Order) []*entity.Order {
	if orders == nil {
		return []*entity.Order{}
	}
	return orders
}
