package handler

import (
	"github.com/labstack/echo/v4"

	"complab/internal/domain/entity"
	"complab/internal/usecase"
	"complab/pkg/response"
)

type RepairHandler struct {
	repairUseCase *usecase.RepairUseCase
}

func NewRepairHandler(repairUseCase *usecase.RepairUseCase) *RepairHandler {
	return &RepairHandler{
		repairUseCase: repairUseCase,
	}
}

type createRepairRequestBody struct {
	UserID string `json:"userId" validate:"required"`
	usecase.CreateRepairRequestInput
}

type setRepairStatusRequest struct {
	Status        string `json:"status" validate:"required"`
	Comment       string `json:"comment,omitempty"`
	EstimatedCost *int64 `json:"estimatedCost,omitempty"`
	FinalCost     *int64 `json:"finalCost,omitempty"`
}

func (h *RepairHandler) ListServices(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		services []*entity.RepairService
		err      error
	)
	if isTrue(c.QueryParam("popular")) {
		services, err = h.repairUseCase.ListPopularServices(ctx)
	} else {
		services, err = h.repairUseCase.ListServices(ctx, entity.RepairCategory(c.QueryParam("category")))
	}
	if err != nil {
		return response.Error(c, err)
	}
	if services == nil {
		services = []*entity.RepairService{}
	}
	return response.OK(c, map[string][]*entity.RepairService{"services": services})
}

func (h *RepairHandler) GetService(c echo.Context) error {
	service, err := h.repairUseCase.GetService(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, service)
}

func (h *RepairHandler) ListRequests(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return response.BadRequest(c, "userId is required")
	}

	requests, err := h.repairUseCase.ListRequests(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}
	if requests == nil {
		requests = []*entity.RepairRequest{}
	}
	return response.OK(c, map[string][]*entity.RepairRequest{"requests": requests})
}

func (h *RepairHandler) CreateRequest(c echo.Context) error {
	var req createRepairRequestBody
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	request, err := h.repairUseCase.CreateRequest(c.Request().Context(), req.UserID, req.CreateRepairRequestInput)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, request)
}

// GetRequest resolves the path parameter as a request id first and falls
// back to the human-readable request number.
func (h *RepairHandler) GetRequest(c echo.Context) error {
	ctx := c.Request().Context()
	key := c.Param("id")

	request, err := h.repairUseCase.GetRequestByID(ctx, key)
	if err == nil {
		return response.OK(c, request)
	}
	request, numErr := h.repairUseCase.GetRequestByNumber(ctx, key)
	if numErr != nil {
		return response.Error(c, err)
	}
	return response.OK(c, request)
}

func (h *RepairHandler) SetStatus(c echo.Context) error {
	var req setRepairStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	request, err := h.repairUseCase.SetStatus(
		c.Request().Context(),
		c.Param("id"),
		entity.RepairStatus(req.Status),
		req.Comment,
		req.EstimatedCost,
		req.FinalCost,
	)
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, request)
}
