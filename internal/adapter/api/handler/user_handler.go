package handler

import (
	"github.com/labstack/echo/v4"

	"complab/internal/usecase"
	"complab/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type addressRequest struct {
	Title      string `json:"title" validate:"required"`
	FullName   string `json:"fullName" validate:"required"`
	Phone      string `json:"phone" validate:"required"`
	City       string `json:"city" validate:"required"`
	Street     string `json:"street" validate:"required"`
	Building   string `json:"building" validate:"required"`
	Apartment  string `json:"apartment,omitempty"`
	PostalCode string `json:"postalCode" validate:"required"`
	IsDefault  bool   `json:"isDefault"`
}

func (r addressRequest) toInput() usecase.AddressInput {
	return usecase.AddressInput{
		Title:      r.Title,
		FullName:   r.FullName,
		Phone:      r.Phone,
		City:       r.City,
		Street:     r.Street,
		Building:   r.Building,
		Apartment:  r.Apartment,
		PostalCode: r.PostalCode,
		IsDefault:  r.IsDefault,
	}
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	profile, err := h.userUseCase.GetProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, profile)
}

func (h *UserHandler) CreateAddress(c echo.Context) error {
	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	address, err := h.userUseCase.CreateAddress(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, address)
}

func (h *UserHandler) UpdateAddress(c echo.Context) error {
	var req addressRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	address, err := h.userUseCase.UpdateAddress(c.Request().Context(), c.Param("id"), c.Param("addressId"), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, address)
}

func (h *UserHandler) DeleteAddress(c echo.Context) error {
	if err := h.userUseCase.DeleteAddress(c.Request().Context(), c.Param("id"), c.Param("addressId")); err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, map[string]bool{"success": true})
}

func (h *UserHandler) SetDefaultAddress(c echo.Context) error {
	if err := h.userUseCase.SetDefaultAddress(c.Request().Context(), c.Param("id"), c.Param("addressId")); err != nil {
		return response.Error(c, err)
	}
	return response.OK(c, map[string]bool{"success": true})
}
