package handler

import (
	"github.com/labstack/echo/v4"

	"complab/internal/domain/entity"
	"complab/internal/usecase"
	"complab/pkg/response"
)

type BannerHandler struct {
	bannerUseCase *usecase.BannerUseCase
}

func NewBannerHandler(bannerUseCase *usecase.BannerUseCase) *BannerHandler {
	return &BannerHandler{
		bannerUseCase: bannerUseCase,
	}
}

func (h *BannerHandler) ListBanners(c echo.Context) error {
	bannerType := entity.BannerType(c.QueryParam("type"))
	if bannerType == "" {
		bannerType = entity.BannerTypeHero
	}

	banners, err := h.bannerUseCase.ListBanners(c.Request().Context(), bannerType)
	if err != nil {
		return response.Error(c, err)
	}
	if banners == nil {
		banners = []*entity.Banner{}
	}
	return response.OK(c, map[string][]*entity.Banner{"banners": banners})
}
