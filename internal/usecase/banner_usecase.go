package usecase

import (
	"context"
	"time"

	"complab/internal/domain/entity"
	"complab/internal/domain/repository"
	"complab/pkg/errors"
)

type BannerUseCase struct {
	bannerRepo repository.BannerRepository
	now        func() time.Time
}

func NewBannerUseCase(bannerRepo repository.BannerRepository) *BannerUseCase {
	return &BannerUseCase{bannerRepo: bannerRepo, now: time.Now}
}

// ListBanners returns the banners of the given type that are active and
// inside their date window right now, in display order.
func (uc *BannerUseCase) ListBanners(ctx context.Context, bannerType entity.BannerType) ([]*entity.Banner, error) {
	if bannerType != entity.BannerTypeHero && bannerType != entity.BannerTypePromo {
		return nil, errors.BadRequest("Invalid banner type", nil)
	}
	return uc.bannerRepo.ListVisible(ctx, bannerType, uc.now())
}
