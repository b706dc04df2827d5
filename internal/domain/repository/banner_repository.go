package repository

import (
	"context"
	"time"

	"complab/internal/domain/entity"
)

type BannerRepository interface {
	Create(ctx context.Context, banner *entity.Banner) error
	// ListVisible returns banners of the given type that are active and
	// inside their date window at now, ordered by their sort order.
	ListVisible(ctx context.Context, bannerType entity.BannerType, now time.Time) ([]*entity.Banner, error)
}
