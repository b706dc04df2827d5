package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"complab/internal/domain/entity"
	"complab/internal/domain/repository"
	"complab/pkg/errors"
)

type gormBannerRepository struct {
	db *gorm.DB
}

func NewGormBannerRepository(db *gorm.DB) repository.BannerRepository {
	return &gormBannerRepository{db: db}
}

func (r *gormBannerRepository) Create(ctx context.Context, banner *entity.Banner) error {
	if banner.ID == "" {
		banner.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(banner).Error; err != nil {
		return wrapWrite("Banner", err)
	}
	return nil
}

func (r *gormBannerRepository) ListVisible(ctx context.Context, bannerType entity.BannerType, now time.Time) ([]*entity.Banner, error) {
	var banners []*entity.Banner
	err := r.db.WithContext(ctx).
		Where("type = ? AND is_active = ?", bannerType, true).
		Where("start_date IS NULL OR start_date <= ?", now).
		Where("end_date IS NULL OR end_date >= ?", now).
		Order("sort_order ASC").
		Find(&banners).Error
	if err != nil {
		return nil, errors.Internal("Failed to list banners", err)
	}
	return banners, nil
}
