package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"complab/internal/domain/entity"
	"complab/internal/domain/repository"
	"complab/pkg/errors"
	"complab/pkg/utils"
)

type gormReviewRepository struct {
	db *gorm.DB
}

func NewGormReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &gormReviewRepository{db: db}
}

func (r *gormReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return wrapWrite("Review", err)
	}
	return nil
}

func (r *gormReviewRepository) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	var review entity.Review
	if err := r.db.WithContext(ctx).First(&review, "id = ?", id).Error; err != nil {
		return nil, wrapRead("Review", err)
	}
	return &review, nil
}

func (r *gormReviewRepository) ListByProduct(ctx context.Context, productID string, sort entity.ReviewSort, page, limit int) (*repository.ReviewPage, error) {
	query := r.db.WithContext(ctx).Model(&entity.Review{}).Where("product_id = ?", productID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, errors.Internal("Failed to count reviews", err)
	}

	order := "created_at DESC, id ASC"
	switch sort {
	case entity.ReviewSortRating:
		order = "rating DESC, id ASC"
	case entity.ReviewSortHelpful:
		order = "helpful_count DESC, id ASC"
	}

	var reviews []*entity.Review
	err := query.Order(order).Limit(limit).Offset((page - 1) * limit).Find(&reviews).Error
	if err != nil {
		return nil, errors.Internal("Failed to list reviews", err)
	}

	return &repository.ReviewPage{
		Items:      reviews,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: utils.TotalPages(total, limit),
	}, nil
}

func (r *gormReviewRepository) ListAllByProduct(ctx context.Context, productID string) ([]*entity.Review, error) {
	var reviews []*entity.Review
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC, id ASC").
		Find(&reviews).Error
	if err != nil {
		return nil, errors.Internal("Failed to list reviews", err)
	}
	return reviews, nil
}

func (r *gormReviewRepository) Stats(ctx context.Context, productID string) (*entity.ReviewStats, error) {
	type ratingCount struct {
		Rating int
		Count  int
	}
	var counts []ratingCount
	err := r.db.WithContext(ctx).Model(&entity.Review{}).
		Select("rating, COUNT(*) AS count").
		Where("product_id = ?", productID).
		Group("rating").
		Scan(&counts).Error
	if err != nil {
		return nil, errors.Internal("Failed to compute review stats", err)
	}

	stats := &entity.ReviewStats{
		RatingDistribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}
	totalRating := 0
	for _, c := range counts {
		stats.RatingDistribution[c.Rating] = c.Count
		stats.TotalReviews += c.Count
		totalRating += c.Rating * c.Count
	}
	if stats.TotalReviews > 0 {
		stats.AverageRating = roundToTenth(float64(totalRating) / float64(stats.TotalReviews))
	}
	return stats, nil
}

func (r *gormReviewRepository) IncrementHelpful(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Model(&entity.Review{}).
		Where("id = ?", id).
		UpdateColumn("helpful_count", gorm.Expr("helpful_count + 1"))
	if result.Error != nil {
		return errors.Internal("Failed to update review", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("Review", nil)
	}
	return nil
}
