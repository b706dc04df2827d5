package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"complab/internal/domain/entity"
	"complab/internal/domain/repository"
	"complab/pkg/errors"
	"complab/pkg/utils"
)

// MemoryReviewRepository is the in-memory test double for reviews.
type MemoryReviewRepository struct {
	mu      sync.RWMutex
	reviews []*entity.Review
}

func NewMemoryReviewRepository() *MemoryReviewRepository {
	return &MemoryReviewRepository{}
}

func (r *MemoryReviewRepository) Create(_ context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}
	clone := *review
	r.reviews = append(r.reviews, &clone)
	return nil
}

func (r *MemoryReviewRepository) GetByID(_ context.Context, id string) (*entity.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rev := range r.reviews {
		if rev.ID == id {
			clone := *rev
			return &clone, nil
		}
	}
	return nil, errors.NotFound("Review", nil)
}

func (r *MemoryReviewRepository) ListByProduct(ctx context.Context, productID string, sortBy entity.ReviewSort, page, limit int) (*repository.ReviewPage, error) {
	all, _ := r.ListAllByProduct(ctx, productID)

	switch sortBy {
	case entity.ReviewSortRating:
		sort.SliceStable(all, func(i, j int) bool { return all[i].Rating > all[j].Rating })
	case entity.ReviewSortHelpful:
		sort.SliceStable(all, func(i, j int) bool { return all[i].HelpfulCount > all[j].HelpfulCount })
	default:
		sort.SliceStable(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	}

	total := int64(len(all))
	start := (page - 1) * limit
	end := start + limit
	if start > len(all) {
		start = len(all)
	}
	if end > len(all) {
		end = len(all)
	}

	return &repository.ReviewPage{
		Items:      all[start:end],
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: utils.TotalPages(total, limit),
	}, nil
}

func (r *MemoryReviewRepository) ListAllByProduct(_ context.Context, productID string) ([]*entity.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*entity.Review
	for _, rev := range r.reviews {
		if rev.ProductID == productID {
			clone := *rev
			result = append(result, &clone)
		}
	}
	return result, nil
}

func (r *MemoryReviewRepository) Stats(_ context.Context, productID string) (*entity.ReviewStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := &entity.ReviewStats{
		RatingDistribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}
	totalRating := 0
	for _, rev := range r.reviews {
		if rev.ProductID == productID {
			stats.RatingDistribution[rev.Rating]++
			stats.TotalReviews++
			totalRating += rev.Rating
		}
	}
	if stats.TotalReviews > 0 {
		stats.AverageRating = roundToTenth(float64(totalRating) / float64(stats.TotalReviews))
	}
	return stats, nil
}

func (r *MemoryReviewRepository) IncrementHelpful(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rev := range r.reviews {
		if rev.ID == id {
			rev.HelpfulCount++
			return nil
		}
	}
	return errors.NotFound("Review", nil)
}
