package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"complab/internal/domain/entity"
	"complab/internal/domain/repository"
	"complab/pkg/errors"
)

type ReviewUseCase struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	now         func() time.Time
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		now:         time.Now,
	}
}

type AddReviewInput struct {
	ProductID string   `json:"productId" validate:"required"`
	Rating    int      `json:"rating" validate:"required,min=1,max=5"`
	Title     string   `json:"title" validate:"required"`
	Content   string   `json:"content" validate:"required,min=10"`
	Pros      []string `json:"pros,omitempty"`
	Cons      []string `json:"cons,omitempty"`
}

// AddReview persists the review and then recomputes the product's rating
// aggregate (mean rounded to one decimal, plus review count) from all of its
// reviews.
func (uc *ReviewUseCase) AddReview(ctx context.Context, userID string, input AddReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, errors.BadRequest("Title is required", nil)
	}
	if len(input.Content) < 10 {
		return nil, errors.BadRequest("Content must be at least 10 characters", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.BadRequest("Unknown user", err)
		}
		return nil, err
	}
	if _, err := uc.productRepo.GetByID(ctx, input.ProductID); err != nil {
		return nil, err
	}

	review := &entity.Review{
		ID:         uuid.New().String(),
		ProductID:  input.ProductID,
		UserID:     userID,
		UserName:   strings.TrimSpace(user.FirstName + " " + user.LastName),
		UserAvatar: user.Avatar,
		Rating:     input.Rating,
		Title:      input.Title,
		Content:    input.Content,
		Pros:       input.Pros,
		Cons:       input.Cons,
		CreatedAt:  uc.now(),
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	if err := uc.productRepo.UpdateRatingAggregate(ctx, input.ProductID); err != nil {
		return nil, err
	}
	return review, nil
}

func (uc *ReviewUseCase) ListReviews(ctx context.Context, productID string, sort entity.ReviewSort, page, limit int) (*repository.ReviewPage, error) {
	if sort == "" {
		sort = entity.ReviewSortDate
	}
	if !sort.Valid() {
		return nil, errors.BadRequest("Invalid review sort", nil)
	}
	return uc.reviewRepo.ListByProduct(ctx, productID, sort, page, limit)
}

// ListAllReviews returns every review of the product without pagination.
func (uc *ReviewUseCase) ListAllReviews(ctx context.Context, productID string) ([]*entity.Review, error) {
	return uc.reviewRepo.ListAllByProduct(ctx, productID)
}

// GetStats computes the aggregate fresh from all reviews of the product. A
// product with no reviews yields zeros and an all-zero distribution, not an
// error.
func (uc *ReviewUseCase) GetStats(ctx context.Context, productID string) (*entity.ReviewStats, error) {
	return uc.reviewRepo.Stats(ctx, productID)
}

func (uc *ReviewUseCase) MarkHelpful(ctx context.Context, reviewID string) error {
	return uc.reviewRepo.IncrementHelpful(ctx, reviewID)
}
