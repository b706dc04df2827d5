package entity

import (
	"time"
)

type Review struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	ProductID    string    `json:"productId" gorm:"index;not null"`
	UserID       string    `json:"userId" gorm:"index;not null"`
	UserName     string    `json:"userName"`
	UserAvatar   string    `json:"userAvatar,omitempty"`
	Rating       int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Title        string    `json:"title" gorm:"not null"`
	Content      string    `json:"content" gorm:"type:text"`
	Pros         []string  `json:"pros,omitempty" gorm:"serializer:json"`
	Cons         []string  `json:"cons,omitempty" gorm:"serializer:json"`
	IsVerified   bool      `json:"isVerified"`
	HelpfulCount int       `json:"helpfulCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ReviewStats is computed fresh from all reviews of a product; it is all
// zeros when the product has none.
type ReviewStats struct {
	AverageRating      float64     `json:"averageRating"`
	TotalReviews       int         `json:"totalReviews"`
	RatingDistribution map[int]int `json:"ratingDistribution"`
}

type ReviewSort string

const (
	ReviewSortDate    ReviewSort = "date"
	ReviewSortRating  ReviewSort = "rating"
	ReviewSortHelpful ReviewSort = "helpful"
)

func (s ReviewSort) Valid() bool {
	return s == ReviewSortDate || s == ReviewSortRating || s == ReviewSortHelpful
}
