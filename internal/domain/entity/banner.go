package entity

import (
	"time"
)

type BannerType string

const (
	BannerTypeHero  BannerType = "hero"
	BannerTypePromo BannerType = "promo"
)

type Banner struct {
	ID              string     `json:"id" gorm:"primaryKey"`
	Type            BannerType `json:"type" gorm:"index;not null"`
	Title           string     `json:"title" gorm:"not null"`
	Subtitle        string     `json:"subtitle,omitempty"`
	Description     string     `json:"description,omitempty"`
	Image           string     `json:"image"`
	MobileImage     string     `json:"mobileImage,omitempty"`
	Link            string     `json:"link"`
	ButtonText      string     `json:"buttonText,omitempty"`
	BackgroundColor string     `json:"backgroundColor,omitempty"`
	TextColor       string     `json:"textColor,omitempty"`
	IsActive        bool       `json:"isActive" gorm:"default:true"`
	Order           int        `json:"order" gorm:"column:sort_order"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`

	// Promo banner extras.
	DiscountPercent int    `json:"discountPercent,omitempty"`
	PromoCode       string `json:"promoCode,omitempty"`
}

// VisibleAt reports whether the banner should be shown at the given time:
// active and inside its date window when one is set.
func (b *Banner) VisibleAt(now time.Time) bool {
	if !b.IsActive {
		return false
	}
	if b.StartDate != nil && now.Before(*b.StartDate) {
		return false
	}
	if b.EndDate != nil && now.After(*b.EndDate) {
		return false
	}
	return true
}
