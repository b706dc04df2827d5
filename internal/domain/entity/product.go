package entity

import (
	"math"
	"time"
)

type ProductSpecification struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Group string `json:"group,omitempty"`
}

type Product struct {
	ID               string                 `json:"id" gorm:"primaryKey"`
	Name             string                 `json:"name" gorm:"not null"`
	Slug             string                 `json:"slug" gorm:"uniqueIndex;not null"`
	Description      string                 `json:"description" gorm:"type:text"`
	ShortDescription string                 `json:"shortDescription"`
	Price            int64                  `json:"price" gorm:"not null;check:price > 0"`
	OldPrice         *int64                 `json:"oldPrice,omitempty"`
	Images           []string               `json:"images" gorm:"serializer:json"`
	CategoryID       string                 `json:"categoryId" gorm:"index;not null"`
	CategorySlug     string                 `json:"categorySlug" gorm:"index"`
	Brand            string                 `json:"brand" gorm:"index"`
	SKU              string                 `json:"sku" gorm:"column:sku"`
	InStock          bool                   `json:"inStock" gorm:"default:true"`
	StockQuantity    int                    `json:"stockQuantity"`
	Specifications   []ProductSpecification `json:"specifications" gorm:"serializer:json"`
	Rating           float64                `json:"rating"`
	ReviewsCount     int                    `json:"reviewsCount"`
	IsNew            bool                   `json:"isNew,omitempty"`
	IsFeatured       bool                   `json:"isFeatured,omitempty"`
	IsOnSale         bool                   `json:"isOnSale,omitempty"`
	CreatedAt        time.Time              `json:"createdAt"`
	UpdatedAt        time.Time              `json:"updatedAt"`
}

// DiscountPercent is the sale badge value: how much cheaper the current
// price is relative to the old one, rounded to the nearest percent.
// Zero when the product has no old price.
func (p *Product) DiscountPercent() int {
	if p.OldPrice == nil || *p.OldPrice <= p.Price {
		return 0
	}
	old := float64(*p.OldPrice)
	return int(math.Round((old - float64(p.Price)) / old * 100))
}

// ProductCard is the trimmed shape used by product grids.
type ProductCard struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Slug             string  `json:"slug"`
	ShortDescription string  `json:"shortDescription"`
	Price            int64   `json:"price"`
	OldPrice         *int64  `json:"oldPrice,omitempty"`
	Image            string  `json:"image"`
	Brand            string  `json:"brand"`
	InStock          bool    `json:"inStock"`
	Rating           float64 `json:"rating"`
	ReviewsCount     int     `json:"reviewsCount"`
	IsNew            bool    `json:"isNew,omitempty"`
	IsOnSale         bool    `json:"isOnSale,omitempty"`
}

const placeholderImage = "/placeholder-product.jpg"

func (p *Product) ToCard() ProductCard {
	image := placeholderImage
	if len(p.Images) > 0 {
		image = p.Images[0]
	}
	return ProductCard{
		ID:               p.ID,
		Name:             p.Name,
		Slug:             p.Slug,
		ShortDescription: p.ShortDescription,
		Price:            p.Price,
		OldPrice:         p.OldPrice,
		Image:            image,
		Brand:            p.Brand,
		InStock:          p.InStock,
		Rating:           p.Rating,
		ReviewsCount:     p.ReviewsCount,
		IsNew:            p.IsNew,
		IsOnSale:         p.IsOnSale,
	}
}
