package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscountPercent(t *testing.T) {
	old := int64(1200)
	p := Product{Price: 1000, OldPrice: &old}
	assert.Equal(t, 17, p.DiscountPercent())
}

func TestDiscountPercentWithoutOldPrice(t *testing.T) {
	p := Product{Price: 1000}
	assert.Equal(t, 0, p.DiscountPercent())

	same := int64(1000)
	p.OldPrice = &same
	assert.Equal(t, 0, p.DiscountPercent())
}

func TestToCardFallsBackToPlaceholderImage(t *testing.T) {
	p := Product{ID: "p-1", Name: "Mouse", Price: 990}
	card := p.ToCard()
	assert.Equal(t, placeholderImage, card.Image)

	p.Images = []string{"/img/mouse-1.jpg", "/img/mouse-2.jpg"}
	card = p.ToCard()
	assert.Equal(t, "/img/mouse-1.jpg", card.Image)
}
