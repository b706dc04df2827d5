package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBannerVisibleAt(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	b := Banner{IsActive: true}
	assert.True(t, b.VisibleAt(now), "no window means always visible")

	b.StartDate = &future
	assert.False(t, b.VisibleAt(now), "not started yet")

	b.StartDate = &past
	b.EndDate = &future
	assert.True(t, b.VisibleAt(now))

	b.EndDate = &past
	assert.False(t, b.VisibleAt(now), "already ended")

	b = Banner{IsActive: false}
	assert.False(t, b.VisibleAt(now), "inactive banners are never visible")
}
