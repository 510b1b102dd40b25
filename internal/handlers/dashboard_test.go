package handlers

import (
	"testing"
	"time"

	"family-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestFormatMealTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"08:00", "8:00 AM"},
		{"12:30", "12:30 PM"},
		{"19:00", "7:00 PM"},
		{"00:15", "12:15 AM"},
		{"23:59", "11:59 PM"},
		{"", ""},
		{"noon", "noon"},
		{"25:00", "25:00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatMealTime(tt.in), "formatMealTime(%q)", tt.in)
	}
}

func TestGetCategoryStyle(t *testing.T) {
	style := getCategoryStyle(models.CategoryGroceries)
	assert.Equal(t, "🛒", style.Icon)

	// Unknown categories fall back to the "other" look.
	fallback := getCategoryStyle("mystery")
	assert.Equal(t, "📦", fallback.Icon)
}

func TestFormatLastLogin(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Today", formatLastLogin(now.Add(-2*time.Hour), now))
	assert.Equal(t, "Yesterday", formatLastLogin(now.Add(-30*time.Hour), now))
	assert.Equal(t, "3 days ago", formatLastLogin(now.Add(-3*24*time.Hour), now))
}
