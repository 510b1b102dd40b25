package models

import "time"

// Shopping item categories.
const (
	CategoryGroceries = "groceries"
	CategoryHousehold = "household"
	CategoryPersonal  = "personal"
	CategoryOther     = "other"
)

// Categories lists all item categories in display order.
var Categories = []string{CategoryGroceries, CategoryHousehold, CategoryPersonal, CategoryOther}

// ValidCategory reports whether c is a known shopping category.
func ValidCategory(c string) bool {
	switch c {
	case CategoryGroceries, CategoryHousehold, CategoryPersonal, CategoryOther:
		return true
	}
	return false
}

// ShoppingItem is one entry on the shared shopping list. IDs are unique
// across the list and never reused.
type ShoppingItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Priority  bool      `json:"priority"`
	Checked   bool      `json:"checked"`
	AddedDate time.Time `json:"addedDate"`
}

// Themes for the UI.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)
