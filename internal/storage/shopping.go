package storage

import (
	"math/rand/v2"
	"sort"
	"strconv"
	"strings"
	"time"

	"family-dashboard/internal/models"
)

// ItemFilter restricts a shopping list read. The zero value matches all
// items; Category limits to one category, Search to a case-insensitive
// substring of the item name.
type ItemFilter struct {
	Category string
	Search   string
}

func (f ItemFilter) matches(item models.ShoppingItem) bool {
	if f.Category != "" && item.Category != f.Category {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(item.Name), strings.ToLower(f.Search)) {
		return false
	}
	return true
}

// defaultShoppingItems builds the list seeded on first use.
func defaultShoppingItems(now time.Time) []models.ShoppingItem {
	names := []struct {
		id       string
		name     string
		category string
		priority bool
	}{
		{"item_1", "Fresh Milk", models.CategoryGroceries, false},
		{"item_2", "Whole Wheat Bread", models.CategoryGroceries, false},
		{"item_3", "Fresh Vegetables", models.CategoryGroceries, true},
		{"item_4", "Laundry Detergent", models.CategoryHousehold, false},
		{"item_5", "Toilet Paper", models.CategoryHousehold, true},
	}

	items := make([]models.ShoppingItem, 0, len(names))
	for _, n := range names {
		items = append(items, models.ShoppingItem{
			ID:        n.id,
			Name:      n.name,
			Category:  n.category,
			Priority:  n.priority,
			AddedDate: now,
		})
	}
	return items
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// newItemID generates a time-based id with a random suffix. Collisions are
// treated as negligible, not formally prevented.
func newItemID(now time.Time) string {
	var suffix strings.Builder
	for range 9 {
		suffix.WriteByte(idAlphabet[rand.IntN(len(idAlphabet))])
	}
	return "item_" + strconv.FormatInt(now.UnixMilli(), 10) + "_" + suffix.String()
}

// ShoppingList returns all shopping items in storage order. The first read
// with nothing stored seeds and persists the default list; a corrupt value
// is reseeded the same way.
func (db *DB) ShoppingList() ([]models.ShoppingItem, error) {
	var items []models.ShoppingItem
	found, err := db.getJSON(keyShoppingList, &items)
	if err != nil {
		return nil, err
	}
	if !found {
		items = defaultShoppingItems(db.now())
		if err := db.putJSON(keyShoppingList, items); err != nil {
			return nil, err
		}
	}
	return items, nil
}

// FilteredShoppingList returns the items matching the filter, in storage
// order.
func (db *DB) FilteredShoppingList(filter ItemFilter) ([]models.ShoppingItem, error) {
	items, err := db.ShoppingList()
	if err != nil {
		return nil, err
	}

	filtered := make([]models.ShoppingItem, 0, len(items))
	for _, item := range items {
		if filter.matches(item) {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

// SortForDisplay orders items for presentation: priority items first, then
// unchecked before checked, otherwise keeping storage order. The slice is
// sorted in place.
func SortForDisplay(items []models.ShoppingItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Priority != items[j].Priority {
			return items[i].Priority
		}
		if items[i].Checked != items[j].Checked {
			return !items[i].Checked
		}
		return false
	})
}

// AddShoppingItem appends a new unchecked item with a generated id and
// returns it.
func (db *DB) AddShoppingItem(name, category string, priority bool) (models.ShoppingItem, error) {
	items, err := db.ShoppingList()
	if err != nil {
		return models.ShoppingItem{}, err
	}

	item := models.ShoppingItem{
		ID:        newItemID(db.now()),
		Name:      name,
		Category:  category,
		Priority:  priority,
		Checked:   false,
		AddedDate: db.now(),
	}
	items = append(items, item)
	if err := db.putJSON(keyShoppingList, items); err != nil {
		return models.ShoppingItem{}, err
	}
	return item, nil
}

// EditShoppingItem updates an item's name, category, and priority in place,
// leaving checked state and the added date untouched. An unknown id is a
// silent no-op.
func (db *DB) EditShoppingItem(id, name, category string, priority bool) error {
	items, err := db.ShoppingList()
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ID == id {
			items[i].Name = name
			items[i].Category = category
			items[i].Priority = priority
			return db.putJSON(keyShoppingList, items)
		}
	}
	return nil
}

// ToggleShoppingItem flips an item's checked flag. An unknown id is a
// silent no-op.
func (db *DB) ToggleShoppingItem(id string) error {
	items, err := db.ShoppingList()
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ID == id {
			items[i].Checked = !items[i].Checked
			return db.putJSON(keyShoppingList, items)
		}
	}
	return nil
}

// RemoveShoppingItem deletes the matching item. An unknown id is a silent
// no-op.
func (db *DB) RemoveShoppingItem(id string) error {
	items, err := db.ShoppingList()
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ID == id {
			items = append(items[:i], items[i+1:]...)
			return db.putJSON(keyShoppingList, items)
		}
	}
	return nil
}
