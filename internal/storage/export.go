package storage

import (
	"time"

	"family-dashboard/internal/models"
)

// Export is the JSON document produced by the data export: a snapshot of
// everything the household has stored.
type Export struct {
	Users        []models.User                 `json:"users"`
	Meals        map[string]models.DayMealPlan `json:"meals"`
	ShoppingList []models.ShoppingItem         `json:"shoppingList"`
	ExportDate   time.Time                     `json:"exportDate"`
}

// ExportData gathers all stored household data into one document. The
// shopping list read seeds defaults on a fresh store, like any other read.
func (db *DB) ExportData() (Export, error) {
	users, err := db.Users()
	if err != nil {
		return Export{}, err
	}
	meals, err := db.Meals()
	if err != nil {
		return Export{}, err
	}
	items, err := db.ShoppingList()
	if err != nil {
		return Export{}, err
	}

	return Export{
		Users:        users,
		Meals:        meals,
		ShoppingList: items,
		ExportDate:   db.now(),
	}, nil
}
