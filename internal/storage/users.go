package storage

import (
	"log"
	"strings"
	"time"

	"family-dashboard/internal/models"
)

// ActiveWindow is how recently a member must have logged in to count as
// active in the family overview.
const ActiveWindow = 7 * 24 * time.Hour

// Users returns all family members in insertion order. A missing or
// corrupt value yields an empty directory.
func (db *DB) Users() ([]models.User, error) {
	var users []models.User
	if _, err := db.getJSON(keyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpsertUser records a login for the given name pair. Identity matching is
// case-insensitive: an existing member gets loginCount incremented and
// lastLogin refreshed, a new member is appended with loginCount 1. The
// resulting record is returned.
func (db *DB) UpsertUser(firstName, lastName string) (models.User, error) {
	users, err := db.Users()
	if err != nil {
		return models.User{}, err
	}

	now := db.now()
	for i := range users {
		if strings.EqualFold(users[i].FirstName, firstName) &&
			strings.EqualFold(users[i].LastName, lastName) {
			users[i].LoginCount++
			users[i].LastLogin = now
			if err := db.putJSON(keyUsers, users); err != nil {
				return models.User{}, err
			}
			return users[i], nil
		}
	}

	user := models.User{
		FirstName:  firstName,
		LastName:   lastName,
		LastLogin:  now,
		LoginCount: 1,
	}
	users = append(users, user)
	if err := db.putJSON(keyUsers, users); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// UserCount returns the number of family members on record.
func (db *DB) UserCount() (int, error) {
	users, err := db.Users()
	if err != nil {
		return 0, err
	}
	return len(users), nil
}

// UserActive reports whether a member logged in within the active window.
func (db *DB) UserActive(u models.User) bool {
	return db.now().Sub(u.LastLogin) <= ActiveWindow
}

// LoginsOnDay counts members whose most recent login fell on the calendar
// day containing t. Used for the admin activity chart.
func (db *DB) LoginsOnDay(t time.Time) int {
	users, err := db.Users()
	if err != nil {
		log.Printf("storage: counting logins: %v", err)
		return 0
	}

	y, m, d := t.Date()
	count := 0
	for _, u := range users {
		uy, um, ud := u.LastLogin.Date()
		if uy == y && um == m && ud == d {
			count++
		}
	}
	return count
}
