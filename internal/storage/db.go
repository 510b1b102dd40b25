// Package storage is the household data core: users, sessions, meal plans,
// and the shopping list, all persisted as JSON values under fixed keys in a
// single sqlite-backed key-value table.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"time"

	"family-dashboard/internal/models"

	// Import sqlite driver
	_ "modernc.org/sqlite"
)

// Fixed keys of the persisted state layout.
const (
	keyUsers        = "users"
	keyCurrentUser  = "current_user"
	keyAdminSession = "admin_session"
	keyLastActivity = "last_activity"
	keyRememberMe   = "remember_me"
	keyMeals        = "meals"
	keyShoppingList = "shopping_list"
	keyTheme        = "theme"
)

// DB wraps a sql.DB connection holding the key-value table.
type DB struct {
	conn *sql.DB

	// now is swapped out in tests to simulate clock advancement.
	now func() time.Time
}

// NewDB opens a database connection and runs migrations.
func NewDB(path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := conn.Ping(); err != nil {
		return nil, err
	}

	db := &DB{conn: conn, now: time.Now}
	if err := db.migrate(); err != nil {
		return nil, err
	}

	return db, nil
}

func (db *DB) migrate() error {
	_, err := db.conn.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`)
	return err
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// getJSON loads and decodes the value under key into v. It reports whether a
// usable value was found. A corrupted value is logged and treated as absent,
// so callers degrade to their defaults instead of failing.
func (db *DB) getJSON(key string, v any) (bool, error) {
	var raw string
	err := db.conn.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(raw), v); err != nil {
		log.Printf("storage: discarding corrupt value under %q: %v", key, err)
		return false, nil
	}
	return true, nil
}

// putJSON encodes v and stores it under key, replacing any existing value.
func (db *DB) putJSON(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = db.conn.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, string(raw))
	return err
}

// deleteKey removes the value under key. Absent keys are a no-op.
func (db *DB) deleteKey(key string) error {
	_, err := db.conn.Exec("DELETE FROM kv WHERE key = ?", key)
	return err
}

// Theme returns the stored UI theme, defaulting to light.
func (db *DB) Theme() string {
	var theme string
	found, err := db.getJSON(keyTheme, &theme)
	if err != nil {
		log.Printf("storage: reading theme: %v", err)
	}
	if !found || (theme != models.ThemeLight && theme != models.ThemeDark) {
		return models.ThemeLight
	}
	return theme
}

// SetTheme stores the UI theme.
func (db *DB) SetTheme(theme string) error {
	return db.putJSON(keyTheme, theme)
}

// ToggleTheme flips between light and dark and returns the new theme.
func (db *DB) ToggleTheme() (string, error) {
	next := models.ThemeDark
	if db.Theme() == models.ThemeDark {
		next = models.ThemeLight
	}
	return next, db.SetTheme(next)
}
