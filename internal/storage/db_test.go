package storage

import (
	"testing"

	"family-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewDB(":memory:")
	require.NoError(t, err, "failed to create test database")
	t.Cleanup(func() { db.Close() })
	return db
}

func TestThemeDefaultsToLight(t *testing.T) {
	db := newTestDB(t)
	assert.Equal(t, models.ThemeLight, db.Theme())
}

func TestToggleTheme(t *testing.T) {
	db := newTestDB(t)

	theme, err := db.ToggleTheme()
	require.NoError(t, err)
	assert.Equal(t, models.ThemeDark, theme)
	assert.Equal(t, models.ThemeDark, db.Theme())

	theme, err = db.ToggleTheme()
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, theme)
}

func TestCorruptThemeFallsBack(t *testing.T) {
	db := newTestDB(t)

	_, err := db.conn.Exec("INSERT INTO kv (key, value) VALUES (?, ?)", keyTheme, `"neon"`)
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, db.Theme(), "unknown theme values degrade to light")
}

func TestPutOverwritesExistingKey(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.putJSON("k", "first"))
	require.NoError(t, db.putJSON("k", "second"))

	var got string
	found, err := db.getJSON("k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "second", got)
}

func TestDeleteKeyIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.putJSON("k", 42))
	require.NoError(t, db.deleteKey("k"))
	require.NoError(t, db.deleteKey("k"))

	var got int
	found, err := db.getJSON("k", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestExportDataGathersEverything(t *testing.T) {
	db := newTestDB(t)

	_, err := db.UpsertUser("Amina", "Krouma")
	require.NoError(t, err)

	export, err := db.ExportData()
	require.NoError(t, err)

	assert.Len(t, export.Users, 1)
	assert.Len(t, export.ShoppingList, 5, "export seeds the default list on a fresh store")
	assert.False(t, export.ExportDate.IsZero())
}
