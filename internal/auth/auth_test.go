package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"simple name", "Amina", true},
		{"hyphenated", "Jean-Pierre", true},
		{"with space", "Mary Ann", true},
		{"minimum length", "Al", true},
		{"too short", "A", false},
		{"too long", "Abcdefghijklmnopqrstuvwxyzabcde", false},
		{"digits", "Amina2", false},
		{"punctuation", "O'Brien", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidName(tt.input))
		})
	}
}

func TestValidateLogin(t *testing.T) {
	assert.Nil(t, ValidateLogin("Amina", "Krouma"))

	verr := ValidateLogin("", "Krouma")
	require.NotNil(t, verr)
	assert.Equal(t, "First name is required", verr.Fields["firstName"])
	assert.NotContains(t, verr.Fields, "lastName")

	verr = ValidateLogin("A1", "  ")
	require.NotNil(t, verr)
	assert.Equal(t, "Please enter a valid first name", verr.Fields["firstName"])
	assert.Equal(t, "Last name is required", verr.Fields["lastName"])
	assert.Contains(t, verr.Error(), "invalid login")
}

func TestCheckAdminPassword(t *testing.T) {
	hash := HashPassword("admin123")

	assert.NoError(t, CheckAdminPassword("admin123", hash))

	err := CheckAdminPassword("wrong", hash)
	require.Error(t, err)
	aerr, ok := err.(*AuthError)
	require.True(t, ok)
	assert.Equal(t, "Incorrect password", aerr.Reason)

	err = CheckAdminPassword("", hash)
	require.Error(t, err)
	assert.Equal(t, "Password is required", err.(*AuthError).Reason)
}
