// Package auth validates login input and checks the shared admin password.
//
// The password scheme is deliberately a toy: the stored "hash" is plain
// base64 of the password. This app runs on a trusted home network and makes
// no real security claims.
package auth

import (
	"encoding/base64"
	"regexp"
	"strings"
)

// Names must be 2-30 characters of letters, spaces, or hyphens.
var namePattern = regexp.MustCompile(`^[a-zA-Z\s-]{2,30}$`)

// ValidationError reports malformed login input with one message per field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, field+": "+msg)
	}
	return "invalid login: " + strings.Join(msgs, "; ")
}

// AuthError reports a rejected admin password.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return e.Reason
}

// ValidName reports whether name matches the name-shape rule.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// ValidateLogin checks both names and returns a ValidationError listing
// every failing field, or nil if the pair is acceptable.
func ValidateLogin(firstName, lastName string) *ValidationError {
	fields := map[string]string{}

	if strings.TrimSpace(firstName) == "" {
		fields["firstName"] = "First name is required"
	} else if !ValidName(firstName) {
		fields["firstName"] = "Please enter a valid first name"
	}

	if strings.TrimSpace(lastName) == "" {
		fields["lastName"] = "Last name is required"
	} else if !ValidName(lastName) {
		fields["lastName"] = "Please enter a valid last name"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// HashPassword encodes a password as base64. See the package comment for
// why this is not a real hash.
func HashPassword(password string) string {
	return base64.StdEncoding.EncodeToString([]byte(password))
}

// CheckAdminPassword compares a supplied password against the stored hash.
// It returns an AuthError on mismatch or empty input.
func CheckAdminPassword(password, hash string) error {
	if password == "" {
		return &AuthError{Reason: "Password is required"}
	}
	if HashPassword(password) != hash {
		return &AuthError{Reason: "Incorrect password"}
	}
	return nil
}
