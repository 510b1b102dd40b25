package models

import (
	"strings"
	"time"
)

// User is a family member record, created the first time someone logs in
// with a given (first name, last name) pair.
type User struct {
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	LastLogin  time.Time `json:"lastLogin"`
	LoginCount int       `json:"loginCount"`
}

// FullName returns "First Last".
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Initials returns the upper-cased first letters of both names.
func (u User) Initials() string {
	initials := ""
	if u.FirstName != "" {
		initials += string([]rune(u.FirstName)[0])
	}
	if u.LastName != "" {
		initials += string([]rune(u.LastName)[0])
	}
	return strings.ToUpper(initials)
}

// UserSession is the ephemeral record of the currently logged-in family
// member. Validity is governed by the separately stored activity timestamp.
type UserSession struct {
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	LastLogin  time.Time `json:"lastLogin"`
	LoginCount int       `json:"loginCount"`
}

// AdminSession marks an active admin login.
type AdminSession struct {
	IsAdmin      bool      `json:"isAdmin"`
	LoginTime    time.Time `json:"loginTime"`
	LastActivity int64     `json:"lastActivity"` // unix milliseconds
}

// RememberedUser is the name pair stored when "remember me" is checked.
type RememberedUser struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
