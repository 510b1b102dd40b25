package storage

import (
	"time"

	"family-dashboard/internal/auth"
	"family-dashboard/internal/models"
)

// SessionTimeout is the inactivity window after which a session expires.
const SessionTimeout = 30 * time.Minute

// Login validates the name pair, records the login in the user directory,
// and stores the user session plus a fresh activity timestamp. When remember
// is set the name pair is kept for prefilling the next login; otherwise any
// remembered pair is cleared. Returns a *auth.ValidationError on bad input.
func (db *DB) Login(firstName, lastName string, remember bool) (models.UserSession, error) {
	if verr := auth.ValidateLogin(firstName, lastName); verr != nil {
		return models.UserSession{}, verr
	}

	user, err := db.UpsertUser(firstName, lastName)
	if err != nil {
		return models.UserSession{}, err
	}

	session := models.UserSession{
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		LastLogin:  user.LastLogin,
		LoginCount: user.LoginCount,
	}
	if err := db.putJSON(keyCurrentUser, session); err != nil {
		return models.UserSession{}, err
	}
	if err := db.Touch(); err != nil {
		return models.UserSession{}, err
	}

	if remember {
		err = db.putJSON(keyRememberMe, models.RememberedUser{
			FirstName: user.FirstName,
			LastName:  user.LastName,
		})
	} else {
		err = db.deleteKey(keyRememberMe)
	}
	if err != nil {
		return models.UserSession{}, err
	}

	return session, nil
}

// AdminLogin checks the supplied password against the configured hash and,
// on success, stores a fresh admin session. Returns a *auth.AuthError on
// mismatch.
func (db *DB) AdminLogin(password, passwordHash string) (models.AdminSession, error) {
	if err := auth.CheckAdminPassword(password, passwordHash); err != nil {
		return models.AdminSession{}, err
	}

	now := db.now()
	session := models.AdminSession{
		IsAdmin:      true,
		LoginTime:    now,
		LastActivity: now.UnixMilli(),
	}
	if err := db.putJSON(keyAdminSession, session); err != nil {
		return models.AdminSession{}, err
	}
	return session, nil
}

// CurrentUser returns the logged-in user session, if any.
func (db *DB) CurrentUser() (models.UserSession, bool, error) {
	var session models.UserSession
	found, err := db.getJSON(keyCurrentUser, &session)
	return session, found, err
}

// AdminSession returns the stored admin session, if any.
func (db *DB) AdminSession() (models.AdminSession, bool, error) {
	var session models.AdminSession
	found, err := db.getJSON(keyAdminSession, &session)
	return session, found, err
}

// RememberedUser returns the name pair saved by "remember me", if any.
func (db *DB) RememberedUser() (models.RememberedUser, bool) {
	var remembered models.RememberedUser
	found, _ := db.getJSON(keyRememberMe, &remembered)
	return remembered, found
}

// Touch refreshes the activity timestamp to now. Called on every qualifying
// user interaction; an admin session's own timestamp is refreshed alongside.
func (db *DB) Touch() error {
	now := db.now()
	if err := db.putJSON(keyLastActivity, now.UnixMilli()); err != nil {
		return err
	}

	if session, found, err := db.AdminSession(); err == nil && found {
		session.LastActivity = now.UnixMilli()
		return db.putJSON(keyAdminSession, session)
	}
	return nil
}

// LastActivity returns the stored activity timestamp, if any.
func (db *DB) LastActivity() (time.Time, bool) {
	var millis int64
	found, err := db.getJSON(keyLastActivity, &millis)
	if err != nil || !found {
		return time.Time{}, false
	}
	return time.UnixMilli(millis), true
}

// SessionValid reports whether the user session is still within the
// inactivity timeout. A missing activity timestamp means no valid session.
func (db *DB) SessionValid() bool {
	last, found := db.LastActivity()
	if !found {
		return false
	}
	return db.now().Sub(last) <= SessionTimeout
}

// AdminSessionValid reports whether an admin session exists and is still
// within the inactivity timeout.
func (db *DB) AdminSessionValid() bool {
	session, found, err := db.AdminSession()
	if err != nil || !found || !session.IsAdmin {
		return false
	}
	return db.now().Sub(time.UnixMilli(session.LastActivity)) <= SessionTimeout
}

// Logout clears the user session and its activity timestamp.
func (db *DB) Logout() error {
	if err := db.deleteKey(keyCurrentUser); err != nil {
		return err
	}
	return db.deleteKey(keyLastActivity)
}

// AdminLogout clears the admin session.
func (db *DB) AdminLogout() error {
	return db.deleteKey(keyAdminSession)
}
