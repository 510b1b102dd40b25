package storage

import (
	"testing"
	"time"

	"family-dashboard/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testAdminHash = "YWRtaW4xMjM=" // base64("admin123")

// SessionTestSuite provides a test suite for session operations with a
// controllable clock.
type SessionTestSuite struct {
	suite.Suite
	db  *DB
	now time.Time
}

// SetupTest runs before each test
func (suite *SessionTestSuite) SetupTest() {
	db, err := NewDB(":memory:")
	require.NoError(suite.T(), err, "failed to create test database")

	suite.now = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	db.now = func() time.Time { return suite.now }
	suite.db = db
}

// TearDownTest runs after each test
func (suite *SessionTestSuite) TearDownTest() {
	if suite.db != nil {
		suite.db.Close()
	}
}

func (suite *SessionTestSuite) advance(d time.Duration) {
	suite.now = suite.now.Add(d)
}

func (suite *SessionTestSuite) TestLoginStoresSession() {
	session, err := suite.db.Login("Amina", "Krouma", false)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Amina", session.FirstName)
	assert.Equal(suite.T(), 1, session.LoginCount)

	stored, found, err := suite.db.CurrentUser()
	require.NoError(suite.T(), err)
	require.True(suite.T(), found, "session should be stored")
	assert.Equal(suite.T(), session, stored)
	assert.True(suite.T(), suite.db.SessionValid(), "session should be valid right after login")
}

func (suite *SessionTestSuite) TestLoginRejectsBadNames() {
	_, err := suite.db.Login("A", "Krouma123", false)
	require.Error(suite.T(), err)

	verr, ok := err.(*auth.ValidationError)
	require.True(suite.T(), ok, "expected a ValidationError, got %T", err)
	assert.Contains(suite.T(), verr.Fields, "firstName")
	assert.Contains(suite.T(), verr.Fields, "lastName")

	_, found, err := suite.db.CurrentUser()
	require.NoError(suite.T(), err)
	assert.False(suite.T(), found, "no session should be stored after a rejected login")
}

func (suite *SessionTestSuite) TestSessionExpiresAfterTimeout() {
	_, err := suite.db.Login("Amina", "Krouma", false)
	require.NoError(suite.T(), err)

	suite.advance(SessionTimeout)
	assert.True(suite.T(), suite.db.SessionValid(), "session is still valid exactly at the timeout")

	suite.advance(time.Minute)
	assert.False(suite.T(), suite.db.SessionValid(), "session should expire past the timeout")
}

func (suite *SessionTestSuite) TestTouchKeepsSessionAlive() {
	_, err := suite.db.Login("Amina", "Krouma", false)
	require.NoError(suite.T(), err)

	suite.advance(20 * time.Minute)
	require.NoError(suite.T(), suite.db.Touch())

	suite.advance(20 * time.Minute)
	assert.True(suite.T(), suite.db.SessionValid(), "touch should have reset the inactivity window")
}

func (suite *SessionTestSuite) TestLogoutClearsSessionAndActivity() {
	_, err := suite.db.Login("Amina", "Krouma", false)
	require.NoError(suite.T(), err)

	require.NoError(suite.T(), suite.db.Logout())

	_, found, err := suite.db.CurrentUser()
	require.NoError(suite.T(), err)
	assert.False(suite.T(), found)

	_, hasActivity := suite.db.LastActivity()
	assert.False(suite.T(), hasActivity)
	assert.False(suite.T(), suite.db.SessionValid())
}

func (suite *SessionTestSuite) TestRememberMe() {
	_, err := suite.db.Login("Amina", "Krouma", true)
	require.NoError(suite.T(), err)

	remembered, ok := suite.db.RememberedUser()
	require.True(suite.T(), ok)
	assert.Equal(suite.T(), "Amina", remembered.FirstName)
	assert.Equal(suite.T(), "Krouma", remembered.LastName)

	// Logging in again without the flag clears the remembered pair.
	_, err = suite.db.Login("Amina", "Krouma", false)
	require.NoError(suite.T(), err)
	_, ok = suite.db.RememberedUser()
	assert.False(suite.T(), ok)
}

func (suite *SessionTestSuite) TestAdminLogin() {
	session, err := suite.db.AdminLogin("admin123", testAdminHash)
	require.NoError(suite.T(), err)
	assert.True(suite.T(), session.IsAdmin)
	assert.True(suite.T(), suite.db.AdminSessionValid())
}

func (suite *SessionTestSuite) TestAdminLoginWrongPassword() {
	_, err := suite.db.AdminLogin("letmein", testAdminHash)
	require.Error(suite.T(), err)

	_, ok := err.(*auth.AuthError)
	assert.True(suite.T(), ok, "expected an AuthError, got %T", err)
	assert.False(suite.T(), suite.db.AdminSessionValid())
}

func (suite *SessionTestSuite) TestAdminSessionExpires() {
	_, err := suite.db.AdminLogin("admin123", testAdminHash)
	require.NoError(suite.T(), err)

	suite.advance(SessionTimeout + time.Minute)
	assert.False(suite.T(), suite.db.AdminSessionValid())

	require.NoError(suite.T(), suite.db.AdminLogout())
	_, found, err := suite.db.AdminSession()
	require.NoError(suite.T(), err)
	assert.False(suite.T(), found)
}

func (suite *SessionTestSuite) TestTouchRefreshesAdminSession() {
	_, err := suite.db.AdminLogin("admin123", testAdminHash)
	require.NoError(suite.T(), err)

	suite.advance(25 * time.Minute)
	require.NoError(suite.T(), suite.db.Touch())

	suite.advance(25 * time.Minute)
	assert.True(suite.T(), suite.db.AdminSessionValid(), "touch should refresh the admin session too")
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}
