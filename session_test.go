package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	jwtSecret = []byte("test-secret")
	os.Exit(m.Run())
}

func sessionFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "session.jwt")
}

func TestLoginEmployeeThenRehydrate(t *testing.T) {
	file := sessionFile(t)

	ss := NewSessionStore(file)
	_, err := ss.LoginEmployee(7, "Budi")
	require.NoError(t, err)

	// Proses baru dengan file yang sama
	restarted := NewSessionStore(file)
	restarted.Rehydrate()

	sess := restarted.Current()
	assert.Equal(t, RoleEmployee, sess.Role)
	assert.Equal(t, 7, sess.OperatorID)
	assert.Equal(t, "Budi", sess.OperatorName)
	assert.True(t, sess.HasOperator())
}

func TestLoginAdminThenRehydrate(t *testing.T) {
	file := sessionFile(t)

	ss := NewSessionStore(file)
	_, err := ss.LoginAdmin()
	require.NoError(t, err)

	restarted := NewSessionStore(file)
	restarted.Rehydrate()

	sess := restarted.Current()
	assert.Equal(t, RoleAdmin, sess.Role)
	// Admin tidak pernah membawa identitas kasir
	assert.Equal(t, 0, sess.OperatorID)
	assert.Empty(t, sess.OperatorName)
}

func TestRehydrateMissingFileIsUnauthenticated(t *testing.T) {
	ss := NewSessionStore(sessionFile(t))
	ss.Rehydrate()

	assert.False(t, ss.Current().Authenticated())
}

func TestRehydrateMalformedFileIsUnauthenticated(t *testing.T) {
	file := sessionFile(t)
	require.NoError(t, os.WriteFile(file, []byte("bukan token"), 0o600))

	ss := NewSessionStore(file)
	ss.Rehydrate()

	assert.False(t, ss.Current().Authenticated())
}

func TestRehydrateEmployeeWithoutOperatorIsUnauthenticated(t *testing.T) {
	// Rekaman rusak: role employee tapi tanpa identitas kasir
	file := sessionFile(t)
	token, err := GenerateToken(RoleEmployee, 0, "")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(file, []byte(token), 0o600))

	ss := NewSessionStore(file)
	ss.Rehydrate()

	assert.False(t, ss.Current().Authenticated())
}

func TestRehydrateExpiredTokenIsUnauthenticated(t *testing.T) {
	file := sessionFile(t)

	claims := Claims{
		Role:         RoleEmployee,
		OperatorID:   7,
		OperatorName: "Budi",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(file, []byte(token), 0o600))

	ss := NewSessionStore(file)
	ss.Rehydrate()

	assert.False(t, ss.Current().Authenticated())
}

func TestLogoutClearsSessionAndFile(t *testing.T) {
	file := sessionFile(t)

	ss := NewSessionStore(file)
	_, err := ss.LoginEmployee(7, "Budi")
	require.NoError(t, err)

	ss.Logout()

	assert.False(t, ss.Current().Authenticated())
	_, statErr := os.Stat(file)
	assert.True(t, os.IsNotExist(statErr))

	// Logout dari kondisi belum login juga aman
	ss.Logout()
	assert.False(t, ss.Current().Authenticated())
}

func TestLoginOverwritesPreviousSession(t *testing.T) {
	file := sessionFile(t)

	ss := NewSessionStore(file)
	_, err := ss.LoginEmployee(7, "Budi")
	require.NoError(t, err)
	_, err = ss.LoginAdmin()
	require.NoError(t, err)

	sess := ss.Current()
	assert.Equal(t, RoleAdmin, sess.Role)
	assert.Equal(t, 0, sess.OperatorID)
}

func TestCanEnterMatchesRoleExactly(t *testing.T) {
	file := sessionFile(t)

	ss := NewSessionStore(file)
	assert.False(t, ss.CanEnter(RoleAdmin))
	assert.False(t, ss.CanEnter(RoleEmployee))

	_, err := ss.LoginEmployee(7, "Budi")
	require.NoError(t, err)
	assert.True(t, ss.CanEnter(RoleEmployee))
	assert.False(t, ss.CanEnter(RoleAdmin))

	_, err = ss.LoginAdmin()
	require.NoError(t, err)
	assert.True(t, ss.CanEnter(RoleAdmin))
	assert.False(t, ss.CanEnter(RoleEmployee))
}

func TestParseTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(RoleEmployee, 7, "Budi")
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, RoleEmployee, claims.Role)
	assert.Equal(t, 7, claims.OperatorID)
	assert.Equal(t, "Budi", claims.OperatorName)
}
