package jwttoken

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManager(t *testing.T) *Manager {
	t.Helper()

	key := []byte("0123456789abcdef0123456789abcdef")
	m, err := New(Config{
		Issuer:     "auxillium",
		Audience:   "auxillium-app",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 7 * 24 * time.Hour,
	}, key)
	require.NoError(t, err)
	return m
}

func TestIssueAndVerifyAccess(t *testing.T) {
	m := testManager(t)

	userID := uuid.New()
	sessionID := uuid.New()

	tok, err := m.IssueAccess(userID, &sessionID)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := m.Verify(tok)
	require.NoError(t, err)

	assert.Equal(t, TokenTypeAccess, claims.Type)
	assert.Equal(t, userID, claims.UserID)
	require.NotNil(t, claims.SessionID)
	assert.Equal(t, sessionID, *claims.SessionID)
	assert.Equal(t, "auxillium", claims.Issuer)
	assert.False(t, claims.IsExpired())
}

func TestIssueRefreshWithoutSession(t *testing.T) {
	m := testManager(t)

	tok, err := m.IssueRefresh(uuid.New(), nil)
	require.NoError(t, err)

	claims, err := m.Verify(tok)
	require.NoError(t, err)

	assert.Equal(t, TokenTypeRefresh, claims.Type)
	assert.Nil(t, claims.SessionID)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := testManager(t)

	_, err := m.Verify("not-a-token")
	require.Error(t, err)
	assert.ErrorAs(t, err, &ErrInvalidToken{})
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	m := testManager(t)

	other, err := New(Config{
		Issuer:   "auxillium",
		Audience: "auxillium-app",
	}, []byte("ffffffffffffffffffffffffffffffff"))
	require.NoError(t, err)

	tok, err := other.IssueAccess(uuid.New(), nil)
	require.NoError(t, err)

	_, err = m.Verify(tok)
	require.Error(t, err)
}

func TestVerifyRejectsExpired(t *testing.T) {
	key := []byte("0123456789abcdef0123456789abcdef")
	m, err := New(Config{
		Issuer:     "auxillium",
		Audience:   "auxillium-app",
		AccessTTL:  -time.Minute,
		RefreshTTL: 7 * 24 * time.Hour,
	}, key)
	require.NoError(t, err)

	// AccessTTL <= 0 falls back to the default, so issue with the
	// refresh path and an expired manager config instead.
	expired, err := New(Config{
		Issuer:   "auxillium",
		Audience: "auxillium-app",
	}, key)
	require.NoError(t, err)

	tok, err := expired.issue(TokenTypeAccess, uuid.New(), nil, -time.Minute)
	require.NoError(t, err)

	_, err = m.Verify(tok)
	require.Error(t, err)
}

func TestNewValidation(t *testing.T) {
	key := []byte("k")

	_, err := New(Config{Audience: "a"}, key)
	require.Error(t, err)

	_, err = New(Config{Issuer: "i"}, key)
	require.Error(t, err)

	_, err = New(Config{Issuer: "i", Audience: "a"}, nil)
	require.Error(t, err)
}
