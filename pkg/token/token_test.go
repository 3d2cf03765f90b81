package token

import (
	"testing"
	"time"

	"find-fuel/pkg/apperrors"
	"find-fuel/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManager() *Manager {
	return NewManager(utils.JWTConfig{
		Secret:              "unit-test-secret",
		AccessExpiryMinutes: 15,
		RefreshExpiryDays:   7,
	})
}

func TestIssueAccess_ParseRoundTrip(t *testing.T) {
	m := testManager()

	signed, expiresAt, err := m.IssueAccess("maria", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, signed)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, 5*time.Second)

	claims, err := m.Parse(signed, TypeAccess)
	require.NoError(t, err)
	assert.Equal(t, "maria", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, TypeAccess, claims.Type)
}

func TestIssueRefresh_CarriesNoRole(t *testing.T) {
	m := testManager()

	signed, expiresAt, err := m.IssueRefresh("maria")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), expiresAt, 5*time.Second)

	claims, err := m.Parse(signed, TypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, "maria", claims.Subject)
	assert.Empty(t, claims.Role)
}

func TestParse_WrongTokenType(t *testing.T) {
	m := testManager()

	access, _, err := m.IssueAccess("maria", "user")
	require.NoError(t, err)
	refresh, _, err := m.IssueRefresh("maria")
	require.NoError(t, err)

	// Refresh where access is required, and vice versa
	_, err = m.Parse(refresh, TypeAccess)
	assert.ErrorIs(t, err, apperrors.ErrWrongTokenType)

	_, err = m.Parse(access, TypeRefresh)
	assert.ErrorIs(t, err, apperrors.ErrWrongTokenType)
}

func TestParse_Expired(t *testing.T) {
	expired := NewManager(utils.JWTConfig{
		Secret:              "unit-test-secret",
		AccessExpiryMinutes: -1,
		RefreshExpiryDays:   7,
	})

	signed, _, err := expired.IssueAccess("maria", "user")
	require.NoError(t, err)

	_, err = testManager().Parse(signed, TypeAccess)
	assert.ErrorIs(t, err, apperrors.ErrExpiredToken)
}

func TestParse_TamperedSignature(t *testing.T) {
	m := testManager()
	other := NewManager(utils.JWTConfig{
		Secret:              "a-different-secret",
		AccessExpiryMinutes: 15,
		RefreshExpiryDays:   7,
	})

	signed, _, err := other.IssueAccess("maria", "user")
	require.NoError(t, err)

	_, err = m.Parse(signed, TypeAccess)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestParse_Garbage(t *testing.T) {
	_, err := testManager().Parse("not.a.token", TypeAccess)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
