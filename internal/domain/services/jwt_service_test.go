package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndExtractToken(t *testing.T) {
	svc := NewJWTService(newTestConfig())

	token, err := svc.GenerateToken(7, "ada", false)
	require.NoError(t, err)

	claims, err := svc.ExtractClaims(token)
	require.NoError(t, err)
	assert.EqualValues(t, 7, claims.UserID)
	assert.Equal(t, "ada", claims.Username)
	assert.Equal(t, RoleUser, claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
}

func TestStaffGetsAdminRole(t *testing.T) {
	svc := NewJWTService(newTestConfig())

	token, err := svc.GenerateToken(1, "admin", true)
	require.NoError(t, err)

	claims, err := svc.ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestRefreshTokenType(t *testing.T) {
	svc := NewJWTService(newTestConfig())

	refresh, err := svc.GenerateRefreshToken(7, "ada", false)
	require.NoError(t, err)

	claims, err := svc.ExtractClaims(refresh)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)
}

func TestTamperedTokenRejected(t *testing.T) {
	svc := NewJWTService(newTestConfig())

	token, err := svc.GenerateToken(7, "ada", false)
	require.NoError(t, err)

	_, err = svc.ExtractClaims(token + "x")
	assert.Error(t, err)

	_, err = svc.ExtractClaims("not-a-token")
	assert.Error(t, err)
}
