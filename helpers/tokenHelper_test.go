package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("SECRET_KEY", "unit-test-secret")

	token, refreshToken, err := GenerateAllTokens("ana@example.com", "Ana", "abc123", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, refreshToken)
	assert.NotEqual(t, token, refreshToken)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, "Ana", claims.Name)
	assert.Equal(t, "abc123", claims.Uid)
	assert.Equal(t, "admin", claims.Role)
}

func TestRefreshTokenCarriesOnlyUid(t *testing.T) {
	t.Setenv("SECRET_KEY", "unit-test-secret")

	_, refreshToken, err := GenerateAllTokens("ana@example.com", "Ana", "abc123", "admin")
	require.NoError(t, err)

	claims, err := ValidateToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, "abc123", claims.Uid)
	assert.Empty(t, claims.Email)
	assert.Empty(t, claims.Role)
}

func TestValidateToken_Garbage(t *testing.T) {
	t.Setenv("SECRET_KEY", "unit-test-secret")

	_, err := ValidateToken("not.a.jwt")
	assert.Error(t, err)
}

func TestValidateToken_WrongKey(t *testing.T) {
	t.Setenv("SECRET_KEY", "unit-test-secret")
	token, _, err := GenerateAllTokens("ana@example.com", "Ana", "abc123", "customer")
	require.NoError(t, err)

	t.Setenv("SECRET_KEY", "rotated-secret")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}
