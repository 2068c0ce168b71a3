package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/field-checkin/internal/models"
)

func TestGenerateAndParse(t *testing.T) {
	tm := NewTokenManager("secret", "field-checkin", time.Hour)
	user := models.User{ID: 42, Name: "Asha", Email: "asha@example.com", Role: models.RoleManager, PasswordHash: "hash"}

	token, err := tm.Generate(user)
	require.NoError(t, err)
	assert.NotContains(t, token, "hash")

	id, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, Identity{UserID: 42, Name: "Asha", Email: "asha@example.com", Role: models.RoleManager}, id)
	assert.True(t, id.IsManager())
}

func TestParseRejects(t *testing.T) {
	tm := NewTokenManager("secret", "field-checkin", time.Hour)
	user := models.User{ID: 7, Role: models.RoleEmployee}

	valid, err := tm.Generate(user)
	require.NoError(t, err)

	wrongSecret, err := NewTokenManager("other", "field-checkin", time.Hour).Generate(user)
	require.NoError(t, err)

	wrongIssuer, err := NewTokenManager("secret", "someone-else", time.Hour).Generate(user)
	require.NoError(t, err)

	expiredManager := NewTokenManager("secret", "field-checkin", time.Hour)
	expiredManager.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := expiredManager.Generate(user)
	require.NoError(t, err)

	badRole, err := tm.Generate(models.User{ID: 7, Role: "admin"})
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "7", "role": "manager", "iss": "field-checkin"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":      "not-a-token",
		"wrong secret": wrongSecret,
		"wrong issuer": wrongIssuer,
		"expired":      expired,
		"bad role":     badRole,
		"alg none":     none,
		"tampered":     valid + "x",
	} {
		_, err := tm.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken, name)
	}
}

func TestIdentityContext(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	ctx := WithIdentity(context.Background(), Identity{UserID: 3, Role: models.RoleEmployee})
	id, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, int64(3), id.UserID)
	assert.False(t, id.IsManager())
}
