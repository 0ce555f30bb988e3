package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-service/internal/apperr"
)

const testSecret = "local-test-secret"

func mintToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	if _, ok := claims["exp"]; !ok {
		claims["exp"] = time.Now().Add(time.Hour).Unix()
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestLocalResolveFromUIDClaim(t *testing.T) {
	svc := NewLocalAuthService(testSecret)
	token := mintToken(t, testSecret, jwt.MapClaims{
		"uid": 42, "username": "ana", "role": "Tourist",
	})

	identity, err := svc.Resolve(context.Background(), "Bearer "+token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, identity.UserID)
	assert.Equal(t, "ana", identity.Username)
	assert.Equal(t, "Tourist", identity.Role)
}

func TestLocalResolveSubjectFallback(t *testing.T) {
	svc := NewLocalAuthService(testSecret)
	token := mintToken(t, testSecret, jwt.MapClaims{
		"sub": "7", "username": "marko", "role": "Guide",
	})

	identity, err := svc.Resolve(context.Background(), "Bearer "+token)
	require.NoError(t, err)
	assert.EqualValues(t, 7, identity.UserID)
}

func TestLocalResolveFailures(t *testing.T) {
	svc := NewLocalAuthService(testSecret)

	cases := map[string]string{
		"no header":      "",
		"not bearer":     "Basic abc",
		"garbage token":  "Bearer not-a-jwt",
		"wrong secret":   "Bearer " + mintToken(t, "other-secret", jwt.MapClaims{"uid": 1, "role": "Tourist"}),
		"missing role":   "Bearer " + mintToken(t, testSecret, jwt.MapClaims{"uid": 1}),
		"missing uid":    "Bearer " + mintToken(t, testSecret, jwt.MapClaims{"role": "Tourist"}),
		"non-numeric id": "Bearer " + mintToken(t, testSecret, jwt.MapClaims{"sub": "abc", "role": "Tourist"}),
	}
	for name, header := range cases {
		_, err := svc.Resolve(context.Background(), header)
		assert.True(t, apperr.IsKind(err, apperr.KindForbidden), "%s: got %v", name, err)
	}
}

func TestLocalResolveExpiredToken(t *testing.T) {
	svc := NewLocalAuthService(testSecret)
	token := mintToken(t, testSecret, jwt.MapClaims{
		"uid": 1, "role": "Tourist", "exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err := svc.Resolve(context.Background(), "Bearer "+token)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
}
