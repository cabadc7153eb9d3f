package jwtutil

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUtil() *JWTUtil {
	return NewJWTUtil(&JWTConfig{SigningKey: "test-key", ExpirationHours: 1})
}

func TestGenerateAndValidate(t *testing.T) {
	j := newTestUtil()

	token, err := j.GenerateToken(42, "grower@farm.test")
	require.NoError(t, err)

	claims, err := j.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "grower@farm.test", claims.Email)
	assert.Equal(t, "42", claims.Subject)
}

func TestValidateTokenFailures(t *testing.T) {
	j := newTestUtil()
	good, err := j.GenerateToken(7, "a@b.c")
	require.NoError(t, err)

	expired := newTestUtil()
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken, err := expired.GenerateToken(7, "a@b.c")
	require.NoError(t, err)

	other := NewJWTUtil(&JWTConfig{SigningKey: "other-key", ExpirationHours: 1})
	foreign, err := other.GenerateToken(7, "a@b.c")
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, UserClaims{UserID: 7})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "malformed", token: "not-a-token"},
		{name: "tampered", token: good + "x"},
		{name: "expired", token: expiredToken},
		{name: "wrong key", token: foreign},
		{name: "alg none", token: unsigned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := j.ValidateToken(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestMissingConfig(t *testing.T) {
	j := NewJWTUtil(nil)
	_, err := j.GenerateToken(1, "a@b.c")
	assert.Error(t, err)
	_, err = j.ValidateToken("x")
	assert.Error(t, err)
}
