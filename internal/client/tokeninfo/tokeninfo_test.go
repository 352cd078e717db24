package tokeninfo

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("any-secret"))
	require.NoError(t, err)
	return s
}

func TestInspect_ReadsRegisteredClaims(t *testing.T) {
	iat := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	exp := iat.Add(10 * time.Hour)
	tok := sign(t, jwt.RegisteredClaims{
		Subject:   "ada@example.com",
		IssuedAt:  jwt.NewNumericDate(iat),
		ExpiresAt: jwt.NewNumericDate(exp),
	})

	for _, in := range []string{tok, "Bearer " + tok} {
		info, err := Inspect(models.AuthToken(in))
		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", info.Subject)
		assert.True(t, iat.Equal(info.IssuedAt))
		assert.True(t, exp.Equal(info.ExpiresAt))
	}
}

func TestInspect_MissingTimes(t *testing.T) {
	info, err := Inspect(models.AuthToken(sign(t, jwt.RegisteredClaims{Subject: "x"})))
	require.NoError(t, err)
	assert.True(t, info.IssuedAt.IsZero())
	assert.True(t, info.ExpiresAt.IsZero())
	assert.False(t, info.Expired(time.Now()))
}

func TestInspect_NotJWT(t *testing.T) {
	for _, in := range []string{"", "opaque-token", "a.b", "bad.!!!.sig"} {
		_, err := Inspect(models.AuthToken(in))
		require.ErrorIs(t, err, ErrNotJWT, "input %q", in)
	}
}

func TestInfo_Expired(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, Info{ExpiresAt: now.Add(-time.Second)}.Expired(now))
	assert.True(t, Info{ExpiresAt: now}.Expired(now))
	assert.False(t, Info{ExpiresAt: now.Add(time.Second)}.Expired(now))
	assert.False(t, Info{}.Expired(now))
}
