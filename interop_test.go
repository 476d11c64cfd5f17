package jwtdecode

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const interopSigningKey = "0123456789abcdef0123456789abcdef"

// Tokens minted by golang-jwt, the ecosystem's standard signing library,
// must decode cleanly here even though the signature is never checked.
func TestDecodeGolangJWTToken(t *testing.T) {
	now := time.Now()
	exp := now.Add(time.Hour)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss":  "jwtdecode-test",
		"sub":  "user-42",
		"aud":  "api",
		"exp":  exp.Unix(),
		"iat":  now.Unix(),
		"jti":  "token-1",
		"role": "admin",
	})
	signed, err := token.SignedString([]byte(interopSigningKey))
	require.NoError(t, err)

	require.True(t, IsValidFormat(signed))

	claims, err := DecodePayload(signed)
	require.NoError(t, err)

	iss, ok := claims.Issuer()
	require.True(t, ok)
	assert.Equal(t, "jwtdecode-test", iss)

	sub, ok := claims.Subject()
	require.True(t, ok)
	assert.Equal(t, "user-42", sub)

	aud, ok := claims.Audience()
	require.True(t, ok)
	assert.Equal(t, []string{"api"}, aud)

	role, ok := Claim[string](claims, "role")
	require.True(t, ok)
	assert.Equal(t, "admin", role)

	date, err := ExpirationDate(signed)
	require.NoError(t, err)
	assert.Equal(t, exp.Unix(), date.Unix())

	assert.False(t, IsExpired(signed, 0))

	remaining, err := RemainingTime(signed)
	require.NoError(t, err)
	assert.Greater(t, remaining, 59*time.Minute)
	assert.LessOrEqual(t, remaining, time.Hour)
}

func TestDecodeAgreesWithGolangJWT(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub":    "cross-check",
		"nested": map[string]any{"k": []any{"v", 2}},
		"n":      3.5,
	})
	signed, err := token.SignedString([]byte(interopSigningKey))
	require.NoError(t, err)

	decoded, err := Decode(signed)
	require.NoError(t, err)
	assert.Equal(t, "HS512", decoded.Algorithm())
	assert.Equal(t, "JWT", decoded.Type())
	assert.Equal(t, signed, decoded.Raw)

	reference := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(signed, reference)
	require.NoError(t, err)

	assert.Equal(t, map[string]any(reference), map[string]any(decoded.Payload))
}

func TestExpiredGolangJWTToken(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "late",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	signed, err := token.SignedString([]byte(interopSigningKey))
	require.NoError(t, err)

	assert.True(t, IsExpired(signed, 0))

	remaining, err := RemainingTime(signed)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), remaining)
}
