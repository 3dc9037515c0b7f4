package jwtinfra

import (
	"testing"
	"time"

	"github.com/go-chat-nosql/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider(t *testing.T, expiry time.Duration) *Provider {
	t.Helper()
	p, err := NewProvider(&config.Config{JWTSecret: "test-secret", JWTExpiry: expiry})
	require.NoError(t, err)
	return p
}

func TestProvider_SignVerifyRoundTrip(t *testing.T) {
	p := newTestProvider(t, time.Hour)

	token, err := p.Sign("u001")
	require.NoError(t, err)

	claims, err := p.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u001", claims.UserID)
}

func TestProvider_RejectsExpiredToken(t *testing.T) {
	p := newTestProvider(t, -time.Minute)

	token, err := p.Sign("u001")
	require.NoError(t, err)

	_, err = p.Verify(token)
	assert.Error(t, err)
}

func TestProvider_RejectsForeignSecret(t *testing.T) {
	p := newTestProvider(t, time.Hour)
	other, err := NewProvider(&config.Config{JWTSecret: "other-secret", JWTExpiry: time.Hour})
	require.NoError(t, err)

	token, err := other.Sign("u001")
	require.NoError(t, err)

	_, err = p.Verify(token)
	assert.Error(t, err)
}

func TestNewProvider_RequiresSecret(t *testing.T) {
	_, err := NewProvider(&config.Config{})
	assert.Error(t, err)
}
