package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-cms-backend/errs"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"), time.Hour)

	userID := uuid.New()
	token, err := svc.Issue(userID, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestTokenExpired(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"), -time.Minute)

	token, err := svc.Issue(uuid.New(), "alice")
	require.NoError(t, err)

	_, err = svc.Parse(token)
	require.Error(t, err)
	assert.True(t, errs.IsExpiredTokenError(err))
}

func TestTokenTampered(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"), time.Hour)

	token, err := svc.Issue(uuid.New(), "alice")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = svc.Parse(tampered)
	require.Error(t, err)
	assert.True(t, errs.IsInvalidTokenError(err))
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenService([]byte("secret-one"), time.Hour)
	verifier := NewTokenService([]byte("secret-two"), time.Hour)

	token, err := issuer.Issue(uuid.New(), "alice")
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	require.Error(t, err)
	assert.True(t, errs.IsInvalidTokenError(err))
}

func TestTokenGarbage(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"), time.Hour)

	_, err := svc.Parse("not-a-token")
	require.Error(t, err)
	assert.True(t, errs.IsInvalidTokenError(err))
}
