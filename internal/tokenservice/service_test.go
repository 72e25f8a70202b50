package tokenservice

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okuznetsov/blogware/internal/common"
)

func setupTokenService(t *testing.T, clock common.Clock, refreshTTL time.Duration) (*TokenService, uuid.UUID) {
	db := common.TestDB("file://../../migrations", t)

	userID := uuid.New()
	_, err := db.Exec(`
		INSERT INTO users (id, email, name, password_hash)
		VALUES ($1, 'user@example.com', 'User', 'x')`, userID)
	require.NoError(t, err)

	issuer, err := NewIssuer(testSecret, "blogware", "blogware-api", 15*time.Minute, clock)
	require.NoError(t, err)

	return NewTokenService(db, issuer, clock, refreshTTL), userID
}

func TestGrantAndRefresh(t *testing.T) {
	s, userID := setupTokenService(t, common.NewClock(), 24*time.Hour)
	ctx := context.Background()

	pair, err := s.Grant(ctx, userID, "User", "user@example.com", []string{"registered_viewer"})
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	fresh, err := s.Refresh(ctx, *pair)
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, fresh.RefreshToken)

	// the rotated-out refresh token is no longer usable
	_, err = s.Refresh(ctx, *pair)
	var validationErr common.ValidationError
	assert.ErrorAs(t, err, &validationErr)

	// the new pair is
	_, err = s.Refresh(ctx, *fresh)
	assert.NoError(t, err)
}

func TestRefreshRejectsExpiredRefreshToken(t *testing.T) {
	clock := common.FixedClock{Time: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	s, userID := setupTokenService(t, clock, 0)
	ctx := context.Background()

	pair, err := s.Grant(ctx, userID, "User", "user@example.com", nil)
	require.NoError(t, err)

	// with a zero TTL the stored expiry equals now, and an expiry equal to
	// the current instant is already expired
	_, err = s.Refresh(ctx, *pair)
	var validationErr common.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestRefreshRejectsForeignRefreshToken(t *testing.T) {
	s, userID := setupTokenService(t, common.NewClock(), 24*time.Hour)
	ctx := context.Background()

	pair, err := s.Grant(ctx, userID, "User", "user@example.com", nil)
	require.NoError(t, err)

	tampered := *pair
	tampered.RefreshToken = "not-the-stored-token"

	_, err = s.Refresh(ctx, tampered)
	var validationErr common.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestRevoke(t *testing.T) {
	s, userID := setupTokenService(t, common.NewClock(), 24*time.Hour)
	ctx := context.Background()

	pair, err := s.Grant(ctx, userID, "User", "user@example.com", nil)
	require.NoError(t, err)

	err = s.Revoke(ctx, userID, pair.RefreshToken)
	require.NoError(t, err)

	_, err = s.Refresh(ctx, *pair)
	assert.Error(t, err)

	err = s.Revoke(ctx, userID, pair.RefreshToken)
	assert.ErrorIs(t, err, ErrNotFound)
}
