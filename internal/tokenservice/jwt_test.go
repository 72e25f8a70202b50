package tokenservice

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okuznetsov/blogware/internal/common"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func testIssuer(t *testing.T, clock common.Clock) *Issuer {
	issuer, err := NewIssuer(testSecret, "blogware", "blogware-api", 15*time.Minute, clock)
	require.NoError(t, err)
	return issuer
}

func TestNewIssuerRejectsShortSecret(t *testing.T) {
	_, err := NewIssuer("too-short", "blogware", "blogware-api", 15*time.Minute, common.NewClock())
	assert.Error(t, err)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	issuer := testIssuer(t, common.NewClock())
	userID := uuid.New()

	token, err := issuer.AccessToken(userID, "Alice", "alice@example.com", []string{"registered_viewer", "author"})
	require.NoError(t, err)

	claims, err := issuer.ParseAccessToken(token)
	require.NoError(t, err)

	gotID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.True(t, claims.HasRole("author"))
	assert.False(t, claims.HasRole("admin"))
}

func TestParseAccessTokenRejectsExpired(t *testing.T) {
	past := common.FixedClock{Time: time.Now().UTC().Add(-2 * time.Hour)}
	issuer := testIssuer(t, past)

	token, err := issuer.AccessToken(uuid.New(), "Alice", "alice@example.com", nil)
	require.NoError(t, err)

	verifier := testIssuer(t, common.NewClock())
	_, err = verifier.ParseAccessToken(token)
	assert.Error(t, err)
}

func TestDecodeExpiredTokenIgnoresExpiry(t *testing.T) {
	past := common.FixedClock{Time: time.Now().UTC().Add(-2 * time.Hour)}
	issuer := testIssuer(t, past)
	userID := uuid.New()

	token, err := issuer.AccessToken(userID, "Alice", "alice@example.com", []string{"author"})
	require.NoError(t, err)

	decoder := testIssuer(t, common.NewClock())
	claims, err := decoder.DecodeExpiredToken(token)
	require.NoError(t, err)

	gotID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)
}

func TestDecodeExpiredTokenStillChecksIssuer(t *testing.T) {
	issuer := testIssuer(t, common.NewClock())
	token, err := issuer.AccessToken(uuid.New(), "Alice", "alice@example.com", nil)
	require.NoError(t, err)

	other, err := NewIssuer(testSecret, "someone-else", "blogware-api", 15*time.Minute, common.NewClock())
	require.NoError(t, err)

	_, err = other.DecodeExpiredToken(token)
	assert.Error(t, err)
}

func TestParseAccessTokenRejectsWrongSecret(t *testing.T) {
	issuer := testIssuer(t, common.NewClock())
	token, err := issuer.AccessToken(uuid.New(), "Alice", "alice@example.com", nil)
	require.NoError(t, err)

	other, err := NewIssuer(strings.Repeat("z", 32), "blogware", "blogware-api", 15*time.Minute, common.NewClock())
	require.NoError(t, err)

	_, err = other.ParseAccessToken(token)
	assert.Error(t, err)
}

func TestRefreshTokenIsRandom(t *testing.T) {
	issuer := testIssuer(t, common.NewClock())

	a, err := issuer.RefreshToken()
	require.NoError(t, err)
	b, err := issuer.RefreshToken()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.NotEmpty(t, a)
}
