package accountservice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okuznetsov/blogware/internal/common"
	"github.com/okuznetsov/blogware/internal/tokenservice"
)

type stubBlobChecker struct {
	known map[string]bool
}

func (s stubBlobChecker) Exists(ctx context.Context, name string) (bool, error) {
	return s.known[name], nil
}

func setupTestEnvironment(t *testing.T) *AccountService {
	db := common.TestDB("file://../../migrations", t)
	clock := common.NewClock()

	issuer, err := tokenservice.NewIssuer("0123456789abcdef0123456789abcdef", "blogware", "blogware-api", 15*time.Minute, clock)
	require.NoError(t, err)

	tokens := tokenservice.NewTokenService(db, issuer, clock, 24*time.Hour)
	blobs := stubBlobChecker{known: map[string]bool{"avatar.png": true}}

	return NewAccountService(db, tokens, blobs, clock)
}

func TestRegisterAndLogin(t *testing.T) {
	s := setupTestEnvironment(t)
	ctx := context.Background()

	user, err := s.Register(ctx, RegisterUserInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "Str0ng!pass",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{RoleRegisteredViewer}, user.Roles)

	result, err := s.Login(ctx, "alice@example.com", "Str0ng!pass")
	require.NoError(t, err)
	require.True(t, result.IsSuccessful)
	require.NotNil(t, result.Tokens)
	assert.NotEmpty(t, result.Tokens.AccessToken)
	assert.NotEmpty(t, result.Tokens.RefreshToken)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := setupTestEnvironment(t)
	ctx := context.Background()

	input := RegisterUserInput{Name: "Alice", Email: "alice@example.com", Password: "Str0ng!pass"}

	_, err := s.Register(ctx, input)
	require.NoError(t, err)

	_, err = s.Register(ctx, input)
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestLoginFailureIsUniform(t *testing.T) {
	s := setupTestEnvironment(t)
	ctx := context.Background()

	_, err := s.Register(ctx, RegisterUserInput{Name: "Alice", Email: "alice@example.com", Password: "Str0ng!pass"})
	require.NoError(t, err)

	unknownEmail, err := s.Login(ctx, "nobody@example.com", "Str0ng!pass")
	require.NoError(t, err)

	wrongPassword, err := s.Login(ctx, "alice@example.com", "Wr0ng!pass")
	require.NoError(t, err)

	// both failures look exactly the same to the caller
	assert.False(t, unknownEmail.IsSuccessful)
	assert.False(t, wrongPassword.IsSuccessful)
	assert.Equal(t, unknownEmail.ErrorMessage, wrongPassword.ErrorMessage)
	assert.Nil(t, unknownEmail.Tokens)
	assert.Nil(t, wrongPassword.Tokens)
}

func TestUpdateDetails(t *testing.T) {
	s := setupTestEnvironment(t)
	ctx := context.Background()

	user, err := s.Register(ctx, RegisterUserInput{Name: "Alice", Email: "alice@example.com", Password: "Str0ng!pass"})
	require.NoError(t, err)

	updated, err := s.UpdateDetails(ctx, user.ID, UpdateUserInput{Name: "Alicia", AvatarFileName: "avatar.png"})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.Name)
	assert.Equal(t, "avatar.png", updated.AvatarFileName)

	_, err = s.UpdateDetails(ctx, user.ID, UpdateUserInput{Name: "Alicia", AvatarFileName: "missing.png"})
	var validationErr common.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Errors, "avatar_file_name")
}
