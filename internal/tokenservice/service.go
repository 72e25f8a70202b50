package tokenservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/okuznetsov/blogware/internal/common"
)

func invalidClientRequest(cause error) error {
	return common.NewValidationError("tokens", "invalid client request", cause)
}

// Grant issues a fresh access/refresh pair at login time and persists the
// refresh side with an expiry computed from the configured lifetime.
func (s *TokenService) Grant(ctx context.Context, userID uuid.UUID, name, email string, roles []string) (*TokenPair, error) {
	accessToken, err := s.issuer.AccessToken(userID, name, email, roles)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.issuer.RefreshToken()
	if err != nil {
		return nil, err
	}

	err = s.m.insert(ctx, &RefreshToken{
		ID:     uuid.New(),
		Token:  refreshToken,
		Expiry: s.clock.Now().Add(s.refreshTTL),
		UserID: userID,
	})
	if err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh rotates the refresh token and issues a new access token from the
// claims of the expired one. Signature, issuer, audience, and possession
// failures all surface as the same generic validation error so the client
// learns nothing about which check failed.
func (s *TokenService) Refresh(ctx context.Context, tokens TokenPair) (*TokenPair, error) {
	claims, err := s.issuer.DecodeExpiredToken(tokens.AccessToken)
	if err != nil {
		return nil, invalidClientRequest(err)
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, fmt.Errorf("no user id in token claims: %w", ErrNotFound)
	}

	stored, err := s.m.getByUserAndToken(ctx, userID, tokens.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return nil, invalidClientRequest(err)
		default:
			return nil, err
		}
	}

	// A token expiring exactly now is already invalid.
	if !stored.Expiry.After(s.clock.Now()) {
		return nil, invalidClientRequest(nil)
	}

	newAccessToken, err := s.issuer.AccessToken(userID, claims.Name, claims.Email, claims.Roles)
	if err != nil {
		return nil, err
	}

	newRefreshToken, err := s.issuer.RefreshToken()
	if err != nil {
		return nil, err
	}

	if err := s.m.rotate(ctx, stored.ID, newRefreshToken); err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: newAccessToken, RefreshToken: newRefreshToken}, nil
}

// Revoke deletes the stored refresh token for (userID, token).
func (s *TokenService) Revoke(ctx context.Context, userID uuid.UUID, refreshToken string) error {
	stored, err := s.m.getByUserAndToken(ctx, userID, refreshToken)
	if err != nil {
		return err
	}

	return s.m.delete(ctx, stored.ID)
}

// PurgeExpired removes refresh tokens whose expiry has passed. Called
// periodically from the application.
func (s *TokenService) PurgeExpired(ctx context.Context) error {
	return s.m.deleteExpired(ctx, s.clock.Now())
}
