package tokenservice

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/okuznetsov/blogware/internal/common"
)

// AccessClaims is the payload of an access token. The subject carries the user
// id; name, email, and roles are embedded so authorization needs no lookup.
type AccessClaims struct {
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

func (c *AccessClaims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

func (c *AccessClaims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}

	return false
}

// Issuer signs and verifies HS256 access tokens and generates opaque refresh
// token values.
type Issuer struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	clock    common.Clock
}

func NewIssuer(secret, issuer, audience string, ttl time.Duration, clock common.Clock) (*Issuer, error) {
	if len(secret) < 32 {
		return nil, fmt.Errorf("token secret must be at least 32 bytes")
	}

	return &Issuer{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
		clock:    clock,
	}, nil
}

func (i *Issuer) AccessToken(userID uuid.UUID, name, email string, roles []string) (string, error) {
	now := i.clock.Now()

	claims := AccessClaims{
		Name:  name,
		Email: email,
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    i.issuer,
			Audience:  jwt.ClaimStrings{i.audience},
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("could not sign access token: %w", err)
	}

	return signed, nil
}

// RefreshToken returns a cryptographically random opaque value. Its expiry is
// tracked in storage, not inside the token.
func (i *Issuer) RefreshToken() (string, error) {
	randomBytes := make([]byte, 32)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(randomBytes), nil
}

func (i *Issuer) keyFunc(token *jwt.Token) (any, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return i.secret, nil
}

// ParseAccessToken fully validates a token, expiry included. Used by the
// authentication middleware.
func (i *Issuer) ParseAccessToken(token string) (*AccessClaims, error) {
	parsed, err := jwt.ParseWithClaims(
		token,
		&AccessClaims{},
		i.keyFunc,
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(i.issuer),
		jwt.WithAudience(i.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*AccessClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// DecodeExpiredToken validates the signature, algorithm, issuer, and audience
// of an access token while ignoring its expiry. The refresh flow
// uses it to recover the claims of a token that may already have lapsed.
func (i *Issuer) DecodeExpiredToken(token string) (*AccessClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithoutClaimsValidation(),
	)

	parsed, err := parser.ParseWithClaims(token, &AccessClaims{}, i.keyFunc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*AccessClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	// WithoutClaimsValidation skips issuer and audience checks too, so redo
	// them by hand. Only the expiry stays exempt.
	if claims.Issuer != i.issuer {
		return nil, fmt.Errorf("%w: wrong issuer", ErrInvalidToken)
	}

	audienceOK := false
	for _, aud := range claims.Audience {
		if aud == i.audience {
			audienceOK = true
			break
		}
	}
	if !audienceOK {
		return nil, fmt.Errorf("%w: wrong audience", ErrInvalidToken)
	}

	return claims, nil
}
