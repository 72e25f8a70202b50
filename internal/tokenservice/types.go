package tokenservice

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/okuznetsov/blogware/internal/common"
)

var (
	ErrNotFound     = errors.New("refresh token not found")
	ErrInvalidToken = errors.New("invalid token")
)

// TokenPair is what login and refresh hand back to the client.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RefreshToken is the stored counterpart of TokenPair.RefreshToken. The access
// token is stateless; only the refresh side has a row and an expiry.
type RefreshToken struct {
	ID     uuid.UUID `json:"-"`
	Token  string    `json:"-"`
	Expiry time.Time `json:"-"`
	UserID uuid.UUID `json:"-"`
}

type TokenModel struct {
	db *sql.DB
}

type TokenService struct {
	m          *TokenModel
	issuer     *Issuer
	clock      common.Clock
	refreshTTL time.Duration
}

func NewTokenService(db *sql.DB, issuer *Issuer, clock common.Clock, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		m:          &TokenModel{db: db},
		issuer:     issuer,
		clock:      clock,
		refreshTTL: refreshTTL,
	}
}
