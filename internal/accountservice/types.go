package accountservice

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/okuznetsov/blogware/internal/common"
	"github.com/okuznetsov/blogware/internal/tokenservice"
)

var (
	ErrNotFound       = errors.New("user not found")
	ErrDuplicateEmail = errors.New("a user with this email address already exists")
)

// Roles carried in access-token claims. Everyone starts as a registered
// viewer; creating a blog promotes the user to author.
const (
	RoleRegisteredViewer = "registered_viewer"
	RoleAuthor           = "author"
)

type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	AvatarFileName string    `json:"avatar_file_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	Roles          []string  `json:"roles"`
	Password       Password  `json:"-"`
}

type Password struct {
	Plain string `json:"-"`
	hash  []byte `json:"-"`
}

type UserModel struct {
	db *sql.DB
}

// BlobChecker is the slice of the media store needed to verify that a
// submitted avatar file actually exists.
type BlobChecker interface {
	Exists(ctx context.Context, name string) (bool, error)
}

type AccountService struct {
	m      *UserModel
	tokens *tokenservice.TokenService
	blobs  BlobChecker
	clock  common.Clock
}

func NewAccountService(db *sql.DB, tokens *tokenservice.TokenService, blobs BlobChecker, clock common.Clock) *AccountService {
	return &AccountService{
		m:      &UserModel{db: db},
		tokens: tokens,
		blobs:  blobs,
		clock:  clock,
	}
}

// LoginResult reports a credential mismatch as a normal outcome rather than an
// error, and never says whether the email or the password was wrong.
type LoginResult struct {
	IsSuccessful bool                    `json:"is_successful"`
	ErrorMessage string                  `json:"error_message,omitempty"`
	Tokens       *tokenservice.TokenPair `json:"tokens,omitempty"`
}
