package blogservice

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/okuznetsov/blogware/internal/common"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("already exists")
)

type Blog struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Tag            string    `json:"tag"`
	Description    string    `json:"description,omitempty"`
	AvatarFileName string    `json:"avatar_file_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UserID         uuid.UUID `json:"user_id"`
}

type BlogModel struct {
	db *sql.DB
}

type BlobChecker interface {
	Exists(ctx context.Context, name string) (bool, error)
}

type BlogService struct {
	m     *BlogModel
	c     *common.Cache
	blobs BlobChecker
	clock common.Clock
}

func NewBlogService(db *sql.DB, c *common.Cache, blobs BlobChecker, clock common.Clock) *BlogService {
	return &BlogService{
		m:     &BlogModel{db: db},
		c:     c,
		blobs: blobs,
		clock: clock,
	}
}
