package postservice

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/okuznetsov/blogware/internal/common"
)

var (
	ErrNotFound      = errors.New("post not found")
	ErrItemNotInPost = errors.New("item not found in post")
)

type Post struct {
	ID         uuid.UUID  `json:"id"`
	Header     string     `json:"header"`
	Subheader  string     `json:"subheader,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	IsModified bool       `json:"is_modified"`
	BlogID     uuid.UUID  `json:"blog_id"`
	BlogTag    string     `json:"blog_tag"`
	Items      []PostItem `json:"-"`
	OwnerID    uuid.UUID  `json:"-"`
}

// PostSummary is the listing shape: everything a feed needs except the items.
type PostSummary struct {
	ID         uuid.UUID `json:"id"`
	Header     string    `json:"header"`
	Subheader  string    `json:"subheader,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	IsModified bool      `json:"is_modified"`
	BlogID     uuid.UUID `json:"blog_id"`
	BlogTag    string    `json:"blog_tag"`
}

type PostPage struct {
	Posts      []PostSummary     `json:"posts"`
	Pagination common.Pagination `json:"pagination"`
}

type PostModel struct {
	db *sql.DB
}

type PostService struct {
	m     PostModel
	c     *common.Cache
	clock common.Clock
}

func NewPostService(db *sql.DB, c *common.Cache, clock common.Clock) *PostService {
	return &PostService{
		m:     PostModel{db: db},
		c:     c,
		clock: clock,
	}
}
