package commentservice

import (
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/okuznetsov/blogware/internal/common"
)

var ErrNotFound = errors.New("comment not found")

type Comment struct {
	ID            uuid.UUID `json:"id"`
	Text          string    `json:"text"`
	IsModified    bool      `json:"is_modified"`
	CreatedAt     time.Time `json:"created_at"`
	PostID        uuid.UUID `json:"post_id"`
	UserID        uuid.UUID `json:"user_id"`
	AuthorName    string    `json:"author_name"`
	AuthorBlogTag string    `json:"author_blog_tag,omitempty"`
}

type CommentPage struct {
	Comments   []Comment         `json:"comments"`
	Pagination common.Pagination `json:"pagination"`
}

// CommentCreatedEvent is the payload published to the comment exchange when a
// comment lands, consumed by the notification mailer.
type CommentCreatedEvent struct {
	PostHeader     string `json:"post_header"`
	CommentAuthor  string `json:"comment_author"`
	CommentText    string `json:"comment_text"`
	RecipientEmail string `json:"recipient_email"`
	RecipientName  string `json:"recipient_name"`
}

type CommentModel struct {
	db *sql.DB
}

type CommentService struct {
	m      CommentModel
	mb     common.MessageProducer
	logger *slog.Logger
	clock  common.Clock
}

func NewCommentService(db *sql.DB, mb common.MessageProducer, logger *slog.Logger, clock common.Clock) *CommentService {
	return &CommentService{
		m:      CommentModel{db: db},
		mb:     mb,
		logger: logger,
		clock:  clock,
	}
}
