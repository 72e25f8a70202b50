package commentservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// commentedPost is what comment creation needs to know about the target post
// and its author.
type commentedPost struct {
	Header      string
	AuthorName  string
	AuthorEmail string
}

func (m *CommentModel) getPost(ctx context.Context, postID uuid.UUID) (*commentedPost, error) {
	query := `
		SELECT p.header, u.name, u.email
		FROM posts p
		INNER JOIN blogs b ON b.id = p.blog_id
		INNER JOIN users u ON u.id = b.user_id
		WHERE p.id = $1`

	var post commentedPost
	err := m.db.QueryRowContext(ctx, query, postID).Scan(&post.Header, &post.AuthorName, &post.AuthorEmail)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, fmt.Errorf("post %s: %w", postID, ErrNotFound)
		default:
			return nil, err
		}
	}

	return &post, nil
}

func (m *CommentModel) insert(ctx context.Context, comment *Comment) error {
	query := `
		INSERT INTO comments (id, text, is_modified, created_at, post_id, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := m.db.ExecContext(ctx, query, comment.ID, comment.Text, comment.IsModified, comment.CreatedAt, comment.PostID, comment.UserID)
	return err
}

const commentColumns = `
	SELECT c.id, c.text, c.is_modified, c.created_at, c.post_id, c.user_id,
		u.name, COALESCE(b.tag, '')
	FROM comments c
	INNER JOIN users u ON u.id = c.user_id
	LEFT JOIN blogs b ON b.user_id = u.id`

func (m *CommentModel) getByID(ctx context.Context, id uuid.UUID) (*Comment, error) {
	query := commentColumns + " WHERE c.id = $1"

	var comment Comment
	err := m.db.QueryRowContext(ctx, query, id).Scan(&comment.ID, &comment.Text, &comment.IsModified, &comment.CreatedAt, &comment.PostID, &comment.UserID, &comment.AuthorName, &comment.AuthorBlogTag)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	return &comment, nil
}

func (m *CommentModel) update(ctx context.Context, comment *Comment) error {
	query := `
		UPDATE comments
		SET text = $1, is_modified = $2
		WHERE id = $3`

	_, err := m.db.ExecContext(ctx, query, comment.Text, comment.IsModified, comment.ID)
	return err
}

func (m *CommentModel) delete(ctx context.Context, id uuid.UUID) error {
	result, err := m.db.ExecContext(ctx, "DELETE FROM comments WHERE id = $1", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (m *CommentModel) pagedByPost(ctx context.Context, postID uuid.UUID, limit, offset int) ([]Comment, error) {
	query := commentColumns + `
		WHERE c.post_id = $1
		ORDER BY c.created_at DESC, c.id
		LIMIT $2 OFFSET $3`

	rows, err := m.db.QueryContext(ctx, query, postID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []Comment{}
	for rows.Next() {
		var comment Comment
		err := rows.Scan(&comment.ID, &comment.Text, &comment.IsModified, &comment.CreatedAt, &comment.PostID, &comment.UserID, &comment.AuthorName, &comment.AuthorBlogTag)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}

	return comments, rows.Err()
}
