package postservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// postBlog is what post creation needs to know about the target blog.
type postBlog struct {
	Tag    string
	UserID uuid.UUID
}

func (m *PostModel) getBlog(ctx context.Context, blogID uuid.UUID) (*postBlog, error) {
	query := `
		SELECT tag, user_id
		FROM blogs
		WHERE id = $1`

	var blog postBlog
	err := m.db.QueryRowContext(ctx, query, blogID).Scan(&blog.Tag, &blog.UserID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, fmt.Errorf("blog %s: %w", blogID, ErrNotFound)
		default:
			return nil, err
		}
	}

	return &blog, nil
}

func (m *PostModel) getByID(ctx context.Context, id uuid.UUID) (*Post, error) {
	query := `
		SELECT p.id, p.header, COALESCE(p.subheader, ''), p.created_at, p.is_modified, p.blog_id, b.tag, b.user_id
		FROM posts p
		INNER JOIN blogs b ON b.id = p.blog_id
		WHERE p.id = $1`

	var post Post
	err := m.db.QueryRowContext(ctx, query, id).Scan(&post.ID, &post.Header, &post.Subheader, &post.CreatedAt, &post.IsModified, &post.BlogID, &post.BlogTag, &post.OwnerID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	items, err := m.getItems(ctx, id)
	if err != nil {
		return nil, err
	}
	post.Items = items

	return &post, nil
}

func (m *PostModel) getItems(ctx context.Context, postID uuid.UUID) ([]PostItem, error) {
	query := `
		SELECT id, ord, kind, COALESCE(text, ''), COALESCE(text_style, ''),
			COALESCE(alt, ''), COALESCE(description, ''), COALESCE(file_name, '')
		FROM post_items
		WHERE post_id = $1
		ORDER BY ord`

	rows, err := m.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []PostItem{}
	for rows.Next() {
		var (
			meta                       ItemMeta
			kind                       ItemKind
			text, style                string
			alt, description, fileName string
		)

		err := rows.Scan(&meta.ID, &meta.Order, &kind, &text, &style, &alt, &description, &fileName)
		if err != nil {
			return nil, err
		}

		switch kind {
		case ItemKindText:
			items = append(items, &TextItem{ItemMeta: meta, Text: text, Style: TextStyle(style)})
		case ItemKindImage:
			items = append(items, &ImageItem{ItemMeta: meta, Alt: alt, Description: description, FileName: fileName})
		default:
			return nil, fmt.Errorf("unknown post item kind %q", kind)
		}
	}

	return items, rows.Err()
}

func (m *PostModel) insert(ctx context.Context, post *Post) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO posts (id, header, subheader, created_at, is_modified, blog_id)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6)`

	_, err = tx.ExecContext(ctx, query, post.ID, post.Header, post.Subheader, post.CreatedAt, post.IsModified, post.BlogID)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	err = upsertItems(ctx, tx, post.ID, post.Items)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// update writes the post's fields and reconciles its item rows in one
// transaction: rows absent from the kept set are deleted, the rest are
// upserted by id. An empty kept set deletes every item.
func (m *PostModel) update(ctx context.Context, post *Post) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	query := `
		UPDATE posts
		SET header = $1, subheader = NULLIF($2, ''), is_modified = $3
		WHERE id = $4`

	_, err = tx.ExecContext(ctx, query, post.Header, post.Subheader, post.IsModified, post.ID)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	keep := make([]string, 0, len(post.Items))
	for _, item := range post.Items {
		keep = append(keep, item.Meta().ID.String())
	}

	_, err = tx.ExecContext(ctx, "DELETE FROM post_items WHERE post_id = $1 AND NOT (id = ANY($2::uuid[]))", post.ID, pq.Array(keep))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	err = upsertItems(ctx, tx, post.ID, post.Items)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

func upsertItems(ctx context.Context, tx *sql.Tx, postID uuid.UUID, items []PostItem) error {
	query := `
		INSERT INTO post_items (id, post_id, ord, kind, text, text_style, alt, description, file_name)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''))
		ON CONFLICT (id) DO UPDATE
		SET ord = EXCLUDED.ord, text = EXCLUDED.text, text_style = EXCLUDED.text_style,
			alt = EXCLUDED.alt, description = EXCLUDED.description, file_name = EXCLUDED.file_name`

	for _, item := range items {
		var err error

		switch item := item.(type) {
		case *TextItem:
			_, err = tx.ExecContext(ctx, query, item.ID, postID, item.Order, ItemKindText, item.Text, string(item.Style), "", "", "")
		case *ImageItem:
			_, err = tx.ExecContext(ctx, query, item.ID, postID, item.Order, ItemKindImage, "", "", item.Alt, item.Description, item.FileName)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func (m *PostModel) delete(ctx context.Context, id uuid.UUID) error {
	result, err := m.db.ExecContext(ctx, "DELETE FROM posts WHERE id = $1", id)
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

func (m *PostModel) paged(ctx context.Context, limit, offset int) ([]PostSummary, error) {
	query := `
		SELECT p.id, p.header, COALESCE(p.subheader, ''), p.created_at, p.is_modified, p.blog_id, b.tag
		FROM posts p
		INNER JOIN blogs b ON b.id = p.blog_id
		ORDER BY p.created_at DESC, p.id
		LIMIT $1 OFFSET $2`

	return m.scanSummaries(ctx, query, limit, offset)
}

func (m *PostModel) pagedByBlog(ctx context.Context, blogID uuid.UUID, limit, offset int) ([]PostSummary, error) {
	query := `
		SELECT p.id, p.header, COALESCE(p.subheader, ''), p.created_at, p.is_modified, p.blog_id, b.tag
		FROM posts p
		INNER JOIN blogs b ON b.id = p.blog_id
		WHERE p.blog_id = $1
		ORDER BY p.created_at DESC, p.id
		LIMIT $2 OFFSET $3`

	return m.scanSummaries(ctx, query, blogID, limit, offset)
}

func (m *PostModel) scanSummaries(ctx context.Context, query string, args ...any) ([]PostSummary, error) {
	rows, err := m.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []PostSummary{}
	for rows.Next() {
		var post PostSummary
		err := rows.Scan(&post.ID, &post.Header, &post.Subheader, &post.CreatedAt, &post.IsModified, &post.BlogID, &post.BlogTag)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	return posts, rows.Err()
}
