package blogservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/okuznetsov/blogware/internal/common"
)

// blogOwner is what blog creation needs to know about the prospective owner.
type blogOwner struct {
	Name           string
	AvatarFileName string
	HasBlog        bool
}

func (m *BlogModel) getOwner(ctx context.Context, userID uuid.UUID) (*blogOwner, error) {
	query := `
		SELECT u.name, COALESCE(u.avatar_file_name, ''),
			EXISTS (SELECT 1 FROM blogs b WHERE b.user_id = u.id)
		FROM users u
		WHERE u.id = $1`

	var owner blogOwner
	err := m.db.QueryRowContext(ctx, query, userID).Scan(&owner.Name, &owner.AvatarFileName, &owner.HasBlog)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	return &owner, nil
}

func (m *BlogModel) tagExists(ctx context.Context, tag string) (bool, error) {
	var exists bool
	err := m.db.QueryRowContext(ctx, "SELECT EXISTS (SELECT 1 FROM blogs WHERE tag = $1)", tag).Scan(&exists)
	return exists, err
}

// insert writes the blog and grants the owner the author role in one
// transaction. Unique indexes on tag and user_id are the source of truth for
// the uniqueness invariants under concurrent creates.
func (m *BlogModel) insert(ctx context.Context, blog *Blog, authorRole string) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO blogs (id, name, tag, description, avatar_file_name, created_at, user_id)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7)`

	_, err = tx.ExecContext(ctx, query, blog.ID, blog.Name, blog.Tag, blog.Description, blog.AvatarFileName, blog.CreatedAt, blog.UserID)
	if err != nil {
		_ = tx.Rollback()
		switch {
		case common.UniqueViolation(err, "blogs_tag_key"):
			return ErrAlreadyExists
		case common.UniqueViolation(err, "blogs_user_id_key"):
			return ErrAlreadyExists
		default:
			return err
		}
	}

	_, err = tx.ExecContext(ctx, "INSERT INTO user_roles (user_id, role) VALUES ($1, $2) ON CONFLICT DO NOTHING", blog.UserID, authorRole)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

func (m *BlogModel) getByID(ctx context.Context, id uuid.UUID) (*Blog, error) {
	query := `
		SELECT id, name, tag, COALESCE(description, ''), COALESCE(avatar_file_name, ''), created_at, user_id
		FROM blogs
		WHERE id = $1`

	return m.scanBlog(m.db.QueryRowContext(ctx, query, id))
}

func (m *BlogModel) getByTag(ctx context.Context, tag string) (*Blog, error) {
	query := `
		SELECT id, name, tag, COALESCE(description, ''), COALESCE(avatar_file_name, ''), created_at, user_id
		FROM blogs
		WHERE tag = $1`

	return m.scanBlog(m.db.QueryRowContext(ctx, query, tag))
}

func (m *BlogModel) scanBlog(row *sql.Row) (*Blog, error) {
	var blog Blog
	err := row.Scan(&blog.ID, &blog.Name, &blog.Tag, &blog.Description, &blog.AvatarFileName, &blog.CreatedAt, &blog.UserID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	return &blog, nil
}

// update writes the blog's fields and mirrors name and avatar back onto the
// owning user in the same transaction.
func (m *BlogModel) update(ctx context.Context, blog *Blog) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	query := `
		UPDATE blogs
		SET name = $1, tag = $2, description = NULLIF($3, ''), avatar_file_name = NULLIF($4, '')
		WHERE id = $5`

	_, err = tx.ExecContext(ctx, query, blog.Name, blog.Tag, blog.Description, blog.AvatarFileName, blog.ID)
	if err != nil {
		_ = tx.Rollback()
		switch {
		case common.UniqueViolation(err, "blogs_tag_key"):
			return ErrAlreadyExists
		default:
			return err
		}
	}

	query = `
		UPDATE users
		SET name = $1, avatar_file_name = NULLIF($2, '')
		WHERE id = $3`

	_, err = tx.ExecContext(ctx, query, blog.Name, blog.AvatarFileName, blog.UserID)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}
