package accountservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/okuznetsov/blogware/internal/common"
)

func (m *UserModel) insertUser(ctx context.Context, user *User, role string) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO users (id, email, name, avatar_file_name, password_hash, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6)`

	_, err = tx.ExecContext(ctx, query, user.ID, user.Email, user.Name, user.AvatarFileName, user.Password.hash, user.CreatedAt)
	if err != nil {
		_ = tx.Rollback()
		switch {
		case common.UniqueViolation(err, "users_email_key"):
			return ErrDuplicateEmail
		default:
			return err
		}
	}

	_, err = tx.ExecContext(ctx, "INSERT INTO user_roles (user_id, role) VALUES ($1, $2)", user.ID, role)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

func (m *UserModel) getByID(ctx context.Context, id uuid.UUID) (*User, error) {
	query := `
		SELECT u.id, u.email, u.name, COALESCE(u.avatar_file_name, ''), u.created_at,
			COALESCE(array_agg(r.role) FILTER (WHERE r.role IS NOT NULL), '{}')
		FROM users u
		LEFT JOIN user_roles r ON r.user_id = u.id
		WHERE u.id = $1
		GROUP BY u.id`

	var user User
	err := m.db.QueryRowContext(ctx, query, id).Scan(&user.ID, &user.Email, &user.Name, &user.AvatarFileName, &user.CreatedAt, pq.Array(&user.Roles))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	return &user, nil
}

func (m *UserModel) getByEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT u.id, u.email, u.name, COALESCE(u.avatar_file_name, ''), u.password_hash, u.created_at,
			COALESCE(array_agg(r.role) FILTER (WHERE r.role IS NOT NULL), '{}')
		FROM users u
		LEFT JOIN user_roles r ON r.user_id = u.id
		WHERE u.email = $1
		GROUP BY u.id`

	var user User
	err := m.db.QueryRowContext(ctx, query, email).Scan(&user.ID, &user.Email, &user.Name, &user.AvatarFileName, &user.Password.hash, &user.CreatedAt, pq.Array(&user.Roles))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	return &user, nil
}

// updateUser writes the user's display fields and cascades them onto the
// user's blog, if one exists, in the same transaction.
func (m *UserModel) updateUser(ctx context.Context, user *User) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	query := `
		UPDATE users
		SET name = $1, avatar_file_name = NULLIF($2, '')
		WHERE id = $3`

	res, err := tx.ExecContext(ctx, query, user.Name, user.AvatarFileName, user.ID)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	if rows == 0 {
		_ = tx.Rollback()
		return ErrNotFound
	}

	query = `
		UPDATE blogs
		SET name = $1, avatar_file_name = NULLIF($2, '')
		WHERE user_id = $3`

	_, err = tx.ExecContext(ctx, query, user.Name, user.AvatarFileName, user.ID)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}
