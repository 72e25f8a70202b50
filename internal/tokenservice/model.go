package tokenservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

func (m *TokenModel) insert(ctx context.Context, token *RefreshToken) error {
	query := `
		INSERT INTO refresh_tokens (id, token, expiry, user_id)
		VALUES ($1, $2, $3, $4)`

	_, err := m.db.ExecContext(ctx, query, token.ID, token.Token, token.Expiry, token.UserID)
	return err
}

func (m *TokenModel) getByUserAndToken(ctx context.Context, userID uuid.UUID, token string) (*RefreshToken, error) {
	query := `
		SELECT id, token, expiry, user_id
		FROM refresh_tokens
		WHERE user_id = $1 AND token = $2`

	var rt RefreshToken
	err := m.db.QueryRowContext(ctx, query, userID, token).Scan(&rt.ID, &rt.Token, &rt.Expiry, &rt.UserID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrNotFound
		default:
			return nil, err
		}
	}

	return &rt, nil
}

// rotate overwrites the stored token value. The expiry column is left alone:
// rotation keeps the original expiry.
func (m *TokenModel) rotate(ctx context.Context, id uuid.UUID, newToken string) error {
	query := `
		UPDATE refresh_tokens
		SET token = $1
		WHERE id = $2`

	res, err := m.db.ExecContext(ctx, query, newToken, id)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rows != 1 {
		switch {
		case rows == 0:
			return ErrNotFound
		default:
			return fmt.Errorf("expected 1 row to be affected, got %d", rows)
		}
	}

	return nil
}

func (m *TokenModel) delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM refresh_tokens
		WHERE id = $1`

	res, err := m.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// deleteExpired exists for periodic cleanup; expired rows are rejected at
// refresh time regardless.
func (m *TokenModel) deleteExpired(ctx context.Context, now time.Time) error {
	query := `
		DELETE FROM refresh_tokens
		WHERE expiry <= $1`

	_, err := m.db.ExecContext(ctx, query, now)
	return err
}
