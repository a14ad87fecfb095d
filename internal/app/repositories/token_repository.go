package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/acadbase/acadbase/internal/app/models"
)

// TokenRepository persists refresh tokens so they survive restarts and
// can be revoked individually.
type TokenRepository struct {
	db *pgxpool.Pool
}

// NewTokenRepository creates a new token repository
func NewTokenRepository(db *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{db: db}
}

// Store saves a refresh token for a user.
func (r *TokenRepository) Store(ctx context.Context, userID int64, refreshToken string, expiresAt time.Time) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO auth_tokens (user_id, refresh_token, expires_at)
		VALUES ($1, $2, $3)`,
		userID, refreshToken, expiresAt)
	if err != nil {
		return fmt.Errorf("error storing refresh token: %w", err)
	}
	return nil
}

// Get retrieves a refresh token row, nil when absent.
func (r *TokenRepository) Get(ctx context.Context, refreshToken string) (*models.AuthToken, error) {
	var t models.AuthToken
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, refresh_token, expires_at, revoked
		FROM auth_tokens WHERE refresh_token = $1`, refreshToken).Scan(
		&t.ID, &t.UserID, &t.RefreshToken, &t.ExpiresAt, &t.Revoked)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving refresh token: %w", err)
	}
	return &t, nil
}

// Revoke marks one refresh token revoked.
func (r *TokenRepository) Revoke(ctx context.Context, refreshToken string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE auth_tokens SET revoked = TRUE WHERE refresh_token = $1`, refreshToken)
	if err != nil {
		return fmt.Errorf("error revoking refresh token: %w", err)
	}
	return nil
}

// RevokeAllForUser revokes every outstanding token for a user.
func (r *TokenRepository) RevokeAllForUser(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx, `
		UPDATE auth_tokens SET revoked = TRUE WHERE user_id = $1 AND NOT revoked`, userID)
	if err != nil {
		return fmt.Errorf("error revoking user tokens: %w", err)
	}
	return nil
}

// DeleteExpired removes tokens past their expiry.
func (r *TokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM auth_tokens WHERE expires_at < NOW()`)
	if err != nil {
		return 0, fmt.Errorf("error deleting expired tokens: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
