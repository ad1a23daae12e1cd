package auth_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"vendia/internal/core/apperror"
	"vendia/internal/core/id"
	"vendia/internal/domain/auth"
	"vendia/internal/infrastructure/storage/postgres"
)

// TokenRepo stores refresh tokens. Tokens are looked up by hash, the
// plaintext never reaches the database.
type TokenRepo struct {
	txm *postgres.TxManager
}

var _ auth.TokenRepository = (*TokenRepo)(nil)

// NewTokenRepo creates a refresh token repository.
func NewTokenRepo(txm *postgres.TxManager) *TokenRepo {
	return &TokenRepo{txm: txm}
}

func (r *TokenRepo) querier(ctx context.Context) postgres.Querier {
	return r.txm.GetQuerier(ctx)
}

// SaveRefreshToken inserts a freshly issued token.
func (r *TokenRepo) SaveRefreshToken(ctx context.Context, token *auth.RefreshToken) error {
	const q = `
		INSERT INTO refresh_tokens
			(id, user_id, token_hash, expires_at, created_at, user_agent, ip_address)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '')::inet)`

	_, err := r.querier(ctx).Exec(ctx, q,
		token.ID, token.UserID, token.TokenHash, token.ExpiresAt,
		token.CreatedAt, token.UserAgent, token.IPAddress,
	)
	if err != nil {
		return fmt.Errorf("save refresh token: %w", err)
	}
	return nil
}

// GetRefreshToken finds a token by its hash, revoked or not. The
// service decides what a revoked token means.
func (r *TokenRepo) GetRefreshToken(ctx context.Context, tokenHash string) (*auth.RefreshToken, error) {
	const q = `
		SELECT id, user_id, token_hash, expires_at, created_at,
		       revoked_at, COALESCE(revoked_reason, '')
		FROM refresh_tokens
		WHERE token_hash = $1`

	var token auth.RefreshToken
	err := r.querier(ctx).QueryRow(ctx, q, tokenHash).Scan(
		&token.ID, &token.UserID, &token.TokenHash, &token.ExpiresAt,
		&token.CreatedAt, &token.RevokedAt, &token.RevokedReason,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperror.NewNotFound("token", "")
	}
	if err != nil {
		return nil, fmt.Errorf("get refresh token: %w", err)
	}
	return &token, nil
}

// RevokeRefreshToken marks one token revoked with a reason.
func (r *TokenRepo) RevokeRefreshToken(ctx context.Context, tokenID id.ID, reason string) error {
	const q = `UPDATE refresh_tokens SET revoked_at = now(), revoked_reason = $2 WHERE id = $1`

	if _, err := r.querier(ctx).Exec(ctx, q, tokenID, reason); err != nil {
		return fmt.Errorf("revoke refresh token: %w", err)
	}
	return nil
}

// RevokeAllUserTokens revokes every live token of the user, e.g. on
// logout or password change.
func (r *TokenRepo) RevokeAllUserTokens(ctx context.Context, userID id.ID, reason string) error {
	const q = `
		UPDATE refresh_tokens SET revoked_at = now(), revoked_reason = $2
		WHERE user_id = $1 AND revoked_at IS NULL`

	if _, err := r.querier(ctx).Exec(ctx, q, userID, reason); err != nil {
		return fmt.Errorf("revoke user tokens: %w", err)
	}
	return nil
}

// CleanupExpiredTokens deletes expired tokens and tokens revoked more
// than a week ago, returning how many rows went away.
func (r *TokenRepo) CleanupExpiredTokens(ctx context.Context) (int, error) {
	const q = `
		DELETE FROM refresh_tokens
		WHERE expires_at < now() OR revoked_at < now() - INTERVAL '7 days'`

	tag, err := r.querier(ctx).Exec(ctx, q)
	if err != nil {
		return 0, fmt.Errorf("cleanup refresh tokens: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
