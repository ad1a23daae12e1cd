package auth

import (
	"context"

	"vendia/internal/core/id"
)

// UserRepository is the storage contract for users. Usernames and
// emails are unique per company, not globally.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID id.ID) (*User, error)

	// GetByIdentifier resolves a login: the identifier may be a
	// username or an email.
	GetByIdentifier(ctx context.Context, identifier string) (*User, error)

	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, userID id.ID) error

	// List pages a company's users and returns the unpaged total.
	List(ctx context.Context, companyID id.ID, filter UserFilter) ([]User, int, error)

	ExistsByUsername(ctx context.Context, companyID id.ID, username string) (bool, error)
	ExistsByEmail(ctx context.Context, companyID id.ID, email string) (bool, error)
}

// TokenRepository is the storage contract for refresh tokens.
type TokenRepository interface {
	SaveRefreshToken(ctx context.Context, token *RefreshToken) error

	// GetRefreshToken looks a token up by hash, revoked or not.
	GetRefreshToken(ctx context.Context, tokenHash string) (*RefreshToken, error)

	RevokeRefreshToken(ctx context.Context, tokenID id.ID, reason string) error
	RevokeAllUserTokens(ctx context.Context, userID id.ID, reason string) error

	// CleanupExpiredTokens removes dead tokens, returning the count.
	CleanupExpiredTokens(ctx context.Context) (int, error)
}

// UserFilter narrows user listings.
type UserFilter struct {
	Search   string
	IsActive *bool
	Role     Role
	Limit    int
	Offset   int
}
