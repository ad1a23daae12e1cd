// Package security carries the authenticated user across request
// boundaries and evaluates menu visibility rules.
package security

import "context"

type userIDKey struct{}

// WithUserID stamps the authenticated user's id onto the context so
// audit writers can attribute changes without threading it explicitly.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// GetUserID returns the stamped user id, or "" when the context is
// anonymous.
func GetUserID(ctx context.Context) string {
	uid, _ := ctx.Value(userIDKey{}).(string)
	return uid
}
