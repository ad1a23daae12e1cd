// Package context carries request-scoped identity and correlation
// values between the HTTP layer and the domain.
package context

import "context"

// UserContext is the authenticated identity restored from the access
// token by the auth middleware.
type UserContext struct {
	UserID    string
	CompanyID string
	Username  string
	Email     string
	Role      string
}

type userContextKey struct{}

// WithUser puts the identity on the context.
func WithUser(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// GetUser returns the identity, or nil on an anonymous context.
func GetUser(ctx context.Context) *UserContext {
	u, _ := ctx.Value(userContextKey{}).(*UserContext)
	return u
}

// GetUserID returns the caller's user id, or "".
func GetUserID(ctx context.Context) string {
	if u := GetUser(ctx); u != nil {
		return u.UserID
	}
	return ""
}

// GetCompanyID returns the caller's company id, or "".
func GetCompanyID(ctx context.Context) string {
	if u := GetUser(ctx); u != nil {
		return u.CompanyID
	}
	return ""
}

// HasRole reports whether the caller carries the role.
func HasRole(ctx context.Context, role string) bool {
	u := GetUser(ctx)
	return u != nil && u.Role == role
}
