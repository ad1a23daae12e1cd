// Package id defines the identifier type shared by every entity.
// Identifiers are UUIDv7, so rows sort by creation time out of the box.
package id

import "github.com/google/uuid"

// ID aliases uuid.UUID so call sites read id.ID without a wrapper type.
type ID = uuid.UUID

// New returns a fresh UUIDv7. The random fallback covers the
// theoretical case of the monotonic clock source failing.
func New() ID {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.New()
	}
	return v7
}

// Parse validates and converts a string form.
func Parse(s string) (ID, error) {
	return uuid.Parse(s)
}

// MustParse is Parse for fixtures and constants; panics on bad input.
func MustParse(s string) ID {
	return uuid.MustParse(s)
}

// Nil is the zero identifier.
func Nil() ID {
	return uuid.Nil
}

// IsNil reports whether the identifier is unset.
func IsNil(v ID) bool {
	return v == uuid.Nil
}
