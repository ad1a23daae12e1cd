// Package tx declares the transaction boundary the domain depends on.
// The pgx implementation lives under infrastructure/storage/postgres.
package tx

import "context"

// Manager runs a function inside a database transaction: commit when
// fn returns nil, roll back otherwise. Nested calls join the
// transaction already on the context.
type Manager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
