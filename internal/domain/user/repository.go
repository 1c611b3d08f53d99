package user

import (
	"context"
	"time"
)

// Repository reads and writes user rows. Every query is scoped to
// live rows (deleted_at IS NULL); fetch and update methods return
// (nil, nil) when no live row matches.
type Repository interface {
	FetchUsers(ctx context.Context) (Users, error)
	FetchUserByID(ctx context.Context, id UUID) (*User, error)
	FetchUserByEmail(ctx context.Context, email string) (*User, error)
	CreateUser(ctx context.Context, req User) (*User, error)
	UpdateUser(ctx context.Context, req User) (*User, error)
	SoftDeleteUser(ctx context.Context, id UUID, deletedAt time.Time) (*User, error)
}
