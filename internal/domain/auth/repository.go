package auth

import "context"

// Repository abstracts credential persistence.
type Repository interface {
	GetByCredentials(ctx context.Context, email, password string) (User, bool, error)
	Count(ctx context.Context) (int64, error)
	CreateAll(ctx context.Context, users []User) error
}
