package repository

import (
	"context"

	"blog-store/internal/domain"
)

// UserRepository defines persistence operations for User entities.
//
// The two lookups by username return nil for any failure, including a query
// error, so a login attempt cannot tell a wrong password from a broken
// database. FindByID and UpdateByID report a missing user as ErrUserNotFound.
type UserRepository interface {
	Init(ctx context.Context) error
	FindByUsernameAndPassword(ctx context.Context, username, password string) *domain.User
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) *domain.User
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	UpdateByID(ctx context.Context, id int64, update domain.UserUpdate) (*domain.User, error)
}
