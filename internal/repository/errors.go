package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is the parent of every entity-specific not found error.
	ErrNotFound = errors.New("not found")

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)

	// ErrBoardNotFound indicates that the requested post does not exist.
	ErrBoardNotFound = fmt.Errorf("board %w", ErrNotFound)

	// ErrUserExists is returned when saving a user whose username is taken.
	ErrUserExists = errors.New("user already exists")

	// ErrInvalidBoard is returned when saving a post without an owner.
	ErrInvalidBoard = errors.New("board requires an owning user")
)

// IsNotFound reports whether err is any kind of not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
