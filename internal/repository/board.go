package repository

import (
	"context"

	"blog-store/internal/domain"
)

// BoardRepository exposes persistence operations for blog posts.
type BoardRepository interface {
	Init(ctx context.Context) error
	// UpdateByID rewrites title and content. The owner is never changed.
	UpdateByID(ctx context.Context, id int64, update domain.BoardUpdate) (*domain.Board, error)
	// DeleteByID issues a single DELETE statement and fails with
	// ErrBoardNotFound when no row matched.
	DeleteByID(ctx context.Context, id int64) error
	// DeleteByIDSafely loads the post first and removes the loaded row,
	// failing with ErrBoardNotFound before any delete is issued.
	DeleteByIDSafely(ctx context.Context, id int64) error
	Save(ctx context.Context, board *domain.Board) (*domain.Board, error)
	// FindAll returns every post with its owner, newest first.
	FindAll(ctx context.Context) ([]domain.Board, error)
	// FindByID returns (nil, nil) when the post does not exist.
	FindByID(ctx context.Context, id int64) (*domain.Board, error)
}
