package service

import (
	"context"
	"errors"
	"strings"

	"blog-store/internal/domain"
	"blog-store/internal/repository"
)

// BoardService coordinates post operations backed by repositories.
type BoardService interface {
	Create(ctx context.Context, userID int64, title, content string) (*domain.Board, error)
	List(ctx context.Context) ([]domain.Board, error)
	Get(ctx context.Context, id int64) (*domain.Board, error)
	Update(ctx context.Context, id int64, title, content string) (*domain.Board, error)
	// Delete uses the load-then-remove path when safe is set.
	Delete(ctx context.Context, id int64, safe bool) error
}

type boardService struct {
	boards repository.BoardRepository
	users  repository.UserRepository
}

func NewBoardService(boards repository.BoardRepository, users repository.UserRepository) BoardService {
	return &boardService{
		boards: boards,
		users:  users,
	}
}

func (s *boardService) Create(ctx context.Context, userID int64, title, content string) (*domain.Board, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("title is required")
	}

	owner, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	board, err := s.boards.Save(ctx, &domain.Board{
		Title:   title,
		Content: content,
		User:    owner,
	})
	if err != nil {
		return nil, err
	}
	return sanitizeBoard(board), nil
}

func (s *boardService) List(ctx context.Context) ([]domain.Board, error) {
	boards, err := s.boards.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range boards {
		boards[i].User = sanitizeUser(boards[i].User)
	}
	return boards, nil
}

// Get returns (nil, nil) for a missing post.
func (s *boardService) Get(ctx context.Context, id int64) (*domain.Board, error) {
	board, err := s.boards.FindByID(ctx, id)
	if err != nil || board == nil {
		return nil, err
	}
	return sanitizeBoard(board), nil
}

func (s *boardService) Update(ctx context.Context, id int64, title, content string) (*domain.Board, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("title is required")
	}
	board, err := s.boards.UpdateByID(ctx, id, domain.BoardUpdate{
		Title:   title,
		Content: content,
	})
	if err != nil {
		return nil, err
	}
	return sanitizeBoard(board), nil
}

func (s *boardService) Delete(ctx context.Context, id int64, safe bool) error {
	if safe {
		return s.boards.DeleteByIDSafely(ctx, id)
	}
	return s.boards.DeleteByID(ctx, id)
}

func sanitizeBoard(board *domain.Board) *domain.Board {
	out := *board
	out.User = sanitizeUser(board.User)
	return &out
}
