package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"blog-store/internal/domain"
	"blog-store/internal/repository"
)

const createBoardsTable = `
CREATE TABLE IF NOT EXISTS boards (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	content TEXT NOT NULL DEFAULT '',
	user_id INTEGER NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL,
	FOREIGN KEY(user_id) REFERENCES users(id)
);
CREATE INDEX IF NOT EXISTS idx_boards_user_id ON boards(user_id);
`

const selectBoard = `
SELECT b.id, b.title, b.content, b.created_at, b.updated_at,
	u.id, u.username, u.password, u.email, u.created_at, u.updated_at
FROM boards b
JOIN users u ON u.id = b.user_id`

type BoardRepository struct {
	db  *sql.DB
	log logrus.FieldLogger
}

func NewBoardRepository(db *sql.DB, logger logrus.FieldLogger) repository.BoardRepository {
	return &BoardRepository{
		db:  db,
		log: logger.WithField("repository", "board"),
	}
}

func (r *BoardRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createBoardsTable); err != nil {
		return fmt.Errorf("create boards table: %w", err)
	}
	return nil
}

// UpdateByID loads the post, applies the new title and content and writes
// them back in one transaction.
func (r *BoardRepository) UpdateByID(ctx context.Context, id int64, update domain.BoardUpdate) (*domain.Board, error) {
	r.log.WithField("board_id", id).Info("updating board")

	var board *domain.Board
	err := withTx(ctx, r.db, r.log, func(ctx context.Context, tx DBTX) error {
		current, err := findBoardByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return fmt.Errorf("update board %d: %w", id, repository.ErrBoardNotFound)
		}

		current.Title = update.Title
		current.Content = update.Content
		current.UpdatedAt = time.Now().UTC()
		if _, err := tx.ExecContext(ctx, `
UPDATE boards
SET title=?, content=?, updated_at=?
WHERE id=?`,
			current.Title,
			current.Content,
			current.UpdatedAt,
			current.ID,
		); err != nil {
			return fmt.Errorf("update board: %w", err)
		}
		board = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return board, nil
}

// DeleteByID removes the row with a single statement.
func (r *BoardRepository) DeleteByID(ctx context.Context, id int64) error {
	log := r.log.WithField("board_id", id)
	log.Info("deleting board")

	var deleted int64
	err := withTx(ctx, r.db, r.log, func(ctx context.Context, tx DBTX) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM boards WHERE id=?`, id)
		if err != nil {
			return fmt.Errorf("delete board: %w", err)
		}
		deleted, err = res.RowsAffected()
		if err != nil {
			return fmt.Errorf("board delete rows affected: %w", err)
		}
		if deleted == 0 {
			return fmt.Errorf("delete board %d: %w", id, repository.ErrBoardNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}
	log.WithField("rows", deleted).Info("deleted board")
	return nil
}

// DeleteByIDSafely loads the post before removing it, so a missing post is
// reported without issuing a DELETE and the row removed is exactly the one
// that was read.
func (r *BoardRepository) DeleteByIDSafely(ctx context.Context, id int64) error {
	log := r.log.WithField("board_id", id)
	log.Info("deleting loaded board")

	err := withTx(ctx, r.db, r.log, func(ctx context.Context, tx DBTX) error {
		board, err := findBoardByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if board == nil {
			return fmt.Errorf("delete board %d: %w", id, repository.ErrBoardNotFound)
		}

		if _, err := tx.ExecContext(ctx, `
DELETE FROM boards
WHERE id=? AND user_id=?`,
			board.ID,
			board.UserID(),
		); err != nil {
			return fmt.Errorf("remove board: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	log.Info("deleted loaded board")
	return nil
}

// Save persists a new post. The owning user must already be stored.
func (r *BoardRepository) Save(ctx context.Context, board *domain.Board) (*domain.Board, error) {
	if board == nil || board.UserID() <= 0 {
		return nil, repository.ErrInvalidBoard
	}
	r.log.WithFields(logrus.Fields{
		"title":    board.Title,
		"username": board.User.Username,
	}).Info("saving board")

	now := time.Now().UTC()
	var id int64
	err := withTx(ctx, r.db, r.log, func(ctx context.Context, tx DBTX) error {
		res, err := tx.ExecContext(ctx, `
INSERT INTO boards (title, content, user_id, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)`,
			board.Title,
			board.Content,
			board.UserID(),
			now,
			now,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("board owner %d: %w", board.UserID(), repository.ErrUserNotFound)
			}
			return fmt.Errorf("insert board: %w", err)
		}

		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("board last insert id: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	board.ID = id
	board.CreatedAt = now
	board.UpdatedAt = now
	return board, nil
}

func (r *BoardRepository) FindAll(ctx context.Context) ([]domain.Board, error) {
	r.log.Debug("listing boards")

	rows, err := r.db.QueryContext(ctx, selectBoard+`
ORDER BY b.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query boards: %w", err)
	}
	defer rows.Close()

	boards := []domain.Board{}
	for rows.Next() {
		board, err := scanBoard(rows)
		if err != nil {
			return nil, err
		}
		boards = append(boards, *board)
	}

	return boards, rows.Err()
}

func (r *BoardRepository) FindByID(ctx context.Context, id int64) (*domain.Board, error) {
	r.log.WithField("board_id", id).Debug("finding board")
	return findBoardByID(ctx, r.db, id)
}

// findBoardByID returns (nil, nil) when no row matches.
func findBoardByID(ctx context.Context, db DBTX, id int64) (*domain.Board, error) {
	row := db.QueryRowContext(ctx, selectBoard+`
WHERE b.id = ?`,
		id,
	)
	board, err := scanBoard(row)
	if errors.Is(err, repository.ErrBoardNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return board, nil
}

func scanBoard(row interface {
	Scan(dest ...any) error
}) (*domain.Board, error) {
	var (
		board domain.Board
		user  domain.User
	)
	if err := row.Scan(
		&board.ID,
		&board.Title,
		&board.Content,
		&board.CreatedAt,
		&board.UpdatedAt,
		&user.ID,
		&user.Username,
		&user.Password,
		&user.Email,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrBoardNotFound
		}
		return nil, fmt.Errorf("scan board: %w", err)
	}
	board.User = &user
	return &board, nil
}
