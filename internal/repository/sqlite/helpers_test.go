package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"blog-store/internal/domain"
	"blog-store/internal/repository"
)

type fixture struct {
	db     *sql.DB
	log    *logrus.Logger
	hook   *logtest.Hook
	users  repository.UserRepository
	boards repository.BoardRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "blog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	f := &fixture{
		db:     db,
		log:    logger,
		hook:   hook,
		users:  NewUserRepository(db, logger),
		boards: NewBoardRepository(db, logger),
	}
	require.NoError(t, InitSchema(context.Background(), f.users, f.boards))
	return f
}

func (f *fixture) saveUser(t *testing.T, username, password string) *domain.User {
	t.Helper()
	user, err := f.users.Save(context.Background(), &domain.User{
		Username: username,
		Password: password,
		Email:    username + "@example.com",
	})
	require.NoError(t, err)
	return user
}

func (f *fixture) saveBoard(t *testing.T, owner *domain.User, title, content string) *domain.Board {
	t.Helper()
	board, err := f.boards.Save(context.Background(), &domain.Board{
		Title:   title,
		Content: content,
		User:    owner,
	})
	require.NoError(t, err)
	return board
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))
	return n
}

var testTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
