package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-store/internal/domain"
	"blog-store/internal/repository"
)

var boardColumns = []string{
	"id", "title", "content", "created_at", "updated_at",
	"id", "username", "password", "email", "created_at", "updated_at",
}

func newMock(t *testing.T) (sqlmock.Sqlmock, repository.UserRepository, repository.BoardRepository) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	logger, _ := logtest.NewNullLogger()
	return mock, NewUserRepository(db, logger), NewBoardRepository(db, logger)
}

func TestFindByUsernameAndPasswordSwallowsQueryError(t *testing.T) {
	mock, users, _ := newMock(t)
	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("alice", "p1").
		WillReturnError(errors.New("disk I/O error"))

	assert.Nil(t, users.FindByUsernameAndPassword(context.Background(), "alice", "p1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteByIDSafelyMissingIssuesNoDelete(t *testing.T) {
	mock, _, boards := newMock(t)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM boards").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(boardColumns))
	mock.ExpectRollback()

	err := boards.DeleteByIDSafely(context.Background(), 9)
	assert.ErrorIs(t, err, repository.ErrBoardNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteByIDZeroRowsRollsBack(t *testing.T) {
	mock, _, boards := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM boards WHERE id=").
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := boards.DeleteByID(context.Background(), 9)
	assert.ErrorIs(t, err, repository.ErrBoardNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserUpdateByIDCommitFailure(t *testing.T) {
	mock, users, _ := newMock(t)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password", "email", "created_at", "updated_at"}).
			AddRow(int64(1), "alice", "p1", "", testTime, testTime))
	mock.ExpectExec("UPDATE users").
		WithArgs("p2", sqlmock.AnyArg(), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("database is locked"))

	user, err := users.UpdateByID(context.Background(), 1, domain.UserUpdate{Password: "p2"})
	assert.Nil(t, user)
	assert.ErrorContains(t, err, "commit tx")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBoardSaveBeginFailure(t *testing.T) {
	mock, _, boards := newMock(t)
	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	_, err := boards.Save(context.Background(), &domain.Board{Title: "T", User: &domain.User{ID: 1}})
	assert.ErrorContains(t, err, "begin tx")
	assert.NoError(t, mock.ExpectationsWereMet())
}
