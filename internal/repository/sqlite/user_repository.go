package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"blog-store/internal/domain"
	"blog-store/internal/repository"
)

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	email TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

const selectUser = `
SELECT id, username, password, email, created_at, updated_at
FROM users`

type UserRepository struct {
	db  *sql.DB
	log logrus.FieldLogger
}

func NewUserRepository(db *sql.DB, logger logrus.FieldLogger) repository.UserRepository {
	return &UserRepository{
		db:  db,
		log: logger.WithField("repository", "user"),
	}
}

func (r *UserRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createUsersTable); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

// FindByUsernameAndPassword returns nil when the credentials do not match or
// the lookup fails.
func (r *UserRepository) FindByUsernameAndPassword(ctx context.Context, username, password string) *domain.User {
	row := r.db.QueryRowContext(ctx, selectUser+`
WHERE username = ? AND password = ?`,
		username,
		password,
	)
	user, err := scanUser(row)
	if err != nil {
		r.logLookupMiss(err, "username", username)
		return nil
	}
	return user
}

func (r *UserRepository) Save(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, errors.New("user is required")
	}
	r.log.WithField("username", user.Username).Info("saving user")

	now := time.Now().UTC()
	var id int64
	err := withTx(ctx, r.db, r.log, func(ctx context.Context, tx DBTX) error {
		res, err := tx.ExecContext(ctx, `
INSERT INTO users (username, password, email, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)`,
			user.Username,
			user.Password,
			user.Email,
			now,
			now,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: %s", repository.ErrUserExists, user.Username)
			}
			return fmt.Errorf("insert user: %w", err)
		}

		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("user last insert id: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	user.ID = id
	user.CreatedAt = now
	user.UpdatedAt = now
	r.log.WithField("user_id", id).Info("saved user")
	return user, nil
}

// FindByUsername returns nil when no user has the name or the lookup fails.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) *domain.User {
	row := r.db.QueryRowContext(ctx, selectUser+`
WHERE username = ?`,
		username,
	)
	user, err := scanUser(row)
	if err != nil {
		r.logLookupMiss(err, "username", username)
		return nil
	}
	return user
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return findUserByID(ctx, r.db, id)
}

// UpdateByID loads the user, replaces its password and writes it back in one
// transaction.
func (r *UserRepository) UpdateByID(ctx context.Context, id int64, update domain.UserUpdate) (*domain.User, error) {
	var user *domain.User
	err := withTx(ctx, r.db, r.log, func(ctx context.Context, tx DBTX) error {
		current, err := findUserByID(ctx, tx, id)
		if err != nil {
			return err
		}

		current.Password = update.Password
		current.UpdatedAt = time.Now().UTC()
		if _, err := tx.ExecContext(ctx, `
UPDATE users
SET password=?, updated_at=?
WHERE id=?`,
			current.Password,
			current.UpdatedAt,
			current.ID,
		); err != nil {
			return fmt.Errorf("update user: %w", err)
		}
		user = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	r.log.WithField("user_id", id).Info("updated user password")
	return user, nil
}

func (r *UserRepository) logLookupMiss(err error, field, value string) {
	entry := r.log.WithField(field, value)
	if errors.Is(err, repository.ErrUserNotFound) {
		entry.Debug("user lookup found no match")
		return
	}
	entry.WithError(err).Warn("user lookup failed")
}

func findUserByID(ctx context.Context, db DBTX, id int64) (*domain.User, error) {
	row := db.QueryRowContext(ctx, selectUser+`
WHERE id = ?`,
		id,
	)
	user, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}
	return user, nil
}

func scanUser(row interface {
	Scan(dest ...any) error
}) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&user.Email,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &user, nil
}

func isUniqueViolation(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "unique")
}

func isForeignKeyViolation(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "foreign key")
}
