package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-store/internal/repository"
)

func run(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root, a := newRootCmd()
	defer a.close()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--db", dbPath}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestBlogctlWorkflow(t *testing.T) {
	t.Setenv("BLOG_LOG_LEVEL", "error")
	dbPath := filepath.Join(t.TempDir(), "blog.db")

	out, err := run(t, dbPath, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "schema ready")

	out, err = run(t, dbPath, "user", "register", "alice", "p1", "--email", "alice@example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "1\talice\talice@example.com")

	_, err = run(t, dbPath, "user", "register", "alice", "p9")
	assert.Error(t, err)

	out, err = run(t, dbPath, "user", "login", "alice", "wrong")
	require.NoError(t, err)
	assert.Contains(t, out, "invalid credentials")

	out, err = run(t, dbPath, "user", "login", "alice", "p1")
	require.NoError(t, err)
	assert.Contains(t, out, "alice")

	_, err = run(t, dbPath, "user", "passwd", "1", "p2")
	require.NoError(t, err)
	out, err = run(t, dbPath, "user", "login", "alice", "p2")
	require.NoError(t, err)
	assert.NotContains(t, out, "invalid credentials")

	_, err = run(t, dbPath, "board", "create", "--user-id", "1", "--title", "first", "--content", "hello")
	require.NoError(t, err)
	_, err = run(t, dbPath, "board", "create", "--user-id", "1", "--title", "second")
	require.NoError(t, err)

	out, err = run(t, dbPath, "board", "list")
	require.NoError(t, err)
	assert.Less(t, bytes.Index([]byte(out), []byte("second")), bytes.Index([]byte(out), []byte("first")))

	out, err = run(t, dbPath, "board", "update", "1", "--title", "T2", "--content", "C2")
	require.NoError(t, err)
	assert.Contains(t, out, "T2")

	_, err = run(t, dbPath, "board", "delete", "1", "--safe")
	require.NoError(t, err)
	out, err = run(t, dbPath, "board", "show", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "not found")

	_, err = run(t, dbPath, "board", "delete", "1")
	assert.ErrorIs(t, err, repository.ErrBoardNotFound)
}

func TestUserShowMissing(t *testing.T) {
	t.Setenv("BLOG_LOG_LEVEL", "error")
	dbPath := filepath.Join(t.TempDir(), "blog.db")

	_, err := run(t, dbPath, "init")
	require.NoError(t, err)

	_, err = run(t, dbPath, "user", "show", "3")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = run(t, dbPath, "user", "show", "abc")
	assert.Error(t, err)
}
