package inputs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath(t *testing.T) {
	assert.Equal(t, filepath.Join("inputs", "2023", "day07.txt"), Path("inputs", 2023, 7))
	assert.Equal(t, filepath.Join("x", "2025", "day10.txt"), Path("x", 2025, 10))
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "day01.txt")
	require.NoError(t, os.WriteFile(path, []byte("1\n2\n"), 0o644))

	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", got)

	_, err = Read(filepath.Join(dir, "nope.txt"))
	assert.True(t, errors.IsNotFound(err))
}

func newServer(t *testing.T, hits *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		cookie, err := r.Cookie("session")
		if err != nil || cookie.Value != "secret" {
			http.Error(w, "Puzzle inputs differ by user.  Please log in to get your puzzle input.", http.StatusBadRequest)
			return
		}
		if r.URL.Path != "/2024/day/3/input" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("mul(2,4)\n"))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetcher(t *testing.T) {
	var hits int32
	srv := newServer(t, &hits)

	t.Run("missing session", func(t *testing.T) {
		_, err := NewFetcher(srv.URL, "", nil)
		assert.True(t, errors.HasErrorCode(err, errors.ErrCodeMissingSession))
	})

	t.Run("fetch sends cookie", func(t *testing.T) {
		f, err := NewFetcher(srv.URL+"/", "secret", nil)
		require.NoError(t, err)
		body, err := f.Fetch(context.Background(), 2024, 3)
		require.NoError(t, err)
		assert.Equal(t, "mul(2,4)\n", body)
	})

	t.Run("bad session", func(t *testing.T) {
		f, err := NewFetcher(srv.URL, "wrong", nil)
		require.NoError(t, err)
		_, err = f.Fetch(context.Background(), 2024, 3)
		require.Error(t, err)
		assert.True(t, errors.HasErrorCode(err, errors.ErrCodeFetchFailed))
	})
}

func TestEnsureCaches(t *testing.T) {
	var hits int32
	srv := newServer(t, &hits)
	dir := t.TempDir()

	f, err := NewFetcher(srv.URL, "secret", nil)
	require.NoError(t, err)

	path, err := f.Ensure(context.Background(), dir, 2024, 3)
	require.NoError(t, err)
	assert.Equal(t, Path(dir, 2024, 3), path)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))

	_, err = f.Ensure(context.Background(), dir, 2024, 3)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits), "cached input is not refetched")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "mul(2,4)\n", string(data))
}
