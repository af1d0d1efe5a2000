package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShutdownHandler(t *testing.T) {
	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	h := shutdownHandler("secret", stop)

	call := func(method, remote, token string) int {
		req := httptest.NewRequest(method, "/shutdown", nil)
		req.RemoteAddr = remote
		if token != "" {
			req.Header.Set("X-Shutdown-Token", token)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusMethodNotAllowed, call(http.MethodGet, "127.0.0.1:1", "secret"))
	assert.Equal(t, http.StatusForbidden, call(http.MethodPost, "10.1.2.3:1", "secret"))
	assert.Equal(t, http.StatusUnauthorized, call(http.MethodPost, "127.0.0.1:1", "wrong"))
	assert.NoError(t, ctx.Err())

	assert.Equal(t, http.StatusOK, call(http.MethodPost, "127.0.0.1:1", "secret"))
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestShutdownTokenWritesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("JOBBOARD_SHUTDOWN_TOKEN", "fixed")

	token, err := shutdownToken(dir)
	require.NoError(t, err)
	assert.Equal(t, "fixed", token)

	b, err := os.ReadFile(filepath.Join(dir, "shutdown.token"))
	require.NoError(t, err)
	assert.Equal(t, "fixed", string(b))

	t.Setenv("JOBBOARD_SHUTDOWN_TOKEN", "")
	token, err = shutdownToken(dir)
	require.NoError(t, err)
	assert.Len(t, token, 64)
}

func TestSeedJobs(t *testing.T) {
	jobs, err := seedJobs("")
	require.NoError(t, err)
	assert.Len(t, jobs, 5)

	path := filepath.Join(t.TempDir(), "jobs.yml")
	require.NoError(t, os.WriteFile(path, []byte(`jobs:
  - id: 7
    title: Line Cook
    company: Diner
    location: Manchester, NH
    industry: Hospitality
    experience: Entry Level
    credentials: []
`), 0o644))
	jobs, err = seedJobs(path)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, 7, jobs[0].ID)

	require.NoError(t, os.WriteFile(path, []byte("jobs: []\n"), 0o644))
	_, err = seedJobs(path)
	assert.Error(t, err)

	_, err = seedJobs(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
