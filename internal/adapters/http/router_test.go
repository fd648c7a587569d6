package httpadapter

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sokoban/internal/infrastructure/storage"
	"svw.info/sokoban/internal/usecase"
	"svw.info/sokoban/internal/validator"
)

func TestRouter(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	uc := usecase.NewService(validator.New(), storage.NewFS(t.TempDir()), logger)
	srv := httptest.NewServer(NewRouter(uc, logger))
	t.Cleanup(srv.Close)

	get := func(path string) (*http.Response, string) {
		t.Helper()
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp, string(body)
	}

	resp, body := get("/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "No levels stored yet")

	resp, _ = get("/static/style.css")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = get("/api/levels")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = get("/api/levels/missing")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	out := logs.String()
	assert.Contains(t, out, "path=/api/levels/missing")
	assert.Contains(t, out, "status=404")
	assert.Contains(t, out, "req_id=")
}
