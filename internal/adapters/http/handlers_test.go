package httpadapter

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sokoban/internal/infrastructure/storage"
	"svw.info/sokoban/internal/testutil"
	"svw.info/sokoban/internal/usecase"
	"svw.info/sokoban/internal/validator"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	uc := usecase.NewService(validator.New(), storage.NewFS(t.TempDir()), testutil.NewTestLogger(t))
	r := chi.NewRouter()
	New(uc).Register(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url, body string) (*http.Response, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	if len(data) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(data, &out))
	}
	return resp, out
}

func TestValidateEndpoint(t *testing.T) {
	srv := newServer(t)

	resp, out := do(t, http.MethodPost, srv.URL+"/api/validate", `{"rows":["#####","#@$.#","#####"]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	report := out["report"].(map[string]any)
	assert.Equal(t, true, report["valid"])
	assert.Equal(t, false, report["solved"])
	assert.Equal(t, "#####\n#@$.#\n#####\n", out["board"])

	resp, out = do(t, http.MethodPost, srv.URL+"/api/validate", `{"rows":["#####","#@ .#","#####"]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	report = out["report"].(map[string]any)
	assert.Equal(t, false, report["valid"])
	assert.Contains(t, report["problem"], "at least one treasure")

	resp, out = do(t, http.MethodPost, srv.URL+"/api/validate", `{"rows":["#@!#"]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, out["error"], "unknown level character")

	resp, _ = do(t, http.MethodPost, srv.URL+"/api/validate", `{`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, http.MethodGet, srv.URL+"/api/validate", ``)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestLevelEndpoints(t *testing.T) {
	srv := newServer(t)

	resp, out := do(t, http.MethodGet, srv.URL+"/api/levels", ``)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, out["levels"])

	rows, err := json.Marshal(testutil.Microban1)
	require.NoError(t, err)
	resp, out = do(t, http.MethodPost, srv.URL+"/api/levels", `{"name":"micro","rows":`+string(rows)+`}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id, _ := out["id"].(string)
	require.NotEmpty(t, id)

	resp, out = do(t, http.MethodGet, srv.URL+"/api/levels/"+id, ``)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "micro", out["name"])

	resp, out = do(t, http.MethodGet, srv.URL+"/api/levels/"+id+"/check", ``)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, out["report"].(map[string]any)["valid"])

	resp, out = do(t, http.MethodGet, srv.URL+"/api/levels", ``)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, out["levels"], 1)

	resp, _ = do(t, http.MethodDelete, srv.URL+"/api/levels/"+id, ``)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = do(t, http.MethodGet, srv.URL+"/api/levels/"+id, ``)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = do(t, http.MethodGet, srv.URL+"/api/levels/"+id+"/check", ``)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSaveRejectsBadRows(t *testing.T) {
	srv := newServer(t)
	resp, out := do(t, http.MethodPost, srv.URL+"/api/levels", `{"name":"bad","rows":["#?#"]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, out["error"], "bad")
}

func TestMalformedLevelIDs(t *testing.T) {
	srv := newServer(t)
	rows, err := json.Marshal(testutil.Microban1)
	require.NoError(t, err)

	cases := []struct {
		name, method, path, body string
	}{
		{"save with path id", http.MethodPost, "/api/levels", `{"id":"../x","name":"micro","rows":` + string(rows) + `}`},
		{"load blank id", http.MethodGet, "/api/levels/%20", ``},
		{"check blank id", http.MethodGet, "/api/levels/%20/check", ``},
		{"delete blank id", http.MethodDelete, "/api/levels/%20", ``},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, out := do(t, tc.method, srv.URL+tc.path, tc.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Contains(t, out["error"], "invalid level id")
		})
	}
}
