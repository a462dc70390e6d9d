package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Ufuoma-Onakpoyan/MrDGN-Group-sub000/content-hub/internal/cli"
)

func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	for _, name := range []string{"CONTENT_API_URL", "CONTENT_API_TOKEN", "REDIS_ADDR", "CONFIG_PATH"} {
		t.Setenv(name, "")
	}
}

func writeConfig(t *testing.T, baseURL string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	body := ""
	if baseURL != "" {
		body = "backend:\n  base_url: " + baseURL + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := cli.NewRootCommand(&out)
	cmd.SetArgs(args)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func backend(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/testimonials":
			_, _ = w.Write([]byte(`[
				{"id":"t1","name":"Chioma","published":true,"sources":["mansaluxe-realty"]},
				{"id":"t2","name":"Emeka","published":true,"sources":["construction"]}
			]`))
		case "/api/properties/p1":
			_, _ = w.Write([]byte(`{"id":"p1","title":"Lekki villa","published":true,
				"images":["https://cdn.example/front.jpg"],
				"videos":{"walkthrough":"https://vimeo.com/76979871"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"Not here"}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestList_TableForSite(t *testing.T) {
	isolateEnv(t)
	cfg := writeConfig(t, backend(t))

	out, err := run(t, "--config", cfg, "list", "testimonials", "--site", "mansaluxe-realty")
	require.NoError(t, err)
	assert.Contains(t, out, "Chioma")
	assert.NotContains(t, out, "Emeka")
	assert.Contains(t, out, "1 ITEMS")
}

func TestGet_JSON(t *testing.T) {
	isolateEnv(t)
	cfg := writeConfig(t, backend(t))

	out, err := run(t, "--config", cfg, "-o", "json", "get", "properties", "p1")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Lekki villa", got["title"])
}

func TestGet_NotFound(t *testing.T) {
	isolateEnv(t)
	cfg := writeConfig(t, backend(t))

	_, err := run(t, "--config", cfg, "get", "blog", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Not here")
}

func TestMedia(t *testing.T) {
	isolateEnv(t)
	cfg := writeConfig(t, backend(t))

	out, err := run(t, "--config", cfg, "media", "p1")
	require.NoError(t, err)
	assert.Contains(t, out, "https://cdn.example/front.jpg")
	assert.Contains(t, out, "Virtual Walkthrough")
	assert.Contains(t, out, "https://player.vimeo.com/video/76979871")
}

func TestImport_Offline(t *testing.T) {
	isolateEnv(t)
	cfg := writeConfig(t, "")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"Title", "Price", "Status"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"Asokoro mansion", "₦900,000,000", "available"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]any{"Broken", "100", "leased"}))
	path := filepath.Join(t.TempDir(), "listings.xlsx")
	require.NoError(t, f.SaveAs(path))

	out, err := run(t, "--config", cfg, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Rows: 2  Created: 1  Failed: 1")
	assert.Contains(t, out, "status must be one of")
}

func TestRejectsBadInput(t *testing.T) {
	isolateEnv(t)
	cfg := writeConfig(t, "")

	_, err := run(t, "--config", cfg, "-o", "yaml", "resources")
	require.Error(t, err)

	_, err = run(t, "--config", cfg, "list", "villas")
	require.Error(t, err)

	_, err = run(t, "--config", cfg, "list", "blog", "--site", "moon")
	require.Error(t, err)

	out, err := run(t, "--config", cfg, "resources")
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "construction-projects"))
}
