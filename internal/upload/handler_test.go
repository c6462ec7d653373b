// AngelaMos | 2026
// handler_test.go

package upload

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/portfolio-cms/internal/config"
)

// pngBytes is a minimal valid PNG signature plus padding so the sniffer
// reports image/png.
var pngBytes = append(
	[]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'},
	make([]byte, 64)...,
)

func passthrough(next http.Handler) http.Handler {
	return next
}

func newTestRouter(t *testing.T, maxBytes int64) (chi.Router, string) {
	t.Helper()
	dir := t.TempDir()

	handler := NewHandler(config.UploadConfig{
		Dir:      dir,
		BaseURL:  "/uploads",
		MaxBytes: maxBytes,
	}, slog.Default())

	router := chi.NewRouter()
	router.Route("/api", func(r chi.Router) {
		handler.RegisterRoutes(r, passthrough)
	})
	return router, dir
}

func postUpload(router chi.Router, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(
		http.MethodPost,
		"/api/upload",
		strings.NewReader(body),
	)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestUploadStoresPNG(t *testing.T) {
	router, dir := newTestRouter(t, 1<<20)

	encoded := base64.StdEncoding.EncodeToString(pngBytes)
	rec := postUpload(router, `{"image":"`+encoded+`"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		URL    string `json:"url"`
		Method string `json:"method"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "local", resp.Method)
	assert.True(t, strings.HasPrefix(resp.URL, "/uploads/"))
	assert.True(t, strings.HasSuffix(resp.URL, ".png"))

	name := strings.TrimPrefix(resp.URL, "/uploads/")
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, pngBytes, data)
}

func TestUploadAcceptsDataURL(t *testing.T) {
	router, _ := newTestRouter(t, 1<<20)

	encoded := base64.StdEncoding.EncodeToString(pngBytes)
	rec := postUpload(
		router,
		`{"image":"data:image/png;base64,`+encoded+`"}`,
	)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUploadRejectsInvalidBase64(t *testing.T) {
	router, _ := newTestRouter(t, 1<<20)

	rec := postUpload(router, `{"image":"!!!not base64!!!"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "valid base64")
}

func TestUploadRejectsOversizedImage(t *testing.T) {
	router, _ := newTestRouter(t, 16)

	encoded := base64.StdEncoding.EncodeToString(pngBytes)
	rec := postUpload(router, `{"image":"`+encoded+`"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "maximum size")
}

func TestUploadRejectsUnsupportedType(t *testing.T) {
	router, _ := newTestRouter(t, 1<<20)

	encoded := base64.StdEncoding.EncodeToString(
		[]byte("plain text pretending to be an image"),
	)
	rec := postUpload(router, `{"image":"`+encoded+`"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsupported image type")
}

func TestUploadRequiresImageField(t *testing.T) {
	router, _ := newTestRouter(t, 1<<20)

	rec := postUpload(router, `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Validation failed")
}
