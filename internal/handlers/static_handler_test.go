package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"petsy/internal/handlers"
)

func setupStaticApp(t *testing.T) (*fiber.App, string) {
	t.Helper()
	dir := t.TempDir()
	app := fiber.New()
	app.Use(handlers.NewStaticHandler(dir).HandleFile)
	return app, dir
}

func writeStaticFile(t *testing.T, dir, name string, content []byte) {
	t.Helper()
	path := filepath.Join(dir, name)
	assert.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	assert.NoError(t, os.WriteFile(path, content, 0o644))
}

func TestStaticContentTypes(t *testing.T) {
	app, dir := setupStaticApp(t)

	files := map[string]string{
		"photo.jpg":      "image/jpeg",
		"logo.png":       "image/png",
		"styles.css":     "text/css",
		"app.js":         "text/javascript",
		"notes.txt":      "application/octet-stream",
		"images/dog.jpg": "image/jpeg",
		"BANNER.PNG":     "image/png", // extension match is case-insensitive
	}

	for name, want := range files {
		t.Run(name, func(t *testing.T) {
			writeStaticFile(t, dir, name, []byte("content of "+name))
			req := httptest.NewRequest(http.MethodGet, "/"+name, nil)
			resp, err := app.Test(req, -1)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, want, resp.Header.Get("Content-Type"))
			resp.Body.Close()
		})
	}
}

func TestStaticTraversal(t *testing.T) {
	base := t.TempDir()
	root := filepath.Join(base, "public")
	assert.NoError(t, os.MkdirAll(root, 0o755))
	assert.NoError(t, os.WriteFile(filepath.Join(base, "secret.txt"), []byte("top secret"), 0o644))

	app := fiber.New()
	app.Use(handlers.NewStaticHandler(root).HandleFile)

	// Paths escaping the root, raw and percent-encoded, resolve inside
	// the root and 404 without leaking the file.
	targets := []string{
		"/../secret.txt",
		"/%2e%2e/secret.txt",
		"/..%2fsecret.txt",
	}
	for _, target := range targets {
		t.Run(target, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, target, nil)
			resp, err := app.Test(req, -1)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusNotFound, resp.StatusCode)
			assert.Equal(t, "File Not Found", readBody(t, resp))
		})
	}
}

func TestStaticMissingFile(t *testing.T) {
	app, _ := setupStaticApp(t)

	req := httptest.NewRequest(http.MethodGet, "/missing.css", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "File Not Found", readBody(t, resp))
}

func TestServePageMissing(t *testing.T) {
	static := handlers.NewStaticHandler(t.TempDir())
	app := fiber.New()
	app.Get("/page", func(c *fiber.Ctx) error {
		return static.ServePage(c, "wtp.html")
	})

	req := httptest.NewRequest(http.MethodGet, "/page", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Server Error: Unable to read form page.", readBody(t, resp))
}
