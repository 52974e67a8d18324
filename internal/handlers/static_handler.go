package handlers

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// contentTypes maps file extensions to the content type served for
// them. Anything else is served as an opaque byte stream.
var contentTypes = map[string]string{
	".jpg": "image/jpeg",
	".png": "image/png",
	".css": "text/css",
	".js":  "text/javascript",
}

// StaticHandler serves files from a fixed root directory. It backs both
// the catch-all static route and the HTML form pages.
type StaticHandler struct {
	root string
}

// NewStaticHandler creates a new StaticHandler rooted at dir.
func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{
		root: dir,
	}
}

// HandleFile resolves the request path against the root directory and
// streams the file back, inferring the content type from the
// extension. Missing files and paths escaping the root are a 404.
func (h *StaticHandler) HandleFile(c *fiber.Ctx) error {
	// Cleaning the rooted path confines traversal to the static root.
	name := filepath.Join(h.root, filepath.Clean("/"+c.Path()))

	data, err := os.ReadFile(name)
	if err != nil {
		log.Printf("Error reading %s: %v", name, err)
		return c.Status(fiber.StatusNotFound).SendString("File Not Found")
	}

	contentType, ok := contentTypes[strings.ToLower(filepath.Ext(name))]
	if !ok {
		contentType = "application/octet-stream"
	}
	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(data)
}

// ServePage returns one of the HTML form pages verbatim.
func (h *StaticHandler) ServePage(c *fiber.Ctx, pageName string) error {
	data, err := os.ReadFile(filepath.Join(h.root, pageName))
	if err != nil {
		log.Printf("Error reading form page %s: %v", pageName, err)
		return c.Status(fiber.StatusInternalServerError).SendString("Server Error: Unable to read form page.")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(data)
}
