package view

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the primitive partials into a fresh set that callers may
// extend with page templates.
func Templates() (*template.Template, error) {
	return template.New("primitives").ParseFS(templateFS, "templates/*.html")
}
