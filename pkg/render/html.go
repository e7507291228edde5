package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/benefique/cfo-times/pkg/services/report"
	"github.com/benefique/cfo-times/pkg/view"
)

//go:embed templates/page.html
var pageFS embed.FS

const (
	tailwindURL = "https://cdn.tailwindcss.com"
	chartJSURL  = "https://cdn.jsdelivr.net/npm/chart.js@4.4.1/dist/chart.umd.min.js"
)

// HTML renders the complete single-page report.
type HTML struct {
	tmpl *template.Template
}

func NewHTML() (*HTML, error) {
	base, err := view.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse primitives: %w", err)
	}

	tmpl, err := base.Funcs(template.FuncMap{
		"tailwindURL": func() string { return tailwindURL },
		"chartJSURL":  func() string { return chartJSURL },
	}).ParseFS(pageFS, "templates/page.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}

	return &HTML{tmpl: tmpl}, nil
}

func (h *HTML) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render executes into a buffer first so a template failure never leaves a
// partial document in w.
func (h *HTML) Render(w io.Writer, page *report.Page) error {
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, "page", page); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}
