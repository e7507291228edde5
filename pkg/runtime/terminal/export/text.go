package export

import (
	"fmt"
	"io"
	"text/template"

	"github.com/charmbracelet/lipgloss"

	"github.com/benefique/cfo-times/pkg/format"
	"github.com/benefique/cfo-times/pkg/models/domain"
	"github.com/benefique/cfo-times/pkg/services/report"
)

// TextReporter prints the page summary as a styled, human-readable listing.
// Styling is dropped automatically when w is not a color terminal.
type TextReporter struct{}

func NewTextReporter() *TextReporter {
	return &TextReporter{}
}

func (c *TextReporter) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (c *TextReporter) Render(w io.Writer, page *report.Page) error {
	return c.Handle(w, page.Summary())
}

func (c *TextReporter) Handle(w io.Writer, r *domain.Report) error {
	renderer := lipgloss.NewRenderer(w)
	titleStyle := renderer.NewStyle().Bold(true)
	headingStyle := renderer.NewStyle().Bold(true).Underline(true)

	funcMap := template.FuncMap{
		"title":   func(s string) string { return titleStyle.Render(s) },
		"heading": func(s string) string { return headingStyle.Render(s) },
		"status": func(s domain.Status) string {
			color := lipgloss.Color(format.StatusPalette(s).Hex)
			return renderer.NewStyle().Foreground(color).Render(s.String())
		},
	}

	tmpl := `{{title .Title}}
{{.Edition}}, {{.Period.ReportDate}}
Period: {{.Period.Start}} to {{.Period.End}}
Month progress: {{.Period.Progress}}% (day {{.Period.CurrentDay}} of {{.Period.DaysInMonth}})
{{range .Sections}}
{{heading .Title}}{{with .Subtitle}} ({{.}}){{end}}
{{range $key, $value := .Summary}}  {{$key}}: {{$value}}
{{end}}{{range .Details}}  - {{.Name}}: {{.Value}}{{if .Unit}} {{.Unit}}{{end}}{{with .Status}} [{{status .}}]{{end}}
{{with .Description}}    {{.}}
{{end}}{{end}}{{end}}`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(w, r)
}
