package export

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/benefique/cfo-times/pkg/models/domain"
	"github.com/benefique/cfo-times/pkg/services/report"
)

type TableConfig struct {
	NameWidth        int
	ValueWidth       int
	UnitWidth        int
	DescriptionWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:        32,
		ValueWidth:       28,
		UnitWidth:        14,
		DescriptionWidth: 44,
	}
}

// TableReporter prints every section of the page summary as a fixed-width table.
type TableReporter struct {
	config TableConfig
}

func NewTableReporter() *TableReporter {
	return &TableReporter{config: DefaultTableConfig()}
}

func (c *TableReporter) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (c *TableReporter) Render(w io.Writer, page *report.Page) error {
	return c.Handle(w, page.Summary())
}

func (c *TableReporter) Handle(w io.Writer, r *domain.Report) error {
	funcMap := template.FuncMap{
		"formatRow": func(name, value, unit, desc string) string {
			return fmt.Sprintf("| %-*s | %-*s | %-*s | %-*s |",
				c.config.NameWidth, truncate(name, c.config.NameWidth),
				c.config.ValueWidth, truncate(value, c.config.ValueWidth),
				c.config.UnitWidth, truncate(unit, c.config.UnitWidth),
				c.config.DescriptionWidth, truncate(desc, c.config.DescriptionWidth))
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.NameWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2),
				strings.Repeat("-", c.config.UnitWidth+2),
				strings.Repeat("-", c.config.DescriptionWidth+2))
		},
	}

	tmpl := `{{.Title}}
{{.Edition}}, {{.Period.ReportDate}}
Period: {{.Period.Start}} to {{.Period.End}} (day {{.Period.CurrentDay}} of {{.Period.DaysInMonth}}, {{.Period.Progress}}% complete)
{{range .Sections}}
=== {{.Title}} ===
{{range $key, $value := .Summary}}{{$key}}: {{$value}}
{{end}}
{{separator}}
{{formatRow "Name" "Value" "Unit" "Description"}}
{{separator}}
{{range .Details}}{{formatRow .Name .Value .Unit .Description}}
{{end}}{{separator}}
{{end}}`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(w, r)
}

// truncate shortens s to width runes, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width || width < 1 {
		return s
	}
	return string(runes[:width-1]) + "…"
}
