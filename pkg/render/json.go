package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/benefique/cfo-times/pkg/adapters"
	"github.com/benefique/cfo-times/pkg/services/report"
)

// JSON writes the page summary as indented JSON.
type JSON struct{}

func NewJSON() *JSON {
	return &JSON{}
}

func (j *JSON) ContentType() string {
	return "application/json"
}

func (j *JSON) Render(w io.Writer, page *report.Page) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(adapters.MapReportDomainToApi(page.Summary())); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
