// Package render writes an assembled report page in a document format.
package render

import (
	"io"

	"github.com/benefique/cfo-times/pkg/services/report"
)

// Renderer writes one page. Implementations must be deterministic: the same
// page always produces the same bytes.
type Renderer interface {
	Render(w io.Writer, page *report.Page) error
	ContentType() string
}
