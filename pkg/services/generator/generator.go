// Package generator loads a snapshot, assembles the page and renders it.
package generator

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/benefique/cfo-times/pkg/models/domain"
	"github.com/benefique/cfo-times/pkg/render"
	"github.com/benefique/cfo-times/pkg/runtime/terminal/export"
	"github.com/benefique/cfo-times/pkg/services/report"
	"github.com/benefique/cfo-times/pkg/store/snapshot"
)

const (
	FormatHTML  = "html"
	FormatJSON  = "json"
	FormatText  = "text"
	FormatTable = "table"
)

type Request struct {
	Source  string
	Format  string
	Options snapshot.Options
}

type Generator struct {
	sources   snapshot.Registry
	renderers map[string]render.Renderer
}

func New(sources snapshot.Registry) (*Generator, error) {
	html, err := render.NewHTML()
	if err != nil {
		return nil, err
	}

	return &Generator{
		sources: sources,
		renderers: map[string]render.Renderer{
			FormatHTML:  html,
			FormatJSON:  render.NewJSON(),
			FormatText:  export.NewTextReporter(),
			FormatTable: export.NewTableReporter(),
		},
	}, nil
}

// Formats lists the supported output formats in lexical order.
func (g *Generator) Formats() []string {
	return slices.Sorted(maps.Keys(g.renderers))
}

func (g *Generator) Renderer(format string) (render.Renderer, error) {
	r, ok := g.renderers[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("unsupported format %q (supported: %s)", format, strings.Join(g.Formats(), ", "))
	}
	return r, nil
}

// Load resolves and loads the snapshot behind uri.
func (g *Generator) Load(ctx context.Context, uri string, opts snapshot.Options) (*domain.Snapshot, error) {
	src, err := g.sources.Open(ctx, uri, opts)
	if err != nil {
		return nil, err
	}

	s, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot from %s: %w", src.URI(), err)
	}

	zerolog.Ctx(ctx).Info().
		Str("source", src.URI()).
		Str("client", s.Config.ClientName).
		Str("report_date", s.Config.ReportDate.Format(domain.ReportDateLayout)).
		Msg("snapshot loaded")
	return s, nil
}

// Generate writes the rendered report for req to w.
func (g *Generator) Generate(ctx context.Context, req Request, w io.Writer) error {
	r, err := g.Renderer(req.Format)
	if err != nil {
		return err
	}

	s, err := g.Load(ctx, req.Source, req.Options)
	if err != nil {
		return err
	}

	page, err := report.Build(s)
	if err != nil {
		return err
	}

	if err := r.Render(w, page); err != nil {
		return err
	}
	zerolog.Ctx(ctx).Debug().Str("format", req.Format).Msg("report rendered")
	return nil
}
