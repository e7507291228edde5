package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benefique/cfo-times/pkg/models/api"
	"github.com/benefique/cfo-times/pkg/models/domain"
	"github.com/benefique/cfo-times/pkg/store/snapshot"
)

func newGenerator(t *testing.T) *Generator {
	t.Helper()
	g, err := New(snapshot.DefaultRegistry())
	require.NoError(t, err)
	return g
}

func TestGenerator_Formats(t *testing.T) {
	g := newGenerator(t)
	assert.Equal(t, []string{"html", "json", "table", "text"}, g.Formats())

	r, err := g.Renderer("HTML")
	require.NoError(t, err)
	assert.Equal(t, "text/html; charset=utf-8", r.ContentType())

	_, err = g.Renderer("pdf")
	assert.ErrorContains(t, err, `unsupported format "pdf"`)
}

func TestGenerator_Generate(t *testing.T) {
	g := newGenerator(t)

	for _, format := range g.Formats() {
		t.Run(format, func(t *testing.T) {
			var first, second bytes.Buffer
			req := Request{Source: "builtin:titan", Format: format}
			require.NoError(t, g.Generate(context.Background(), req, &first))
			require.NoError(t, g.Generate(context.Background(), req, &second))

			assert.NotEmpty(t, first.Bytes())
			assert.Equal(t, first.Bytes(), second.Bytes())
			assert.Contains(t, first.String(), "$193K")
		})
	}
}

func TestGenerator_GenerateJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newGenerator(t).Generate(context.Background(), Request{Source: "builtin:titan", Format: "json"}, &buf))

	var got api.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "big-picture", got.Sections[0].Key)
}

func TestGenerator_Errors(t *testing.T) {
	g := newGenerator(t)
	var buf bytes.Buffer

	err := g.Generate(context.Background(), Request{Source: "builtin:titan", Format: "pdf"}, &buf)
	assert.Error(t, err)

	err = g.Generate(context.Background(), Request{Source: "builtin:acme", Format: "html"}, &buf)
	assert.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestGenerator_LoadInvalid(t *testing.T) {
	reg := snapshot.NewRegistry()
	require.NoError(t, reg.Register("mem", memFactory(`config: {client_name: Acme}`)))

	g, err := New(reg)
	require.NoError(t, err)

	_, err = g.Load(context.Background(), "mem:acme", snapshot.Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidSnapshot))
}

type memSource struct {
	doc string
}

func (m memSource) URI() string { return "mem:" }

func (m memSource) Load(context.Context) (*domain.Snapshot, error) {
	return snapshot.Decode(strings.NewReader(m.doc))
}

func memFactory(doc string) snapshot.SourceFactory {
	return func(context.Context, *url.URL, snapshot.Options) (snapshot.Source, error) {
		return memSource{doc: doc}, nil
	}
}
