package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/benefique/cfo-times/pkg/adapters"
	"github.com/benefique/cfo-times/pkg/models/domain"
	"github.com/benefique/cfo-times/pkg/render"
	"github.com/benefique/cfo-times/pkg/services/report"
)

type document struct {
	contentType string
	body        []byte
}

// Handler serves one report edition. Every response is rendered once in
// NewHandler and shared read-only between requests.
type Handler struct {
	client   string
	page     document
	summary  document
	snapshot document
}

func NewHandler(s *domain.Snapshot, page, summary render.Renderer) (*Handler, error) {
	built, err := report.Build(s)
	if err != nil {
		return nil, err
	}

	h := &Handler{client: s.Config.ClientName}
	if h.page, err = renderDocument(page, built); err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}
	if h.summary, err = renderDocument(summary, built); err != nil {
		return nil, fmt.Errorf("failed to render summary: %w", err)
	}

	body, err := json.Marshal(adapters.MapSnapshotDomainToApi(s))
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	h.snapshot = document{contentType: "application/json", body: body}

	return h, nil
}

func renderDocument(r render.Renderer, page *report.Page) (document, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, page); err != nil {
		return document{}, err
	}
	return document{contentType: r.ContentType(), body: buf.Bytes()}, nil
}

func (h *Handler) GetPage(w http.ResponseWriter, r *http.Request) {
	h.write(w, r, h.page)
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	h.write(w, r, h.summary)
}

func (h *Handler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	h.write(w, r, h.snapshot)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
		"client": h.client,
	})
	if err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Msg("failed to encode health response")
	}
}

func (h *Handler) write(w http.ResponseWriter, r *http.Request, doc document) {
	w.Header().Set("Content-Type", doc.contentType)
	if _, err := w.Write(doc.body); err != nil {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("client", h.client).
			Msg("failed to write response")
	}
}
