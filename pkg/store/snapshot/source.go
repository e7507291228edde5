// Package snapshot loads report snapshots from local and remote sources.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/benefique/cfo-times/pkg/adapters"
	"github.com/benefique/cfo-times/pkg/models/domain"
	"github.com/benefique/cfo-times/pkg/models/store"
)

var ErrEmptyDocument = errors.New("snapshot document is empty")

// Source yields one validated snapshot.
type Source interface {
	Load(ctx context.Context) (*domain.Snapshot, error)
	URI() string
}

// Decode reads a YAML or JSON snapshot document. Unknown keys are rejected so
// that a misspelled field fails instead of silently reading as absent.
func Decode(r io.Reader) (*domain.Snapshot, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc store.SnapshotDocument
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("failed to decode snapshot document: %w", err)
	}

	return adapters.MapStoreSnapshotToDomain(doc)
}
