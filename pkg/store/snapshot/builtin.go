package snapshot

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/benefique/cfo-times/pkg/models/domain"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

const SchemeBuiltin = "builtin"

type builtinSource struct {
	name string
}

// NewBuiltinSource serves one of the snapshots compiled into the binary.
func NewBuiltinSource(name string) (Source, error) {
	names, err := BuiltinNames()
	if err != nil {
		return nil, err
	}
	if !slices.Contains(names, name) {
		return nil, fmt.Errorf("unknown builtin snapshot %q (available: %s)", name, strings.Join(names, ", "))
	}
	return &builtinSource{name: name}, nil
}

func (b *builtinSource) URI() string {
	return SchemeBuiltin + ":" + b.name
}

func (b *builtinSource) Load(ctx context.Context) (*domain.Snapshot, error) {
	zerolog.Ctx(ctx).Debug().Str("source", b.URI()).Msg("loading builtin snapshot")

	data, err := builtinFS.ReadFile(path.Join("builtin", b.name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to read builtin snapshot %q: %w", b.name, err)
	}
	return Decode(bytes.NewReader(data))
}

// BuiltinNames lists the embedded snapshots in lexical order.
func BuiltinNames() ([]string, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("failed to list builtin snapshots: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	return names, nil
}
