package snapshot

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/benefique/cfo-times/pkg/models/domain"
)

const SchemeFile = "file"

type fileSource struct {
	path string
}

func NewFileSource(path string) Source {
	return &fileSource{path: path}
}

func (f *fileSource) URI() string {
	return SchemeFile + "://" + f.path
}

func (f *fileSource) Load(ctx context.Context) (*domain.Snapshot, error) {
	zerolog.Ctx(ctx).Debug().Str("path", f.path).Msg("loading snapshot file")

	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot file: %w", err)
	}
	defer file.Close()

	snapshot, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.path, err)
	}
	return snapshot, nil
}
