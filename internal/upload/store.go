// Package upload stores product images uploaded through the catalog
// endpoints, on local disk or in S3 with a local fallback.
package upload

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Store persists an uploaded image and returns the public source
// recorded on the product (a served path or an absolute URL).
type Store interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}

// localStore implements Store on the local file system. Saved files
// are served from the static /images/ mount.
type localStore struct {
	dir    string
	logger zerolog.Logger
}

// NewLocalStore creates a file-system image store rooted at dir,
// creating the directory when absent.
func NewLocalStore(dir string, logger zerolog.Logger) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}

	return &localStore{
		dir:    dir,
		logger: logger.With().Str("component", "image-store").Logger(),
	}, nil
}

// Save writes the image under a collision-free name and returns its
// served path.
func (s *localStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	name := uniqueName(filename)
	path := filepath.Join(s.dir, name)

	file, err := os.Create(path)
	if err != nil {
		s.logger.Error().Err(err).Str("path", path).Msg("failed to create image file")
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, r); err != nil {
		s.logger.Error().Err(err).Str("path", path).Msg("failed to write image file")
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	s.logger.Debug().Str("file", name).Msg("image stored locally")

	return "/images/" + name, nil
}

// uniqueName generates a collision-free file name preserving the
// original extension.
func uniqueName(filename string) string {
	return uuid.New().String() + filepath.Ext(filename)
}
