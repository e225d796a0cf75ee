package menuseed

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cafe-till/internal/model"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for CSV seed files on the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based menu seed loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "menu-seed-loader").Logger(),
	}
}

// Load reads a CSV seed file. Files ending in .gz are decompressed.
func (l *fileLoader) Load(ctx context.Context, filePath string) ([]model.MenuItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.logger.Info().Str("file", filePath).Msg("loading menu seed file")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open menu seed file")
		return nil, fmt.Errorf("failed to open menu seed file %s: %w", filePath, err)
	}
	defer file.Close()

	items, err := parseMaybeGzipped(file, filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to parse menu seed file")
		return nil, err
	}

	l.logger.Info().
		Str("file", filePath).
		Int("items_loaded", len(items)).
		Msg("menu seed file loaded successfully")

	return items, nil
}

// staticLoader always returns the same items regardless of path.
type staticLoader struct {
	items []model.MenuItem
}

// NewStaticLoader returns a Loader that serves items without any I/O.
func NewStaticLoader(items []model.MenuItem) Loader {
	return &staticLoader{items: items}
}

func (l *staticLoader) Load(ctx context.Context, _ string) ([]model.MenuItem, error) {
	out := make([]model.MenuItem, len(l.items))
	copy(out, l.items)
	return out, nil
}

func parseMaybeGzipped(r io.Reader, name string) ([]model.MenuItem, error) {
	if strings.HasSuffix(name, ".gz") {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader for %s: %w", name, err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	items, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return items, nil
}
