package searchindex

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/bull/docs-site-tools/internal/fsutil"
)

// Load reads and decodes the search index at path.
func Load(path string) (*SearchIndex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrInputNotFound, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrInputUnreadable, err)
	}

	index, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return index, nil
}

// Save encodes index and atomically replaces the file at path.
func Save(path string, index *SearchIndex) error {
	data, err := Encode(index)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	if err := fsutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}
