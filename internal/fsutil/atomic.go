// Package fsutil provides file replacement helpers shared by the site tools.
package fsutil

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// WriteFileAtomic replaces filename with data so readers see either the old
// or the new content. A symlinked filename is written through to its target.
// If the file already exists its permission bits are kept; otherwise perm is used.
func WriteFileAtomic(filename string, data []byte, perm fs.FileMode) error {
	target := filename
	info, err := os.Lstat(filename)
	switch {
	case err == nil && info.Mode()&fs.ModeSymlink != 0:
		if target, err = filepath.EvalSymlinks(filename); err != nil {
			return fmt.Errorf("resolve %s: %w", filename, err)
		}
		if info, err = os.Stat(target); err == nil {
			perm = info.Mode().Perm()
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", target, err)
		}
	case err == nil:
		perm = info.Mode().Perm()
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("stat %s: %w", filename, err)
	}

	if err := atomic.WriteFile(target, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("replace %s: %w", target, err)
	}
	// The replacement starts out with the temp file's mode.
	if err := os.Chmod(target, perm); err != nil {
		return fmt.Errorf("chmod %s: %w", target, err)
	}

	return nil
}
