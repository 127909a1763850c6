package redirect

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bull/docs-site-tools/internal/fsutil"
)

// Result lists the stub files written by a Generate call.
type Result struct {
	Paths []string
}

// Generator writes redirect stubs below a built site directory.
type Generator struct {
	siteDir string
	logger  *slog.Logger
}

// NewGenerator creates a generator rooted at siteDir.
func NewGenerator(siteDir string, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		siteDir: siteDir,
		logger:  logger,
	}
}

// Generate writes <siteDir>/<directory>/index.html for every redirect,
// creating directories as needed. It stops at the first failure.
func (g *Generator) Generate(redirects []Redirect) (*Result, error) {
	result := &Result{}

	for _, r := range redirects {
		if err := validateName(r.Directory); err != nil {
			return result, err
		}
		if err := validateName(r.Section); err != nil {
			return result, err
		}

		dir := filepath.Join(g.siteDir, r.Directory)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return result, fmt.Errorf("%w: %w", ErrWrite, err)
		}

		path := filepath.Join(dir, "index.html")
		if err := fsutil.WriteFileAtomic(path, Stub(r), 0o644); err != nil {
			return result, fmt.Errorf("%w: %w", ErrWrite, err)
		}

		g.logger.Debug("Wrote redirect", "path", path, "target", r.Target())
		result.Paths = append(result.Paths, path)
	}

	g.logger.Info("Redirects written", "site", g.siteDir, "count", len(result.Paths))
	return result, nil
}
