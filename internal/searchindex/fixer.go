package searchindex

import (
	"fmt"
	"log/slog"
	"time"
)

// FixOptions controls a Fixer run.
type FixOptions struct {
	// UseIndexLanguages adds the codes listed in the index's own config.lang
	// to the excluded set.
	UseIndexLanguages bool
	// DryRun reports what would be removed without rewriting the file.
	DryRun bool
}

// FixResult contains statistics about a filter run.
type FixResult struct {
	Path            string
	TotalDocs       int
	KeptDocs        int
	RemovedDocs     int
	RemovedByPrefix map[string]int
	Excluded        Prefixes
	Written         bool
	Duration        time.Duration
}

// Fixer removes translated-language documents from a search index file in place.
type Fixer struct {
	excluded Prefixes
	opts     FixOptions
	logger   *slog.Logger
}

// NewFixer creates a Fixer excluding the given prefixes.
func NewFixer(excluded Prefixes, opts FixOptions, logger *slog.Logger) *Fixer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fixer{
		excluded: excluded,
		opts:     opts,
		logger:   logger,
	}
}

// Run loads the index at path, filters it and writes it back.
// Nothing is written unless the index was read and decoded successfully.
func (f *Fixer) Run(path string) (*FixResult, error) {
	start := time.Now()

	// 1. Load and validate
	index, err := Load(path)
	if err != nil {
		return nil, err
	}

	// 2. Resolve the excluded set
	excluded := f.excluded
	if f.opts.UseIndexLanguages {
		settings, err := index.Settings()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		excluded = excluded.Merge(NewPrefixes(settings.Lang...))
	}
	f.logger.Debug("Filtering search index", "path", path, "docs", len(index.Docs), "excluded", excluded.Codes())

	// 3. Filter
	filtered := Filter(index, excluded)
	result := &FixResult{
		Path:            path,
		TotalDocs:       len(index.Docs),
		KeptDocs:        len(filtered.Docs),
		RemovedDocs:     len(index.Docs) - len(filtered.Docs),
		RemovedByPrefix: countByPrefix(index.Docs, excluded),
		Excluded:        excluded,
	}

	// 4. Write back
	if f.opts.DryRun {
		f.logger.Info("Dry run, search index left unchanged", "path", path)
	} else {
		if err := Save(path, filtered); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		result.Written = true
	}

	result.Duration = time.Since(start)
	f.logger.Info("Search index filtered",
		"path", path,
		"total", result.TotalDocs,
		"kept", result.KeptDocs,
		"removed", result.RemovedDocs,
		"duration", result.Duration,
	)

	return result, nil
}
