// Package main provides the CLI that strips translated pages from the site search index.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/bull/docs-site-tools/internal/config"
	"github.com/bull/docs-site-tools/internal/logging"
	"github.com/bull/docs-site-tools/internal/searchindex"
)

var (
	configFile string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "fix-search-index",
	Short: "Remove translated pages from the generated search index",
	Long: `Rewrites the site's search_index.json in place, dropping every document
whose location starts with a translated language directory (for example "de/").

Run without arguments after the site build; defaults match the published site.

Environment variables:
  DOCS_SEARCH_INDEX        Search index path (default: site/search/search_index.json)
  DOCS_LANGUAGES           Comma-separated language codes to exclude
  DOCS_USE_INDEX_LANGUAGES Also exclude the codes listed in config.lang
  DOCS_DRY_RUN             Report without rewriting the file`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runFix,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&configFile, "config", "", "config file (default: ./docs-tools.yaml if present)")
	flags.String("index", "", "search index path")
	flags.StringSlice("languages", nil, "language codes to exclude")
	flags.Bool("use-index-langs", false, "also exclude the languages listed in the index config")
	flags.Bool("dry-run", false, "report what would be removed without writing")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	// Load .env file if present (local development), ignore if missing
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runFix(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(cmd.ErrOrStderr(), verbose)
	excluded := searchindex.NewPrefixes(cfg.Languages...)
	fixer := searchindex.NewFixer(excluded, searchindex.FixOptions{
		UseIndexLanguages: cfg.UseIndexLanguages,
		DryRun:            cfg.DryRun,
	}, logger)

	result, err := fixer.Run(cfg.SearchIndex)
	if err != nil {
		return fmt.Errorf("fix search index: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Search index: %s\n", result.Path)
	fmt.Fprintf(out, "  Documents: %d kept, %d removed (of %d)\n", result.KeptDocs, result.RemovedDocs, result.TotalDocs)

	prefixes := make([]string, 0, len(result.RemovedByPrefix))
	for prefix := range result.RemovedByPrefix {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)
	for _, prefix := range prefixes {
		fmt.Fprintf(out, "    %-4s %d\n", prefix, result.RemovedByPrefix[prefix])
	}

	if !result.Written {
		fmt.Fprintln(out, "  Dry run: file not modified")
	}

	return nil
}
