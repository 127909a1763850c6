// Package main provides the CLI that writes redirect stubs for moved documentation directories.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/bull/docs-site-tools/internal/config"
	"github.com/bull/docs-site-tools/internal/logging"
	"github.com/bull/docs-site-tools/internal/redirect"
)

var (
	configFile string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "setup-redirects",
	Short: "Write redirect pages for documentation directories that moved",
	Long: `For every directory that moved under a new section, writes
<site>/<directory>/index.html with a meta refresh to /<section>/<directory>/.

Environment variables:
  DOCS_SITE_DIR  Built site root (default: site)`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runRedirects,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&configFile, "config", "", "config file (default: ./docs-tools.yaml if present)")
	flags.String("site-dir", "", "built site root")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	// Load .env file if present (local development), ignore if missing
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runRedirects(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	redirects, err := redirect.Table(cfg.Redirects)
	if err != nil {
		return fmt.Errorf("redirect table: %w", err)
	}

	logger := logging.New(cmd.ErrOrStderr(), verbose)

	result, err := redirect.NewGenerator(cfg.SiteDir, logger).Generate(redirects)
	if err != nil {
		return fmt.Errorf("write redirects: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d redirects under %s\n", len(result.Paths), cfg.SiteDir)
	return nil
}
