// Package main provides the CLI that renders Leaf templates as highlighted HTML.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/bull/docs-site-tools/internal/leaf"
)

var (
	style      string
	standalone bool
)

var rootCmd = &cobra.Command{
	Use:   "highlight-leaf [file]",
	Short: "Render a Leaf template as syntax-highlighted HTML",
	Long: `Reads a Leaf template from the given file, or from stdin when the file is
omitted or "-", and writes highlighted HTML to stdout.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runHighlight,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&style, "style", "github", "chroma style name")
	flags.BoolVar(&standalone, "standalone", false, "write a complete HTML page")
}

func main() {
	// Load .env file if present (local development), ignore if missing
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runHighlight(cmd *cobra.Command, args []string) error {
	var (
		source []byte
		err    error
	)
	if len(args) == 0 || args[0] == "-" {
		source, err = io.ReadAll(cmd.InOrStdin())
	} else {
		source, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("read template: %w", err)
	}

	if err := leaf.Highlight(cmd.OutOrStdout(), string(source), style, standalone); err != nil {
		return fmt.Errorf("highlight: %w", err)
	}
	return nil
}
