package worm

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/worm/worm/internal/engine"
	"github.com/worm/worm/internal/report"
	"github.com/worm/worm/internal/types"
)

var (
	flagNoColor bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the worm CLI. The search runs on
// the root command itself; subcommands cover the informational extras.
var rootCmd = &cobra.Command{
	Use:   "worm '<search_term>'",
	Short: "Recursively search files for a literal string",
	Long: `worm walks the tree under the current directory and reports every file
containing the search term, with a little context around each occurrence.
The term is matched literally; no pattern syntax applies. Dependency and
build directories are pruned and binary-looking files are skipped (see
"worm exclusions").`,
	Example:       `  worm 'func main() {'`,
	Version:       version,
	Args:          cobra.ArbitraryArgs,
	RunE:          runSearch,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the worm CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
}

func runSearch(cmd *cobra.Command, args []string) error {
	// Anything other than exactly one term prints usage guidance; the
	// process still exits zero.
	if len(args) != 1 {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Usage: worm '<search_term>'")
		fmt.Fprintln(out, "Example: worm 'func main() {'")
		return nil
	}
	query := args[0]

	noColor := flagNoColor || color.NoColor
	printer := report.NewPrinter(cmd.OutOrStdout(), noColor)
	errw := cmd.ErrOrStderr()

	printer.Header(query)
	res := engine.Run(engine.Config{Query: query}, func(m types.FileMatch) {
		printer.File(m)
	}, func(path string, err error) {
		report.Diagnostic(errw, path, err)
	})
	if res.FilesMatched == 0 {
		printer.NoMatches()
	}
	report.Summary(errw, res.FilesScanned, res.Duration)
	return nil
}
