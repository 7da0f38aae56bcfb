package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/transmute-dev/transmute/cmd/transmute/commands"
	"github.com/transmute-dev/transmute/logger"
)

var rootCmd = &cobra.Command{
	Use:   "transmute",
	Short: "transmute - Source code conversion between languages",
	Long: `transmute - Convert source files into other programming languages.

transmute parses indentation-structured source, rebuilds it as a syntax
tree, and emits equivalent code for any of twenty target languages.

Available commands:
  translate - Convert source files to a target language
  targets   - List supported target languages
  watch     - Watch a directory and re-convert on change
  archive   - Convert files and bundle the outputs into an archive
  version   - Show version information

Examples:
  transmute translate fib.py -t ruby      # Convert one file to Ruby
  transmute translate src/*.py -t go      # Batch conversion
  transmute targets                       # Show all target languages
  transmute watch ./src -t javascript     # Live re-conversion
  transmute archive src/*.py -t rust      # Convert and bundle`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		if err := logger.Initialize(jsonOutput, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("json", false, "Output results as JSON")

	rootCmd.AddCommand(commands.TranslateCmd)
	rootCmd.AddCommand(commands.TargetsCmd)
	rootCmd.AddCommand(commands.WatchCmd)
	rootCmd.AddCommand(commands.ArchiveCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
