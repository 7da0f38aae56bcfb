package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/transmute-dev/transmute/config"
	"github.com/transmute-dev/transmute/convert"
	"github.com/transmute-dev/transmute/errors"
)

var watchTarget string

// WatchCmd represents the watch command
var WatchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Watch a directory and re-convert on change",
	Long: `Watch a directory for source file changes and re-convert each
changed file to the target language.

Conversions are debounced so rapid editor saves only trigger one run,
and rate-limited so a mass change (e.g. a branch switch) cannot flood
the output directory. Press Ctrl+C to stop.

Examples:
  transmute watch ./src -t ruby
  transmute watch . --target go -o out/`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	WatchCmd.Flags().StringVarP(&watchTarget, "target", "t", "", "Target language (default from config)")
	WatchCmd.Flags().StringVarP(&translateOutputDir, "output-dir", "o", "", "Directory for converted files (default: next to source)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	applyTranslateFlags(cfg)

	target := watchTarget
	if target == "" {
		target = cfg.Translate.DefaultTarget
	}

	verbosity, _ := cmd.Flags().GetCount("verbose")
	printStartupBanner(verbosity, args[0], target)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Hot-reload the config while watching; flag overlays win over file
	// edits, so re-apply them after each reload.
	go func() {
		_ = config.Watch(ctx, func(updated *config.Config) {
			*cfg = *updated
			applyTranslateFlags(cfg)
		})
	}()

	watcher := convert.NewWatcher(convert.NewEngine(cfg), target)
	if err := watcher.Watch(ctx, args[0]); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	fmt.Println("\nStopped watching.")
	return nil
}
