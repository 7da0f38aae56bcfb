package commands

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/transmute-dev/transmute/config"
	"github.com/transmute-dev/transmute/convert"
	"github.com/transmute-dev/transmute/display"
)

var (
	translateTarget    string
	translateOutputDir string
	translateNoHeader  bool
)

// timeRounding keeps durations readable in summaries.
const timeRounding = time.Millisecond

// TranslateCmd represents the translate command
var TranslateCmd = &cobra.Command{
	Use:   "translate [files...]",
	Short: "Convert source files to a target language",
	Long: `Convert one or more source files to the chosen target language.

Each file is parsed into a syntax tree and re-emitted in the target
language. Constructs that cannot be translated are replaced with a
placeholder token rather than aborting the conversion. Files that fail
to parse entirely are kept verbatim under a comment banner, so a batch
never loses content.

Examples:
  transmute translate fib.py -t ruby
  transmute translate src/a.py src/b.py -t go -o out/
  transmute translate fib.py -t java --no-header`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTranslate,
}

func init() {
	TranslateCmd.Flags().StringVarP(&translateTarget, "target", "t", "", "Target language (default from config)")
	TranslateCmd.Flags().StringVarP(&translateOutputDir, "output-dir", "o", "", "Directory for converted files (default: next to source)")
	TranslateCmd.Flags().BoolVar(&translateNoHeader, "no-header", false, "Omit the generated credit header")
}

// fileReport is the JSON shape for one converted file.
type fileReport struct {
	Source      string `json:"source"`
	Output      string `json:"output,omitempty"`
	Target      string `json:"target"`
	Fallback    bool   `json:"fallback"`
	OutputLines int    `json:"output_lines"`
	Error       string `json:"error,omitempty"`
}

// batchReport is the JSON shape for a whole translate run.
type batchReport struct {
	BatchID   string       `json:"batch_id"`
	Target    string       `json:"target"`
	Converted int          `json:"converted"`
	Fallbacks int          `json:"fallbacks"`
	Failed    int          `json:"failed"`
	Files     []fileReport `json:"files"`
}

func runTranslate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	applyTranslateFlags(cfg)

	target := translateTarget
	if target == "" {
		target = cfg.Translate.DefaultTarget
	}

	engine := convert.NewEngine(cfg)

	jsonOutput := display.ShouldOutputJSON(cmd)
	var bar *pterm.ProgressbarPrinter
	if !jsonOutput && len(args) > 1 {
		if bar, err = display.NewProgress("Converting", len(args)); err == nil {
			engine.Progress = func(completed, total int) { bar.Increment() }
		}
	}

	batch := engine.ConvertAll(cmd.Context(), args, target)
	if bar != nil {
		_, _ = bar.Stop()
	}

	if jsonOutput {
		return display.OutputJSON(buildBatchReport(args, target, batch))
	}
	return printBatchSummary(args, batch)
}

// applyTranslateFlags overlays command-line flags onto the loaded config.
func applyTranslateFlags(cfg *config.Config) {
	if translateOutputDir != "" {
		cfg.Output.Dir = translateOutputDir
	}
	if translateNoHeader {
		cfg.Translate.CreditHeader = false
	}
}

func buildBatchReport(paths []string, target string, batch *convert.BatchResult) batchReport {
	report := batchReport{
		BatchID:   batch.ID,
		Target:    target,
		Converted: batch.Converted(),
		Fallbacks: batch.Fallbacks(),
		Failed:    len(batch.Failures),
	}
	resultIdx := 0
	for _, path := range paths {
		if err, failed := batch.Failures[path]; failed {
			report.Files = append(report.Files, fileReport{
				Source: path,
				Target: target,
				Error:  err.Error(),
			})
			continue
		}
		if resultIdx >= len(batch.Results) {
			break
		}
		r := batch.Results[resultIdx]
		resultIdx++
		report.Files = append(report.Files, fileReport{
			Source:      path,
			Output:      r.OutputPath,
			Target:      r.Target,
			Fallback:    r.Fallback,
			OutputLines: r.Stats.OutputLines,
		})
	}
	return report
}

func printBatchSummary(paths []string, batch *convert.BatchResult) error {
	resultIdx := 0
	for _, path := range paths {
		if err, failed := batch.Failures[path]; failed {
			fmt.Printf("✗ %s: %v\n", path, err)
			continue
		}
		if resultIdx >= len(batch.Results) {
			break
		}
		r := batch.Results[resultIdx]
		resultIdx++
		if r.Fallback {
			display.Warning(fmt.Sprintf("%s kept verbatim (parse failed) → %s", path, r.OutputPath))
		} else {
			fmt.Printf("✓ %s → %s (%d lines)\n", path, r.OutputPath, r.Stats.OutputLines)
		}
	}

	if len(batch.Failures) > 0 {
		return fmt.Errorf("%d of %d files failed", len(batch.Failures), len(paths))
	}
	display.Success(fmt.Sprintf("Converted %d files in %s", batch.Converted(), batch.Duration.Round(timeRounding)))
	return nil
}
