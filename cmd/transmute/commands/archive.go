package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/transmute-dev/transmute/archive"
	"github.com/transmute-dev/transmute/config"
	"github.com/transmute-dev/transmute/convert"
	"github.com/transmute-dev/transmute/display"
	"github.com/transmute-dev/transmute/version"
)

var (
	archiveTarget string
	archiveOutput string
	archiveFormat string
	archiveLevel  int
)

// ArchiveCmd represents the archive command
var ArchiveCmd = &cobra.Command{
	Use:   "archive [files...]",
	Short: "Convert files and bundle the outputs into an archive",
	Long: `Convert one or more source files to the target language and bundle
the converted outputs into a single archive.

Supported formats: zip, tar.gz, tar.zst

Examples:
  transmute archive src/*.py -t ruby
  transmute archive src/*.py -t go --format tar.zst --output dist.tar.zst`,
	Args: cobra.MinimumNArgs(1),
	RunE: runArchive,
}

func init() {
	ArchiveCmd.Flags().StringVarP(&archiveTarget, "target", "t", "", "Target language (default from config)")
	ArchiveCmd.Flags().StringVar(&archiveOutput, "output", "", "Archive file to write (default: transmute-<target>.<ext>)")
	ArchiveCmd.Flags().StringVar(&archiveFormat, "format", "", "Archive format: zip, tar.gz, tar.zst (default from config)")
	ArchiveCmd.Flags().IntVar(&archiveLevel, "level", 0, "Compression level (default from config)")
}

func runArchive(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	target := archiveTarget
	if target == "" {
		target = cfg.Translate.DefaultTarget
	}

	formatName := archiveFormat
	if formatName == "" {
		formatName = cfg.Archive.Format
	}
	format, err := archive.ParseFormat(formatName)
	if err != nil {
		return err
	}
	level := archiveLevel
	if level == 0 {
		level = cfg.Archive.Level
	}

	engine := convert.NewEngine(cfg)
	batch := engine.ConvertAll(cmd.Context(), args, target)
	if len(batch.Failures) > 0 {
		for path, convErr := range batch.Failures {
			fmt.Printf("✗ %s: %v\n", path, convErr)
		}
		return fmt.Errorf("%d of %d files failed to convert", len(batch.Failures), len(args))
	}
	if len(batch.Results) == 0 {
		return fmt.Errorf("nothing to archive")
	}

	outputs := make([]string, 0, len(batch.Results))
	for _, r := range batch.Results {
		outputs = append(outputs, r.OutputPath)
	}

	dest := archiveOutput
	if dest == "" {
		dest = "transmute-" + strings.ToLower(target) + format.Extension()
	}

	stats, err := archive.Create(dest, outputs, archive.Options{
		Format: format,
		Level:  level,
		Readme: archiveReadme(target, batch),
	})
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(struct {
			Archive       string `json:"archive"`
			Format        string `json:"format"`
			Files         int    `json:"files"`
			OriginalBytes int64  `json:"original_bytes"`
			ArchiveBytes  int64  `json:"archive_bytes"`
		}{Archive: dest, Format: formatName, Files: len(outputs), OriginalBytes: stats.OriginalBytes, ArchiveBytes: stats.ArchiveBytes})
	}

	display.Success(fmt.Sprintf("Archived %d converted files to %s (%d → %d bytes)",
		len(outputs), dest, stats.OriginalBytes, stats.ArchiveBytes))
	return nil
}

// archiveReadme describes the archive contents for the README.txt entry.
func archiveReadme(target string, batch *convert.BatchResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", version.Get().String())
	fmt.Fprintf(&b, "Target language: %s\n\nContents:\n", target)
	for _, r := range batch.Results {
		fmt.Fprintf(&b, "  %s (%d lines)\n", filepath.Base(r.OutputPath), r.Stats.OutputLines)
	}
	return b.String()
}
