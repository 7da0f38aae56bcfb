// Package convert orchestrates whole conversions: parsing source files,
// emitting target code, synthesizing target imports, stamping credit
// headers, and writing results. The emit package is the pure core; this
// package is everything around it that touches the filesystem and config.
package convert

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/transmute-dev/transmute/catalog"
	"github.com/transmute-dev/transmute/config"
	"github.com/transmute-dev/transmute/credit"
	"github.com/transmute-dev/transmute/emit"
	"github.com/transmute-dev/transmute/errors"
	"github.com/transmute-dev/transmute/logger"
	"github.com/transmute-dev/transmute/parser"
)

// sourceLanguage is the only language transmute parses as input.
const sourceLanguage = "python"

// Engine converts source files according to the loaded configuration.
type Engine struct {
	cfg *config.Config

	// Progress, when set, is called after each file in a batch completes.
	Progress func(completed, total int)
}

// NewEngine creates an engine with the given configuration.
func NewEngine(cfg *config.Config) *Engine {
	return &Engine{cfg: cfg}
}

// Result is the outcome of converting one source unit.
type Result struct {
	// Output is the converted text, including any credit header.
	Output string
	// Target is the canonical target language ID.
	Target string
	// OutputPath is set by ConvertFile.
	OutputPath string
	// Fallback is true when the source could not be parsed and was kept
	// verbatim instead.
	Fallback bool
	// Stats summarizes the conversion.
	Stats Stats
}

// Stats carries line counts and timing for one conversion.
type Stats struct {
	SourceLines int
	OutputLines int
	Duration    time.Duration
}

// ConvertSource converts source text to the target language. sourceFile is
// used for the credit header and may be empty.
func (e *Engine) ConvertSource(src, sourceFile, target string) (Result, error) {
	started := time.Now()

	profile, ok := emit.Lookup(target)
	if !ok {
		return Result{}, errors.NewUnknownTargetError(target)
	}
	targetLang, ok := catalog.GetByID(profile.ID)
	if !ok {
		return Result{}, errors.NewUnknownTargetError(target)
	}

	res := Result{Target: profile.ID}

	prog, err := parser.Parse(src)
	if err != nil {
		if !e.cfg.Translate.KeepUnparsed || !errors.IsParseUnavailableError(err) {
			return Result{}, err
		}
		// Unparseable input is kept verbatim so a batch never loses a
		// file; the banner makes the fallback visible.
		logger.Warnw("keeping source verbatim, parse failed",
			logger.FieldFile, sourceFile,
			logger.FieldError, err)
		res.Output = targetLang.LineComment("transmute: source kept verbatim, parse failed") + "\n" + src
		res.Fallback = true
	} else {
		output, err := emit.EmitProgram(prog, profile.ID)
		if err != nil {
			return Result{}, err
		}
		output = synthesizeImports(profile.ID, output)
		if err := emit.Validate(output, profile.ID); err != nil {
			logger.Warnw("structural check failed on emitted output",
				logger.FieldTarget, profile.ID,
				logger.FieldError, err)
		}
		res.Output = output
	}

	if e.cfg.Translate.CreditHeader {
		sourceLang, _ := catalog.GetByID(sourceLanguage)
		sourceName := ""
		if sourceFile != "" {
			sourceName = filepath.Base(sourceFile)
		}
		header := credit.Render(targetLang, credit.Header{
			SourceFile: sourceName,
			SourceLang: sourceLang.Name,
			TargetLang: targetLang.Name,
		})
		res.Output = placeHeader(profile, header, res.Output)
	}

	res.Stats = Stats{
		SourceLines: countLines(src),
		OutputLines: countLines(res.Output),
		Duration:    time.Since(started),
	}
	return res, nil
}

// ConvertFile converts a file on disk and writes the result next to it, or
// into the configured output directory.
func (e *Engine) ConvertFile(path, target string) (Result, error) {
	ext := filepath.Ext(path)
	src, ok := catalog.GetByExtension(ext)
	if !ok {
		return Result{}, errors.NewUnknownSourceError(ext)
	}
	if src.ID != sourceLanguage {
		return Result{}, errors.Wrapf(errors.ErrParseUnavailable,
			"no parser for %s sources", src.Name)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, errors.Wrapf(err, "reading %s", path)
	}

	res, err := e.ConvertSource(string(data), path, target)
	if err != nil {
		return Result{}, err
	}

	outPath, err := e.outputPath(path, res.Target)
	if err != nil {
		return Result{}, err
	}
	if err := os.WriteFile(outPath, []byte(res.Output), 0644); err != nil {
		return Result{}, errors.Wrapf(err, "writing %s", outPath)
	}
	res.OutputPath = outPath

	logger.Infow("converted",
		logger.FieldFile, path,
		logger.FieldOutput, outPath,
		logger.FieldTarget, res.Target,
		logger.FieldDurationMS, res.Stats.Duration.Milliseconds())
	return res, nil
}

// outputPath derives the destination path for a converted file.
func (e *Engine) outputPath(sourcePath, target string) (string, error) {
	lang, ok := catalog.GetByID(target)
	if !ok {
		return "", errors.NewUnknownTargetError(target)
	}

	base := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
	name := base + e.cfg.Output.Suffix + lang.Extension

	dir := e.cfg.Output.Dir
	if dir == "" {
		dir = filepath.Dir(sourcePath)
	} else if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrapf(err, "creating output dir %s", dir)
	}

	out := filepath.Join(dir, name)
	// With an empty suffix a same-language conversion would land on the
	// source file itself. Refuse rather than overwrite.
	if out == filepath.Clean(sourcePath) {
		return "", errors.Newf("output path %s would overwrite the source file", out)
	}
	return out, nil
}

// placeHeader inserts the credit banner, keeping mandatory first lines
// (script tags, shebang-style prologues) ahead of it.
func placeHeader(p *emit.Profile, header, output string) string {
	if p.Wrap == emit.WrapScriptTag {
		if idx := strings.Index(output, "\n"); idx >= 0 {
			return output[:idx+1] + header + output[idx+1:]
		}
	}
	return header + output
}

func countLines(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(strings.TrimRight(s, "\n"), "\n") + 1
}
