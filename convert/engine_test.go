package convert

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transmute-dev/transmute/config"
	"github.com/transmute-dev/transmute/errors"
)

func testConfig() *config.Config {
	return &config.Config{
		Translate: config.TranslateConfig{
			DefaultTarget: "javascript",
			CreditHeader:  false,
			KeepUnparsed:  true,
		},
	}
}

const fibSource = "def fib(n):\n" +
	"    if n < 2:\n" +
	"        return n\n" +
	"    return fib(n - 1) + fib(n - 2)\n" +
	"print(fib(10))\n"

func TestConvertSource(t *testing.T) {
	e := NewEngine(testConfig())

	res, err := e.ConvertSource(fibSource, "fib.py", "javascript")
	require.NoError(t, err)

	assert.False(t, res.Fallback)
	assert.Equal(t, "javascript", res.Target)
	assert.Contains(t, res.Output, "function fib(n) {")
	assert.Contains(t, res.Output, "console.log(fib(10));")
	assert.Equal(t, 5, res.Stats.SourceLines)
	assert.Greater(t, res.Stats.OutputLines, 0)
}

func TestConvertSourceResolvesAlias(t *testing.T) {
	e := NewEngine(testConfig())
	res, err := e.ConvertSource("x = 1\n", "", "rb")
	require.NoError(t, err)
	assert.Equal(t, "ruby", res.Target)
}

func TestConvertSourceUnknownTarget(t *testing.T) {
	e := NewEngine(testConfig())
	_, err := e.ConvertSource("x = 1\n", "", "cobol")
	require.Error(t, err)
	assert.True(t, errors.IsUnknownTargetError(err))
}

func TestCreditHeaderPlacement(t *testing.T) {
	cfg := testConfig()
	cfg.Translate.CreditHeader = true
	e := NewEngine(cfg)

	res, err := e.ConvertSource("x = 1\n", "vars.py", "ruby")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.Output, "# "), "header must lead the file")
	assert.Contains(t, res.Output, "Converted by transmute")
	assert.Contains(t, res.Output, "Python -> Ruby")

	// Script tags must stay on line one; the banner slides below them.
	res, err = e.ConvertSource("x = 1\n", "vars.py", "php")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.Output, "<?php\n"))
	assert.Contains(t, res.Output, "// Converted by transmute")
}

func TestVerbatimFallback(t *testing.T) {
	e := NewEngine(testConfig())

	res, err := e.ConvertSource("def broken(:\n    pass\n", "broken.py", "javascript")
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.Contains(t, res.Output, "// transmute: source kept verbatim")
	assert.Contains(t, res.Output, "def broken(:")
}

func TestFallbackDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Translate.KeepUnparsed = false
	e := NewEngine(cfg)

	_, err := e.ConvertSource("def broken(:\n    pass\n", "broken.py", "javascript")
	require.Error(t, err)
	assert.True(t, errors.IsParseUnavailableError(err))
}

func TestGoImportSynthesis(t *testing.T) {
	e := NewEngine(testConfig())

	res, err := e.ConvertSource("print(\"hi\")\n", "", "go")
	require.NoError(t, err)
	assert.Contains(t, res.Output, "package main\nimport \"fmt\"\n")
	assert.Contains(t, res.Output, "fmt.Println(\"hi\")")

	// No fmt usage, no import.
	res, err = e.ConvertSource("x = 1\n", "", "go")
	require.NoError(t, err)
	assert.NotContains(t, res.Output, `import "fmt"`)
}

func TestPerlGetsUseStrict(t *testing.T) {
	e := NewEngine(testConfig())
	res, err := e.ConvertSource("x = 1\n", "", "perl")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(res.Output, "use strict;\n"))
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "fib.py")
	require.NoError(t, os.WriteFile(src, []byte(fibSource), 0644))

	e := NewEngine(testConfig())
	res, err := e.ConvertFile(src, "ruby")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "fib.rb"), res.OutputPath)
	data, err := os.ReadFile(res.OutputPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "def fib(n)")
}

func TestConvertFileUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "prog.xyz")
	require.NoError(t, os.WriteFile(src, []byte("x = 1\n"), 0644))

	e := NewEngine(testConfig())
	_, err := e.ConvertFile(src, "ruby")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnknownSource))
}

func TestConvertFileUnsupportedSource(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "prog.rb")
	require.NoError(t, os.WriteFile(src, []byte("x = 1\n"), 0644))

	e := NewEngine(testConfig())
	_, err := e.ConvertFile(src, "python")
	require.Error(t, err)
	assert.True(t, errors.IsParseUnavailableError(err))
}

func TestSameTargetNeverOverwritesSource(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "fib.py")
	require.NoError(t, os.WriteFile(src, []byte(fibSource), 0644))

	// Empty suffix plus a same-language target maps onto the source path.
	e := NewEngine(testConfig())
	_, err := e.ConvertFile(src, "python")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overwrite")
	data, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, fibSource, string(data))

	// The default suffix keeps the destination distinct.
	cfg := testConfig()
	cfg.Output.Suffix = "_translated"
	res, err := NewEngine(cfg).ConvertFile(src, "python")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "fib_translated.py"), res.OutputPath)
}

func TestOutputPathSuffixAndDir(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")
	cfg := testConfig()
	cfg.Output.Dir = outDir
	cfg.Output.Suffix = "_converted"
	e := NewEngine(cfg)

	got, err := e.outputPath("/src/app.py", "typescript")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "app_converted.ts"), got)
	assert.DirExists(t, outDir)
}

func TestCountLines(t *testing.T) {
	assert.Equal(t, 0, countLines(""))
	assert.Equal(t, 1, countLines("x\n"))
	assert.Equal(t, 2, countLines("a\nb"))
}
