// Package config holds the transmute configuration, loaded with Viper from
// TOML files and TRANSMUTE_* environment variables.
package config

import (
	"os"

	"github.com/spf13/viper"
)

// DefaultDirPermissions for created config directories
const DefaultDirPermissions = os.FileMode(0755)

// Config is the complete transmute configuration
type Config struct {
	Translate TranslateConfig `mapstructure:"translate"`
	Output    OutputConfig    `mapstructure:"output"`
	Archive   ArchiveConfig   `mapstructure:"archive"`
	Watch     WatchConfig     `mapstructure:"watch"`
	Log       LogConfig       `mapstructure:"log"`
}

// TranslateConfig controls conversion behavior
type TranslateConfig struct {
	// DefaultTarget is used when no target language is given
	DefaultTarget string `mapstructure:"default_target"`
	// CreditHeader toggles the attribution banner on converted files
	CreditHeader bool `mapstructure:"credit_header"`
	// KeepUnparsed keeps unparseable lines verbatim instead of failing
	KeepUnparsed bool `mapstructure:"keep_unparsed"`
	// Workers bounds batch conversion concurrency (0 means NumCPU)
	Workers int `mapstructure:"workers"`
}

// OutputConfig controls where converted files land
type OutputConfig struct {
	// Dir is the output directory; empty writes next to the source
	Dir string `mapstructure:"dir"`
	// Suffix is appended to the base name before the target extension
	Suffix string `mapstructure:"suffix"`
}

// ArchiveConfig controls result bundling
type ArchiveConfig struct {
	// Format is one of zip, tar.gz, tar.zst
	Format string `mapstructure:"format"`
	// Level is the compression level where the format supports one
	Level int `mapstructure:"level"`
}

// WatchConfig controls watch mode
type WatchConfig struct {
	// DebounceMS is the quiet period after a write before reconverting
	DebounceMS int `mapstructure:"debounce_ms"`
	// MaxPerSecond rate-limits conversions under editor save storms
	MaxPerSecond float64 `mapstructure:"max_per_second"`
}

// LogConfig controls logger initialization
type LogConfig struct {
	// JSON switches structured JSON output on
	JSON bool `mapstructure:"json"`
}

// SetDefaults applies the default configuration values
func SetDefaults(v *viper.Viper) {
	v.SetDefault("translate.default_target", "javascript")
	v.SetDefault("translate.credit_header", true)
	v.SetDefault("translate.keep_unparsed", true)
	v.SetDefault("translate.workers", 0)

	v.SetDefault("output.dir", "")
	v.SetDefault("output.suffix", "_translated")

	v.SetDefault("archive.format", "zip")
	v.SetDefault("archive.level", 6)

	v.SetDefault("watch.debounce_ms", 200)
	v.SetDefault("watch.max_per_second", 4.0)

	v.SetDefault("log.json", false)
}
