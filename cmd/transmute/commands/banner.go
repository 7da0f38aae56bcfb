package commands

import (
	"fmt"

	"github.com/transmute-dev/transmute/logger"
	"github.com/transmute-dev/transmute/version"
)

// printStartupBanner prints the user-friendly watch-mode startup message
func printStartupBanner(verbosity int, dir, target string) {
	// ANSI escape codes
	cyan := "\033[36m"
	green := "\033[32m"
	yellow := "\033[33m"
	blue := "\033[34m"
	bold := "\033[1m"
	reset := "\033[0m"

	versionInfo := version.Get()

	fmt.Printf("\n%s%s", cyan, bold)
	fmt.Printf("   ╔═══════════════════════════════════════════╗\n")
	fmt.Printf("   ║                                           ║\n")
	fmt.Printf("   ║   ████████ ██████  ███    ███  ████████   ║\n")
	fmt.Printf("   ║      ██    ██   ██ ████  ████     ██      ║\n")
	fmt.Printf("   ║      ██    ██████  ██ ████ ██     ██      ║\n")
	fmt.Printf("   ║      ██    ██   ██ ██  ██  ██     ██      ║\n")
	fmt.Printf("   ║      ██    ██   ██ ██      ██     ██      ║\n")
	fmt.Printf("   ║                                           ║\n")
	fmt.Printf("   ╚═══════════════════════════════════════════╝%s\n\n", reset)

	fmt.Printf("%s%s┌─ transmute watch ───────────────────────────────────┐%s\n", green, bold, reset)
	fmt.Printf("%s│%s Version:   %s (commit %s)\n", green, reset, versionInfo.Version, versionInfo.Short())
	fmt.Printf("%s│%s Watching:  %s\n", green, reset, dir)
	fmt.Printf("%s│%s Target:    %s\n", green, reset, target)
	fmt.Printf("%s│%s Verbosity: %s\n", green, reset, logger.LevelName(verbosity))
	fmt.Printf("%s└─────────────────────────────────────────────────────┘%s\n", green, reset)

	fmt.Printf("\n%s%s✨ Save a source file to see it re-converted%s\n", yellow, bold, reset)
	fmt.Printf("%s💡 Press Ctrl+C to stop%s\n\n", blue, reset)
}
