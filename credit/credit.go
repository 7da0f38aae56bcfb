// Package credit renders the attribution header stamped at the top of
// converted files, in the comment syntax of the output language.
package credit

import (
	"fmt"
	"strings"
	"time"

	"github.com/transmute-dev/transmute/catalog"
	"github.com/transmute-dev/transmute/version"
)

// Header describes the fields rendered into the banner.
type Header struct {
	// SourceFile is the original file name, empty for stdin input.
	SourceFile string
	// SourceLang and TargetLang are display names.
	SourceLang string
	TargetLang string
	// GeneratedAt defaults to the current time when zero.
	GeneratedAt time.Time
}

// Render produces the banner comment for the given output language,
// terminated by a blank line so the code below it breathes.
func Render(lang catalog.Language, h Header) string {
	when := h.GeneratedAt
	if when.IsZero() {
		when = time.Now()
	}

	lines := []string{
		fmt.Sprintf("Converted by transmute %s", version.Version),
		fmt.Sprintf("%s -> %s", h.SourceLang, h.TargetLang),
		fmt.Sprintf("Generated on %s", when.Format("2006-01-02 15:04")),
	}
	if h.SourceFile != "" {
		lines = append([]string{fmt.Sprintf("Source: %s", h.SourceFile)}, lines...)
	}

	var b strings.Builder
	if lang.CommentToken != "" {
		for _, l := range lines {
			b.WriteString(lang.CommentToken)
			b.WriteByte(' ')
			b.WriteString(l)
			b.WriteByte('\n')
		}
	} else {
		b.WriteString(lang.BlockOpen)
		b.WriteByte('\n')
		for _, l := range lines {
			b.WriteString(" * ")
			b.WriteString(l)
			b.WriteByte('\n')
		}
		b.WriteString(" ")
		b.WriteString(lang.BlockClose)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	return b.String()
}
