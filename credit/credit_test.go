package credit

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transmute-dev/transmute/catalog"
)

func TestRenderLineComments(t *testing.T) {
	py, ok := catalog.GetByID("python")
	require.True(t, ok)

	got := Render(py, Header{
		SourceFile:  "fib.py",
		SourceLang:  "Python",
		TargetLang:  "Ruby",
		GeneratedAt: time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC),
	})

	assert.Contains(t, got, "# Source: fib.py\n")
	assert.Contains(t, got, "# Python -> Ruby\n")
	assert.Contains(t, got, "# Generated on 2026-03-01 12:30\n")
	assert.True(t, strings.HasSuffix(got, "\n\n"), "header must end with a blank line")

	for _, line := range strings.Split(strings.TrimRight(got, "\n"), "\n") {
		assert.True(t, strings.HasPrefix(line, "#"), "line %q not commented", line)
	}
}

func TestRenderOmitsEmptySource(t *testing.T) {
	lua, _ := catalog.GetByID("lua")
	got := Render(lua, Header{SourceLang: "Python", TargetLang: "Lua"})
	assert.NotContains(t, got, "Source:")
	assert.Contains(t, got, "-- Python -> Lua\n")
}

func TestRenderBlockComments(t *testing.T) {
	css := catalog.Language{Name: "CSS", BlockOpen: "/*", BlockClose: "*/"}
	got := Render(css, Header{SourceLang: "Python", TargetLang: "CSS"})
	assert.True(t, strings.HasPrefix(got, "/*\n"))
	assert.Contains(t, got, " */\n")
	assert.Contains(t, got, " * Python -> CSS\n")
}

func TestRenderDefaultsTimestamp(t *testing.T) {
	sh, _ := catalog.GetByID("shell")
	got := Render(sh, Header{SourceLang: "Python", TargetLang: "Shell"})
	assert.Contains(t, got, "# Generated on 20")
}
