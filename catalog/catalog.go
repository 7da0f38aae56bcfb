// Package catalog is the registry of languages transmute knows about:
// display names, file extensions, and comment syntax. The emit package
// owns how a language is rendered; the catalog owns what it is called
// and how its files look on disk.
package catalog

import (
	"sort"
	"strings"
)

// Language describes one entry in the registry.
type Language struct {
	// ID is the canonical lowercase identifier used on the command line.
	ID string
	// Name is the human-readable display name.
	Name string
	// Extension is the file extension including the dot.
	Extension string
	// CommentToken starts a line comment. Empty means the language only
	// has block comments.
	CommentToken string
	// BlockOpen and BlockClose delimit a block comment for languages
	// without a line-comment token.
	BlockOpen  string
	BlockClose string
}

// LineComment renders a single comment line in this language.
func (l Language) LineComment(text string) string {
	if l.CommentToken != "" {
		if text == "" {
			return l.CommentToken
		}
		return l.CommentToken + " " + text
	}
	return l.BlockOpen + " " + text + " " + l.BlockClose
}

var languages = []Language{
	{ID: "python", Name: "Python", Extension: ".py", CommentToken: "#"},
	{ID: "javascript", Name: "JavaScript", Extension: ".js", CommentToken: "//"},
	{ID: "typescript", Name: "TypeScript", Extension: ".ts", CommentToken: "//"},
	{ID: "java", Name: "Java", Extension: ".java", CommentToken: "//"},
	{ID: "c", Name: "C", Extension: ".c", CommentToken: "//"},
	{ID: "cpp", Name: "C++", Extension: ".cpp", CommentToken: "//"},
	{ID: "csharp", Name: "C#", Extension: ".cs", CommentToken: "//"},
	{ID: "go", Name: "Go", Extension: ".go", CommentToken: "//"},
	{ID: "rust", Name: "Rust", Extension: ".rs", CommentToken: "//"},
	{ID: "php", Name: "PHP", Extension: ".php", CommentToken: "//"},
	{ID: "ruby", Name: "Ruby", Extension: ".rb", CommentToken: "#"},
	{ID: "swift", Name: "Swift", Extension: ".swift", CommentToken: "//"},
	{ID: "kotlin", Name: "Kotlin", Extension: ".kt", CommentToken: "//"},
	{ID: "perl", Name: "Perl", Extension: ".pl", CommentToken: "#"},
	{ID: "lua", Name: "Lua", Extension: ".lua", CommentToken: "--"},
	{ID: "dart", Name: "Dart", Extension: ".dart", CommentToken: "//"},
	{ID: "scala", Name: "Scala", Extension: ".scala", CommentToken: "//"},
	{ID: "r", Name: "R", Extension: ".r", CommentToken: "#"},
	{ID: "shell", Name: "Shell", Extension: ".sh", CommentToken: "#"},
	{ID: "powershell", Name: "PowerShell", Extension: ".ps1", CommentToken: "#"},
}

var byID = func() map[string]Language {
	m := make(map[string]Language, len(languages))
	for _, l := range languages {
		m[l.ID] = l
	}
	return m
}()

var byExtension = func() map[string]Language {
	m := make(map[string]Language, len(languages))
	for _, l := range languages {
		m[l.Extension] = l
	}
	return m
}()

// GetByID looks up a language by its canonical identifier.
func GetByID(id string) (Language, bool) {
	l, ok := byID[strings.ToLower(id)]
	return l, ok
}

// GetByExtension looks up a language by file extension. The leading dot
// is optional.
func GetByExtension(ext string) (Language, bool) {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	l, ok := byExtension[ext]
	return l, ok
}

// All returns every registered language sorted by ID.
func All() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
