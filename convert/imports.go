package convert

import "strings"

// importRule inserts a synthesized import when emitted output references a
// symbol whose home module the target requires explicitly.
type importRule struct {
	// Needle is the symbol reference that proves the import is needed.
	Needle string
	// Stmt is the import statement to insert.
	Stmt string
	// AfterPrefix anchors insertion below a mandatory first line; empty
	// means the top of the file.
	AfterPrefix string
}

var importRules = map[string][]importRule{
	"go": {
		{Needle: "fmt.", Stmt: `import "fmt"`, AfterPrefix: "package "},
	},
	"c": {
		{Needle: "strlen(", Stmt: "#include <string.h>", AfterPrefix: "#include "},
	},
	"perl": {
		{Needle: "", Stmt: "use strict;"},
	},
}

// synthesizeImports adds the imports a target needs for the code that was
// actually emitted. Source-level imports never survive conversion, so this
// is the only place imports come from.
func synthesizeImports(target, output string) string {
	rules, ok := importRules[target]
	if !ok {
		return output
	}

	for _, rule := range rules {
		if rule.Needle != "" && !strings.Contains(output, rule.Needle) {
			continue
		}
		if strings.Contains(output, rule.Stmt) {
			continue
		}
		output = insertAfter(output, rule.AfterPrefix, rule.Stmt)
	}
	return output
}

// insertAfter places stmt on its own line below the first line matching
// prefix, or at the top of the file when prefix is empty or unmatched.
func insertAfter(output, prefix, stmt string) string {
	if prefix != "" {
		lines := strings.SplitAfter(output, "\n")
		for i, l := range lines {
			if strings.HasPrefix(l, prefix) {
				lines[i] = l + stmt + "\n"
				return strings.Join(lines, "")
			}
		}
	}
	return stmt + "\n" + output
}
