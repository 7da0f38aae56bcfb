package emit

import (
	"fmt"
	"strings"

	"github.com/transmute-dev/transmute/errors"
)

// EmitProgram renders a whole program for the named target, applying the
// target's wrapper strategy around the statement sequence. It is a pure
// function of its inputs: the same tree and target always produce the same
// text. The only failure mode is an unknown target.
func EmitProgram(root *Program, target string) (string, error) {
	p, ok := Lookup(target)
	if !ok {
		return "", errors.NewUnknownTargetError(target)
	}
	return emitProgram(root, p), nil
}

func emitProgram(root *Program, p *Profile) string {
	c := newContext(p)
	var b strings.Builder

	switch p.Wrap {
	case WrapSingleClassWithMain:
		emitClassWrapped(c, &b, root)
	case WrapPackageMainFunc:
		emitMainWrapped(c, &b, root)
	case WrapScriptTag:
		b.WriteString(p.Prologue)
		b.WriteByte('\n')
		emitTopLevel(c, &b, root.Body)
		b.WriteString(p.Epilogue)
		b.WriteByte('\n')
	default:
		writePrologue(&b, p)
		emitTopLevel(c, &b, root.Body)
		if p.Epilogue != "" {
			b.WriteString(p.Epilogue)
			b.WriteByte('\n')
		}
	}

	return b.String()
}

func writePrologue(b *strings.Builder, p *Profile) {
	if p.Prologue == "" {
		return
	}
	b.WriteString(p.Prologue)
	if !strings.HasSuffix(p.Prologue, "\n") {
		b.WriteByte('\n')
	}
}

func emitTopLevel(c *Context, b *strings.Builder, body []Stmt) {
	for _, s := range body {
		if renderable(c, s) {
			emitStmt(c, b, s)
		}
	}
}

// isDeclaration reports whether a statement belongs outside the synthesized
// entry point when a target requires one.
func isDeclaration(s Stmt) bool {
	switch s.(type) {
	case *FunctionDef, *ClassDef:
		return true
	}
	return false
}

func partition(body []Stmt) (decls, execs []Stmt) {
	for _, s := range body {
		if isDeclaration(s) {
			decls = append(decls, s)
		} else {
			execs = append(execs, s)
		}
	}
	return decls, execs
}

// emitClassWrapped hoists declarations into a wrapper class body and the
// executable statements into its main method.
func emitClassWrapped(c *Context, b *strings.Builder, root *Program) {
	p := c.profile
	decls, execs := partition(root.Body)

	writePrologue(b, p)
	writeLine(c, b, blockOpen(p, fmt.Sprintf(p.ClassDecl, p.WrapClassName), ""))

	c.depth++
	for _, s := range decls {
		if renderable(c, s) {
			emitStmt(c, b, s)
		}
	}
	writeLine(c, b, blockOpen(p, p.MainHeader, ""))
	emitBlock(c, b, execs)
	closeBlock(c, b, p.CloseDef)
	c.depth--

	closeBlock(c, b, p.CloseDef)
}

// emitMainWrapped keeps declarations at the top level and wraps executable
// statements in a synthesized main function.
func emitMainWrapped(c *Context, b *strings.Builder, root *Program) {
	p := c.profile
	decls, execs := partition(root.Body)

	writePrologue(b, p)
	for _, s := range decls {
		if renderable(c, s) {
			emitStmt(c, b, s)
		}
	}

	writeLine(c, b, blockOpen(p, p.MainHeader, ""))
	emitBlock(c, b, execs)
	closeBlock(c, b, p.CloseDef)
}
