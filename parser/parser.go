// Package parser turns source text in the supported origin language into
// the syntax trees the emit package renders. The origin language is a
// small indentation-delimited subset: functions, classes, conditionals,
// loops, assignments, and expressions. Anything outside the subset fails
// with a parse-unavailable error so callers can fall back to keeping the
// line verbatim.
package parser

import (
	"strings"

	"github.com/transmute-dev/transmute/emit"
	"github.com/transmute-dev/transmute/errors"
)

type line struct {
	indent int
	text   string
	num    int
}

type fileParser struct {
	lines []line
	pos   int
}

// Parse parses a whole source file into a program tree.
func Parse(src string) (*emit.Program, error) {
	p := &fileParser{lines: scanLines(src)}
	body, err := p.parseBlock(0)
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.lines) {
		return nil, p.errorf(p.lines[p.pos], "unexpected indentation")
	}
	return &emit.Program{Body: body}, nil
}

// ParseStmt parses a single statement, mainly for line-by-line conversion.
func ParseStmt(text string) (emit.Stmt, error) {
	p := &fileParser{lines: scanLines(text)}
	if len(p.lines) == 0 {
		return nil, errors.Wrap(errors.ErrParseUnavailable, "empty statement")
	}
	stmts, err := p.parseBlock(p.lines[0].indent)
	if err != nil {
		return nil, err
	}
	if len(stmts) != 1 {
		return nil, errors.Wrap(errors.ErrParseUnavailable, "expected a single statement")
	}
	return stmts[0], nil
}

// scanLines splits source into significant lines, dropping blanks and
// comment-only lines. Indentation is measured in columns with tabs
// counting as four.
func scanLines(src string) []line {
	var out []line
	for i, raw := range strings.Split(src, "\n") {
		text := raw
		indent := 0
	measure:
		for len(text) > 0 {
			switch text[0] {
			case ' ':
				indent++
			case '\t':
				indent += 4
			default:
				break measure
			}
			text = text[1:]
		}
		text = stripComment(text)
		text = strings.TrimRight(text, " \t\r")
		if text == "" {
			continue
		}
		out = append(out, line{indent: indent, text: text, num: i + 1})
	}
	return out
}

// stripComment removes a trailing line comment, respecting string literals.
func stripComment(text string) string {
	var quote byte
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if quote != 0 {
			if ch == '\\' {
				i++
			} else if ch == quote {
				quote = 0
			}
			continue
		}
		switch ch {
		case '\'', '"':
			quote = ch
		case '#':
			return text[:i]
		}
	}
	return text
}

func (p *fileParser) errorf(ln line, format string, args ...interface{}) error {
	err := errors.Wrapf(errors.ErrParseUnavailable, format, args...)
	return errors.WithDetailf(err, "line %d: %s", ln.num, ln.text)
}

// parseBlock consumes statements at exactly the given indentation level.
func (p *fileParser) parseBlock(indent int) ([]emit.Stmt, error) {
	var stmts []emit.Stmt
	for p.pos < len(p.lines) {
		ln := p.lines[p.pos]
		if ln.indent < indent {
			break
		}
		if ln.indent > indent {
			return nil, p.errorf(ln, "unexpected indentation")
		}
		s, err := p.parseStmt(ln)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return stmts, nil
}

// parseBody consumes the indented block following a header line.
func (p *fileParser) parseBody(header line) ([]emit.Stmt, error) {
	if p.pos >= len(p.lines) || p.lines[p.pos].indent <= header.indent {
		return nil, p.errorf(header, "expected an indented block")
	}
	return p.parseBlock(p.lines[p.pos].indent)
}

func (p *fileParser) parseStmt(ln line) (emit.Stmt, error) {
	text := ln.text

	switch {
	case strings.HasPrefix(text, "def "):
		return p.parseFunctionDef(ln)
	case strings.HasPrefix(text, "class "):
		return p.parseClassDef(ln)
	case strings.HasPrefix(text, "if "):
		return p.parseIf(ln)
	case strings.HasPrefix(text, "for "):
		return p.parseFor(ln)
	case strings.HasPrefix(text, "while "):
		return p.parseWhile(ln)
	case text == "return" || strings.HasPrefix(text, "return "):
		return p.parseReturn(ln)
	case text == "pass":
		p.pos++
		return &emit.Pass{}, nil
	case text == "break":
		p.pos++
		return &emit.Break{}, nil
	case text == "continue":
		p.pos++
		return &emit.Continue{}, nil
	case strings.HasPrefix(text, "import "):
		p.pos++
		return &emit.Import{Module: strings.TrimSpace(strings.TrimPrefix(text, "import "))}, nil
	case strings.HasPrefix(text, "from "):
		return p.parseFromImport(ln)
	case strings.HasPrefix(text, "elif ") || text == "else:" || strings.HasPrefix(text, "else:"):
		return nil, p.errorf(ln, "orphaned %s clause", strings.Fields(text)[0])
	}

	return p.parseSimple(ln)
}

func headerExpr(ln line, prefix string) (string, bool) {
	text := strings.TrimPrefix(ln.text, prefix)
	if !strings.HasSuffix(text, ":") {
		return "", false
	}
	return strings.TrimSpace(strings.TrimSuffix(text, ":")), true
}

func (p *fileParser) parseFunctionDef(ln line) (emit.Stmt, error) {
	header, ok := headerExpr(ln, "def ")
	if !ok {
		return nil, p.errorf(ln, "function header missing colon")
	}
	open := strings.Index(header, "(")
	if open < 0 || !strings.HasSuffix(header, ")") {
		return nil, p.errorf(ln, "malformed function header")
	}
	name := strings.TrimSpace(header[:open])
	params, err := splitParams(header[open+1 : len(header)-1])
	if err != nil {
		return nil, p.errorf(ln, "malformed parameter list")
	}

	p.pos++
	body, err := p.parseBody(ln)
	if err != nil {
		return nil, err
	}
	return &emit.FunctionDef{Name: name, Params: params, Body: body}, nil
}

// splitParams splits a parameter list, rejecting defaults and unpacking
// since no target rendering exists for them.
func splitParams(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var params []string
	for _, part := range strings.Split(s, ",") {
		name := strings.TrimSpace(part)
		if name == "" || strings.ContainsAny(name, "=*:") {
			return nil, errors.Wrapf(errors.ErrParseUnavailable, "unsupported parameter %q", name)
		}
		params = append(params, name)
	}
	return params, nil
}

func (p *fileParser) parseClassDef(ln line) (emit.Stmt, error) {
	header, ok := headerExpr(ln, "class ")
	if !ok {
		return nil, p.errorf(ln, "class header missing colon")
	}

	name := header
	var bases []string
	if open := strings.Index(header, "("); open >= 0 {
		if !strings.HasSuffix(header, ")") {
			return nil, p.errorf(ln, "malformed class header")
		}
		name = strings.TrimSpace(header[:open])
		for _, base := range strings.Split(header[open+1:len(header)-1], ",") {
			if base = strings.TrimSpace(base); base != "" {
				bases = append(bases, base)
			}
		}
	}

	p.pos++
	body, err := p.parseBody(ln)
	if err != nil {
		return nil, err
	}
	return &emit.ClassDef{Name: name, Bases: bases, Body: body}, nil
}

func (p *fileParser) parseIf(ln line) (emit.Stmt, error) {
	cond, ok := headerExpr(ln, "if ")
	if !ok {
		return nil, p.errorf(ln, "if header missing colon")
	}
	test, err := ParseExpr(cond)
	if err != nil {
		return nil, p.errorf(ln, "bad condition: %v", err)
	}

	p.pos++
	body, err := p.parseBody(ln)
	if err != nil {
		return nil, err
	}
	stmt := &emit.If{Test: test, Body: body}

	if p.pos < len(p.lines) && p.lines[p.pos].indent == ln.indent {
		next := p.lines[p.pos]
		switch {
		case strings.HasPrefix(next.text, "elif "):
			// Rewrite elif into a nested if so the chain is uniform.
			next.text = "if " + strings.TrimPrefix(next.text, "elif ")
			chained, err := p.parseIf(next)
			if err != nil {
				return nil, err
			}
			stmt.Orelse = []emit.Stmt{chained}
		case next.text == "else:":
			p.pos++
			orelse, err := p.parseBody(next)
			if err != nil {
				return nil, err
			}
			stmt.Orelse = orelse
		}
	}
	return stmt, nil
}

func (p *fileParser) parseFor(ln line) (emit.Stmt, error) {
	header, ok := headerExpr(ln, "for ")
	if !ok {
		return nil, p.errorf(ln, "for header missing colon")
	}
	sep := strings.Index(header, " in ")
	if sep < 0 {
		return nil, p.errorf(ln, "for header missing in")
	}
	loopVar, err := ParseExpr(header[:sep])
	if err != nil {
		return nil, p.errorf(ln, "bad loop variable: %v", err)
	}
	iter, err := ParseExpr(header[sep+4:])
	if err != nil {
		return nil, p.errorf(ln, "bad iterable: %v", err)
	}

	p.pos++
	body, err := p.parseBody(ln)
	if err != nil {
		return nil, err
	}
	return &emit.For{Var: loopVar, Iter: iter, Body: body}, nil
}

func (p *fileParser) parseWhile(ln line) (emit.Stmt, error) {
	cond, ok := headerExpr(ln, "while ")
	if !ok {
		return nil, p.errorf(ln, "while header missing colon")
	}
	test, err := ParseExpr(cond)
	if err != nil {
		return nil, p.errorf(ln, "bad condition: %v", err)
	}

	p.pos++
	body, err := p.parseBody(ln)
	if err != nil {
		return nil, err
	}
	return &emit.While{Test: test, Body: body}, nil
}

func (p *fileParser) parseReturn(ln line) (emit.Stmt, error) {
	p.pos++
	rest := strings.TrimSpace(strings.TrimPrefix(ln.text, "return"))
	if rest == "" {
		return &emit.Return{}, nil
	}
	value, err := ParseExpr(rest)
	if err != nil {
		return nil, p.errorf(ln, "bad return value: %v", err)
	}
	return &emit.Return{Value: value}, nil
}

func (p *fileParser) parseFromImport(ln line) (emit.Stmt, error) {
	rest := strings.TrimPrefix(ln.text, "from ")
	sep := strings.Index(rest, " import ")
	if sep < 0 {
		return nil, p.errorf(ln, "malformed import")
	}
	module := strings.TrimSpace(rest[:sep])
	var names []string
	for _, name := range strings.Split(rest[sep+8:], ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	p.pos++
	return &emit.Import{Module: module, Names: names}, nil
}

var augOps = []string{"+=", "-=", "*=", "/=", "%="}

// parseSimple handles assignments, augmented assignments, and bare
// expression statements.
func (p *fileParser) parseSimple(ln line) (emit.Stmt, error) {
	text := ln.text

	for _, op := range augOps {
		if idx := topLevelIndex(text, op); idx >= 0 {
			target, err := ParseExpr(text[:idx])
			if err != nil {
				return nil, p.errorf(ln, "bad assignment target: %v", err)
			}
			value, err := ParseExpr(text[idx+len(op):])
			if err != nil {
				return nil, p.errorf(ln, "bad assignment value: %v", err)
			}
			p.pos++
			return &emit.AugAssign{Target: target, Op: strings.TrimSuffix(op, "="), Value: value}, nil
		}
	}

	if idx := assignIndex(text); idx >= 0 {
		target, err := ParseExpr(text[:idx])
		if err != nil {
			return nil, p.errorf(ln, "bad assignment target: %v", err)
		}
		value, err := ParseExpr(text[idx+1:])
		if err != nil {
			return nil, p.errorf(ln, "bad assignment value: %v", err)
		}
		p.pos++
		return &emit.Assign{Target: target, Value: value}, nil
	}

	expr, err := ParseExpr(text)
	if err != nil {
		return nil, p.errorf(ln, "bad expression: %v", err)
	}
	p.pos++
	return &emit.ExprStmt{X: expr}, nil
}

// topLevelIndex finds an operator outside string literals and brackets.
func topLevelIndex(text, op string) int {
	depth := 0
	var quote byte
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if quote != 0 {
			if ch == '\\' {
				i++
			} else if ch == quote {
				quote = 0
			}
			continue
		}
		switch ch {
		case '\'', '"':
			quote = ch
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		default:
			if depth == 0 && strings.HasPrefix(text[i:], op) {
				return i
			}
		}
	}
	return -1
}

// assignIndex finds a top-level single = that is not part of a comparison
// or augmented operator.
func assignIndex(text string) int {
	depth := 0
	var quote byte
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if quote != 0 {
			if ch == '\\' {
				i++
			} else if ch == quote {
				quote = 0
			}
			continue
		}
		switch ch {
		case '\'', '"':
			quote = ch
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case '=':
			if depth != 0 {
				continue
			}
			if i+1 < len(text) && text[i+1] == '=' {
				i++
				continue
			}
			if i > 0 && strings.ContainsRune("=!<>+-*/%", rune(text[i-1])) {
				continue
			}
			return i
		}
	}
	return -1
}
