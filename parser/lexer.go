package parser

import (
	"strings"
	"unicode"

	"github.com/transmute-dev/transmute/errors"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokKeyword
	tokNumber
	tokString
	tokOp
)

type token struct {
	kind tokenKind
	text string
	// isFloat distinguishes number literals for constant construction.
	isFloat bool
}

var keywords = map[string]struct{}{
	"and": {}, "or": {}, "not": {}, "if": {}, "else": {}, "in": {},
	"True": {}, "False": {}, "None": {},
}

// multi-character operators, longest first so matching is greedy.
var operators = []string{
	"**", "//", "==", "!=", "<=", ">=",
	"+", "-", "*", "/", "%", "<", ">",
	"(", ")", "[", "]", "{", "}", ",", ":", ".", "=",
}

// lexExpr tokenizes a single expression. Anything it cannot tokenize is a
// parse failure, which callers surface as the source line kept verbatim.
func lexExpr(src string) ([]token, error) {
	var toks []token
	i := 0
	runes := []rune(src)

scan:
	for i < len(runes) {
		r := runes[i]

		if unicode.IsSpace(r) {
			i++
			continue
		}

		if r == '"' || r == '\'' {
			lit, width, err := lexString(runes[i:])
			if err != nil {
				return nil, err
			}
			toks = append(toks, token{kind: tokString, text: lit})
			i += width
			continue
		}

		if unicode.IsDigit(r) {
			start := i
			isFloat := false
			for i < len(runes) && (unicode.IsDigit(runes[i]) || runes[i] == '.') {
				if runes[i] == '.' {
					// A second dot ends the number (attribute access on
					// a literal is not supported source).
					if isFloat {
						break
					}
					isFloat = true
				}
				i++
			}
			toks = append(toks, token{kind: tokNumber, text: string(runes[start:i]), isFloat: isFloat})
			continue
		}

		if unicode.IsLetter(r) || r == '_' {
			start := i
			for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]) || runes[i] == '_') {
				i++
			}
			word := string(runes[start:i])
			kind := tokIdent
			if _, ok := keywords[word]; ok {
				kind = tokKeyword
			}
			toks = append(toks, token{kind: kind, text: word})
			continue
		}

		rest := string(runes[i:])
		for _, op := range operators {
			if strings.HasPrefix(rest, op) {
				toks = append(toks, token{kind: tokOp, text: op})
				i += len(op)
				continue scan
			}
		}

		return nil, errors.Wrapf(errors.ErrParseUnavailable, "unexpected character %q", r)
	}

	toks = append(toks, token{kind: tokEOF})
	return toks, nil
}

// lexString consumes a quoted literal starting at runes[0] and returns its
// unescaped contents plus the number of runes consumed.
func lexString(runes []rune) (string, int, error) {
	quote := runes[0]
	var b strings.Builder
	i := 1
	for i < len(runes) {
		r := runes[i]
		if r == '\\' && i+1 < len(runes) {
			next := runes[i+1]
			switch next {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '\\', '\'', '"':
				b.WriteRune(next)
			default:
				b.WriteRune('\\')
				b.WriteRune(next)
			}
			i += 2
			continue
		}
		if r == quote {
			return b.String(), i + 1, nil
		}
		b.WriteRune(r)
		i++
	}
	return "", 0, errors.Wrap(errors.ErrParseUnavailable, "unterminated string literal")
}
