package emit

import (
	"github.com/transmute-dev/transmute/errors"
)

// Validate performs a cheap structural check on emitted output. For brace
// targets it counts delimiter balance outside string literals; imbalance
// indicates an emitter bug rather than bad input, so callers typically log
// it and keep the output.
func Validate(output string, target string) error {
	p, ok := Lookup(target)
	if !ok {
		return errors.NewUnknownTargetError(target)
	}
	if p.Block != Brace {
		return nil
	}

	braces, parens := 0, 0
	inString := false
	escaped := false
	for _, r := range output {
		if escaped {
			escaped = false
			continue
		}
		switch r {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				braces++
			}
		case '}':
			if !inString {
				braces--
			}
		case '(':
			if !inString {
				parens++
			}
		case ')':
			if !inString {
				parens--
			}
		}
	}

	if braces != 0 {
		return errors.Wrapf(errors.ErrStructuralImbalance, "unbalanced braces (%+d) in %s output", braces, p.ID)
	}
	if parens != 0 {
		return errors.Wrapf(errors.ErrStructuralImbalance, "unbalanced parentheses (%+d) in %s output", parens, p.ID)
	}

	return nil
}
