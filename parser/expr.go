package parser

import (
	"strconv"

	"github.com/transmute-dev/transmute/emit"
	"github.com/transmute-dev/transmute/errors"
)

// exprParser is a recursive-descent parser over a token stream. Precedence
// follows the source language: ternary, or, and, not, comparison chains,
// additive, multiplicative, unary, power, postfix.
type exprParser struct {
	toks []token
	pos  int
}

// ParseExpr parses a single expression from source text.
func ParseExpr(src string) (emit.Expr, error) {
	toks, err := lexExpr(src)
	if err != nil {
		return nil, err
	}
	p := &exprParser{toks: toks}
	e, err := p.ternary()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokEOF {
		return nil, errors.Wrapf(errors.ErrParseUnavailable, "trailing tokens after expression: %q", p.peek().text)
	}
	return e, nil
}

func (p *exprParser) peek() token { return p.toks[p.pos] }

func (p *exprParser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *exprParser) acceptOp(op string) bool {
	if t := p.peek(); t.kind == tokOp && t.text == op {
		p.pos++
		return true
	}
	return false
}

func (p *exprParser) acceptKeyword(kw string) bool {
	if t := p.peek(); t.kind == tokKeyword && t.text == kw {
		p.pos++
		return true
	}
	return false
}

func (p *exprParser) expectOp(op string) error {
	if !p.acceptOp(op) {
		return errors.Wrapf(errors.ErrParseUnavailable, "expected %q, found %q", op, p.peek().text)
	}
	return nil
}

func (p *exprParser) ternary() (emit.Expr, error) {
	body, err := p.or()
	if err != nil {
		return nil, err
	}
	if !p.acceptKeyword("if") {
		return body, nil
	}
	test, err := p.or()
	if err != nil {
		return nil, err
	}
	if !p.acceptKeyword("else") {
		return nil, errors.Wrap(errors.ErrParseUnavailable, "conditional expression missing else")
	}
	orelse, err := p.ternary()
	if err != nil {
		return nil, err
	}
	return &emit.Conditional{Test: test, Body: body, Orelse: orelse}, nil
}

func (p *exprParser) or() (emit.Expr, error)  { return p.boolOp("or", p.and) }
func (p *exprParser) and() (emit.Expr, error) { return p.boolOp("and", p.notExpr) }

func (p *exprParser) boolOp(op string, operand func() (emit.Expr, error)) (emit.Expr, error) {
	first, err := operand()
	if err != nil {
		return nil, err
	}
	values := []emit.Expr{first}
	for p.acceptKeyword(op) {
		v, err := operand()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	if len(values) == 1 {
		return first, nil
	}
	return &emit.BoolOp{Op: op, Values: values}, nil
}

func (p *exprParser) notExpr() (emit.Expr, error) {
	if p.acceptKeyword("not") {
		operand, err := p.notExpr()
		if err != nil {
			return nil, err
		}
		return &emit.UnaryOp{Op: "not", Operand: operand}, nil
	}
	return p.comparison()
}

var compareOps = map[string]struct{}{
	"==": {}, "!=": {}, "<": {}, "<=": {}, ">": {}, ">=": {},
}

func (p *exprParser) comparison() (emit.Expr, error) {
	left, err := p.additive()
	if err != nil {
		return nil, err
	}
	var ops []string
	var comparators []emit.Expr
	for {
		t := p.peek()
		if t.kind != tokOp {
			break
		}
		if _, ok := compareOps[t.text]; !ok {
			break
		}
		p.next()
		right, err := p.additive()
		if err != nil {
			return nil, err
		}
		ops = append(ops, t.text)
		comparators = append(comparators, right)
	}
	if len(ops) == 0 {
		return left, nil
	}
	return &emit.Compare{Left: left, Ops: ops, Comparators: comparators}, nil
}

func (p *exprParser) additive() (emit.Expr, error) {
	return p.binary([]string{"+", "-"}, p.multiplicative)
}

func (p *exprParser) multiplicative() (emit.Expr, error) {
	return p.binary([]string{"*", "/", "//", "%"}, p.unary)
}

func (p *exprParser) binary(ops []string, operand func() (emit.Expr, error)) (emit.Expr, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for {
		matched := ""
		for _, op := range ops {
			if t := p.peek(); t.kind == tokOp && t.text == op {
				matched = op
				break
			}
		}
		if matched == "" {
			return left, nil
		}
		p.next()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = &emit.BinOp{Left: left, Op: matched, Right: right}
	}
}

func (p *exprParser) unary() (emit.Expr, error) {
	if t := p.peek(); t.kind == tokOp && (t.text == "-" || t.text == "+") {
		p.next()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &emit.UnaryOp{Op: t.text, Operand: operand}, nil
	}
	return p.power()
}

func (p *exprParser) power() (emit.Expr, error) {
	base, err := p.postfix()
	if err != nil {
		return nil, err
	}
	if p.acceptOp("**") {
		// Exponentiation is right-associative.
		exp, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &emit.BinOp{Left: base, Op: "**", Right: exp}, nil
	}
	return base, nil
}

func (p *exprParser) postfix() (emit.Expr, error) {
	e, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.acceptOp("("):
			args, err := p.exprList(")")
			if err != nil {
				return nil, err
			}
			e = &emit.Call{Func: e, Args: args}

		case p.acceptOp("."):
			t := p.next()
			if t.kind != tokIdent {
				return nil, errors.Wrapf(errors.ErrParseUnavailable, "expected attribute name, found %q", t.text)
			}
			e = &emit.Attribute{X: e, Attr: t.text}

		case p.acceptOp("["):
			index, err := p.ternary()
			if err != nil {
				return nil, err
			}
			if err := p.expectOp("]"); err != nil {
				return nil, err
			}
			e = &emit.Subscript{X: e, Index: index}

		default:
			return e, nil
		}
	}
}

func (p *exprParser) primary() (emit.Expr, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		if t.isFloat {
			f, err := strconv.ParseFloat(t.text, 64)
			if err != nil {
				return nil, errors.Wrapf(errors.ErrParseUnavailable, "bad number literal %q", t.text)
			}
			return &emit.Constant{Value: f}, nil
		}
		n, err := strconv.Atoi(t.text)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrParseUnavailable, "bad number literal %q", t.text)
		}
		return &emit.Constant{Value: n}, nil

	case tokString:
		return &emit.Constant{Value: t.text}, nil

	case tokIdent:
		return &emit.Name{ID: t.text}, nil

	case tokKeyword:
		switch t.text {
		case "True":
			return &emit.Constant{Value: true}, nil
		case "False":
			return &emit.Constant{Value: false}, nil
		case "None":
			return &emit.Constant{Value: nil}, nil
		}
		return nil, errors.Wrapf(errors.ErrParseUnavailable, "unexpected keyword %q", t.text)

	case tokOp:
		switch t.text {
		case "(":
			return p.parenExpr()
		case "[":
			items, err := p.exprList("]")
			if err != nil {
				return nil, err
			}
			return &emit.ListLit{Items: items}, nil
		case "{":
			return p.dictLit()
		}
	}
	return nil, errors.Wrapf(errors.ErrParseUnavailable, "unexpected token %q", t.text)
}

// parenExpr handles both grouping and tuple literals.
func (p *exprParser) parenExpr() (emit.Expr, error) {
	if p.acceptOp(")") {
		return &emit.TupleLit{}, nil
	}
	first, err := p.ternary()
	if err != nil {
		return nil, err
	}
	if p.acceptOp(")") {
		return first, nil
	}
	if err := p.expectOp(","); err != nil {
		return nil, err
	}
	items := []emit.Expr{first}
	for !p.acceptOp(")") {
		item, err := p.ternary()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if !p.acceptOp(",") {
			if err := p.expectOp(")"); err != nil {
				return nil, err
			}
			break
		}
	}
	return &emit.TupleLit{Items: items}, nil
}

func (p *exprParser) exprList(closer string) ([]emit.Expr, error) {
	var items []emit.Expr
	if p.acceptOp(closer) {
		return items, nil
	}
	for {
		item, err := p.ternary()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		if p.acceptOp(closer) {
			return items, nil
		}
		if err := p.expectOp(","); err != nil {
			return nil, err
		}
	}
}

func (p *exprParser) dictLit() (emit.Expr, error) {
	d := &emit.DictLit{}
	if p.acceptOp("}") {
		return d, nil
	}
	for {
		key, err := p.ternary()
		if err != nil {
			return nil, err
		}
		if err := p.expectOp(":"); err != nil {
			return nil, err
		}
		value, err := p.ternary()
		if err != nil {
			return nil, err
		}
		d.Keys = append(d.Keys, key)
		d.Values = append(d.Values, value)
		if p.acceptOp("}") {
			return d, nil
		}
		if err := p.expectOp(","); err != nil {
			return nil, err
		}
	}
}
