package emit

import (
	"fmt"
	"strconv"
	"strings"
)

// emitExpr renders an expression in the context's target language. It never
// fails: any shape it cannot render becomes the placeholder token so the
// surrounding output stays structurally valid.
func emitExpr(c *Context, e Expr) string {
	p := c.profile

	switch x := e.(type) {
	case *Constant:
		return emitConstant(p, x.Value)

	case *Name:
		return emitName(c, x.ID)

	case *Attribute:
		if base, ok := x.X.(*Name); ok && base.ID == p.SelfName && p.SelfAccess != "" {
			return fmt.Sprintf(p.SelfAccess, x.Attr)
		}
		attrFmt := p.AttrFmt
		if attrFmt == "" {
			attrFmt = "%s.%s"
		}
		return fmt.Sprintf(attrFmt, emitExpr(c, x.X), x.Attr)

	case *Subscript:
		return fmt.Sprintf("%s[%s]", emitExpr(c, x.X), emitExpr(c, x.Index))

	case *Call:
		return emitCall(c, x)

	case *BinOp:
		return emitBinOp(c, x)

	case *Compare:
		return emitCompare(c, x)

	case *BoolOp:
		op := p.AndOp
		if x.Op == "or" {
			op = p.OrOp
		}
		parts := make([]string, len(x.Values))
		for i, v := range x.Values {
			parts[i] = emitExpr(c, v)
		}
		return strings.Join(parts, " "+op+" ")

	case *UnaryOp:
		operand := emitExpr(c, x.Operand)
		switch x.Op {
		case "not":
			return p.NotOp + operand
		case "-", "+":
			return x.Op + operand
		}
		return Placeholder

	case *Conditional:
		condFmt := p.CondFmt
		if condFmt == "" {
			condFmt = "%[1]s ? %[2]s : %[3]s"
		}
		return fmt.Sprintf(condFmt, emitExpr(c, x.Test), emitExpr(c, x.Body), emitExpr(c, x.Orelse))

	case *ListLit:
		listFmt := p.ListFmt
		if listFmt == "" {
			listFmt = "[%s]"
		}
		return fmt.Sprintf(listFmt, joinExprs(c, x.Items))

	case *TupleLit:
		tupleFmt := p.TupleFmt
		if tupleFmt == "" {
			tupleFmt = "(%s)"
		}
		return fmt.Sprintf(tupleFmt, joinExprs(c, x.Items))

	case *DictLit:
		dictFmt := p.DictFmt
		if dictFmt == "" {
			dictFmt = "{%s}"
		}
		pairFmt := p.PairFmt
		if pairFmt == "" {
			pairFmt = "%s: %s"
		}
		pairs := make([]string, 0, len(x.Keys))
		for i := range x.Keys {
			if i >= len(x.Values) {
				break
			}
			pairs = append(pairs, fmt.Sprintf(pairFmt, emitExpr(c, x.Keys[i]), emitExpr(c, x.Values[i])))
		}
		return fmt.Sprintf(dictFmt, strings.Join(pairs, ", "))
	}

	return Placeholder
}

func emitConstant(p *Profile, v interface{}) string {
	switch val := v.(type) {
	case nil:
		return p.NullLit
	case bool:
		if val {
			return p.TrueLit
		}
		return p.FalseLit
	case string:
		return quoteString(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	}
	return Placeholder
}

// quoteString renders a double-quoted string literal with the escapes every
// supported target accepts.
func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// emitName renders a variable reference, applying the receiver rewrite and
// the target's variable sigil.
func emitName(c *Context, id string) string {
	p := c.profile
	if id == p.SelfName && p.SelfRef != "" {
		return p.SelfRef
	}
	return p.VarSigil + id
}

// emitTarget renders an assignment target. Targets differ from references
// in sigil languages where the sigil is dropped on assignment (shell).
func emitTarget(c *Context, e Expr) string {
	if name, ok := e.(*Name); ok {
		p := c.profile
		if name.ID == p.SelfName && p.SelfRef != "" {
			return p.SelfRef
		}
		if p.VarSigil != "" && !p.SigilOnAssign {
			return name.ID
		}
		return p.VarSigil + name.ID
	}
	return emitExpr(c, e)
}

func joinExprs(c *Context, items []Expr) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = emitExpr(c, item)
	}
	return strings.Join(parts, ", ")
}

func emitCall(c *Context, call *Call) string {
	p := c.profile
	args := joinExprs(c, call.Args)

	if name, ok := call.Func.(*Name); ok {
		if pattern, ok := p.Builtins[name.ID]; ok {
			return fmt.Sprintf(pattern, args)
		}
		// Plain function names never take the variable sigil.
		return fmt.Sprintf("%s(%s)", name.ID, args)
	}
	return fmt.Sprintf("%s(%s)", emitExpr(c, call.Func), args)
}

// isStringOperand reports whether an expression is definitely a string:
// a string literal, or a concatenation involving one.
func isStringOperand(e Expr) bool {
	switch x := e.(type) {
	case *Constant:
		_, ok := x.Value.(string)
		return ok
	case *BinOp:
		return x.Op == "+" && (isStringOperand(x.Left) || isStringOperand(x.Right))
	}
	return false
}

func emitBinOp(c *Context, b *BinOp) string {
	p := c.profile
	op := b.Op

	// String concatenation uses the target's concat operator where it
	// differs from +. Arithmetic + is left alone.
	if op == "+" && p.ConcatOp != "" && (isStringOperand(b.Left) || isStringOperand(b.Right)) {
		op = p.ConcatOp
	} else if override, ok := p.OpOverrides[op]; ok {
		op = override
	} else if op == "//" {
		op = "/"
	}

	return fmt.Sprintf("%s %s %s", emitExpr(c, b.Left), op, emitExpr(c, b.Right))
}

func compareOp(p *Profile, op string) string {
	switch op {
	case "==":
		if p.EqOp != "" {
			return p.EqOp
		}
	case "!=":
		if p.NeOp != "" {
			return p.NeOp
		}
	}
	if override, ok := p.OpOverrides[op]; ok {
		return override
	}
	return op
}

// emitCompare renders a comparison chain by spelling out each link in
// sequence. Chains longer than one link read oddly in targets without
// chained comparison but remain syntactically plausible.
func emitCompare(c *Context, cmp *Compare) string {
	var b strings.Builder
	b.WriteString(emitExpr(c, cmp.Left))
	for i, op := range cmp.Ops {
		if i >= len(cmp.Comparators) {
			break
		}
		b.WriteByte(' ')
		b.WriteString(compareOp(c.profile, op))
		b.WriteByte(' ')
		b.WriteString(emitExpr(c, cmp.Comparators[i]))
	}
	return b.String()
}
