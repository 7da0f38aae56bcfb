package emit

import (
	"fmt"
	"strings"
)

func writeLine(c *Context, b *strings.Builder, line string) {
	b.WriteString(c.indent())
	b.WriteString(line)
	b.WriteByte('\n')
}

// blockOpen appends a target's block opener to a header line. The keyword
// argument is only consulted for end-keyword targets, where if and loop
// blocks may open differently (then vs do vs "; do").
func blockOpen(p *Profile, header, keyword string) string {
	switch p.Block {
	case Brace:
		return header + " {"
	case Indent:
		return header + ":"
	default:
		if keyword == "" {
			return header
		}
		if strings.HasPrefix(keyword, ";") {
			return header + keyword
		}
		return header + " " + keyword
	}
}

// renderable reports whether a statement produces output in this target.
func renderable(c *Context, s Stmt) bool {
	switch s.(type) {
	case *Import:
		return false
	case *Pass:
		return c.profile.NoOpKeyword != ""
	}
	return true
}

// emitBlock renders a statement list one indent level deeper, inside a new
// declaration scope. Blocks that render nothing get the target's empty-body
// filler so indentation-delimited targets stay parseable.
func emitBlock(c *Context, b *strings.Builder, body []Stmt) {
	c.depth++
	c.pushScope()

	rendered := false
	for _, s := range body {
		if renderable(c, s) {
			emitStmt(c, b, s)
			rendered = true
		}
	}
	if !rendered && c.profile.EmptyBody != "" {
		writeLine(c, b, c.profile.EmptyBody)
	}

	c.popScope()
	c.depth--
}

func emitStmt(c *Context, b *strings.Builder, s Stmt) {
	p := c.profile

	switch x := s.(type) {
	case *FunctionDef:
		emitFunctionDef(c, b, x)

	case *ClassDef:
		emitClassDef(c, b, x)

	case *Assign:
		writeLine(c, b, p.terminate(assignLine(c, x)))

	case *AugAssign:
		augFmt := p.AugAssignFmt
		if augFmt == "" {
			augFmt = "%[1]s %[2]s= %[3]s"
		}
		line := fmt.Sprintf(augFmt, emitTarget(c, x.Target), x.Op, emitExpr(c, x.Value))
		writeLine(c, b, p.terminate(line))

	case *If:
		emitIf(c, b, x)

	case *For:
		emitFor(c, b, x)

	case *While:
		header := fmt.Sprintf(p.WhileHeader, emitExpr(c, x.Test))
		writeLine(c, b, blockOpen(p, header, p.OpenLoop))
		emitBlock(c, b, x.Body)
		closeBlock(c, b, p.CloseLoop)

	case *Return:
		if x.Value == nil {
			writeLine(c, b, p.terminate("return"))
			return
		}
		returnFmt := p.ReturnFmt
		if returnFmt == "" {
			returnFmt = "return %s"
		}
		writeLine(c, b, p.terminate(fmt.Sprintf(returnFmt, emitExpr(c, x.Value))))

	case *ExprStmt:
		writeLine(c, b, p.terminate(emitExpr(c, x.X)))

	case *Pass:
		if p.NoOpKeyword != "" {
			writeLine(c, b, p.NoOpKeyword)
		}

	case *Break:
		emitJump(c, b, p.BreakStmt)

	case *Continue:
		emitJump(c, b, p.ContinueStmt)

	case *Import:
		// Source imports never carry over; targets synthesize their own.

	default:
		writeLine(c, b, p.terminate(Placeholder))
	}
}

// emitJump writes break/continue, falling back to the placeholder for
// targets that lack the statement.
func emitJump(c *Context, b *strings.Builder, keyword string) {
	if keyword == "" {
		keyword = Placeholder
	}
	writeLine(c, b, c.profile.terminate(keyword))
}

func assignLine(c *Context, a *Assign) string {
	p := c.profile
	target := emitTarget(c, a.Target)
	value := emitExpr(c, a.Value)

	assignFmt := p.AssignFmt
	if assignFmt == "" {
		assignFmt = "%s = %s"
	}

	name, isName := a.Target.(*Name)
	firstSight := isName && name.ID != p.SelfName && !c.declared(name.ID)
	if isName {
		c.markDeclared(name.ID)
	}

	if firstSight && p.DeclOnce {
		if p.DeclAssignOp != "" {
			return fmt.Sprintf("%s %s %s", target, p.DeclAssignOp, value)
		}
		return p.DeclKeyword + fmt.Sprintf(assignFmt, target, value)
	}
	return fmt.Sprintf(assignFmt, target, value)
}

// paramList filters the receiver parameter and applies the target's sigil.
func paramList(c *Context, params []string) []string {
	p := c.profile
	out := make([]string, 0, len(params))
	for _, param := range params {
		if p.DropSelfParam && param == p.SelfName {
			continue
		}
		if p.VarSigil != "" && p.SigilOnAssign {
			out = append(out, p.VarSigil+param)
			continue
		}
		out = append(out, param)
	}
	return out
}

func emitFunctionDef(c *Context, b *strings.Builder, fn *FunctionDef) {
	p := c.profile

	name := fn.Name
	decl := p.FuncDecl
	if c.inClass && p.MethodDecl != "" {
		decl = p.MethodDecl
	}
	if c.inClass {
		if renamed, ok := p.MethodRename[name]; ok {
			name = renamed
		} else if p.CtorIsClassName && name == "__init__" {
			name = c.className
			if p.CtorDecl != "" {
				decl = p.CtorDecl
			}
		}
	}

	params := paramList(c, fn.Params)
	header := fmt.Sprintf(decl, name, strings.Join(params, ", "))
	if p.Block == EndKeyword {
		writeLine(c, b, header)
	} else {
		writeLine(c, b, blockOpen(p, header, ""))
	}

	c.pushScope()
	for _, param := range fn.Params {
		c.markDeclared(param)
	}

	inClass := c.inClass
	c.inClass = false

	if p.ParamPrelude != "" && len(params) > 0 {
		c.depth++
		writeLine(c, b, p.terminate(fmt.Sprintf(p.ParamPrelude, strings.Join(params, ", "))))
		c.depth--
	}
	emitBlock(c, b, fn.Body)

	c.inClass = inClass
	c.popScope()

	closeBlock(c, b, p.CloseDef)
}

func emitClassDef(c *Context, b *strings.Builder, cls *ClassDef) {
	p := c.profile

	if p.ClassFlatten {
		// No class syntax in this target: hoist the members to the
		// current level as plain statements.
		for _, s := range cls.Body {
			if renderable(c, s) {
				emitStmt(c, b, s)
			}
		}
		return
	}

	header := fmt.Sprintf(p.ClassDecl, cls.Name)
	if len(cls.Bases) > 0 && p.Extends != "" {
		header += fmt.Sprintf(p.Extends, strings.Join(cls.Bases, ", "))
	}
	if p.Block == EndKeyword {
		writeLine(c, b, header)
	} else {
		writeLine(c, b, blockOpen(p, header, ""))
	}

	if p.ClassPrologue != "" {
		writeLine(c, b, p.ClassPrologue)
	}

	inClass, className := c.inClass, c.className
	c.inClass = true
	c.className = cls.Name
	emitBlock(c, b, cls.Body)
	c.inClass = inClass
	c.className = className

	if p.ClassClose != "" {
		writeLine(c, b, p.ClassClose)
		return
	}
	closeBlock(c, b, p.CloseDef)
}

func emitIf(c *Context, b *strings.Builder, stmt *If) {
	p := c.profile

	header := fmt.Sprintf(p.IfHeader, emitExpr(c, stmt.Test))
	writeLine(c, b, blockOpen(p, header, p.OpenIf))
	emitBlock(c, b, stmt.Body)

	// Flatten else branches that hold a single if into else-if chains.
	orelse := stmt.Orelse
	for len(orelse) == 1 {
		chained, ok := orelse[0].(*If)
		if !ok {
			break
		}
		elseIf := fmt.Sprintf(p.ElseIfHeader, emitExpr(c, chained.Test))
		switch p.Block {
		case Brace:
			writeLine(c, b, "} "+elseIf+" {")
		case Indent:
			writeLine(c, b, elseIf+":")
		default:
			writeLine(c, b, blockOpen(p, elseIf, p.OpenIf))
		}
		emitBlock(c, b, chained.Body)
		orelse = chained.Orelse
	}

	if len(orelse) > 0 {
		switch p.Block {
		case Brace:
			writeLine(c, b, "} else {")
		case Indent:
			writeLine(c, b, "else:")
		default:
			writeLine(c, b, "else")
		}
		emitBlock(c, b, orelse)
	}

	closeBlock(c, b, p.CloseIf)
}

func emitFor(c *Context, b *strings.Builder, stmt *For) {
	p := c.profile
	loopVar := emitTarget(c, stmt.Var)

	var header string
	if limit, ok := rangeLimit(stmt.Iter); ok && p.RangeHeader != "" {
		header = fmt.Sprintf(p.RangeHeader, loopVar, emitExpr(c, limit))
	} else {
		header = fmt.Sprintf(p.ForHeader, loopVar, emitExpr(c, stmt.Iter))
	}
	writeLine(c, b, blockOpen(p, header, p.OpenLoop))

	c.pushScope()
	if name, ok := stmt.Var.(*Name); ok {
		c.markDeclared(name.ID)
	}
	emitBlock(c, b, stmt.Body)
	c.popScope()

	closeBlock(c, b, p.CloseLoop)
}

// rangeLimit matches a single-argument range call and returns its limit.
func rangeLimit(iter Expr) (Expr, bool) {
	call, ok := iter.(*Call)
	if !ok || len(call.Args) != 1 {
		return nil, false
	}
	name, ok := call.Func.(*Name)
	if !ok || name.ID != "range" {
		return nil, false
	}
	return call.Args[0], true
}

// closeBlock writes a block's closing line: "}" for brace targets, the
// given keyword for end-keyword targets, nothing for indentation targets.
func closeBlock(c *Context, b *strings.Builder, keyword string) {
	switch c.profile.Block {
	case Brace:
		writeLine(c, b, "}")
	case EndKeyword:
		if keyword != "" {
			writeLine(c, b, keyword)
		}
	}
}
