package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transmute-dev/transmute/emit"
	"github.com/transmute-dev/transmute/errors"
)

func TestParseFunction(t *testing.T) {
	src := "def add(a, b):\n    return a + b\n"
	prog, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, prog.Body, 1)

	fn, ok := prog.Body[0].(*emit.FunctionDef)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, []string{"a", "b"}, fn.Params)
	require.Len(t, fn.Body, 1)

	ret, ok := fn.Body[0].(*emit.Return)
	require.True(t, ok)
	bin, ok := ret.Value.(*emit.BinOp)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Op)
}

func TestParseClass(t *testing.T) {
	src := "class Dog(Animal):\n" +
		"    def __init__(self, name):\n" +
		"        self.name = name\n"
	prog, err := Parse(src)
	require.NoError(t, err)

	cls, ok := prog.Body[0].(*emit.ClassDef)
	require.True(t, ok)
	assert.Equal(t, "Dog", cls.Name)
	assert.Equal(t, []string{"Animal"}, cls.Bases)

	ctor, ok := cls.Body[0].(*emit.FunctionDef)
	require.True(t, ok)
	assert.Equal(t, "__init__", ctor.Name)
	assert.Equal(t, []string{"self", "name"}, ctor.Params)

	assign, ok := ctor.Body[0].(*emit.Assign)
	require.True(t, ok)
	attr, ok := assign.Target.(*emit.Attribute)
	require.True(t, ok)
	assert.Equal(t, "name", attr.Attr)
}

func TestParseIfElifElse(t *testing.T) {
	src := "if x > 0:\n" +
		"    print(\"pos\")\n" +
		"elif x < 0:\n" +
		"    print(\"neg\")\n" +
		"else:\n" +
		"    print(\"zero\")\n"
	prog, err := Parse(src)
	require.NoError(t, err)

	top, ok := prog.Body[0].(*emit.If)
	require.True(t, ok)
	require.Len(t, top.Orelse, 1)

	chained, ok := top.Orelse[0].(*emit.If)
	require.True(t, ok)
	require.Len(t, chained.Orelse, 1)
	_, ok = chained.Orelse[0].(*emit.ExprStmt)
	assert.True(t, ok)
}

func TestParseLoops(t *testing.T) {
	src := "for i in range(10):\n" +
		"    total += i\n" +
		"while total > 0:\n" +
		"    total -= 1\n"
	prog, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, prog.Body, 2)

	loop, ok := prog.Body[0].(*emit.For)
	require.True(t, ok)
	call, ok := loop.Iter.(*emit.Call)
	require.True(t, ok)
	assert.Equal(t, "range", call.Func.(*emit.Name).ID)

	aug, ok := loop.Body[0].(*emit.AugAssign)
	require.True(t, ok)
	assert.Equal(t, "+", aug.Op)

	wh, ok := prog.Body[1].(*emit.While)
	require.True(t, ok)
	sub, ok := wh.Body[0].(*emit.AugAssign)
	require.True(t, ok)
	assert.Equal(t, "-", sub.Op)
}

func TestParseImports(t *testing.T) {
	prog, err := Parse("import math\nfrom os import path, sep\n")
	require.NoError(t, err)
	require.Len(t, prog.Body, 2)

	imp := prog.Body[0].(*emit.Import)
	assert.Equal(t, "math", imp.Module)

	from := prog.Body[1].(*emit.Import)
	assert.Equal(t, "os", from.Module)
	assert.Equal(t, []string{"path", "sep"}, from.Names)
}

func TestParseSimpleStatements(t *testing.T) {
	prog, err := Parse("pass\nbreak\ncontinue\nreturn\n")
	require.NoError(t, err)
	require.Len(t, prog.Body, 4)
	assert.IsType(t, &emit.Pass{}, prog.Body[0])
	assert.IsType(t, &emit.Break{}, prog.Body[1])
	assert.IsType(t, &emit.Continue{}, prog.Body[2])
	assert.IsType(t, &emit.Return{}, prog.Body[3])
}

func TestParseSkipsCommentsAndBlanks(t *testing.T) {
	src := "# leading comment\n\nx = 1  # trailing comment\n\n"
	prog, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, prog.Body, 1)

	assign := prog.Body[0].(*emit.Assign)
	assert.Equal(t, "x", assign.Target.(*emit.Name).ID)
}

func TestHashInsideStringKept(t *testing.T) {
	prog, err := Parse("x = \"#not a comment\"\n")
	require.NoError(t, err)
	assign := prog.Body[0].(*emit.Assign)
	assert.Equal(t, "#not a comment", assign.Value.(*emit.Constant).Value)
}

func TestAssignmentVersusComparison(t *testing.T) {
	prog, err := Parse("ok = x == y\n")
	require.NoError(t, err)
	assign := prog.Body[0].(*emit.Assign)
	_, ok := assign.Value.(*emit.Compare)
	assert.True(t, ok)
}

func TestParseErrors(t *testing.T) {
	cases := []string{
		"def broken(:\n    pass\n",
		"if x > 0:\n",             // missing body
		"else:\n    pass\n",       // orphaned else
		"def f(a=1):\n    pass\n", // default values unsupported
		"x = 'unterminated\n",
	}
	for _, src := range cases {
		_, err := Parse(src)
		require.Error(t, err, "source: %q", src)
		assert.True(t, errors.IsParseUnavailableError(err), "source: %q", src)
	}
}

func TestParseStmtSingle(t *testing.T) {
	s, err := ParseStmt("print(x)")
	require.NoError(t, err)
	assert.IsType(t, &emit.ExprStmt{}, s)

	_, err = ParseStmt("")
	assert.Error(t, err)
}

func TestParseExprPrecedence(t *testing.T) {
	e, err := ParseExpr("1 + 2 * 3")
	require.NoError(t, err)
	top := e.(*emit.BinOp)
	assert.Equal(t, "+", top.Op)
	right := top.Right.(*emit.BinOp)
	assert.Equal(t, "*", right.Op)
}

func TestParseExprTernary(t *testing.T) {
	e, err := ParseExpr("1 if ok else 2")
	require.NoError(t, err)
	cond := e.(*emit.Conditional)
	assert.Equal(t, "ok", cond.Test.(*emit.Name).ID)
}

func TestParseExprContainers(t *testing.T) {
	e, err := ParseExpr("[1, 2, 3]")
	require.NoError(t, err)
	assert.Len(t, e.(*emit.ListLit).Items, 3)

	e, err = ParseExpr("{\"k\": 1}")
	require.NoError(t, err)
	d := e.(*emit.DictLit)
	require.Len(t, d.Keys, 1)

	e, err = ParseExpr("(1, 2)")
	require.NoError(t, err)
	assert.Len(t, e.(*emit.TupleLit).Items, 2)

	// Parenthesized grouping is not a tuple.
	e, err = ParseExpr("(1 + 2)")
	require.NoError(t, err)
	assert.IsType(t, &emit.BinOp{}, e)
}

func TestParseExprChainedCompare(t *testing.T) {
	e, err := ParseExpr("1 < x < 10")
	require.NoError(t, err)
	cmp := e.(*emit.Compare)
	assert.Equal(t, []string{"<", "<"}, cmp.Ops)
}

func TestParseExprCallsAndAttrs(t *testing.T) {
	e, err := ParseExpr("obj.method(1)[0]")
	require.NoError(t, err)
	sub := e.(*emit.Subscript)
	call := sub.X.(*emit.Call)
	attr := call.Func.(*emit.Attribute)
	assert.Equal(t, "method", attr.Attr)
}

func TestParseExprBoolAndNot(t *testing.T) {
	e, err := ParseExpr("a and not b or c")
	require.NoError(t, err)
	or := e.(*emit.BoolOp)
	assert.Equal(t, "or", or.Op)
	and := or.Values[0].(*emit.BoolOp)
	assert.Equal(t, "and", and.Op)
	assert.IsType(t, &emit.UnaryOp{}, and.Values[1])
}

func TestRoundTripThroughEmitter(t *testing.T) {
	src := "def fib(n):\n" +
		"    if n < 2:\n" +
		"        return n\n" +
		"    return fib(n - 1) + fib(n - 2)\n" +
		"print(fib(10))\n"

	prog, err := Parse(src)
	require.NoError(t, err)

	out, err := emit.EmitProgram(prog, "javascript")
	require.NoError(t, err)
	assert.Contains(t, out, "function fib(n) {")
	assert.Contains(t, out, "return fib(n - 1) + fib(n - 2);")
	assert.Contains(t, out, "console.log(fib(10));")
	assert.NotContains(t, out, emit.Placeholder)
}
