package emit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx(t *testing.T, target string) *Context {
	t.Helper()
	p, ok := Lookup(target)
	require.True(t, ok, "profile not found: %s", target)
	return newContext(p)
}

func TestEmitConstants(t *testing.T) {
	tests := []struct {
		target string
		value  interface{}
		want   string
	}{
		{"python", true, "True"},
		{"python", nil, "None"},
		{"javascript", true, "true"},
		{"javascript", nil, "null"},
		{"r", true, "TRUE"},
		{"r", nil, "NULL"},
		{"powershell", true, "$true"},
		{"powershell", false, "$false"},
		{"lua", nil, "nil"},
		{"perl", nil, "undef"},
		{"go", 42, "42"},
		{"go", 3.5, "3.5"},
		{"ruby", "hi", `"hi"`},
	}

	for _, tt := range tests {
		c := testCtx(t, tt.target)
		got := emitExpr(c, &Constant{Value: tt.value})
		assert.Equal(t, tt.want, got, "%s constant %v", tt.target, tt.value)
	}
}

func TestQuoteStringEscapes(t *testing.T) {
	assert.Equal(t, `"he said \"hi\""`, quoteString(`he said "hi"`))
	assert.Equal(t, `"line1\nline2"`, quoteString("line1\nline2"))
	assert.Equal(t, `"tab\there"`, quoteString("tab\there"))
	assert.Equal(t, `"back\\slash"`, quoteString(`back\slash`))
}

func TestVariableSigils(t *testing.T) {
	x := &Name{ID: "x"}

	assert.Equal(t, "$x", emitExpr(testCtx(t, "php"), x))
	assert.Equal(t, "$x", emitExpr(testCtx(t, "shell"), x))
	assert.Equal(t, "$x", emitExpr(testCtx(t, "powershell"), x))
	assert.Equal(t, "x", emitExpr(testCtx(t, "python"), x))

	// Shell drops the sigil on assignment targets; php keeps it.
	assert.Equal(t, "x", emitTarget(testCtx(t, "shell"), x))
	assert.Equal(t, "$x", emitTarget(testCtx(t, "php"), x))
}

func TestSelfAccess(t *testing.T) {
	attr := &Attribute{X: &Name{ID: "self"}, Attr: "count"}

	assert.Equal(t, "this.count", emitExpr(testCtx(t, "javascript"), attr))
	assert.Equal(t, "$this->count", emitExpr(testCtx(t, "php"), attr))
	assert.Equal(t, "@count", emitExpr(testCtx(t, "ruby"), attr))
	assert.Equal(t, "self.count", emitExpr(testCtx(t, "python"), attr))
	assert.Equal(t, "this->count", emitExpr(testCtx(t, "cpp"), attr))
}

func TestAttributeAccess(t *testing.T) {
	attr := &Attribute{X: &Name{ID: "obj"}, Attr: "field"}

	assert.Equal(t, "obj.field", emitExpr(testCtx(t, "javascript"), attr))
	assert.Equal(t, "$obj->field", emitExpr(testCtx(t, "php"), attr))
	assert.Equal(t, "$obj->{field}", emitExpr(testCtx(t, "perl"), attr))
}

func TestBuiltinRewrites(t *testing.T) {
	printCall := &Call{Func: &Name{ID: "print"}, Args: []Expr{&Name{ID: "x"}}}
	lenCall := &Call{Func: &Name{ID: "len"}, Args: []Expr{&Name{ID: "xs"}}}

	assert.Equal(t, "console.log(x)", emitExpr(testCtx(t, "javascript"), printCall))
	assert.Equal(t, "echo $x", emitExpr(testCtx(t, "php"), printCall))
	assert.Equal(t, "puts x", emitExpr(testCtx(t, "ruby"), printCall))
	assert.Equal(t, "System.out.println(x)", emitExpr(testCtx(t, "java"), printCall))
	assert.Equal(t, "fmt.Println(x)", emitExpr(testCtx(t, "go"), printCall))

	assert.Equal(t, "#xs", emitExpr(testCtx(t, "lua"), lenCall))
	assert.Equal(t, "xs.length", emitExpr(testCtx(t, "javascript"), lenCall))
	assert.Equal(t, "count($xs)", emitExpr(testCtx(t, "php"), lenCall))
}

func TestRangeInExpressionPosition(t *testing.T) {
	rangeCall := &Call{Func: &Name{ID: "range"}, Args: []Expr{&Constant{Value: 5}}}

	assert.Equal(t, "Array.from({length: 5}, (_, i) => i)", emitExpr(testCtx(t, "javascript"), rangeCall))
	assert.Equal(t, "Array.from({length: 5}, (_, i) => i)", emitExpr(testCtx(t, "typescript"), rangeCall))
	assert.Equal(t, "range(0, 5 - 1)", emitExpr(testCtx(t, "php"), rangeCall))
	assert.Equal(t, "(0...5)", emitExpr(testCtx(t, "ruby"), rangeCall))
	assert.Equal(t, "range(5)", emitExpr(testCtx(t, "python"), rangeCall))

	// Outside a for header there is no global range() in JS, so the
	// desugared form has to survive assignment too.
	assign := &Assign{Target: &Name{ID: "xs"}, Value: rangeCall}
	var b strings.Builder
	emitStmt(testCtx(t, "javascript"), &b, assign)
	assert.Contains(t, b.String(), "Array.from({length: 5}, (_, i) => i)")
	assert.NotContains(t, b.String(), "range(5)")
}

func TestUnknownFunctionStaysPlainCall(t *testing.T) {
	call := &Call{Func: &Name{ID: "frobnicate"}, Args: []Expr{&Constant{Value: 1}}}
	assert.Equal(t, "frobnicate(1)", emitExpr(testCtx(t, "javascript"), call))
	// Function names never take the sigil even in sigil targets.
	assert.Equal(t, "frobnicate(1)", emitExpr(testCtx(t, "php"), call))
}

func TestStringConcatenation(t *testing.T) {
	concat := &BinOp{
		Left:  &Constant{Value: "total: "},
		Op:    "+",
		Right: &Name{ID: "n"},
	}
	arith := &BinOp{Left: &Name{ID: "a"}, Op: "+", Right: &Name{ID: "b"}}

	assert.Equal(t, `"total: " . $n`, emitExpr(testCtx(t, "php"), concat))
	assert.Equal(t, `"total: " .. n`, emitExpr(testCtx(t, "lua"), concat))
	assert.Equal(t, `"total: " + n`, emitExpr(testCtx(t, "javascript"), concat))

	// Arithmetic addition never turns into concatenation.
	assert.Equal(t, "$a + $b", emitExpr(testCtx(t, "php"), arith))
}

func TestNestedConcatenationPropagates(t *testing.T) {
	// ("a" + x) + y is a string context all the way out.
	inner := &BinOp{Left: &Constant{Value: "a"}, Op: "+", Right: &Name{ID: "x"}}
	outer := &BinOp{Left: inner, Op: "+", Right: &Name{ID: "y"}}
	assert.Equal(t, `"a" . $x . $y`, emitExpr(testCtx(t, "php"), outer))
}

func TestComparisonOperators(t *testing.T) {
	eq := &Compare{Left: &Name{ID: "a"}, Ops: []string{"=="}, Comparators: []Expr{&Name{ID: "b"}}}
	lt := &Compare{Left: &Name{ID: "a"}, Ops: []string{"<"}, Comparators: []Expr{&Constant{Value: 5}}}

	assert.Equal(t, "a === b", emitExpr(testCtx(t, "javascript"), eq))
	assert.Equal(t, "a == b", emitExpr(testCtx(t, "python"), eq))
	assert.Equal(t, "$a -eq $b", emitExpr(testCtx(t, "powershell"), eq))
	assert.Equal(t, "$a -lt 5", emitExpr(testCtx(t, "shell"), lt))
	assert.Equal(t, "a ~= b", emitExpr(testCtx(t, "lua"),
		&Compare{Left: &Name{ID: "a"}, Ops: []string{"!="}, Comparators: []Expr{&Name{ID: "b"}}}))
}

func TestChainedComparison(t *testing.T) {
	chain := &Compare{
		Left:        &Constant{Value: 1},
		Ops:         []string{"<", "<"},
		Comparators: []Expr{&Name{ID: "x"}, &Constant{Value: 10}},
	}
	assert.Equal(t, "1 < x < 10", emitExpr(testCtx(t, "python"), chain))
}

func TestBoolOps(t *testing.T) {
	and := &BoolOp{Op: "and", Values: []Expr{&Name{ID: "a"}, &Name{ID: "b"}}}
	or := &BoolOp{Op: "or", Values: []Expr{&Name{ID: "a"}, &Name{ID: "b"}, &Name{ID: "c"}}}

	assert.Equal(t, "a && b", emitExpr(testCtx(t, "javascript"), and))
	assert.Equal(t, "a and b", emitExpr(testCtx(t, "lua"), and))
	assert.Equal(t, "$a -and $b", emitExpr(testCtx(t, "powershell"), and))
	assert.Equal(t, "a || b || c", emitExpr(testCtx(t, "javascript"), or))
}

func TestUnaryOps(t *testing.T) {
	not := &UnaryOp{Op: "not", Operand: &Name{ID: "ok"}}

	assert.Equal(t, "!ok", emitExpr(testCtx(t, "javascript"), not))
	assert.Equal(t, "not ok", emitExpr(testCtx(t, "python"), not))
	assert.Equal(t, "-not $ok", emitExpr(testCtx(t, "powershell"), not))
	assert.Equal(t, "-x", emitExpr(testCtx(t, "javascript"), &UnaryOp{Op: "-", Operand: &Name{ID: "x"}}))
}

func TestConditionalExpression(t *testing.T) {
	cond := &Conditional{Test: &Name{ID: "ok"}, Body: &Constant{Value: 1}, Orelse: &Constant{Value: 2}}

	assert.Equal(t, "ok ? 1 : 2", emitExpr(testCtx(t, "javascript"), cond))
	assert.Equal(t, "1 if ok else 2", emitExpr(testCtx(t, "python"), cond))
	assert.Equal(t, "ok and 1 or 2", emitExpr(testCtx(t, "lua"), cond))
	assert.Equal(t, "if ok { 1 } else { 2 }", emitExpr(testCtx(t, "rust"), cond))
	assert.Equal(t, "ifelse(ok, 1, 2)", emitExpr(testCtx(t, "r"), cond))
}

func TestContainerLiterals(t *testing.T) {
	list := &ListLit{Items: []Expr{&Constant{Value: 1}, &Constant{Value: 2}}}
	dict := &DictLit{
		Keys:   []Expr{&Constant{Value: "k"}},
		Values: []Expr{&Constant{Value: 1}},
	}

	assert.Equal(t, "[1, 2]", emitExpr(testCtx(t, "python"), list))
	assert.Equal(t, "array(1, 2)", emitExpr(testCtx(t, "php"), list))
	assert.Equal(t, "{1, 2}", emitExpr(testCtx(t, "lua"), list))
	assert.Equal(t, "@(1, 2)", emitExpr(testCtx(t, "powershell"), list))

	assert.Equal(t, `{"k": 1}`, emitExpr(testCtx(t, "python"), dict))
	assert.Equal(t, `array("k" => 1)`, emitExpr(testCtx(t, "php"), dict))
	assert.Equal(t, `{["k"] = 1}`, emitExpr(testCtx(t, "lua"), dict))
}

func TestSubscript(t *testing.T) {
	sub := &Subscript{X: &Name{ID: "xs"}, Index: &Constant{Value: 0}}
	assert.Equal(t, "xs[0]", emitExpr(testCtx(t, "javascript"), sub))
	assert.Equal(t, "$xs[0]", emitExpr(testCtx(t, "php"), sub))
}

// mysteryExpr is an expression shape the emitter has never heard of.
type mysteryExpr struct{}

func (*mysteryExpr) node() {}
func (*mysteryExpr) expr() {}

func TestUnknownExprBecomesPlaceholder(t *testing.T) {
	for _, target := range Targets() {
		got := emitExpr(testCtx(t, target), &mysteryExpr{})
		assert.Equal(t, Placeholder, got, "target %s", target)
	}
}
