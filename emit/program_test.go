package emit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transmute-dev/transmute/errors"
)

func TestEmitProgramUnknownTarget(t *testing.T) {
	_, err := EmitProgram(&Program{}, "klingon")
	require.Error(t, err)
	assert.True(t, errors.IsUnknownTargetError(err))
}

func TestEmitProgramAliases(t *testing.T) {
	prog := &Program{Body: []Stmt{printStmt(&Constant{Value: "hi"})}}

	long, err := EmitProgram(prog, "javascript")
	require.NoError(t, err)
	short, err := EmitProgram(prog, "js")
	require.NoError(t, err)
	assert.Equal(t, long, short)
}

func TestJavaClassWrapping(t *testing.T) {
	prog := &Program{Body: []Stmt{
		&FunctionDef{
			Name:   "greet",
			Params: []string{"name"},
			Body:   []Stmt{printStmt(&Name{ID: "name"})},
		},
		&ExprStmt{X: &Call{Func: &Name{ID: "greet"}, Args: []Expr{&Constant{Value: "world"}}}},
	}}

	got, err := EmitProgram(prog, "java")
	require.NoError(t, err)

	want := "class TranslatedProgram {\n" +
		"    public static void greet(name) {\n" +
		"        System.out.println(name);\n" +
		"    }\n" +
		"    public static void main(String[] args) {\n" +
		"        greet(\"world\");\n" +
		"    }\n" +
		"}\n"
	assert.Equal(t, want, got)
}

func TestClassWrappingWithoutExecutables(t *testing.T) {
	// Definitions only: the synthesized entry point still gets a body.
	prog := &Program{Body: []Stmt{
		&FunctionDef{Name: "helper", Body: []Stmt{&Return{Value: &Constant{Value: 1}}}},
	}}

	got, err := EmitProgram(prog, "java")
	require.NoError(t, err)

	want := "class TranslatedProgram {\n" +
		"    public static void helper() {\n" +
		"        return 1;\n" +
		"    }\n" +
		"    public static void main(String[] args) {\n" +
		"        ;\n" +
		"    }\n" +
		"}\n"
	assert.Equal(t, want, got)
}

func TestGoPackageWrapping(t *testing.T) {
	prog := &Program{Body: []Stmt{
		&FunctionDef{
			Name:   "double",
			Params: []string{"n"},
			Body:   []Stmt{&Return{Value: &BinOp{Left: &Name{ID: "n"}, Op: "*", Right: &Constant{Value: 2}}}},
		},
		printStmt(&Call{Func: &Name{ID: "double"}, Args: []Expr{&Constant{Value: 21}}}),
	}}

	got, err := EmitProgram(prog, "go")
	require.NoError(t, err)

	want := "package main\n" +
		"func double(n) {\n" +
		"\treturn n * 2\n" +
		"}\n" +
		"func main() {\n" +
		"\tfmt.Println(double(21))\n" +
		"}\n"
	assert.Equal(t, want, got)
}

func TestRustMainWrapping(t *testing.T) {
	prog := &Program{Body: []Stmt{
		&Assign{Target: &Name{ID: "x"}, Value: &Constant{Value: 1}},
	}}

	got, err := EmitProgram(prog, "rust")
	require.NoError(t, err)
	assert.Equal(t, "fn main() {\n    let mut x = 1;\n}\n", got)
}

func TestPhpScriptTags(t *testing.T) {
	prog := &Program{Body: []Stmt{printStmt(&Constant{Value: "hi"})}}

	got, err := EmitProgram(prog, "php")
	require.NoError(t, err)
	assert.Equal(t, "<?php\necho \"hi\";\n?>\n", got)
}

func TestCppPrologue(t *testing.T) {
	prog := &Program{Body: []Stmt{printStmt(&Constant{Value: "hi"})}}

	got, err := EmitProgram(prog, "cpp")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "#include <iostream>\nusing namespace std;\n"))
	assert.Contains(t, got, "cout << \"hi\" << endl;")
}

func TestWrapperPlacesExecutablesAfterDeclarations(t *testing.T) {
	// Source order interleaves a call between two function definitions;
	// wrapped targets hoist both definitions above the entry point.
	prog := &Program{Body: []Stmt{
		&FunctionDef{Name: "a", Body: nil},
		&ExprStmt{X: &Call{Func: &Name{ID: "a"}}},
		&FunctionDef{Name: "b", Body: nil},
	}}

	got, err := EmitProgram(prog, "go")
	require.NoError(t, err)

	mainAt := strings.Index(got, "func main()")
	require.GreaterOrEqual(t, mainAt, 0)
	assert.Less(t, strings.Index(got, "func a()"), mainAt)
	assert.Less(t, strings.Index(got, "func b()"), mainAt)
	assert.Greater(t, strings.Index(got, "a()\n"), mainAt)
}

// kitchenSink exercises every statement and expression kind at once.
func kitchenSink() *Program {
	return &Program{Body: []Stmt{
		&Import{Module: "math"},
		&FunctionDef{Name: "f", Params: []string{"a"}, Body: []Stmt{
			&Return{Value: &Conditional{Test: &Name{ID: "a"}, Body: &Constant{Value: 1}, Orelse: &Constant{Value: 2}}},
		}},
		&ClassDef{Name: "C", Bases: []string{"Base"}, Body: []Stmt{
			&FunctionDef{Name: "__init__", Params: []string{"self"}, Body: []Stmt{
				&Assign{Target: &Attribute{X: &Name{ID: "self"}, Attr: "n"}, Value: &Constant{Value: 0}},
			}},
		}},
		&Assign{Target: &Name{ID: "x"}, Value: &ListLit{Items: []Expr{&Constant{Value: 1}, &Constant{Value: 2}}}},
		&Assign{Target: &Name{ID: "d"}, Value: &DictLit{Keys: []Expr{&Constant{Value: "k"}}, Values: []Expr{&Constant{Value: 1}}}},
		&Assign{Target: &Name{ID: "p"}, Value: &TupleLit{Items: []Expr{&Constant{Value: 1}, &Constant{Value: 2}}}},
		&AugAssign{Target: &Name{ID: "x"}, Op: "+", Value: &Constant{Value: 1}},
		&If{
			Test:   &BoolOp{Op: "and", Values: []Expr{&Constant{Value: true}, &UnaryOp{Op: "not", Operand: &Constant{Value: false}}}},
			Body:   []Stmt{printStmt(&Subscript{X: &Name{ID: "x"}, Index: &Constant{Value: 0}})},
			Orelse: []Stmt{&Pass{}},
		},
		&For{Var: &Name{ID: "i"}, Iter: &Call{Func: &Name{ID: "range"}, Args: []Expr{&Constant{Value: 3}}}, Body: []Stmt{
			&ExprStmt{X: &Call{Func: &Name{ID: "f"}, Args: []Expr{&Name{ID: "i"}}}},
			&Continue{},
		}},
		&While{
			Test: &Compare{Left: &Name{ID: "x"}, Ops: []string{"!="}, Comparators: []Expr{&Constant{Value: nil}}},
			Body: []Stmt{&Break{}},
		},
		printStmt(&BinOp{Left: &Constant{Value: "a"}, Op: "+", Right: &Constant{Value: "b"}}),
	}}
}

func TestEveryKindEveryTarget(t *testing.T) {
	for _, target := range Targets() {
		first, err := EmitProgram(kitchenSink(), target)
		require.NoError(t, err, target)
		assert.NotEmpty(t, first, target)

		second, err := EmitProgram(kitchenSink(), target)
		require.NoError(t, err, target)
		assert.Equal(t, first, second, target)
	}
}

func TestEmitProgramDeterministic(t *testing.T) {
	prog := &Program{Body: []Stmt{
		&Assign{Target: &Name{ID: "x"}, Value: &Constant{Value: 1}},
		&If{Test: &Name{ID: "x"}, Body: []Stmt{printStmt(&Name{ID: "x"})}},
	}}

	for _, target := range Targets() {
		first, err := EmitProgram(prog, target)
		require.NoError(t, err, "target %s", target)
		second, err := EmitProgram(prog, target)
		require.NoError(t, err, "target %s", target)
		assert.Equal(t, first, second, "target %s", target)
	}
}

func TestEmitProgramNeverPanicsOnUnknownShapes(t *testing.T) {
	prog := &Program{Body: []Stmt{
		&ExprStmt{X: &mysteryExpr{}},
	}}

	for _, target := range Targets() {
		got, err := EmitProgram(prog, target)
		require.NoError(t, err, "target %s", target)
		assert.Contains(t, got, Placeholder, "target %s", target)
	}
}

func TestValidateBalanced(t *testing.T) {
	prog := &Program{Body: []Stmt{
		&FunctionDef{Name: "f", Body: []Stmt{
			&If{Test: &Name{ID: "x"}, Body: []Stmt{printStmt(&Name{ID: "x"})}},
		}},
	}}

	for _, target := range Targets() {
		out, err := EmitProgram(prog, target)
		require.NoError(t, err)
		assert.NoError(t, Validate(out, target), "target %s", target)
	}
}

func TestValidateDetectsImbalance(t *testing.T) {
	err := Validate("function f() {\n", "javascript")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrStructuralImbalance))
}

func TestValidateIgnoresBracesInStrings(t *testing.T) {
	assert.NoError(t, Validate(`console.log("{");`+"\n", "javascript"))
}

func TestValidateSkipsNonBraceTargets(t *testing.T) {
	assert.NoError(t, Validate("if x:\n    print({)\n", "python"))
}

func TestTargetsSortedAndComplete(t *testing.T) {
	targets := Targets()
	assert.Len(t, targets, 20)
	assert.True(t, sortedStrings(targets))
	for _, id := range targets {
		p, ok := Lookup(id)
		require.True(t, ok)
		assert.Equal(t, id, p.ID)
	}
}

func sortedStrings(xs []string) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i-1] > xs[i] {
			return false
		}
	}
	return true
}
