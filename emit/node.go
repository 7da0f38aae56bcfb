// Package emit renders language-neutral syntax trees as source text in a
// configurable set of target languages. Rendering is table-driven: each
// target is described by a Profile of formatting data, and a small set of
// emitter functions interprets those tables. Adding a target means adding
// a table, not new traversal code.
package emit

// Node is the interface satisfied by every syntax tree node.
type Node interface {
	node()
}

// Expr is a node that produces a value.
type Expr interface {
	Node
	expr()
}

// Stmt is a node that performs an action.
type Stmt interface {
	Node
	stmt()
}

// Program is the root node holding a sequence of top-level statements.
type Program struct {
	Body []Stmt
}

// FunctionDef declares a named function with positional parameters.
type FunctionDef struct {
	Name   string
	Params []string
	Body   []Stmt
}

// ClassDef declares a class with optional base classes.
type ClassDef struct {
	Name  string
	Bases []string
	Body  []Stmt
}

// Assign binds the value to the target. The first assignment to a plain
// name in a scope is a declaration in targets that distinguish the two.
type Assign struct {
	Target Expr
	Value  Expr
}

// AugAssign is a compound assignment such as x += 1. Op holds the
// arithmetic operator without the trailing "=".
type AugAssign struct {
	Target Expr
	Op     string
	Value  Expr
}

// If is a conditional with an optional else branch. An else branch whose
// only statement is another If renders as a chained else-if.
type If struct {
	Test   Expr
	Body   []Stmt
	Orelse []Stmt
}

// For iterates Var over the elements of Iter.
type For struct {
	Var  Expr
	Iter Expr
	Body []Stmt
}

// While loops as long as Test holds.
type While struct {
	Test Expr
	Body []Stmt
}

// Return exits a function, optionally with a value (nil for a bare return).
type Return struct {
	Value Expr
}

// ExprStmt evaluates an expression for its side effects.
type ExprStmt struct {
	X Expr
}

// Pass is an explicit no-op statement.
type Pass struct{}

// Break exits the innermost loop.
type Break struct{}

// Continue skips to the next loop iteration.
type Continue struct{}

// Import records a module import from the source program. Imports are
// dropped from emitted output; targets synthesize their own imports.
type Import struct {
	Module string
	Names  []string
}

// Constant is a literal: string, bool, integer, float, or nil for the
// source language's null value.
type Constant struct {
	Value interface{}
}

// Name references a variable by identifier.
type Name struct {
	ID string
}

// Call invokes Func with positional arguments.
type Call struct {
	Func Expr
	Args []Expr
}

// BinOp is a binary arithmetic or string operation. Op uses the source
// spellings: + - * / % ** //
type BinOp struct {
	Left  Expr
	Op    string
	Right Expr
}

// Compare is a comparison chain: Left Ops[0] Comparators[0] Ops[1] ...
// A single-element chain is the common case.
type Compare struct {
	Left        Expr
	Ops         []string
	Comparators []Expr
}

// Attribute accesses a named member of X.
type Attribute struct {
	X    Expr
	Attr string
}

// Subscript indexes X with Index.
type Subscript struct {
	X     Expr
	Index Expr
}

// ListLit is a list literal.
type ListLit struct {
	Items []Expr
}

// DictLit is a key/value mapping literal. Keys and Values are parallel.
type DictLit struct {
	Keys   []Expr
	Values []Expr
}

// TupleLit is a fixed-size sequence literal.
type TupleLit struct {
	Items []Expr
}

// UnaryOp applies a prefix operator: not, -, +
type UnaryOp struct {
	Op      string
	Operand Expr
}

// BoolOp joins two or more values with a logical operator ("and" / "or").
type BoolOp struct {
	Op     string
	Values []Expr
}

// Conditional is a ternary expression: Body if Test else Orelse.
type Conditional struct {
	Test   Expr
	Body   Expr
	Orelse Expr
}

func (*Program) node()     {}
func (*FunctionDef) node() {}
func (*ClassDef) node()    {}
func (*Assign) node()      {}
func (*AugAssign) node()   {}
func (*If) node()          {}
func (*For) node()         {}
func (*While) node()       {}
func (*Return) node()      {}
func (*ExprStmt) node()    {}
func (*Pass) node()        {}
func (*Break) node()       {}
func (*Continue) node()    {}
func (*Import) node()      {}
func (*Constant) node()    {}
func (*Name) node()        {}
func (*Call) node()        {}
func (*BinOp) node()       {}
func (*Compare) node()     {}
func (*Attribute) node()   {}
func (*Subscript) node()   {}
func (*ListLit) node()     {}
func (*DictLit) node()     {}
func (*TupleLit) node()    {}
func (*UnaryOp) node()     {}
func (*BoolOp) node()      {}
func (*Conditional) node() {}

func (*FunctionDef) stmt() {}
func (*ClassDef) stmt()    {}
func (*Assign) stmt()      {}
func (*AugAssign) stmt()   {}
func (*If) stmt()          {}
func (*For) stmt()         {}
func (*While) stmt()       {}
func (*Return) stmt()      {}
func (*ExprStmt) stmt()    {}
func (*Pass) stmt()        {}
func (*Break) stmt()       {}
func (*Continue) stmt()    {}
func (*Import) stmt()      {}

func (*Constant) expr()    {}
func (*Name) expr()        {}
func (*Call) expr()        {}
func (*BinOp) expr()       {}
func (*Compare) expr()     {}
func (*Attribute) expr()   {}
func (*Subscript) expr()   {}
func (*ListLit) expr()     {}
func (*DictLit) expr()     {}
func (*TupleLit) expr()    {}
func (*UnaryOp) expr()     {}
func (*BoolOp) expr()      {}
func (*Conditional) expr() {}
