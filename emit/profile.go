package emit

// BlockStyle selects how a target delimits statement blocks.
type BlockStyle int

const (
	// Brace blocks open with "{" and close with "}".
	Brace BlockStyle = iota
	// Indent blocks are delimited by indentation alone.
	Indent
	// EndKeyword blocks open with a keyword (then/do) and close with
	// a keyword (end/fi/done).
	EndKeyword
)

// WrapStrategy selects the top-level scaffolding a target requires around
// emitted statements.
type WrapStrategy int

const (
	// WrapNone emits statements at the top level unchanged.
	WrapNone WrapStrategy = iota
	// WrapSingleClassWithMain hoists declarations into a class body and
	// executable statements into its static main method.
	WrapSingleClassWithMain
	// WrapPackageMainFunc emits a package clause and places executable
	// statements inside a main function.
	WrapPackageMainFunc
	// WrapScriptTag surrounds the program with open/close script markers.
	WrapScriptTag
)

// Placeholder is substituted for any expression the emitter cannot render.
// It keeps output structurally valid and is easy to grep for afterwards.
const Placeholder = "__untranslated__"

// Profile is the complete formatting description of one target language.
// All fields are data; the emitter functions interpret them uniformly.
// Format fields use fmt verbs, with indexed verbs where slot order differs
// between targets.
type Profile struct {
	// ID is the canonical lowercase identifier ("python", "cpp", ...).
	ID string

	Block      BlockStyle
	Terminator string // statement terminator, ";" or ""
	Indent     string // one level of indentation

	// Functions
	FuncDecl     string // header: fmt with name, joined params
	MethodDecl   string // header inside a class body ("" to reuse FuncDecl)
	ParamPrelude string // emitted as first body line with joined params ("" to skip)

	// Classes
	ClassDecl     string // header: fmt with class name
	Extends       string // appended to header: fmt with joined bases ("" to skip)
	ClassPrologue string // first line inside class body ("" to skip)
	ClassClose    string // overrides the normal block close ("" for default)
	ClassFlatten  bool   // no class syntax: emit body at class depth

	// Variables
	DeclKeyword   string // prefix on first assignment ("let ", "my ", ...)
	DeclAssignOp  string // assignment operator on first assignment ("" for default)
	DeclOnce      bool   // track declarations so the keyword appears once per scope
	VarSigil      string // prefix on every variable reference ("$")
	SigilOnAssign bool   // whether the sigil also appears on assignment targets

	// Methods and self
	SelfName        string            // the receiver identifier in the source ("self")
	SelfAccess      string            // fmt with attribute name ("this.%s", "$this->%s")
	SelfRef         string            // bare receiver reference ("this", "$this", "self")
	DropSelfParam   bool              // remove the receiver from parameter lists
	MethodRename    map[string]string // method name rewrites (constructors)
	CtorIsClassName bool              // the constructor takes the enclosing class name
	CtorDecl        string            // constructor header ("" to reuse the method form)

	// Literals
	TrueLit  string
	FalseLit string
	NullLit  string

	// Operators
	AndOp       string
	OrOp        string
	NotOp       string // prefix, includes trailing space where needed
	EqOp        string
	NeOp        string
	ConcatOp    string            // string concatenation where it differs from "+"
	OpOverrides map[string]string // other binary operator respellings

	// Builtin call rewrites: source function name to a fmt pattern applied
	// to the joined argument list.
	Builtins map[string]string

	// Control flow headers
	IfHeader     string // fmt with condition
	ElseIfHeader string // fmt with condition ("elif %s", "elsif %s")
	WhileHeader  string // fmt with condition
	ForHeader    string // fmt: %[1]s loop var, %[2]s iterable
	// RangeHeader replaces ForHeader when the iterable is a single-argument
	// range call: %[1]s loop var, %[2]s exclusive limit.
	RangeHeader string

	// EndKeyword block delimiters (unused for Brace and Indent styles)
	OpenIf    string // "then", "; then"
	OpenLoop  string // "do", "; do"
	CloseIf   string // "end", "fi"
	CloseLoop string // "end", "done"
	CloseDef  string // "end", "}"

	// Simple statements
	NoOpKeyword  string // Pass statement spelling ("" to drop)
	EmptyBody    string // filler line for an empty block ("" to leave empty)
	BreakStmt    string
	ContinueStmt string
	ReturnFmt    string // fmt with value ("" for "return %s")

	AssignFmt    string // fmt: target, value ("" for "%s = %s")
	AugAssignFmt string // fmt: %[1]s target, %[2]s op, %[3]s value

	// Expressions
	AttrFmt  string // member access: %[1]s object, %[2]s member ("" for "%s.%s")
	CondFmt  string // ternary: %[1]s test, %[2]s then, %[3]s else
	ListFmt  string // fmt with joined items
	DictFmt  string // fmt with joined pairs
	PairFmt  string // fmt: key, value
	TupleFmt string // fmt with joined items

	// Program scaffolding
	Wrap          WrapStrategy
	Prologue      string // emitted before the program body
	Epilogue      string // emitted after the program body
	WrapClassName string // class name for WrapSingleClassWithMain
	MainHeader    string // main declaration line for WrapSingleClassWithMain
}

// terminate appends the statement terminator to a simple statement line.
func (p *Profile) terminate(line string) string {
	if p.Terminator == "" {
		return line
	}
	return line + p.Terminator
}
