package emit

import "sort"

// profiles holds the formatting tables for every supported target,
// keyed by canonical lowercase ID.
var profiles = map[string]*Profile{
	"python": {
		ID:           "python",
		Block:        Indent,
		Indent:       "    ",
		FuncDecl:     "def %s(%s)",
		ClassDecl:    "class %s",
		Extends:      "(%s)",
		SelfName:     "self",
		SelfAccess:   "self.%s",
		SelfRef:      "self",
		TrueLit:      "True",
		FalseLit:     "False",
		NullLit:      "None",
		AndOp:        "and",
		OrOp:         "or",
		NotOp:        "not ",
		Builtins:     map[string]string{"print": "print(%s)", "len": "len(%s)", "str": "str(%s)", "range": "range(%s)"},
		IfHeader:     "if %s",
		ElseIfHeader: "elif %s",
		WhileHeader:  "while %s",
		ForHeader:    "for %[1]s in %[2]s",
		RangeHeader:  "for %[1]s in range(%[2]s)",
		NoOpKeyword:  "pass",
		EmptyBody:    "pass",
		BreakStmt:    "break",
		ContinueStmt: "continue",
		CondFmt:      "%[2]s if %[1]s else %[3]s",
	},

	"javascript": {
		ID:           "javascript",
		Block:        Brace,
		Terminator:   ";",
		Indent:       "    ",
		EmptyBody:    ";",
		FuncDecl:     "function %s(%s)",
		MethodDecl:   "%s(%s)",
		ClassDecl:    "class %s",
		Extends:      " extends %s",
		DeclKeyword:  "let ",
		DeclOnce:     true,
		SelfName:     "self",
		SelfAccess:   "this.%s",
		SelfRef:      "this",
		DropSelfParam: true,
		MethodRename: map[string]string{"__init__": "constructor"},
		TrueLit:      "true",
		FalseLit:     "false",
		NullLit:      "null",
		AndOp:        "&&",
		OrOp:         "||",
		NotOp:        "!",
		EqOp:         "===",
		NeOp:         "!==",
		Builtins:     map[string]string{"print": "console.log(%s)", "len": "%s.length", "str": "String(%s)", "range": "Array.from({length: %s}, (_, i) => i)"},
		IfHeader:     "if (%s)",
		ElseIfHeader: "else if (%s)",
		WhileHeader:  "while (%s)",
		ForHeader:    "for (let %[1]s of %[2]s)",
		RangeHeader:  "for (let %[1]s = 0; %[1]s < %[2]s; %[1]s++)",
		BreakStmt:    "break",
		ContinueStmt: "continue",
	},

	"typescript": {
		ID:           "typescript",
		Block:        Brace,
		Terminator:   ";",
		Indent:       "    ",
		EmptyBody:    ";",
		FuncDecl:     "function %s(%s)",
		MethodDecl:   "%s(%s)",
		ClassDecl:    "class %s",
		Extends:      " extends %s",
		DeclKeyword:  "let ",
		DeclOnce:     true,
		SelfName:     "self",
		SelfAccess:   "this.%s",
		SelfRef:      "this",
		DropSelfParam: true,
		MethodRename: map[string]string{"__init__": "constructor"},
		TrueLit:      "true",
		FalseLit:     "false",
		NullLit:      "null",
		AndOp:        "&&",
		OrOp:         "||",
		NotOp:        "!",
		EqOp:         "===",
		NeOp:         "!==",
		Builtins:     map[string]string{"print": "console.log(%s)", "len": "%s.length", "str": "String(%s)", "range": "Array.from({length: %s}, (_, i) => i)"},
		IfHeader:     "if (%s)",
		ElseIfHeader: "else if (%s)",
		WhileHeader:  "while (%s)",
		ForHeader:    "for (let %[1]s of %[2]s)",
		RangeHeader:  "for (let %[1]s = 0; %[1]s < %[2]s; %[1]s++)",
		BreakStmt:    "break",
		ContinueStmt: "continue",
	},

	"java": {
		ID:            "java",
		Block:         Brace,
		Terminator:    ";",
		Indent:        "    ",
		EmptyBody:     ";",
		FuncDecl:      "public static void %s(%s)",
		MethodDecl:    "public void %s(%s)",
		ClassDecl:     "class %s",
		Extends:       " extends %s",
		DeclKeyword:   "var ",
		DeclOnce:      true,
		SelfName:      "self",
		SelfAccess:    "this.%s",
		SelfRef:       "this",
		DropSelfParam: true,
		CtorIsClassName: true,
		CtorDecl:        "public %s(%s)",
		TrueLit:       "true",
		FalseLit:      "false",
		NullLit:       "null",
		AndOp:         "&&",
		OrOp:          "||",
		NotOp:         "!",
		Builtins:      map[string]string{"print": "System.out.println(%s)", "len": "%s.length()", "str": "String.valueOf(%s)"},
		IfHeader:      "if (%s)",
		ElseIfHeader:  "else if (%s)",
		WhileHeader:   "while (%s)",
		ForHeader:     "for (var %[1]s : %[2]s)",
		RangeHeader:   "for (int %[1]s = 0; %[1]s < %[2]s; %[1]s++)",
		BreakStmt:     "break",
		ContinueStmt:  "continue",
		Wrap:          WrapSingleClassWithMain,
		WrapClassName: "TranslatedProgram",
		MainHeader:    "public static void main(String[] args)",
	},

	"c": {
		ID:           "c",
		Block:        Brace,
		Terminator:   ";",
		Indent:       "    ",
		EmptyBody:    ";",
		FuncDecl:     "void %s(%s)",
		ClassFlatten: true,
		TrueLit:      "true",
		FalseLit:     "false",
		NullLit:      "NULL",
		AndOp:        "&&",
		OrOp:         "||",
		NotOp:        "!",
		Builtins:     map[string]string{"print": "printf(%s)", "len": "strlen(%s)"},
		IfHeader:     "if (%s)",
		ElseIfHeader: "else if (%s)",
		WhileHeader:  "while (%s)",
		ForHeader:    "for (int %[1]s = 0; %[1]s < %[2]s; %[1]s++)",
		RangeHeader:  "for (int %[1]s = 0; %[1]s < %[2]s; %[1]s++)",
		BreakStmt:    "break",
		ContinueStmt: "continue",
		Prologue:     "#include <stdio.h>\n",
	},

	"cpp": {
		ID:            "cpp",
		Block:         Brace,
		Terminator:    ";",
		Indent:        "    ",
		EmptyBody:     ";",
		FuncDecl:      "void %s(%s)",
		ClassDecl:     "class %s",
		Extends:       " : public %s",
		ClassPrologue: "public:",
		ClassClose:    "};",
		DeclKeyword:   "auto ",
		DeclOnce:      true,
		SelfName:      "self",
		SelfAccess:    "this->%s",
		SelfRef:       "this",
		DropSelfParam: true,
		CtorIsClassName: true,
		CtorDecl:        "%s(%s)",
		TrueLit:       "true",
		FalseLit:      "false",
		NullLit:       "nullptr",
		AndOp:         "&&",
		OrOp:          "||",
		NotOp:         "!",
		Builtins:      map[string]string{"print": "cout << %s << endl", "len": "%s.size()", "str": "to_string(%s)"},
		IfHeader:      "if (%s)",
		ElseIfHeader:  "else if (%s)",
		WhileHeader:   "while (%s)",
		ForHeader:     "for (auto %[1]s : %[2]s)",
		RangeHeader:   "for (int %[1]s = 0; %[1]s < %[2]s; %[1]s++)",
		BreakStmt:     "break",
		ContinueStmt:  "continue",
		Prologue:      "#include <iostream>\nusing namespace std;\n",
	},

	"csharp": {
		ID:            "csharp",
		Block:         Brace,
		Terminator:    ";",
		Indent:        "    ",
		EmptyBody:     ";",
		FuncDecl:      "public static void %s(%s)",
		MethodDecl:    "public void %s(%s)",
		ClassDecl:     "class %s",
		Extends:       " : %s",
		DeclKeyword:   "var ",
		DeclOnce:      true,
		SelfName:      "self",
		SelfAccess:    "this.%s",
		SelfRef:       "this",
		DropSelfParam: true,
		CtorIsClassName: true,
		CtorDecl:        "public %s(%s)",
		TrueLit:       "true",
		FalseLit:      "false",
		NullLit:       "null",
		AndOp:         "&&",
		OrOp:          "||",
		NotOp:         "!",
		Builtins:      map[string]string{"print": "Console.WriteLine(%s)", "len": "%s.Length", "str": "%s.ToString()"},
		IfHeader:      "if (%s)",
		ElseIfHeader:  "else if (%s)",
		WhileHeader:   "while (%s)",
		ForHeader:     "foreach (var %[1]s in %[2]s)",
		RangeHeader:   "for (int %[1]s = 0; %[1]s < %[2]s; %[1]s++)",
		BreakStmt:     "break",
		ContinueStmt:  "continue",
	},

	"go": {
		ID:           "go",
		Block:        Brace,
		Indent:       "\t",
		EmptyBody:    ";",
		FuncDecl:     "func %s(%s)",
		ClassFlatten: true,
		DeclAssignOp: ":=",
		DeclOnce:     true,
		TrueLit:      "true",
		FalseLit:     "false",
		NullLit:      "nil",
		AndOp:        "&&",
		OrOp:         "||",
		NotOp:        "!",
		Builtins:     map[string]string{"print": "fmt.Println(%s)", "len": "len(%s)", "str": "fmt.Sprint(%s)"},
		IfHeader:     "if %s",
		ElseIfHeader: "else if %s",
		WhileHeader:  "for %s",
		ForHeader:    "for _, %[1]s := range %[2]s",
		RangeHeader:  "for %[1]s := 0; %[1]s < %[2]s; %[1]s++",
		BreakStmt:    "break",
		ContinueStmt: "continue",
		Wrap:         WrapPackageMainFunc,
		Prologue:     "package main\n",
		MainHeader:   "func main()",
	},

	"rust": {
		ID:           "rust",
		Block:        Brace,
		Terminator:   ";",
		Indent:       "    ",
		EmptyBody:    ";",
		FuncDecl:     "fn %s(%s)",
		ClassFlatten: true,
		DeclKeyword:  "let mut ",
		DeclOnce:     true,
		TrueLit:      "true",
		FalseLit:     "false",
		NullLit:      "None",
		AndOp:        "&&",
		OrOp:         "||",
		NotOp:        "!",
		Builtins:     map[string]string{"print": "println!(\"{}\", %s)", "len": "%s.len()", "str": "%s.to_string()"},
		IfHeader:     "if %s",
		ElseIfHeader: "else if %s",
		WhileHeader:  "while %s",
		ForHeader:    "for %[1]s in %[2]s",
		RangeHeader:  "for %[1]s in 0..%[2]s",
		BreakStmt:    "break",
		ContinueStmt: "continue",
		CondFmt:      "if %[1]s { %[2]s } else { %[3]s }",
		Wrap:         WrapPackageMainFunc,
		MainHeader:   "fn main()",
	},

	"php": {
		ID:            "php",
		Block:         Brace,
		Terminator:    ";",
		Indent:        "    ",
		EmptyBody:     ";",
		FuncDecl:      "function %s(%s)",
		ClassDecl:     "class %s",
		Extends:       " extends %s",
		VarSigil:      "$",
		SigilOnAssign: true,
		SelfName:      "self",
		SelfAccess:    "$this->%s",
		SelfRef:       "$this",
		DropSelfParam: true,
		MethodRename:  map[string]string{"__init__": "__construct"},
		TrueLit:       "true",
		FalseLit:      "false",
		NullLit:       "null",
		AndOp:         "&&",
		OrOp:          "||",
		NotOp:         "!",
		EqOp:          "===",
		NeOp:          "!==",
		ConcatOp:      ".",
		AttrFmt:       "%s->%s",
		Builtins:      map[string]string{"print": "echo %s", "len": "count(%s)", "str": "strval(%s)", "range": "range(0, %s - 1)"},
		IfHeader:      "if (%s)",
		ElseIfHeader:  "elseif (%s)",
		WhileHeader:   "while (%s)",
		ForHeader:     "foreach (%[2]s as %[1]s)",
		RangeHeader:   "for (%[1]s = 0; %[1]s < %[2]s; %[1]s++)",
		BreakStmt:     "break",
		ContinueStmt:  "continue",
		ListFmt:       "array(%s)",
		DictFmt:       "array(%s)",
		PairFmt:       "%s => %s",
		Wrap:          WrapScriptTag,
		Prologue:      "<?php",
		Epilogue:      "?>",
	},

	"ruby": {
		ID:            "ruby",
		Block:         EndKeyword,
		Indent:        "  ",
		FuncDecl:      "def %s(%s)",
		ClassDecl:     "class %s",
		Extends:       " < %s",
		SelfName:      "self",
		SelfAccess:    "@%s",
		SelfRef:       "self",
		DropSelfParam: true,
		MethodRename:  map[string]string{"__init__": "initialize"},
		TrueLit:       "true",
		FalseLit:      "false",
		NullLit:       "nil",
		AndOp:         "&&",
		OrOp:          "||",
		NotOp:         "!",
		Builtins:      map[string]string{"print": "puts %s", "len": "%s.length", "str": "%s.to_s", "range": "(0...%s)"},
		IfHeader:      "if %s",
		ElseIfHeader:  "elsif %s",
		WhileHeader:   "while %s",
		ForHeader:     "%[2]s.each do |%[1]s|",
		RangeHeader:   "%[2]s.times do |%[1]s|",
		CloseIf:       "end",
		CloseLoop:     "end",
		CloseDef:      "end",
		EmptyBody:     "nil",
		BreakStmt:     "break",
		ContinueStmt:  "next",
	},

	"swift": {
		ID:            "swift",
		Block:         Brace,
		Indent:        "    ",
		EmptyBody:     ";",
		FuncDecl:      "func %s(%s)",
		ClassDecl:     "class %s",
		Extends:       ": %s",
		DeclKeyword:   "var ",
		DeclOnce:      true,
		SelfName:      "self",
		SelfAccess:    "self.%s",
		SelfRef:       "self",
		DropSelfParam: true,
		MethodRename:  map[string]string{"__init__": "init"},
		TrueLit:       "true",
		FalseLit:      "false",
		NullLit:       "nil",
		AndOp:         "&&",
		OrOp:          "||",
		NotOp:         "!",
		Builtins:      map[string]string{"print": "print(%s)", "len": "%s.count", "str": "String(%s)"},
		IfHeader:      "if %s",
		ElseIfHeader:  "else if %s",
		WhileHeader:   "while %s",
		ForHeader:     "for %[1]s in %[2]s",
		RangeHeader:   "for %[1]s in 0..<%[2]s",
		BreakStmt:     "break",
		ContinueStmt:  "continue",
		DictFmt:       "[%s]",
		PairFmt:       "%s: %s",
	},

	"kotlin": {
		ID:            "kotlin",
		Block:         Brace,
		Indent:        "    ",
		EmptyBody:     ";",
		FuncDecl:      "fun %s(%s)",
		ClassDecl:     "class %s",
		Extends:       " : %s",
		DeclKeyword:   "var ",
		DeclOnce:      true,
		SelfName:      "self",
		SelfAccess:    "this.%s",
		SelfRef:       "this",
		DropSelfParam: true,
		MethodRename:  map[string]string{"__init__": "constructor"},
		TrueLit:       "true",
		FalseLit:      "false",
		NullLit:       "null",
		AndOp:         "&&",
		OrOp:          "||",
		NotOp:         "!",
		Builtins:      map[string]string{"print": "println(%s)", "len": "%s.size", "str": "%s.toString()"},
		IfHeader:      "if (%s)",
		ElseIfHeader:  "else if (%s)",
		WhileHeader:   "while (%s)",
		ForHeader:     "for (%[1]s in %[2]s)",
		RangeHeader:   "for (%[1]s in 0 until %[2]s)",
		BreakStmt:     "break",
		ContinueStmt:  "continue",
	},

	"perl": {
		ID:            "perl",
		Block:         Brace,
		Terminator:    ";",
		Indent:        "    ",
		EmptyBody:     ";",
		FuncDecl:      "sub %[1]s",
		ParamPrelude:  "my (%s) = @_",
		ClassDecl:     "package %s",
		ClassFlatten:  true,
		VarSigil:      "$",
		SigilOnAssign: true,
		DeclKeyword:   "my ",
		DeclOnce:      true,
		SelfName:      "self",
		SelfAccess:    "$self->{%s}",
		SelfRef:       "$self",
		TrueLit:       "1",
		FalseLit:      "0",
		NullLit:       "undef",
		AndOp:         "&&",
		OrOp:          "||",
		NotOp:         "!",
		ConcatOp:      ".",
		AttrFmt:       "%s->{%s}",
		Builtins:      map[string]string{"print": "print %s, \"\\n\"", "len": "scalar(%s)"},
		IfHeader:      "if (%s)",
		ElseIfHeader:  "elsif (%s)",
		WhileHeader:   "while (%s)",
		ForHeader:     "foreach my %[1]s (%[2]s)",
		RangeHeader:   "for (my %[1]s = 0; %[1]s < %[2]s; %[1]s++)",
		BreakStmt:     "last",
		ContinueStmt:  "next",
		ListFmt:       "(%s)",
		DictFmt:       "(%s)",
		PairFmt:       "%s => %s",
	},

	"lua": {
		ID:           "lua",
		Block:        EndKeyword,
		Indent:       "    ",
		EmptyBody:    ";",
		FuncDecl:     "function %s(%s)",
		ClassFlatten: true,
		DeclKeyword:  "local ",
		DeclOnce:     true,
		SelfName:     "self",
		SelfAccess:   "self.%s",
		SelfRef:      "self",
		TrueLit:      "true",
		FalseLit:     "false",
		NullLit:      "nil",
		AndOp:        "and",
		OrOp:         "or",
		NotOp:        "not ",
		NeOp:         "~=",
		ConcatOp:     "..",
		Builtins:     map[string]string{"print": "print(%s)", "len": "#%s", "str": "tostring(%s)"},
		IfHeader:     "if %s",
		ElseIfHeader: "elseif %s",
		WhileHeader:  "while %s",
		ForHeader:    "for _, %[1]s in ipairs(%[2]s)",
		RangeHeader:  "for %[1]s = 0, %[2]s - 1",
		OpenIf:       "then",
		OpenLoop:     "do",
		CloseIf:      "end",
		CloseLoop:    "end",
		CloseDef:     "end",
		BreakStmt:    "break",
		CondFmt:      "%[1]s and %[2]s or %[3]s",
		ListFmt:      "{%s}",
		DictFmt:      "{%s}",
		PairFmt:      "[%s] = %s",
	},

	"dart": {
		ID:            "dart",
		Block:         Brace,
		Terminator:    ";",
		Indent:        "  ",
		EmptyBody:     ";",
		FuncDecl:      "%s(%s)",
		ClassDecl:     "class %s",
		Extends:       " extends %s",
		DeclKeyword:   "var ",
		DeclOnce:      true,
		SelfName:      "self",
		SelfAccess:    "this.%s",
		SelfRef:       "this",
		DropSelfParam: true,
		CtorIsClassName: true,
		CtorDecl:        "%s(%s)",
		TrueLit:       "true",
		FalseLit:      "false",
		NullLit:       "null",
		AndOp:         "&&",
		OrOp:          "||",
		NotOp:         "!",
		Builtins:      map[string]string{"print": "print(%s)", "len": "%s.length", "str": "%s.toString()"},
		IfHeader:      "if (%s)",
		ElseIfHeader:  "else if (%s)",
		WhileHeader:   "while (%s)",
		ForHeader:     "for (var %[1]s in %[2]s)",
		RangeHeader:   "for (var %[1]s = 0; %[1]s < %[2]s; %[1]s++)",
		BreakStmt:     "break",
		ContinueStmt:  "continue",
	},

	"scala": {
		ID:            "scala",
		Block:         Brace,
		Indent:        "  ",
		EmptyBody:     "()",
		FuncDecl:      "def %s(%s) =",
		ClassDecl:     "class %s",
		Extends:       " extends %s",
		DeclKeyword:   "var ",
		DeclOnce:      true,
		SelfName:      "self",
		SelfAccess:    "this.%s",
		SelfRef:       "this",
		DropSelfParam: true,
		TrueLit:       "true",
		FalseLit:      "false",
		NullLit:       "null",
		AndOp:         "&&",
		OrOp:          "||",
		NotOp:         "!",
		Builtins:      map[string]string{"print": "println(%s)", "len": "%s.length", "str": "%s.toString"},
		IfHeader:      "if (%s)",
		ElseIfHeader:  "else if (%s)",
		WhileHeader:   "while (%s)",
		ForHeader:     "for (%[1]s <- %[2]s)",
		RangeHeader:   "for (%[1]s <- 0 until %[2]s)",
		BreakStmt:     "break",
		ListFmt:       "List(%s)",
		DictFmt:       "Map(%s)",
		PairFmt:       "%s -> %s",
	},

	"r": {
		ID:           "r",
		Block:        Brace,
		Indent:       "  ",
		EmptyBody:    "NULL",
		FuncDecl:     "%[1]s <- function(%[2]s)",
		ClassFlatten: true,
		TrueLit:      "TRUE",
		FalseLit:     "FALSE",
		NullLit:      "NULL",
		AndOp:        "&&",
		OrOp:         "||",
		NotOp:        "!",
		Builtins:     map[string]string{"print": "print(%s)", "len": "length(%s)", "str": "as.character(%s)"},
		IfHeader:     "if (%s)",
		ElseIfHeader: "else if (%s)",
		WhileHeader:  "while (%s)",
		ForHeader:    "for (%[1]s in %[2]s)",
		RangeHeader:  "for (%[1]s in 0:(%[2]s - 1))",
		BreakStmt:    "break",
		ContinueStmt: "next",
		AssignFmt:    "%s <- %s",
		AugAssignFmt: "%[1]s <- %[1]s %[2]s %[3]s",
		CondFmt:      "ifelse(%[1]s, %[2]s, %[3]s)",
		ListFmt:      "list(%s)",
		DictFmt:      "list(%s)",
		PairFmt:      "%s = %s",
	},

	"shell": {
		ID:           "shell",
		Block:        EndKeyword,
		Indent:       "    ",
		EmptyBody:    ":",
		FuncDecl:     "%[1]s() {",
		ClassFlatten: true,
		VarSigil:     "$",
		TrueLit:      "true",
		FalseLit:     "false",
		NullLit:      "\"\"",
		AndOp:        "&&",
		OrOp:         "||",
		NotOp:        "! ",
		EqOp:         "-eq",
		NeOp:         "-ne",
		OpOverrides:  map[string]string{"<": "-lt", "<=": "-le", ">": "-gt", ">=": "-ge"},
		Builtins:     map[string]string{"print": "echo %s"},
		IfHeader:     "if [ %s ]",
		ElseIfHeader: "elif [ %s ]",
		WhileHeader:  "while [ %s ]",
		ForHeader:    "for %[1]s in %[2]s",
		RangeHeader:  "for %[1]s in $(seq 0 $((%[2]s - 1)))",
		OpenIf:       "; then",
		OpenLoop:     "; do",
		CloseIf:      "fi",
		CloseLoop:    "done",
		CloseDef:     "}",
		BreakStmt:    "break",
		ContinueStmt: "continue",
		AssignFmt:    "%s=%s",
		AugAssignFmt: "%[1]s=$%[1]s %[2]s %[3]s",
	},

	"powershell": {
		ID:            "powershell",
		Block:         Brace,
		Indent:        "    ",
		EmptyBody:     "$null",
		FuncDecl:      "function %s(%s)",
		ClassDecl:     "class %s",
		Extends:       " : %s",
		VarSigil:      "$",
		SigilOnAssign: true,
		SelfName:      "self",
		SelfAccess:    "$this.%s",
		SelfRef:       "$this",
		DropSelfParam: true,
		CtorIsClassName: true,
		CtorDecl:        "%s(%s)",
		TrueLit:       "$true",
		FalseLit:      "$false",
		NullLit:       "$null",
		AndOp:         "-and",
		OrOp:          "-or",
		NotOp:         "-not ",
		EqOp:          "-eq",
		NeOp:          "-ne",
		OpOverrides:   map[string]string{"<": "-lt", "<=": "-le", ">": "-gt", ">=": "-ge"},
		Builtins:      map[string]string{"print": "Write-Host %s", "len": "%s.Length", "str": "[string]%s"},
		IfHeader:      "if (%s)",
		ElseIfHeader:  "elseif (%s)",
		WhileHeader:   "while (%s)",
		ForHeader:     "foreach (%[1]s in %[2]s)",
		RangeHeader:   "for (%[1]s = 0; %[1]s -lt %[2]s; %[1]s++)",
		BreakStmt:     "break",
		ContinueStmt:  "continue",
		ListFmt:       "@(%s)",
		DictFmt:       "@{%s}",
		PairFmt:       "%s = %s",
	},
}

// aliases maps alternate spellings to canonical profile IDs.
var aliases = map[string]string{
	"js":     "javascript",
	"ts":     "typescript",
	"c++":    "cpp",
	"cs":     "csharp",
	"c#":     "csharp",
	"golang": "go",
	"py":     "python",
	"rb":     "ruby",
	"rs":     "rust",
	"kt":     "kotlin",
	"pl":     "perl",
	"sh":     "shell",
	"bash":   "shell",
	"ps1":    "powershell",
}

// Lookup returns the profile for a target language ID or alias.
func Lookup(target string) (*Profile, bool) {
	if canonical, ok := aliases[target]; ok {
		target = canonical
	}
	p, ok := profiles[target]
	return p, ok
}

// Targets returns all canonical target IDs in sorted order.
func Targets() []string {
	ids := make([]string, 0, len(profiles))
	for id := range profiles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
