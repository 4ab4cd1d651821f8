package pyast

// Module is the top-level program unit and the only valid root for
// analysis.
type Module struct {
	Body []Stmt
}

func (*Module) Kind() Kind { return KindModule }

// FunctionDef is a "def" statement.
type FunctionDef struct {
	Name       string
	Args       *Arguments
	Body       []Stmt
	Decorators []Expr
	Returns    Expr // nil when no return annotation
	TypeParams []TypeParam
}

func (*FunctionDef) Kind() Kind { return KindFunctionDef }
func (*FunctionDef) stmtNode()  {}

// AsyncFunctionDef is an "async def" statement.
type AsyncFunctionDef struct {
	Name       string
	Args       *Arguments
	Body       []Stmt
	Decorators []Expr
	Returns    Expr
	TypeParams []TypeParam
}

func (*AsyncFunctionDef) Kind() Kind { return KindAsyncFunctionDef }
func (*AsyncFunctionDef) stmtNode()  {}

// ClassDef is a "class" statement.
type ClassDef struct {
	Name       string
	Bases      []Expr
	Keywords   []*Keyword
	Body       []Stmt
	Decorators []Expr
	TypeParams []TypeParam
}

func (*ClassDef) Kind() Kind { return KindClassDef }
func (*ClassDef) stmtNode()  {}

// Return is a "return" statement. Value is nil for a bare return.
type Return struct {
	Value Expr
}

func (*Return) Kind() Kind { return KindReturn }
func (*Return) stmtNode()  {}

// Delete is a "del" statement.
type Delete struct {
	Targets []Expr
}

func (*Delete) Kind() Kind { return KindDelete }
func (*Delete) stmtNode()  {}

// Assign is a plain assignment.
type Assign struct {
	Targets []Expr
	Value   Expr
}

func (*Assign) Kind() Kind { return KindAssign }
func (*Assign) stmtNode()  {}

// AugAssign is an augmented assignment such as "x += 1".
type AugAssign struct {
	Target Expr
	Op     BinaryOp
	Value  Expr
}

func (*AugAssign) Kind() Kind { return KindAugAssign }
func (*AugAssign) stmtNode()  {}

// AnnAssign is an annotated assignment such as "x: int = 1".
// Value is nil for a bare annotation.
type AnnAssign struct {
	Target     Expr
	Annotation Expr
	Value      Expr
	Simple     bool
}

func (*AnnAssign) Kind() Kind { return KindAnnAssign }
func (*AnnAssign) stmtNode()  {}

// For is a "for" loop.
type For struct {
	Target Expr
	Iter   Expr
	Body   []Stmt
	Else   []Stmt
}

func (*For) Kind() Kind { return KindFor }
func (*For) stmtNode()  {}

// AsyncFor is an "async for" loop.
type AsyncFor struct {
	Target Expr
	Iter   Expr
	Body   []Stmt
	Else   []Stmt
}

func (*AsyncFor) Kind() Kind { return KindAsyncFor }
func (*AsyncFor) stmtNode()  {}

// While is a "while" loop.
type While struct {
	Test Expr
	Body []Stmt
	Else []Stmt
}

func (*While) Kind() Kind { return KindWhile }
func (*While) stmtNode()  {}

// If is an "if" statement.
type If struct {
	Test Expr
	Body []Stmt
	Else []Stmt
}

func (*If) Kind() Kind { return KindIf }
func (*If) stmtNode()  {}

// WithItem is a single context manager in a with statement.
type WithItem struct {
	ContextExpr  Expr
	OptionalVars Expr // nil when no "as" clause
}

func (*WithItem) Kind() Kind { return KindWithItem }

// With is a "with" statement.
type With struct {
	Items []*WithItem
	Body  []Stmt
}

func (*With) Kind() Kind { return KindWith }
func (*With) stmtNode()  {}

// AsyncWith is an "async with" statement.
type AsyncWith struct {
	Items []*WithItem
	Body  []Stmt
}

func (*AsyncWith) Kind() Kind { return KindAsyncWith }
func (*AsyncWith) stmtNode()  {}

// MatchCase is a single "case" clause of a match statement.
type MatchCase struct {
	Pattern Pattern
	Guard   Expr // nil when no "if" guard
	Body    []Stmt
}

func (*MatchCase) Kind() Kind { return KindMatchCase }

// Match is a structural pattern matching statement.
type Match struct {
	Subject Expr
	Cases   []*MatchCase
}

func (*Match) Kind() Kind { return KindMatch }
func (*Match) stmtNode()  {}

// Raise is a "raise" statement.
type Raise struct {
	Exc   Expr // nil for a bare re-raise
	Cause Expr // nil when no "from" clause
}

func (*Raise) Kind() Kind { return KindRaise }
func (*Raise) stmtNode()  {}

// ExceptHandler is an "except" clause.
type ExceptHandler struct {
	Type Expr // nil for a bare except
	Name string
	Body []Stmt
}

func (*ExceptHandler) Kind() Kind { return KindExceptHandler }

// Try is a "try" statement with plain except clauses.
type Try struct {
	Body     []Stmt
	Handlers []*ExceptHandler
	Else     []Stmt
	Final    []Stmt
}

func (*Try) Kind() Kind { return KindTry }
func (*Try) stmtNode()  {}

// TryStar is a "try" statement with "except*" exception group handlers.
type TryStar struct {
	Body     []Stmt
	Handlers []*ExceptHandler
	Else     []Stmt
	Final    []Stmt
}

func (*TryStar) Kind() Kind { return KindTryStar }
func (*TryStar) stmtNode()  {}

// Assert is an "assert" statement.
type Assert struct {
	Test Expr
	Msg  Expr // nil when no message
}

func (*Assert) Kind() Kind { return KindAssert }
func (*Assert) stmtNode()  {}

// Alias is a single name binding in an import statement.
type Alias struct {
	Name   string
	AsName string
}

func (*Alias) Kind() Kind { return KindAlias }

// Import is an "import" statement.
type Import struct {
	Names []*Alias
}

func (*Import) Kind() Kind { return KindImport }
func (*Import) stmtNode()  {}

// ImportFrom is a "from ... import" statement.
type ImportFrom struct {
	Module string
	Names  []*Alias
	Level  int
}

func (*ImportFrom) Kind() Kind { return KindImportFrom }
func (*ImportFrom) stmtNode()  {}

// Global is a "global" declaration.
type Global struct {
	Names []string
}

func (*Global) Kind() Kind { return KindGlobal }
func (*Global) stmtNode()  {}

// Nonlocal is a "nonlocal" declaration.
type Nonlocal struct {
	Names []string
}

func (*Nonlocal) Kind() Kind { return KindNonlocal }
func (*Nonlocal) stmtNode()  {}

// ExprStmt is an expression used as a statement.
type ExprStmt struct {
	Value Expr
}

func (*ExprStmt) Kind() Kind { return KindExprStmt }
func (*ExprStmt) stmtNode()  {}

// Pass is a "pass" statement.
type Pass struct{}

func (*Pass) Kind() Kind { return KindPass }
func (*Pass) stmtNode()  {}

// Break is a "break" statement.
type Break struct{}

func (*Break) Kind() Kind { return KindBreak }
func (*Break) stmtNode()  {}

// Continue is a "continue" statement.
type Continue struct{}

func (*Continue) Kind() Kind { return KindContinue }
func (*Continue) stmtNode()  {}

// Arguments describes a parameter list. Nil annotation fields mean the
// annotation is absent; empty slices mean the group is present but empty.
type Arguments struct {
	PosOnlyArgs []*Arg
	Args        []*Arg
	VarArg      *Arg // nil when no *args
	KwOnlyArgs  []*Arg
	KwDefaults  []Expr
	KwArg       *Arg // nil when no **kwargs
	Defaults    []Expr

	// VarArgAnnotation and KwArgAnnotation carry the legacy-form
	// annotations some serializers attach to the parameter list itself
	// instead of to VarArg/KwArg.
	VarArgAnnotation Expr
	KwArgAnnotation  Expr
}

func (*Arguments) Kind() Kind { return KindArguments }

// Arg is a single parameter.
type Arg struct {
	Name       string
	Annotation Expr // nil when unannotated
}

func (*Arg) Kind() Kind { return KindArg }

// TypeVar is a generic type variable declaration, e.g. "def f[T]()".
type TypeVar struct {
	Name  string
	Bound Expr // nil when unbounded
}

func (*TypeVar) Kind() Kind     { return KindTypeVar }
func (*TypeVar) typeParamNode() {}

// TypeVarTuple is a variadic type variable declaration, e.g. "[*Ts]".
type TypeVarTuple struct {
	Name string
}

func (*TypeVarTuple) Kind() Kind     { return KindTypeVarTuple }
func (*TypeVarTuple) typeParamNode() {}

// ParamSpec is a parameter specification declaration, e.g. "[**P]".
type ParamSpec struct {
	Name string
}

func (*ParamSpec) Kind() Kind     { return KindParamSpec }
func (*ParamSpec) typeParamNode() {}

// MatchValue matches against the value of an expression.
type MatchValue struct {
	Value Expr
}

func (*MatchValue) Kind() Kind   { return KindMatchValue }
func (*MatchValue) patternNode() {}

// MatchSequence matches a sequence of sub-patterns.
type MatchSequence struct {
	Patterns []Pattern
}

func (*MatchSequence) Kind() Kind   { return KindMatchSequence }
func (*MatchSequence) patternNode() {}

// MatchStar matches the rest of a sequence pattern.
type MatchStar struct {
	Name string
}

func (*MatchStar) Kind() Kind   { return KindMatchStar }
func (*MatchStar) patternNode() {}

// MatchAs is a capture or wildcard pattern.
type MatchAs struct {
	Pattern Pattern // nil for a bare capture / wildcard
	Name    string
}

func (*MatchAs) Kind() Kind   { return KindMatchAs }
func (*MatchAs) patternNode() {}

// MatchOr matches any of its alternatives.
type MatchOr struct {
	Patterns []Pattern
}

func (*MatchOr) Kind() Kind   { return KindMatchOr }
func (*MatchOr) patternNode() {}

// Unknown preserves nodes whose type pyspan does not model. Its children
// still participate in traversal so analysis stays forward-compatible
// with grammar extensions.
type Unknown struct {
	Type string
	Kids []Node
}

func (*Unknown) Kind() Kind     { return KindUnknown }
func (*Unknown) stmtNode()      {}
func (*Unknown) exprNode()      {}
func (*Unknown) patternNode()   {}
func (*Unknown) typeParamNode() {}
