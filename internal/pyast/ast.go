package pyast

// Kind discriminates syntax constructs. Values match the CPython ast
// node names so serialized dumps map onto them directly.
type Kind string

// Statement and module kinds.
const (
	KindModule           Kind = "Module"
	KindFunctionDef      Kind = "FunctionDef"
	KindAsyncFunctionDef Kind = "AsyncFunctionDef"
	KindClassDef         Kind = "ClassDef"
	KindReturn           Kind = "Return"
	KindDelete           Kind = "Delete"
	KindAssign           Kind = "Assign"
	KindAugAssign        Kind = "AugAssign"
	KindAnnAssign        Kind = "AnnAssign"
	KindFor              Kind = "For"
	KindAsyncFor         Kind = "AsyncFor"
	KindWhile            Kind = "While"
	KindIf               Kind = "If"
	KindWith             Kind = "With"
	KindAsyncWith        Kind = "AsyncWith"
	KindMatch            Kind = "Match"
	KindRaise            Kind = "Raise"
	KindTry              Kind = "Try"
	KindTryStar          Kind = "TryStar"
	KindAssert           Kind = "Assert"
	KindImport           Kind = "Import"
	KindImportFrom       Kind = "ImportFrom"
	KindGlobal           Kind = "Global"
	KindNonlocal         Kind = "Nonlocal"
	KindExprStmt         Kind = "Expr"
	KindPass             Kind = "Pass"
	KindBreak            Kind = "Break"
	KindContinue         Kind = "Continue"
)

// Expression kinds.
const (
	KindBoolOp         Kind = "BoolOp"
	KindNamedExpr      Kind = "NamedExpr"
	KindBinOp          Kind = "BinOp"
	KindUnaryOp        Kind = "UnaryOp"
	KindLambda         Kind = "Lambda"
	KindIfExp          Kind = "IfExp"
	KindDict           Kind = "Dict"
	KindSet            Kind = "Set"
	KindListComp       Kind = "ListComp"
	KindSetComp        Kind = "SetComp"
	KindDictComp       Kind = "DictComp"
	KindGeneratorExp   Kind = "GeneratorExp"
	KindAwait          Kind = "Await"
	KindYield          Kind = "Yield"
	KindYieldFrom      Kind = "YieldFrom"
	KindCompare        Kind = "Compare"
	KindCall           Kind = "Call"
	KindFormattedValue Kind = "FormattedValue"
	KindJoinedStr      Kind = "JoinedStr"
	KindStr            Kind = "Str"
	KindBytes          Kind = "Bytes"
	KindNum            Kind = "Num"
	KindNameConstant   Kind = "NameConstant"
	KindRepr           Kind = "Repr"
	KindAttribute      Kind = "Attribute"
	KindSubscript      Kind = "Subscript"
	KindSlice          Kind = "Slice"
	KindStarred        Kind = "Starred"
	KindName           Kind = "Name"
	KindList           Kind = "List"
	KindTuple          Kind = "Tuple"
)

// Auxiliary kinds (not statements or expressions).
const (
	KindArguments     Kind = "arguments"
	KindArg           Kind = "arg"
	KindKeyword       Kind = "keyword"
	KindAlias         Kind = "alias"
	KindWithItem      Kind = "withitem"
	KindComprehension Kind = "comprehension"
	KindExceptHandler Kind = "ExceptHandler"
	KindMatchCase     Kind = "match_case"
	KindMatchValue    Kind = "MatchValue"
	KindMatchSequence Kind = "MatchSequence"
	KindMatchStar     Kind = "MatchStar"
	KindMatchAs       Kind = "MatchAs"
	KindMatchOr       Kind = "MatchOr"
	KindTypeVar       Kind = "TypeVar"
	KindTypeVarTuple  Kind = "TypeVarTuple"
	KindParamSpec     Kind = "ParamSpec"
	KindUnknown       Kind = "Unknown"
)

// Node is the interface implemented by every syntax tree node.
type Node interface {
	Kind() Kind
}

// Stmt is the interface for statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is the interface for expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Pattern is the interface for match statement pattern nodes.
type Pattern interface {
	Node
	patternNode()
}

// TypeParam is the interface for type parameter declaration nodes.
type TypeParam interface {
	Node
	typeParamNode()
}

// BinaryOp identifies a binary operator.
type BinaryOp string

// Binary operators.
const (
	OpAdd      BinaryOp = "Add"
	OpSub      BinaryOp = "Sub"
	OpMult     BinaryOp = "Mult"
	OpMatMult  BinaryOp = "MatMult"
	OpDiv      BinaryOp = "Div"
	OpMod      BinaryOp = "Mod"
	OpPow      BinaryOp = "Pow"
	OpLShift   BinaryOp = "LShift"
	OpRShift   BinaryOp = "RShift"
	OpBitOr    BinaryOp = "BitOr"
	OpBitXor   BinaryOp = "BitXor"
	OpBitAnd   BinaryOp = "BitAnd"
	OpFloorDiv BinaryOp = "FloorDiv"
)

// UnaryOperator identifies a unary operator.
type UnaryOperator string

// Unary operators.
const (
	OpInvert UnaryOperator = "Invert"
	OpNot    UnaryOperator = "Not"
	OpUAdd   UnaryOperator = "UAdd"
	OpUSub   UnaryOperator = "USub"
)

// BoolOperator identifies a boolean operator.
type BoolOperator string

// Boolean operators.
const (
	OpAnd BoolOperator = "And"
	OpOr  BoolOperator = "Or"
)

// CompareOperator identifies a comparison operator.
type CompareOperator string

// Comparison operators.
const (
	OpEq    CompareOperator = "Eq"
	OpNotEq CompareOperator = "NotEq"
	OpLt    CompareOperator = "Lt"
	OpLtE   CompareOperator = "LtE"
	OpGt    CompareOperator = "Gt"
	OpGtE   CompareOperator = "GtE"
	OpIs    CompareOperator = "Is"
	OpIsNot CompareOperator = "IsNot"
	OpIn    CompareOperator = "In"
	OpNotIn CompareOperator = "NotIn"
)
