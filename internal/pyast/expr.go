package pyast

// BoolOp is a boolean operation such as "a and b".
type BoolOp struct {
	Op     BoolOperator
	Values []Expr
}

func (*BoolOp) Kind() Kind { return KindBoolOp }
func (*BoolOp) exprNode()  {}

// NamedExpr is an assignment expression, e.g. "(n := len(data))".
type NamedExpr struct {
	Target Expr
	Value  Expr
}

func (*NamedExpr) Kind() Kind { return KindNamedExpr }
func (*NamedExpr) exprNode()  {}

// BinOp is a binary operation.
type BinOp struct {
	Left  Expr
	Op    BinaryOp
	Right Expr
}

func (*BinOp) Kind() Kind { return KindBinOp }
func (*BinOp) exprNode()  {}

// UnaryOp is a unary operation.
type UnaryOp struct {
	Op      UnaryOperator
	Operand Expr
}

func (*UnaryOp) Kind() Kind { return KindUnaryOp }
func (*UnaryOp) exprNode()  {}

// Lambda is a lambda expression.
type Lambda struct {
	Args *Arguments
	Body Expr
}

func (*Lambda) Kind() Kind { return KindLambda }
func (*Lambda) exprNode()  {}

// IfExp is a conditional expression, e.g. "a if cond else b".
type IfExp struct {
	Test Expr
	Body Expr
	Else Expr
}

func (*IfExp) Kind() Kind { return KindIfExp }
func (*IfExp) exprNode()  {}

// Dict is a dictionary display. A nil entry in Keys marks a "**" unpacking.
type Dict struct {
	Keys   []Expr
	Values []Expr
}

func (*Dict) Kind() Kind { return KindDict }
func (*Dict) exprNode()  {}

// Set is a set display.
type Set struct {
	Elts []Expr
}

func (*Set) Kind() Kind { return KindSet }
func (*Set) exprNode()  {}

// Comprehension is one "for ... in ... [if ...]" clause of a
// comprehension. IsAsync marks an "async for" clause.
type Comprehension struct {
	Target  Expr
	Iter    Expr
	Ifs     []Expr
	IsAsync bool
}

func (*Comprehension) Kind() Kind { return KindComprehension }

// ListComp is a list comprehension.
type ListComp struct {
	Elt        Expr
	Generators []*Comprehension
}

func (*ListComp) Kind() Kind { return KindListComp }
func (*ListComp) exprNode()  {}

// SetComp is a set comprehension.
type SetComp struct {
	Elt        Expr
	Generators []*Comprehension
}

func (*SetComp) Kind() Kind { return KindSetComp }
func (*SetComp) exprNode()  {}

// DictComp is a dictionary comprehension.
type DictComp struct {
	Key        Expr
	Value      Expr
	Generators []*Comprehension
}

func (*DictComp) Kind() Kind { return KindDictComp }
func (*DictComp) exprNode()  {}

// GeneratorExp is a generator expression.
type GeneratorExp struct {
	Elt        Expr
	Generators []*Comprehension
}

func (*GeneratorExp) Kind() Kind { return KindGeneratorExp }
func (*GeneratorExp) exprNode()  {}

// Await is an "await" expression.
type Await struct {
	Value Expr
}

func (*Await) Kind() Kind { return KindAwait }
func (*Await) exprNode()  {}

// Yield is a "yield" expression. Value is nil for a bare yield.
type Yield struct {
	Value Expr
}

func (*Yield) Kind() Kind { return KindYield }
func (*Yield) exprNode()  {}

// YieldFrom is a "yield from" expression.
type YieldFrom struct {
	Value Expr
}

func (*YieldFrom) Kind() Kind { return KindYieldFrom }
func (*YieldFrom) exprNode()  {}

// Compare is a chained comparison, e.g. "a < b <= c".
type Compare struct {
	Left        Expr
	Ops         []CompareOperator
	Comparators []Expr
}

func (*Compare) Kind() Kind { return KindCompare }
func (*Compare) exprNode()  {}

// Keyword is a keyword argument in a call or class definition.
// Arg is empty for "**kwargs" unpacking.
type Keyword struct {
	Arg   string
	Value Expr
}

func (*Keyword) Kind() Kind { return KindKeyword }

// Call is a function call.
type Call struct {
	Func     Expr
	Args     []Expr
	Keywords []*Keyword
}

func (*Call) Kind() Kind { return KindCall }
func (*Call) exprNode()  {}

// FormattedValue is a single replacement field inside a formatted-string
// literal, e.g. the "{x:>{width}}" part of an f-string.
type FormattedValue struct {
	Value      Expr
	Conversion int  // -1 when absent, otherwise 's', 'r' or 'a'
	FormatSpec Expr // nil when absent; a JoinedStr when present
}

func (*FormattedValue) Kind() Kind { return KindFormattedValue }
func (*FormattedValue) exprNode()  {}

// JoinedStr is a formatted-string literal (f-string).
type JoinedStr struct {
	Values []Expr
}

func (*JoinedStr) Kind() Kind { return KindJoinedStr }
func (*JoinedStr) exprNode()  {}

// Str is a plain string literal.
type Str struct {
	Value string
}

func (*Str) Kind() Kind { return KindStr }
func (*Str) exprNode()  {}

// Bytes is a bytes literal.
type Bytes struct {
	Value []byte
}

func (*Bytes) Kind() Kind { return KindBytes }
func (*Bytes) exprNode()  {}

// Num is a numeric literal. Raw preserves the source token so integers,
// floats and complex numbers round-trip without loss.
type Num struct {
	Raw string
}

func (*Num) Kind() Kind { return KindNum }
func (*Num) exprNode()  {}

// NameConstant is one of the singleton literals None, True, False or
// Ellipsis.
type NameConstant struct {
	Value string
}

func (*NameConstant) Kind() Kind { return KindNameConstant }
func (*NameConstant) exprNode()  {}

// Repr is the legacy backtick string-conversion expression, e.g. "`x`".
// Only Python 2 grammars accept it.
type Repr struct {
	Value Expr
}

func (*Repr) Kind() Kind { return KindRepr }
func (*Repr) exprNode()  {}

// Attribute is an attribute access, e.g. "obj.field".
type Attribute struct {
	Value Expr
	Attr  string
}

func (*Attribute) Kind() Kind { return KindAttribute }
func (*Attribute) exprNode()  {}

// Subscript is a subscript expression, e.g. "a[i]".
type Subscript struct {
	Value Expr
	Index Expr
}

func (*Subscript) Kind() Kind { return KindSubscript }
func (*Subscript) exprNode()  {}

// Slice is a slice expression, e.g. "a[1:10:2]".
type Slice struct {
	Lower Expr
	Upper Expr
	Step  Expr
}

func (*Slice) Kind() Kind { return KindSlice }
func (*Slice) exprNode()  {}

// Starred is a "*value" expression.
type Starred struct {
	Value Expr
}

func (*Starred) Kind() Kind { return KindStarred }
func (*Starred) exprNode()  {}

// Name is an identifier reference.
type Name struct {
	ID string
}

func (*Name) Kind() Kind { return KindName }
func (*Name) exprNode()  {}

// List is a list display.
type List struct {
	Elts []Expr
}

func (*List) Kind() Kind { return KindList }
func (*List) exprNode()  {}

// Tuple is a tuple display.
type Tuple struct {
	Elts []Expr
}

func (*Tuple) Kind() Kind { return KindTuple }
func (*Tuple) exprNode()  {}
