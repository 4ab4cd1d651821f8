package pyast

// childList accumulates child nodes, skipping absent optional fields.
type childList struct {
	nodes []Node
}

func (c *childList) add(n Node) {
	if n == nil {
		return
	}
	c.nodes = append(c.nodes, n)
}

func addAll[T Node](c *childList, items []T) {
	for _, item := range items {
		c.add(item)
	}
}

// Children returns the ordered child nodes of n. Optional fields that are
// absent contribute nothing; list fields contribute their elements in
// source order. Non-node scalars (names, operators, flags) are not
// children.
func Children(n Node) []Node { //nolint:gocyclo // one arm per node kind, by construction
	var c childList

	switch t := n.(type) {
	case *Module:
		addAll(&c, t.Body)
	case *FunctionDef:
		addAll(&c, t.Decorators)
		addAll(&c, t.TypeParams)
		if t.Args != nil {
			c.add(t.Args)
		}
		c.add(t.Returns)
		addAll(&c, t.Body)
	case *AsyncFunctionDef:
		addAll(&c, t.Decorators)
		addAll(&c, t.TypeParams)
		if t.Args != nil {
			c.add(t.Args)
		}
		c.add(t.Returns)
		addAll(&c, t.Body)
	case *ClassDef:
		addAll(&c, t.Decorators)
		addAll(&c, t.TypeParams)
		addAll(&c, t.Bases)
		addAll(&c, t.Keywords)
		addAll(&c, t.Body)
	case *Return:
		c.add(t.Value)
	case *Delete:
		addAll(&c, t.Targets)
	case *Assign:
		addAll(&c, t.Targets)
		c.add(t.Value)
	case *AugAssign:
		c.add(t.Target)
		c.add(t.Value)
	case *AnnAssign:
		c.add(t.Target)
		c.add(t.Annotation)
		c.add(t.Value)
	case *For:
		c.add(t.Target)
		c.add(t.Iter)
		addAll(&c, t.Body)
		addAll(&c, t.Else)
	case *AsyncFor:
		c.add(t.Target)
		c.add(t.Iter)
		addAll(&c, t.Body)
		addAll(&c, t.Else)
	case *While:
		c.add(t.Test)
		addAll(&c, t.Body)
		addAll(&c, t.Else)
	case *If:
		c.add(t.Test)
		addAll(&c, t.Body)
		addAll(&c, t.Else)
	case *With:
		addAll(&c, t.Items)
		addAll(&c, t.Body)
	case *AsyncWith:
		addAll(&c, t.Items)
		addAll(&c, t.Body)
	case *WithItem:
		c.add(t.ContextExpr)
		c.add(t.OptionalVars)
	case *Match:
		c.add(t.Subject)
		addAll(&c, t.Cases)
	case *MatchCase:
		c.add(t.Pattern)
		c.add(t.Guard)
		addAll(&c, t.Body)
	case *MatchValue:
		c.add(t.Value)
	case *MatchSequence:
		addAll(&c, t.Patterns)
	case *MatchStar:
		// no children
	case *MatchAs:
		c.add(t.Pattern)
	case *MatchOr:
		addAll(&c, t.Patterns)
	case *Raise:
		c.add(t.Exc)
		c.add(t.Cause)
	case *Try:
		addAll(&c, t.Body)
		addAll(&c, t.Handlers)
		addAll(&c, t.Else)
		addAll(&c, t.Final)
	case *TryStar:
		addAll(&c, t.Body)
		addAll(&c, t.Handlers)
		addAll(&c, t.Else)
		addAll(&c, t.Final)
	case *ExceptHandler:
		c.add(t.Type)
		addAll(&c, t.Body)
	case *Assert:
		c.add(t.Test)
		c.add(t.Msg)
	case *Import:
		addAll(&c, t.Names)
	case *ImportFrom:
		addAll(&c, t.Names)
	case *ExprStmt:
		c.add(t.Value)
	case *BoolOp:
		addAll(&c, t.Values)
	case *NamedExpr:
		c.add(t.Target)
		c.add(t.Value)
	case *BinOp:
		c.add(t.Left)
		c.add(t.Right)
	case *UnaryOp:
		c.add(t.Operand)
	case *Lambda:
		if t.Args != nil {
			c.add(t.Args)
		}
		c.add(t.Body)
	case *IfExp:
		c.add(t.Test)
		c.add(t.Body)
		c.add(t.Else)
	case *Dict:
		for i := range t.Keys {
			c.add(t.Keys[i])
			if i < len(t.Values) {
				c.add(t.Values[i])
			}
		}
	case *Set:
		addAll(&c, t.Elts)
	case *ListComp:
		c.add(t.Elt)
		addAll(&c, t.Generators)
	case *SetComp:
		c.add(t.Elt)
		addAll(&c, t.Generators)
	case *DictComp:
		c.add(t.Key)
		c.add(t.Value)
		addAll(&c, t.Generators)
	case *GeneratorExp:
		c.add(t.Elt)
		addAll(&c, t.Generators)
	case *Comprehension:
		c.add(t.Target)
		c.add(t.Iter)
		addAll(&c, t.Ifs)
	case *Await:
		c.add(t.Value)
	case *Yield:
		c.add(t.Value)
	case *YieldFrom:
		c.add(t.Value)
	case *Compare:
		c.add(t.Left)
		addAll(&c, t.Comparators)
	case *Call:
		c.add(t.Func)
		addAll(&c, t.Args)
		addAll(&c, t.Keywords)
	case *Keyword:
		c.add(t.Value)
	case *FormattedValue:
		c.add(t.Value)
		c.add(t.FormatSpec)
	case *JoinedStr:
		addAll(&c, t.Values)
	case *Repr:
		c.add(t.Value)
	case *Attribute:
		c.add(t.Value)
	case *Subscript:
		c.add(t.Value)
		c.add(t.Index)
	case *Slice:
		c.add(t.Lower)
		c.add(t.Upper)
		c.add(t.Step)
	case *Starred:
		c.add(t.Value)
	case *List:
		addAll(&c, t.Elts)
	case *Tuple:
		addAll(&c, t.Elts)
	case *Arguments:
		addAll(&c, t.PosOnlyArgs)
		addAll(&c, t.Args)
		if t.VarArg != nil {
			c.add(t.VarArg)
		}
		c.add(t.VarArgAnnotation)
		addAll(&c, t.KwOnlyArgs)
		addAll(&c, t.KwDefaults)
		if t.KwArg != nil {
			c.add(t.KwArg)
		}
		c.add(t.KwArgAnnotation)
		addAll(&c, t.Defaults)
	case *Arg:
		c.add(t.Annotation)
	case *TypeVar:
		c.add(t.Bound)
	case *Unknown:
		addAll(&c, t.Kids)
	case *Str, *Bytes, *Num, *NameConstant, *Name, *Alias,
		*Global, *Nonlocal, *Pass, *Break, *Continue,
		*TypeVarTuple, *ParamSpec:
		// leaves
	}

	return c.nodes
}
