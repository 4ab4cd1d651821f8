package astjson

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/pyspan/pyspan/internal/pyast"
)

func isAbsent(r gjson.Result) bool {
	return !r.Exists() || r.Type == gjson.Null
}

// decodeOptExprNode decodes an optional node field without constraining
// its interface.
func decodeOptExprNode(r gjson.Result) (pyast.Node, error) {
	if isAbsent(r) {
		return nil, nil
	}
	return decodeNode(r)
}

// decodeOptExpr decodes an optional expression field; absent fields
// yield nil.
func decodeOptExpr(r gjson.Result) (pyast.Expr, error) {
	if isAbsent(r) {
		return nil, nil
	}
	node, err := decodeNode(r)
	if err != nil {
		return nil, err
	}
	return asExpr(node)
}

func asExpr(node pyast.Node) (pyast.Expr, error) {
	expr, ok := node.(pyast.Expr)
	if !ok {
		return nil, fmt.Errorf("%w: %s node in expression position", ErrInvalidDump, node.Kind())
	}
	return expr, nil
}

func asStmt(node pyast.Node) (pyast.Stmt, error) {
	stmt, ok := node.(pyast.Stmt)
	if !ok {
		return nil, fmt.Errorf("%w: %s node in statement position", ErrInvalidDump, node.Kind())
	}
	return stmt, nil
}

func decodeExprs(r gjson.Result) ([]pyast.Expr, error) {
	if isAbsent(r) {
		return nil, nil
	}
	var out []pyast.Expr
	var decodeErr error
	r.ForEach(func(_, item gjson.Result) bool {
		expr, err := decodeOptExpr(item)
		if err != nil {
			decodeErr = err
			return false
		}
		if expr != nil {
			out = append(out, expr)
		}
		return true
	})
	return out, decodeErr
}

// decodeExprsKeepNil is like decodeExprs but preserves null entries as
// nil elements. Dict keys use null to mark "**" unpacking and kw_defaults
// use it for keyword-only parameters without a default, so positions
// matter.
func decodeExprsKeepNil(r gjson.Result) ([]pyast.Expr, error) {
	if isAbsent(r) {
		return nil, nil
	}
	var out []pyast.Expr
	var decodeErr error
	r.ForEach(func(_, item gjson.Result) bool {
		expr, err := decodeOptExpr(item)
		if err != nil {
			decodeErr = err
			return false
		}
		out = append(out, expr)
		return true
	})
	return out, decodeErr
}

func decodeStmts(r gjson.Result) ([]pyast.Stmt, error) {
	if isAbsent(r) {
		return nil, nil
	}
	var out []pyast.Stmt
	var decodeErr error
	r.ForEach(func(_, item gjson.Result) bool {
		node, err := decodeNode(item)
		if err != nil {
			decodeErr = err
			return false
		}
		stmt, err := asStmt(node)
		if err != nil {
			decodeErr = err
			return false
		}
		out = append(out, stmt)
		return true
	})
	return out, decodeErr
}

func decodeOptArguments(r gjson.Result) (*pyast.Arguments, error) {
	if isAbsent(r) {
		return nil, nil
	}
	return decodeArguments(r)
}

func decodeOptArg(r gjson.Result) (*pyast.Arg, error) {
	if isAbsent(r) {
		return nil, nil
	}
	annotation, err := decodeOptExpr(r.Get("annotation"))
	if err != nil {
		return nil, err
	}
	return &pyast.Arg{Name: r.Get("arg").String(), Annotation: annotation}, nil
}

func decodeArgs(r gjson.Result) ([]*pyast.Arg, error) {
	if isAbsent(r) {
		return nil, nil
	}
	var out []*pyast.Arg
	var decodeErr error
	r.ForEach(func(_, item gjson.Result) bool {
		arg, err := decodeOptArg(item)
		if err != nil {
			decodeErr = err
			return false
		}
		if arg != nil {
			out = append(out, arg)
		}
		return true
	})
	return out, decodeErr
}

func decodeKeywords(r gjson.Result) ([]*pyast.Keyword, error) {
	if isAbsent(r) {
		return nil, nil
	}
	var out []*pyast.Keyword
	var decodeErr error
	r.ForEach(func(_, item gjson.Result) bool {
		value, err := decodeOptExpr(item.Get("value"))
		if err != nil {
			decodeErr = err
			return false
		}
		out = append(out, &pyast.Keyword{Arg: item.Get("arg").String(), Value: value})
		return true
	})
	return out, decodeErr
}

func decodeAliases(r gjson.Result) []*pyast.Alias {
	if isAbsent(r) {
		return nil
	}
	var out []*pyast.Alias
	r.ForEach(func(_, item gjson.Result) bool {
		out = append(out, &pyast.Alias{
			Name:   item.Get("name").String(),
			AsName: item.Get("asname").String(),
		})
		return true
	})
	return out
}

func decodeStrings(r gjson.Result) []string {
	if isAbsent(r) {
		return nil
	}
	var out []string
	r.ForEach(func(_, item gjson.Result) bool {
		out = append(out, item.String())
		return true
	})
	return out
}

func decodeWithItems(r gjson.Result) ([]*pyast.WithItem, error) {
	if isAbsent(r) {
		return nil, nil
	}
	var out []*pyast.WithItem
	var decodeErr error
	r.ForEach(func(_, item gjson.Result) bool {
		ctxExpr, err := decodeOptExpr(item.Get("context_expr"))
		if err != nil {
			decodeErr = err
			return false
		}
		optional, err := decodeOptExpr(item.Get("optional_vars"))
		if err != nil {
			decodeErr = err
			return false
		}
		out = append(out, &pyast.WithItem{ContextExpr: ctxExpr, OptionalVars: optional})
		return true
	})
	return out, decodeErr
}

func decodeHandlers(r gjson.Result) ([]*pyast.ExceptHandler, error) {
	if isAbsent(r) {
		return nil, nil
	}
	var out []*pyast.ExceptHandler
	var decodeErr error
	r.ForEach(func(_, item gjson.Result) bool {
		excType, err := decodeOptExpr(item.Get("type"))
		if err != nil {
			decodeErr = err
			return false
		}
		body, err := decodeStmts(item.Get("body"))
		if err != nil {
			decodeErr = err
			return false
		}
		out = append(out, &pyast.ExceptHandler{Type: excType, Name: item.Get("name").String(), Body: body})
		return true
	})
	return out, decodeErr
}

func decodeComprehensions(r gjson.Result) ([]*pyast.Comprehension, error) {
	if isAbsent(r) {
		return nil, nil
	}
	var out []*pyast.Comprehension
	var decodeErr error
	r.ForEach(func(_, item gjson.Result) bool {
		target, err := decodeOptExpr(item.Get("target"))
		if err != nil {
			decodeErr = err
			return false
		}
		iter, err := decodeOptExpr(item.Get("iter"))
		if err != nil {
			decodeErr = err
			return false
		}
		ifs, err := decodeExprs(item.Get("ifs"))
		if err != nil {
			decodeErr = err
			return false
		}
		out = append(out, &pyast.Comprehension{
			Target:  target,
			Iter:    iter,
			Ifs:     ifs,
			IsAsync: item.Get("is_async").Int() == 1 || item.Get("is_async").Bool(),
		})
		return true
	})
	return out, decodeErr
}

func decodeMatchCases(r gjson.Result) ([]*pyast.MatchCase, error) {
	if isAbsent(r) {
		return nil, nil
	}
	var out []*pyast.MatchCase
	var decodeErr error
	r.ForEach(func(_, item gjson.Result) bool {
		node, err := decodeNode(item)
		if err != nil {
			decodeErr = err
			return false
		}
		matchCase, ok := node.(*pyast.MatchCase)
		if !ok {
			decodeErr = fmt.Errorf("%w: %s node in match case position", ErrInvalidDump, node.Kind())
			return false
		}
		out = append(out, matchCase)
		return true
	})
	return out, decodeErr
}

func decodeOptPattern(r gjson.Result) (pyast.Pattern, error) {
	if isAbsent(r) {
		return nil, nil
	}
	node, err := decodeNode(r)
	if err != nil {
		return nil, err
	}
	pattern, ok := node.(pyast.Pattern)
	if !ok {
		return nil, fmt.Errorf("%w: %s node in pattern position", ErrInvalidDump, node.Kind())
	}
	return pattern, nil
}

func decodePatterns(r gjson.Result) ([]pyast.Pattern, error) {
	if isAbsent(r) {
		return nil, nil
	}
	var out []pyast.Pattern
	var decodeErr error
	r.ForEach(func(_, item gjson.Result) bool {
		pattern, err := decodeOptPattern(item)
		if err != nil {
			decodeErr = err
			return false
		}
		if pattern != nil {
			out = append(out, pattern)
		}
		return true
	})
	return out, decodeErr
}

func decodeTypeParams(r gjson.Result) ([]pyast.TypeParam, error) {
	if isAbsent(r) {
		return nil, nil
	}
	var out []pyast.TypeParam
	var decodeErr error
	r.ForEach(func(_, item gjson.Result) bool {
		node, err := decodeNode(item)
		if err != nil {
			decodeErr = err
			return false
		}
		typeParam, ok := node.(pyast.TypeParam)
		if !ok {
			decodeErr = fmt.Errorf("%w: %s node in type parameter position", ErrInvalidDump, node.Kind())
			return false
		}
		out = append(out, typeParam)
		return true
	})
	return out, decodeErr
}

func decodeBinaryOp(r gjson.Result) pyast.BinaryOp {
	return pyast.BinaryOp(r.Get("_type").String())
}
