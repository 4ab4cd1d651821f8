package astjson

import (
	"github.com/tidwall/gjson"

	"github.com/pyspan/pyspan/internal/pyast"
)

// decodeExprNode decodes expression and auxiliary node types. Unmodeled
// types fall through to decodeUnknown.
func decodeExprNode(r gjson.Result, typ string) (pyast.Node, error) { //nolint:gocyclo // one arm per node kind, by construction
	switch typ {
	case "BoolOp":
		values, err := decodeExprs(r.Get("values"))
		if err != nil {
			return nil, err
		}
		return &pyast.BoolOp{Op: pyast.BoolOperator(r.Get("op._type").String()), Values: values}, nil

	case "NamedExpr":
		target, err := decodeOptExpr(r.Get("target"))
		if err != nil {
			return nil, err
		}
		value, err := decodeOptExpr(r.Get("value"))
		if err != nil {
			return nil, err
		}
		return &pyast.NamedExpr{Target: target, Value: value}, nil

	case "BinOp":
		left, err := decodeOptExpr(r.Get("left"))
		if err != nil {
			return nil, err
		}
		right, err := decodeOptExpr(r.Get("right"))
		if err != nil {
			return nil, err
		}
		return &pyast.BinOp{Left: left, Op: decodeBinaryOp(r.Get("op")), Right: right}, nil

	case "UnaryOp":
		operand, err := decodeOptExpr(r.Get("operand"))
		if err != nil {
			return nil, err
		}
		return &pyast.UnaryOp{Op: pyast.UnaryOperator(r.Get("op._type").String()), Operand: operand}, nil

	case "Lambda":
		args, err := decodeOptArguments(r.Get("args"))
		if err != nil {
			return nil, err
		}
		body, err := decodeOptExpr(r.Get("body"))
		if err != nil {
			return nil, err
		}
		return &pyast.Lambda{Args: args, Body: body}, nil

	case "IfExp":
		test, err := decodeOptExpr(r.Get("test"))
		if err != nil {
			return nil, err
		}
		body, err := decodeOptExpr(r.Get("body"))
		if err != nil {
			return nil, err
		}
		orelse, err := decodeOptExpr(r.Get("orelse"))
		if err != nil {
			return nil, err
		}
		return &pyast.IfExp{Test: test, Body: body, Else: orelse}, nil

	case "Dict":
		keys, err := decodeExprsKeepNil(r.Get("keys"))
		if err != nil {
			return nil, err
		}
		values, err := decodeExprs(r.Get("values"))
		if err != nil {
			return nil, err
		}
		return &pyast.Dict{Keys: keys, Values: values}, nil

	case "Set":
		elts, err := decodeExprs(r.Get("elts"))
		if err != nil {
			return nil, err
		}
		return &pyast.Set{Elts: elts}, nil

	case "ListComp", "SetComp", "GeneratorExp":
		elt, err := decodeOptExpr(r.Get("elt"))
		if err != nil {
			return nil, err
		}
		gens, err := decodeComprehensions(r.Get("generators"))
		if err != nil {
			return nil, err
		}
		switch typ {
		case "SetComp":
			return &pyast.SetComp{Elt: elt, Generators: gens}, nil
		case "GeneratorExp":
			return &pyast.GeneratorExp{Elt: elt, Generators: gens}, nil
		default:
			return &pyast.ListComp{Elt: elt, Generators: gens}, nil
		}

	case "DictComp":
		key, err := decodeOptExpr(r.Get("key"))
		if err != nil {
			return nil, err
		}
		value, err := decodeOptExpr(r.Get("value"))
		if err != nil {
			return nil, err
		}
		gens, err := decodeComprehensions(r.Get("generators"))
		if err != nil {
			return nil, err
		}
		return &pyast.DictComp{Key: key, Value: value, Generators: gens}, nil

	case "comprehension":
		target, err := decodeOptExpr(r.Get("target"))
		if err != nil {
			return nil, err
		}
		iter, err := decodeOptExpr(r.Get("iter"))
		if err != nil {
			return nil, err
		}
		ifs, err := decodeExprs(r.Get("ifs"))
		if err != nil {
			return nil, err
		}
		return &pyast.Comprehension{Target: target, Iter: iter, Ifs: ifs, IsAsync: r.Get("is_async").Int() == 1 || r.Get("is_async").Bool()}, nil

	case "Await":
		value, err := decodeOptExpr(r.Get("value"))
		if err != nil {
			return nil, err
		}
		return &pyast.Await{Value: value}, nil

	case "Yield":
		value, err := decodeOptExpr(r.Get("value"))
		if err != nil {
			return nil, err
		}
		return &pyast.Yield{Value: value}, nil

	case "YieldFrom":
		value, err := decodeOptExpr(r.Get("value"))
		if err != nil {
			return nil, err
		}
		return &pyast.YieldFrom{Value: value}, nil

	case "Compare":
		left, err := decodeOptExpr(r.Get("left"))
		if err != nil {
			return nil, err
		}
		comparators, err := decodeExprs(r.Get("comparators"))
		if err != nil {
			return nil, err
		}
		var ops []pyast.CompareOperator
		r.Get("ops").ForEach(func(_, op gjson.Result) bool {
			ops = append(ops, pyast.CompareOperator(op.Get("_type").String()))
			return true
		})
		return &pyast.Compare{Left: left, Ops: ops, Comparators: comparators}, nil

	case "Call":
		fn, err := decodeOptExpr(r.Get("func"))
		if err != nil {
			return nil, err
		}
		args, err := decodeExprs(r.Get("args"))
		if err != nil {
			return nil, err
		}
		keywords, err := decodeKeywords(r.Get("keywords"))
		if err != nil {
			return nil, err
		}
		return &pyast.Call{Func: fn, Args: args, Keywords: keywords}, nil

	case "keyword":
		value, err := decodeOptExpr(r.Get("value"))
		if err != nil {
			return nil, err
		}
		return &pyast.Keyword{Arg: r.Get("arg").String(), Value: value}, nil

	case "FormattedValue":
		value, err := decodeOptExpr(r.Get("value"))
		if err != nil {
			return nil, err
		}
		spec, err := decodeOptExpr(r.Get("format_spec"))
		if err != nil {
			return nil, err
		}
		conversion := -1
		if conv := r.Get("conversion"); conv.Exists() && conv.Type == gjson.Number {
			conversion = int(conv.Int())
		}
		return &pyast.FormattedValue{Value: value, Conversion: conversion, FormatSpec: spec}, nil

	case "JoinedStr":
		values, err := decodeExprs(r.Get("values"))
		if err != nil {
			return nil, err
		}
		return &pyast.JoinedStr{Values: values}, nil

	case "Constant":
		return decodeConstant(r.Get("value")), nil

	case "Str":
		return &pyast.Str{Value: r.Get("s").String()}, nil

	case "Bytes":
		return &pyast.Bytes{Value: []byte(r.Get("s").String())}, nil

	case "Num":
		return &pyast.Num{Raw: r.Get("n").Raw}, nil

	case "NameConstant":
		return &pyast.NameConstant{Value: r.Get("value").Raw}, nil

	case "Ellipsis":
		return &pyast.NameConstant{Value: "Ellipsis"}, nil

	case "Repr":
		value, err := decodeOptExpr(r.Get("value"))
		if err != nil {
			return nil, err
		}
		return &pyast.Repr{Value: value}, nil

	case "Attribute":
		value, err := decodeOptExpr(r.Get("value"))
		if err != nil {
			return nil, err
		}
		return &pyast.Attribute{Value: value, Attr: r.Get("attr").String()}, nil

	case "Subscript":
		value, err := decodeOptExpr(r.Get("value"))
		if err != nil {
			return nil, err
		}
		index, err := decodeOptExpr(r.Get("slice"))
		if err != nil {
			return nil, err
		}
		return &pyast.Subscript{Value: value, Index: index}, nil

	case "Slice":
		lower, err := decodeOptExpr(r.Get("lower"))
		if err != nil {
			return nil, err
		}
		upper, err := decodeOptExpr(r.Get("upper"))
		if err != nil {
			return nil, err
		}
		step, err := decodeOptExpr(r.Get("step"))
		if err != nil {
			return nil, err
		}
		return &pyast.Slice{Lower: lower, Upper: upper, Step: step}, nil

	case "Index":
		// Legacy wrapper around the subscript expression.
		return decodeOptExprNode(r.Get("value"))

	case "Starred":
		value, err := decodeOptExpr(r.Get("value"))
		if err != nil {
			return nil, err
		}
		return &pyast.Starred{Value: value}, nil

	case "Name":
		return &pyast.Name{ID: r.Get("id").String()}, nil

	case "List":
		elts, err := decodeExprs(r.Get("elts"))
		if err != nil {
			return nil, err
		}
		return &pyast.List{Elts: elts}, nil

	case "Tuple":
		elts, err := decodeExprs(r.Get("elts"))
		if err != nil {
			return nil, err
		}
		return &pyast.Tuple{Elts: elts}, nil

	case "arguments":
		return decodeArguments(r)

	case "arg":
		annotation, err := decodeOptExpr(r.Get("annotation"))
		if err != nil {
			return nil, err
		}
		return &pyast.Arg{Name: r.Get("arg").String(), Annotation: annotation}, nil

	case "TypeVar":
		bound, err := decodeOptExpr(r.Get("bound"))
		if err != nil {
			return nil, err
		}
		return &pyast.TypeVar{Name: r.Get("name").String(), Bound: bound}, nil

	case "TypeVarTuple":
		return &pyast.TypeVarTuple{Name: r.Get("name").String()}, nil

	case "ParamSpec":
		return &pyast.ParamSpec{Name: r.Get("name").String()}, nil

	default:
		return decodeUnknown(r, typ)
	}
}

// decodeConstant maps a modern Constant node onto the legacy literal
// kinds the analyzer distinguishes.
func decodeConstant(value gjson.Result) pyast.Node {
	switch value.Type {
	case gjson.String:
		return &pyast.Str{Value: value.String()}
	case gjson.Number:
		return &pyast.Num{Raw: value.Raw}
	case gjson.True:
		return &pyast.NameConstant{Value: "True"}
	case gjson.False:
		return &pyast.NameConstant{Value: "False"}
	default:
		return &pyast.NameConstant{Value: "None"}
	}
}

// decodeArguments decodes a parameter list, including the legacy
// varargannotation/kwargannotation fields some exporters emit.
func decodeArguments(r gjson.Result) (*pyast.Arguments, error) {
	posOnly, err := decodeArgs(r.Get("posonlyargs"))
	if err != nil {
		return nil, err
	}
	args, err := decodeArgs(r.Get("args"))
	if err != nil {
		return nil, err
	}
	varArg, err := decodeOptArg(r.Get("vararg"))
	if err != nil {
		return nil, err
	}
	kwOnly, err := decodeArgs(r.Get("kwonlyargs"))
	if err != nil {
		return nil, err
	}
	kwDefaults, err := decodeExprsKeepNil(r.Get("kw_defaults"))
	if err != nil {
		return nil, err
	}
	kwArg, err := decodeOptArg(r.Get("kwarg"))
	if err != nil {
		return nil, err
	}
	defaults, err := decodeExprs(r.Get("defaults"))
	if err != nil {
		return nil, err
	}
	varArgAnn, err := decodeOptExpr(r.Get("varargannotation"))
	if err != nil {
		return nil, err
	}
	kwArgAnn, err := decodeOptExpr(r.Get("kwargannotation"))
	if err != nil {
		return nil, err
	}

	return &pyast.Arguments{
		PosOnlyArgs:      posOnly,
		Args:             args,
		VarArg:           varArg,
		KwOnlyArgs:       kwOnly,
		KwDefaults:       kwDefaults,
		KwArg:            kwArg,
		Defaults:         defaults,
		VarArgAnnotation: varArgAnn,
		KwArgAnnotation:  kwArgAnn,
	}, nil
}

// decodeUnknown preserves an unmodeled node, decoding any object- or
// array-of-object fields as children so traversal still covers them.
func decodeUnknown(r gjson.Result, typ string) (pyast.Node, error) {
	unknown := &pyast.Unknown{Type: typ}

	var decodeErr error
	r.ForEach(func(key, value gjson.Result) bool {
		if key.String() == "_type" {
			return true
		}
		switch {
		case value.IsObject() && value.Get("_type").Exists():
			child, err := decodeNode(value)
			if err != nil {
				decodeErr = err
				return false
			}
			unknown.Kids = append(unknown.Kids, child)
		case value.IsArray():
			value.ForEach(func(_, item gjson.Result) bool {
				if item.IsObject() && item.Get("_type").Exists() {
					child, err := decodeNode(item)
					if err != nil {
						decodeErr = err
						return false
					}
					unknown.Kids = append(unknown.Kids, child)
				}
				return true
			})
		}
		return decodeErr == nil
	})

	if decodeErr != nil {
		return nil, decodeErr
	}
	return unknown, nil
}
