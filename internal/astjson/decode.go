// Package astjson decodes serialized Python syntax trees into pyast
// nodes. The expected input is the JSON dump convention used by
// ast2json-style exporters: every node is an object carrying a "_type"
// discriminator named after the CPython ast class, with the node's
// fields as sibling keys.
//
// Node types the decoder does not model become pyast.Unknown nodes whose
// object- and array-valued fields are still decoded, so downstream
// traversal keeps seeing the whole tree.
package astjson

import (
	"context"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/pyspan/pyspan/internal/core"
	"github.com/pyspan/pyspan/internal/pyast"
)

// ErrInvalidDump is returned (wrapped) when the input is not a valid
// AST dump.
var ErrInvalidDump = errors.New("invalid AST dump")

// Decode parses an AST dump and returns its root node.
func Decode(data []byte) (pyast.Node, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrInvalidDump)
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: root is not an object", ErrInvalidDump)
	}

	return decodeNode(root)
}

// DecodeFile reads path through fs and decodes it, wrapping errors with
// the file path.
func DecodeFile(ctx context.Context, fs core.FileSystem, path string) (pyast.Node, error) {
	data, err := fs.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read AST dump %q: %w", path, err)
	}

	node, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("in file %q: %w", path, err)
	}
	return node, nil
}

func decodeNode(r gjson.Result) (pyast.Node, error) {
	typ := r.Get("_type").String()
	if typ == "" {
		return nil, fmt.Errorf("%w: node object missing _type", ErrInvalidDump)
	}

	switch typ {
	case "Module", "Interactive":
		body, err := decodeStmts(r.Get("body"))
		if err != nil {
			return nil, err
		}
		return &pyast.Module{Body: body}, nil

	case "FunctionDef", "AsyncFunctionDef":
		args, err := decodeOptArguments(r.Get("args"))
		if err != nil {
			return nil, err
		}
		body, err := decodeStmts(r.Get("body"))
		if err != nil {
			return nil, err
		}
		decorators, err := decodeExprs(r.Get("decorator_list"))
		if err != nil {
			return nil, err
		}
		returns, err := decodeOptExpr(r.Get("returns"))
		if err != nil {
			return nil, err
		}
		typeParams, err := decodeTypeParams(r.Get("type_params"))
		if err != nil {
			return nil, err
		}
		name := r.Get("name").String()
		if typ == "AsyncFunctionDef" {
			return &pyast.AsyncFunctionDef{Name: name, Args: args, Body: body, Decorators: decorators, Returns: returns, TypeParams: typeParams}, nil
		}
		return &pyast.FunctionDef{Name: name, Args: args, Body: body, Decorators: decorators, Returns: returns, TypeParams: typeParams}, nil

	case "ClassDef":
		bases, err := decodeExprs(r.Get("bases"))
		if err != nil {
			return nil, err
		}
		keywords, err := decodeKeywords(r.Get("keywords"))
		if err != nil {
			return nil, err
		}
		body, err := decodeStmts(r.Get("body"))
		if err != nil {
			return nil, err
		}
		decorators, err := decodeExprs(r.Get("decorator_list"))
		if err != nil {
			return nil, err
		}
		typeParams, err := decodeTypeParams(r.Get("type_params"))
		if err != nil {
			return nil, err
		}
		return &pyast.ClassDef{Name: r.Get("name").String(), Bases: bases, Keywords: keywords, Body: body, Decorators: decorators, TypeParams: typeParams}, nil

	case "Return":
		value, err := decodeOptExpr(r.Get("value"))
		if err != nil {
			return nil, err
		}
		return &pyast.Return{Value: value}, nil

	case "Delete":
		targets, err := decodeExprs(r.Get("targets"))
		if err != nil {
			return nil, err
		}
		return &pyast.Delete{Targets: targets}, nil

	case "Assign":
		targets, err := decodeExprs(r.Get("targets"))
		if err != nil {
			return nil, err
		}
		value, err := decodeOptExpr(r.Get("value"))
		if err != nil {
			return nil, err
		}
		return &pyast.Assign{Targets: targets, Value: value}, nil

	case "AugAssign":
		target, err := decodeOptExpr(r.Get("target"))
		if err != nil {
			return nil, err
		}
		value, err := decodeOptExpr(r.Get("value"))
		if err != nil {
			return nil, err
		}
		return &pyast.AugAssign{Target: target, Op: decodeBinaryOp(r.Get("op")), Value: value}, nil

	case "AnnAssign":
		target, err := decodeOptExpr(r.Get("target"))
		if err != nil {
			return nil, err
		}
		annotation, err := decodeOptExpr(r.Get("annotation"))
		if err != nil {
			return nil, err
		}
		value, err := decodeOptExpr(r.Get("value"))
		if err != nil {
			return nil, err
		}
		return &pyast.AnnAssign{Target: target, Annotation: annotation, Value: value, Simple: r.Get("simple").Int() == 1}, nil

	case "For", "AsyncFor":
		target, err := decodeOptExpr(r.Get("target"))
		if err != nil {
			return nil, err
		}
		iter, err := decodeOptExpr(r.Get("iter"))
		if err != nil {
			return nil, err
		}
		body, err := decodeStmts(r.Get("body"))
		if err != nil {
			return nil, err
		}
		orelse, err := decodeStmts(r.Get("orelse"))
		if err != nil {
			return nil, err
		}
		if typ == "AsyncFor" {
			return &pyast.AsyncFor{Target: target, Iter: iter, Body: body, Else: orelse}, nil
		}
		return &pyast.For{Target: target, Iter: iter, Body: body, Else: orelse}, nil

	case "While":
		test, err := decodeOptExpr(r.Get("test"))
		if err != nil {
			return nil, err
		}
		body, err := decodeStmts(r.Get("body"))
		if err != nil {
			return nil, err
		}
		orelse, err := decodeStmts(r.Get("orelse"))
		if err != nil {
			return nil, err
		}
		return &pyast.While{Test: test, Body: body, Else: orelse}, nil

	case "If":
		test, err := decodeOptExpr(r.Get("test"))
		if err != nil {
			return nil, err
		}
		body, err := decodeStmts(r.Get("body"))
		if err != nil {
			return nil, err
		}
		orelse, err := decodeStmts(r.Get("orelse"))
		if err != nil {
			return nil, err
		}
		return &pyast.If{Test: test, Body: body, Else: orelse}, nil

	case "With", "AsyncWith":
		items, err := decodeWithItems(r.Get("items"))
		if err != nil {
			return nil, err
		}
		body, err := decodeStmts(r.Get("body"))
		if err != nil {
			return nil, err
		}
		if typ == "AsyncWith" {
			return &pyast.AsyncWith{Items: items, Body: body}, nil
		}
		return &pyast.With{Items: items, Body: body}, nil

	case "withitem":
		ctxExpr, err := decodeOptExpr(r.Get("context_expr"))
		if err != nil {
			return nil, err
		}
		optional, err := decodeOptExpr(r.Get("optional_vars"))
		if err != nil {
			return nil, err
		}
		return &pyast.WithItem{ContextExpr: ctxExpr, OptionalVars: optional}, nil

	case "Match":
		subject, err := decodeOptExpr(r.Get("subject"))
		if err != nil {
			return nil, err
		}
		cases, err := decodeMatchCases(r.Get("cases"))
		if err != nil {
			return nil, err
		}
		return &pyast.Match{Subject: subject, Cases: cases}, nil

	case "match_case":
		pattern, err := decodeOptPattern(r.Get("pattern"))
		if err != nil {
			return nil, err
		}
		guard, err := decodeOptExpr(r.Get("guard"))
		if err != nil {
			return nil, err
		}
		body, err := decodeStmts(r.Get("body"))
		if err != nil {
			return nil, err
		}
		return &pyast.MatchCase{Pattern: pattern, Guard: guard, Body: body}, nil

	case "MatchValue":
		value, err := decodeOptExpr(r.Get("value"))
		if err != nil {
			return nil, err
		}
		return &pyast.MatchValue{Value: value}, nil

	case "MatchSequence":
		patterns, err := decodePatterns(r.Get("patterns"))
		if err != nil {
			return nil, err
		}
		return &pyast.MatchSequence{Patterns: patterns}, nil

	case "MatchStar":
		return &pyast.MatchStar{Name: r.Get("name").String()}, nil

	case "MatchAs":
		pattern, err := decodeOptPattern(r.Get("pattern"))
		if err != nil {
			return nil, err
		}
		return &pyast.MatchAs{Pattern: pattern, Name: r.Get("name").String()}, nil

	case "MatchOr":
		patterns, err := decodePatterns(r.Get("patterns"))
		if err != nil {
			return nil, err
		}
		return &pyast.MatchOr{Patterns: patterns}, nil

	case "Raise":
		exc, err := decodeOptExpr(r.Get("exc"))
		if err != nil {
			return nil, err
		}
		cause, err := decodeOptExpr(r.Get("cause"))
		if err != nil {
			return nil, err
		}
		return &pyast.Raise{Exc: exc, Cause: cause}, nil

	case "Try", "TryStar":
		body, err := decodeStmts(r.Get("body"))
		if err != nil {
			return nil, err
		}
		handlers, err := decodeHandlers(r.Get("handlers"))
		if err != nil {
			return nil, err
		}
		orelse, err := decodeStmts(r.Get("orelse"))
		if err != nil {
			return nil, err
		}
		final, err := decodeStmts(r.Get("finalbody"))
		if err != nil {
			return nil, err
		}
		if typ == "TryStar" {
			return &pyast.TryStar{Body: body, Handlers: handlers, Else: orelse, Final: final}, nil
		}
		return &pyast.Try{Body: body, Handlers: handlers, Else: orelse, Final: final}, nil

	case "ExceptHandler":
		excType, err := decodeOptExpr(r.Get("type"))
		if err != nil {
			return nil, err
		}
		body, err := decodeStmts(r.Get("body"))
		if err != nil {
			return nil, err
		}
		return &pyast.ExceptHandler{Type: excType, Name: r.Get("name").String(), Body: body}, nil

	case "Assert":
		test, err := decodeOptExpr(r.Get("test"))
		if err != nil {
			return nil, err
		}
		msg, err := decodeOptExpr(r.Get("msg"))
		if err != nil {
			return nil, err
		}
		return &pyast.Assert{Test: test, Msg: msg}, nil

	case "Import":
		return &pyast.Import{Names: decodeAliases(r.Get("names"))}, nil

	case "ImportFrom":
		return &pyast.ImportFrom{
			Module: r.Get("module").String(),
			Names:  decodeAliases(r.Get("names")),
			Level:  int(r.Get("level").Int()),
		}, nil

	case "alias":
		return &pyast.Alias{Name: r.Get("name").String(), AsName: r.Get("asname").String()}, nil

	case "Global":
		return &pyast.Global{Names: decodeStrings(r.Get("names"))}, nil

	case "Nonlocal":
		return &pyast.Nonlocal{Names: decodeStrings(r.Get("names"))}, nil

	case "Expr":
		value, err := decodeOptExpr(r.Get("value"))
		if err != nil {
			return nil, err
		}
		return &pyast.ExprStmt{Value: value}, nil

	case "Pass":
		return &pyast.Pass{}, nil
	case "Break":
		return &pyast.Break{}, nil
	case "Continue":
		return &pyast.Continue{}, nil

	default:
		return decodeExprNode(r, typ)
	}
}
