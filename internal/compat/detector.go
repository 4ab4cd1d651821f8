// Package compat determines the span of Python language versions whose
// grammar accepts a given syntax tree. It inspects syntax only: no name
// resolution, no type checking, no tree rewriting.
package compat

import (
	"errors"
	"fmt"

	"github.com/pyspan/pyspan/internal/pyast"
	"github.com/pyspan/pyspan/internal/pyversion"
)

// ErrInvariantViolation is returned when the analysis root is not a
// Module node. It indicates a caller bug, not bad input data.
var ErrInvariantViolation = errors.New("analysis root must be a Module node")

// fstringNestingLimit is the deepest formatted-string nesting the
// pre-3.12 tokenizer accepts. Crossing it proves the source was written
// for the PEP 701 grammar.
const fstringNestingLimit = 4

var (
	// floorVersion is the oldest grammar the detector reasons about.
	floorVersion = pyversion.Version{Major: 2, Minor: 7}

	pinLegacyRepr  = pyversion.Version{Major: 2, Minor: 7}
	pinDeepNesting = pyversion.Version{Major: 3, Minor: 12}
	pinTypeParams  = pyversion.Version{Major: 3, Minor: 12}
)

// Detect walks the tree rooted at root and returns the inclusive span of
// language versions that can parse it. The floor starts at 2.7; host is
// the version of the interpreter that produced the tree and serves as
// the default ceiling. Certain constructs pin the result to a single
// version, in which case the rest of the tree is not visited.
//
// Detect is a pure function of its inputs: concurrent calls on
// independent trees are safe.
func Detect(root pyast.Node, host pyversion.Version) (pyversion.Interval, error) {
	if _, ok := root.(*pyast.Module); !ok {
		return pyversion.Interval{}, fmt.Errorf("%w: got %s", ErrInvariantViolation, root.Kind())
	}

	d := &detector{min: floorVersion, max: pyversion.Max(host, floorVersion)}
	if res := d.visit(root); res.pinned {
		return pyversion.Exact(res.version), nil
	}
	return pyversion.NewInterval(d.min, d.max), nil
}

// result is the outcome of visiting a subtree: either traversal
// continues with the interval accumulated so far, or it terminated with
// an exact pin. Pins propagate outward unchanged, so the short-circuit
// stays an explicit control path rather than a non-local exit.
type result struct {
	pinned  bool
	version pyversion.Version
}

var proceed = result{}

func pin(v pyversion.Version) result {
	return result{pinned: true, version: v}
}

// detector holds the per-call traversal state.
type detector struct {
	min pyversion.Version
	max pyversion.Version

	// fstringDepth counts the formatted-string literals the walk is
	// currently inside.
	fstringDepth int
}

// raiseFloor lifts the minimum version to at least v. A floor that
// passes the ceiling drags the ceiling up with it, so the interval never
// inverts; nothing ever lowers the ceiling.
func (d *detector) raiseFloor(major, minor int) {
	v := pyversion.Version{Major: major, Minor: minor}
	d.min = pyversion.Max(d.min, v)
	if d.max.Less(d.min) {
		d.max = d.min
	}
}

// visit applies the rule for n's kind, then recurses depth-first.
// Kinds without a rule are pass-through.
func (d *detector) visit(n pyast.Node) result {
	switch t := n.(type) {
	case *pyast.Repr:
		// Backtick conversion only ever parsed under the 2.x grammar.
		return pin(pinLegacyRepr)

	case *pyast.JoinedStr:
		return d.visitJoinedStr(t)

	case *pyast.FormattedValue:
		return d.visitFormattedValue(t)

	case *pyast.Str, *pyast.Bytes:
		// A plain string or bytes literal at the nesting boundary means
		// the literal sits inside a 4-deep format expression, which only
		// the 3.12 tokenizer accepts.
		if d.fstringDepth+1 > fstringNestingLimit {
			return pin(pinDeepNesting)
		}
		return proceed

	case *pyast.NamedExpr:
		d.raiseFloor(3, 8)

	case *pyast.BinOp:
		if t.Op == pyast.OpMatMult {
			d.raiseFloor(3, 5)
		}

	case *pyast.AugAssign:
		if t.Op == pyast.OpMatMult {
			d.raiseFloor(3, 5)
		}

	case *pyast.AnnAssign:
		d.raiseFloor(3, 6)

	case *pyast.Arguments:
		if len(t.PosOnlyArgs) > 0 {
			d.raiseFloor(3, 8)
		}
		if len(t.KwOnlyArgs) > 0 {
			d.raiseFloor(3, 0)
		}
		if t.VarArgAnnotation != nil {
			d.raiseFloor(3, 0)
		}
		if t.KwArgAnnotation != nil {
			d.raiseFloor(3, 0)
		}

	case *pyast.Arg:
		if t.Annotation != nil {
			d.raiseFloor(3, 0)
		}

	case *pyast.YieldFrom:
		d.raiseFloor(3, 3)

	case *pyast.Nonlocal:
		d.raiseFloor(3, 0)

	case *pyast.AsyncFunctionDef, *pyast.Await, *pyast.AsyncFor, *pyast.AsyncWith:
		d.raiseFloor(3, 5)

	case *pyast.Match:
		d.raiseFloor(3, 10)

	case *pyast.Comprehension:
		if t.IsAsync {
			d.raiseFloor(3, 6)
		}

	case *pyast.TryStar:
		d.raiseFloor(3, 11)

	case *pyast.TypeVar, *pyast.TypeVarTuple, *pyast.ParamSpec:
		// PEP 695 type parameter syntax exists in exactly one grammar
		// the detector knows about.
		return pin(pinTypeParams)
	}

	return d.visitChildren(n)
}

// visitChildren recurses into every child of n in order, propagating a
// pin the moment one is produced.
func (d *detector) visitChildren(n pyast.Node) result {
	for _, child := range pyast.Children(n) {
		if res := d.visit(child); res.pinned {
			return res
		}
	}
	return proceed
}

// visitJoinedStr handles a formatted-string literal: raise the floor to
// 3.6, then walk its values one nesting level deeper. Entering a literal
// past the nesting limit pins 3.12 without descending.
func (d *detector) visitJoinedStr(n *pyast.JoinedStr) result {
	d.raiseFloor(3, 6)

	if d.fstringDepth+1 > fstringNestingLimit {
		return pin(pinDeepNesting)
	}

	d.fstringDepth++
	res := d.visitChildren(n)
	d.fstringDepth--
	return res
}

// visitFormattedValue walks a replacement field. The format specifier
// subtree is excluded from traversal; the value expression is visited
// normally. The conversion flag is a scalar and has no children.
func (d *detector) visitFormattedValue(n *pyast.FormattedValue) result {
	if n.Value != nil {
		return d.visit(n.Value)
	}
	return proceed
}
