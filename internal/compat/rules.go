package compat

import "github.com/pyspan/pyspan/internal/pyversion"

// Effect describes what a rule does to the version span when its
// construct is present in the tree.
type Effect string

const (
	// EffectFloor raises the minimum version of the span.
	EffectFloor Effect = "floor"

	// EffectPin collapses the span to a single version.
	EffectPin Effect = "pin"
)

// Rule is a human-readable description of one detection rule. The
// detector itself dispatches on node kinds directly; this table exists
// so the CLI can report what syntax the tool recognizes.
type Rule struct {
	Construct string
	Effect    Effect
	Version   pyversion.Version
}

// Rules returns the detection rules in floor order, pins last.
func Rules() []Rule {
	v := func(major, minor int) pyversion.Version {
		return pyversion.Version{Major: major, Minor: minor}
	}

	return []Rule{
		{Construct: "keyword-only parameters", Effect: EffectFloor, Version: v(3, 0)},
		{Construct: "parameter annotations", Effect: EffectFloor, Version: v(3, 0)},
		{Construct: "*args / **kwargs annotations", Effect: EffectFloor, Version: v(3, 0)},
		{Construct: "nonlocal declarations", Effect: EffectFloor, Version: v(3, 0)},
		{Construct: "yield from expressions", Effect: EffectFloor, Version: v(3, 3)},
		{Construct: "matrix multiplication operator (@)", Effect: EffectFloor, Version: v(3, 5)},
		{Construct: "async def / await / async for / async with", Effect: EffectFloor, Version: v(3, 5)},
		{Construct: "formatted string literals (f-strings)", Effect: EffectFloor, Version: v(3, 6)},
		{Construct: "variable annotations", Effect: EffectFloor, Version: v(3, 6)},
		{Construct: "async comprehensions", Effect: EffectFloor, Version: v(3, 6)},
		{Construct: "assignment expressions (walrus operator)", Effect: EffectFloor, Version: v(3, 8)},
		{Construct: "positional-only parameters", Effect: EffectFloor, Version: v(3, 8)},
		{Construct: "match statements", Effect: EffectFloor, Version: v(3, 10)},
		{Construct: "except* exception groups", Effect: EffectFloor, Version: v(3, 11)},
		{Construct: "backtick repr expressions", Effect: EffectPin, Version: v(2, 7)},
		{Construct: "f-strings nested deeper than 4 levels", Effect: EffectPin, Version: v(3, 12)},
		{Construct: "type parameter syntax (PEP 695)", Effect: EffectPin, Version: v(3, 12)},
	}
}
