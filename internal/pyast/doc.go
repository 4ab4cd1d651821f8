// Package pyast defines an immutable representation of Python syntax
// trees as produced by an external parser (typically a CPython helper
// that serializes ast output to JSON).
//
// The node set is closed: every construct pyspan understands is a
// concrete struct implementing Node, discriminated by Kind. Optional
// single-child fields are nil when absent, so "absent" and "present but
// empty" stay distinguishable for list-valued fields.
package pyast
