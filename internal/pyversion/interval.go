package pyversion

import "fmt"

// Interval is an inclusive range of language versions: syntax accepted
// by every grammar from Min through Max. Min <= Max always holds for
// intervals produced by this package.
type Interval struct {
	Min Version
	Max Version
}

// NewInterval returns an interval spanning min through max.
// It panics if min > max, since an inverted interval indicates a
// programming error rather than bad input.
func NewInterval(min, max Version) Interval {
	if max.Less(min) {
		panic(fmt.Sprintf("pyversion: inverted interval %s..%s", min, max))
	}
	return Interval{Min: min, Max: max}
}

// Exact returns an interval pinned to a single version.
func Exact(v Version) Interval {
	return Interval{Min: v, Max: v}
}

// IsExact reports whether the interval pins a single version.
func (i Interval) IsExact() bool {
	return i.Min == i.Max
}

// Contains reports whether v lies within the interval.
func (i Interval) Contains(v Version) bool {
	return !v.Less(i.Min) && !i.Max.Less(v)
}

// Intersect returns the overlap of a and b. ok is false when the
// intervals are disjoint, in which case the returned interval is the
// zero value.
func Intersect(a, b Interval) (Interval, bool) {
	lo := Max(a.Min, b.Min)
	hi := a.Max
	if b.Max.Less(hi) {
		hi = b.Max
	}
	if hi.Less(lo) {
		return Interval{}, false
	}
	return Interval{Min: lo, Max: hi}, true
}

// String renders the interval, e.g. "3.6 - 3.13" or "3.12" when exact.
func (i Interval) String() string {
	if i.IsExact() {
		return i.Min.String()
	}
	return fmt.Sprintf("%s - %s", i.Min, i.Max)
}
