// Package merge reconciles two decoded saves, optionally against their
// common ancestor, into the lines of a new save.
package merge

import (
	"fmt"
	"strings"
)

// DefaultMarkerLength is git's default conflict marker size.
const DefaultMarkerLength = 7

// Result is the outcome of merging one value: either resolved, or a
// conflict carrying both sides and, in three-way mode, the ancestor.
type Result[T any] struct {
	value    T
	conflict *Conflict[T]
}

// Conflict holds the competing values of an unresolved merge.
// Ancestor is nil in two-way mode.
type Conflict[T any] struct {
	Ours     T
	Theirs   T
	Ancestor *T
}

// Resolved returns a result that accepted v.
func Resolved[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Conflicted returns an unresolved result.
func Conflicted[T any](ours, theirs T, ancestor *T) Result[T] {
	return Result[T]{conflict: &Conflict[T]{Ours: ours, Theirs: theirs, Ancestor: ancestor}}
}

// IsConflict reports whether the result is unresolved.
func (r Result[T]) IsConflict() bool {
	return r.conflict != nil
}

// Value returns the resolved value. ok is false for conflicts.
func (r Result[T]) Value() (v T, ok bool) {
	if r.conflict != nil {
		return v, false
	}
	return r.value, true
}

// Conflict returns the conflict. ok is false for resolved results.
func (r Result[T]) Conflict() (c Conflict[T], ok bool) {
	if r.conflict == nil {
		return c, false
	}
	return *r.conflict, true
}

// MapConflict leaves resolved results untouched and replaces a conflict with
// whatever f decides.
func (r Result[T]) MapConflict(f func(c Conflict[T]) Result[T]) Result[T] {
	if r.conflict == nil {
		return r
	}
	return f(*r.conflict)
}

// Map applies f to every value held by r, keeping its shape.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.conflict == nil {
		return Resolved(f(r.value))
	}
	c := r.conflict
	var ancestor *U
	if c.Ancestor != nil {
		a := f(*c.Ancestor)
		ancestor = &a
	}
	return Conflicted(f(c.Ours), f(c.Theirs), ancestor)
}

// MergeString renders the result. Conflicts use git's conflict marker
// layout, in diff3 style when the ancestor is known.
func (r Result[T]) MergeString(markerLength int) string {
	if r.conflict == nil {
		return fmt.Sprint(r.value)
	}
	c := r.conflict

	lines := []string{
		strings.Repeat("<", markerLength) + " ours",
		fmt.Sprint(c.Ours),
	}
	if c.Ancestor != nil {
		lines = append(lines,
			strings.Repeat("|", markerLength)+" ancestor",
			fmt.Sprint(*c.Ancestor),
		)
	}
	lines = append(lines,
		strings.Repeat("=", markerLength),
		fmt.Sprint(c.Theirs),
		strings.Repeat(">", markerLength)+" theirs",
	)
	return strings.Join(lines, "\n")
}
