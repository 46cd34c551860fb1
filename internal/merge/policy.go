package merge

import "fmt"

// Number is the set of types Values can add up.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Bounds optionally clamps the result of Values.
type Bounds[T Number] struct {
	Min *T
	Max *T
}

// Floor returns bounds with only a lower limit.
func Floor[T Number](v T) Bounds[T] {
	return Bounds[T]{Min: &v}
}

func (b Bounds[T]) clamp(v T) T {
	if b.Min != nil && v < *b.Min {
		return *b.Min
	}
	if b.Max != nil && v > *b.Max {
		return *b.Max
	}
	return v
}

// Simple resolves when both sides agree, or when only one side moved away
// from the ancestor. Anything else is a conflict.
func Simple[T comparable](ours, theirs T, ancestor *T) Result[T] {
	switch {
	case ours == theirs:
		return Resolved(ours)
	case ancestor != nil && *ancestor == ours:
		return Resolved(theirs)
	case ancestor != nil && *ancestor == theirs:
		return Resolved(ours)
	}
	return Conflicted(ours, theirs, ancestor)
}

// Same resolves only when both sides agree. The ancestor is carried into
// the conflict but never used to pick a side.
func Same[T comparable](ours, theirs T, ancestor *T) Result[T] {
	if ours == theirs {
		return Resolved(ours)
	}
	return Conflicted(ours, theirs, ancestor)
}

// Values credits both sides' changes: the result is the ancestor plus the
// delta of each side, clamped to bounds. Without an ancestor the larger
// value wins. Values never conflicts.
func Values[T Number](field string, ours, theirs T, ancestor *T, bounds Bounds[T], r Reporter) Result[T] {
	if ours == theirs {
		return Resolved(ours)
	}
	if ancestor == nil {
		report(r, Diagnostic{
			Kind:    DiagnosticMax,
			Field:   field,
			Message: fmt.Sprintf("set to max of %v, %v", ours, theirs),
		})
		return Resolved(max(ours, theirs))
	}

	a := *ancestor
	raw := a + (ours - a) + (theirs - a)
	value := bounds.clamp(raw)

	msg := fmt.Sprintf("<<< o %v ||| a %v === t %v >>> -> %v", ours, a, theirs, value)
	if value != raw {
		msg += fmt.Sprintf(" (clamped from %v)", raw)
	}
	report(r, Diagnostic{Kind: DiagnosticDelta, Field: field, Message: msg})
	return Resolved(value)
}

// Max resolves to the larger value, ignoring history.
func Max[T Number](ours, theirs T) Result[T] {
	if theirs > ours {
		return Resolved(theirs)
	}
	return Resolved(ours)
}
