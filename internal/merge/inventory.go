package merge

import "fmt"

// Inventories adds to ours every item that theirs holds more copies of.
// The zero value of T marks an empty slot. A missing copy is placed in the
// first empty slot at or after the index it occupies in theirs, wrapping
// back towards the start of ours. Items that find no empty slot are dropped
// and reported.
//
// ours is modified in place; theirs is left untouched.
func Inventories[T comparable](ours, theirs []T, kind string, display func(T) string, r Reporter) {
	var empty T
	remaining := append([]T(nil), theirs...)

	for i, item := range remaining {
		if item == empty {
			continue
		}
		if count(remaining, item) <= count(ours, item) {
			continue
		}

		remaining[i] = empty
		if _, ok := place(ours, item, i); !ok {
			name := fmt.Sprint(item)
			if display != nil {
				name = display(item)
			}
			report(r, Diagnostic{
				Kind:    DiagnosticDropped,
				Field:   kind,
				Message: fmt.Sprintf("could not add %s %s to inventory", kind, name),
			})
		}
	}
}

func count[T comparable](slots []T, item T) int {
	n := 0
	for _, v := range slots {
		if v == item {
			n++
		}
	}
	return n
}

// place puts item in the first empty slot searching forward from start,
// then backward from start-1.
func place[T comparable](slots []T, item T, start int) (int, bool) {
	var empty T
	start = min(start, len(slots))

	for i := start; i < len(slots); i++ {
		if slots[i] == empty {
			slots[i] = item
			return i, true
		}
	}
	for i := start - 1; i >= 0; i-- {
		if slots[i] == empty {
			slots[i] = item
			return i, true
		}
	}
	return -1, false
}
