// Package algo contains algorithms operating on ranges of forward iterators.
// Range is defined by two iterators, first and last, where last is excluded.
package algo

import (
	"golang.org/x/exp/constraints"
)

// Forward is the iterator which might be dereferenced and moved forward.
type Forward[I any, T any] interface {
	Value() T
	Next() I
	Equal(I) bool
}

// MaxElement returns iterator pointing to the first greatest value in the range, or last if range is empty.
func MaxElement[T constraints.Ordered, I Forward[I, T]](first, last I) I {
	return extremum[T](first, last, func(v, best T) bool { return v > best })
}

// MinElement returns iterator pointing to the first smallest value in the range, or last if range is empty.
func MinElement[T constraints.Ordered, I Forward[I, T]](first, last I) I {
	return extremum[T](first, last, func(v, best T) bool { return v < best })
}

// Find returns iterator pointing to the first element equal to v, or last if there is no such element.
func Find[T comparable, I Forward[I, T]](first, last I, v T) I {
	return FindIf[T](first, last, func(item T) bool { return item == v })
}

// FindIf returns iterator pointing to the first element satisfying pred, or last if there is no such element.
func FindIf[T any, I Forward[I, T]](first, last I, pred func(T) bool) I {
	for ; !first.Equal(last); first = first.Next() {
		if pred(first.Value()) {
			return first
		}
	}
	return last
}

// Count returns the number of elements equal to v.
func Count[T comparable, I Forward[I, T]](first, last I, v T) uint64 {
	var count uint64
	for ; !first.Equal(last); first = first.Next() {
		if first.Value() == v {
			count++
		}
	}
	return count
}

// ForEach calls fn for each element of the range.
func ForEach[T any, I Forward[I, T]](first, last I, fn func(T)) {
	for ; !first.Equal(last); first = first.Next() {
		fn(first.Value())
	}
}

// Collect copies elements of the range to a slice.
func Collect[T any, I Forward[I, T]](first, last I) []T {
	values := []T{}
	ForEach[T](first, last, func(v T) {
		values = append(values, v)
	})
	return values
}

func extremum[T any, I Forward[I, T]](first, last I, better func(v, best T) bool) I {
	if first.Equal(last) {
		return last
	}

	best := first
	bestValue := first.Value()
	for it := first.Next(); !it.Equal(last); it = it.Next() {
		if v := it.Value(); better(v, bestValue) {
			best = it
			bestValue = v
		}
	}
	return best
}
