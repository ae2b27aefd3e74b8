// Package collections holds small generic helpers over slices.
//
// None of the helpers mutate their inputs.
package collections

import "cmp"

// Map transforms every element of s using f.
// T → input type, U → output type (can differ).
func Map[T, U any](s []T, f func(T) U) []U {
	out := make([]U, len(s))
	for i, v := range s {
		out[i] = f(v)
	}
	return out
}

// Filter returns elements of s for which keep returns true, in their
// original order.
func Filter[T any](s []T, keep func(T) bool) []T {
	out := make([]T, 0, len(s))
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// Reduce folds s into a single value, applying f left-to-right.
// acc starts at init; T is element type, U is accumulator type.
func Reduce[T, U any](s []T, init U, f func(U, T) U) U {
	acc := init
	for _, v := range s {
		acc = f(acc, v)
	}
	return acc
}

// Concat returns a new slice holding the elements of every seq, in
// argument order. With no arguments it returns an empty, non-nil slice.
func Concat[T any](seqs ...[]T) []T {
	n := 0
	for _, s := range seqs {
		n += len(s)
	}

	out := make([]T, 0, n)
	for _, s := range seqs {
		out = append(out, s...)
	}
	return out
}

// MaxBy returns the element of s with the greatest key. The earlier element
// is kept unless a later one has a strictly greater key, so ties resolve to
// the first maximum. ok is false when s is empty.
func MaxBy[T any, K cmp.Ordered](s []T, key func(T) K) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}

	best, bestKey := s[0], key(s[0])
	for _, v := range s[1:] {
		if k := key(v); k > bestKey {
			best, bestKey = v, k
		}
	}
	return best, true
}
