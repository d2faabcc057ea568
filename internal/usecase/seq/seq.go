// Package seq provides generic slice helpers.
//
// Unique and Intersect are backed by a map, so the order of their results is
// unspecified and may differ between calls.
package seq

import (
	"cmp"
	"maps"

	"golang.org/x/exp/constraints"

	"github.com/aalvaropc/kata/internal/domain"
	"github.com/aalvaropc/kata/internal/ports"
	"github.com/aalvaropc/kata/internal/usecase/numeric"
)

// Max returns the largest element.
func Max[T cmp.Ordered](s []T) (T, error) {
	var zero T
	if len(s) == 0 {
		return zero, domain.EmptyInput("seq.max")
	}
	best := s[0]
	for _, v := range s[1:] {
		if v > best {
			best = v
		}
	}
	return best, nil
}

func Sum[T numeric.Number](s []T) T {
	var total T
	for _, v := range s {
		total += v
	}
	return total
}

// Reverse returns a reversed copy; s is left untouched.
func Reverse[T any](s []T) []T {
	out := make([]T, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

// Unique drops duplicates. Order is unspecified.
func Unique[T comparable](s []T) []T {
	set := make(map[T]struct{}, len(s))
	for _, v := range s {
		set[v] = struct{}{}
	}
	return keys(set)
}

// Intersect returns the elements present in both a and b, without duplicates.
// Order is unspecified.
func Intersect[T comparable](a, b []T) []T {
	inA := make(map[T]struct{}, len(a))
	for _, v := range a {
		inA[v] = struct{}{}
	}
	both := make(map[T]struct{})
	for _, v := range b {
		if _, ok := inA[v]; ok {
			both[v] = struct{}{}
		}
	}
	return keys(both)
}

func keys[T comparable](set map[T]struct{}) []T {
	out := make([]T, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}

func FilterEven[T constraints.Integer](s []T) []T {
	out := make([]T, 0, len(s))
	for _, v := range s {
		if v%2 == 0 {
			out = append(out, v)
		}
	}
	return out
}

func Square[T numeric.Number](s []T) []T {
	return mapEach(s, func(v T) T { return v * v })
}

func Double[T numeric.Number](s []T) []T {
	return mapEach(s, func(v T) T { return v * 2 })
}

func mapEach[T any](s []T, f func(T) T) []T {
	out := make([]T, len(s))
	for i, v := range s {
		out[i] = f(v)
	}
	return out
}

// Flatten removes one level of nesting.
func Flatten[T any](nested [][]T) []T {
	n := 0
	for _, inner := range nested {
		n += len(inner)
	}
	out := make([]T, 0, n)
	for _, inner := range nested {
		out = append(out, inner...)
	}
	return out
}

// CumulativeSum returns the running totals of s.
func CumulativeSum[T numeric.Number](s []T) []T {
	out := make([]T, len(s))
	var total T
	for i, v := range s {
		total += v
		out[i] = total
	}
	return out
}

// Count returns how many elements equal val.
func Count[T comparable](s []T, val T) int {
	n := 0
	for _, v := range s {
		if v == val {
			n++
		}
	}
	return n
}

func Swap[T any](a, b T) (T, T) {
	return b, a
}

// Merge concatenates a and b into a fresh slice.
func Merge[T any](a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// MergeMaps copies src into dst, src winning on conflicts, and returns dst.
// dst is mutated; a nil dst is replaced by a new map.
func MergeMaps[K comparable, V any](dst, src map[K]V) map[K]V {
	if dst == nil {
		dst = make(map[K]V, len(src))
	}
	maps.Copy(dst, src)
	return dst
}

// Shuffle permutes s in place using rnd and returns it.
func Shuffle[T any](rnd ports.RandomSource, s []T) []T {
	rnd.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
	return s
}

// Choice picks one element uniformly at random.
func Choice[T any](rnd ports.RandomSource, s []T) (T, error) {
	var zero T
	if len(s) == 0 {
		return zero, domain.EmptyInput("seq.choice")
	}
	return s[rnd.IntN(len(s))], nil
}
