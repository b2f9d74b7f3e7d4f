package purequery

import (
	"cmp"
	"errors"
	"slices"
	"sort"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// ============================================================================
// Predicates
// ============================================================================

// PredicateFunc is a functional filter over values of type T.
// It provides monoid composition so filters can be assembled from small parts.
//
// Example:
//
//	digitCode := PredicateFunc[string](hasLength(4)).
//	    Compose(startsWithDigit)
//
//	codes := digitCode.Filter(lines)
type PredicateFunc[T any] func(v T) bool

// Test reports whether v satisfies the predicate.
func (f PredicateFunc[T]) Test(v T) bool {
	return f(v)
}

// Empty returns a predicate that accepts every value (Monoid identity).
func (f PredicateFunc[T]) Empty() PredicateFunc[T] {
	return func(T) bool { return true }
}

// Compose accepts values matching both predicates (Monoid operation).
func (f PredicateFunc[T]) Compose(next PredicateFunc[T]) PredicateFunc[T] {
	return func(v T) bool {
		return f(v) && next(v)
	}
}

// Or accepts values matching either predicate.
func (f PredicateFunc[T]) Or(other PredicateFunc[T]) PredicateFunc[T] {
	return func(v T) bool {
		return f(v) || other(v)
	}
}

// Not inverts the predicate.
func (f PredicateFunc[T]) Not() PredicateFunc[T] {
	return func(v T) bool {
		return !f(v)
	}
}

// Filter returns the elements of s matching the predicate, in order.
// The result is never nil.
func (f PredicateFunc[T]) Filter(s []T) []T {
	return lo.Filter(s, func(v T, _ int) bool {
		return f(v)
	})
}

// Count returns the number of elements of s matching the predicate.
func (f PredicateFunc[T]) Count(s []T) int {
	return lo.CountBy(s, (func(T) bool)(f))
}

// First returns the first element of s matching the predicate.
func (f PredicateFunc[T]) First(s []T) mo.Option[T] {
	v, ok := lo.Find(s, (func(T) bool)(f))
	return mo.TupleToOption(v, ok)
}

// ============================================================================
// Ordering
// ============================================================================

// CompareFunc orders two values: negative when a sorts before b, zero when
// they are equal and positive otherwise.
//
// Example:
//
//	byName := By(func(p Person) string { return p.Name })
//	byAgeDesc := By(func(p Person) int { return p.Age }).Reverse()
//
//	sorted := byName.Compose(byAgeDesc).Sort(people)
type CompareFunc[T any] func(a, b T) int

// Compare calls f(a, b).
func (f CompareFunc[T]) Compare(a, b T) int {
	return f(a, b)
}

// Empty returns an ordering that treats all values as equal (Monoid identity).
func (f CompareFunc[T]) Empty() CompareFunc[T] {
	return func(T, T) int { return 0 }
}

// Compose breaks ties of f with next (Monoid operation).
func (f CompareFunc[T]) Compose(next CompareFunc[T]) CompareFunc[T] {
	return func(a, b T) int {
		if c := f(a, b); c != 0 {
			return c
		}
		return next(a, b)
	}
}

// Reverse flips the ordering.
func (f CompareFunc[T]) Reverse() CompareFunc[T] {
	return func(a, b T) int {
		return f(b, a)
	}
}

// Sorter binds the ordering to s as a sort.Interface.
func (f CompareFunc[T]) Sorter(s []T) SortInterface {
	return SortInterface{
		LenFunc:  func() int { return len(s) },
		LessFunc: func(i, j int) bool { return f(s[i], s[j]) < 0 },
		SwapFunc: func(i, j int) { s[i], s[j] = s[j], s[i] },
	}
}

// Sort returns a stably sorted copy of s. The input is left untouched and
// the result is never nil.
func (f CompareFunc[T]) Sort(s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	sort.Stable(f.Sorter(out))
	return out
}

// IsSorted reports whether s is already ordered by f.
func (f CompareFunc[T]) IsSorted(s []T) bool {
	return slices.IsSortedFunc(s, (func(a, b T) int)(f))
}

// Ascending orders values by their natural order.
func Ascending[T cmp.Ordered]() CompareFunc[T] {
	return cmp.Compare[T]
}

// Descending orders values by their reversed natural order.
func Descending[T cmp.Ordered]() CompareFunc[T] {
	return Ascending[T]().Reverse()
}

// By orders values ascending by the key extracted from each one.
func By[T any, K cmp.Ordered](key func(T) K) CompareFunc[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// SortInterface is a functional binding for sort.Interface.
type SortInterface struct {
	LenFunc  func() int
	LessFunc func(i, j int) bool
	SwapFunc func(i, j int)
}

// Len implements sort.Interface.
func (s SortInterface) Len() int {
	return s.LenFunc()
}

// Less implements sort.Interface.
func (s SortInterface) Less(i, j int) bool {
	return s.LessFunc(i, j)
}

// Swap implements sort.Interface.
func (s SortInterface) Swap(i, j int) {
	s.SwapFunc(i, j)
}

// ============================================================================
// Errors
// ============================================================================

// ErrEmptyInput is reported by operations that need at least one element.
var ErrEmptyInput = errors.New("sequence contains no elements")

// EmptyInputError names the operation that received an empty sequence.
// It unwraps to ErrEmptyInput.
type EmptyInputError struct {
	Op string
}

func (e *EmptyInputError) Error() string {
	return e.Op + ": " + ErrEmptyInput.Error()
}

// Unwrap returns ErrEmptyInput.
func (e *EmptyInputError) Unwrap() error {
	return ErrEmptyInput
}
