package purequery

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// NotFound is returned by FindFirstDigitPrefixedOfLength when nothing matches.
const NotFound = "Not found"

// ============================================================================
// String Queries
// ============================================================================

// Concatenate joins every string of s in order.
// It returns an *EmptyInputError when s has no elements.
func Concatenate(s []string) (string, error) {
	if len(s) == 0 {
		return "", &EmptyInputError{Op: "Concatenate"}
	}
	return strings.Join(s, ""), nil
}

// FirstDigitPrefixedOfLength returns the first string of s that has exactly
// l characters and starts with a decimal digit.
func FirstDigitPrefixedOfLength(l int, s []string) mo.Option[string] {
	if l <= 0 {
		return mo.None[string]()
	}
	return hasLength(l).Compose(startsWithDigit).First(s)
}

// FindFirstDigitPrefixedOfLength is FirstDigitPrefixedOfLength with absence
// reported as NotFound.
func FindFirstDigitPrefixedOfLength(l int, s []string) string {
	return FirstDigitPrefixedOfLength(l, s).OrElse(NotFound)
}

// CountWrappedByChar counts the strings longer than one character that both
// start and end with c.
func CountWrappedByChar(c rune, s []string) int {
	return PredicateFunc[string](func(v string) bool {
		if length(v) < 2 {
			return false
		}
		first, _ := utf8.DecodeRuneInString(v)
		last, _ := utf8.DecodeLastRuneInString(v)
		return first == c && last == c
	}).Count(s)
}

// SumLengths returns the total number of characters in s.
func SumLengths(s []string) int {
	return lo.SumBy(s, length)
}

// InitialsString builds a string from the first character of every
// non-empty element of s.
func InitialsString(s []string) string {
	initials := lo.FilterMap(s, func(v string, _ int) (rune, bool) {
		r, size := utf8.DecodeRuneInString(v)
		return r, size > 0
	})
	return string(initials)
}

// DigitEndingFixedLengthSorted returns the strings of s that have exactly k
// characters and end with a decimal digit, in ascending order.
func DigitEndingFixedLengthSorted(k int, s []string) []string {
	return Ascending[string]().Sort(hasLength(k).Compose(endsWithDigit).Filter(s))
}

// ParityPickChars takes the first character of every odd-length string and
// the last character of every even-length one, sorted by descending code.
// Empty strings contribute nothing.
func ParityPickChars(s []string) []rune {
	picked := lo.FilterMap(s, func(v string, _ int) (rune, bool) {
		if v == "" {
			return 0, false
		}
		if length(v)%2 == 1 {
			r, _ := utf8.DecodeRuneInString(v)
			return r, true
		}
		r, _ := utf8.DecodeLastRuneInString(v)
		return r, true
	})
	return Descending[rune]().Sort(picked)
}

// ============================================================================
// Integer Queries
// ============================================================================

// EvenExceptTail returns the distinct even elements of a that do not occur
// after the first k positions, in reverse order of first appearance.
//
// The tail is a with its first k elements skipped, so with k = 2 the element
// at index 2 already belongs to it.
func EvenExceptTail(k int, a []int) []int {
	tail := lo.Drop(a, max(k, 0))
	out := lo.Without(lo.Uniq(PredicateFunc[int](isEven).Filter(a)), tail...)
	slices.Reverse(out)
	return out
}

// BoundedUnionDescending unites the prefix of a that ends just before the
// first element greater than d with the suffix of a starting at the k-th
// element (1-based). Duplicates are removed and the result is sorted in
// descending order. A non-positive k selects no suffix.
func BoundedUnionDescending(d, k int, a []int) []int {
	head := a
	if _, i, found := lo.FindIndexOf(a, func(v int) bool { return v > d }); found {
		head = a[:i]
	}
	var tail []int
	if k > 0 {
		tail = lo.Drop(a, k-1)
	}
	return Descending[int]().Sort(lo.Union(head, tail))
}

// OddToStringsAscending formats the odd elements of a in decimal and sorts
// the strings lexicographically.
func OddToStringsAscending(a []int) []string {
	odd := PredicateFunc[int](isEven).Not().Filter(a)
	return Ascending[string]().Sort(lo.Map(odd, func(v int, _ int) string {
		return strconv.Itoa(v)
	}))
}

// ThresholdMerge returns the elements of a greater than k1 together with the
// elements of b less than k2, sorted ascending. Duplicates are kept.
func ThresholdMerge(k1, k2 int, a, b []int) []int {
	merged := append(
		lo.Filter(a, func(v int, _ int) bool { return v > k1 }),
		lo.Filter(b, func(v int, _ int) bool { return v < k2 })...,
	)
	return Ascending[int]().Sort(merged)
}

// RemoveFirst returns a without the first occurrence of v.
func RemoveFirst(v int, a []int) []int {
	i := lo.IndexOf(a, v)
	if i < 0 {
		return append([]int{}, a...)
	}
	return slices.Delete(slices.Clone(a), i, i+1)
}

// TopDescending returns the n largest elements of a, largest first.
func TopDescending(n int, a []int) []int {
	if n <= 0 {
		return []int{}
	}
	sorted := Descending[int]().Sort(a)
	return sorted[:min(n, len(sorted))]
}

// SkipTopDescending returns a sorted descending without its n largest
// elements.
func SkipTopDescending(n int, a []int) []int {
	return lo.Drop(Descending[int]().Sort(a), max(n, 0))
}

// Doubled multiplies every element of a by two.
func Doubled(a []int) []int {
	return lo.Map(a, func(v int, _ int) int {
		return v * 2
	})
}

// ============================================================================
// Joins and Groups
// ============================================================================

// LastDigitPairs pairs every element of a with every element of b ending in
// the same digit, formatted as "a - b". Pairs follow a, then b, in input
// order.
func LastDigitPairs(a, b []int) []string {
	pairs := innerJoin(a, b, lastDigit, lastDigit)
	return lo.Map(pairs, func(p lo.Tuple2[int, int], _ int) string {
		return fmt.Sprintf("%d - %d", p.A, p.B)
	})
}

// EqualLengthPairsSorted pairs every string of a with every string of b of
// the same length, formatted as "a:b". Pairs are ordered ascending by the
// first element, then descending by the second.
func EqualLengthPairsSorted(a, b []string) []string {
	type pair = lo.Tuple2[string, string]

	order := By(func(p pair) string { return p.A }).
		Compose(By(func(p pair) string { return p.B }).Reverse())

	sorted := order.Sort(innerJoin(a, b, length, length))
	return lo.Map(sorted, func(p pair, _ int) string {
		return p.A + ":" + p.B
	})
}

// GroupByLastDigitSum groups a by last digit and reports each group as
// "D: S", where S is the sum of the group, in ascending order of D.
// Negative numbers keep a negative last digit.
func GroupByLastDigitSum(a []int) []string {
	groups := lo.GroupBy(a, lastDigit)
	digits := Ascending[int]().Sort(lo.Keys(groups))
	return lo.Map(digits, func(d int, _ int) string {
		return fmt.Sprintf("%d: %d", d, lo.Sum(groups[d]))
	})
}

// innerJoin pairs each outer element with every inner element sharing its
// key. Pairs come in outer order, and inner order within one outer element.
func innerJoin[A, B any, K comparable](outer []A, inner []B, outerKey func(A) K, innerKey func(B) K) []lo.Tuple2[A, B] {
	lookup := lo.GroupBy(inner, innerKey)
	pairs := make([]lo.Tuple2[A, B], 0)
	for _, o := range outer {
		for _, i := range lookup[outerKey(o)] {
			pairs = append(pairs, lo.T2(o, i))
		}
	}
	return pairs
}

// ============================================================================
// Helpers
// ============================================================================

func length(s string) int {
	return utf8.RuneCountInString(s)
}

func hasLength(n int) PredicateFunc[string] {
	return func(s string) bool {
		return length(s) == n
	}
}

func startsWithDigit(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	return size > 0 && unicode.IsDigit(r)
}

func endsWithDigit(s string) bool {
	r, size := utf8.DecodeLastRuneInString(s)
	return size > 0 && unicode.IsDigit(r)
}

func isEven(v int) bool {
	return v%2 == 0
}

func lastDigit(v int) int {
	return v % 10
}
