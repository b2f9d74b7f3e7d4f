/*
Package purequery provides small, pure query functions over in-memory
sequences of integers, strings and applicant records.

# Overview

Every query is a standalone transformation: filter, map, sort, group or
join over its input slices, returning a freshly allocated result. Queries
never mutate their inputs, keep no state and can be called in any order.

	s, err := purequery.Concatenate([]string{"ab", "cd"}) // "abcd", nil
	purequery.SumLengths([]string{"ab", "cd"})             // 4
	purequery.GroupByLastDigitSum([]int{13, 23, 4, 14})   // ["3: 36" "4: 18"]

# Building Blocks

The queries are assembled from two functional types, each with the monoid
operations Empty and Compose:

PredicateFunc filters values:

	code := PredicateFunc[string](isUpper).Compose(hasDigit)
	code.Filter(lines)
	code.Count(lines)
	code.First(lines) // mo.Option[string]

CompareFunc orders values and breaks ties by composition:

	byLast := By(func(p Person) string { return p.Last })
	byAge := By(func(p Person) int { return p.Age }).Reverse()
	byLast.Compose(byAge).Sort(people)

# Available Queries

Strings:
  - Concatenate, SumLengths, InitialsString
  - FindFirstDigitPrefixedOfLength, CountWrappedByChar
  - DigitEndingFixedLengthSorted, ParityPickChars

Integers:
  - EvenExceptTail, BoundedUnionDescending, OddToStringsAscending
  - ThresholdMerge, RemoveFirst, TopDescending, SkipTopDescending, Doubled

Joins and groups:
  - LastDigitPairs, EqualLengthPairsSorted, GroupByLastDigitSum

Applicants:
  - SchoolCountByYear, SchoolCountByYearMap, ValidateEnrollees

# Empty Input

Empty or nil slices produce empty, non-nil results. The only failure is
Concatenate on an empty slice, which returns an *EmptyInputError matching
ErrEmptyInput under errors.Is. Out-of-range parameters such as a
non-positive length select nothing instead of failing.

# Package Import

	import pq "github.com/Pure-Company/purequery"
*/
package purequery
