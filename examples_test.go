package purequery_test

import (
	"errors"
	"fmt"

	pq "github.com/Pure-Company/purequery"
)

// ============================================================================
// Strings
// ============================================================================

func ExampleConcatenate() {
	s, err := pq.Concatenate([]string{"pure", "query"})
	fmt.Println(s, err)

	_, err = pq.Concatenate(nil)
	fmt.Println(errors.Is(err, pq.ErrEmptyInput))
	// Output:
	// purequery <nil>
	// true
}

func ExampleFindFirstDigitPrefixedOfLength() {
	codes := []string{"A12", "7B", "123", "9XZ"}

	fmt.Println(pq.FindFirstDigitPrefixedOfLength(3, codes))
	fmt.Println(pq.FindFirstDigitPrefixedOfLength(5, codes))
	// Output:
	// 123
	// Not found
}

func ExampleInitialsString() {
	fmt.Println(pq.InitialsString([]string{"", "abc", "xyz"}))
	// Output: ax
}

func ExampleDigitEndingFixedLengthSorted() {
	fmt.Println(pq.DigitEndingFixedLengthSorted(2, []string{"D3", "A1", "CC", "B2"}))
	// Output: [A1 B2 D3]
}

func ExampleParityPickChars() {
	fmt.Println(string(pq.ParityPickChars([]string{"abc", "ab", "x"})))
	// Output: xba
}

// ============================================================================
// Integers
// ============================================================================

func ExampleEvenExceptTail() {
	a := []int{1, 3, 5, 6, 3, 6, 7, 8, 45, 3, 7, 6}

	fmt.Println(pq.EvenExceptTail(2, a))
	fmt.Println(pq.EvenExceptTail(8, a))
	// Output:
	// []
	// [8]
}

func ExampleBoundedUnionDescending() {
	fmt.Println(pq.BoundedUnionDescending(5, 3, []int{1, 3, 5, 6, 3, 6, 7}))
	// Output: [7 6 5 3 1]
}

func ExampleOddToStringsAscending() {
	fmt.Println(pq.OddToStringsAscending([]int{1, 2, 3, 10, 11}))
	// Output: [1 11 3]
}

func ExampleRemoveFirst() {
	fmt.Println(pq.RemoveFirst(45, []int{1, 3, 45, 6, 45}))
	// Output: [1 3 6 45]
}

// ============================================================================
// Joins and Groups
// ============================================================================

func ExampleLastDigitPairs() {
	for _, p := range pq.LastDigitPairs([]int{49, 23}, []int{129, 13, 33}) {
		fmt.Println(p)
	}
	// Output:
	// 49 - 129
	// 23 - 13
	// 23 - 33
}

func ExampleEqualLengthPairsSorted() {
	fmt.Println(pq.EqualLengthPairsSorted([]string{"AB", "C"}, []string{"EF", "D", "GH"}))
	// Output: [AB:GH AB:EF C:D]
}

func ExampleGroupByLastDigitSum() {
	fmt.Println(pq.GroupByLastDigitSum([]int{13, 23, 4, 14}))
	// Output: [3: 36 4: 18]
}

func ExampleSchoolCountByYear() {
	rows := pq.SchoolCountByYear([]pq.Enrollee{
		{School: 1, Year: 2020, LastName: "Ivanov"},
		{School: 2, Year: 2020, LastName: "Petrova"},
		{School: 1, Year: 2021, LastName: "Sidorov"},
	})
	for _, r := range rows {
		fmt.Printf("%d: %d\n", r.Year, r.Schools)
	}
	// Output:
	// 2021: 1
	// 2020: 2
}

// ============================================================================
// Building Blocks
// ============================================================================

func ExampleCompareFunc_Compose() {
	type score struct {
		name   string
		points int
	}
	byPointsDesc := pq.By(func(s score) int { return s.points }).Reverse()
	byName := pq.By(func(s score) string { return s.name })

	for _, s := range byPointsDesc.Compose(byName).Sort([]score{
		{"carol", 7}, {"bob", 9}, {"alice", 7},
	}) {
		fmt.Println(s.name, s.points)
	}
	// Output:
	// bob 9
	// alice 7
	// carol 7
}

func ExamplePredicateFunc_First() {
	long := pq.PredicateFunc[string](func(s string) bool { return len(s) > 3 })

	fmt.Println(long.First([]string{"go", "query", "lo"}).OrElse("none"))
	fmt.Println(long.First([]string{"go"}).OrElse("none"))
	// Output:
	// query
	// none
}
