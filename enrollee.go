package purequery

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Enrollee is one applicant record.
type Enrollee struct {
	School   uint   `yaml:"school" json:"school" validate:"required"`
	Year     uint   `yaml:"year" json:"year" validate:"required"`
	LastName string `yaml:"last_name" json:"last_name" validate:"required"`
}

// YearSchools is the number of distinct schools applicants graduated from in
// one year.
type YearSchools struct {
	Year    uint `json:"year"`
	Schools int  `json:"schools"`
}

// SchoolCountByYear counts, for every graduation year present in e, the
// distinct school numbers of that year's applicants. Rows are ordered by
// ascending count, then ascending year.
func SchoolCountByYear(e []Enrollee) []YearSchools {
	byYear := lo.GroupBy(e, func(x Enrollee) uint { return x.Year })
	rows := lo.MapToSlice(byYear, func(year uint, group []Enrollee) YearSchools {
		schools := lo.UniqBy(group, func(x Enrollee) uint { return x.School })
		return YearSchools{Year: year, Schools: len(schools)}
	})

	order := By(func(r YearSchools) int { return r.Schools }).
		Compose(By(func(r YearSchools) uint { return r.Year }))
	return order.Sort(rows)
}

// SchoolCountByYearMap is SchoolCountByYear keyed by year.
func SchoolCountByYearMap(e []Enrollee) map[uint]int {
	return lo.SliceToMap(SchoolCountByYear(e), func(r YearSchools) (uint, int) {
		return r.Year, r.Schools
	})
}

// ValidateEnrollees checks every record of e against its field rules and
// reports the first invalid one.
func ValidateEnrollees(e []Enrollee) error {
	for i, x := range e {
		if err := validate.Struct(x); err != nil {
			return fmt.Errorf("enrollee %d (%q): %w", i, x.LastName, err)
		}
	}
	return nil
}
