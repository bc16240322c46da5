package student

import (
	"math"
	"sort"
)

// HighestGrade returns the best grade of s, or 0 when s has no courses.
func (s Student) HighestGrade() float64 {
	highest := 0.0
	for _, c := range s.Courses {
		if c.Grade > highest {
			highest = c.Grade
		}
	}
	return highest
}

// LowestGrade returns the worst grade of s, or math.MaxFloat64 when s has no courses.
func (s Student) LowestGrade() float64 {
	lowest := math.MaxFloat64
	for _, c := range s.Courses {
		if c.Grade < lowest {
			lowest = c.Grade
		}
	}
	return lowest
}

// AverageGrade returns the mean grade of s.
// The division is not guarded: a student without courses averages to NaN.
func (s Student) AverageGrade() float64 {
	return s.gradeSum() / float64(len(s.Courses))
}

func (s Student) gradeSum() float64 {
	var sum float64
	for _, c := range s.Courses {
		sum += c.Grade
	}
	return sum
}

type ReportRow struct {
	StudentID string
	Name      string
	Highest   float64
	Average   float64
	Lowest    float64
}

// Report holds per-student and class-wide statistics.
// ClassAverage is computed over every course of the roster, not over student averages.
type Report struct {
	Rows         []ReportRow
	ClassHighest float64
	ClassLowest  float64
	ClassAverage float64
	TotalCourses int
}

// ClassReport sorts the roster by first name and computes the statistics of every student.
// The sort is kept in the roster afterwards.
func (r *Roster) ClassReport() (Report, error) {
	if len(r.students) == 0 {
		return Report{}, ErrNoStudents
	}

	sort.SliceStable(r.students, func(i, j int) bool {
		return r.students[i].FirstName < r.students[j].FirstName
	})

	rep := Report{
		Rows:         make([]ReportRow, 0, len(r.students)),
		ClassHighest: math.Inf(-1),
		ClassLowest:  math.MaxFloat64,
	}
	var sumAll float64
	for _, s := range r.students {
		row := ReportRow{
			StudentID: s.ID,
			Name:      s.FullName(),
			Highest:   s.HighestGrade(),
			Average:   s.AverageGrade(),
			Lowest:    s.LowestGrade(),
		}
		rep.Rows = append(rep.Rows, row)

		rep.ClassHighest = math.Max(rep.ClassHighest, row.Highest)
		rep.ClassLowest = math.Min(rep.ClassLowest, row.Lowest)
		sumAll += s.gradeSum()
		rep.TotalCourses += len(s.Courses)
	}
	if rep.TotalCourses > 0 {
		rep.ClassAverage = sumAll / float64(rep.TotalCourses)
	}
	return rep, nil
}
