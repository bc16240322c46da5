package reportsvc

import (
	"io"
	"math"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/trezcool/gradetracker/core/student"
)

const (
	ReportSheet  = "Class Report"
	CoursesSheet = "Courses"

	notAvailable = "n/a"
)

// gradeCell keeps values a spreadsheet cannot hold (NaN, the no-course sentinel) out of numeric cells.
func gradeCell(g float64) interface{} {
	if math.IsNaN(g) || math.IsInf(g, 0) || g == math.MaxFloat64 {
		return notAvailable
	}
	return g
}

func setRow(f *excelize.File, sheet string, row int, values ...interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

// WriteXLSX writes the class report and the full course listing of students as a workbook.
func WriteXLSX(w io.Writer, rep student.Report, students []student.Student) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", ReportSheet); err != nil {
		return errors.Wrap(err, "naming report sheet")
	}
	if _, err := f.NewSheet(CoursesSheet); err != nil {
		return errors.Wrap(err, "creating courses sheet")
	}

	row := 1
	if err := setRow(f, ReportSheet, row, "Student ID", "Student Name", "Highest", "Average", "Lowest"); err != nil {
		return errors.Wrap(err, "writing report header")
	}
	for _, r := range rep.Rows {
		row++
		if err := setRow(f, ReportSheet, row, r.StudentID, r.Name, gradeCell(r.Highest), gradeCell(r.Average), gradeCell(r.Lowest)); err != nil {
			return errors.Wrapf(err, "writing report row %d", row)
		}
	}
	row += 2
	summary := [][]interface{}{
		{"Highest Grade (Class)", gradeCell(rep.ClassHighest)},
		{"Lowest Grade (Class)", gradeCell(rep.ClassLowest)},
		{"Average Grade (Class)", gradeCell(rep.ClassAverage)},
		{"Total Courses", rep.TotalCourses},
	}
	for _, vals := range summary {
		if err := setRow(f, ReportSheet, row, vals...); err != nil {
			return errors.Wrap(err, "writing class statistics")
		}
		row++
	}

	row = 1
	if err := setRow(f, CoursesSheet, row, "Student ID", "First Name", "Last Name", "Course ID", "Course Name", "Grade"); err != nil {
		return errors.Wrap(err, "writing courses header")
	}
	for _, s := range students {
		for _, c := range s.Courses {
			row++
			if err := setRow(f, CoursesSheet, row, s.ID, s.FirstName, s.LastName, c.ID, c.Name, gradeCell(c.Grade)); err != nil {
				return errors.Wrapf(err, "writing courses row %d", row)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "writing workbook")
	}
	return nil
}
