package reportsvc

import (
	"fmt"
	"io"

	"github.com/trezcool/gradetracker/core/student"
)

// WriteStudentCard prints a student's identity, courses and grade summary.
func WriteStudentCard(w io.Writer, s student.Student) {
	_, _ = fmt.Fprintln(w, "\n------ STUDENT REPORT ------")
	_, _ = fmt.Fprintf(w, "%-15s: %s %s\n", "Full Name", s.FirstName, s.LastName)
	_, _ = fmt.Fprintf(w, "%-15s: %s\n", "ID", s.ID)

	_, _ = fmt.Fprintln(w, "\n--- ENROLLED COURSES ---")
	_, _ = fmt.Fprintf(w, "%-10s %-20s %s\n", "ID", "Course Name", "Grade")
	for _, c := range s.Courses {
		_, _ = fmt.Fprintf(w, "%-10s %-20s %.2f\n", c.ID, c.Name, c.Grade)
	}

	_, _ = fmt.Fprintln(w, "\n--- GRADE SUMMARY ---")
	_, _ = fmt.Fprintf(w, "%-15s: %.2f\n", "Highest Grade", s.HighestGrade())
	_, _ = fmt.Fprintf(w, "%-15s: %.2f\n", "Lowest Grade", s.LowestGrade())
	_, _ = fmt.Fprintf(w, "%-15s: %.2f\n", "Average Grade", s.AverageGrade())
}

// WriteClassReport prints one line per student followed by the class-wide statistics.
func WriteClassReport(w io.Writer, rep student.Report) {
	_, _ = fmt.Fprintln(w, "\n=============== CLASS GRADE REPORT ===============")
	_, _ = fmt.Fprintf(w, "%-20s %10s %10s %10s\n", "STUDENT NAME", "HIGHEST", "AVERAGE", "LOWEST")
	_, _ = fmt.Fprintln(w, "------------------------------------------------")
	for _, row := range rep.Rows {
		_, _ = fmt.Fprintf(w, "%-20s %10.2f %10.2f %10.2f\n", row.Name, row.Highest, row.Average, row.Lowest)
	}

	_, _ = fmt.Fprintln(w, "\n----------- OVERALL CLASS STATISTICS -----------")
	_, _ = fmt.Fprintf(w, "%-20s: %.2f\n", "Highest Grade (Class)", rep.ClassHighest)
	_, _ = fmt.Fprintf(w, "%-20s: %.2f\n", "Lowest Grade (Class)", rep.ClassLowest)
	_, _ = fmt.Fprintf(w, "%-20s: %.2f\n", "Average Grade (Class)", rep.ClassAverage)
}
