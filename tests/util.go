package testutil

import (
	"path/filepath"
	"testing"

	"github.com/trezcool/gradetracker/core/student"
)

// CourseSpec is a compact course description for fixtures.
type CourseSpec struct {
	ID    string
	Name  string
	Grade float64
}

func NewStudent(first, last, id string, courses ...CourseSpec) student.Student {
	s := student.NewStudent(first, last, id)
	for _, c := range courses {
		s.AddCourse(student.NewCourse(c.ID, c.Name, c.Grade))
	}
	return s
}

// CreateStudent adds a new student with the given courses to r and returns it.
func CreateStudent(t *testing.T, r *student.Roster, first, last, id string, courses ...CourseSpec) student.Student {
	t.Helper()
	s := NewStudent(first, last, id, courses...)
	r.AddStudent(s)
	return s
}

// SampleRoster fills r with a small class, including a duplicate ID and a student without courses.
func SampleRoster(t *testing.T, r *student.Roster) {
	t.Helper()
	CreateStudent(t, r, "Ada", "Lovelace", "S1", CourseSpec{"C1", "Math", 90}, CourseSpec{"C2", "CS", 100})
	CreateStudent(t, r, "Grace", "Hopper", "S2", CourseSpec{"C1", "Math", 72.5})
	CreateStudent(t, r, "Alan", "Turing", "S9")
	CreateStudent(t, r, "Barbara", "Liskov", "S9", CourseSpec{"C3", "Databases", 88.25}, CourseSpec{"C3", "Databases", 61})
}

// DBPath returns a snapshot path inside a per-test temporary directory.
func DBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "Database.txt")
}
