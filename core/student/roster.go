package student

import (
	"context"
	"errors"
	"strconv"
)

var (
	// errors
	ErrStudentNotFound = errors.New("student not found")
	ErrCourseNotFound  = errors.New("course not found")
	ErrNoStudents      = errors.New("no students found in records")

	ErrSnapshotNotFound  = errors.New("snapshot not found")
	ErrSnapshotMalformed = errors.New("snapshot is malformed")
)

// Repository persists whole rosters. Load returns ErrSnapshotNotFound or
// ErrSnapshotMalformed (possibly wrapped) for a missing or unreadable snapshot.
type Repository interface {
	Save(ctx context.Context, path string, students []Student) error
	Load(ctx context.Context, path string) ([]Student, error)
}

// Roster is the in-memory collection of students. It is not safe for concurrent use.
type Roster struct {
	students []Student
	repo     Repository
}

func NewRoster(repo Repository) *Roster {
	return &Roster{
		students: make([]Student, 0),
		repo:     repo,
	}
}

// Students returns a copy of the students in their current order.
func (r *Roster) Students() []Student {
	students := make([]Student, len(r.students))
	for i, s := range r.students {
		if s.Courses != nil {
			s.Courses = append(make([]Course, 0, len(s.Courses)), s.Courses...)
		}
		students[i] = s
	}
	return students
}

func (r *Roster) Len() int { return len(r.students) }

// AddStudent appends s without checking for an existing ID.
func (r *Roster) AddStudent(s Student) {
	r.students = append(r.students, s)
}

// RemoveStudent removes every student with the given ID and reports whether any was removed.
func (r *Roster) RemoveStudent(id string) bool {
	kept := r.students[:0]
	for _, s := range r.students {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	removed := len(kept) != len(r.students)
	for i := len(kept); i < len(r.students); i++ {
		r.students[i] = Student{}
	}
	r.students = kept
	return removed
}

// FindStudent returns the first student with the given ID.
func (r *Roster) FindStudent(id string) (Student, error) {
	if s, ok := r.find(id); ok {
		return *s, nil
	}
	return Student{}, ErrStudentNotFound
}

func (r *Roster) find(id string) (*Student, bool) {
	for i := range r.students {
		if r.students[i].ID == id {
			return &r.students[i], true
		}
	}
	return nil, false
}

// FindCourse returns the first matching course of the first matching student.
func (r *Roster) FindCourse(studentID, courseID string) (Course, error) {
	s, ok := r.find(studentID)
	if !ok {
		return Course{}, ErrStudentNotFound
	}
	c, ok := s.findCourse(courseID)
	if !ok {
		return Course{}, ErrCourseNotFound
	}
	return *c, nil
}

// AddCourse appends c to every student with the given ID.
func (r *Roster) AddCourse(studentID string, c Course) error {
	found := false
	for i := range r.students {
		if r.students[i].ID == studentID {
			r.students[i].AddCourse(c)
			found = true
		}
	}
	if !found {
		return ErrStudentNotFound
	}
	return nil
}

// UpdateCourse modifies the first matching course of the first matching student.
// Only non-empty fields of uc are applied. A grade that does not parse or falls
// outside [MinGrade, MaxGrade] is rejected and the old grade is kept; the other
// fields are still applied.
func (r *Roster) UpdateCourse(studentID, courseID string, uc UpdateCourse) (UpdateResult, error) {
	s, ok := r.find(studentID)
	if !ok {
		return UpdateResult{}, ErrStudentNotFound
	}
	c, ok := s.findCourse(courseID)
	if !ok {
		return UpdateResult{}, ErrCourseNotFound
	}

	res := UpdateResult{Before: *c}
	if uc.Name != "" {
		c.Name = uc.Name
	}
	if uc.ID != "" {
		c.ID = uc.ID
	}
	if uc.Grade != "" {
		grade, err := strconv.ParseFloat(uc.Grade, 64)
		switch {
		case err != nil:
			res.Grade = GradeInvalid
		case ValidateGrade(grade) != nil:
			res.Grade = GradeOutOfRange
		default:
			c.Grade = grade
			res.Grade = GradeUpdated
		}
	}
	res.After = *c
	return res, nil
}

// Save writes the whole roster to path.
func (r *Roster) Save(ctx context.Context, path string) error {
	return r.repo.Save(ctx, path, r.students)
}

// Load replaces the whole roster with the snapshot at path.
// On error the roster is left unchanged.
func (r *Roster) Load(ctx context.Context, path string) error {
	students, err := r.repo.Load(ctx, path)
	if err != nil {
		return err
	}
	if students == nil {
		students = make([]Student, 0)
	}
	r.students = students
	return nil
}
