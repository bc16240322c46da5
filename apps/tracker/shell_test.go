package main

import (
	"context"
	"strings"
	"testing"

	"github.com/trezcool/gradetracker/core/student"
)

func lines(l ...string) string {
	return strings.Join(l, "\n") + "\n"
}

func runShell(t *testing.T, cli *commandLine) string {
	t.Helper()
	if err := cli.run(context.Background(), []string{"tracker"}); err != nil {
		t.Fatalf("cli.run() unexpected error = %v", err)
	}
	return cli.stdout.(interface{ String() string }).String()
}

func assertContains(t *testing.T, out string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("output does not contain %q:\n%s", w, out)
		}
	}
}

func TestShell_addStudent(t *testing.T) {
	input := lines("1", "S1", "Ada", "Lovelace", "2", "C1", "Math", "90", "C2", "CS", "100", "8")
	cli, _, repo := setup(t, input, false)
	out := runShell(t, cli)

	assertContains(t, out,
		"No previous data found or error loading. Starting with empty records.",
		"===== STUDENT GRADE TRACKER =====",
		"Course Details #2",
		"Student with courses successfully added.",
		"Data saved successfully!",
		"Exiting program. Goodbye!",
	)

	saved := loadSaved(t, repo)
	s, err := saved.FindStudent("S1")
	if err != nil {
		t.Fatalf("FindStudent() failed, %v", err)
	}
	want := []student.Course{{ID: "C1", Name: "Math", Grade: 90}, {ID: "C2", Name: "CS", Grade: 100}}
	if s.FullName() != "Ada Lovelace" || len(s.Courses) != 2 || s.Courses[0] != want[0] || s.Courses[1] != want[1] {
		t.Errorf("saved student = %+v", s)
	}
}

func TestShell_invalidInput(t *testing.T) {
	input := lines(
		"x", "9", // menu
		"1", "S1", "A", "B",
		"two", "-1", "1", // course count
		"C1", "Math", "abc", "150", "80", // grade
		"8",
	)
	cli, _, repo := setup(t, input, false)
	out := runShell(t, cli)

	assertContains(t, out,
		"Invalid input! Please enter a number.",
		"Please enter a number between 1 and 8.",
		"Invalid input! Please enter a whole number.",
		"number of courses cannot be negative",
		"grade must be between 0 and 100",
	)
	s, _ := loadSaved(t, repo).FindStudent("S1")
	if len(s.Courses) != 1 || s.Courses[0].Grade != 80 {
		t.Errorf("saved courses = %+v, want one course graded 80", s.Courses)
	}
}

func TestShell_updateCourse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantOut   []string
		wantCourse student.Course
	}{
		{
			name:       "grade out of range",
			input:      lines("3", "S1", "C1", "", "", "150", "8"),
			wantOut:    []string{"Current Course Details:", "1. Course Name: Math", "Grade must be 0-100. Keeping old value.", "Course updated successfully!"},
			wantCourse: student.Course{ID: "C1", Name: "Math", Grade: 90},
		},
		{
			name:       "grade not a number",
			input:      lines("3", "S1", "C1", "Algebra", "", "lol", "8"),
			wantOut:    []string{"Invalid grade format. Keeping old value.", "Course updated successfully!"},
			wantCourse: student.Course{ID: "C1", Name: "Algebra", Grade: 90},
		},
		{
			name:       "all fields",
			input:      lines("3", "S1", "C1", "Algebra", "C10", "77.5", "8"),
			wantOut:    []string{"New grade [90]:", "Course updated successfully!"},
			wantCourse: student.Course{ID: "C10", Name: "Algebra", Grade: 77.5},
		},
		{
			name:       "student not found",
			input:      lines("3", "S7", "C1", "8"),
			wantOut:    []string{"Student with ID S7 not found!"},
			wantCourse: student.Course{ID: "C1", Name: "Math", Grade: 90},
		},
		{
			name:       "course not found",
			input:      lines("3", "S1", "C9", "8"),
			wantOut:    []string{"Course with ID C9 not found for student S1"},
			wantCourse: student.Course{ID: "C1", Name: "Math", Grade: 90},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, _, repo := setup(t, tt.input, true)
			out := runShell(t, cli)
			assertContains(t, out, tt.wantOut...)

			s, _ := loadSaved(t, repo).FindStudent("S1")
			if s.Courses[0] != tt.wantCourse {
				t.Errorf("first course = %+v, want %+v", s.Courses[0], tt.wantCourse)
			}
		})
	}
}

func TestShell_duplicateIDs(t *testing.T) {
	input := lines(
		"4", "S9", "CX", "Extra", "70",
		"5", "S9",
		"2", "S9",
		"2", "S9",
		"8",
	)
	cli, _, repo := setup(t, input, true)

	if err := cli.run(context.Background(), []string{"tracker"}); err != nil {
		t.Fatalf("cli.run() unexpected error = %v", err)
	}
	out := cli.stdout.(interface{ String() string }).String()
	assertContains(t, out, "Course added successfully!", "Full Name      : Alan Turing", "CX", "Student removed successfully.", "Student not found!")

	saved := loadSaved(t, repo)
	if _, err := saved.FindStudent("S9"); err != student.ErrStudentNotFound {
		t.Errorf("FindStudent(S9) error = %v, want %v", err, student.ErrStudentNotFound)
	}
	if saved.Len() != 2 {
		t.Errorf("saved roster has %d students, want 2", saved.Len())
	}
}

func TestShell_addCourseBothDuplicates(t *testing.T) {
	cli, _, repo := setup(t, lines("4", "S9", "CX", "Extra", "70", "7", "8"), true)
	runShell(t, cli)

	for _, s := range loadSaved(t, repo).Students() {
		if s.ID != "S9" {
			continue
		}
		last := s.Courses[len(s.Courses)-1]
		if last.ID != "CX" {
			t.Errorf("%s last course = %+v, want CX", s.FullName(), last)
		}
	}
}

func TestShell_searchAndReport(t *testing.T) {
	cli, _, _ := setup(t, lines("5", "S1", "5", "S10", "4", "S", "6", "8"), true)
	out := runShell(t, cli)

	assertContains(t, out,
		"Previous data loaded successfully.",
		"------ STUDENT REPORT ------",
		"Average Grade  : 95.00",
		"Student with ID S10 not found!",
		"Did you mean S1?",
		"Student with ID S not found!",
		"CLASS GRADE REPORT",
		"Average Grade (Class): 82.35",
	)
}

func TestShell_emptyReport(t *testing.T) {
	cli, _, _ := setup(t, lines("6", "8"), false)
	out := runShell(t, cli)
	assertContains(t, out, "No students found in records.")
}

func TestShell_endOfInputSaves(t *testing.T) {
	cli, _, repo := setup(t, lines("1", "S5", "Eve", "E", "0"), false)
	out := runShell(t, cli)

	assertContains(t, out, "Data saved successfully!", "Exiting program. Goodbye!")
	if _, err := loadSaved(t, repo).FindStudent("S5"); err != nil {
		t.Errorf("FindStudent(S5) error = %v", err)
	}
}

func TestShell_endOfInputMidPrompt(t *testing.T) {
	// the half-entered student is dropped, the rest is saved
	cli, _, repo := setup(t, lines("1", "S5", "Eve"), true)
	runShell(t, cli)

	saved := loadSaved(t, repo)
	if _, err := saved.FindStudent("S5"); err != student.ErrStudentNotFound {
		t.Errorf("FindStudent(S5) error = %v, want %v", err, student.ErrStudentNotFound)
	}
	if saved.Len() != 4 {
		t.Errorf("saved roster has %d students, want 4", saved.Len())
	}
}

func TestShell_longLines(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantOut []string
	}{
		{
			name:    "long answer is read",
			line:    strings.Repeat("7", 70*1024),
			wantOut: []string{"Invalid input! Please enter a number."},
		},
		{
			name: "oversized answer ends the session",
			line: strings.Repeat("x", maxLineSize+1),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cli, _, repo := setup(t, lines("1", "S5", "Eve", "E", "0", tc.line), false)
			out := runShell(t, cli)

			assertContains(t, out, append(tc.wantOut, "Data saved successfully!", "Exiting program. Goodbye!")...)
			if _, err := loadSaved(t, repo).FindStudent("S5"); err != nil {
				t.Errorf("FindStudent(S5) error = %v", err)
			}
		})
	}
}
