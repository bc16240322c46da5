package main

import (
	"context"
	"io"

	"github.com/pkg/errors"

	"github.com/trezcool/gradetracker/core"
	"github.com/trezcool/gradetracker/core/student"
	"github.com/trezcool/gradetracker/services/report"
)

// Menu entries
const (
	menuAddStudent = iota + 1
	menuRemoveStudent
	menuUpdateCourse
	menuAddCourse
	menuSearchStudent
	menuClassReport
	menuSave
	menuExit
)

type shell struct {
	ctx    context.Context
	roster *student.Roster
	p      *prompter
	log    core.Logger
	dbPath string
}

// errExit ends the menu loop.
var errExit = errors.New("exit")

func (sh *shell) displayMainMenu() {
	sh.p.println("\n===== STUDENT GRADE TRACKER =====")
	sh.p.println("1. Add New Student")
	sh.p.println("2. Remove Student")
	sh.p.println("3. Update Course Grade")
	sh.p.println("4. Add Course to Student")
	sh.p.println("5. Search Student")
	sh.p.println("6. Generate Class Report")
	sh.p.println("7. Save Data")
	sh.p.println("8. Exit")
	sh.p.printf("Enter your choice (%d-%d): ", menuAddStudent, menuExit)
}

// run drives the menu until Exit is chosen or the input ends; both save the roster.
// An unreadable input stream ends the session the same way, after logging.
func (sh *shell) run() error {
	for {
		sh.displayMainMenu()
		choice, err := sh.p.getMenuChoice(menuAddStudent, menuExit)
		if err == nil {
			err = sh.dispatch(choice)
		}
		if err == nil {
			continue
		}
		if err != errExit && err != io.EOF {
			sh.log.Error("reading input", err)
		}
		sh.saveData()
		sh.p.println("Exiting program. Goodbye!")
		return nil
	}
}

func (sh *shell) dispatch(choice int) error {
	switch choice {
	case menuAddStudent:
		return sh.addStudent()
	case menuRemoveStudent:
		return sh.removeStudent()
	case menuUpdateCourse:
		return sh.updateCourse()
	case menuAddCourse:
		return sh.addCourseToStudent()
	case menuSearchStudent:
		return sh.searchStudent()
	case menuClassReport:
		sh.generateReport()
	case menuSave:
		sh.saveData()
	case menuExit:
		return errExit
	}
	return nil
}

func (sh *shell) studentNotFound(id string) {
	sh.p.printf("Student with ID %s not found!\n", id)
	if hint, ok := sh.roster.SuggestID(id); ok {
		sh.p.printf("Did you mean %s?\n", hint)
	}
}

func (sh *shell) readCourse(n int) (student.Course, error) {
	var (
		in  student.NewCourseInput
		err error
	)
	if n > 0 {
		sh.p.printf("\nCourse Details #%d\n", n)
	}
	if in.ID, err = sh.p.getString("Enter Course ID:"); err != nil {
		return student.Course{}, err
	}
	if in.Name, err = sh.p.getString("Enter Course Name:"); err != nil {
		return student.Course{}, err
	}
	if in.Grade, err = sh.p.getGrade("Enter Grade (0-100):"); err != nil {
		return student.Course{}, err
	}
	if err = in.Validate(); err != nil {
		return student.Course{}, err
	}
	return in.Course(), nil
}

func (sh *shell) addStudent() error {
	sh.p.println("\n--- ADD NEW STUDENT ---")
	id, err := sh.p.getString("Enter student ID:")
	if err != nil {
		return err
	}
	firstName, err := sh.p.getString("Enter first name:")
	if err != nil {
		return err
	}
	lastName, err := sh.p.getString("Enter last name:")
	if err != nil {
		return err
	}

	s := student.NewStudent(firstName, lastName, id)
	count, err := sh.p.getCourseCount("How many courses has the student enrolled in?")
	if err != nil {
		return err
	}
	for i := 1; i <= count; i++ {
		c, err := sh.readCourse(i)
		if err != nil {
			return err
		}
		s.AddCourse(c)
	}
	sh.roster.AddStudent(s)
	sh.p.println("\nStudent with courses successfully added.")
	return nil
}

func (sh *shell) removeStudent() error {
	sh.p.println("\n--- REMOVE STUDENT ---")
	id, err := sh.p.getString("Enter student ID to remove:")
	if err != nil {
		return err
	}
	if sh.roster.RemoveStudent(id) {
		sh.p.println("Student removed successfully.")
	} else {
		sh.p.println("Student not found!")
	}
	return nil
}

func (sh *shell) updateCourse() error {
	sh.p.println("\n--- UPDATE COURSE GRADE ---")
	studentID, err := sh.p.getString("Enter student ID:")
	if err != nil {
		return err
	}
	courseID, err := sh.p.getString("Enter course ID to update:")
	if err != nil {
		return err
	}

	c, err := sh.roster.FindCourse(studentID, courseID)
	switch err {
	case nil:
	case student.ErrStudentNotFound:
		sh.studentNotFound(studentID)
		return nil
	case student.ErrCourseNotFound:
		sh.p.printf("Course with ID %s not found for student %s\n", courseID, studentID)
		return nil
	default:
		return err
	}

	sh.p.println("\nCurrent Course Details:")
	sh.p.println("1. Course Name:", c.Name)
	sh.p.println("2. Course ID:", c.ID)
	sh.p.printf("3. Grade: %.2f\n", c.Grade)

	var uc student.UpdateCourse
	sh.p.println("\nEnter new values (press Enter to keep current):")
	if uc.Name, err = sh.p.getString("New course name [" + c.Name + "]:"); err != nil {
		return err
	}
	if uc.ID, err = sh.p.getString("New course ID [" + c.ID + "]:"); err != nil {
		return err
	}
	if uc.Grade, err = sh.p.getString("New grade [" + formatGrade(c.Grade) + "]:"); err != nil {
		return err
	}

	res, err := sh.roster.UpdateCourse(studentID, courseID, uc)
	if err != nil {
		return err
	}
	switch res.Grade {
	case student.GradeOutOfRange:
		sh.p.println("Grade must be 0-100. Keeping old value.")
	case student.GradeInvalid:
		sh.p.println("Invalid grade format. Keeping old value.")
	}
	sh.p.println("Course updated successfully!")
	return nil
}

func (sh *shell) addCourseToStudent() error {
	sh.p.println("\n--- ADD COURSE TO STUDENT ---")
	studentID, err := sh.p.getString("Enter student ID:")
	if err != nil {
		return err
	}
	if _, err := sh.roster.FindStudent(studentID); err != nil {
		sh.studentNotFound(studentID)
		return nil
	}

	c, err := sh.readCourse(0)
	if err != nil {
		return err
	}
	if err := sh.roster.AddCourse(studentID, c); err != nil {
		return err
	}
	sh.p.println("Course added successfully!")
	return nil
}

func (sh *shell) searchStudent() error {
	sh.p.println("\n--- SEARCH STUDENT ---")
	id, err := sh.p.getString("Enter student ID:")
	if err != nil {
		return err
	}
	s, err := sh.roster.FindStudent(id)
	if err != nil {
		sh.studentNotFound(id)
		return nil
	}
	reportsvc.WriteStudentCard(sh.p.out, s)
	return nil
}

func (sh *shell) generateReport() {
	rep, err := sh.roster.ClassReport()
	if err == student.ErrNoStudents {
		sh.p.println("No students found in records.")
		return
	}
	reportsvc.WriteClassReport(sh.p.out, rep)
}

func (sh *shell) saveData() {
	if err := sh.roster.Save(sh.ctx, sh.dbPath); err != nil {
		sh.log.Error("saving data", err)
		sh.p.println("Error saving data:", err)
		return
	}
	sh.p.println("Data saved successfully!")
}
