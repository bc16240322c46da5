package student

// Course is a course taken by a student and the grade obtained in it.
type Course struct {
	ID    string  `json:"course_id"`
	Name  string  `json:"course_name"`
	Grade float64 `json:"grade"`
}

func NewCourse(id, name string, grade float64) Course {
	return Course{ID: id, Name: name, Grade: grade}
}

// Student is identified by ID, which is not unique across a Roster.
type Student struct {
	ID        string   `json:"student_id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Courses   []Course `json:"courses"`
}

func NewStudent(firstName, lastName, id string) Student {
	return Student{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		Courses:   make([]Course, 0),
	}
}

// AddCourse appends c, even when a course with the same ID already exists.
func (s *Student) AddCourse(c Course) {
	s.Courses = append(s.Courses, c)
}

func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// findCourse returns the first course matching id.
func (s *Student) findCourse(id string) (*Course, bool) {
	for i := range s.Courses {
		if s.Courses[i].ID == id {
			return &s.Courses[i], true
		}
	}
	return nil, false
}

// NewCourseInput contains information needed to add a Course to a Student.
type NewCourseInput struct {
	ID    string  `json:"course_id"`
	Name  string  `json:"course_name"`
	Grade float64 `json:"grade" validate:"grade"`
}

func (nc NewCourseInput) Validate() error { return validateStruct(nc) }

func (nc NewCourseInput) Course() Course { return NewCourse(nc.ID, nc.Name, nc.Grade) }

// UpdateCourse defines what may be provided to modify an existing Course.
// Empty fields keep the current value. Grade is raw user input.
type UpdateCourse struct {
	Name  string `json:"course_name"`
	ID    string `json:"course_id"`
	Grade string `json:"grade"`
}

// GradeStatus reports what UpdateCourse did with the grade field.
type GradeStatus int

const (
	GradeKept GradeStatus = iota
	GradeUpdated
	GradeInvalid
	GradeOutOfRange
)

func (gs GradeStatus) String() string {
	switch gs {
	case GradeUpdated:
		return "updated"
	case GradeInvalid:
		return "invalid grade format, kept old value"
	case GradeOutOfRange:
		return "grade out of range, kept old value"
	default:
		return "kept"
	}
}

type UpdateResult struct {
	Before Course
	After  Course
	Grade  GradeStatus
}
