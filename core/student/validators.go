package student

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/gradetracker/core"
)

const (
	MinGrade = 0
	MaxGrade = 100
)

var (
	gradeTag  = "grade"
	gradeText = "grade must be between 0 and 100"

	courseCountTag  = "coursecount"
	courseCountText = "number of courses cannot be negative"
)

func init() {
	// register validators
	_ = core.Validate.RegisterValidation(gradeTag, gradeValidation)
	core.RegisterCustomTranslation(gradeTag, gradeText)

	_ = core.Validate.RegisterValidation(courseCountTag, courseCountValidation)
	core.RegisterCustomTranslation(courseCountTag, courseCountText)
}

// gradeValidation only allows grades within [MinGrade, MaxGrade]. NaN never passes.
func gradeValidation(fl validator.FieldLevel) bool {
	g := fl.Field().Float()
	return g >= MinGrade && g <= MaxGrade
}

func courseCountValidation(fl validator.FieldLevel) bool {
	return fl.Field().Int() >= 0
}

// ValidateGrade checks a grade entered at the input boundary.
func ValidateGrade(grade float64) error {
	return core.TranslateError(core.Validate.Var(grade, gradeTag))
}

// ValidateCourseCount checks the number of courses announced for a new student.
func ValidateCourseCount(n int) error {
	return core.TranslateError(core.Validate.Var(n, courseCountTag))
}

func validateStruct(s interface{}) error {
	return core.TranslateError(core.Validate.Struct(s))
}
