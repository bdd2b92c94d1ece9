// Package models holds the university registry: people records, courses with
// their roll books, and the University aggregate that owns them.
//
// The types in this package are not safe for concurrent use. Callers that share
// a University across goroutines serialize access themselves (see
// services.UniversityService).
package models

// Default limits applied by NewCourse and NewGradCourse.
const (
	MaxStudentsPerCourse = 50
	MaxGradesPerStudent  = 25
)

// GradeNotFound is the value FindGrade reports when no grade is recorded.
const GradeNotFound = -1.0

// Limits bounds the size of a course roll book and of each entry in it.
type Limits struct {
	MaxStudents int
	MaxGrades   int
}

// DefaultLimits returns the standard course limits.
func DefaultLimits() Limits {
	return Limits{
		MaxStudents: MaxStudentsPerCourse,
		MaxGrades:   MaxGradesPerStudent,
	}
}

func (l Limits) normalized() Limits {
	if l.MaxStudents <= 0 {
		l.MaxStudents = MaxStudentsPerCourse
	}
	if l.MaxGrades <= 0 {
		l.MaxGrades = MaxGradesPerStudent
	}
	return l
}
