package models

import (
	"fmt"

	"github.com/yigit/rollbook/internal/pkg/apperrors"
)

// CourseKind distinguishes ordinary courses from graduate-only ones.
type CourseKind string

// CourseKind constants
const (
	CourseKindStandard     CourseKind = "STANDARD"
	CourseKindGraduateOnly CourseKind = "GRADUATE_ONLY"
)

// IsValid reports whether k is a known course kind.
func (k CourseKind) IsValid() bool {
	return k == CourseKindStandard || k == CourseKindGraduateOnly
}

// DuplicatePolicy decides what happens when a student who is already on the
// roll book is enrolled again.
type DuplicatePolicy string

// DuplicatePolicy constants
const (
	// DuplicateReject leaves the roll book untouched and reports EnrollResultRejectedDuplicate.
	DuplicateReject DuplicatePolicy = "REJECT"
	// DuplicateAllow adds a second entry and counts the credits again.
	DuplicateAllow DuplicatePolicy = "ALLOW"
)

// EnrollResult is the outcome of Course.Enroll.
type EnrollResult string

// EnrollResult constants
const (
	EnrollResultEnrolled            EnrollResult = "enrolled"
	EnrollResultRejectedNotGraduate EnrollResult = "rejectedNotGraduate"
	EnrollResultRejectedDuplicate   EnrollResult = "rejectedDuplicate"
	EnrollResultCourseFull          EnrollResult = "courseFull"
)

// Course is a course offered at the university. Its roll book holds one entry
// per enrolled student, in enrollment order.
type Course struct {
	code      string
	title     string
	credits   int
	professor *Professor
	kind      CourseKind
	limits    Limits
	policy    DuplicatePolicy

	rollBook []*RollBookEntry
}

// NewCourse creates a standard course with the default limits.
func NewCourse(code, title string, credits int, professor *Professor) *Course {
	return NewCourseWithLimits(CourseKindStandard, code, title, credits, professor, DefaultLimits())
}

// NewGradCourse creates a course that only graduate students may enroll in.
func NewGradCourse(code, title string, credits int, professor *Professor) *Course {
	return NewCourseWithLimits(CourseKindGraduateOnly, code, title, credits, professor, DefaultLimits())
}

// NewCourseWithLimits creates a course of the given kind. Non-positive limits
// fall back to the defaults.
func NewCourseWithLimits(kind CourseKind, code, title string, credits int, professor *Professor, limits Limits) *Course {
	if !kind.IsValid() {
		kind = CourseKindStandard
	}
	limits = limits.normalized()
	return &Course{
		code:      code,
		title:     title,
		credits:   credits,
		professor: professor,
		kind:      kind,
		limits:    limits,
		policy:    DuplicateReject,
		rollBook:  make([]*RollBookEntry, 0, limits.MaxStudents),
	}
}

func (c *Course) Code() string { return c.code }
func (c *Course) Title() string { return c.title }
func (c *Course) Credits() int { return c.credits }
func (c *Course) Professor() *Professor { return c.professor }
func (c *Course) Kind() CourseKind { return c.kind }
func (c *Course) Capacity() int { return c.limits.MaxStudents }
func (c *Course) MaxGrades() int { return c.limits.MaxGrades }
func (c *Course) NumStudents() int { return len(c.rollBook) }
func (c *Course) Policy() DuplicatePolicy { return c.policy }

// SetDuplicatePolicy changes how repeated enrollment of the same student is handled.
func (c *Course) SetDuplicatePolicy(p DuplicatePolicy) {
	if p != DuplicateAllow {
		p = DuplicateReject
	}
	c.policy = p
}

// IsGraduateCourse reports whether enrollment is restricted to graduate students.
func (c *Course) IsGraduateCourse() bool {
	return c.kind == CourseKindGraduateOnly
}

// RollBook returns the roll book entries in enrollment order.
func (c *Course) RollBook() []*RollBookEntry {
	out := make([]*RollBookEntry, len(c.rollBook))
	copy(out, c.rollBook)
	return out
}

// Enroll adds s to the roll book and credits the student with the course's
// credit value.
//
// Undergraduates are turned away from graduate courses and, under
// DuplicateReject, students already on the roll book are turned away too;
// both are ordinary outcomes with a nil error. A full course yields
// EnrollResultCourseFull and apperrors.ErrCourseFull.
func (c *Course) Enroll(s *Student) (EnrollResult, error) {
	if c.IsGraduateCourse() && !s.IsGraduate() {
		return EnrollResultRejectedNotGraduate, nil
	}

	if c.policy == DuplicateReject && c.IsEnrolled(s) {
		return EnrollResultRejectedDuplicate, nil
	}

	if len(c.rollBook) >= c.limits.MaxStudents {
		return EnrollResultCourseFull, apperrors.NewCustomError(apperrors.ErrCourseFull,
			fmt.Sprintf("cannot enroll student %d in %s: course is full (%d students)", s.ID, c.code, c.limits.MaxStudents)).
			WithDetails(map[string]interface{}{
				"courseCode": c.code,
				"studentId":  s.ID,
				"capacity":   c.limits.MaxStudents,
			})
	}

	c.rollBook = append(c.rollBook, newRollBookEntry(s, c.limits.MaxGrades))
	s.credits += c.credits
	return EnrollResultEnrolled, nil
}

// FindRollBookEntry returns the first entry whose student has the given id.
func (c *Course) FindRollBookEntry(studentID int64) (*RollBookEntry, bool) {
	_, e := c.indexOf(studentID)
	return e, e != nil
}

func (c *Course) indexOf(studentID int64) (int, *RollBookEntry) {
	for i, e := range c.rollBook {
		if e.student.ID == studentID {
			return i, e
		}
	}
	return -1, nil
}

// IsEnrolled reports whether s has an entry in the roll book.
func (c *Course) IsEnrolled(s *Student) bool {
	_, ok := c.FindRollBookEntry(s.ID)
	return ok
}

// SetGrade records a grade for an enrolled student. Grading a student who is
// not on the roll book returns apperrors.ErrStudentNotEnrolled.
func (c *Course) SetGrade(s *Student, code string, value float64) error {
	e, ok := c.FindRollBookEntry(s.ID)
	if !ok {
		return apperrors.NewCustomError(apperrors.ErrStudentNotEnrolled,
			fmt.Sprintf("cannot record grade %q: student %d is not enrolled in %s", code, s.ID, c.code)).
			WithDetails(map[string]interface{}{
				"courseCode": c.code,
				"studentId":  s.ID,
				"gradeCode":  code,
			})
	}
	return e.SetGrade(code, value)
}

// FindGrade returns the value recorded for s under code. When the student is
// not enrolled or has no such grade it returns GradeNotFound and false.
func (c *Course) FindGrade(s *Student, code string) (float64, bool) {
	e, ok := c.FindRollBookEntry(s.ID)
	if !ok {
		return GradeNotFound, false
	}
	g, ok := e.FindGrade(code)
	if !ok {
		return GradeNotFound, false
	}
	return g.Value(), true
}

// Drop removes s's entry from the roll book, keeping the remaining entries in
// order. Credits already granted are not taken back. Dropping a student who
// is not enrolled returns apperrors.ErrNotEnrolled and changes nothing.
func (c *Course) Drop(s *Student) error {
	i, _ := c.indexOf(s.ID)
	if i < 0 {
		return apperrors.NewCustomError(apperrors.ErrNotEnrolled,
			fmt.Sprintf("cannot drop %s: student %d is not enrolled", c.code, s.ID)).
			WithDetails(map[string]interface{}{
				"courseCode": c.code,
				"studentId":  s.ID,
			})
	}

	copy(c.rollBook[i:], c.rollBook[i+1:])
	c.rollBook[len(c.rollBook)-1] = nil
	c.rollBook = c.rollBook[:len(c.rollBook)-1]
	return nil
}

func (c *Course) String() string {
	return c.code + ": " + c.title
}
