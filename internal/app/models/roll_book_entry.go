package models

import (
	"fmt"

	"github.com/yigit/rollbook/internal/pkg/apperrors"
)

// RollBookEntry is one student's enrollment in a course together with the
// grades recorded for them so far. Grades are unique by code and kept in the
// order they were first set.
type RollBookEntry struct {
	student   *Student
	grades    []*Grade
	maxGrades int
}

// NewRollBookEntry creates an empty entry for student with the default grade limit.
func NewRollBookEntry(student *Student) *RollBookEntry {
	return newRollBookEntry(student, MaxGradesPerStudent)
}

func newRollBookEntry(student *Student, maxGrades int) *RollBookEntry {
	return &RollBookEntry{
		student:   student,
		grades:    make([]*Grade, 0, maxGrades),
		maxGrades: maxGrades,
	}
}

// Student returns the student this entry belongs to.
func (e *RollBookEntry) Student() *Student { return e.student }

// NumGrades returns the number of distinct grade codes recorded.
func (e *RollBookEntry) NumGrades() int { return len(e.grades) }

// Grades returns the recorded grades in insertion order.
func (e *RollBookEntry) Grades() []*Grade {
	out := make([]*Grade, len(e.grades))
	copy(out, e.grades)
	return out
}

// FindGrade looks up a grade by exact code.
func (e *RollBookEntry) FindGrade(code string) (*Grade, bool) {
	for _, g := range e.grades {
		if g.code == code {
			return g, true
		}
	}
	return nil, false
}

// SetGrade records value under code. An existing grade is updated in place;
// a new code is appended unless the entry already holds its maximum number
// of grades, in which case apperrors.ErrCapacityExceeded is returned.
func (e *RollBookEntry) SetGrade(code string, value float64) error {
	if g, ok := e.FindGrade(code); ok {
		g.SetValue(value)
		return nil
	}

	if len(e.grades) >= e.maxGrades {
		return apperrors.NewCustomError(apperrors.ErrCapacityExceeded,
			fmt.Sprintf("cannot record grade %q for student %d: limit of %d grades reached", code, e.student.ID, e.maxGrades)).
			WithDetails(map[string]interface{}{
				"studentId": e.student.ID,
				"gradeCode": code,
				"maxGrades": e.maxGrades,
			})
	}

	e.grades = append(e.grades, NewGrade(code, value))
	return nil
}
