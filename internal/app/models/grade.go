package models

// Grade is the score obtained in one graded item, identified by a code such as
// "Exam1", "Project" or "Attendance".
type Grade struct {
	code  string
	value float64
}

// NewGrade creates a grade with the given code and value.
func NewGrade(code string, value float64) *Grade {
	return &Grade{code: code, value: value}
}

// Code returns the grade code.
func (g *Grade) Code() string { return g.code }

// Value returns the recorded score.
func (g *Grade) Value() float64 { return g.value }

// SetValue overwrites the score. No range is enforced.
func (g *Grade) SetValue(value float64) { g.value = value }
