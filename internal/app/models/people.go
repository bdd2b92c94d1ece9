package models

import "fmt"

// Student represents a student attending the university.
type Student struct {
	ID        int64
	FirstName string
	LastName  string

	credits  int
	graduate bool
}

// NewStudent creates a student with no accumulated credits.
func NewStudent(id int64, firstName, lastName string, graduate bool) *Student {
	return &Student{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		graduate:  graduate,
	}
}

// Credits returns the credit-hours accumulated through enrollment.
func (s *Student) Credits() int { return s.credits }

// IsGraduate reports whether the student is a graduate student.
func (s *Student) IsGraduate() bool { return s.graduate }

// IsEnrolled reports whether the student holds an entry in c's roll book.
func (s *Student) IsEnrolled(c *Course) bool {
	return c.IsEnrolled(s)
}

// Drop removes the student from c. See Course.Drop.
func (s *Student) Drop(c *Course) error {
	return c.Drop(s)
}

func (s *Student) String() string {
	return fmt.Sprintf("[%d] %s %s", s.ID, s.FirstName, s.LastName)
}

// Professor is a faculty member who may teach courses.
type Professor struct {
	ID         int64
	FirstName  string
	LastName   string
	Department string
}

// NewProfessor creates a professor record.
func NewProfessor(id int64, firstName, lastName, department string) *Professor {
	return &Professor{
		ID:         id,
		FirstName:  firstName,
		LastName:   lastName,
		Department: department,
	}
}

// Equal reports whether p and other identify the same professor.
func (p *Professor) Equal(other *Professor) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.ID == other.ID
}

// StaffMember is a non-teaching member of the university staff.
type StaffMember struct {
	ID         int64
	Name       string
	Department string
}

// NewStaffMember creates a staff member record.
func NewStaffMember(id int64, name, department string) *StaffMember {
	return &StaffMember{
		ID:         id,
		Name:       name,
		Department: department,
	}
}
