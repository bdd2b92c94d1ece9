package models

// University owns the registry's courses and people. It does not enforce
// uniqueness: adding the same course or person twice keeps both.
type University struct {
	courses    []*Course
	students   []*Student
	professors []*Professor
	staff      []*StaffMember
}

// NewUniversity creates an empty university.
func NewUniversity() *University {
	return &University{}
}

func (u *University) AddCourse(c *Course) { u.courses = append(u.courses, c) }
func (u *University) AddStudent(s *Student) { u.students = append(u.students, s) }
func (u *University) AddProfessor(p *Professor) { u.professors = append(u.professors, p) }
func (u *University) AddStaffMember(m *StaffMember) { u.staff = append(u.staff, m) }

// HasSomeCourse reports whether any course is taught by p. Professors are
// compared by id.
func (u *University) HasSomeCourse(p *Professor) bool {
	for _, c := range u.courses {
		if c.Professor().Equal(p) {
			return true
		}
	}
	return false
}

// TakeSameCourse reports whether some course has both students on its roll book.
func (u *University) TakeSameCourse(s1, s2 *Student) bool {
	for _, c := range u.courses {
		if c.IsEnrolled(s1) && c.IsEnrolled(s2) {
			return true
		}
	}
	return false
}

// CoursesFor returns the courses whose roll book holds s.
func (u *University) CoursesFor(s *Student) []*Course {
	var out []*Course
	for _, c := range u.courses {
		if c.IsEnrolled(s) {
			out = append(out, c)
		}
	}
	return out
}

// CoursesTaughtBy returns the courses whose instructor is p.
func (u *University) CoursesTaughtBy(p *Professor) []*Course {
	var out []*Course
	for _, c := range u.courses {
		if c.Professor().Equal(p) {
			out = append(out, c)
		}
	}
	return out
}

// FindCourse returns the first course with the given code.
func (u *University) FindCourse(code string) (*Course, bool) {
	for _, c := range u.courses {
		if c.Code() == code {
			return c, true
		}
	}
	return nil, false
}

// FindStudent returns the first student with the given id.
func (u *University) FindStudent(id int64) (*Student, bool) {
	for _, s := range u.students {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

// FindProfessor returns the first professor with the given id.
func (u *University) FindProfessor(id int64) (*Professor, bool) {
	for _, p := range u.professors {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// FindStaffMember returns the first staff member with the given id.
func (u *University) FindStaffMember(id int64) (*StaffMember, bool) {
	for _, m := range u.staff {
		if m.ID == id {
			return m, true
		}
	}
	return nil, false
}

// Courses returns the courses in the order they were added.
func (u *University) Courses() []*Course {
	return append([]*Course(nil), u.courses...)
}

// Students returns the students in the order they were added.
func (u *University) Students() []*Student {
	return append([]*Student(nil), u.students...)
}

// Professors returns the professors in the order they were added.
func (u *University) Professors() []*Professor {
	return append([]*Professor(nil), u.professors...)
}

// Staff returns the staff members in the order they were added.
func (u *University) Staff() []*StaffMember {
	return append([]*StaffMember(nil), u.staff...)
}
