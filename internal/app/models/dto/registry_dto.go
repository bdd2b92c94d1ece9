package dto

import "github.com/yigit/rollbook/internal/app/models"

// CreateProfessorRequest represents professor registration data
type CreateProfessorRequest struct {
	ID         int64  `json:"id" binding:"required,gt=0" validate:"required,gt=0" yaml:"id"`
	FirstName  string `json:"firstName" binding:"required,notblank" validate:"required,notblank" yaml:"first_name"`
	LastName   string `json:"lastName" binding:"required,notblank" validate:"required,notblank" yaml:"last_name"`
	Department string `json:"department" yaml:"department"`
}

// ProfessorResponse represents a professor
type ProfessorResponse struct {
	ID         int64  `json:"id" example:"1"`
	FirstName  string `json:"firstName" example:"Bienvenido"`
	LastName   string `json:"lastName" example:"Velez"`
	Department string `json:"department" example:"CSE"`
}

// FromProfessor converts a models.Professor to a ProfessorResponse
func FromProfessor(p *models.Professor) ProfessorResponse {
	if p == nil {
		return ProfessorResponse{}
	}
	return ProfessorResponse{
		ID:         p.ID,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Department: p.Department,
	}
}

// ProfessorCoursesResponse lists the courses a professor teaches
type ProfessorCoursesResponse struct {
	ProfessorID   int64                   `json:"professorId"`
	HasSomeCourse bool                    `json:"hasSomeCourse"`
	Courses       []CourseSummaryResponse `json:"courses"`
}

// CreateStudentRequest represents student registration data
type CreateStudentRequest struct {
	ID        int64  `json:"id" binding:"required,gt=0" validate:"required,gt=0" yaml:"id"`
	FirstName string `json:"firstName" binding:"required,notblank" validate:"required,notblank" yaml:"first_name"`
	LastName  string `json:"lastName" binding:"required,notblank" validate:"required,notblank" yaml:"last_name"`
	Graduate  bool   `json:"graduate" yaml:"graduate"`
}

// StudentResponse represents a student
type StudentResponse struct {
	ID        int64  `json:"id" example:"123"`
	FirstName string `json:"firstName" example:"Ana"`
	LastName  string `json:"lastName" example:"Rivera"`
	Graduate  bool   `json:"graduate" example:"false"`
	Credits   int    `json:"credits" example:"4"`
	Display   string `json:"display" example:"[123] Ana Rivera"`
}

// FromStudent converts a models.Student to a StudentResponse
func FromStudent(s *models.Student) StudentResponse {
	if s == nil {
		return StudentResponse{}
	}
	return StudentResponse{
		ID:        s.ID,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Graduate:  s.IsGraduate(),
		Credits:   s.Credits(),
		Display:   s.String(),
	}
}

// StudentCoursesResponse lists the courses a student is enrolled in
type StudentCoursesResponse struct {
	StudentID int64                   `json:"studentId"`
	Courses   []CourseSummaryResponse `json:"courses"`
}

// SharedCourseResponse answers whether two students share a course
type SharedCourseResponse struct {
	StudentID      int64 `json:"studentId"`
	OtherStudentID int64 `json:"otherStudentId"`
	TakeSameCourse bool  `json:"takeSameCourse"`
}

// CreateStaffMemberRequest represents staff member registration data
type CreateStaffMemberRequest struct {
	ID         int64  `json:"id" binding:"required,gt=0" validate:"required,gt=0" yaml:"id"`
	Name       string `json:"name" binding:"required,notblank" validate:"required,notblank" yaml:"name"`
	Department string `json:"department" yaml:"department"`
}

// StaffMemberResponse represents a staff member
type StaffMemberResponse struct {
	ID         int64  `json:"id" example:"900"`
	Name       string `json:"name" example:"Luis Ortiz"`
	Department string `json:"department" example:"Registrar"`
}

// FromStaffMember converts a models.StaffMember to a StaffMemberResponse
func FromStaffMember(m *models.StaffMember) StaffMemberResponse {
	if m == nil {
		return StaffMemberResponse{}
	}
	return StaffMemberResponse{
		ID:         m.ID,
		Name:       m.Name,
		Department: m.Department,
	}
}
