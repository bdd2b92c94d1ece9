package dto

import "github.com/yigit/rollbook/internal/app/models"

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Code         string `json:"code" binding:"required,notblank" validate:"required,notblank" yaml:"code"`
	Title        string `json:"title" binding:"required" validate:"required" yaml:"title"`
	Credits      int    `json:"credits" binding:"gte=0" validate:"gte=0" yaml:"credits"`
	ProfessorID  int64  `json:"professorId" binding:"required,gt=0" validate:"required,gt=0" yaml:"professor_id"`
	GraduateOnly bool   `json:"graduateOnly" yaml:"graduate_only"`
}

// CourseSummaryResponse represents basic course information
type CourseSummaryResponse struct {
	Code         string `json:"code" example:"CIIC4010"`
	Title        string `json:"title" example:"Advanced Programming"`
	Credits      int    `json:"credits" example:"4"`
	ProfessorID  int64  `json:"professorId" example:"1"`
	GraduateOnly bool   `json:"graduateOnly" example:"false"`
	NumStudents  int    `json:"numStudents" example:"12"`
	Capacity     int    `json:"capacity" example:"50"`
}

// FromCourseSummary converts a models.Course to a CourseSummaryResponse
func FromCourseSummary(c *models.Course) CourseSummaryResponse {
	if c == nil {
		return CourseSummaryResponse{}
	}
	resp := CourseSummaryResponse{
		Code:         c.Code(),
		Title:        c.Title(),
		Credits:      c.Credits(),
		GraduateOnly: c.IsGraduateCourse(),
		NumStudents:  c.NumStudents(),
		Capacity:     c.Capacity(),
	}
	if p := c.Professor(); p != nil {
		resp.ProfessorID = p.ID
	}
	return resp
}

// FromCourseSummaries converts a list of courses
func FromCourseSummaries(courses []*models.Course) []CourseSummaryResponse {
	out := make([]CourseSummaryResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, FromCourseSummary(c))
	}
	return out
}

// CourseResponse represents a course together with its roll book
type CourseResponse struct {
	CourseSummaryResponse
	Professor       *ProfessorResponse      `json:"professor,omitempty"`
	MaxGrades       int                     `json:"maxGrades" example:"25"`
	DuplicatePolicy string                  `json:"duplicatePolicy" example:"REJECT"`
	RollBook        []RollBookEntryResponse `json:"rollBook"`
}

// FromCourse converts a models.Course to a CourseResponse
func FromCourse(c *models.Course) CourseResponse {
	if c == nil {
		return CourseResponse{}
	}
	resp := CourseResponse{
		CourseSummaryResponse: FromCourseSummary(c),
		MaxGrades:             c.MaxGrades(),
		DuplicatePolicy:       string(c.Policy()),
		RollBook:              make([]RollBookEntryResponse, 0, c.NumStudents()),
	}
	if p := c.Professor(); p != nil {
		pr := FromProfessor(p)
		resp.Professor = &pr
	}
	for _, e := range c.RollBook() {
		resp.RollBook = append(resp.RollBook, FromRollBookEntry(e))
	}
	return resp
}

// GradeResponse represents one recorded grade
type GradeResponse struct {
	Code  string  `json:"code" example:"Exam1"`
	Value float64 `json:"value" example:"87.5"`
}

// RollBookEntryResponse represents one student's record in a course
type RollBookEntryResponse struct {
	StudentID int64           `json:"studentId" example:"123"`
	Student   string          `json:"student" example:"[123] Ana Rivera"`
	Grades    []GradeResponse `json:"grades"`
}

// FromRollBookEntry converts a models.RollBookEntry to a RollBookEntryResponse
func FromRollBookEntry(e *models.RollBookEntry) RollBookEntryResponse {
	if e == nil {
		return RollBookEntryResponse{}
	}
	resp := RollBookEntryResponse{
		StudentID: e.Student().ID,
		Student:   e.Student().String(),
		Grades:    make([]GradeResponse, 0, e.NumGrades()),
	}
	for _, g := range e.Grades() {
		resp.Grades = append(resp.Grades, GradeResponse{Code: g.Code(), Value: g.Value()})
	}
	return resp
}

// EnrollRequest represents an enrollment request
type EnrollRequest struct {
	StudentID int64 `json:"studentId" binding:"required,gt=0"`
}

// EnrollmentResponse reports the outcome of an enrollment attempt
type EnrollmentResponse struct {
	CourseCode string `json:"courseCode" example:"CIIC4010"`
	StudentID  int64  `json:"studentId" example:"123"`
	Result     string `json:"result" example:"enrolled" enums:"enrolled,rejectedNotGraduate,rejectedDuplicate"`
	Enrolled   bool   `json:"enrolled" example:"true"`
	Credits    int    `json:"credits" example:"4"`
}

// EnrollmentStatusResponse reports whether a student is on a course roll book
type EnrollmentStatusResponse struct {
	CourseCode string                 `json:"courseCode"`
	StudentID  int64                  `json:"studentId"`
	Enrolled   bool                   `json:"enrolled"`
	Entry      *RollBookEntryResponse `json:"entry,omitempty"`
}

// SetGradeRequest represents a grade assignment
type SetGradeRequest struct {
	Value *float64 `json:"value" binding:"required"`
}

// GradeLookupResponse reports a grade lookup. Found is false when nothing is recorded.
type GradeLookupResponse struct {
	CourseCode string  `json:"courseCode" example:"CIIC4010"`
	StudentID  int64   `json:"studentId" example:"123"`
	GradeCode  string  `json:"gradeCode" example:"Exam1"`
	Found      bool    `json:"found" example:"true"`
	Value      float64 `json:"value" example:"87.5"`
}
