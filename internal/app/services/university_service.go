package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/yigit/rollbook/internal/app/models"
	"github.com/yigit/rollbook/internal/app/models/dto"
	"github.com/yigit/rollbook/internal/pkg/apperrors"
	"github.com/yigit/rollbook/internal/pkg/validation"
)

// UniversityService defines the operations exposed over one university registry.
type UniversityService interface {
	CreateProfessor(ctx context.Context, req dto.CreateProfessorRequest) (*dto.ProfessorResponse, error)
	GetProfessor(ctx context.Context, id int64) (*dto.ProfessorResponse, error)
	ListProfessors(ctx context.Context) ([]dto.ProfessorResponse, error)
	ProfessorCourses(ctx context.Context, id int64) (*dto.ProfessorCoursesResponse, error)
	HasSomeCourse(ctx context.Context, professorID int64) (bool, error)

	CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*dto.StudentResponse, error)
	GetStudent(ctx context.Context, id int64) (*dto.StudentResponse, error)
	ListStudents(ctx context.Context) ([]dto.StudentResponse, error)
	StudentCourses(ctx context.Context, id int64) (*dto.StudentCoursesResponse, error)
	TakeSameCourse(ctx context.Context, studentID, otherStudentID int64) (bool, error)

	CreateStaffMember(ctx context.Context, req dto.CreateStaffMemberRequest) (*dto.StaffMemberResponse, error)
	GetStaffMember(ctx context.Context, id int64) (*dto.StaffMemberResponse, error)
	ListStaffMembers(ctx context.Context) ([]dto.StaffMemberResponse, error)

	CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*dto.CourseResponse, error)
	GetCourse(ctx context.Context, code string) (*dto.CourseResponse, error)
	ListCourses(ctx context.Context) ([]dto.CourseSummaryResponse, error)

	Enroll(ctx context.Context, courseCode string, studentID int64) (*dto.EnrollmentResponse, error)
	Drop(ctx context.Context, courseCode string, studentID int64) error
	EnrollmentStatus(ctx context.Context, courseCode string, studentID int64) (*dto.EnrollmentStatusResponse, error)
	SetGrade(ctx context.Context, courseCode string, studentID int64, gradeCode string, value float64) error
	GetGrade(ctx context.Context, courseCode string, studentID int64, gradeCode string) (*dto.GradeLookupResponse, error)
}

// Options configures how the service builds courses.
type Options struct {
	Limits                   models.Limits
	AllowDuplicateEnrollment bool
}

// universityServiceImpl implements UniversityService. One mutex guards the
// whole university: enrollment and grading mutate courses and students that
// are reachable from several places in the aggregate.
type universityServiceImpl struct {
	mu         sync.Mutex
	university *models.University
	opts       Options
	logger     zerolog.Logger
}

// NewUniversityService creates a new university service instance
func NewUniversityService(university *models.University, opts Options, lgr zerolog.Logger) UniversityService {
	if university == nil {
		university = models.NewUniversity()
	}
	return &universityServiceImpl{
		university: university,
		opts:       opts,
		logger:     lgr,
	}
}

func (s *universityServiceImpl) log(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &s.logger
}

func validateID(kind string, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s ID must be positive", apperrors.ErrValidationFailed, kind)
	}
	return nil
}

func notFound(sentinel error, format string, args ...interface{}) error {
	return apperrors.NewCustomError(fmt.Errorf("%w: %w", apperrors.ErrResourceNotFound, sentinel), fmt.Sprintf(format, args...))
}

// --- lookups, caller holds s.mu ---

func (s *universityServiceImpl) course(code string) (*models.Course, error) {
	c, ok := s.university.FindCourse(code)
	if !ok {
		return nil, notFound(apperrors.ErrCourseNotFound, "course %s not found", code)
	}
	return c, nil
}

func (s *universityServiceImpl) student(id int64) (*models.Student, error) {
	st, ok := s.university.FindStudent(id)
	if !ok {
		return nil, notFound(apperrors.ErrStudentNotFound, "student %d not found", id)
	}
	return st, nil
}

func (s *universityServiceImpl) professor(id int64) (*models.Professor, error) {
	p, ok := s.university.FindProfessor(id)
	if !ok {
		return nil, notFound(apperrors.ErrProfessorNotFound, "professor %d not found", id)
	}
	return p, nil
}

func (s *universityServiceImpl) courseAndStudent(code string, studentID int64) (*models.Course, *models.Student, error) {
	c, err := s.course(code)
	if err != nil {
		return nil, nil, err
	}
	st, err := s.student(studentID)
	if err != nil {
		return nil, nil, err
	}
	return c, st, nil
}

// --- professors ---

// CreateProfessor registers a professor under a new id
func (s *universityServiceImpl) CreateProfessor(ctx context.Context, req dto.CreateProfessorRequest) (*dto.ProfessorResponse, error) {
	if err := validateID("professor", req.ID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.university.FindProfessor(req.ID); ok {
		return nil, fmt.Errorf("%w: professor %d already registered", apperrors.ErrResourceAlreadyExists, req.ID)
	}

	p := models.NewProfessor(req.ID, strings.TrimSpace(req.FirstName), strings.TrimSpace(req.LastName), strings.TrimSpace(req.Department))
	s.university.AddProfessor(p)
	s.log(ctx).Info().Int64("professorId", p.ID).Str("department", p.Department).Msg("Professor registered")

	resp := dto.FromProfessor(p)
	return &resp, nil
}

// GetProfessor retrieves a professor by ID
func (s *universityServiceImpl) GetProfessor(ctx context.Context, id int64) (*dto.ProfessorResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.professor(id)
	if err != nil {
		return nil, err
	}
	resp := dto.FromProfessor(p)
	return &resp, nil
}

// ListProfessors retrieves all professors in registration order
func (s *universityServiceImpl) ListProfessors(ctx context.Context) ([]dto.ProfessorResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	professors := s.university.Professors()
	out := make([]dto.ProfessorResponse, 0, len(professors))
	for _, p := range professors {
		out = append(out, dto.FromProfessor(p))
	}
	return out, nil
}

// ProfessorCourses lists the courses taught by a professor
func (s *universityServiceImpl) ProfessorCourses(ctx context.Context, id int64) (*dto.ProfessorCoursesResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.professor(id)
	if err != nil {
		return nil, err
	}
	return &dto.ProfessorCoursesResponse{
		ProfessorID:   p.ID,
		HasSomeCourse: s.university.HasSomeCourse(p),
		Courses:       dto.FromCourseSummaries(s.university.CoursesTaughtBy(p)),
	}, nil
}

// HasSomeCourse reports whether the professor teaches any course
func (s *universityServiceImpl) HasSomeCourse(ctx context.Context, professorID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.professor(professorID)
	if err != nil {
		return false, err
	}
	return s.university.HasSomeCourse(p), nil
}

// --- students ---

// CreateStudent registers a student under a new id
func (s *universityServiceImpl) CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	if err := validateID("student", req.ID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.university.FindStudent(req.ID); ok {
		return nil, fmt.Errorf("%w: student %d already registered", apperrors.ErrResourceAlreadyExists, req.ID)
	}

	st := models.NewStudent(req.ID, strings.TrimSpace(req.FirstName), strings.TrimSpace(req.LastName), req.Graduate)
	s.university.AddStudent(st)
	s.log(ctx).Info().Int64("studentId", st.ID).Bool("graduate", st.IsGraduate()).Msg("Student registered")

	resp := dto.FromStudent(st)
	return &resp, nil
}

// GetStudent retrieves a student by ID
func (s *universityServiceImpl) GetStudent(ctx context.Context, id int64) (*dto.StudentResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.student(id)
	if err != nil {
		return nil, err
	}
	resp := dto.FromStudent(st)
	return &resp, nil
}

// ListStudents retrieves all students in registration order
func (s *universityServiceImpl) ListStudents(ctx context.Context) ([]dto.StudentResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	students := s.university.Students()
	out := make([]dto.StudentResponse, 0, len(students))
	for _, st := range students {
		out = append(out, dto.FromStudent(st))
	}
	return out, nil
}

// StudentCourses lists the courses whose roll book holds the student
func (s *universityServiceImpl) StudentCourses(ctx context.Context, id int64) (*dto.StudentCoursesResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.student(id)
	if err != nil {
		return nil, err
	}
	return &dto.StudentCoursesResponse{
		StudentID: st.ID,
		Courses:   dto.FromCourseSummaries(s.university.CoursesFor(st)),
	}, nil
}

// TakeSameCourse reports whether two students share at least one course
func (s *universityServiceImpl) TakeSameCourse(ctx context.Context, studentID, otherStudentID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.student(studentID)
	if err != nil {
		return false, err
	}
	b, err := s.student(otherStudentID)
	if err != nil {
		return false, err
	}
	return s.university.TakeSameCourse(a, b), nil
}

// --- staff ---

// CreateStaffMember registers a staff member under a new id
func (s *universityServiceImpl) CreateStaffMember(ctx context.Context, req dto.CreateStaffMemberRequest) (*dto.StaffMemberResponse, error) {
	if err := validateID("staff member", req.ID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.university.FindStaffMember(req.ID); ok {
		return nil, fmt.Errorf("%w: staff member %d already registered", apperrors.ErrResourceAlreadyExists, req.ID)
	}

	m := models.NewStaffMember(req.ID, strings.TrimSpace(req.Name), strings.TrimSpace(req.Department))
	s.university.AddStaffMember(m)
	s.log(ctx).Info().Int64("staffId", m.ID).Str("department", m.Department).Msg("Staff member registered")

	resp := dto.FromStaffMember(m)
	return &resp, nil
}

// GetStaffMember retrieves a staff member by ID
func (s *universityServiceImpl) GetStaffMember(ctx context.Context, id int64) (*dto.StaffMemberResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.university.FindStaffMember(id)
	if !ok {
		return nil, notFound(apperrors.ErrStaffMemberNotFound, "staff member %d not found", id)
	}
	resp := dto.FromStaffMember(m)
	return &resp, nil
}

// ListStaffMembers retrieves all staff members in registration order
func (s *universityServiceImpl) ListStaffMembers(ctx context.Context) ([]dto.StaffMemberResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	staff := s.university.Staff()
	out := make([]dto.StaffMemberResponse, 0, len(staff))
	for _, m := range staff {
		out = append(out, dto.FromStaffMember(m))
	}
	return out, nil
}

// --- courses ---

// CreateCourse creates a course taught by an existing professor
func (s *universityServiceImpl) CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	code := strings.TrimSpace(req.Code)
	if code == "" {
		return nil, fmt.Errorf("%w: course code cannot be empty", apperrors.ErrValidationFailed)
	}
	if req.Credits < 0 {
		return nil, fmt.Errorf("%w: credits cannot be negative", apperrors.ErrValidationFailed)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.university.FindCourse(code); ok {
		return nil, fmt.Errorf("%w: course %s already exists", apperrors.ErrResourceAlreadyExists, code)
	}

	p, err := s.professor(req.ProfessorID)
	if err != nil {
		return nil, err
	}

	kind := models.CourseKindStandard
	if req.GraduateOnly {
		kind = models.CourseKindGraduateOnly
	}

	c := models.NewCourseWithLimits(kind, code, strings.TrimSpace(req.Title), req.Credits, p, s.opts.Limits)
	if s.opts.AllowDuplicateEnrollment {
		c.SetDuplicatePolicy(models.DuplicateAllow)
	}
	s.university.AddCourse(c)

	s.log(ctx).Info().
		Str("courseCode", c.Code()).
		Str("kind", string(c.Kind())).
		Int("capacity", c.Capacity()).
		Int64("professorId", p.ID).
		Msg("Course created")

	resp := dto.FromCourse(c)
	return &resp, nil
}

// GetCourse retrieves a course and its roll book
func (s *universityServiceImpl) GetCourse(ctx context.Context, code string) (*dto.CourseResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.course(code)
	if err != nil {
		return nil, err
	}
	resp := dto.FromCourse(c)
	return &resp, nil
}

// ListCourses retrieves all courses in creation order
func (s *universityServiceImpl) ListCourses(ctx context.Context) ([]dto.CourseSummaryResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return dto.FromCourseSummaries(s.university.Courses()), nil
}

// --- enrollment and grading ---

// Enroll adds a student to a course roll book. Rejections for graduate-only
// courses and duplicates are reported in the response, not as errors.
func (s *universityServiceImpl) Enroll(ctx context.Context, courseCode string, studentID int64) (*dto.EnrollmentResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, st, err := s.courseAndStudent(courseCode, studentID)
	if err != nil {
		return nil, err
	}

	result, err := c.Enroll(st)
	if err != nil {
		s.log(ctx).Error().Err(err).
			Str("courseCode", c.Code()).
			Int64("studentId", st.ID).
			Int("capacity", c.Capacity()).
			Msg("Enrollment refused: course is full")
		return nil, err
	}

	evt := s.log(ctx).Info()
	if result != models.EnrollResultEnrolled {
		evt = s.log(ctx).Warn()
	}
	evt.Str("courseCode", c.Code()).
		Int64("studentId", st.ID).
		Str("result", string(result)).
		Int("numStudents", c.NumStudents()).
		Msg("Enrollment processed")

	return &dto.EnrollmentResponse{
		CourseCode: c.Code(),
		StudentID:  st.ID,
		Result:     string(result),
		Enrolled:   result == models.EnrollResultEnrolled,
		Credits:    st.Credits(),
	}, nil
}

// Drop removes a student from a course roll book
func (s *universityServiceImpl) Drop(ctx context.Context, courseCode string, studentID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, st, err := s.courseAndStudent(courseCode, studentID)
	if err != nil {
		return err
	}

	if err := st.Drop(c); err != nil {
		s.log(ctx).Error().Err(err).Str("courseCode", c.Code()).Int64("studentId", st.ID).Msg("Drop refused")
		return err
	}

	s.log(ctx).Info().Str("courseCode", c.Code()).Int64("studentId", st.ID).Int("numStudents", c.NumStudents()).Msg("Student dropped course")
	return nil
}

// EnrollmentStatus reports whether a student is enrolled and their grades so far
func (s *universityServiceImpl) EnrollmentStatus(ctx context.Context, courseCode string, studentID int64) (*dto.EnrollmentStatusResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, st, err := s.courseAndStudent(courseCode, studentID)
	if err != nil {
		return nil, err
	}

	resp := &dto.EnrollmentStatusResponse{
		CourseCode: c.Code(),
		StudentID:  st.ID,
		Enrolled:   c.IsEnrolled(st),
	}
	if e, ok := c.FindRollBookEntry(st.ID); ok {
		entry := dto.FromRollBookEntry(e)
		resp.Entry = &entry
	}
	return resp, nil
}

// SetGrade records a grade for an enrolled student
func (s *universityServiceImpl) SetGrade(ctx context.Context, courseCode string, studentID int64, gradeCode string, value float64) error {
	if !validation.ValidGradeCode(gradeCode) {
		return fmt.Errorf("%w: invalid grade code %q", apperrors.ErrValidationFailed, gradeCode)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, st, err := s.courseAndStudent(courseCode, studentID)
	if err != nil {
		return err
	}

	if err := c.SetGrade(st, gradeCode, value); err != nil {
		s.log(ctx).Error().Err(err).
			Str("courseCode", c.Code()).
			Int64("studentId", st.ID).
			Str("gradeCode", gradeCode).
			Msg("Grade assignment refused")
		return err
	}

	s.log(ctx).Info().
		Str("courseCode", c.Code()).
		Int64("studentId", st.ID).
		Str("gradeCode", gradeCode).
		Float64("value", value).
		Msg("Grade recorded")
	return nil
}

// GetGrade looks up a grade. A missing grade is reported with Found=false.
func (s *universityServiceImpl) GetGrade(ctx context.Context, courseCode string, studentID int64, gradeCode string) (*dto.GradeLookupResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, st, err := s.courseAndStudent(courseCode, studentID)
	if err != nil {
		return nil, err
	}

	value, found := c.FindGrade(st, gradeCode)
	return &dto.GradeLookupResponse{
		CourseCode: c.Code(),
		StudentID:  st.ID,
		GradeCode:  gradeCode,
		Found:      found,
		Value:      value,
	}, nil
}
