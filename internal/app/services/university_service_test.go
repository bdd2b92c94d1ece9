package services

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/rollbook/internal/app/models"
	"github.com/yigit/rollbook/internal/app/models/dto"
	"github.com/yigit/rollbook/internal/pkg/apperrors"
)

func newTestService(t *testing.T, opts Options) UniversityService {
	t.Helper()
	svc := NewUniversityService(models.NewUniversity(), opts, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.CreateProfessor(ctx, dto.CreateProfessorRequest{ID: 1, FirstName: "Bienvenido", LastName: "Velez", Department: "CSE"})
	require.NoError(t, err)
	_, err = svc.CreateProfessor(ctx, dto.CreateProfessorRequest{ID: 2, FirstName: "Maria", LastName: "Lopez", Department: "ECE"})
	require.NoError(t, err)

	_, err = svc.CreateCourse(ctx, dto.CreateCourseRequest{Code: "CIIC4010", Title: "Advanced Programming", Credits: 4, ProfessorID: 1})
	require.NoError(t, err)

	_, err = svc.CreateStudent(ctx, dto.CreateStudentRequest{ID: 123, FirstName: "Ana", LastName: "Rivera"})
	require.NoError(t, err)
	return svc
}

func TestUniversityService_EnrollAndGrade(t *testing.T) {
	svc := newTestService(t, Options{})
	ctx := context.Background()

	resp, err := svc.Enroll(ctx, "CIIC4010", 123)
	require.NoError(t, err)
	assert.True(t, resp.Enrolled)
	assert.Equal(t, "enrolled", resp.Result)
	assert.Equal(t, 4, resp.Credits)

	lookup, err := svc.GetGrade(ctx, "CIIC4010", 123, "Quiz1")
	require.NoError(t, err)
	assert.False(t, lookup.Found)
	assert.Equal(t, models.GradeNotFound, lookup.Value)

	require.NoError(t, svc.SetGrade(ctx, "CIIC4010", 123, "Quiz1", 9.5))
	lookup, err = svc.GetGrade(ctx, "CIIC4010", 123, "Quiz1")
	require.NoError(t, err)
	assert.True(t, lookup.Found)
	assert.Equal(t, 9.5, lookup.Value)

	status, err := svc.EnrollmentStatus(ctx, "CIIC4010", 123)
	require.NoError(t, err)
	assert.True(t, status.Enrolled)
	require.NotNil(t, status.Entry)
	assert.Len(t, status.Entry.Grades, 1)

	student, err := svc.GetStudent(ctx, 123)
	require.NoError(t, err)
	assert.Equal(t, 4, student.Credits)
}

func TestUniversityService_ContractViolations(t *testing.T) {
	svc := newTestService(t, Options{Limits: models.Limits{MaxStudents: 1, MaxGrades: 1}})
	ctx := context.Background()
	_, err := svc.CreateStudent(ctx, dto.CreateStudentRequest{ID: 124, FirstName: "Luis", LastName: "Diaz"})
	require.NoError(t, err)

	err = svc.SetGrade(ctx, "CIIC4010", 123, "Exam1", 80)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotEnrolled)

	_, err = svc.Enroll(ctx, "CIIC4010", 123)
	require.NoError(t, err)

	_, err = svc.Enroll(ctx, "CIIC4010", 124)
	assert.ErrorIs(t, err, apperrors.ErrCourseFull)
	assert.True(t, apperrors.IsContractViolation(err))

	require.NoError(t, svc.SetGrade(ctx, "CIIC4010", 123, "Exam1", 80))
	err = svc.SetGrade(ctx, "CIIC4010", 123, "Exam2", 80)
	assert.ErrorIs(t, err, apperrors.ErrCapacityExceeded)

	err = svc.Drop(ctx, "CIIC4010", 124)
	assert.ErrorIs(t, err, apperrors.ErrNotEnrolled)

	require.NoError(t, svc.Drop(ctx, "CIIC4010", 123))
	course, err := svc.GetCourse(ctx, "CIIC4010")
	require.NoError(t, err)
	assert.Equal(t, 0, course.NumStudents)
}

func TestUniversityService_GraduateCourse(t *testing.T) {
	svc := newTestService(t, Options{})
	ctx := context.Background()

	_, err := svc.CreateCourse(ctx, dto.CreateCourseRequest{Code: "ICOM6005", Title: "Database Systems", Credits: 3, ProfessorID: 2, GraduateOnly: true})
	require.NoError(t, err)

	resp, err := svc.Enroll(ctx, "ICOM6005", 123)
	require.NoError(t, err)
	assert.False(t, resp.Enrolled)
	assert.Equal(t, string(models.EnrollResultRejectedNotGraduate), resp.Result)
	assert.Equal(t, 0, resp.Credits)

	course, err := svc.GetCourse(ctx, "ICOM6005")
	require.NoError(t, err)
	assert.True(t, course.GraduateOnly)
	assert.Equal(t, 0, course.NumStudents)
}

func TestUniversityService_DuplicateEnrollmentPolicy(t *testing.T) {
	ctx := context.Background()

	reject := newTestService(t, Options{})
	_, err := reject.Enroll(ctx, "CIIC4010", 123)
	require.NoError(t, err)
	resp, err := reject.Enroll(ctx, "CIIC4010", 123)
	require.NoError(t, err)
	assert.Equal(t, string(models.EnrollResultRejectedDuplicate), resp.Result)
	assert.Equal(t, 4, resp.Credits)

	allow := newTestService(t, Options{AllowDuplicateEnrollment: true})
	_, err = allow.Enroll(ctx, "CIIC4010", 123)
	require.NoError(t, err)
	resp, err = allow.Enroll(ctx, "CIIC4010", 123)
	require.NoError(t, err)
	assert.True(t, resp.Enrolled)
	assert.Equal(t, 8, resp.Credits)

	course, err := allow.GetCourse(ctx, "CIIC4010")
	require.NoError(t, err)
	assert.Equal(t, "ALLOW", course.DuplicatePolicy)
	assert.Equal(t, 2, course.NumStudents)
}

func TestUniversityService_Queries(t *testing.T) {
	svc := newTestService(t, Options{})
	ctx := context.Background()
	_, err := svc.CreateStudent(ctx, dto.CreateStudentRequest{ID: 124, FirstName: "Luis", LastName: "Diaz"})
	require.NoError(t, err)
	_, err = svc.CreateCourse(ctx, dto.CreateCourseRequest{Code: "CIIC4020", Title: "Data Structures", Credits: 3, ProfessorID: 1})
	require.NoError(t, err)

	has, err := svc.HasSomeCourse(ctx, 1)
	require.NoError(t, err)
	assert.True(t, has)
	has, err = svc.HasSomeCourse(ctx, 2)
	require.NoError(t, err)
	assert.False(t, has)

	_, err = svc.Enroll(ctx, "CIIC4010", 123)
	require.NoError(t, err)
	_, err = svc.Enroll(ctx, "CIIC4020", 124)
	require.NoError(t, err)

	same, err := svc.TakeSameCourse(ctx, 123, 124)
	require.NoError(t, err)
	assert.False(t, same)

	_, err = svc.Enroll(ctx, "CIIC4020", 123)
	require.NoError(t, err)
	same, err = svc.TakeSameCourse(ctx, 123, 124)
	require.NoError(t, err)
	assert.True(t, same)

	courses, err := svc.StudentCourses(ctx, 123)
	require.NoError(t, err)
	assert.Len(t, courses.Courses, 2)

	taught, err := svc.ProfessorCourses(ctx, 1)
	require.NoError(t, err)
	assert.True(t, taught.HasSomeCourse)
	assert.Len(t, taught.Courses, 2)
}

func TestUniversityService_LookupErrors(t *testing.T) {
	svc := newTestService(t, Options{})
	ctx := context.Background()

	_, err := svc.Enroll(ctx, "NOPE", 123)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)

	_, err = svc.Enroll(ctx, "CIIC4010", 999)
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	_, err = svc.CreateCourse(ctx, dto.CreateCourseRequest{Code: "X1", Title: "X", Credits: 1, ProfessorID: 77})
	assert.ErrorIs(t, err, apperrors.ErrProfessorNotFound)

	_, err = svc.CreateCourse(ctx, dto.CreateCourseRequest{Code: "CIIC4010", Title: "Again", Credits: 1, ProfessorID: 1})
	assert.ErrorIs(t, err, apperrors.ErrResourceAlreadyExists)

	_, err = svc.CreateStudent(ctx, dto.CreateStudentRequest{ID: 123, FirstName: "Dup", LastName: "Licate"})
	assert.ErrorIs(t, err, apperrors.ErrResourceAlreadyExists)

	_, err = svc.CreateStaffMember(ctx, dto.CreateStaffMemberRequest{ID: 0, Name: "Zero"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	_, err = svc.GetStaffMember(ctx, 5)
	assert.ErrorIs(t, err, apperrors.ErrStaffMemberNotFound)

	err = svc.SetGrade(ctx, "CIIC4010", 123, "  ", 1)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUniversityService_ConcurrentEnrollment(t *testing.T) {
	svc := NewUniversityService(nil, Options{}, zerolog.Nop())
	ctx := context.Background()
	_, err := svc.CreateProfessor(ctx, dto.CreateProfessorRequest{ID: 1, FirstName: "P", LastName: "Q"})
	require.NoError(t, err)
	_, err = svc.CreateCourse(ctx, dto.CreateCourseRequest{Code: "CIIC3015", Title: "Intro", Credits: 3, ProfessorID: 1})
	require.NoError(t, err)

	const n = 2 * models.MaxStudentsPerCourse
	for i := 1; i <= n; i++ {
		_, err := svc.CreateStudent(ctx, dto.CreateStudentRequest{ID: int64(i), FirstName: "S", LastName: "T"})
		require.NoError(t, err)
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		enrolled int
		full     int
	)
	for i := 1; i <= n; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			_, err := svc.Enroll(ctx, "CIIC3015", id)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				enrolled++
			case errors.Is(err, apperrors.ErrCourseFull):
				full++
			}
		}(int64(i))
	}
	wg.Wait()

	assert.Equal(t, models.MaxStudentsPerCourse, enrolled)
	assert.Equal(t, n-models.MaxStudentsPerCourse, full)

	course, err := svc.GetCourse(ctx, "CIIC3015")
	require.NoError(t, err)
	assert.Equal(t, models.MaxStudentsPerCourse, course.NumStudents)
}

func TestUniversityService_LogsThroughRequestLogger(t *testing.T) {
	svc := newTestService(t, Options{})

	var buf bytes.Buffer
	reqLogger := zerolog.New(&buf).With().Str("request_id", "req-1").Logger()
	ctx := reqLogger.WithContext(context.Background())

	_, err := svc.Enroll(ctx, "CIIC4010", 123)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"request_id":"req-1"`)
	assert.Contains(t, buf.String(), `"courseCode":"CIIC4010"`)
}
