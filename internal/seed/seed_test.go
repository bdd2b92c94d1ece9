package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/rollbook/internal/app/models/dto"
	"github.com/yigit/rollbook/internal/app/services"
	"github.com/yigit/rollbook/internal/pkg/apperrors"
)

const sampleCatalog = `
professors:
  - id: 1
    first_name: Bienvenido
    last_name: Velez
students:
  - id: 123
    first_name: Ana
    last_name: Rivera
courses:
  - code: CIIC4010
    title: Advanced Programming
    credits: 4
    professor_id: 1
enrollments:
  - course: CIIC4010
    student_id: 123
    grades:
      - code: Exam1
        value: 87.5
`

func newService() services.UniversityService {
	return services.NewUniversityService(nil, services.Options{}, zerolog.Nop())
}

func TestParseCatalog(t *testing.T) {
	catalog, err := ParseCatalog([]byte(sampleCatalog))
	require.NoError(t, err)
	require.Len(t, catalog.Professors, 1)
	assert.Equal(t, "Velez", catalog.Professors[0].LastName)
	require.Len(t, catalog.Enrollments, 1)
	assert.Equal(t, "Exam1", catalog.Enrollments[0].Grades[0].Code)
}

func TestParseCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown key", "professors:\n  - id: 1\n    first_name: A\n    last_name: B\n    office: 101\n"},
		{"missing id", "students:\n  - first_name: A\n    last_name: B\n"},
		{"blank name", "students:\n  - id: 5\n    first_name: \"  \"\n    last_name: B\n"},
		{"bad grade code", "enrollments:\n  - course: X\n    student_id: 1\n    grades:\n      - code: \"a/b\"\n        value: 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}

	_, err := ParseCatalog([]byte("students:\n  - id: 0\n    first_name: A\n    last_name: B\n"))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateDefaultData_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0o600))

	svc := newService()
	ctx := context.Background()
	require.NoError(t, CreateDefaultData(ctx, svc, zerolog.Nop(), path))

	grade, err := svc.GetGrade(ctx, "CIIC4010", 123, "Exam1")
	require.NoError(t, err)
	assert.True(t, grade.Found)
	assert.Equal(t, 87.5, grade.Value)

	student, err := svc.GetStudent(ctx, 123)
	require.NoError(t, err)
	assert.Equal(t, 4, student.Credits)
}

func TestCreateDefaultData_MissingFileUsesDefaults(t *testing.T) {
	svc := newService()
	ctx := context.Background()
	require.NoError(t, CreateDefaultData(ctx, svc, zerolog.Nop(), filepath.Join(t.TempDir(), "none.yaml")))

	courses, err := svc.ListCourses(ctx)
	require.NoError(t, err)
	assert.Len(t, courses, len(DefaultCatalog().Courses))

	course, err := svc.GetCourse(ctx, "CIIC8015")
	require.NoError(t, err)
	assert.True(t, course.GraduateOnly)
	assert.Equal(t, 1, course.NumStudents)
}

func TestApply_Idempotent(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	require.NoError(t, Apply(ctx, svc, zerolog.Nop(), DefaultCatalog()))
	require.NoError(t, Apply(ctx, svc, zerolog.Nop(), DefaultCatalog()))

	course, err := svc.GetCourse(ctx, "CIIC4010")
	require.NoError(t, err)
	assert.Equal(t, 2, course.NumStudents)
}

func TestApply_CollectsErrors(t *testing.T) {
	catalog := &Catalog{
		Courses:     []dto.CreateCourseRequest{{Code: "X1", Title: "Orphan", Credits: 3, ProfessorID: 42}},
		Enrollments: []Enrollment{{Course: "X1", StudentID: 1}},
	}

	err := Apply(context.Background(), newService(), zerolog.Nop(), catalog)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrProfessorNotFound)
	assert.ErrorIs(t, err, apperrors.ErrCourseNotFound)
}
