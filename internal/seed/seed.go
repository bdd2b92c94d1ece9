package seed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/yigit/rollbook/internal/app/models/dto"
	"github.com/yigit/rollbook/internal/app/services"
	"github.com/yigit/rollbook/internal/pkg/apperrors"
	"github.com/yigit/rollbook/internal/pkg/validation"
	"gopkg.in/yaml.v3"
)

// Catalog is the initial registry content loaded at start-up.
type Catalog struct {
	Professors  []dto.CreateProfessorRequest   `yaml:"professors" validate:"dive"`
	Students    []dto.CreateStudentRequest     `yaml:"students" validate:"dive"`
	Staff       []dto.CreateStaffMemberRequest `yaml:"staff" validate:"dive"`
	Courses     []dto.CreateCourseRequest      `yaml:"courses" validate:"dive"`
	Enrollments []Enrollment                   `yaml:"enrollments" validate:"dive"`
}

// Enrollment places one student on one course roll book, optionally with grades.
type Enrollment struct {
	Course    string       `yaml:"course" validate:"required,notblank"`
	StudentID int64        `yaml:"student_id" validate:"required,gt=0"`
	Grades    []GradeEntry `yaml:"grades" validate:"dive"`
}

// GradeEntry is one recorded grade. Order is preserved in the roll book.
type GradeEntry struct {
	Code  string  `yaml:"code" validate:"required,gradecode"`
	Value float64 `yaml:"value"`
}

// LoadCatalog reads and validates a YAML catalog. Unknown keys are rejected.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates catalog YAML.
func ParseCatalog(data []byte) (*Catalog, error) {
	var catalog Catalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	if err := validation.ValidateStruct(catalog); err != nil {
		return nil, fmt.Errorf("%w: catalog: %w", apperrors.ErrValidationFailed, err)
	}
	return &catalog, nil
}

// DefaultCatalog is used when no catalog file is configured or found.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Professors: []dto.CreateProfessorRequest{
			{ID: 1, FirstName: "Bienvenido", LastName: "Velez", Department: "CSE"},
			{ID: 2, FirstName: "Wilson", LastName: "Rivera", Department: "CSE"},
		},
		Students: []dto.CreateStudentRequest{
			{ID: 123, FirstName: "Ana", LastName: "Rivera"},
			{ID: 124, FirstName: "Luis", LastName: "Diaz"},
			{ID: 500, FirstName: "Carmen", LastName: "Ortiz", Graduate: true},
		},
		Staff: []dto.CreateStaffMemberRequest{
			{ID: 900, Name: "Luis Ortiz", Department: "Registrar"},
		},
		Courses: []dto.CreateCourseRequest{
			{Code: "CIIC4010", Title: "Advanced Programming", Credits: 4, ProfessorID: 1},
			{Code: "CIIC4020", Title: "Data Structures", Credits: 3, ProfessorID: 1},
			{Code: "CIIC8015", Title: "Mathematical Foundations of Computing", Credits: 3, ProfessorID: 2, GraduateOnly: true},
		},
		Enrollments: []Enrollment{
			{Course: "CIIC4010", StudentID: 123, Grades: []GradeEntry{{Code: "Exam1", Value: 87.5}}},
			{Course: "CIIC4010", StudentID: 124},
			{Course: "CIIC8015", StudentID: 500},
		},
	}
}

// CreateDefaultData loads the catalog at catalogPath, or the built-in one when
// the path is empty or missing, and registers it through svc. Entries that
// already exist are skipped; other failures are collected and returned together.
func CreateDefaultData(ctx context.Context, svc services.UniversityService, lgr zerolog.Logger, catalogPath string) error {
	catalog, err := resolveCatalog(catalogPath, lgr)
	if err != nil {
		return err
	}
	return Apply(ctx, svc, lgr, catalog)
}

func resolveCatalog(catalogPath string, lgr zerolog.Logger) (*Catalog, error) {
	if catalogPath == "" {
		lgr.Info().Msg("No catalog path configured, using built-in catalog")
		return DefaultCatalog(), nil
	}
	if _, err := os.Stat(catalogPath); errors.Is(err, os.ErrNotExist) {
		lgr.Warn().Str("path", catalogPath).Msg("Catalog file not found, using built-in catalog")
		return DefaultCatalog(), nil
	}
	lgr.Info().Str("path", catalogPath).Msg("Loading catalog")
	return LoadCatalog(catalogPath)
}

// Apply registers every catalog entry through svc.
func Apply(ctx context.Context, svc services.UniversityService, lgr zerolog.Logger, catalog *Catalog) error {
	lgr.Info().
		Int("professors", len(catalog.Professors)).
		Int("students", len(catalog.Students)).
		Int("courses", len(catalog.Courses)).
		Msg("Checking/Creating default data...")

	var finalErr error
	record := func(err error, what string) {
		if err == nil {
			return
		}
		if errors.Is(err, apperrors.ErrResourceAlreadyExists) {
			lgr.Debug().Str("entry", what).Msg("Already registered, skipping")
			return
		}
		lgr.Error().Err(err).Str("entry", what).Msg("Error creating default data")
		finalErr = errors.Join(finalErr, err)
	}

	for _, p := range catalog.Professors {
		_, err := svc.CreateProfessor(ctx, p)
		record(err, fmt.Sprintf("professor %d", p.ID))
	}
	for _, s := range catalog.Students {
		_, err := svc.CreateStudent(ctx, s)
		record(err, fmt.Sprintf("student %d", s.ID))
	}
	for _, m := range catalog.Staff {
		_, err := svc.CreateStaffMember(ctx, m)
		record(err, fmt.Sprintf("staff member %d", m.ID))
	}
	for _, c := range catalog.Courses {
		_, err := svc.CreateCourse(ctx, c)
		record(err, "course "+c.Code)
	}

	for _, e := range catalog.Enrollments {
		what := fmt.Sprintf("enrollment %s/%d", e.Course, e.StudentID)
		res, err := svc.Enroll(ctx, e.Course, e.StudentID)
		if err != nil {
			record(err, what)
			continue
		}
		if !res.Enrolled {
			lgr.Warn().Str("entry", what).Str("result", res.Result).Msg("Catalog enrollment not applied")
			continue
		}
		for _, g := range e.Grades {
			record(svc.SetGrade(ctx, e.Course, e.StudentID, g.Code, g.Value), what+" grade "+g.Code)
		}
	}

	if finalErr != nil {
		return finalErr
	}
	lgr.Info().Msg("Default data check/creation completed.")
	return nil
}
