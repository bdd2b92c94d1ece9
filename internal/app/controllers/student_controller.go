package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/rollbook/internal/app/models/dto"
	"github.com/yigit/rollbook/internal/app/services"
	"github.com/yigit/rollbook/internal/middleware"
	"github.com/yigit/rollbook/internal/pkg/helpers"
)

// StudentController handles student-related operations
type StudentController struct {
	universityService services.UniversityService
}

// NewStudentController creates a new StudentController
func NewStudentController(universityService services.UniversityService) *StudentController {
	return &StudentController{
		universityService: universityService,
	}
}

// CreateStudent registers a student
// @Summary Register a student
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 409 {object} dto.APIResponse "Student already exists"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	req, ok := middleware.BindJSON[dto.CreateStudentRequest](ctx)
	if !ok {
		return
	}

	student, err := c.universityService.CreateStudent(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(student, "Student registered successfully"))
}

// GetStudent retrieves a student by ID
// @Summary Get student details
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	student, err := c.universityService.GetStudent(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, ""))
}

// ListStudents lists students in registration order
// @Summary List students
// @Tags students
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse}
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students, err := c.universityService.ListStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	items, info := helpers.Paginate(students, page, size)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.PaginatedResponse{Items: items, Pagination: info}, ""))
}

// GetStudentCourses lists the courses a student is enrolled in
// @Summary List a student's courses
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentCoursesResponse}
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{id}/courses [get]
func (c *StudentController) GetStudentCourses(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	courses, err := c.universityService.StudentCourses(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(courses, ""))
}

// GetSharedCourses reports whether two students take a course together
// @Summary Check whether two students share a course
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Param otherId path int true "Other student ID"
// @Success 200 {object} dto.APIResponse{data=dto.SharedCourseResponse}
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{id}/shared-courses/{otherId} [get]
func (c *StudentController) GetSharedCourses(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	otherID, ok := middleware.ParseIDParam(ctx, "otherId")
	if !ok {
		return
	}

	same, err := c.universityService.TakeSameCourse(ctx.Request.Context(), id, otherID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.SharedCourseResponse{
		StudentID:      id,
		OtherStudentID: otherID,
		TakeSameCourse: same,
	}, ""))
}
