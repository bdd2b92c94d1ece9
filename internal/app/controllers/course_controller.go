package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/rollbook/internal/app/models/dto"
	"github.com/yigit/rollbook/internal/app/services"
	"github.com/yigit/rollbook/internal/middleware"
	"github.com/yigit/rollbook/internal/pkg/helpers"
)

// CourseController handles courses, enrollments and grades
type CourseController struct {
	universityService services.UniversityService
}

// NewCourseController creates a new CourseController
func NewCourseController(universityService services.UniversityService) *CourseController {
	return &CourseController{
		universityService: universityService,
	}
}

// CreateCourse creates a course
// @Summary Create a course
// @Description Creates a standard or graduate-only course taught by an existing professor
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=dto.CourseResponse}
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Professor not found"
// @Failure 409 {object} dto.APIResponse "Course already exists"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	req, ok := middleware.BindJSON[dto.CreateCourseRequest](ctx)
	if !ok {
		return
	}

	course, err := c.universityService.CreateCourse(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(course, "Course created successfully"))
}

// GetCourse retrieves a course with its roll book
// @Summary Get course details
// @Tags courses
// @Produce json
// @Param code path string true "Course code"
// @Success 200 {object} dto.APIResponse{data=dto.CourseResponse}
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Router /courses/{code} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	course, err := c.universityService.GetCourse(ctx.Request.Context(), ctx.Param("code"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(course, ""))
}

// ListCourses lists courses in creation order
// @Summary List courses
// @Tags courses
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse}
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.universityService.ListCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	items, info := helpers.Paginate(courses, page, size)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.PaginatedResponse{Items: items, Pagination: info}, ""))
}

// Enroll adds a student to a course
// @Summary Enroll a student
// @Description Rejections for graduate-only courses and duplicates return 200 with enrolled=false
// @Tags enrollments
// @Accept json
// @Produce json
// @Param code path string true "Course code"
// @Param request body dto.EnrollRequest true "Student to enroll"
// @Success 200 {object} dto.APIResponse{data=dto.EnrollmentResponse}
// @Failure 404 {object} dto.APIResponse "Course or student not found"
// @Failure 409 {object} dto.APIResponse "Course is full"
// @Router /courses/{code}/enrollments [post]
func (c *CourseController) Enroll(ctx *gin.Context) {
	req, ok := middleware.BindJSON[dto.EnrollRequest](ctx)
	if !ok {
		return
	}

	result, err := c.universityService.Enroll(ctx.Request.Context(), ctx.Param("code"), req.StudentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := "Student enrolled successfully"
	if !result.Enrolled {
		message = "Enrollment rejected"
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result, message))
}

// Drop removes a student from a course
// @Summary Drop a course
// @Tags enrollments
// @Produce json
// @Param code path string true "Course code"
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Course or student not found"
// @Failure 409 {object} dto.APIResponse "Student is not enrolled"
// @Router /courses/{code}/enrollments/{studentId} [delete]
func (c *CourseController) Drop(ctx *gin.Context) {
	studentID, ok := middleware.ParseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	if err := c.universityService.Drop(ctx.Request.Context(), ctx.Param("code"), studentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Course dropped successfully"))
}

// GetEnrollment reports whether a student is enrolled and their grades
// @Summary Get enrollment status
// @Tags enrollments
// @Produce json
// @Param code path string true "Course code"
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.EnrollmentStatusResponse}
// @Router /courses/{code}/enrollments/{studentId} [get]
func (c *CourseController) GetEnrollment(ctx *gin.Context) {
	studentID, ok := middleware.ParseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	status, err := c.universityService.EnrollmentStatus(ctx.Request.Context(), ctx.Param("code"), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(status, ""))
}

// SetGrade records a grade for an enrolled student
// @Summary Record a grade
// @Tags grades
// @Accept json
// @Produce json
// @Param code path string true "Course code"
// @Param studentId path int true "Student ID"
// @Param gradeCode path string true "Grade code"
// @Param request body dto.SetGradeRequest true "Grade value"
// @Success 200 {object} dto.APIResponse{data=dto.GradeLookupResponse}
// @Failure 409 {object} dto.APIResponse "Student not enrolled or grade limit reached"
// @Router /courses/{code}/enrollments/{studentId}/grades/{gradeCode} [put]
func (c *CourseController) SetGrade(ctx *gin.Context) {
	studentID, ok := middleware.ParseIDParam(ctx, "studentId")
	if !ok {
		return
	}
	req, ok := middleware.BindJSON[dto.SetGradeRequest](ctx)
	if !ok {
		return
	}

	code, gradeCode := ctx.Param("code"), ctx.Param("gradeCode")
	if err := c.universityService.SetGrade(ctx.Request.Context(), code, studentID, gradeCode, *req.Value); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.GradeLookupResponse{
		CourseCode: code,
		StudentID:  studentID,
		GradeCode:  gradeCode,
		Found:      true,
		Value:      *req.Value,
	}, "Grade recorded successfully"))
}

// GetGrade looks up a grade. A missing grade returns found=false.
// @Summary Look up a grade
// @Tags grades
// @Produce json
// @Param code path string true "Course code"
// @Param studentId path int true "Student ID"
// @Param gradeCode path string true "Grade code"
// @Success 200 {object} dto.APIResponse{data=dto.GradeLookupResponse}
// @Router /courses/{code}/enrollments/{studentId}/grades/{gradeCode} [get]
func (c *CourseController) GetGrade(ctx *gin.Context) {
	studentID, ok := middleware.ParseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	grade, err := c.universityService.GetGrade(ctx.Request.Context(), ctx.Param("code"), studentID, ctx.Param("gradeCode"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(grade, ""))
}
