package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/rollbook/internal/app/models/dto"
	"github.com/yigit/rollbook/internal/app/services"
	"github.com/yigit/rollbook/internal/middleware"
	"github.com/yigit/rollbook/internal/pkg/helpers"
)

// ProfessorController handles professor-related operations
type ProfessorController struct {
	universityService services.UniversityService
}

// NewProfessorController creates a new ProfessorController
func NewProfessorController(universityService services.UniversityService) *ProfessorController {
	return &ProfessorController{
		universityService: universityService,
	}
}

// CreateProfessor registers a professor
// @Summary Register a professor
// @Tags professors
// @Accept json
// @Produce json
// @Param request body dto.CreateProfessorRequest true "Professor information"
// @Success 201 {object} dto.APIResponse{data=dto.ProfessorResponse}
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 409 {object} dto.APIResponse "Professor already exists"
// @Router /professors [post]
func (c *ProfessorController) CreateProfessor(ctx *gin.Context) {
	req, ok := middleware.BindJSON[dto.CreateProfessorRequest](ctx)
	if !ok {
		return
	}

	professor, err := c.universityService.CreateProfessor(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(professor, "Professor registered successfully"))
}

// GetProfessor retrieves a professor by ID
// @Summary Get professor details
// @Tags professors
// @Produce json
// @Param id path int true "Professor ID"
// @Success 200 {object} dto.APIResponse{data=dto.ProfessorResponse}
// @Failure 404 {object} dto.APIResponse "Professor not found"
// @Router /professors/{id} [get]
func (c *ProfessorController) GetProfessor(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	professor, err := c.universityService.GetProfessor(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(professor, ""))
}

// ListProfessors lists professors in registration order
// @Summary List professors
// @Tags professors
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse}
// @Router /professors [get]
func (c *ProfessorController) ListProfessors(ctx *gin.Context) {
	professors, err := c.universityService.ListProfessors(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	items, info := helpers.Paginate(professors, page, size)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.PaginatedResponse{Items: items, Pagination: info}, ""))
}

// GetProfessorCourses lists the courses a professor teaches
// @Summary List courses taught by a professor
// @Tags professors
// @Produce json
// @Param id path int true "Professor ID"
// @Success 200 {object} dto.APIResponse{data=dto.ProfessorCoursesResponse}
// @Failure 404 {object} dto.APIResponse "Professor not found"
// @Router /professors/{id}/courses [get]
func (c *ProfessorController) GetProfessorCourses(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	courses, err := c.universityService.ProfessorCourses(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(courses, ""))
}
