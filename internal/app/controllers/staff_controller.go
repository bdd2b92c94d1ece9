package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/rollbook/internal/app/models/dto"
	"github.com/yigit/rollbook/internal/app/services"
	"github.com/yigit/rollbook/internal/middleware"
	"github.com/yigit/rollbook/internal/pkg/helpers"
)

// StaffController handles staff member operations
type StaffController struct {
	universityService services.UniversityService
}

// NewStaffController creates a new StaffController
func NewStaffController(universityService services.UniversityService) *StaffController {
	return &StaffController{universityService: universityService}
}

// CreateStaffMember registers a staff member
// @Summary Register a staff member
// @Tags staff
// @Accept json
// @Produce json
// @Param request body dto.CreateStaffMemberRequest true "Staff member information"
// @Success 201 {object} dto.APIResponse{data=dto.StaffMemberResponse}
// @Router /staff [post]
func (c *StaffController) CreateStaffMember(ctx *gin.Context) {
	req, ok := middleware.BindJSON[dto.CreateStaffMemberRequest](ctx)
	if !ok {
		return
	}

	member, err := c.universityService.CreateStaffMember(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(member, "Staff member registered successfully"))
}

// GetStaffMember retrieves a staff member by ID
// @Router /staff/{id} [get]
func (c *StaffController) GetStaffMember(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	member, err := c.universityService.GetStaffMember(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(member, ""))
}

// ListStaffMembers lists staff members
// @Router /staff [get]
func (c *StaffController) ListStaffMembers(ctx *gin.Context) {
	staff, err := c.universityService.ListStaffMembers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	items, info := helpers.Paginate(staff, page, size)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.PaginatedResponse{Items: items, Pagination: info}, ""))
}
