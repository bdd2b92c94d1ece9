package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/rollbook/internal/app/controllers"
	"github.com/yigit/rollbook/internal/app/models/dto"
)

// Controllers groups the handlers mounted by SetupRouter.
type Controllers struct {
	Professor *controllers.ProfessorController
	Student   *controllers.StudentController
	Staff     *controllers.StaffController
	Course    *controllers.CourseController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrl Controllers) {
	// API version group
	v1 := router.Group("/api/v1")

	professors := v1.Group("/professors")
	{
		professors.POST("", ctrl.Professor.CreateProfessor)
		professors.GET("", ctrl.Professor.ListProfessors)
		professors.GET("/:id", ctrl.Professor.GetProfessor)
		professors.GET("/:id/courses", ctrl.Professor.GetProfessorCourses)
	}

	students := v1.Group("/students")
	{
		students.POST("", ctrl.Student.CreateStudent)
		students.GET("", ctrl.Student.ListStudents)
		students.GET("/:id", ctrl.Student.GetStudent)
		students.GET("/:id/courses", ctrl.Student.GetStudentCourses)
		students.GET("/:id/shared-courses/:otherId", ctrl.Student.GetSharedCourses)
	}

	staff := v1.Group("/staff")
	{
		staff.POST("", ctrl.Staff.CreateStaffMember)
		staff.GET("", ctrl.Staff.ListStaffMembers)
		staff.GET("/:id", ctrl.Staff.GetStaffMember)
	}

	courses := v1.Group("/courses")
	{
		courses.POST("", ctrl.Course.CreateCourse)
		courses.GET("", ctrl.Course.ListCourses)
		courses.GET("/:code", ctrl.Course.GetCourse)

		enrollments := courses.Group("/:code/enrollments")
		{
			enrollments.POST("", ctrl.Course.Enroll)
			enrollments.GET("/:studentId", ctrl.Course.GetEnrollment)
			enrollments.DELETE("/:studentId", ctrl.Course.Drop)
			enrollments.PUT("/:studentId/grades/:gradeCode", ctrl.Course.SetGrade)
			enrollments.GET("/:studentId/grades/:gradeCode", ctrl.Course.GetGrade)
		}
	}

	// Health check endpoint
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}, ""))
	})

	router.NoRoute(func(c *gin.Context) {
		detail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Route not found")
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(detail))
	})
}
