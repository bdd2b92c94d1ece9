package bootstrap

import (
	"context"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/rollbook/internal/app/controllers"
	appModels "github.com/yigit/rollbook/internal/app/models"
	appRoutes "github.com/yigit/rollbook/internal/app/routes"
	appServices "github.com/yigit/rollbook/internal/app/services"
	"github.com/yigit/rollbook/internal/config"
	appMiddleware "github.com/yigit/rollbook/internal/middleware"
	"github.com/yigit/rollbook/internal/pkg/logger"
	"github.com/yigit/rollbook/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	UniversityService   appServices.UniversityService // Interface type
	ProfessorController *appControllers.ProfessorController
	StudentController   *appControllers.StudentController
	StaffController     *appControllers.StaffController
	CourseController    *appControllers.CourseController
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// The config file path can be overridden with CONFIG_PATH.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := config.GetEnv("CONFIG_PATH", filepath.Join("configs", "config.yaml"))
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.ConfigFromStrings(cfg.Logging.Level, cfg.Logging.Format))
	lgr.Info().
		Str("logLevel", cfg.Logging.Level).
		Str("logFormat", cfg.Logging.Format).
		Str("configPath", configPath).
		Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies initializes the university registry, services, and controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	opts := appServices.Options{
		Limits: appModels.Limits{
			MaxStudents: cfg.Registry.MaxStudentsPerCourse,
			MaxGrades:   cfg.Registry.MaxGradesPerStudent,
		},
		AllowDuplicateEnrollment: cfg.Registry.AllowDuplicateEnrollment,
	}
	deps.UniversityService = appServices.NewUniversityService(appModels.NewUniversity(), opts, lgr)

	lgr.Info().
		Int("maxStudentsPerCourse", opts.Limits.MaxStudents).
		Int("maxGradesPerStudent", opts.Limits.MaxGrades).
		Bool("allowDuplicateEnrollment", opts.AllowDuplicateEnrollment).
		Msg("University registry initialized")

	if cfg.Seed.Enabled {
		if err := seed.CreateDefaultData(context.Background(), deps.UniversityService, lgr, cfg.Seed.CatalogPath); err != nil {
			// Log the error but don't fail the startup
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	deps.ProfessorController = appControllers.NewProfessorController(deps.UniversityService)
	deps.StudentController = appControllers.NewStudentController(deps.UniversityService)
	deps.StaffController = appControllers.NewStaffController(deps.UniversityService)
	deps.CourseController = appControllers.NewCourseController(deps.UniversityService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	appMiddleware.RegisterValidators()

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr), appMiddleware.Recovery())

	appRoutes.SetupRouter(router, appRoutes.Controllers{
		Professor: deps.ProfessorController,
		Student:   deps.StudentController,
		Staff:     deps.StaffController,
		Course:    deps.CourseController,
	})

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
