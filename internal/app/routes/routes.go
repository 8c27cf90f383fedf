package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cohorttools/cohort-api/internal/app/controllers"
	"github.com/cohorttools/cohort-api/internal/app/models/dto"
	"github.com/cohorttools/cohort-api/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	cohortController *controllers.CohortController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// Student routes
	students := api.Group("/students")
	{
		students.GET("", studentController.GetAllStudents)
		students.GET("/cohort/:cohortId", studentController.GetStudentsByCohortID)
		students.GET("/:studentId", studentController.GetStudentByID)
		students.POST("", studentController.CreateStudent)
		students.PUT("/:studentId", studentController.UpdateStudent)
		students.DELETE("/:studentId", studentController.DeleteStudent)
	}

	// Cohort routes
	cohorts := api.Group("/cohorts")
	{
		cohorts.GET("", cohortController.GetAllCohorts)
		cohorts.GET("/:cohortId", cohortController.GetCohortByID)
		cohorts.POST("", cohortController.CreateCohort)
		cohorts.PUT("/:cohortId", cohortController.UpdateCohort)
		cohorts.DELETE("/:cohortId", cohortController.DeleteCohort)
	}

	// Auth routes
	auth := router.Group("/auth")
	{
		auth.POST("/signup", authController.Signup)
		auth.POST("/login", authController.Login)
		auth.GET("/verify", authMiddleware.JWTAuth(), authController.Verify)
	}

	// Health check endpoint
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Unmatched routes get an explicit 404 body
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Not Found"))
	})
}
