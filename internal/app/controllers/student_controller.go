package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cohorttools/cohort-api/internal/app/models"
	"github.com/cohorttools/cohort-api/internal/app/models/dto"
	"github.com/cohorttools/cohort-api/internal/app/services"
	"github.com/cohorttools/cohort-api/internal/middleware"
)

// StudentController handles student CRUD operations
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// GetAllStudents lists all students
// @Summary List students
// @Description Retrieves all students, each with its cohort reference resolved
// @Tags students
// @Produce json
// @Success 200 {array} models.Student "Students retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.GetAllStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// GetStudentsByCohortID lists students belonging to one cohort
// @Summary List students of a cohort
// @Description Retrieves the students whose cohort reference equals the given id. An unknown or invalid id yields an empty array.
// @Tags students
// @Produce json
// @Param cohortId path string true "Cohort ID"
// @Success 200 {array} models.Student "Students retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/students/cohort/{cohortId} [get]
func (c *StudentController) GetStudentsByCohortID(ctx *gin.Context) {
	students, err := c.studentService.GetStudentsByCohortID(ctx.Request.Context(), ctx.Param("cohortId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// GetStudentByID retrieves one student
// @Summary Get student by ID
// @Description Retrieves a specific student with its cohort resolved
// @Tags students
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {object} models.Student "Student retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/students/{studentId} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	student, err := c.studentService.GetStudentByID(ctx.Request.Context(), ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// CreateStudent creates a new student
// @Summary Create a student
// @Description Inserts the supplied payload as a new student record
// @Tags students
// @Accept json
// @Produce json
// @Param request body models.Student true "Student payload"
// @Success 201 {object} models.Student "Student created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var student models.Student
	if err := ctx.ShouldBindJSON(&student); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid student data").WithDetails(err.Error()))
		return
	}

	if err := c.studentService.CreateStudent(ctx.Request.Context(), &student); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, student)
}

// UpdateStudent replaces an existing student
// @Summary Update a student
// @Description Replaces the mutable fields of the student with the supplied payload
// @Tags students
// @Accept json
// @Produce json
// @Param studentId path string true "Student ID"
// @Param request body models.Student true "Student payload"
// @Success 200 {object} models.Student "Student updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/students/{studentId} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var student models.Student
	if err := ctx.ShouldBindJSON(&student); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid student data").WithDetails(err.Error()))
		return
	}

	if err := c.studentService.UpdateStudent(ctx.Request.Context(), ctx.Param("studentId"), &student); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// DeleteStudent removes a student
// @Summary Delete a student
// @Description Removes a student by id; deleting an absent id still succeeds
// @Tags students
// @Param studentId path string true "Student ID"
// @Success 204 "Student deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/students/{studentId} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.DeleteStudent(ctx.Request.Context(), ctx.Param("studentId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
