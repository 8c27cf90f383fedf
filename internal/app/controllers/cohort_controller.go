package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cohorttools/cohort-api/internal/app/models"
	"github.com/cohorttools/cohort-api/internal/app/models/dto"
	"github.com/cohorttools/cohort-api/internal/app/services"
	"github.com/cohorttools/cohort-api/internal/middleware"
)

// CohortController handles cohort CRUD operations
type CohortController struct {
	cohortService *services.CohortService
}

// NewCohortController creates a new CohortController
func NewCohortController(cohortService *services.CohortService) *CohortController {
	return &CohortController{cohortService: cohortService}
}

// GetAllCohorts lists all cohorts
// @Summary List cohorts
// @Description Retrieves all cohorts
// @Tags cohorts
// @Produce json
// @Success 200 {array} models.Cohort "Cohorts retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/cohorts [get]
func (c *CohortController) GetAllCohorts(ctx *gin.Context) {
	cohorts, err := c.cohortService.GetAllCohorts(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, cohorts)
}

// GetCohortByID retrieves one cohort
// @Summary Get cohort by ID
// @Description Retrieves a specific cohort by its ID
// @Tags cohorts
// @Produce json
// @Param cohortId path string true "Cohort ID"
// @Success 200 {object} models.Cohort "Cohort retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid cohort ID"
// @Failure 404 {object} dto.ErrorResponse "Cohort not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/cohorts/{cohortId} [get]
func (c *CohortController) GetCohortByID(ctx *gin.Context) {
	cohort, err := c.cohortService.GetCohortByID(ctx.Request.Context(), ctx.Param("cohortId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, cohort)
}

// CreateCohort creates a new cohort
// @Summary Create a cohort
// @Description Inserts the supplied payload as a new cohort record
// @Tags cohorts
// @Accept json
// @Produce json
// @Param request body models.Cohort true "Cohort payload"
// @Success 201 {object} models.Cohort "Cohort created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/cohorts [post]
func (c *CohortController) CreateCohort(ctx *gin.Context) {
	var cohort models.Cohort
	if err := ctx.ShouldBindJSON(&cohort); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid cohort data").WithDetails(err.Error()))
		return
	}

	if err := c.cohortService.CreateCohort(ctx.Request.Context(), &cohort); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, cohort)
}

// UpdateCohort replaces an existing cohort
// @Summary Update a cohort
// @Description Replaces the mutable fields of the cohort with the supplied payload
// @Tags cohorts
// @Accept json
// @Produce json
// @Param cohortId path string true "Cohort ID"
// @Param request body models.Cohort true "Cohort payload"
// @Success 200 {object} models.Cohort "Cohort updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Cohort not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/cohorts/{cohortId} [put]
func (c *CohortController) UpdateCohort(ctx *gin.Context) {
	var cohort models.Cohort
	if err := ctx.ShouldBindJSON(&cohort); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid cohort data").WithDetails(err.Error()))
		return
	}

	if err := c.cohortService.UpdateCohort(ctx.Request.Context(), ctx.Param("cohortId"), &cohort); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, cohort)
}

// DeleteCohort removes a cohort
// @Summary Delete a cohort
// @Description Removes a cohort by id and clears the reference on its students; deleting an absent id still succeeds
// @Tags cohorts
// @Param cohortId path string true "Cohort ID"
// @Success 204 "Cohort deleted successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid cohort ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/cohorts/{cohortId} [delete]
func (c *CohortController) DeleteCohort(ctx *gin.Context) {
	if err := c.cohortService.DeleteCohort(ctx.Request.Context(), ctx.Param("cohortId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
