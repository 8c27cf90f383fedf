// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/cohorttools/cohort-api/internal/app/models/dto"
	"github.com/cohorttools/cohort-api/internal/app/services"
	"github.com/cohorttools/cohort-api/internal/middleware"
	"github.com/cohorttools/cohort-api/internal/pkg/auth"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService *services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Signup handles user registration
// @Summary Register a new user
// @Description Creates a new user credential. The password must be at least 6 characters with one digit, one lowercase and one uppercase letter.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Signup information"
// @Success 201 {object} dto.SignupResponse "User created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request or duplicate email/userName"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid signup request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Provide email, userName and password").WithDetails(err.Error()))
		return
	}

	resp, err := c.authService.Signup(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Signup failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// Login handles user login
// @Summary User login
// @Description Authenticates a user and returns a session token expiring in 6 hours
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 201 {object} dto.LoginResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Unknown user or incorrect password"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Provide email and password").WithDetails(err.Error()))
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// Verify echoes the decoded claim set of a valid session token
// @Summary Verify session token
// @Description Returns the claim set decoded from the bearer token. The auth middleware rejects missing, malformed or expired tokens before this handler runs.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} auth.Claims "Token is valid"
// @Failure 401 {object} dto.ErrorResponse "Missing, malformed or expired token"
// @Router /auth/verify [get]
func (c *AuthController) Verify(ctx *gin.Context) {
	value, exists := ctx.Get(middleware.ContextClaimsKey)
	if !exists {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	claims, ok := value.(*auth.Claims)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid token"))
		return
	}

	ctx.JSON(http.StatusOK, claims)
}
