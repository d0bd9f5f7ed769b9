// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/arda/campusconnect/internal/app/models/dto"
	"github.com/arda/campusconnect/internal/app/services"
	"github.com/arda/campusconnect/internal/middleware"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Register handles user registration
// @Summary Register a new user
// @Description Creates a new account and returns the user with a signed token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "User registration information"
// @Success 201 {object} dto.APIResponse{data=dto.AuthData} "User registered"
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Failure 409 {object} dto.APIResponse "Email already exists"
// @Router /api/auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid registration request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	authData, err := c.authService.Register(&req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Registration failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("userID", authData.User.ID).Msg("User registered successfully")
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(authData, "Registration successful"))
}

// Login handles user login
// @Summary User login
// @Description Authenticates a user and returns an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthData} "Login successful"
// @Failure 401 {object} dto.APIResponse "Invalid credentials or account disabled"
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	authData, err := c.authService.Login(&req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("email", req.Email).Msg("User logged in successfully")
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(authData, "Login successful"))
}

// Me returns the authenticated user's profile
// @Summary Current user
// @Description Returns the profile of the authenticated user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UserData} "Current user"
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Router /api/auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	actor := middleware.CurrentUser(ctx)
	user, err := c.authService.CurrentUser(actor.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.UserData{User: *user}, ""))
}

// Logout acknowledges a logout request
// @Summary User logout
// @Description Stateless logout; clients discard the token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Logout successful"
// @Router /api/auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	// Tokens are not tracked server side, so there is nothing to revoke.
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Logged out successfully"))
}
