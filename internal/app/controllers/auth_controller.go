package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acadbase/acadbase/internal/app/models/dto"
	"github.com/acadbase/acadbase/internal/app/services"
	"github.com/acadbase/acadbase/internal/middleware"
	"github.com/acadbase/acadbase/internal/pkg/apperrors"
)

// AuthController handles authentication endpoints.
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new auth controller
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login godoc
// @Summary Authenticate a user
// @Description Verifies credentials and returns an access/refresh token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError(err.Error()))
		return
	}

	tokens, err := ac.authService.Login(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(tokens))
}

// RefreshToken godoc
// @Summary Refresh a token pair
// @Description Rotates the refresh token and issues a new pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/refresh [post]
func (ac *AuthController) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError(err.Error()))
		return
	}

	tokens, err := ac.authService.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(tokens))
}

// Me godoc
// @Summary Get the current user
// @Description Returns the account profile behind the presented token
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse{data=models.User}
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/me [get]
func (ac *AuthController) Me(c *gin.Context) {
	user, err := ac.authService.CurrentUser(c.Request.Context(), actorFromContext(c).UserID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAPIResponse(user))
}

// Logout godoc
// @Summary Log out
// @Description Revokes the supplied refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token to revoke"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (ac *AuthController) Logout(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError(err.Error()))
		return
	}

	if err := ac.authService.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewMessageResponse("Logged out successfully"))
}
