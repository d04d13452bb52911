package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillswap-platform/apperrors"
	"github.com/skillswap-platform/dto"
	"github.com/skillswap-platform/services"
	"github.com/skillswap-platform/utils"
)

// AuthController handles registration and login endpoints
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new auth controller
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// RegisterRoutes registers auth routes
func (c *AuthController) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", c.Register)
		auth.POST("/login", c.Login)
		auth.POST("/logout", c.Logout)
	}
}

// Register handles user registration
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, apperrors.Wrap(apperrors.KindMissingField, "invalid request body", err))
		return
	}

	resp, err := c.authService.Register(ctx.Request.Context(), req)
	if err != nil {
		utils.Error(ctx, err)
		return
	}
	utils.Success(ctx, http.StatusCreated, resp, "User registered successfully")
}

// Login handles user authentication
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, apperrors.Wrap(apperrors.KindMissingField, "invalid request body", err))
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), req)
	if err != nil {
		utils.Error(ctx, err)
		return
	}
	utils.Success(ctx, http.StatusOK, resp, "Login successful")
}

// Logout is handled client-side; the token simply expires.
func (c *AuthController) Logout(ctx *gin.Context) {
	utils.Success(ctx, http.StatusOK, nil, "Logout successful")
}
