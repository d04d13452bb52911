package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillswap-platform/apperrors"
	"github.com/skillswap-platform/dto"
	"github.com/skillswap-platform/middleware"
	"github.com/skillswap-platform/services"
	"github.com/skillswap-platform/utils"
)

// AdminController handles the admin moderation endpoints
type AdminController struct {
	adminService *services.AdminService
	swapService  *services.SwapService
}

// NewAdminController creates a new admin controller
func NewAdminController(adminService *services.AdminService, swapService *services.SwapService) *AdminController {
	return &AdminController{adminService: adminService, swapService: swapService}
}

// RegisterRoutes registers the admin-gated routes
func (c *AdminController) RegisterRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	{
		admin.GET("/users", c.ListUsers)
		admin.PUT("/users/:id/ban", c.BanUser)
		admin.GET("/swap-requests", c.ListSwapRequests)
	}
}

// ListUsers returns every profile, banned ones included
func (c *AdminController) ListUsers(ctx *gin.Context) {
	users, err := c.adminService.ListUsers(ctx.Request.Context())
	if err != nil {
		utils.Error(ctx, err)
		return
	}
	utils.Success(ctx, http.StatusOK, users, "")
}

// BanUser bans or unbans a user
func (c *AdminController) BanUser(ctx *gin.Context) {
	actor, _ := middleware.CurrentUser(ctx)

	var req dto.BanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, apperrors.Wrap(apperrors.KindMissingField, "invalid request body", err))
		return
	}

	user, err := c.adminService.SetBan(ctx.Request.Context(), actor, ctx.Param("id"), *req.Banned, req.Reason)
	if err != nil {
		utils.Error(ctx, err)
		return
	}
	utils.Success(ctx, http.StatusOK, user, "User ban state updated")
}

// ListSwapRequests returns every swap request on the platform
func (c *AdminController) ListSwapRequests(ctx *gin.Context) {
	requests, err := c.swapService.ListAll(ctx.Request.Context())
	if err != nil {
		utils.Error(ctx, err)
		return
	}
	utils.Success(ctx, http.StatusOK, requests, "")
}
