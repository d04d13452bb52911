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

// MessageController handles system message endpoints
type MessageController struct {
	messageService *services.MessageService
}

// NewMessageController creates a new message controller
func NewMessageController(messageService *services.MessageService) *MessageController {
	return &MessageController{messageService: messageService}
}

// RegisterPublicRoutes registers the unauthenticated message routes
func (c *MessageController) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.GET("/system-messages", c.ListActive)
}

// RegisterAdminRoutes registers the admin-gated message routes
func (c *MessageController) RegisterAdminRoutes(router *gin.RouterGroup) {
	router.POST("/system-messages/create", c.Create)
	router.PUT("/system-messages/:id/toggle", c.Toggle)
}

// ListActive returns active broadcasts
func (c *MessageController) ListActive(ctx *gin.Context) {
	messages, err := c.messageService.ListActive(ctx.Request.Context())
	if err != nil {
		utils.Error(ctx, err)
		return
	}
	utils.Success(ctx, http.StatusOK, messages, "")
}

// Create publishes a broadcast (admin only)
func (c *MessageController) Create(ctx *gin.Context) {
	user, _ := middleware.CurrentUser(ctx)

	var req dto.CreateMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, apperrors.Wrap(apperrors.KindMissingField, "invalid request body", err))
		return
	}

	message, err := c.messageService.Create(ctx.Request.Context(), user, req)
	if err != nil {
		utils.Error(ctx, err)
		return
	}
	utils.Success(ctx, http.StatusCreated, message, "System message created")
}

// Toggle flips a broadcast's active flag (admin only)
func (c *MessageController) Toggle(ctx *gin.Context) {
	var req dto.ToggleMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, apperrors.Wrap(apperrors.KindMissingField, "invalid request body", err))
		return
	}

	message, err := c.messageService.Toggle(ctx.Request.Context(), ctx.Param("id"), *req.IsActive)
	if err != nil {
		utils.Error(ctx, err)
		return
	}
	utils.Success(ctx, http.StatusOK, message, "System message updated")
}
