package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillswap-platform/apperrors"
	"github.com/skillswap-platform/dto"
	"github.com/skillswap-platform/middleware"
	"github.com/skillswap-platform/repositories"
	"github.com/skillswap-platform/services"
	"github.com/skillswap-platform/utils"
)

// SwapRequestController handles the swap request lifecycle endpoints
type SwapRequestController struct {
	swapService        *services.SwapService
	transactionService *services.TransactionService
}

// NewSwapRequestController creates a new swap request controller
func NewSwapRequestController(swapService *services.SwapService, transactionService *services.TransactionService) *SwapRequestController {
	return &SwapRequestController{swapService: swapService, transactionService: transactionService}
}

// RegisterRoutes registers the authenticated swap request routes
func (c *SwapRequestController) RegisterRoutes(router *gin.RouterGroup) {
	swaps := router.Group("/swap-requests")
	{
		swaps.POST("", c.Create)
		swaps.PUT("/:id/update", c.Update)
	}

	me := router.Group("/me")
	{
		me.GET("/swap-requests", c.ListMine)
		me.GET("/transactions", c.MyTransactions)
	}

	router.GET("/transactions/:id", c.GetTransaction)
}

// Create opens a new swap request
func (c *SwapRequestController) Create(ctx *gin.Context) {
	user, _ := middleware.CurrentUser(ctx)

	var req dto.CreateSwapRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, apperrors.Wrap(apperrors.KindMissingField, "invalid request body", err))
		return
	}

	request, err := c.swapService.Create(ctx.Request.Context(), user, req)
	if err != nil {
		utils.Error(ctx, err)
		return
	}
	utils.Success(ctx, http.StatusCreated, request, "Swap request created")
}

// Update applies a lifecycle action (accept, reject, cancel, complete)
func (c *SwapRequestController) Update(ctx *gin.Context) {
	user, _ := middleware.CurrentUser(ctx)

	var req dto.UpdateSwapRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, apperrors.Wrap(apperrors.KindMissingField, "invalid request body", err))
		return
	}

	request, err := c.swapService.Update(ctx.Request.Context(), user, ctx.Param("id"), req)
	if err != nil {
		utils.Error(ctx, err)
		return
	}
	utils.Success(ctx, http.StatusOK, request, "Swap request updated")
}

// ListMine returns the authenticated user's swap requests
func (c *SwapRequestController) ListMine(ctx *gin.Context) {
	user, _ := middleware.CurrentUser(ctx)
	filter := repositories.SwapListFilter(ctx.DefaultQuery("type", "all"))

	requests, err := c.swapService.ListForUser(ctx.Request.Context(), user.ID, filter)
	if err != nil {
		utils.Error(ctx, err)
		return
	}
	utils.Success(ctx, http.StatusOK, requests, "")
}

// MyTransactions returns the authenticated user's completed swap transactions
func (c *SwapRequestController) MyTransactions(ctx *gin.Context) {
	user, _ := middleware.CurrentUser(ctx)

	txns, err := c.transactionService.ListForUser(ctx.Request.Context(), user.ID)
	if err != nil {
		utils.Error(ctx, err)
		return
	}
	utils.Success(ctx, http.StatusOK, txns, "")
}

// GetTransaction returns one transaction, participants only
func (c *SwapRequestController) GetTransaction(ctx *gin.Context) {
	user, _ := middleware.CurrentUser(ctx)

	txn, err := c.transactionService.Get(ctx.Request.Context(), user, ctx.Param("id"))
	if err != nil {
		utils.Error(ctx, err)
		return
	}
	utils.Success(ctx, http.StatusOK, txn, "")
}
