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

// ReviewController handles review endpoints
type ReviewController struct {
	reviewService *services.ReviewService
}

// NewReviewController creates a new review controller
func NewReviewController(reviewService *services.ReviewService) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// RegisterRoutes registers the authenticated review routes
func (c *ReviewController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/reviews", c.Create)
}

// Create writes a review for a completed swap
func (c *ReviewController) Create(ctx *gin.Context) {
	user, _ := middleware.CurrentUser(ctx)

	var req dto.CreateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, apperrors.Wrap(apperrors.KindMissingField, "invalid request body", err))
		return
	}

	review, err := c.reviewService.Create(ctx.Request.Context(), user, req)
	if err != nil {
		utils.Error(ctx, err)
		return
	}
	utils.Success(ctx, http.StatusCreated, review, "Review created")
}
