package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skillswap-platform/apperrors"
	"github.com/skillswap-platform/dto"
	"github.com/skillswap-platform/middleware"
	"github.com/skillswap-platform/models"
	"github.com/skillswap-platform/services"
	"github.com/skillswap-platform/utils"
)

// UserController handles profile and user-skill endpoints
type UserController struct {
	userService   *services.UserService
	reviewService *services.ReviewService
}

// NewUserController creates a new user controller
func NewUserController(userService *services.UserService, reviewService *services.ReviewService) *UserController {
	return &UserController{userService: userService, reviewService: reviewService}
}

// RegisterPublicRoutes registers the unauthenticated profile routes
func (c *UserController) RegisterPublicRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("", c.ListUsers)
		users.GET("/:id", c.GetUser)
		users.GET("/:id/skills", c.GetUserSkills)
		users.GET("/:id/reviews", c.GetUserReviews)
	}
}

// RegisterRoutes registers the authenticated /me routes
func (c *UserController) RegisterRoutes(router *gin.RouterGroup) {
	me := router.Group("/me")
	{
		me.GET("", c.Me)
		me.PUT("/update", c.UpdateMe)
		me.GET("/skills", c.MySkills)
		me.POST("/skills/add", c.AddSkill)
		me.POST("/skills/remove", c.RemoveSkill)
		me.GET("/reviews", c.MyReviews)
	}
}

// ListUsers returns public profiles
func (c *UserController) ListUsers(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "50"))
	users, err := c.userService.ListPublic(ctx.Request.Context(), limit)
	if err != nil {
		utils.Error(ctx, err)
		return
	}
	utils.Success(ctx, http.StatusOK, users, "")
}

// GetUser returns a single public profile
func (c *UserController) GetUser(ctx *gin.Context) {
	user, err := c.userService.GetProfile(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		utils.Error(ctx, err)
		return
	}
	utils.Success(ctx, http.StatusOK, user, "")
}

// GetUserSkills returns a user's skills
func (c *UserController) GetUserSkills(ctx *gin.Context) {
	skillType := models.SkillType(ctx.Query("type"))
	skills, err := c.userService.ListSkills(ctx.Request.Context(), ctx.Param("id"), skillType)
	if err != nil {
		utils.Error(ctx, err)
		return
	}
	utils.Success(ctx, http.StatusOK, skills, "")
}

// GetUserReviews returns reviews about a user
func (c *UserController) GetUserReviews(ctx *gin.Context) {
	reviews, err := c.reviewService.ListForUser(ctx.Request.Context(), ctx.Param("id"), true)
	if err != nil {
		utils.Error(ctx, err)
		return
	}
	utils.Success(ctx, http.StatusOK, reviews, "")
}

// Me returns the authenticated user's profile
func (c *UserController) Me(ctx *gin.Context) {
	user, _ := middleware.CurrentUser(ctx)
	utils.Success(ctx, http.StatusOK, user, "")
}

// UpdateMe updates the authenticated user's profile
func (c *UserController) UpdateMe(ctx *gin.Context) {
	user, _ := middleware.CurrentUser(ctx)

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, apperrors.Wrap(apperrors.KindMissingField, "invalid request body", err))
		return
	}

	updated, err := c.userService.UpdateProfile(ctx.Request.Context(), user, req)
	if err != nil {
		utils.Error(ctx, err)
		return
	}
	utils.Success(ctx, http.StatusOK, updated, "Profile updated")
}

// MySkills returns the authenticated user's skills
func (c *UserController) MySkills(ctx *gin.Context) {
	user, _ := middleware.CurrentUser(ctx)
	skillType := models.SkillType(ctx.Query("type"))

	skills, err := c.userService.ListSkills(ctx.Request.Context(), user.ID, skillType)
	if err != nil {
		utils.Error(ctx, err)
		return
	}
	utils.Success(ctx, http.StatusOK, skills, "")
}

// AddSkill adds a skill to the authenticated user's profile
func (c *UserController) AddSkill(ctx *gin.Context) {
	user, _ := middleware.CurrentUser(ctx)

	var req dto.AddSkillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, apperrors.Wrap(apperrors.KindMissingField, "invalid request body", err))
		return
	}

	link, err := c.userService.AddSkill(ctx.Request.Context(), user, req)
	if err != nil {
		utils.Error(ctx, err)
		return
	}
	utils.Success(ctx, http.StatusCreated, link, "Skill added successfully")
}

// RemoveSkill removes a skill from the authenticated user's profile
func (c *UserController) RemoveSkill(ctx *gin.Context) {
	user, _ := middleware.CurrentUser(ctx)

	var req dto.RemoveSkillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, apperrors.Wrap(apperrors.KindMissingField, "invalid request body", err))
		return
	}

	if err := c.userService.RemoveSkill(ctx.Request.Context(), user, req); err != nil {
		utils.Error(ctx, err)
		return
	}
	utils.Success(ctx, http.StatusOK, nil, "Skill removed")
}

// MyReviews returns reviews about or by the authenticated user
func (c *UserController) MyReviews(ctx *gin.Context) {
	user, _ := middleware.CurrentUser(ctx)
	asSubject := ctx.DefaultQuery("as_subject", "true") == "true"

	reviews, err := c.reviewService.ListForUser(ctx.Request.Context(), user.ID, asSubject)
	if err != nil {
		utils.Error(ctx, err)
		return
	}
	utils.Success(ctx, http.StatusOK, reviews, "")
}
