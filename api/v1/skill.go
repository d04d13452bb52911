package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillswap-platform/services"
	"github.com/skillswap-platform/utils"
)

// SkillController handles the public skill catalog endpoints
type SkillController struct {
	skillService *services.SkillService
}

// NewSkillController creates a new skill controller
func NewSkillController(skillService *services.SkillService) *SkillController {
	return &SkillController{skillService: skillService}
}

// RegisterRoutes registers skill catalog routes
func (c *SkillController) RegisterRoutes(router *gin.RouterGroup) {
	skills := router.Group("/skills")
	{
		skills.GET("", c.ListSkills)
		skills.GET("/search", c.SearchSkills)
	}
}

// ListSkills returns the whole catalog
func (c *SkillController) ListSkills(ctx *gin.Context) {
	skills, err := c.skillService.ListAll(ctx.Request.Context())
	if err != nil {
		utils.Error(ctx, err)
		return
	}
	utils.Success(ctx, http.StatusOK, skills, "")
}

// SearchSkills filters the catalog by name and optional category
func (c *SkillController) SearchSkills(ctx *gin.Context) {
	skills, err := c.skillService.Search(ctx.Request.Context(), ctx.Query("query"), ctx.Query("category"))
	if err != nil {
		utils.Error(ctx, err)
		return
	}
	utils.Success(ctx, http.StatusOK, skills, "")
}
