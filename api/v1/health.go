package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillswap-platform/utils"
)

// HealthCheck reports service liveness
func HealthCheck(ctx *gin.Context) {
	utils.Success(ctx, http.StatusOK, gin.H{
		"status":  "ok",
		"service": "skillswap-platform",
	}, "")
}
