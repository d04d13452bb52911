package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/skillswap-platform/middleware"
	"github.com/skillswap-platform/services"
)

// Services bundles everything the v1 routes need.
type Services struct {
	Gate         *services.AuthGate
	Auth         *services.AuthService
	Users        *services.UserService
	Skills       *services.SkillService
	Swaps        *services.SwapService
	Reviews      *services.ReviewService
	Transactions *services.TransactionService
	Messages     *services.MessageService
	Admin        *services.AdminService
}

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, svc Services) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	authController := NewAuthController(svc.Auth)
	userController := NewUserController(svc.Users, svc.Reviews)
	skillController := NewSkillController(svc.Skills)
	swapController := NewSwapRequestController(svc.Swaps, svc.Transactions)
	reviewController := NewReviewController(svc.Reviews)
	messageController := NewMessageController(svc.Messages)
	adminController := NewAdminController(svc.Admin, svc.Swaps)

	// Public endpoints
	authController.RegisterRoutes(router)
	userController.RegisterPublicRoutes(router)
	skillController.RegisterRoutes(router)
	messageController.RegisterPublicRoutes(router)

	// Protected endpoints
	authRouter := router.Group("")
	authRouter.Use(middleware.RequireAuth(svc.Gate))
	userController.RegisterRoutes(authRouter)
	swapController.RegisterRoutes(authRouter)
	reviewController.RegisterRoutes(authRouter)

	// Admin endpoints
	adminRouter := router.Group("")
	adminRouter.Use(middleware.RequireAdmin(svc.Gate))
	messageController.RegisterAdminRoutes(adminRouter)
	adminController.RegisterRoutes(adminRouter)
}
