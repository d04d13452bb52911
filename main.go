package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	v1 "github.com/skillswap-platform/api/v1"
	"github.com/skillswap-platform/config"
	"github.com/skillswap-platform/database"
	"github.com/skillswap-platform/dto"
	"github.com/skillswap-platform/identity"
	"github.com/skillswap-platform/repositories"
	"github.com/skillswap-platform/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	store := repositories.NewGormStore(db)

	var provider identity.Provider
	switch cfg.IdentityProvider {
	case "firebase":
		if cfg.FirebaseAPIKey == "" {
			log.Fatal("FIREBASE_API_KEY is required when IDENTITY_PROVIDER=firebase")
		}
		provider = identity.NewFirebaseProvider(cfg.FirebaseAPIKey, cfg.IdentityTimeout)
	case "local":
		if cfg.JWTSecret == "" {
			log.Fatal("JWT_SECRET is required when IDENTITY_PROVIDER=local")
		}
		provider = identity.NewLocalProvider(cfg.JWTSecret, cfg.TokenTTL, store.Users)
	default:
		log.Fatalf("Unknown IDENTITY_PROVIDER: %s", cfg.IdentityProvider)
	}

	svc := v1.Services{
		Gate:         services.NewAuthGate(provider, store.Users),
		Auth:         services.NewAuthService(provider, store.Users),
		Users:        services.NewUserService(store.Users, store.Skills, store.UserSkills),
		Skills:       services.NewSkillService(store.Skills),
		Swaps:        services.NewSwapService(store),
		Reviews:      services.NewReviewService(store.Reviews, store.Swaps, store.Users),
		Transactions: services.NewTransactionService(store.Transactions),
		Messages:     services.NewMessageService(store.Messages),
		Admin:        services.NewAdminService(store.Users),
	}

	gin.SetMode(gin.ReleaseMode)
	dto.RegisterValidators()

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	v1.RegisterRoutes(router.Group("/api/v1"), svc)

	log.Printf("Skill swap platform starting on port %s (identity: %s)", cfg.Port, cfg.IdentityProvider)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
