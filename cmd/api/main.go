package main

import (
	"os"

	"github.com/Prabhat-16/Careerion-Backend/internal/auth"
	"github.com/Prabhat-16/Careerion-Backend/internal/config"
	"github.com/Prabhat-16/Careerion-Backend/internal/database"
	"github.com/Prabhat-16/Careerion-Backend/internal/handlers"
	"github.com/Prabhat-16/Careerion-Backend/internal/middleware"
	"github.com/Prabhat-16/Careerion-Backend/internal/repository"
	"github.com/Prabhat-16/Careerion-Backend/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// .env is optional; real deployments set env vars directly
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}
	if cfg.UsingDevSecret {
		log.Warn("JWT_SECRET is unset, using the built-in development secret; do NOT run this in production")
	}

	db := database.Connect(cfg.DBConn, log)
	database.Seed(db, log)

	userStore := repository.NewUserStore(db)
	jobStore := repository.NewJobStore(db)
	companyStore := repository.NewCompanyStore(db)
	applicationStore := repository.NewApplicationStore(db)

	tokens := auth.NewTokenService(cfg.JWTSecret)
	googleVerifier := auth.NewGoogleVerifier()
	llm := services.NewLLMService(cfg.GeminiAPIKey, cfg.GeminiModel, log)

	userService := services.NewUserService(userStore, tokens, googleVerifier, log)
	chatService := services.NewChatService(llm, userStore, services.IsCareerRelated, log)
	adminService := services.NewAdminService(userStore, jobStore, companyStore, applicationStore, log)

	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	chatHandler := handlers.NewChatHandler(chatService)
	adminHandler := handlers.NewAdminHandler(adminService)

	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.Health(llm))

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/signup", authHandler.Signup)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/google", authHandler.GoogleLogin)
			authGroup.POST("/logout", authHandler.Logout)
			authGroup.GET("/me", middleware.RequireAuth(tokens), authHandler.Me)
		}

		userGroup := api.Group("/user", middleware.RequireAuth(tokens))
		{
			userGroup.GET("/profile", userHandler.GetProfile)
			userGroup.POST("/profile", userHandler.UpdateProfile)
		}

		api.POST("/chat", middleware.OptionalAuth(tokens), chatHandler.Chat)
		api.POST("/career-recommendations", middleware.RequireAuth(tokens), chatHandler.Recommendations)

		admin := api.Group("/admin", middleware.RequireAuth(tokens), middleware.RequireAdmin())
		{
			admin.GET("/users", adminHandler.ListUsers)
			admin.POST("/users", adminHandler.CreateUser)
			admin.GET("/users/:id", adminHandler.GetUser)
			admin.PUT("/users/:id", adminHandler.UpdateUser)
			admin.DELETE("/users/:id", adminHandler.DeleteUser)

			admin.GET("/jobs", adminHandler.ListJobs)
			admin.POST("/jobs", adminHandler.CreateJob)
			admin.GET("/jobs/:id", adminHandler.GetJob)
			admin.PUT("/jobs/:id", adminHandler.UpdateJob)
			admin.DELETE("/jobs/:id", adminHandler.DeleteJob)

			admin.GET("/companies", adminHandler.ListCompanies)
			admin.POST("/companies", adminHandler.CreateCompany)
			admin.GET("/companies/:id", adminHandler.GetCompany)
			admin.PUT("/companies/:id", adminHandler.UpdateCompany)
			admin.DELETE("/companies/:id", adminHandler.DeleteCompany)

			admin.GET("/applications", adminHandler.ListApplications)
			admin.GET("/applications/:id", adminHandler.GetApplication)
			admin.PUT("/applications/:id", adminHandler.UpdateApplication)
			admin.DELETE("/applications/:id", adminHandler.DeleteApplication)
		}
	}

	addr := ":" + cfg.Port
	log.Infof("server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.WithError(err).Fatal("server failed")
	}
}
