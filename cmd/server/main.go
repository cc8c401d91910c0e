package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coaching_marketplace/internal/config"
	"coaching_marketplace/internal/handler"
	"coaching_marketplace/internal/middleware"
	"coaching_marketplace/internal/repository"
	"coaching_marketplace/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		log.Fatalf("Failed to load DB config: %v", err)
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080" // Default port
	}

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(dbCfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	// --- Auto Migration ---
	if err := config.AutoMigrate(dbPool); err != nil {
		log.Fatalf("Failed to auto-migrate database: %v", err)
	}

	// --- Initialize Repositories ---
	creditPackageRepo := repository.NewCreditPackageRepository(dbPool)
	skillRepo := repository.NewSkillRepository(dbPool)
	userRepo := repository.NewUserRepository(dbPool)
	coachRepo := repository.NewCoachRepository(dbPool)
	courseRepo := repository.NewCourseRepository(dbPool)

	// --- Initialize Services ---
	creditPackageService := service.NewCreditPackageService(creditPackageRepo)
	skillService := service.NewSkillService(skillRepo)
	userService := service.NewUserService(userRepo)
	coachService := service.NewCoachService(userRepo, coachRepo)
	courseService := service.NewCourseService(courseRepo, userRepo, skillRepo)

	// --- Initialize Handlers ---
	creditPackageHandler := handler.NewCreditPackageHandler(creditPackageService)
	skillHandler := handler.NewSkillHandler(skillService)
	userHandler := handler.NewUserHandler(userService)
	adminHandler := handler.NewAdminHandler(coachService, courseService)

	// --- Setup Gin Router ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	router.NoRoute(handler.NotFoundHandler)

	// --- Register Routes ---
	apiGroup := router.Group("/api")
	creditPackageHandler.RegisterRoutes(apiGroup)
	skillHandler.RegisterRoutes(apiGroup)
	userHandler.RegisterRoutes(apiGroup)
	adminHandler.RegisterRoutes(apiGroup)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		if err := dbPool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + serverPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %s", serverPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
