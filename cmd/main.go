package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"planova/database"
	"planova/docs"
	"planova/internal/cache"
	"planova/internal/config"
	"planova/internal/controllers"
	"planova/internal/middleware"
	"planova/internal/repository"
	"planova/internal/services"
	"planova/internal/utils"
	"planova/routes"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load(".env", "../.env")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Swagger Documentation
	docs.SwaggerInfo.Title = "Planova API"
	docs.SwaggerInfo.Description = "Nutrition targets, meal plans and weekly workout splits."
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	db, err := database.ConnectDatabase(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.MigrateDatabase(db); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database connection: %v", err)
	}
	defer sqlDB.Close()

	stopMonitor := make(chan struct{})
	defer close(stopMonitor)
	database.MonitorDBConnections(db, time.Minute, stopMonitor)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewUserProfileRepository(db)
	mealPlanRepo := repository.NewMealPlanRepository(db)
	workoutRepo := repository.NewWorkoutPlanRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)

	if _, err := services.EnsureAdminUser(userRepo, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Printf("Warning: admin user not provisioned: %v", err)
	}

	// Plan cache
	var (
		planCache    cache.PlanCache = cache.NoopCache{}
		cacheMonitor controllers.CacheStatusReporter
	)
	if cfg.RedisURL != "" {
		redisClient, err := cache.NewRedisClient(cfg.RedisURL, cfg.PlanCacheTTL)
		if err != nil {
			log.Printf("Warning: Redis unavailable, plan caching disabled: %v", err)
		} else {
			defer redisClient.Close()
			planCache = redisClient
			cacheMonitor = redisClient
		}
	}

	var mailer utils.Mailer
	if cfg.SMTPConfigured() {
		mailer = utils.NewSMTPMailer(utils.LoadMailConfig(cfg))
	} else {
		log.Println("SMTP not configured, subscription emails disabled")
	}

	sweeper := services.NewSubscriptionSweeper(subscriptionRepo, userRepo, mailer, cfg.SubscriptionSweepSpec)
	if err := sweeper.Start(); err != nil {
		log.Fatalf("Failed to start subscription sweeper: %v", err)
	}
	defer sweeper.Stop()

	// Controllers
	handlers := routes.Handlers{
		Auth:         controllers.NewAuthController(userRepo, cfg.JWTSecret, cfg.TokenTTL),
		User:         controllers.NewUserController(userRepo, planCache),
		Profile:      controllers.NewUserProfileController(profileRepo),
		Nutrition:    controllers.NewNutritionController(profileRepo, mealPlanRepo, planCache),
		Workout:      controllers.NewWorkoutController(profileRepo, workoutRepo, planCache),
		Subscription: controllers.NewSubscriptionController(subscriptionRepo, mailer, cfg.SubscriptionDays),
		Export:       controllers.NewExportController(profileRepo, mealPlanRepo, workoutRepo),
		Health:       controllers.NewHealthController(sqlDB, cacheMonitor, version),
	}

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())
	routes.RegisterRoutes(router, handlers, routes.NewGuards(cfg.JWTSecret, userRepo))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader, "Content-Disposition"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        corsHandler.Handler(router),
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		log.Printf("API Documentation: http://localhost:%s/swagger/index.html", cfg.Port)
		log.Printf("Health Check: http://localhost:%s/health", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
