package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobportal-forms/config"
	_ "go-jobportal-forms/docs" // Important for Swagger
	v1 "go-jobportal-forms/internal/delivery/http/v1"
	"go-jobportal-forms/internal/domain"
	redisrepo "go-jobportal-forms/internal/repository/redis"
	"go-jobportal-forms/internal/repository/upstream"
	"go-jobportal-forms/internal/usecase"
	"go-jobportal-forms/pkg/logger"
	"go-jobportal-forms/pkg/redis"
	"go-jobportal-forms/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           Job Portal Form Gateway API
// @version         1.0
// @description     Validates recruiter, user and job application forms before forwarding them to the portal API.
// @host            localhost:8081
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting form gateway", "port", cfg.Port, "upstream", cfg.UpstreamAPIURL)

	// 3. Setup In-flight Guard (Redis, falling back to memory)
	var guard domain.InflightGuard
	redisClient, err := redis.NewClient(context.Background(), redis.Config{
		URL:      cfg.RedisURL,
		Password: cfg.RedisPassword,
	})
	if err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory inflight guard", "error", err)
		guard = redisrepo.NewMemoryInflightGuard()
	} else {
		defer redisClient.Close()
		guard = redisrepo.NewInflightGuard(redisClient)
	}

	// 4. Setup Upstream Gateway
	gateway := upstream.NewGateway(cfg.UpstreamAPIURL, cfg.UpstreamTimeout)

	// 5. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	registrationUC := usecase.NewRegistrationUsecase(gateway, validate)
	applicationUC := usecase.NewApplicationUsecase(gateway, validate)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		RegistrationUC: registrationUC,
		ApplicationUC:  applicationUC,
		InflightGuard:  guard,
		Config:         cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
