package main

// @title Tourism Backend API
// @version 1.0.0
// @description Бэкенд туристического приложения. Строит фид мест по интересам на основе Google Places, отдает карточки мест, статьи блога по городам, рекламные баннеры и диалоги с AI-гидом по WebSocket.
// @description
// @description Основные возможности:
// @description - Фид мест города по интересам с секциями popular и recommended
// @description - Карточки мест с фотографиями, отзывами и часами работы
// @description - Регистрация, вход и восстановление пароля
// @description - AI-гид: подбор мест по свободному сообщению пользователя

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/tourism-backend/docs/swagger"
	"github.com/tourism-backend/internal/config"
	httpDelivery "github.com/tourism-backend/internal/delivery/http"
	"github.com/tourism-backend/internal/delivery/http/handler"
	"github.com/tourism-backend/internal/infrastructure/anthropic"
	"github.com/tourism-backend/internal/infrastructure/googleplaces"
	"github.com/tourism-backend/internal/infrastructure/smtp"
	"github.com/tourism-backend/internal/pkg/logger"
	"github.com/tourism-backend/internal/repository/cache"
	"github.com/tourism-backend/internal/repository/postgres"
	"github.com/tourism-backend/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Tourism Backend")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}
	log.Info("All connections healthy")

	// 6. Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	cityRepo := postgres.NewCityRepository(db)
	blogRepo := postgres.NewBlogRepository(db)
	adRepo := postgres.NewAdvertisementRepository(db)
	threadRepo := postgres.NewThreadRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)

	placesRepo := googleplaces.NewGooglePlacesClient(&cfg.Google, log)
	assistantRepo := anthropic.NewAssistantClient(&cfg.Anthropic, log)
	mailRepo := smtp.NewMailer(&cfg.SMTP, log)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	feedUC := usecase.NewFeedUseCase(
		placesRepo,
		cityRepo,
		cacheRepo,
		log,
		&cfg.Google,
		cfg.Cache.FeedCacheTTL,
	)
	cityUC := usecase.NewCityUseCase(cityRepo, log)
	authUC := usecase.NewAuthUseCase(userRepo, mailRepo, log, cfg.JWT)
	blogUC := usecase.NewBlogUseCase(blogRepo, cityRepo, log)
	adUC := usecase.NewAdvertisementUseCase(adRepo, log)
	threadUC := usecase.NewThreadUseCase(threadRepo, log)
	guideUC := usecase.NewGuideUseCase(feedUC, cityRepo, threadRepo, assistantRepo, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	placeHandler := handler.NewPlaceHandler(feedUC, cityUC, log)
	authHandler := handler.NewAuthHandler(authUC, log)
	userHandler := handler.NewUserHandler(authUC, log)
	blogHandler := handler.NewBlogHandler(blogUC, log)
	adHandler := handler.NewAdvertisementHandler(adUC, log)
	threadHandler := handler.NewThreadHandler(threadUC, log)
	guideHandler := handler.NewGuideHandler(guideUC, authUC, log)

	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		authUC,
		placeHandler,
		authHandler,
		userHandler,
		blogHandler,
		adHandler,
		threadHandler,
		guideHandler,
	)

	log.Info("HTTP server initialized")

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
