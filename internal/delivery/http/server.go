package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/tourism-backend/internal/config"
	"github.com/tourism-backend/internal/delivery/http/handler"
	"github.com/tourism-backend/internal/delivery/http/middleware"
	"github.com/tourism-backend/internal/usecase"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	authUC *usecase.AuthUseCase

	// Handlers
	placeHandler  *handler.PlaceHandler
	authHandler   *handler.AuthHandler
	userHandler   *handler.UserHandler
	blogHandler   *handler.BlogHandler
	adHandler     *handler.AdvertisementHandler
	threadHandler *handler.ThreadHandler
	guideHandler  *handler.GuideHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	authUC *usecase.AuthUseCase,
	placeHandler *handler.PlaceHandler,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	blogHandler *handler.BlogHandler,
	adHandler *handler.AdvertisementHandler,
	threadHandler *handler.ThreadHandler,
	guideHandler *handler.GuideHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Tourism Backend",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:           app,
		config:        cfg,
		logger:        logger,
		authUC:        authUC,
		placeHandler:  placeHandler,
		authHandler:   authHandler,
		userHandler:   userHandler,
		blogHandler:   blogHandler,
		adHandler:     adHandler,
		threadHandler: threadHandler,
		guideHandler:  guideHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", s.authHandler.Register)
	auth.Post("/login", s.authHandler.Login)
	auth.Post("/refresh", s.authHandler.Refresh)
	auth.Post("/password-reset", s.authHandler.RequestPasswordReset)
	auth.Post("/password-reset/verify", s.authHandler.VerifyResetCode)
	auth.Post("/password-reset/confirm", s.authHandler.ResetPassword)

	// User routes
	users := api.Group("/users", middleware.Auth(s.authUC))
	users.Get("/me", s.userHandler.GetMe)
	users.Patch("/me", s.userHandler.UpdateMe)

	// Place routes: список городов публичный, фид только для авторизованных
	api.Get("/places/cities", s.placeHandler.GetCities)
	api.Get("/places/feed", middleware.Auth(s.authUC), s.placeHandler.GetFeed)
	api.Get("/places/:place_id", s.placeHandler.GetPlaceDetail)

	// Blog routes
	api.Get("/blog/detail/:blog_id", s.blogHandler.GetBlog)
	api.Get("/blog/:city_name", s.blogHandler.GetCityBlogs)

	// Advertisement routes
	api.Get("/advertisements", s.adHandler.GetActive)

	// AI thread history routes
	ai := api.Group("/ai", middleware.Auth(s.authUC))
	ai.Get("/threads", s.threadHandler.GetThreads)
	ai.Get("/threads/:thread_id/messages", s.threadHandler.GetThreadMessages)

	// AI guide WebSocket
	s.app.Get("/ws/ai-guide/:city_name", s.guideHandler.Upgrade, s.guideHandler.Serve())
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
