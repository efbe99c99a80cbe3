package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/poimap-service/internal/config"
	"github.com/poimap-service/internal/delivery/http/handler"
	"github.com/poimap-service/internal/delivery/http/middleware"
	"github.com/poimap-service/web"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// APIPrefix - префикс JSON API
const APIPrefix = "/api/v1"

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	mapHandler     *handler.MapHandler
	sessionHandler *handler.SessionHandler
	pageHandler    *handler.PageHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	mapHandler *handler.MapHandler,
	sessionHandler *handler.SessionHandler,
	pageHandler *handler.PageHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "POI Map Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:            app,
		config:         cfg,
		logger:         logger,
		mapHandler:     mapHandler,
		sessionHandler: sessionHandler,
		pageHandler:    pageHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App - fiber-приложение (для тестов через app.Test)
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.CORSOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Static files for map pages
	if dir := s.config.Server.StaticDir; dir != "" {
		s.app.Static("/static", dir)
	} else {
		s.app.Use("/static", filesystem.New(filesystem.Config{
			Root:       http.FS(web.Static),
			PathPrefix: "static",
		}))
	}

	// Map pages
	s.app.Get("/", s.pageHandler.Outdoor)
	s.app.Get("/index.html", s.pageHandler.Outdoor)
	s.app.Get("/indexi.html", s.pageHandler.Indoor)

	api := s.app.Group(APIPrefix)

	// Health check
	api.Get("/health", s.mapHandler.Health)

	// Map data routes
	maps := api.Group("/maps/:variant")
	maps.Get("/", s.mapHandler.GetMapConfig)
	maps.Get("/places", s.mapHandler.ListPlaces)
	maps.Get("/categories", s.mapHandler.GetCategories)

	// Session routes
	maps.Post("/sessions", s.sessionHandler.CreateSession)
	maps.Get("/sessions/:id", s.sessionHandler.GetSession)
	maps.Delete("/sessions/:id", s.sessionHandler.CloseSession)
	maps.Post("/sessions/:id/events", s.sessionHandler.DispatchEvent)
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
		errCode := "INTERNAL_SERVER_ERROR"

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			if code == fiber.StatusNotFound {
				errCode = "NOT_FOUND"
			}
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    errCode,
				"message": err.Error(),
			},
		})
	}
}
