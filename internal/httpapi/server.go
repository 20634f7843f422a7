package httpapi

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"

	"tasklist/internal/auth"
	"tasklist/internal/config"
	"tasklist/internal/services"
)

// Server assembles the HTTP surface: routing, session resolution, request
// logging and the translation from service results to transport responses.
type Server struct {
	app      *fiber.App
	tasks    services.TaskService
	sessions *auth.SessionManager
	github   *auth.GitHubClient
	logger   *log.Logger
}

// New creates a Server wired to the given service and auth collaborators.
func New(cfg config.ServerConfig, tasks services.TaskService, sessions *auth.SessionManager, github *auth.GitHubClient, logger *log.Logger) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "tasklist",
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		DisableStartupMessage: true,
	})

	s := &Server{
		app:      app,
		tasks:    tasks,
		sessions: sessions,
		github:   github,
		logger:   logger,
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.app.Use(RequestLogger(s.logger))
	s.app.Use(SessionMiddleware(s.sessions))

	// Health check endpoint
	s.app.Get("/health", s.healthHandler)

	// OAuth endpoints
	authGroup := s.app.Group("/auth/github")
	authGroup.Get("/login", s.githubLogin)
	authGroup.Get("/callback", s.githubCallback)

	// Task endpoints
	tasks := s.app.Group("/tasks")
	tasks.Get("/", s.listTasks)
	tasks.Post("/", s.createTask)
	tasks.Patch("/:id/toggle", s.toggleTask)
	tasks.Put("/:id", s.updateTask)
	tasks.Delete("/:id", s.deleteTask)
}

// Listen starts serving on the given address and blocks until shutdown.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown gracefully stops the server, honoring the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// App exposes the underlying fiber application for tests.
func (s *Server) App() *fiber.App {
	return s.app
}
