// Package server contains the HTTP handlers and route wiring for the site.
package server

import (
	"context"
	"embed"
	"io/fs"
	"net/http"
	"sync"

	"homepage/internal/config"
	"homepage/internal/database"
	"homepage/internal/middleware"
	"homepage/internal/repository"
	"homepage/internal/service"
	"homepage/internal/session"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/template/html/v2"
	"gorm.io/gorm"
)

//go:embed templates
var templatesFS embed.FS

var (
	promOnce sync.Once
	prom     *fiberprometheus.FiberPrometheus
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	userRepo       repository.UserRepository
	commentRepo    repository.CommentRepository
	authService    *service.AuthService
	commentService *service.CommentService
	sessions       *session.Manager
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	return NewServerWithDeps(cfg, db), nil
}

// NewServerWithDeps creates a Server using an already-initialized database.
// Use this in tests or when a bootstrap layer establishes the DB and
// performs explicit seeding.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB) *Server {
	userRepo := repository.NewUserRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	return &Server{
		config:         cfg,
		db:             db,
		userRepo:       userRepo,
		commentRepo:    commentRepo,
		authService:    service.NewAuthService(userRepo),
		commentService: service.NewCommentService(commentRepo),
		sessions:       session.NewManager(cfg.SessionSecret, cfg.SessionTTL()),
	}
}

// NewApp builds the Fiber application with views, middleware, and routes.
func (s *Server) NewApp() *fiber.App {
	templates, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		panic(err)
	}
	engine := html.NewFileSystem(http.FS(templates), ".html")

	app := fiber.New(fiber.Config{
		AppName:      "Homepage",
		Views:        engine,
		ErrorHandler: s.errorHandler,
	})

	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate the request ID into logs
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics. The collectors live in the process-wide default
	// registry, so they are created once even when tests build several apps.
	promOnce.Do(func() {
		prom = fiberprometheus.New("homepage")
	})
	prom.RegisterAt(app, "/metrics")
	app.Use(prom.Middleware)

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// Session middleware attaches the current user to every request
	app.Use(middleware.Session(s.sessions, s.userRepo))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health", s.HealthCheck)

	// Static informational pages
	app.Get("/", s.Home)
	app.Get("/skills/", s.Skills)
	app.Get("/projects/", s.Projects)
	app.Get("/education/", s.Education)
	app.Get("/experience/", s.Experience)

	// Guestbook
	app.Get("/comments", s.ListComments)
	app.Post("/comments", middleware.LoginRequired("/comments?error=login"), s.CreateComment)

	// Login flow
	app.Get("/login/", s.LoginPage)
	app.Post("/login/", s.Login)
	app.Get("/logout/", middleware.LoginRequired("/comments"), s.Logout)
}

// HealthCheck reports process and database health. The comment count doubles
// as a read probe through the repository layer, not just a connection ping.
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Context())
	}
	var comments int64
	if err == nil {
		comments, err = s.commentRepo.Count(c.Context())
	}
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unhealthy",
			"error":  err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "ok", "comments": comments})
}

// DB exposes the underlying database handle for bootstrap-time seeding.
func (s *Server) DB() *gorm.DB {
	return s.db
}

// Shutdown releases server resources.
func (s *Server) Shutdown(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
