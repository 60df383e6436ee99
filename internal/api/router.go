package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kkkiikkk/kit-global-test/internal/api/handler"
	"github.com/kkkiikkk/kit-global-test/internal/api/middleware"
	"github.com/kkkiikkk/kit-global-test/internal/core/domain"
	"github.com/kkkiikkk/kit-global-test/internal/core/ports"
	"github.com/kkkiikkk/kit-global-test/internal/core/service"
	mongodb "github.com/kkkiikkk/kit-global-test/internal/infrastructure/db/mongo"
	redisdb "github.com/kkkiikkk/kit-global-test/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, tokens ports.TokenManager, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("task_api"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)
	identityCache := redisdb.NewIdentityCache(rdb, log)

	authService := service.NewAuthService(userRepo, tokens, log)
	projectService := service.NewProjectService(projectRepo, userRepo, identityCache, log)
	taskService := service.NewTaskService(taskRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService)
	taskHandler := handler.NewTaskHandler(projectService, taskService)

	accessGuard := middleware.Auth(tokens, domain.TokenClassAccess)
	refreshGuard := middleware.Auth(tokens, domain.TokenClassRefresh)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh, refreshGuard)

	// --- Project and task routes (access token required) ---
	projects := e.Group("/api/projects", accessGuard)
	projects.POST("", projectHandler.Create)
	projects.POST("/:id/tasks", taskHandler.Create)
	projects.GET("/:id/tasks", taskHandler.List)
	projects.PUT("/:id/tasks/:taskId", taskHandler.Update)
	projects.DELETE("/:id/tasks/:taskId", taskHandler.Delete)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/api/docs/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	return e
}
