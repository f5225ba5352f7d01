package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rentwise/property-system/internal/api/handler"
	"github.com/rentwise/property-system/internal/api/middleware"
	"github.com/rentwise/property-system/internal/core/domain"
	"github.com/rentwise/property-system/internal/core/service"
	"github.com/rentwise/property-system/internal/infrastructure/config"
	mongodb "github.com/rentwise/property-system/internal/infrastructure/db/mongo"
	redisdb "github.com/rentwise/property-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("rentwise"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	maintenanceRepo := mongodb.NewMaintenanceRepository(db)
	paymentRepo := mongodb.NewPaymentRepository(db)
	revoker := redisdb.NewRevocationList(rdb)

	authService := service.NewAuthService(userRepo, revoker, cfg.JWTSecret, cfg.TokenTTL, cfg.PasswordMinLength)
	maintenanceService := service.NewMaintenanceService(maintenanceRepo, log)
	paymentService := service.NewPaymentService(paymentRepo)
	dashboardService := service.NewDashboardService(userRepo, maintenanceRepo, paymentRepo)

	authHandler := handler.NewAuthHandler(authService)
	maintenanceHandler := handler.NewMaintenanceHandler(maintenanceService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	authRequired := middleware.Auth(cfg.JWTSecret, revoker)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/test", authHandler.Test)
	auth.POST("/logout", authHandler.Logout, authRequired)
	auth.GET("/me", authHandler.Me, authRequired)

	// --- Resource routes ---
	g := e.Group("/api", authRequired)
	g.GET("/dashboard", dashboardHandler.Summary, middleware.RBAC(domain.RoleAdmin, domain.RoleOwner))
	g.GET("/maintenance", maintenanceHandler.List)
	g.POST("/maintenance", maintenanceHandler.Create)
	g.GET("/payments", paymentHandler.List, middleware.RBAC(domain.RoleAdmin, domain.RoleOwner))
	g.POST("/payments", paymentHandler.Create, middleware.RBAC(domain.RoleAdmin, domain.RoleOwner))

	// --- Static uploads (verification documents) ---
	if cfg.UploadsDir != "" {
		e.Static("/uploads", cfg.UploadsDir)
	}

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
