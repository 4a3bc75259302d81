package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/bloodconnect/donation-system/docs"
	"github.com/bloodconnect/donation-system/internal/api/handler"
	"github.com/bloodconnect/donation-system/internal/api/middleware"
	"github.com/bloodconnect/donation-system/internal/core/domain"
	"github.com/bloodconnect/donation-system/internal/core/service"
	infraconfig "github.com/bloodconnect/donation-system/internal/infrastructure/config"
	mongodb "github.com/bloodconnect/donation-system/internal/infrastructure/db/mongo"
	redisdb "github.com/bloodconnect/donation-system/internal/infrastructure/db/redis"
)

// Deps bundles everything the router needs to assemble the application.
type Deps struct {
	DB     *mongo.Database
	Redis  *redis.Client
	Config *infraconfig.Config
	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: deps.Config.CORSOrigins,
	}))
	e.Use(echoprometheus.NewMiddleware("blood_donation"))

	// --- Repositories ---
	donorRepo := mongodb.NewDonorRepository(deps.DB)
	requestRepo := mongodb.NewRequestRepository(deps.DB)
	adminRepo := mongodb.NewAdminRepository(deps.DB)
	contactRepo := mongodb.NewContactRepository(deps.DB)

	// --- Services ---
	donorService := service.NewDonorService(donorRepo, deps.Logger)
	requestService := service.NewRequestService(requestRepo, deps.Logger)
	authService := service.NewAuthService(adminRepo, deps.Config.JWTSecret, 24*time.Hour, deps.Logger)

	var dedup service.DedupChecker
	if deps.Redis != nil {
		dedup = redisdb.NewContactDedup(deps.Redis)
	}
	contactService := service.NewContactService(contactRepo, dedup, deps.Logger)

	// --- Handlers ---
	donorHandler := handler.NewDonorHandler(donorService)
	requestHandler := handler.NewRequestHandler(requestService)
	authHandler := handler.NewAuthHandler(authService)
	contactHandler := handler.NewContactHandler(contactService)

	requireAdmin := middleware.Auth(deps.Config.JWTSecret)

	// --- Donor directory ---
	donors := e.Group("/donors")
	donors.POST("/register", donorHandler.Register)
	donors.GET("", donorHandler.List)
	donors.GET("/search", donorHandler.Search)
	donors.GET("/find", donorHandler.Search)
	donors.GET("/admin/all", donorHandler.ListAll, requireAdmin)
	donors.PUT("/:id/availability", donorHandler.UpdateAvailability, requireAdmin)
	donors.DELETE("/:id", donorHandler.Delete, requireAdmin)

	// --- Request board ---
	requests := e.Group("/request")
	requests.POST("/create", requestHandler.Submit)
	requests.POST("/submit", requestHandler.Submit)
	requests.GET("/all", requestHandler.List)
	requests.GET("/inbox", requestHandler.List)
	requests.GET("/status", requestHandler.ListByStatus)
	requests.PUT("/:id/status", requestHandler.UpdateStatus, requireAdmin)
	requests.DELETE("/:id", requestHandler.Delete, requireAdmin)

	// --- Admin access ---
	admin := e.Group("/admin")
	admin.POST("/register", authHandler.Register)
	admin.POST("/login", authHandler.Login)
	admin.GET("/verify", authHandler.Verify, requireAdmin)
	admin.GET("/all", authHandler.ListAdmins, requireAdmin,
		middleware.RequireRole(domain.RoleAdmin, domain.RoleSuperAdmin))

	// --- Contact form ---
	e.POST("/contact", contactHandler.Submit)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.DB, deps.Redis)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
