package routes

import (
	"time"

	"erp-portal-backend/internal/api/handlers"
	"erp-portal-backend/internal/api/middleware"
	"erp-portal-backend/internal/config"
	"erp-portal-backend/internal/repository"
	"erp-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()
	router.HandleMethodNotAllowed = true

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.TenantResolver(cfg))

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	tenantRepo := repository.NewTenantRepository(db)
	adminRepo := repository.NewPlatformAdminRepository(db)
	legacyRepo := repository.NewLegacyConfigRepository(db)
	uow := repository.NewUnitOfWork(db)

	// Initialize services
	tenantService := service.NewTenantService(uow, tenantRepo, adminRepo, legacyRepo, validate, cfg.PlatformDomain)
	proxyService := service.NewProxyService(time.Duration(cfg.ProxyTimeoutSec) * time.Second)
	tokenService := service.NewTokenService(proxyService, service.NewCredentialStore())
	sessionService := service.NewSessionService(adminRepo, tenantRepo, cfg.JWTSecret, time.Duration(cfg.SessionTTLHours)*time.Hour)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	tenantHandler := handlers.NewTenantHandler(tenantService)
	proxyHandler := handlers.NewProxyHandler(proxyService, tokenService)
	authHandler := handlers.NewAuthHandler(tokenService)
	adminHandler := handlers.NewAdminHandler(sessionService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		// Generic ERP proxy. OPTIONS short-circuits before any upstream call.
		proxy := api.Group("/proxy")
		{
			proxy.OPTIONS("", proxyHandler.Options)
			proxy.GET("", proxyHandler.Forward)
			proxy.POST("", proxyHandler.Forward)
			proxy.PUT("", proxyHandler.Forward)
			proxy.DELETE("", proxyHandler.Forward)
		}

		// ERP credential lifecycle
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
			auth.GET("/status", authHandler.Status)
		}

		// Admin sessions
		admin := api.Group("/admin")
		{
			admin.POST("/login", adminHandler.Login)
		}

		// Tenant configuration surface. Registration and the subdomain check
		// are open; everything else requires an admin session.
		tenant := api.Group("/tenant")
		{
			tenant.POST("/register", tenantHandler.Register)
			tenant.GET("/check-subdomain/:key", tenantHandler.CheckSubdomain)

			protected := tenant.Group("")
			protected.Use(middleware.RequireAdmin(sessionService))
			{
				protected.GET("", tenantHandler.ListTenants)
				protected.GET("/:id", tenantHandler.GetTenant)
				protected.PUT("/:id", tenantHandler.UpdateTenant)
				protected.POST("/:id/environments", tenantHandler.AddEnvironment)
				protected.PUT("/:id/environments/:envId", tenantHandler.UpdateEnvironment)
				protected.DELETE("/:id/environments/:envId", tenantHandler.RemoveEnvironment)
				protected.POST("/:id/sync-legacy", tenantHandler.SyncLegacy)
			}
		}
	}

	// Methods outside a route's declared set
	router.NoMethod(proxyHandler.MethodNotAllowed)

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString(middleware.RequestIDKey),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
