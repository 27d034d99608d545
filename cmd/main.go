package main

import (
	"context"
	"fmt"
	"log"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/random"

	"designmeta/internal/caching"
	"designmeta/internal/config"
	"designmeta/internal/handlers"
	"designmeta/internal/middleware"
	"designmeta/internal/repositories"
	"designmeta/internal/services"
	"designmeta/pkg/database"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	pool, err := database.NewPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	jwtSecret := cfg.JWTSecret
	if jwtSecret == "" {
		jwtSecret = random.String(32)
		log.Printf("WARNING: JWT_SECRET not set, using generated secret")
	}

	cacheSvc := caching.NewRedisCacheService(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	minioSvc, err := services.NewMinioService(cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.UseSSL)
	if err != nil {
		log.Fatalf("Failed to initialize MinIO service: %v", err)
	}
	if err := minioSvc.EnsureBucketExists(context.Background(), cfg.Minio.Bucket); err != nil {
		log.Printf("WARNING: Could not ensure bucket %s exists: %v", cfg.Minio.Bucket, err)
	}

	// Repositories
	metaRepo := repositories.NewProductMetaRepository(pool)
	attachmentRepo := repositories.NewAttachmentRepository(pool)
	capabilityRepo := repositories.NewCapabilityRepository(pool)

	// Services
	capabilitySvc := services.NewCapabilityService(capabilityRepo)
	resolverSvc := services.NewResolverService(metaRepo, attachmentRepo, minioSvc, cacheSvc, cfg.Minio.Bucket, cfg.PresignExpiry())
	designSvc := services.NewDesignImageService(metaRepo, attachmentRepo, resolverSvc, minioSvc, cacheSvc, cfg.Minio.Bucket, cfg.PresignExpiry())
	attachmentSvc := services.NewAttachmentService(attachmentRepo, minioSvc, cfg.Minio.Bucket, cfg.PresignExpiry())

	// Handlers
	editorHandlers := handlers.NewEditorHandlers(resolverSvc, capabilitySvc, cacheSvc, "/v1/admin-ajax", "/v1/admin/attachments", cfg.NonceTTL())
	productHandlers := handlers.NewProductHandlers(designSvc, capabilitySvc)
	ajaxHandlers := handlers.NewAjaxHandlers(designSvc, capabilitySvc, cacheSvc)
	attachmentHandlers := handlers.NewAttachmentHandlers(attachmentSvc, capabilitySvc)
	healthHandlers := handlers.NewHealthHandlers(pool, cacheSvc, minioSvc, cfg.Minio.Bucket)

	e := echo.New()

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	// Health endpoints (no auth required)
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)

	// Client-side behavior bundle
	e.Static("/assets", "web/assets")

	// Authenticated admin surface
	v1 := e.Group("/v1")
	protected := v1.Group("")
	protected.Use(echojwt.WithConfig(middleware.JWTConfig(jwtSecret)))

	protected.GET("/admin/products/:id/design-image/editor", editorHandlers.RenderEditor)
	protected.GET("/admin/products/:id/design-image", editorHandlers.GetDesignImage)
	protected.GET("/admin/design-image/config", editorHandlers.ClientConfig)
	protected.POST("/admin/products/:id/save", productHandlers.SaveProduct)
	protected.POST("/admin/attachments", attachmentHandlers.Upload)
	protected.GET("/admin/attachments/:id", attachmentHandlers.Get)

	// Generic admin-action endpoint, dispatched by the "action" form field
	protected.POST("/admin-ajax", ajaxHandlers.HandleAction)

	log.Printf("designmeta server v%s starting on port %d", version, cfg.Port)
	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", cfg.Port)))
}
