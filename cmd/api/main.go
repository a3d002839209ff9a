// @title MedRead API
// @version 1.0
// @description Diagnostic reading practice: image catalog, Drive folder registry and timed reading sessions.
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_SESSION_TOKEN' to authorize. The session_token cookie is accepted as well.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "medread/cmd/api/docs"
	"medread/internal/adapter"
	"medread/internal/adapter/broker"
	"medread/internal/cache"
	"medread/internal/config"
	"medread/internal/database"
	"medread/internal/domain"
	"medread/internal/handler"
	"medread/internal/logger"
	"medread/internal/middleware"
	"medread/internal/repository"
	"medread/internal/service"
	"medread/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func corsConfig(cfg config.CORSConfig) cors.Config {
	c := cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}
	// fiber refuses credentials with a wildcard origin
	if cfg.AllowOrigins != "*" {
		c.AllowCredentials = true
	}
	return c
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Redis is optional; without it image stats and categories are read through on every request.
	var (
		appCache    domain.Cache
		redisClient *redis.Client
	)
	if cfg.Redis.Address != "" {
		redisClient, err = cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		appCache = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Successfully connected to Redis")
	} else {
		appLogger.Warn("Redis address not configured, caching disabled")
	}

	// Repositories
	txManager := repository.NewTransactionManagerAdapter(db)
	userRepository := repository.NewSQLXUserRepository(db)
	authSessionRepository := repository.NewSQLXAuthSessionRepository(db)
	imageRepository := repository.NewSQLXImageRepository(db)
	folderRepository := repository.NewSQLXDriveFolderRepository(db)
	sessionRepository := repository.NewSQLXReadingSessionRepository(db)
	responseRepository := repository.NewSQLXSessionResponseRepository(db)

	// Services
	sessionBroker := broker.NewHTTPSessionBroker(cfg.Auth.BrokerURL, cfg.Auth.BrokerTimeout)
	authService, err := service.NewAuthService(userRepository, authSessionRepository, sessionBroker, txManager, cfg.Auth)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}
	imageService := service.NewImageService(imageRepository, appCache, cfg.CacheTTLs.ImageStats)
	folderService := service.NewDriveFolderService(folderRepository, imageRepository, txManager, appCache)
	readingService := service.NewReadingSessionService(sessionRepository, responseRepository, imageRepository, txManager)
	appLogger.Info("Services initialized")

	// Handlers
	validator := validation.NewValidator(cfg.Sessions.MaxImageCount)
	handlers := handler.Handlers{
		Health:   handler.NewHealthHandler(db, appCache),
		Auth:     handler.NewAuthHandler(authService, validator, cfg.Auth),
		Images:   handler.NewImageHandler(imageService, validator),
		Drive:    handler.NewDriveHandler(folderService, validator),
		Sessions: handler.NewSessionHandler(readingService, validator, cfg.Sessions.DefaultImageCount),
	}

	app := fiber.New(fiber.Config{
		AppName:      "MedRead API",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(corsConfig(cfg.CORS)))

	app.Get("/swagger/*", swagger.HandlerDefault)

	handler.RegisterRoutes(
		app.Group("/api"),
		handlers,
		middleware.Protected(authService, cfg.Auth.CookieName),
		middleware.NewValidationMiddleware(validator, cfg.Sessions.DefaultImageCount),
	)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
