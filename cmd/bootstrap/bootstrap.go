package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"redeem-clinic-api/config"
	deliveryGraphql "redeem-clinic-api/internal/delivery/graphql"
	deliveryHttp "redeem-clinic-api/internal/delivery/http"
	"redeem-clinic-api/internal/infrastructure/cache"
	"redeem-clinic-api/internal/infrastructure/database"
	"redeem-clinic-api/internal/repository"
	"redeem-clinic-api/internal/service"
	"redeem-clinic-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Apply SQL migrations before opening the pool
	if cfg.DB.MigrationsRun {
		if err := database.RunMigrations(cfg.DB); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Development-only schema sync
	if cfg.DB.Sync {
		if err := database.Sync(db); err != nil {
			return nil, fmt.Errorf("failed to sync database schema: %w", err)
		}
		logrus.Info("Database schema synced")
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer wires repositories, services and the GraphQL schema into
// an HTTP server.
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	accountRepo := repository.NewAccountRepository(db)
	adressesRepo := repository.NewAdressesRepository(db)
	establishmentRepo := repository.NewEstablishmentRepository(db)
	networkRepo := repository.NewNetworkRepository(db)

	// Initialize services
	accountCache := service.NewAccountCache(redisClient, log)
	accountService := service.NewAccountService(log, accountRepo, accountCache)
	adressesService := service.NewAdressesService(log, adressesRepo)
	establishmentService := service.NewEstablishmentService(log, establishmentRepo)
	networkService := service.NewNetworkService(log, networkRepo)

	// Initialize GraphQL schema
	resolver := deliveryGraphql.NewResolver(log, customValidator, accountService, adressesService, establishmentService, networkService)
	schema := deliveryGraphql.NewSchema(resolver)

	// Initialize router
	router := deliveryHttp.NewRouter(schema)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
