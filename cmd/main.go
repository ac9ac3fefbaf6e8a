package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	_ "movie-catalog/docs"
	"movie-catalog/internal/config"
	"movie-catalog/internal/database"
	"movie-catalog/internal/handlers"
	"movie-catalog/internal/metrics"
	"movie-catalog/internal/repository"
	"movie-catalog/internal/routes"
	"movie-catalog/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

// @title Movie Catalog API
// @version 1.0
// @description Movie catalog backend: genres, movies, name search, reviews, favorites and user accounts

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3001
// @BasePath /
// @schemes http https

func main() {
	// Load environment variables
	loadEnvFile()

	log := setupLogger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Errorf("Error closing database connection: %v", err)
		}
	}()

	m := metrics.New()
	if sqlDB, err := db.DB.DB(); err == nil {
		if err := m.RegisterDB(sqlDB); err != nil {
			log.WithError(err).Warn("Could not register database pool metrics")
		}
	}

	movieRepo := repository.NewMovieRepository(db)
	genreRepo := repository.NewGenreRepository(db)
	userRepo := repository.NewUserRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	movieService := services.NewMovieService(movieRepo, genreRepo, reviewRepo, favoriteRepo, log)
	reviewService := services.NewReviewService(reviewRepo, movieRepo, userRepo, log)
	favoriteService := services.NewFavoriteService(favoriteRepo, movieRepo, userRepo, log)
	authService := services.NewAuthService(userRepo, services.NewBcryptHasher(cfg.Auth.BcryptCost), log)

	h := routes.Handlers{
		Movie:    handlers.NewMovieHandler(movieService, log),
		Review:   handlers.NewReviewHandler(reviewService, log),
		Favorite: handlers.NewFavoriteHandler(favoriteService, log),
		Auth:     handlers.NewAuthHandler(authService, log),
	}

	if cfg.MinIO.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		minioService, err := services.NewMinIOService(ctx, &cfg.MinIO, log)
		cancel()
		if err != nil {
			log.Fatalf("Failed to initialize MinIO service: %v", err)
		}
		h.Upload = handlers.NewUploadHandler(minioService, log)
	} else {
		log.Info("MinIO not configured, poster uploads disabled")
	}

	app := routes.NewApp(cfg.Server, log, m)

	app.Get("/health", healthCheckHandler(db))
	app.Get("/metrics", m.Handler())

	// Swagger documentation
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	routes.Setup(app, h)

	// Graceful shutdown
	go gracefulShutdown(app, log)

	log.Infof("Movie Catalog API starting on port %s", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start HTTP server: %v", err)
	}
}

func setupLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	if os.Getenv("GO_ENV") == "dev" || os.Getenv("GO_ENV") == "development" {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

func healthCheckHandler(db *database.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status, code := "ok", fiber.StatusOK
		dbStatus := "healthy"
		if err := db.HealthCheck(); err != nil {
			status, code = "degraded", fiber.StatusServiceUnavailable
			dbStatus = "unhealthy"
		}

		return c.Status(code).JSON(fiber.Map{
			"status":    status,
			"service":   "movie-catalog",
			"version":   "1.0.0",
			"database":  dbStatus,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func gracefulShutdown(app *fiber.App, log *logrus.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.Errorf("Error during shutdown: %v", err)
	}

	log.Info("Server shutdown complete")
}

// loadEnvFile loads envs/.env.<GO_ENV>, falling back to envs/.env. Values
// already present in the environment win.
func loadEnvFile() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{})
	log.SetOutput(os.Stdout)

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "dev"
	}

	execDir, err := os.Getwd()
	if err != nil {
		log.Warnf("Could not get working directory: %v", err)
		return
	}

	envFile := filepath.Join(execDir, "envs", ".env."+env)
	if err := godotenv.Load(envFile); err != nil {
		log.Warnf("Could not load environment file %s: %v", envFile, err)

		defaultEnvFile := filepath.Join(execDir, "envs", ".env")
		if err := godotenv.Load(defaultEnvFile); err != nil {
			log.Warnf("Could not load default environment file: %v", err)
		} else {
			log.Infof("Environment loaded from default file %s", defaultEnvFile)
		}
	} else {
		log.Infof("Environment loaded from file %s", envFile)
	}
}
