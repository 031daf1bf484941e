package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	_ "movie-catalog/docs"
	"movie-catalog/internal/config"
	"movie-catalog/internal/database"
	"movie-catalog/internal/handlers"
	"movie-catalog/internal/repository"
	"movie-catalog/internal/routes"
	"movie-catalog/internal/seed"
	"movie-catalog/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

// @title Movie Catalog API
// @version 1.0
// @description CRUD API for a catalog of movies, directors and genres
// @termsOfService http://swagger.io/terms/

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8010
// @BasePath /
// @schemes http https

func main() {
	resetAndSeed := flag.Bool("reset-and-seed", false, "drop every table and reload the bundled dataset before serving")
	flag.Parse()

	// Load environment variables
	loadEnvFile()

	cfg := config.Load()
	if *resetAndSeed {
		cfg.Seed.ResetAndSeed = true
	}

	log := setupLogger()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
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

	movieRepo := repository.NewMovieRepository(db)
	directorRepo := repository.NewDirectorRepository(db)
	genreRepo := repository.NewGenreRepository(db)

	if err := seedCatalog(db, movieRepo, directorRepo, genreRepo, cfg.Seed, log); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	var (
		trailers      services.TrailerStorage
		uploadHandler *handlers.UploadHandler
	)
	if cfg.MinIO.Enabled {
		minioService, err := services.NewMinIOService(&cfg.MinIO, log)
		if err != nil {
			log.Fatalf("Failed to initialize MinIO service: %v", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := minioService.EnsureBucket(ctx); err != nil {
			log.WithError(err).Warn("Failed to configure bucket, but continuing...")
		}
		cancel()
		trailers = minioService
		uploadHandler = handlers.NewUploadHandler(minioService, log)
	}

	app := routes.NewApp(cfg.Server, log)

	app.Get("/health", healthCheckHandler(db))

	// Swagger documentation
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	routes.Setup(app, routes.Handlers{
		Movie:    handlers.NewMovieHandler(services.NewMovieService(movieRepo, trailers, log), log),
		Director: handlers.NewDirectorHandler(services.NewDirectorService(directorRepo), log),
		Genre:    handlers.NewGenreHandler(services.NewGenreService(genreRepo), log),
		Upload:   uploadHandler,
	})

	// Graceful shutdown
	go gracefulShutdown(app, log)

	log.Infof("Movie Catalog API starting on port %s", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start HTTP server: %v", err)
	}
}

func seedCatalog(db *database.Database, movies repository.MovieRepository, directors repository.DirectorRepository, genres repository.GenreRepository, cfg config.SeedConfig, log *logrus.Logger) error {
	ds, err := seed.Default()
	if err != nil {
		return err
	}

	if cfg.ResetAndSeed {
		log.Warn("Reset-and-seed requested: existing catalog data will be dropped")
	}

	loader := seed.NewLoader(db, movies, directors, genres, log)
	_, err = loader.Run(context.Background(), ds, seed.Options{
		ResetAndSeed: cfg.ResetAndSeed,
		SeedIfEmpty:  cfg.SeedIfEmpty,
	})
	return err
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
		dbStatus := "healthy"
		code := fiber.StatusOK
		if err := db.HealthCheck(); err != nil {
			dbStatus = "unhealthy"
			code = fiber.StatusServiceUnavailable
		}

		return c.Status(code).JSON(fiber.Map{
			"status":    "ok",
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
