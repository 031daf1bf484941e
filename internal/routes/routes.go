package routes

import (
	"errors"
	"time"

	"movie-catalog/internal/config"
	"movie-catalog/internal/handlers"
	"movie-catalog/internal/utils"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
)

type Handlers struct {
	Movie    *handlers.MovieHandler
	Director *handlers.DirectorHandler
	Genre    *handlers.GenreHandler
	// Upload is nil when no object store is configured.
	Upload *handlers.UploadHandler
}

// NewApp builds the fiber application with the catalog's middleware and error handling.
func NewApp(cfg config.ServerConfig, log *logrus.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Movie Catalog API",
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		IdleTimeout:           120 * time.Second,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(log),
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
	})

	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	// Logger middleware
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
		Output:     log.Out,
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
		AllowCredentials: false,
		MaxAge:           86400, // 24 hours
	}))

	return app
}

// errorHandler renders errors that escape a handler, including unmatched routes
// and recovered panics, with the same body as handled errors.
func errorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "internal server error"

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		}

		entry := log.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
			"status": code,
		})
		if code >= fiber.StatusInternalServerError {
			entry.Error("Request error")
		} else {
			entry.Debug("Request error")
		}

		return utils.ErrorResponse(c, code, message)
	}
}

func Setup(app *fiber.App, h Handlers) {
	movies := app.Group("/movies")
	{
		movies.Get("/", h.Movie.ListMovies)
		movies.Post("/", h.Movie.CreateMovie)
		movies.Get("/:id", h.Movie.GetMovieByID)
		movies.Put("/:id", h.Movie.ReplaceMovie)
		movies.Delete("/:id", h.Movie.DeleteMovie)
	}

	directors := app.Group("/directors")
	{
		directors.Get("/", h.Director.ListDirectors)
		directors.Post("/", h.Director.CreateDirector)
		directors.Get("/:id", h.Director.GetDirectorByID)
		directors.Put("/:id", h.Director.ReplaceDirector)
		directors.Delete("/:id", h.Director.DeleteDirector)
	}

	genres := app.Group("/genres")
	{
		genres.Get("/", h.Genre.ListGenres)
		genres.Post("/", h.Genre.CreateGenre)
		genres.Get("/:id", h.Genre.GetGenreByID)
		genres.Put("/:id", h.Genre.ReplaceGenre)
		genres.Delete("/:id", h.Genre.DeleteGenre)
	}

	if h.Upload != nil {
		upload := app.Group("/upload")
		{
			upload.Get("/presign", h.Upload.GetPresignedURL)
		}
	}
}
