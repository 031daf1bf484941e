package handlers

import (
	"movie-catalog/internal/models"
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MovieHandler struct {
	service services.MovieService
	logger  *logrus.Logger
}

func NewMovieHandler(service services.MovieService, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		logger:  logger,
	}
}

// ListMovies godoc
// @Summary List movies
// @Description List every movie, or only those of one director or one genre. director_id wins when both are given.
// @Tags movies
// @Produce json
// @Param director_id query int false "Director ID"
// @Param genre_id query int false "Genre ID"
// @Success 200 {array} MovieResponse
// @Failure 400 {object} utils.ErrorBody "Invalid filter"
// @Failure 500 {object} utils.ErrorBody "Internal server error"
// @Router /movies/ [get]
func (h *MovieHandler) ListMovies(c *fiber.Ctx) error {
	ctx := c.UserContext()

	directorID, err := parseOptionalID(c, "director_id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "director_id must be a non-negative integer")
	}
	// genre_id is not consulted at all once director_id is present.
	genreID, err := parseOptionalID(c, "genre_id")
	if err != nil && directorID == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "genre_id must be a non-negative integer")
	}

	movies, err := h.service.ListMovies(ctx, services.MovieFilter{DirectorID: directorID, GenreID: genreID})
	if err != nil {
		return storeError(c, h.logger, err, "movie", nil)
	}

	return utils.JSONResponse(c, fiber.StatusOK, NewMovieResponses(movies))
}

// GetMovieByID godoc
// @Summary Get movie by ID
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} MovieResponse
// @Failure 400 {object} utils.ErrorBody "Invalid movie ID"
// @Failure 404 {object} utils.ErrorBody "Movie not found"
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovieByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	movie, err := h.service.GetMovieByID(c.UserContext(), id)
	if err != nil {
		return storeError(c, h.logger, err, "movie", logrus.Fields{"id": id})
	}

	return utils.JSONResponse(c, fiber.StatusOK, NewMovieResponse(movie))
}

// CreateMovie godoc
// @Summary Create a movie
// @Description The id is assigned by the server; an id in the body is ignored.
// @Tags movies
// @Accept json
// @Produce json
// @Param movie body MovieRequest true "Movie"
// @Success 201 {object} MovieResponse
// @Failure 400 {object} utils.ErrorBody "Invalid request body"
// @Failure 500 {object} utils.ErrorBody "Internal server error"
// @Router /movies/ [post]
func (h *MovieHandler) CreateMovie(c *fiber.Ctx) error {
	var req MovieRequest
	if err := decodeBody(c, &req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	movie := &models.Movie{}
	req.Apply(movie)

	if err := h.service.CreateMovie(c.UserContext(), movie); err != nil {
		return storeError(c, h.logger, err, "movie", nil)
	}

	h.logger.WithField("id", movie.ID).Debug("Movie created")
	return utils.JSONResponse(c, fiber.StatusCreated, NewMovieResponse(movie))
}

// ReplaceMovie godoc
// @Summary Replace a movie
// @Description Overwrites every field. Fields missing from the body become null.
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param movie body MovieRequest true "Movie"
// @Success 200 {object} MovieResponse
// @Failure 400 {object} utils.ErrorBody "Invalid request"
// @Failure 404 {object} utils.ErrorBody "Movie not found"
// @Failure 500 {object} utils.ErrorBody "Internal server error"
// @Router /movies/{id} [put]
func (h *MovieHandler) ReplaceMovie(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	var req MovieRequest
	if err := decodeBody(c, &req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	movie := &models.Movie{ID: id}
	req.Apply(movie)

	if err := h.service.ReplaceMovie(c.UserContext(), movie); err != nil {
		return storeError(c, h.logger, err, "movie", logrus.Fields{"id": id})
	}

	return utils.JSONResponse(c, fiber.StatusOK, NewMovieResponse(movie))
}

// DeleteMovie godoc
// @Summary Delete a movie
// @Tags movies
// @Param id path int true "Movie ID"
// @Success 204 "Deleted"
// @Failure 400 {object} utils.ErrorBody "Invalid movie ID"
// @Failure 404 {object} utils.ErrorBody "Movie not found"
// @Failure 500 {object} utils.ErrorBody "Internal server error"
// @Router /movies/{id} [delete]
func (h *MovieHandler) DeleteMovie(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	if err := h.service.DeleteMovie(c.UserContext(), id); err != nil {
		return storeError(c, h.logger, err, "movie", logrus.Fields{"id": id})
	}

	return utils.NoContentResponse(c)
}
