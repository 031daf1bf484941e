package handlers

import (
	"movie-catalog/internal/models"
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type GenreHandler struct {
	service services.GenreService
	logger  *logrus.Logger
}

func NewGenreHandler(service services.GenreService, logger *logrus.Logger) *GenreHandler {
	return &GenreHandler{
		service: service,
		logger:  logger,
	}
}

// ListGenres godoc
// @Summary List genres
// @Tags genres
// @Produce json
// @Success 200 {array} GenreResponse
// @Failure 500 {object} utils.ErrorBody "Internal server error"
// @Router /genres/ [get]
func (h *GenreHandler) ListGenres(c *fiber.Ctx) error {
	genres, err := h.service.List(c.UserContext())
	if err != nil {
		return storeError(c, h.logger, err, "genre", nil)
	}
	return utils.JSONResponse(c, fiber.StatusOK, NewGenreResponses(genres))
}

// GetGenreByID godoc
// @Summary Get genre by ID
// @Tags genres
// @Produce json
// @Param id path int true "Genre ID"
// @Success 200 {object} GenreResponse
// @Failure 400 {object} utils.ErrorBody "Invalid genre ID"
// @Failure 404 {object} utils.ErrorBody "Genre not found"
// @Router /genres/{id} [get]
func (h *GenreHandler) GetGenreByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid genre ID")
	}

	genre, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return storeError(c, h.logger, err, "genre", logrus.Fields{"id": id})
	}
	return utils.JSONResponse(c, fiber.StatusOK, NewGenreResponse(genre))
}

// CreateGenre godoc
// @Summary Create a genre
// @Tags genres
// @Accept json
// @Produce json
// @Param genre body GenreRequest true "Genre"
// @Success 201 {object} GenreResponse
// @Failure 400 {object} utils.ErrorBody "Invalid request body"
// @Failure 500 {object} utils.ErrorBody "Internal server error"
// @Router /genres/ [post]
func (h *GenreHandler) CreateGenre(c *fiber.Ctx) error {
	var req GenreRequest
	if err := decodeBody(c, &req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	genre := &models.Genre{}
	req.Apply(genre)

	if err := h.service.Create(c.UserContext(), genre); err != nil {
		return storeError(c, h.logger, err, "genre", nil)
	}
	return utils.JSONResponse(c, fiber.StatusCreated, NewGenreResponse(genre))
}

// ReplaceGenre godoc
// @Summary Replace a genre
// @Tags genres
// @Accept json
// @Produce json
// @Param id path int true "Genre ID"
// @Param genre body GenreRequest true "Genre"
// @Success 200 {object} GenreResponse
// @Failure 400 {object} utils.ErrorBody "Invalid request"
// @Failure 404 {object} utils.ErrorBody "Genre not found"
// @Router /genres/{id} [put]
func (h *GenreHandler) ReplaceGenre(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid genre ID")
	}

	var req GenreRequest
	if err := decodeBody(c, &req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	genre := &models.Genre{ID: id}
	req.Apply(genre)

	if err := h.service.Replace(c.UserContext(), genre); err != nil {
		return storeError(c, h.logger, err, "genre", logrus.Fields{"id": id})
	}
	return utils.JSONResponse(c, fiber.StatusOK, NewGenreResponse(genre))
}

// DeleteGenre godoc
// @Summary Delete a genre
// @Tags genres
// @Param id path int true "Genre ID"
// @Success 204 "Deleted"
// @Failure 400 {object} utils.ErrorBody "Invalid genre ID"
// @Failure 404 {object} utils.ErrorBody "Genre not found"
// @Router /genres/{id} [delete]
func (h *GenreHandler) DeleteGenre(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid genre ID")
	}

	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return storeError(c, h.logger, err, "genre", logrus.Fields{"id": id})
	}
	return utils.NoContentResponse(c)
}
