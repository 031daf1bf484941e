package handlers

import (
	"movie-catalog/internal/models"
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type DirectorHandler struct {
	service services.DirectorService
	logger  *logrus.Logger
}

func NewDirectorHandler(service services.DirectorService, logger *logrus.Logger) *DirectorHandler {
	return &DirectorHandler{
		service: service,
		logger:  logger,
	}
}

// ListDirectors godoc
// @Summary List directors
// @Tags directors
// @Produce json
// @Success 200 {array} DirectorResponse
// @Failure 500 {object} utils.ErrorBody "Internal server error"
// @Router /directors/ [get]
func (h *DirectorHandler) ListDirectors(c *fiber.Ctx) error {
	directors, err := h.service.List(c.UserContext())
	if err != nil {
		return storeError(c, h.logger, err, "director", nil)
	}
	return utils.JSONResponse(c, fiber.StatusOK, NewDirectorResponses(directors))
}

// GetDirectorByID godoc
// @Summary Get director by ID
// @Tags directors
// @Produce json
// @Param id path int true "Director ID"
// @Success 200 {object} DirectorResponse
// @Failure 400 {object} utils.ErrorBody "Invalid director ID"
// @Failure 404 {object} utils.ErrorBody "Director not found"
// @Router /directors/{id} [get]
func (h *DirectorHandler) GetDirectorByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid director ID")
	}

	director, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return storeError(c, h.logger, err, "director", logrus.Fields{"id": id})
	}
	return utils.JSONResponse(c, fiber.StatusOK, NewDirectorResponse(director))
}

// CreateDirector godoc
// @Summary Create a director
// @Tags directors
// @Accept json
// @Produce json
// @Param director body DirectorRequest true "Director"
// @Success 201 {object} DirectorResponse
// @Failure 400 {object} utils.ErrorBody "Invalid request body"
// @Failure 500 {object} utils.ErrorBody "Internal server error"
// @Router /directors/ [post]
func (h *DirectorHandler) CreateDirector(c *fiber.Ctx) error {
	var req DirectorRequest
	if err := decodeBody(c, &req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	director := &models.Director{}
	req.Apply(director)

	if err := h.service.Create(c.UserContext(), director); err != nil {
		return storeError(c, h.logger, err, "director", nil)
	}
	return utils.JSONResponse(c, fiber.StatusCreated, NewDirectorResponse(director))
}

// ReplaceDirector godoc
// @Summary Replace a director
// @Tags directors
// @Accept json
// @Produce json
// @Param id path int true "Director ID"
// @Param director body DirectorRequest true "Director"
// @Success 200 {object} DirectorResponse
// @Failure 400 {object} utils.ErrorBody "Invalid request"
// @Failure 404 {object} utils.ErrorBody "Director not found"
// @Router /directors/{id} [put]
func (h *DirectorHandler) ReplaceDirector(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid director ID")
	}

	var req DirectorRequest
	if err := decodeBody(c, &req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	director := &models.Director{ID: id}
	req.Apply(director)

	if err := h.service.Replace(c.UserContext(), director); err != nil {
		return storeError(c, h.logger, err, "director", logrus.Fields{"id": id})
	}
	return utils.JSONResponse(c, fiber.StatusOK, NewDirectorResponse(director))
}

// DeleteDirector godoc
// @Summary Delete a director
// @Description Movies referencing the director keep their director_id.
// @Tags directors
// @Param id path int true "Director ID"
// @Success 204 "Deleted"
// @Failure 400 {object} utils.ErrorBody "Invalid director ID"
// @Failure 404 {object} utils.ErrorBody "Director not found"
// @Router /directors/{id} [delete]
func (h *DirectorHandler) DeleteDirector(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid director ID")
	}

	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return storeError(c, h.logger, err, "director", logrus.Fields{"id": id})
	}
	return utils.NoContentResponse(c)
}
