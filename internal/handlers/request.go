package handlers

import (
	"bytes"
	"errors"
	"strconv"

	"movie-catalog/internal/repository"
	"movie-catalog/internal/utils"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

var errNotObject = errors.New("request body must be a JSON object")

// idBits keeps parsed ids inside the signed integer id columns.
const idBits = strconv.IntSize - 1

// decodeBody reads the body as JSON whatever the Content-Type says. Unknown fields
// are ignored; a field of the wrong JSON type is an error.
func decodeBody(c *fiber.Ctx, dst interface{}) error {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 || body[0] != '{' {
		return errNotObject
	}
	return json.Unmarshal(body, dst)
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, idBits)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// parseOptionalID reads a foreign key query parameter. An empty value counts as absent.
func parseOptionalID(c *fiber.Ctx, key string) (*uint, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, idBits)
	if err != nil {
		return nil, err
	}
	value := uint(id)
	return &value, nil
}

// storeError maps a service error to 404 or a logged 500.
func storeError(c *fiber.Ctx, logger *logrus.Logger, err error, entity string, fields logrus.Fields) error {
	if errors.Is(err, repository.ErrNotFound) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, entity+" not found")
	}

	logger.WithError(err).WithFields(fields).WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
	}).Errorf("Failed to access %s store", entity)
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, "internal server error")
}
