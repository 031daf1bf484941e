package utils

import "github.com/gofiber/fiber/v2"

// ErrorBody is the body of every non-2xx response
type ErrorBody struct {
	Error string `json:"error" example:"movie not found"`
	Code  int    `json:"code" example:"404"`
}

// JSONResponse sends data as the whole response body
func JSONResponse(c *fiber.Ctx, code int, data interface{}) error {
	return c.Status(code).JSON(data)
}

// NoContentResponse sends 204 with an empty body
func NoContentResponse(c *fiber.Ctx) error {
	c.Response().ResetBody()
	c.Status(fiber.StatusNoContent)
	return nil
}

// ErrorResponse sends an error response
func ErrorResponse(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(ErrorBody{
		Error: message,
		Code:  code,
	})
}
