package handlers

import (
	"context"

	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type TrailerUploader interface {
	GeneratePresignedURL(ctx context.Context, filename string) (string, string, error)
}

type PresignResponse struct {
	PresignedURL string `json:"presigned_url"`
	PublicURL    string `json:"public_url"`
}

type UploadHandler struct {
	uploader TrailerUploader
	logger   *logrus.Logger
}

func NewUploadHandler(uploader TrailerUploader, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		uploader: uploader,
		logger:   logger,
	}
}

// GetPresignedURL godoc
// @Summary Get presigned URL for a trailer upload
// @Description PUT the file to presigned_url, then store public_url as the movie's trailer.
// @Tags upload
// @Produce json
// @Param filename query string true "Filename"
// @Success 200 {object} PresignResponse
// @Failure 400 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /upload/presign [get]
func (h *UploadHandler) GetPresignedURL(c *fiber.Ctx) error {
	filename := c.Query("filename")
	if filename == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "filename is required")
	}

	presignedURL, publicURL, err := h.uploader.GeneratePresignedURL(c.UserContext(), filename)
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate presigned URL")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate presigned URL")
	}

	return utils.JSONResponse(c, fiber.StatusOK, PresignResponse{
		PresignedURL: presignedURL,
		PublicURL:    publicURL,
	})
}
