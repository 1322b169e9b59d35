package handlers

import (
	"encoding/base64"
	"errors"
	"io"

	"ledgerlens/internal/dto"
	"ledgerlens/internal/models"
	"ledgerlens/internal/service"

	"github.com/gofiber/fiber/v2"
)

// readDocument builds a RawDocument from either a multipart upload (under the
// given field name) or a JSON body carrying an image URL / base64 string.
func readDocument(c *fiber.Ctx, field string, maxSize int64) (models.RawDocument, error) {
	fileHeader, err := c.FormFile(field)
	if err == nil {
		mediaType := fileHeader.Header.Get("Content-Type")
		if err := service.ValidateUpload(fileHeader.Size, mediaType, maxSize); err != nil {
			return models.RawDocument{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		src, err := fileHeader.Open()
		if err != nil {
			return models.RawDocument{}, fiber.NewError(fiber.StatusBadRequest, "failed to open uploaded file")
		}
		defer src.Close()

		data, err := io.ReadAll(src)
		if err != nil {
			return models.RawDocument{}, fiber.NewError(fiber.StatusBadRequest, "failed to read uploaded file")
		}

		return models.RawDocument{
			FileName:  fileHeader.Filename,
			MediaType: mediaType,
			Bytes:     data,
		}, nil
	}

	var req dto.UploadImageRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RawDocument{}, fiber.NewError(fiber.StatusBadRequest, "file field '"+field+"' or JSON image payload required")
	}

	switch {
	case req.ImageURL != "":
		return models.RawDocument{ImageURL: req.ImageURL}, nil

	case req.ImageBase64 != "":
		data, err := base64.StdEncoding.DecodeString(req.ImageBase64)
		if err != nil {
			return models.RawDocument{}, fiber.NewError(fiber.StatusBadRequest, "image_base64 is not valid base64")
		}
		mediaType := req.MediaType
		if mediaType == "" {
			mediaType = "image/jpeg"
		}
		if err := service.ValidateUpload(int64(len(data)), mediaType, maxSize); err != nil {
			return models.RawDocument{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return models.RawDocument{MediaType: mediaType, Bytes: data}, nil
	}

	return models.RawDocument{}, fiber.NewError(fiber.StatusBadRequest, "file field '"+field+"' or JSON image payload required")
}

// statusFor maps the extraction error taxonomy onto HTTP statuses.
func statusFor(err error) int {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}

	switch {
	case errors.Is(err, service.ErrNotConfigured):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, service.ErrEmptyResponse):
		return fiber.StatusBadGateway
	}

	var upstream *service.UpstreamError
	if errors.As(err, &upstream) {
		return fiber.StatusBadGateway
	}
	var malformed *service.MalformedResponseError
	if errors.As(err, &malformed) {
		return fiber.StatusBadGateway
	}

	return fiber.StatusInternalServerError
}
