package controller

import (
	"wrapsite_backend/pkg/utils/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UploadSubmissionPhoto uploadt een foto vanuit een publiek formulier
// (configurator of contactformulier) en geeft de publieke URL terug. De URL
// wordt daarna in de inzending zelf meegestuurd.
func UploadSubmissionPhoto(c *fiber.Ctx) error {
	kind := c.Params("kind")
	if kind != "configurator" && kind != "contact" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown upload kind",
		})
	}

	file, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No file provided",
		})
	}

	url, err := storage.UploadImage(c.Context(), file, kind, uuid.NewString())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"url": url,
	})
}
