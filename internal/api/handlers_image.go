package api

import (
	"errors"

	"coffeejournal/internal/storage"
	"coffeejournal/internal/wizard"
	"github.com/gofiber/fiber/v2"
)

// WizardImage attaches an uploaded photo to the in-progress tasting. A new
// upload replaces the previous attachment, including its file on disk.
func (handler *Handler) WizardImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "unreadable image upload")
	}
	defer file.Close()

	name, err := handler.images.Save(file, fileHeader.Size)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrImageTooLarge):
			return apiError(c, fiber.StatusRequestEntityTooLarge, "image exceeds the 5 MB limit")
		case errors.Is(err, storage.ErrNotAnImage):
			return apiError(c, fiber.StatusUnsupportedMediaType, "file is not a supported image")
		}
		handler.logger.Error().Err(err).Msg("storing image failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to store image")
	}

	session := handler.session(c)
	if previous := session.Form().Image.File; previous != "" {
		if err := handler.images.Remove(previous); err != nil {
			handler.logger.Warn().Err(err).Str("file", previous).Msg("removing replaced image failed")
		}
	}

	image := wizard.Image{File: name, Preview: "/uploads/" + name}
	session.SetImage(image)
	return c.Status(fiber.StatusCreated).JSON(image)
}

// WizardRemoveImage detaches and deletes the uploaded photo.
func (handler *Handler) WizardRemoveImage(c *fiber.Ctx) error {
	session := handler.session(c)
	previous := session.Form().Image.File
	if previous != "" {
		if err := handler.images.Remove(previous); err != nil {
			handler.logger.Warn().Err(err).Str("file", previous).Msg("removing image failed")
		}
	}
	session.SetImage(wizard.Image{})
	return c.JSON(fiber.Map{"ok": true})
}
