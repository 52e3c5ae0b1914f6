package handler

import (
	"github.com/gofiber/fiber/v2"

	"celula-igreja/internal/middleware"
	"celula-igreja/internal/service/media"
)

type UserHandler struct {
	mediaSvc media.Service
}

func NewUserHandler(mediaSvc media.Service) *UserHandler {
	return &UserHandler{mediaSvc: mediaSvc}
}

func (h *UserHandler) Me(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

func (h *UserHandler) UploadPhoto(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		return middleware.Unauthorized("User not authenticated")
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return middleware.BadRequest("Photo file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.BadRequest("Failed to read photo file")
	}
	defer file.Close()

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	photoURL, err := h.mediaSvc.UploadPhoto(c.Context(), user.ID, user.GroupID, fileHeader.Size, mimeType, file)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"photo_url": photoURL,
	})
}
