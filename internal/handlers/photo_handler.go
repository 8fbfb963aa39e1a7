package handlers

import (
	"Coldbox/internal/services"
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type PhotoHandler struct {
	service services.PhotoService
}

func NewPhotoHandler(service services.PhotoService) *PhotoHandler {
	return &PhotoHandler{service: service}
}

func (h *PhotoHandler) DownloadPhoto(c *fiber.Ctx) error {
	key := strings.TrimLeft(c.Params("*"), "/")
	if key == "" || strings.Contains(key, "..") {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid path"})
	}

	photo, body, err := h.service.OpenPhoto(c.UserContext(), key)
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, photo.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", photo.FileName))
	c.Set(fiber.HeaderETag, fmt.Sprintf("%q", photo.SHA256))
	return c.SendStream(body, int(photo.Size))
}
