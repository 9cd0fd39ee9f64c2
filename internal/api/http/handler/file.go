package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/internlink/internlink_backend/internal/service/file"
	pasetotoken "github.com/internlink/internlink_backend/pkg/paseto"
)

type FileHandler struct {
	svc file.Service
}

func NewFileHandler(svc file.Service) *FileHandler {
	return &FileHandler{svc: svc}
}

func mapFileError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, file.ErrProfileNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, file.ErrNoFile):
		return badRequest(c, err.Error())
	case errors.Is(err, file.ErrBadFileType):
		return badRequest(c, err.Error())
	case errors.Is(err, file.ErrFileTooLarge):
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{"error": err.Error()})
	default:
		return internalError(c)
	}
}

// POST /students/me/resume  (multipart field "file")
func (h *FileHandler) UploadResume(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file is required")
	}

	res, err := h.svc.UploadResume(c.Context(), claims.UserID, fh)
	if err != nil {
		return mapFileError(c, err)
	}
	return created(c, res)
}

// POST /companies/me/logo  (multipart field "file")
func (h *FileHandler) UploadLogo(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file is required")
	}

	res, err := h.svc.UploadLogo(c.Context(), claims.UserID, fh)
	if err != nil {
		return mapFileError(c, err)
	}
	return created(c, res)
}

// GET /files/download-url?key=...
func (h *FileHandler) DownloadURL(c fiber.Ctx) error {
	key := c.Query("key")
	if key == "" {
		return badRequest(c, "key is required")
	}

	url, err := h.svc.GetDownloadURL(c.Context(), key)
	if err != nil {
		return mapFileError(c, err)
	}
	return ok(c, fiber.Map{"url": url})
}
