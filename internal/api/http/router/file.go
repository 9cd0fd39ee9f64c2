package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/internlink/internlink_backend/internal/api/http/handler"
)

func (r *Router) registerFileRoutes(api fiber.Router, h *handler.FileHandler, authRequired fiber.Handler) {
	// Presigned URLs are short-lived; any authenticated account may resolve
	// a key it legitimately holds (own resume, logo of a listed company).
	group := api.Group("/files", authRequired)
	group.Get("/download-url", h.DownloadURL)
}
