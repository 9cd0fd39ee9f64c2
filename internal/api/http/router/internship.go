package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/internlink/internlink_backend/internal/api/http/handler"
	"github.com/internlink/internlink_backend/pkg/authorize"
)

func (r *Router) registerInternshipRoutes(
	api fiber.Router,
	h *handler.InternshipHandler,
	appH *handler.ApplicationHandler,
	authRequired fiber.Handler,
	requirePerm permFn,
) {
	// The catalog is public; only open postings of approved companies show up.
	group := api.Group("/internships")
	group.Get("/", h.List)
	group.Get("/:id", h.Get)

	// Applying is a student action.
	group.Post("/:id/apply", authRequired,
		requirePerm(authorize.ResourceApplication, authorize.ActionApply), appH.Apply)

	apps := api.Group("/applications", authRequired)
	apps.Get("/:id", requirePerm(authorize.ResourceApplication, authorize.ActionRead), appH.Get)
	apps.Delete("/:id", requirePerm(authorize.ResourceApplication, authorize.ActionWithdraw), appH.Withdraw)
	apps.Patch("/:id/status", requirePerm(authorize.ResourceApplication, authorize.ActionUpdate), appH.UpdateStatus)
}
