package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/internlink/internlink_backend/internal/api/http/handler"
	"github.com/internlink/internlink_backend/pkg/authorize"
)

type permFn func(authorize.Resource, authorize.Action) fiber.Handler

func (r *Router) registerStudentRoutes(
	api fiber.Router,
	h *handler.StudentHandler,
	appH *handler.ApplicationHandler,
	fileH *handler.FileHandler,
	authRequired fiber.Handler,
	requirePerm permFn,
	requireSelf permFn,
) {
	me := api.Group("/students/me", authRequired)
	me.Put("/profile", requireSelf(authorize.ResourceStudentProfile, authorize.ActionUpdate), h.UpsertProfile)
	me.Get("/profile", requireSelf(authorize.ResourceStudentProfile, authorize.ActionRead), h.GetProfile)
	me.Post("/college", requireSelf(authorize.ResourceStudentProfile, authorize.ActionUpdate), h.LinkCollege)
	me.Get("/college", requireSelf(authorize.ResourceStudentProfile, authorize.ActionRead), h.MyColleges)
	me.Get("/applications", requirePerm(authorize.ResourceApplication, authorize.ActionList), appH.ListMine)
	me.Post("/resume", requirePerm(authorize.ResourceFile, authorize.ActionCreate), fileH.UploadResume)

	// Colleges (and admins) look up student profiles by user id.
	api.Get("/students/:id/profile", authRequired,
		requirePerm(authorize.ResourceStudentProfile, authorize.ActionRead), h.GetProfileByID)

	// Public college directory for the link-college flow.
	api.Get("/colleges", h.ListColleges)
}
