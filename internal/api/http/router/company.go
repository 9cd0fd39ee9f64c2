package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/internlink/internlink_backend/internal/api/http/handler"
	"github.com/internlink/internlink_backend/pkg/authorize"
)

func (r *Router) registerCompanyRoutes(
	api fiber.Router,
	h *handler.CompanyHandler,
	internH *handler.InternshipHandler,
	appH *handler.ApplicationHandler,
	fileH *handler.FileHandler,
	authRequired fiber.Handler,
	requirePerm permFn,
	requireSelf permFn,
) {
	me := api.Group("/companies/me", authRequired)
	me.Post("/profile", requireSelf(authorize.ResourceCompanyProfile, authorize.ActionCreate), h.CreateProfile)
	me.Patch("/profile", requireSelf(authorize.ResourceCompanyProfile, authorize.ActionUpdate), h.UpdateProfile)
	me.Get("/profile", requireSelf(authorize.ResourceCompanyProfile, authorize.ActionRead), h.GetProfile)
	me.Post("/logo", requirePerm(authorize.ResourceFile, authorize.ActionCreate), fileH.UploadLogo)

	me.Post("/internships", requirePerm(authorize.ResourceInternship, authorize.ActionCreate), internH.Create)
	me.Get("/internships", requirePerm(authorize.ResourceInternship, authorize.ActionList), internH.ListMine)
	me.Get("/stats", requirePerm(authorize.ResourceInternship, authorize.ActionList), internH.Stats)
	me.Patch("/internships/:id", requirePerm(authorize.ResourceInternship, authorize.ActionUpdate), internH.Update)
	me.Post("/internships/:id/close", requirePerm(authorize.ResourceInternship, authorize.ActionClose), internH.Close)
	me.Post("/internships/:id/reopen", requirePerm(authorize.ResourceInternship, authorize.ActionUpdate), internH.Reopen)
	me.Delete("/internships/:id", requirePerm(authorize.ResourceInternship, authorize.ActionDelete), internH.Delete)
	me.Get("/internships/:id/applications", requirePerm(authorize.ResourceApplication, authorize.ActionList), appH.ListForInternship)

	// Public approved-company directory.
	api.Get("/companies", h.ListApproved)
}
