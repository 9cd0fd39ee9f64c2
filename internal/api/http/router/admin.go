package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/internlink/internlink_backend/internal/api/http/handler"
	"github.com/internlink/internlink_backend/internal/api/http/middleware"
	"github.com/internlink/internlink_backend/pkg/authorize"
)

func (r *Router) registerAdminRoutes(api fiber.Router, h *handler.AdminHandler, authRequired fiber.Handler) {
	// Every admin route rides on the sys-domain wildcard grant; the user-type
	// check keeps non-admin tokens from even reaching the enforcer.
	group := api.Group("/admin",
		authRequired,
		middleware.RequireUserType(authorize.UserTypeAdmin),
	)

	group.Get("/users", h.ListUsers)
	group.Post("/users", h.CreateAdmin)
	group.Get("/users/:id", h.GetUser)
	group.Delete("/users/:id", h.DeleteUser)

	group.Get("/internships", h.ListInternships)
	group.Get("/applications", h.ListApplications)

	group.Get("/companies/pending", h.ListPendingCompanies)
	group.Post("/companies/:id/approve", h.ApproveCompany)
	group.Post("/companies/:id/reject", h.RejectCompany)

	group.Get("/stats", h.Stats)
	group.Get("/reports/applications", h.ReportApplications)
	group.Get("/reports/companies", h.ReportCompanies)

	group.Post("/demo-data", h.ImportDemoData)
	group.Delete("/demo-data", h.DeleteDemoData)
}
