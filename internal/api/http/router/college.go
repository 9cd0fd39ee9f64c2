package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/internlink/internlink_backend/internal/api/http/handler"
	"github.com/internlink/internlink_backend/pkg/authorize"
)

func (r *Router) registerCollegeRoutes(
	api fiber.Router,
	h *handler.CollegeHandler,
	studentH *handler.StudentHandler,
	authRequired fiber.Handler,
	requirePerm permFn,
	requireSelf permFn,
) {
	me := api.Group("/colleges/me", authRequired)
	me.Put("/profile", requireSelf(authorize.ResourceCollegeProfile, authorize.ActionUpdate), h.UpsertProfile)
	me.Get("/profile", requireSelf(authorize.ResourceCollegeProfile, authorize.ActionRead), h.GetProfile)

	me.Get("/students", requirePerm(authorize.ResourceCollegeStudent, authorize.ActionList), h.ListStudents)
	me.Post("/students", requirePerm(authorize.ResourceCollegeStudent, authorize.ActionCreate), h.AddStudent)
	me.Post("/students/:id/verify", requirePerm(authorize.ResourceCollegeStudent, authorize.ActionVerify), h.VerifyStudent)
	me.Post("/students/:id/reject", requirePerm(authorize.ResourceCollegeStudent, authorize.ActionVerify), h.RejectStudent)
	me.Delete("/students/:id", requirePerm(authorize.ResourceCollegeStudent, authorize.ActionDelete), h.RemoveStudent)

	me.Get("/dashboard", requirePerm(authorize.ResourceCollegeStudent, authorize.ActionList), h.Dashboard)
}
