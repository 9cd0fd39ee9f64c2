package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/internlink/internlink_backend/internal/service/admin"
)

type AdminHandler struct {
	svc admin.Service
}

func NewAdminHandler(svc admin.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func mapAdminError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, admin.ErrUserNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, admin.ErrCompanyNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, admin.ErrEmailAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, admin.ErrPasswordTooShort):
		return badRequest(c, err.Error())
	case errors.Is(err, admin.ErrCannotDeleteAdmin):
		return forbidden(c)
	default:
		return internalError(c)
	}
}

// GET /admin/users
func (h *AdminHandler) ListUsers(c fiber.Ctx) error {
	var q struct {
		UserType *string `query:"user_type"`
		Search   *string `query:"search"`
		Page     int     `query:"page"`
		PerPage  int     `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	users, total, err := h.svc.ListUsers(c.Context(), admin.UserFilter{
		UserType: q.UserType,
		Search:   q.Search,
	}, q.Page, q.PerPage)
	if err != nil {
		return mapAdminError(c, err)
	}

	return ok(c, fiber.Map{"users": users, "total": total})
}

// GET /admin/users/:id
func (h *AdminHandler) GetUser(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	detail, err := h.svc.GetUser(c.Context(), id)
	if err != nil {
		return mapAdminError(c, err)
	}
	return ok(c, detail)
}

// GET /admin/internships
func (h *AdminHandler) ListInternships(c fiber.Ctx) error {
	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	list, err := h.svc.ListAllInternships(c.Context(), q.Page, q.PerPage)
	if err != nil {
		return mapAdminError(c, err)
	}
	return ok(c, list)
}

// GET /admin/applications
func (h *AdminHandler) ListApplications(c fiber.Ctx) error {
	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	list, err := h.svc.ListAllApplications(c.Context(), q.Page, q.PerPage)
	if err != nil {
		return mapAdminError(c, err)
	}
	return ok(c, list)
}

// POST /admin/users
func (h *AdminHandler) CreateAdmin(c fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	u, err := h.svc.CreateAdmin(c.Context(), admin.CreateAdminRequest{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		return mapAdminError(c, err)
	}

	return created(c, fiber.Map{"id": u.ID, "email": u.Email, "user_type": u.UserType})
}

// DELETE /admin/users/:id
func (h *AdminHandler) DeleteUser(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}

	if err := h.svc.DeleteUser(c.Context(), id); err != nil {
		return mapAdminError(c, err)
	}
	return noContent(c)
}

// GET /admin/companies/pending
func (h *AdminHandler) ListPendingCompanies(c fiber.Ctx) error {
	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	list, err := h.svc.ListPendingCompanies(c.Context(), q.Page, q.PerPage)
	if err != nil {
		return mapAdminError(c, err)
	}
	return ok(c, list)
}

// POST /admin/companies/:id/approve
func (h *AdminHandler) ApproveCompany(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid company user id")
	}

	cp, err := h.svc.ApproveCompany(c.Context(), id)
	if err != nil {
		return mapAdminError(c, err)
	}
	return ok(c, cp)
}

// POST /admin/companies/:id/reject
func (h *AdminHandler) RejectCompany(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid company user id")
	}

	if err := h.svc.RejectCompany(c.Context(), id); err != nil {
		return mapAdminError(c, err)
	}
	return noContent(c)
}

// GET /admin/stats
func (h *AdminHandler) Stats(c fiber.Ctx) error {
	stats, err := h.svc.GetStats(c.Context())
	if err != nil {
		return mapAdminError(c, err)
	}
	return ok(c, stats)
}

// GET /admin/reports/applications
func (h *AdminHandler) ReportApplications(c fiber.Ctx) error {
	var q struct {
		From string `query:"from"`
		To   string `query:"to"`
	}
	_ = c.Bind().Query(&q)

	var from, to *time.Time
	if q.From != "" {
		t, err := time.Parse(time.RFC3339, q.From)
		if err != nil {
			return badRequest(c, "from must be RFC3339")
		}
		from = &t
	}
	if q.To != "" {
		t, err := time.Parse(time.RFC3339, q.To)
		if err != nil {
			return badRequest(c, "to must be RFC3339")
		}
		to = &t
	}

	rows, err := h.svc.ReportApplicationsByStatus(c.Context(), from, to)
	if err != nil {
		return mapAdminError(c, err)
	}
	return ok(c, rows)
}

// GET /admin/reports/companies
func (h *AdminHandler) ReportCompanies(c fiber.Ctx) error {
	rows, err := h.svc.ReportCompanies(c.Context())
	if err != nil {
		return mapAdminError(c, err)
	}
	return ok(c, rows)
}

// POST /admin/demo-data
func (h *AdminHandler) ImportDemoData(c fiber.Ctx) error {
	if err := h.svc.ImportDemoData(c.Context()); err != nil {
		return mapAdminError(c, err)
	}
	return ok(c, fiber.Map{"message": "demo data imported"})
}

// DELETE /admin/demo-data
func (h *AdminHandler) DeleteDemoData(c fiber.Ctx) error {
	if err := h.svc.DeleteDemoData(c.Context()); err != nil {
		return mapAdminError(c, err)
	}
	return noContent(c)
}
