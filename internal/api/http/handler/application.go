package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/internlink/internlink_backend/internal/service/application"
	pasetotoken "github.com/internlink/internlink_backend/pkg/paseto"
)

type ApplicationHandler struct {
	svc application.Service
}

func NewApplicationHandler(svc application.Service) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

func mapApplicationError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, application.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, application.ErrInternshipNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, application.ErrInternshipClosed):
		return conflict(c, err.Error())
	case errors.Is(err, application.ErrAlreadyApplied):
		return conflict(c, err.Error())
	case errors.Is(err, application.ErrNotOwner):
		return forbidden(c)
	case errors.Is(err, application.ErrNotInternshipOwner):
		return forbidden(c)
	case errors.Is(err, application.ErrInvalidStatus):
		return badRequest(c, err.Error())
	case errors.Is(err, application.ErrNotWithdrawable):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /internships/:id/apply
func (h *ApplicationHandler) Apply(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}
	internshipID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid internship id")
	}

	var body struct {
		CoverLetter *string `json:"cover_letter"`
	}
	// Body is optional.
	_ = c.Bind().JSON(&body)

	app, err := h.svc.Apply(c.Context(), claims.UserID, application.ApplyRequest{
		InternshipID: internshipID,
		CoverLetter:  body.CoverLetter,
	})
	if err != nil {
		return mapApplicationError(c, err)
	}
	return created(c, app)
}

// GET /applications/:id
func (h *ApplicationHandler) Get(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid application id")
	}

	app, err := h.svc.Get(c.Context(), claims.UserID, id)
	if err != nil {
		return mapApplicationError(c, err)
	}
	return ok(c, app)
}

// DELETE /applications/:id
func (h *ApplicationHandler) Withdraw(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid application id")
	}

	if err := h.svc.Withdraw(c.Context(), claims.UserID, id); err != nil {
		return mapApplicationError(c, err)
	}
	return noContent(c)
}

// GET /students/me/applications
func (h *ApplicationHandler) ListMine(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	list, err := h.svc.ListForStudent(c.Context(), claims.UserID, q.Page, q.PerPage)
	if err != nil {
		return mapApplicationError(c, err)
	}
	return ok(c, list)
}

// GET /companies/me/internships/:id/applications
func (h *ApplicationHandler) ListForInternship(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}
	internshipID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid internship id")
	}

	var q struct {
		Status  *string `query:"status"`
		Page    int     `query:"page"`
		PerPage int     `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	list, err := h.svc.ListForInternship(c.Context(), claims.UserID, internshipID,
		application.StatusFilter{Status: q.Status}, q.Page, q.PerPage)
	if err != nil {
		return mapApplicationError(c, err)
	}
	return ok(c, list)
}

// PATCH /applications/:id/status
func (h *ApplicationHandler) UpdateStatus(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid application id")
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Status == "" {
		return badRequest(c, "status is required")
	}

	app, err := h.svc.UpdateStatus(c.Context(), claims.UserID, id, body.Status)
	if err != nil {
		return mapApplicationError(c, err)
	}
	return ok(c, app)
}
