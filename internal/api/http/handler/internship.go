package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/internlink/internlink_backend/internal/service/internship"
	pasetotoken "github.com/internlink/internlink_backend/pkg/paseto"
)

type InternshipHandler struct {
	svc internship.Service
}

func NewInternshipHandler(svc internship.Service) *InternshipHandler {
	return &InternshipHandler{svc: svc}
}

func mapInternshipError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, internship.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, internship.ErrNotOwner):
		return forbidden(c)
	case errors.Is(err, internship.ErrCompanyNotApproved):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, internship.ErrClosed):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

func parseDeadline(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GET /internships  (public catalog)
func (h *InternshipHandler) List(c fiber.Ctx) error {
	var q struct {
		Location *string `query:"location"`
		WorkMode *string `query:"work_mode"`
		Search   *string `query:"search"`
		Page     int     `query:"page"`
		PerPage  int     `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	list, err := h.svc.ListOpen(c.Context(), internship.ListFilter{
		Location: q.Location,
		WorkMode: q.WorkMode,
		Search:   q.Search,
	}, q.Page, q.PerPage)
	if err != nil {
		return mapInternshipError(c, err)
	}
	return ok(c, list)
}

// GET /internships/:id
func (h *InternshipHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid internship id")
	}

	in, err := h.svc.GetOpen(c.Context(), id)
	if err != nil {
		return mapInternshipError(c, err)
	}
	return ok(c, in)
}

// POST /companies/me/internships
func (h *InternshipHandler) Create(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Title               string  `json:"title"`
		Description         *string `json:"description"`
		Requirements        *string `json:"requirements"`
		Location            *string `json:"location"`
		WorkMode            string  `json:"work_mode"`
		Duration            *string `json:"duration"`
		Stipend             *string `json:"stipend"`
		ApplicationDeadline string  `json:"application_deadline"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Title == "" {
		return badRequest(c, "title is required")
	}
	deadline, err := parseDeadline(body.ApplicationDeadline)
	if err != nil {
		return badRequest(c, "application_deadline must be RFC3339")
	}

	in, err := h.svc.Create(c.Context(), claims.UserID, internship.CreateRequest{
		Title:               body.Title,
		Description:         body.Description,
		Requirements:        body.Requirements,
		Location:            body.Location,
		WorkMode:            body.WorkMode,
		Duration:            body.Duration,
		Stipend:             body.Stipend,
		ApplicationDeadline: deadline,
	})
	if err != nil {
		return mapInternshipError(c, err)
	}
	return created(c, in)
}

// PATCH /companies/me/internships/:id
func (h *InternshipHandler) Update(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid internship id")
	}

	var body struct {
		Title               *string `json:"title"`
		Description         *string `json:"description"`
		Requirements        *string `json:"requirements"`
		Location            *string `json:"location"`
		WorkMode            *string `json:"work_mode"`
		Duration            *string `json:"duration"`
		Stipend             *string `json:"stipend"`
		ApplicationDeadline string  `json:"application_deadline"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	deadline, err := parseDeadline(body.ApplicationDeadline)
	if err != nil {
		return badRequest(c, "application_deadline must be RFC3339")
	}

	in, err := h.svc.Update(c.Context(), claims.UserID, id, internship.UpdateRequest{
		Title:               body.Title,
		Description:         body.Description,
		Requirements:        body.Requirements,
		Location:            body.Location,
		WorkMode:            body.WorkMode,
		Duration:            body.Duration,
		Stipend:             body.Stipend,
		ApplicationDeadline: deadline,
	})
	if err != nil {
		return mapInternshipError(c, err)
	}
	return ok(c, in)
}

// POST /companies/me/internships/:id/close
func (h *InternshipHandler) Close(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid internship id")
	}

	in, err := h.svc.Close(c.Context(), claims.UserID, id)
	if err != nil {
		return mapInternshipError(c, err)
	}
	return ok(c, in)
}

// POST /companies/me/internships/:id/reopen
func (h *InternshipHandler) Reopen(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid internship id")
	}

	in, err := h.svc.Reopen(c.Context(), claims.UserID, id)
	if err != nil {
		return mapInternshipError(c, err)
	}
	return ok(c, in)
}

// DELETE /companies/me/internships/:id
func (h *InternshipHandler) Delete(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid internship id")
	}

	if err := h.svc.Delete(c.Context(), claims.UserID, id); err != nil {
		return mapInternshipError(c, err)
	}
	return noContent(c)
}

// GET /companies/me/stats
func (h *InternshipHandler) Stats(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	stats, err := h.svc.Stats(c.Context(), claims.UserID)
	if err != nil {
		return mapInternshipError(c, err)
	}
	return ok(c, stats)
}

// GET /companies/me/internships
func (h *InternshipHandler) ListMine(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	list, err := h.svc.ListMine(c.Context(), claims.UserID, q.Page, q.PerPage)
	if err != nil {
		return mapInternshipError(c, err)
	}
	return ok(c, list)
}
