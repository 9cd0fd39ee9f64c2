package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/internlink/internlink_backend/internal/service/college"
	pasetotoken "github.com/internlink/internlink_backend/pkg/paseto"
)

type CollegeHandler struct {
	svc college.Service
}

func NewCollegeHandler(svc college.Service) *CollegeHandler {
	return &CollegeHandler{svc: svc}
}

func mapCollegeError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, college.ErrProfileNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, college.ErrStudentNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, college.ErrNotLinked):
		return notFound(c, err.Error())
	case errors.Is(err, college.ErrAlreadyLinked):
		return conflict(c, err.Error())
	case errors.Is(err, college.ErrNotAStudent):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// PUT /colleges/me/profile
func (h *CollegeHandler) UpsertProfile(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		CollegeName   string  `json:"college_name"`
		Location      *string `json:"location"`
		Website       *string `json:"website"`
		Description   *string `json:"description"`
		Accreditation *string `json:"accreditation"`
		ContactPhone  *string `json:"contact_phone"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.CollegeName == "" {
		return badRequest(c, "college_name is required")
	}

	p, err := h.svc.UpsertProfile(c.Context(), claims.UserID, college.UpsertProfileRequest{
		CollegeName:   body.CollegeName,
		Location:      body.Location,
		Website:       body.Website,
		Description:   body.Description,
		Accreditation: body.Accreditation,
		ContactPhone:  body.ContactPhone,
	})
	if err != nil {
		return mapCollegeError(c, err)
	}
	return ok(c, p)
}

// GET /colleges/me/profile
func (h *CollegeHandler) GetProfile(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	p, err := h.svc.Get(c.Context(), claims.UserID)
	if err != nil {
		return mapCollegeError(c, err)
	}
	return ok(c, p)
}

// GET /colleges/me/students
func (h *CollegeHandler) ListStudents(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var q struct {
		Status  *string `query:"status"`
		Page    int     `query:"page"`
		PerPage int     `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	entries, err := h.svc.ListStudents(c.Context(), claims.UserID, q.Status, q.Page, q.PerPage)
	if err != nil {
		return mapCollegeError(c, err)
	}
	return ok(c, entries)
}

// POST /colleges/me/students
func (h *CollegeHandler) AddStudent(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Email string `json:"email"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.Email == "" {
		return badRequest(c, "email is required")
	}

	link, err := h.svc.AddStudentByEmail(c.Context(), claims.UserID, body.Email)
	if err != nil {
		return mapCollegeError(c, err)
	}
	return created(c, link)
}

// POST /colleges/me/students/:id/verify
func (h *CollegeHandler) VerifyStudent(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid student id")
	}

	link, err := h.svc.VerifyStudent(c.Context(), claims.UserID, studentID)
	if err != nil {
		return mapCollegeError(c, err)
	}
	return ok(c, link)
}

// POST /colleges/me/students/:id/reject
func (h *CollegeHandler) RejectStudent(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid student id")
	}

	link, err := h.svc.RejectStudent(c.Context(), claims.UserID, studentID)
	if err != nil {
		return mapCollegeError(c, err)
	}
	return ok(c, link)
}

// DELETE /colleges/me/students/:id
func (h *CollegeHandler) RemoveStudent(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid student id")
	}

	if err := h.svc.RemoveStudent(c.Context(), claims.UserID, studentID); err != nil {
		return mapCollegeError(c, err)
	}
	return noContent(c)
}

// GET /colleges/me/dashboard
func (h *CollegeHandler) Dashboard(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	d, err := h.svc.GetDashboard(c.Context(), claims.UserID)
	if err != nil {
		return mapCollegeError(c, err)
	}
	return ok(c, d)
}
