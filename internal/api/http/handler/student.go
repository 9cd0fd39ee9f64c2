package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/internlink/internlink_backend/internal/service/student"
	pasetotoken "github.com/internlink/internlink_backend/pkg/paseto"
)

type StudentHandler struct {
	svc student.Service
}

func NewStudentHandler(svc student.Service) *StudentHandler {
	return &StudentHandler{svc: svc}
}

func mapStudentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, student.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, student.ErrCollegeNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, student.ErrAlreadyLinked):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// PUT /students/me/profile
func (h *StudentHandler) UpsertProfile(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		FirstName      string  `json:"first_name"`
		LastName       *string `json:"last_name"`
		College        *string `json:"college"`
		Degree         *string `json:"degree"`
		Branch         *string `json:"branch"`
		GraduationYear *int    `json:"graduation_year"`
		Skills         *string `json:"skills"`
		Bio            *string `json:"bio"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.FirstName == "" {
		return badRequest(c, "first_name is required")
	}

	p, err := h.svc.UpsertProfile(c.Context(), claims.UserID, student.UpsertProfileRequest{
		FirstName:      body.FirstName,
		LastName:       body.LastName,
		College:        body.College,
		Degree:         body.Degree,
		Branch:         body.Branch,
		GraduationYear: body.GraduationYear,
		Skills:         body.Skills,
		Bio:            body.Bio,
	})
	if err != nil {
		return mapStudentError(c, err)
	}

	return ok(c, p)
}

// GET /students/me/profile
func (h *StudentHandler) GetProfile(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	p, err := h.svc.Get(c.Context(), claims.UserID)
	if err != nil {
		return mapStudentError(c, err)
	}
	return ok(c, p)
}

// GET /students/:id/profile  (colleges and admins)
func (h *StudentHandler) GetProfileByID(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid student id")
	}

	p, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return mapStudentError(c, err)
	}
	return ok(c, p)
}

// POST /students/me/college
func (h *StudentHandler) LinkCollege(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		CollegeUserID string `json:"college_user_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	collegeID, err := uuid.Parse(body.CollegeUserID)
	if err != nil {
		return badRequest(c, "invalid college_user_id")
	}

	link, err := h.svc.LinkCollege(c.Context(), claims.UserID, collegeID)
	if err != nil {
		return mapStudentError(c, err)
	}
	return created(c, link)
}

// GET /students/me/college
func (h *StudentHandler) MyColleges(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	links, err := h.svc.MyColleges(c.Context(), claims.UserID)
	if err != nil {
		return mapStudentError(c, err)
	}
	return ok(c, links)
}

// GET /colleges  (any authenticated user)
func (h *StudentHandler) ListColleges(c fiber.Ctx) error {
	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	list, err := h.svc.ListColleges(c.Context(), q.Page, q.PerPage)
	if err != nil {
		return mapStudentError(c, err)
	}
	return ok(c, list)
}
