package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/internlink/internlink_backend/internal/service/company"
	pasetotoken "github.com/internlink/internlink_backend/pkg/paseto"
)

type CompanyHandler struct {
	svc company.Service
}

func NewCompanyHandler(svc company.Service) *CompanyHandler {
	return &CompanyHandler{svc: svc}
}

func mapCompanyError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, company.ErrNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, company.ErrAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, company.ErrInvalidPhone):
		return badRequest(c, err.Error())
	case errors.Is(err, company.ErrNotApproved):
		return forbidden(c)
	default:
		return internalError(c)
	}
}

// POST /companies/me/profile
func (h *CompanyHandler) CreateProfile(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		CompanyName  string  `json:"company_name"`
		Industry     *string `json:"industry"`
		Website      *string `json:"website"`
		Location     *string `json:"location"`
		Description  *string `json:"description"`
		ContactPhone *string `json:"contact_phone"`
		PhoneRegion  string  `json:"phone_region"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.CompanyName == "" {
		return badRequest(c, "company_name is required")
	}

	p, err := h.svc.CreateProfile(c.Context(), claims.UserID, company.CreateProfileRequest{
		CompanyName:  body.CompanyName,
		Industry:     body.Industry,
		Website:      body.Website,
		Location:     body.Location,
		Description:  body.Description,
		ContactPhone: body.ContactPhone,
		PhoneRegion:  body.PhoneRegion,
	})
	if err != nil {
		return mapCompanyError(c, err)
	}

	return created(c, p)
}

// PATCH /companies/me/profile
func (h *CompanyHandler) UpdateProfile(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		CompanyName  *string `json:"company_name"`
		Industry     *string `json:"industry"`
		Website      *string `json:"website"`
		Location     *string `json:"location"`
		Description  *string `json:"description"`
		ContactPhone *string `json:"contact_phone"`
		PhoneRegion  string  `json:"phone_region"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.UpdateProfile(c.Context(), claims.UserID, company.UpdateProfileRequest{
		CompanyName:  body.CompanyName,
		Industry:     body.Industry,
		Website:      body.Website,
		Location:     body.Location,
		Description:  body.Description,
		ContactPhone: body.ContactPhone,
		PhoneRegion:  body.PhoneRegion,
	})
	if err != nil {
		return mapCompanyError(c, err)
	}

	return ok(c, p)
}

// GET /companies/me/profile
func (h *CompanyHandler) GetProfile(c fiber.Ctx) error {
	claims, valid := pasetotoken.ClaimsFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	p, err := h.svc.Get(c.Context(), claims.UserID)
	if err != nil {
		return mapCompanyError(c, err)
	}
	return ok(c, p)
}

// GET /companies
func (h *CompanyHandler) ListApproved(c fiber.Ctx) error {
	var q struct {
		Page    int `query:"page"`
		PerPage int `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	list, err := h.svc.ListApproved(c.Context(), q.Page, q.PerPage)
	if err != nil {
		return mapCompanyError(c, err)
	}
	return ok(c, list)
}
