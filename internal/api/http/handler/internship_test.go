package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/internlink/internlink_backend/internal/service/internship"
)

// The catalog endpoints are mounted without auth middleware; the handlers
// must serve requests that carry no claims at all.
func TestCatalogIsPublic(t *testing.T) {
	db := newTestClient(t)
	ctx := context.Background()

	co, err := db.User.Create().
		SetEmail("co@test.local").
		SetPasswordHash("x").
		SetUserType("company").
		Save(ctx)
	if err != nil {
		t.Fatalf("create company user: %v", err)
	}
	if _, err := db.CompanyProfile.Create().
		SetUserID(co.ID).
		SetCompanyName("Acme").
		SetApproved(true).
		SetApprovedAt(time.Now()).
		Save(ctx); err != nil {
		t.Fatalf("create company profile: %v", err)
	}
	in, err := db.Internship.Create().
		SetCompanyID(co.ID).
		SetTitle("Backend Intern").
		Save(ctx)
	if err != nil {
		t.Fatalf("create internship: %v", err)
	}

	h := NewInternshipHandler(internship.New(db))
	app := fiber.New()
	app.Get("/internships", h.List)
	app.Get("/internships/:id", h.Get)

	t.Run("list without token", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/internships", nil))
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Errorf("status = %d, want 200", resp.StatusCode)
		}
	})

	t.Run("get without token", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/internships/"+in.ID.String(), nil))
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Errorf("status = %d, want 200", resp.StatusCode)
		}
	})
}
