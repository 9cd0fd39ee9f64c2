package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"entgo.io/ent/dialect"
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/internlink/internlink_backend/internal/repo"
	"github.com/internlink/internlink_backend/internal/repo/enttest"
	"github.com/internlink/internlink_backend/internal/service/notification"
	pasetotoken "github.com/internlink/internlink_backend/pkg/paseto"
)

func newTestClient(t *testing.T) *repo.Client {
	t.Helper()
	client := enttest.Open(t, dialect.SQLite,
		fmt.Sprintf("file:%s?mode=memory&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })
	return client
}

// injectClaims stands in for the paseto middleware.
func injectClaims(userID uuid.UUID) fiber.Handler {
	return func(c fiber.Ctx) error {
		c.Locals(pasetotoken.CtxKeyClaims, &pasetotoken.Claims{
			UserID:   userID,
			UserType: "student",
		})
		return c.Next()
	}
}

func newNotificationApp(db *repo.Client, userID uuid.UUID) *fiber.App {
	h := NewNotificationHandler(notification.New(db))

	app := fiber.New()
	group := app.Group("/notifications", injectClaims(userID))
	group.Get("/", h.List)
	group.Get("/unread-count", h.UnreadCount)
	group.Patch("/:id/read", h.MarkRead)
	group.Patch("/read-all", h.MarkAllRead)
	return app
}

func createNotifUser(t *testing.T, db *repo.Client, email string) uuid.UUID {
	t.Helper()
	u, err := db.User.Create().
		SetEmail(email).
		SetPasswordHash("x").
		SetUserType("student").
		Save(context.Background())
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u.ID
}

func TestNotificationEndpoints(t *testing.T) {
	db := newTestClient(t)
	svc := notification.New(db)
	ctx := context.Background()

	owner := createNotifUser(t, db, "owner@test.local")
	other := createNotifUser(t, db, "other@test.local")

	notif, err := svc.Create(ctx, notification.CreateRequest{
		UserID: owner,
		Type:   "application_status",
		Title:  "Your application was shortlisted",
	})
	if err != nil {
		t.Fatalf("create notification: %v", err)
	}

	t.Run("list returns 200", func(t *testing.T) {
		app := newNotificationApp(db, owner)
		req := httptest.NewRequest(http.MethodGet, "/notifications/", nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Errorf("status = %d, want 200", resp.StatusCode)
		}
	})

	t.Run("unread count returns 200", func(t *testing.T) {
		app := newNotificationApp(db, owner)
		req := httptest.NewRequest(http.MethodGet, "/notifications/unread-count", nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Errorf("status = %d, want 200", resp.StatusCode)
		}
	})

	t.Run("mark read by owner returns 204", func(t *testing.T) {
		app := newNotificationApp(db, owner)
		req := httptest.NewRequest(http.MethodPatch, "/notifications/"+notif.ID.String()+"/read", nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != http.StatusNoContent {
			t.Errorf("status = %d, want 204", resp.StatusCode)
		}
	})

	t.Run("foreign notification maps to 404", func(t *testing.T) {
		app := newNotificationApp(db, other)
		req := httptest.NewRequest(http.MethodPatch, "/notifications/"+notif.ID.String()+"/read", nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("status = %d, want 404", resp.StatusCode)
		}
	})

	t.Run("malformed id maps to 400", func(t *testing.T) {
		app := newNotificationApp(db, owner)
		req := httptest.NewRequest(http.MethodPatch, "/notifications/not-a-uuid/read", nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", resp.StatusCode)
		}
	})

	t.Run("missing claims maps to 401", func(t *testing.T) {
		h := NewNotificationHandler(notification.New(db))
		app := fiber.New()
		app.Get("/notifications", h.List)

		req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", resp.StatusCode)
		}
	})
}
