package notification

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"entgo.io/ent/dialect"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/internlink/internlink_backend/internal/repo"
	"github.com/internlink/internlink_backend/internal/repo/enttest"
)

func newTestClient(t *testing.T) *repo.Client {
	t.Helper()
	client := enttest.Open(t, dialect.SQLite,
		fmt.Sprintf("file:%s?mode=memory&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })
	return client
}

func createUser(t *testing.T, db *repo.Client, email string) uuid.UUID {
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

func TestNotificationFlow(t *testing.T) {
	db := newTestClient(t)
	svc := New(db)
	ctx := context.Background()

	userID := createUser(t, db, "n@test.local")
	otherID := createUser(t, db, "other@test.local")

	first, err := svc.Create(ctx, CreateRequest{
		UserID: userID,
		Type:   "application_status",
		Title:  "Shortlisted",
		Data:   map[string]any{"application_id": uuid.New().String()},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, CreateRequest{
		UserID: userID,
		Type:   "company_approved",
		Title:  "Welcome",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	t.Run("unread count", func(t *testing.T) {
		n, err := svc.UnreadCount(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 2 {
			t.Errorf("unread = %d, want 2", n)
		}
	})

	t.Run("mark read is scoped to the owner", func(t *testing.T) {
		if err := svc.MarkRead(ctx, first.ID, otherID); !errors.Is(err, ErrNotFound) {
			t.Errorf("foreign mark: error = %v, want ErrNotFound", err)
		}
		if err := svc.MarkRead(ctx, first.ID, userID); err != nil {
			t.Fatalf("mark read: %v", err)
		}

		list, err := svc.List(ctx, userID, true, 1, 20)
		if err != nil {
			t.Fatalf("list unread: %v", err)
		}
		if len(list) != 1 {
			t.Errorf("unread left = %d, want 1", len(list))
		}
	})

	t.Run("mark all read", func(t *testing.T) {
		if err := svc.MarkAllRead(ctx, userID); err != nil {
			t.Fatalf("mark all: %v", err)
		}
		n, err := svc.UnreadCount(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 0 {
			t.Errorf("unread = %d, want 0", n)
		}

		// The full list keeps everything.
		list, err := svc.List(ctx, userID, false, 1, 20)
		if err != nil {
			t.Fatalf("list all: %v", err)
		}
		if len(list) != 2 {
			t.Errorf("all = %d, want 2", len(list))
		}
	})
}
