package company

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/internlink/internlink_backend/internal/repo"
	"github.com/internlink/internlink_backend/internal/repo/enttest"
	entuser "github.com/internlink/internlink_backend/internal/repo/user"
)

func newTestClient(t *testing.T) *repo.Client {
	t.Helper()
	client := enttest.Open(t, dialect.SQLite,
		fmt.Sprintf("file:%s?mode=memory&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })
	return client
}

func createUser(t *testing.T, db *repo.Client, email, userType string) uuid.UUID {
	t.Helper()
	u, err := db.User.Create().
		SetEmail(email).
		SetPasswordHash("x").
		SetUserType(entuser.UserType(userType)).
		Save(context.Background())
	if err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return u.ID
}

func TestCreateProfile(t *testing.T) {
	db := newTestClient(t)
	svc := New(db)
	ctx := context.Background()

	companyID := createUser(t, db, "c@test.local", "company")
	studentID := createUser(t, db, "s@test.local", "student")

	t.Run("starts unapproved", func(t *testing.T) {
		p, err := svc.CreateProfile(ctx, companyID, CreateProfileRequest{
			CompanyName:  "Acme",
			ContactPhone: strPtr("9876543210"),
			PhoneRegion:  "IN",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Approved {
			t.Error("new profile approved")
		}
		if p.ContactPhone == nil || *p.ContactPhone != "+919876543210" {
			t.Errorf("contact_phone = %v, want E.164", p.ContactPhone)
		}

		approved, err := svc.IsApproved(ctx, companyID)
		if err != nil {
			t.Fatalf("is approved: %v", err)
		}
		if approved {
			t.Error("IsApproved = true for pending company")
		}
	})

	t.Run("one profile per account", func(t *testing.T) {
		if _, err := svc.CreateProfile(ctx, companyID, CreateProfileRequest{CompanyName: "Acme 2"}); !errors.Is(err, ErrAlreadyExists) {
			t.Errorf("error = %v, want ErrAlreadyExists", err)
		}
	})

	t.Run("wrong account type", func(t *testing.T) {
		if _, err := svc.CreateProfile(ctx, studentID, CreateProfileRequest{CompanyName: "X"}); !errors.Is(err, ErrNotCompany) {
			t.Errorf("error = %v, want ErrNotCompany", err)
		}
	})

	t.Run("invalid phone", func(t *testing.T) {
		other := createUser(t, db, "c2@test.local", "company")
		if _, err := svc.CreateProfile(ctx, other, CreateProfileRequest{
			CompanyName:  "Bad Phone Inc",
			ContactPhone: strPtr("123"),
		}); !errors.Is(err, ErrInvalidPhone) {
			t.Errorf("error = %v, want ErrInvalidPhone", err)
		}
	})
}

func TestUpdateProfile(t *testing.T) {
	db := newTestClient(t)
	svc := New(db)
	ctx := context.Background()

	companyID := createUser(t, db, "u@test.local", "company")
	if _, err := svc.CreateProfile(ctx, companyID, CreateProfileRequest{
		CompanyName: "Before",
		Industry:    strPtr("Software"),
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	p, err := svc.UpdateProfile(ctx, companyID, UpdateProfileRequest{
		CompanyName: strPtr("After"),
		Location:    strPtr("Pune"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if p.CompanyName != "After" {
		t.Errorf("company_name = %q", p.CompanyName)
	}
	if p.Industry == nil || *p.Industry != "Software" {
		t.Errorf("industry lost on update: %v", p.Industry)
	}

	if _, err := svc.UpdateProfile(ctx, uuid.New(), UpdateProfileRequest{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestApprovalFlag(t *testing.T) {
	db := newTestClient(t)
	svc := New(db)
	ctx := context.Background()

	companyID := createUser(t, db, "a@test.local", "company")
	if _, err := svc.CreateProfile(ctx, companyID, CreateProfileRequest{CompanyName: "Approvable"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := db.CompanyProfile.Update().
		SetApproved(true).
		SetApprovedAt(time.Now()).
		Save(ctx); err != nil {
		t.Fatalf("approve: %v", err)
	}

	approved, err := svc.IsApproved(ctx, companyID)
	if err != nil {
		t.Fatalf("is approved: %v", err)
	}
	if !approved {
		t.Error("IsApproved = false after approval")
	}

	// Missing profile counts as not approved, not as an error.
	approved, err = svc.IsApproved(ctx, uuid.New())
	if err != nil {
		t.Fatalf("is approved: %v", err)
	}
	if approved {
		t.Error("IsApproved = true for missing profile")
	}
}

func strPtr(s string) *string { return &s }
