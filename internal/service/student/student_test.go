package student

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"entgo.io/ent/dialect"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/internlink/internlink_backend/internal/repo"
	entcs "github.com/internlink/internlink_backend/internal/repo/collegestudent"
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

func TestUpsertProfile(t *testing.T) {
	db := newTestClient(t)
	svc := New(db)
	ctx := context.Background()

	studentID := createUser(t, db, "s@test.local", "student")
	companyID := createUser(t, db, "c@test.local", "company")

	t.Run("create then update", func(t *testing.T) {
		p, err := svc.UpsertProfile(ctx, studentID, UpsertProfileRequest{
			FirstName: "Alice",
			Degree:    strPtr("B.Tech"),
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if p.FirstName != "Alice" {
			t.Errorf("first_name = %q", p.FirstName)
		}

		year := 2027
		p, err = svc.UpsertProfile(ctx, studentID, UpsertProfileRequest{
			FirstName:      "Alice",
			GraduationYear: &year,
		})
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if p.GraduationYear == nil || *p.GraduationYear != 2027 {
			t.Errorf("graduation_year = %v", p.GraduationYear)
		}
		if p.Degree == nil || *p.Degree != "B.Tech" {
			t.Errorf("degree lost on update: %v", p.Degree)
		}
		if n := db.StudentProfile.Query().CountX(ctx); n != 1 {
			t.Errorf("profile rows = %d, want 1", n)
		}
	})

	t.Run("wrong account type", func(t *testing.T) {
		if _, err := svc.UpsertProfile(ctx, companyID, UpsertProfileRequest{FirstName: "X"}); !errors.Is(err, ErrNotStudent) {
			t.Errorf("error = %v, want ErrNotStudent", err)
		}
		if _, err := svc.UpsertProfile(ctx, uuid.New(), UpsertProfileRequest{FirstName: "X"}); !errors.Is(err, ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})
}

func TestResumeKey(t *testing.T) {
	db := newTestClient(t)
	svc := New(db)
	ctx := context.Background()

	studentID := createUser(t, db, "r@test.local", "student")

	if err := svc.SetResumeKey(ctx, studentID, "resumes/x.pdf"); !errors.Is(err, ErrNotFound) {
		t.Errorf("no profile yet: error = %v, want ErrNotFound", err)
	}

	if _, err := svc.UpsertProfile(ctx, studentID, UpsertProfileRequest{FirstName: "R"}); err != nil {
		t.Fatalf("create profile: %v", err)
	}
	if err := svc.SetResumeKey(ctx, studentID, "resumes/x.pdf"); err != nil {
		t.Fatalf("set resume key: %v", err)
	}

	p, err := svc.Get(ctx, studentID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.ResumeKey == nil || *p.ResumeKey != "resumes/x.pdf" {
		t.Errorf("resume_key = %v", p.ResumeKey)
	}
}

func TestLinkCollege(t *testing.T) {
	db := newTestClient(t)
	svc := New(db)
	ctx := context.Background()

	studentID := createUser(t, db, "s@test.local", "student")
	collegeID := createUser(t, db, "col@test.local", "college")
	if _, err := db.CollegeProfile.Create().
		SetUserID(collegeID).
		SetCollegeName("DIT").
		Save(ctx); err != nil {
		t.Fatalf("create college profile: %v", err)
	}

	link, err := svc.LinkCollege(ctx, studentID, collegeID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Student-initiated links wait for the college to verify.
	if link.VerificationStatus != entcs.VerificationStatusPending {
		t.Errorf("status = %v, want pending", link.VerificationStatus)
	}

	if _, err := svc.LinkCollege(ctx, studentID, collegeID); !errors.Is(err, ErrAlreadyLinked) {
		t.Errorf("error = %v, want ErrAlreadyLinked", err)
	}
	if _, err := svc.LinkCollege(ctx, studentID, uuid.New()); !errors.Is(err, ErrCollegeNotFound) {
		t.Errorf("error = %v, want ErrCollegeNotFound", err)
	}
}

func TestListColleges(t *testing.T) {
	db := newTestClient(t)
	svc := New(db)
	ctx := context.Background()

	for _, name := range []string{"Zeta College", "Alpha College"} {
		id := createUser(t, db, name+"@test.local", "college")
		if _, err := db.CollegeProfile.Create().
			SetUserID(id).
			SetCollegeName(name).
			Save(ctx); err != nil {
			t.Fatalf("create college profile: %v", err)
		}
	}

	list, err := svc.ListColleges(ctx, 1, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d colleges, want 2", len(list))
	}
	if list[0].CollegeName != "Alpha College" {
		t.Errorf("not sorted by name: first = %q", list[0].CollegeName)
	}
}

func strPtr(s string) *string { return &s }
