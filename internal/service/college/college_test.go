package college

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

	collegeID := createUser(t, db, "dit@college.test", "college")

	p, err := svc.UpsertProfile(ctx, collegeID, UpsertProfileRequest{
		CollegeName: "DIT",
		Location:    strPtr("Pune"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.CollegeName != "DIT" {
		t.Errorf("college_name = %q, want DIT", p.CollegeName)
	}

	// Second call updates in place.
	p, err = svc.UpsertProfile(ctx, collegeID, UpsertProfileRequest{
		CollegeName: "DIT Pimpri",
		Website:     strPtr("https://dit.test"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if p.CollegeName != "DIT Pimpri" {
		t.Errorf("college_name = %q, want DIT Pimpri", p.CollegeName)
	}
	if p.Location == nil || *p.Location != "Pune" {
		t.Errorf("location lost on update: %v", p.Location)
	}

	if n := db.CollegeProfile.Query().CountX(ctx); n != 1 {
		t.Errorf("profile rows = %d, want 1", n)
	}
}

func TestRoster(t *testing.T) {
	db := newTestClient(t)
	svc := New(db)
	ctx := context.Background()

	collegeID := createUser(t, db, "roster@college.test", "college")
	studentID := createUser(t, db, "s1@student.test", "student")
	createUser(t, db, "c1@company.test", "company")

	t.Run("add by email starts verified", func(t *testing.T) {
		link, err := svc.AddStudentByEmail(ctx, collegeID, "s1@student.test")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if link.VerificationStatus != entcs.VerificationStatusVerified {
			t.Errorf("status = %v, want verified", link.VerificationStatus)
		}
		if link.VerifiedAt == nil {
			t.Error("verified_at not set")
		}
	})

	t.Run("adding twice conflicts", func(t *testing.T) {
		_, err := svc.AddStudentByEmail(ctx, collegeID, "s1@student.test")
		if !errors.Is(err, ErrAlreadyLinked) {
			t.Errorf("error = %v, want ErrAlreadyLinked", err)
		}
	})

	t.Run("only students can join a roster", func(t *testing.T) {
		if _, err := svc.AddStudentByEmail(ctx, collegeID, "c1@company.test"); !errors.Is(err, ErrNotAStudent) {
			t.Errorf("error = %v, want ErrNotAStudent", err)
		}
		if _, err := svc.AddStudentByEmail(ctx, collegeID, "ghost@student.test"); !errors.Is(err, ErrStudentNotFound) {
			t.Errorf("error = %v, want ErrStudentNotFound", err)
		}
	})

	t.Run("verification flips both ways", func(t *testing.T) {
		link, err := svc.RejectStudent(ctx, collegeID, studentID)
		if err != nil {
			t.Fatalf("reject: %v", err)
		}
		if link.VerificationStatus != entcs.VerificationStatusRejected {
			t.Errorf("status = %v, want rejected", link.VerificationStatus)
		}

		link, err = svc.VerifyStudent(ctx, collegeID, studentID)
		if err != nil {
			t.Fatalf("verify: %v", err)
		}
		if link.VerificationStatus != entcs.VerificationStatusVerified {
			t.Errorf("status = %v, want verified", link.VerificationStatus)
		}
	})

	t.Run("verify requires an existing link", func(t *testing.T) {
		if _, err := svc.VerifyStudent(ctx, collegeID, uuid.New()); !errors.Is(err, ErrNotLinked) {
			t.Errorf("error = %v, want ErrNotLinked", err)
		}
	})

	t.Run("list carries the student record", func(t *testing.T) {
		entries, err := svc.ListStudents(ctx, collegeID, nil, 1, 20)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 1 {
			t.Fatalf("got %d entries, want 1", len(entries))
		}
		if entries[0].Student == nil || entries[0].Student.ID != studentID {
			t.Errorf("student edge not loaded: %+v", entries[0])
		}

		verified := "verified"
		entries, err = svc.ListStudents(ctx, collegeID, &verified, 1, 20)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 1 {
			t.Errorf("verified filter: got %d, want 1", len(entries))
		}

		pending := "pending"
		entries, err = svc.ListStudents(ctx, collegeID, &pending, 1, 20)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(entries) != 0 {
			t.Errorf("pending filter: got %d, want 0", len(entries))
		}
	})

	t.Run("remove", func(t *testing.T) {
		if err := svc.RemoveStudent(ctx, collegeID, studentID); err != nil {
			t.Fatalf("remove: %v", err)
		}
		if err := svc.RemoveStudent(ctx, collegeID, studentID); !errors.Is(err, ErrNotLinked) {
			t.Errorf("second remove: error = %v, want ErrNotLinked", err)
		}
	})
}

func TestDashboard(t *testing.T) {
	db := newTestClient(t)
	svc := New(db)
	ctx := context.Background()

	collegeID := createUser(t, db, "dash@college.test", "college")
	verifiedStudent := createUser(t, db, "v@student.test", "student")
	pendingStudent := createUser(t, db, "p@student.test", "student")
	companyID := createUser(t, db, "dash@company.test", "company")

	for _, link := range []struct {
		student uuid.UUID
		status  entcs.VerificationStatus
	}{
		{verifiedStudent, entcs.VerificationStatusVerified},
		{pendingStudent, entcs.VerificationStatusPending},
	} {
		if _, err := db.CollegeStudent.Create().
			SetCollegeID(collegeID).
			SetStudentID(link.student).
			SetVerificationStatus(link.status).
			Save(ctx); err != nil {
			t.Fatalf("create link: %v", err)
		}
	}

	in, err := db.Internship.Create().
		SetCompanyID(companyID).
		SetTitle("Dashboard Intern").
		Save(ctx)
	if err != nil {
		t.Fatalf("create internship: %v", err)
	}
	if _, err := db.Application.Create().
		SetStudentID(verifiedStudent).
		SetInternshipID(in.ID).
		SetStatus("selected").
		SetAppliedAt(time.Now()).
		Save(ctx); err != nil {
		t.Fatalf("create application: %v", err)
	}
	// Applications from unverified students are not counted.
	if _, err := db.Application.Create().
		SetStudentID(pendingStudent).
		SetInternshipID(in.ID).
		SetAppliedAt(time.Now()).
		Save(ctx); err != nil {
		t.Fatalf("create application: %v", err)
	}

	d, err := svc.GetDashboard(ctx, collegeID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.VerifiedStudents != 1 {
		t.Errorf("verified = %d, want 1", d.VerifiedStudents)
	}
	if d.PendingVerifications != 1 {
		t.Errorf("pending = %d, want 1", d.PendingVerifications)
	}
	if d.TotalApplications != 1 {
		t.Errorf("applications = %d, want 1", d.TotalApplications)
	}
	if d.SelectedStudents != 1 {
		t.Errorf("selected = %d, want 1", d.SelectedStudents)
	}
}

func strPtr(s string) *string { return &s }
