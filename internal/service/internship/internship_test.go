package internship

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
	entapp "github.com/internlink/internlink_backend/internal/repo/application"
	"github.com/internlink/internlink_backend/internal/repo/enttest"
	entintern "github.com/internlink/internlink_backend/internal/repo/internship"
)

func newTestClient(t *testing.T) *repo.Client {
	t.Helper()
	client := enttest.Open(t, dialect.SQLite,
		fmt.Sprintf("file:%s?mode=memory&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })
	return client
}

func createCompany(t *testing.T, db *repo.Client, email string, approved bool) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	u, err := db.User.Create().
		SetEmail(email).
		SetPasswordHash("x").
		SetUserType("company").
		Save(ctx)
	if err != nil {
		t.Fatalf("create company user: %v", err)
	}

	c := db.CompanyProfile.Create().
		SetUserID(u.ID).
		SetCompanyName("Co " + email).
		SetApproved(approved)
	if approved {
		c = c.SetApprovedAt(time.Now())
	}
	if _, err := c.Save(ctx); err != nil {
		t.Fatalf("create company profile: %v", err)
	}
	return u.ID
}

func createStudent(t *testing.T, db *repo.Client, email string) uuid.UUID {
	t.Helper()
	u, err := db.User.Create().
		SetEmail(email).
		SetPasswordHash("x").
		SetUserType("student").
		Save(context.Background())
	if err != nil {
		t.Fatalf("create student user: %v", err)
	}
	return u.ID
}

func TestCreate(t *testing.T) {
	db := newTestClient(t)
	svc := New(db)
	ctx := context.Background()

	t.Run("approved company can post", func(t *testing.T) {
		companyID := createCompany(t, db, "approved@co.test", true)

		in, err := svc.Create(ctx, companyID, CreateRequest{
			Title:    "Backend Intern",
			WorkMode: "remote",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if in.CompanyID != companyID {
			t.Errorf("company_id = %v, want %v", in.CompanyID, companyID)
		}
		if in.Status != entintern.StatusOpen {
			t.Errorf("status = %v, want open", in.Status)
		}
	})

	t.Run("pending company cannot post", func(t *testing.T) {
		companyID := createCompany(t, db, "pending@co.test", false)

		_, err := svc.Create(ctx, companyID, CreateRequest{Title: "Ghost Intern"})
		if !errors.Is(err, ErrCompanyNotApproved) {
			t.Errorf("error = %v, want ErrCompanyNotApproved", err)
		}
	})
}

func TestListOpen(t *testing.T) {
	db := newTestClient(t)
	svc := New(db)
	ctx := context.Background()

	approvedCo := createCompany(t, db, "visible@co.test", true)
	pendingCo := createCompany(t, db, "hidden@co.test", false)

	open, err := svc.Create(ctx, approvedCo, CreateRequest{
		Title:    "Go Intern",
		Location: strPtr("Berlin"),
		WorkMode: "hybrid",
	})
	if err != nil {
		t.Fatalf("create open posting: %v", err)
	}
	closed, err := svc.Create(ctx, approvedCo, CreateRequest{Title: "Old Intern"})
	if err != nil {
		t.Fatalf("create posting: %v", err)
	}
	if _, err := svc.Close(ctx, approvedCo, closed.ID); err != nil {
		t.Fatalf("close posting: %v", err)
	}

	// A posting from an unapproved company, inserted directly since the
	// service refuses to create it.
	hidden, err := db.Internship.Create().
		SetCompanyID(pendingCo).
		SetTitle("Hidden Intern").
		Save(ctx)
	if err != nil {
		t.Fatalf("insert hidden posting: %v", err)
	}

	t.Run("only open postings from approved companies", func(t *testing.T) {
		list, err := svc.ListOpen(ctx, ListFilter{}, 1, 20)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 1 {
			t.Fatalf("got %d postings, want 1", len(list))
		}
		if list[0].ID != open.ID {
			t.Errorf("got %v, want %v", list[0].ID, open.ID)
		}
	})

	t.Run("filters narrow the catalog", func(t *testing.T) {
		list, err := svc.ListOpen(ctx, ListFilter{Location: strPtr("berl")}, 1, 20)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 1 {
			t.Errorf("location filter: got %d, want 1", len(list))
		}

		list, err = svc.ListOpen(ctx, ListFilter{WorkMode: strPtr("onsite")}, 1, 20)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 0 {
			t.Errorf("work mode filter: got %d, want 0", len(list))
		}
	})

	t.Run("hidden posting is a 404 on direct fetch", func(t *testing.T) {
		if _, err := svc.GetOpen(ctx, hidden.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("unapproved company: error = %v, want ErrNotFound", err)
		}
		if _, err := svc.GetOpen(ctx, closed.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("closed posting: error = %v, want ErrNotFound", err)
		}
		if _, err := svc.GetOpen(ctx, open.ID); err != nil {
			t.Errorf("open posting: unexpected error %v", err)
		}
	})
}

func TestOwnership(t *testing.T) {
	db := newTestClient(t)
	svc := New(db)
	ctx := context.Background()

	owner := createCompany(t, db, "owner@co.test", true)
	other := createCompany(t, db, "other@co.test", true)

	in, err := svc.Create(ctx, owner, CreateRequest{Title: "Data Intern"})
	if err != nil {
		t.Fatalf("create posting: %v", err)
	}

	if _, err := svc.Update(ctx, other, in.ID, UpdateRequest{Title: strPtr("Stolen")}); !errors.Is(err, ErrNotOwner) {
		t.Errorf("update: error = %v, want ErrNotOwner", err)
	}
	if _, err := svc.Close(ctx, other, in.ID); !errors.Is(err, ErrNotOwner) {
		t.Errorf("close: error = %v, want ErrNotOwner", err)
	}
	if err := svc.Delete(ctx, other, in.ID); !errors.Is(err, ErrNotOwner) {
		t.Errorf("delete: error = %v, want ErrNotOwner", err)
	}
	if _, err := svc.Update(ctx, owner, uuid.New(), UpdateRequest{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing id: error = %v, want ErrNotFound", err)
	}
}

func TestCloseReopen(t *testing.T) {
	db := newTestClient(t)
	svc := New(db)
	ctx := context.Background()

	companyID := createCompany(t, db, "cycle@co.test", true)
	in, err := svc.Create(ctx, companyID, CreateRequest{Title: "Cycle Intern"})
	if err != nil {
		t.Fatalf("create posting: %v", err)
	}

	closed, err := svc.Close(ctx, companyID, in.ID)
	if err != nil {
		t.Fatalf("close: %v", err)
	}
	if closed.Status != entintern.StatusClosed {
		t.Errorf("status = %v, want closed", closed.Status)
	}

	reopened, err := svc.Reopen(ctx, companyID, in.ID)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if reopened.Status != entintern.StatusOpen {
		t.Errorf("status = %v, want open", reopened.Status)
	}
}

func TestDeleteCascadesApplications(t *testing.T) {
	db := newTestClient(t)
	svc := New(db)
	ctx := context.Background()

	companyID := createCompany(t, db, "cascade@co.test", true)
	studentID := createStudent(t, db, "applicant@student.test")

	in, err := svc.Create(ctx, companyID, CreateRequest{Title: "Doomed Intern"})
	if err != nil {
		t.Fatalf("create posting: %v", err)
	}
	if _, err := db.Application.Create().
		SetStudentID(studentID).
		SetInternshipID(in.ID).
		SetAppliedAt(time.Now()).
		Save(ctx); err != nil {
		t.Fatalf("create application: %v", err)
	}

	if err := svc.Delete(ctx, companyID, in.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if n := db.Application.Query().Where(entapp.InternshipID(in.ID)).CountX(ctx); n != 0 {
		t.Errorf("applications left behind: %d", n)
	}
	if _, err := db.Internship.Get(ctx, in.ID); !repo.IsNotFound(err) {
		t.Errorf("internship still present, err = %v", err)
	}
}

func TestListMine(t *testing.T) {
	db := newTestClient(t)
	svc := New(db)
	ctx := context.Background()

	companyID := createCompany(t, db, "mine@co.test", true)
	for i := 0; i < 3; i++ {
		if _, err := svc.Create(ctx, companyID, CreateRequest{
			Title: fmt.Sprintf("Posting %d", i),
		}); err != nil {
			t.Fatalf("create posting %d: %v", i, err)
		}
	}
	// Closed postings still belong to the company view.
	list, err := svc.ListMine(ctx, companyID, 1, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 3 {
		t.Errorf("got %d postings, want 3", len(list))
	}
}

func TestStats(t *testing.T) {
	db := newTestClient(t)
	svc := New(db)
	ctx := context.Background()

	companyID := createCompany(t, db, "stats@co.test", true)
	otherCompany := createCompany(t, db, "other@co.test", true)
	s1 := createStudent(t, db, "s1@test.local")
	s2 := createStudent(t, db, "s2@test.local")

	busy, err := svc.Create(ctx, companyID, CreateRequest{Title: "Busy Intern"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	quiet, err := svc.Create(ctx, companyID, CreateRequest{Title: "Quiet Intern"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Close(ctx, companyID, quiet.ID); err != nil {
		t.Fatalf("close: %v", err)
	}
	foreign, err := svc.Create(ctx, otherCompany, CreateRequest{Title: "Foreign Intern"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	mustApply := func(student, internship uuid.UUID, status entapp.Status) {
		t.Helper()
		if _, err := db.Application.Create().
			SetStudentID(student).
			SetInternshipID(internship).
			SetStatus(status).
			SetAppliedAt(time.Now()).
			Save(ctx); err != nil {
			t.Fatalf("create application: %v", err)
		}
	}
	mustApply(s1, busy.ID, entapp.StatusPending)
	mustApply(s2, busy.ID, entapp.StatusSelected)
	mustApply(s1, quiet.ID, entapp.StatusShortlisted)
	mustApply(s2, foreign.ID, entapp.StatusPending)

	stats, err := svc.Stats(ctx, companyID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.TotalInternships != 2 || stats.OpenInternships != 1 || stats.ClosedInternships != 1 {
		t.Errorf("postings = %d/%d open/%d closed, want 2/1/1",
			stats.TotalInternships, stats.OpenInternships, stats.ClosedInternships)
	}
	if stats.TotalApplications != 3 {
		t.Errorf("total applications = %d, want 3 (foreign posting excluded)", stats.TotalApplications)
	}
	want := StatusCounts{Pending: 1, Shortlisted: 1, Selected: 1}
	if stats.ByStatus != want {
		t.Errorf("by status = %+v, want %+v", stats.ByStatus, want)
	}

	if len(stats.Postings) != 2 {
		t.Fatalf("got %d posting rows, want 2", len(stats.Postings))
	}
	if stats.Postings[0].InternshipID != busy.ID || stats.Postings[0].Applications != 2 {
		t.Errorf("first row = %+v, want the busier posting with 2 applications", stats.Postings[0])
	}
	if stats.Postings[1].ByStatus.Shortlisted != 1 {
		t.Errorf("quiet posting shortlisted = %d, want 1", stats.Postings[1].ByStatus.Shortlisted)
	}

	t.Run("no postings", func(t *testing.T) {
		empty := createCompany(t, db, "empty@co.test", true)
		stats, err := svc.Stats(ctx, empty)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.TotalInternships != 0 || len(stats.Postings) != 0 {
			t.Errorf("stats = %+v, want zero values", stats)
		}
	})
}

func strPtr(s string) *string { return &s }
