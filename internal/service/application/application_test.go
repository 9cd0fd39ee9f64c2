package application

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/internlink/internlink_backend/internal/events"
	"github.com/internlink/internlink_backend/internal/repo"
	entapp "github.com/internlink/internlink_backend/internal/repo/application"
	"github.com/internlink/internlink_backend/internal/repo/enttest"
)

func newTestClient(t *testing.T) *repo.Client {
	t.Helper()
	client := enttest.Open(t, dialect.SQLite,
		fmt.Sprintf("file:%s?mode=memory&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })
	return client
}

func newTestService(db *repo.Client) Service {
	return New(db, nil, events.NewPublisher(nil))
}

type fixture struct {
	company    uuid.UUID
	student    uuid.UUID
	internship uuid.UUID
}

func setup(t *testing.T, db *repo.Client) fixture {
	t.Helper()
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

	st, err := db.User.Create().
		SetEmail("student@test.local").
		SetPasswordHash("x").
		SetUserType("student").
		Save(ctx)
	if err != nil {
		t.Fatalf("create student user: %v", err)
	}

	in, err := db.Internship.Create().
		SetCompanyID(co.ID).
		SetTitle("Backend Intern").
		Save(ctx)
	if err != nil {
		t.Fatalf("create internship: %v", err)
	}

	return fixture{company: co.ID, student: st.ID, internship: in.ID}
}

func TestApply(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		db := newTestClient(t)
		svc := newTestService(db)
		f := setup(t, db)

		app, err := svc.Apply(ctx, f.student, ApplyRequest{
			InternshipID: f.internship,
			CoverLetter:  strPtr("Hi"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if app.Status != entapp.StatusPending {
			t.Errorf("status = %v, want pending", app.Status)
		}
		if app.AppliedAt == nil {
			t.Error("applied_at not set")
		}
	})

	t.Run("duplicate apply conflicts", func(t *testing.T) {
		db := newTestClient(t)
		svc := newTestService(db)
		f := setup(t, db)

		if _, err := svc.Apply(ctx, f.student, ApplyRequest{InternshipID: f.internship}); err != nil {
			t.Fatalf("first apply: %v", err)
		}
		_, err := svc.Apply(ctx, f.student, ApplyRequest{InternshipID: f.internship})
		if !errors.Is(err, ErrAlreadyApplied) {
			t.Errorf("error = %v, want ErrAlreadyApplied", err)
		}
	})

	t.Run("closed posting rejects applications", func(t *testing.T) {
		db := newTestClient(t)
		svc := newTestService(db)
		f := setup(t, db)

		if _, err := db.Internship.UpdateOneID(f.internship).
			SetStatus("closed").
			Save(ctx); err != nil {
			t.Fatalf("close internship: %v", err)
		}
		_, err := svc.Apply(ctx, f.student, ApplyRequest{InternshipID: f.internship})
		if !errors.Is(err, ErrInternshipClosed) {
			t.Errorf("error = %v, want ErrInternshipClosed", err)
		}
	})

	t.Run("past deadline rejects applications", func(t *testing.T) {
		db := newTestClient(t)
		svc := newTestService(db)
		f := setup(t, db)

		past := time.Now().Add(-time.Hour)
		if _, err := db.Internship.UpdateOneID(f.internship).
			SetApplicationDeadline(past).
			Save(ctx); err != nil {
			t.Fatalf("set deadline: %v", err)
		}
		_, err := svc.Apply(ctx, f.student, ApplyRequest{InternshipID: f.internship})
		if !errors.Is(err, ErrInternshipClosed) {
			t.Errorf("error = %v, want ErrInternshipClosed", err)
		}
	})

	t.Run("unapproved company looks missing", func(t *testing.T) {
		db := newTestClient(t)
		svc := newTestService(db)
		f := setup(t, db)

		if _, err := db.CompanyProfile.Update().
			SetApproved(false).
			Save(ctx); err != nil {
			t.Fatalf("unapprove company: %v", err)
		}
		_, err := svc.Apply(ctx, f.student, ApplyRequest{InternshipID: f.internship})
		if !errors.Is(err, ErrInternshipNotFound) {
			t.Errorf("error = %v, want ErrInternshipNotFound", err)
		}
	})

	t.Run("missing posting", func(t *testing.T) {
		db := newTestClient(t)
		svc := newTestService(db)
		f := setup(t, db)

		_, err := svc.Apply(ctx, f.student, ApplyRequest{InternshipID: uuid.New()})
		if !errors.Is(err, ErrInternshipNotFound) {
			t.Errorf("error = %v, want ErrInternshipNotFound", err)
		}
	})
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	db := newTestClient(t)
	svc := newTestService(db)
	f := setup(t, db)

	app, err := svc.Apply(ctx, f.student, ApplyRequest{InternshipID: f.internship})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	t.Run("owner sees posting edge", func(t *testing.T) {
		got, err := svc.Get(ctx, f.student, app.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != app.ID {
			t.Errorf("id = %s, want %s", got.ID, app.ID)
		}
		if got.Edges.Internship == nil || got.Edges.Internship.ID != f.internship {
			t.Error("internship edge not loaded")
		}
	})

	t.Run("foreign application", func(t *testing.T) {
		if _, err := svc.Get(ctx, f.company, app.ID); !errors.Is(err, ErrNotOwner) {
			t.Errorf("err = %v, want ErrNotOwner", err)
		}
	})

	t.Run("missing application", func(t *testing.T) {
		if _, err := svc.Get(ctx, f.student, uuid.Must(uuid.NewV7())); !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}

func TestWithdraw(t *testing.T) {
	ctx := context.Background()

	t.Run("pending application can be withdrawn", func(t *testing.T) {
		db := newTestClient(t)
		svc := newTestService(db)
		f := setup(t, db)

		app, err := svc.Apply(ctx, f.student, ApplyRequest{InternshipID: f.internship})
		if err != nil {
			t.Fatalf("apply: %v", err)
		}
		if err := svc.Withdraw(ctx, f.student, app.ID); err != nil {
			t.Fatalf("withdraw: %v", err)
		}
		if _, err := db.Application.Get(ctx, app.ID); !repo.IsNotFound(err) {
			t.Errorf("application still present, err = %v", err)
		}
	})

	t.Run("decided application stays", func(t *testing.T) {
		db := newTestClient(t)
		svc := newTestService(db)
		f := setup(t, db)

		app, err := svc.Apply(ctx, f.student, ApplyRequest{InternshipID: f.internship})
		if err != nil {
			t.Fatalf("apply: %v", err)
		}
		if _, err := svc.UpdateStatus(ctx, f.company, app.ID, "selected"); err != nil {
			t.Fatalf("update status: %v", err)
		}
		if err := svc.Withdraw(ctx, f.student, app.ID); !errors.Is(err, ErrNotWithdrawable) {
			t.Errorf("error = %v, want ErrNotWithdrawable", err)
		}
	})

	t.Run("only the applicant may withdraw", func(t *testing.T) {
		db := newTestClient(t)
		svc := newTestService(db)
		f := setup(t, db)

		app, err := svc.Apply(ctx, f.student, ApplyRequest{InternshipID: f.internship})
		if err != nil {
			t.Fatalf("apply: %v", err)
		}
		if err := svc.Withdraw(ctx, uuid.New(), app.ID); !errors.Is(err, ErrNotOwner) {
			t.Errorf("error = %v, want ErrNotOwner", err)
		}
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("company decides", func(t *testing.T) {
		db := newTestClient(t)
		svc := newTestService(db)
		f := setup(t, db)

		app, err := svc.Apply(ctx, f.student, ApplyRequest{InternshipID: f.internship})
		if err != nil {
			t.Fatalf("apply: %v", err)
		}

		out, err := svc.UpdateStatus(ctx, f.company, app.ID, "shortlisted")
		if err != nil {
			t.Fatalf("update status: %v", err)
		}
		if out.Status != entapp.StatusShortlisted {
			t.Errorf("status = %v, want shortlisted", out.Status)
		}

		// A decision can be revised.
		out, err = svc.UpdateStatus(ctx, f.company, app.ID, "rejected")
		if err != nil {
			t.Fatalf("revise status: %v", err)
		}
		if out.Status != entapp.StatusRejected {
			t.Errorf("status = %v, want rejected", out.Status)
		}
	})

	t.Run("pending is not a decision", func(t *testing.T) {
		db := newTestClient(t)
		svc := newTestService(db)
		f := setup(t, db)

		app, err := svc.Apply(ctx, f.student, ApplyRequest{InternshipID: f.internship})
		if err != nil {
			t.Fatalf("apply: %v", err)
		}
		if _, err := svc.UpdateStatus(ctx, f.company, app.ID, "pending"); !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("error = %v, want ErrInvalidStatus", err)
		}
		if _, err := svc.UpdateStatus(ctx, f.company, app.ID, "hired"); !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("unknown status: error = %v, want ErrInvalidStatus", err)
		}
	})

	t.Run("only the posting company decides", func(t *testing.T) {
		db := newTestClient(t)
		svc := newTestService(db)
		f := setup(t, db)

		app, err := svc.Apply(ctx, f.student, ApplyRequest{InternshipID: f.internship})
		if err != nil {
			t.Fatalf("apply: %v", err)
		}
		if _, err := svc.UpdateStatus(ctx, uuid.New(), app.ID, "selected"); !errors.Is(err, ErrNotInternshipOwner) {
			t.Errorf("error = %v, want ErrNotInternshipOwner", err)
		}
	})
}

func TestListing(t *testing.T) {
	ctx := context.Background()
	db := newTestClient(t)
	svc := newTestService(db)
	f := setup(t, db)

	app, err := svc.Apply(ctx, f.student, ApplyRequest{InternshipID: f.internship})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if _, err := svc.UpdateStatus(ctx, f.company, app.ID, "shortlisted"); err != nil {
		t.Fatalf("update status: %v", err)
	}

	t.Run("student sees own applications with posting", func(t *testing.T) {
		list, err := svc.ListForStudent(ctx, f.student, 1, 20)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 1 {
			t.Fatalf("got %d applications, want 1", len(list))
		}
		if list[0].Edges.Internship == nil {
			t.Error("internship edge not loaded")
		}
	})

	t.Run("company filters by status", func(t *testing.T) {
		list, err := svc.ListForInternship(ctx, f.company, f.internship,
			StatusFilter{Status: strPtr("shortlisted")}, 1, 20)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 1 {
			t.Errorf("got %d applications, want 1", len(list))
		}

		list, err = svc.ListForInternship(ctx, f.company, f.internship,
			StatusFilter{Status: strPtr("selected")}, 1, 20)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 0 {
			t.Errorf("got %d applications, want 0", len(list))
		}

		if _, err := svc.ListForInternship(ctx, f.company, f.internship,
			StatusFilter{Status: strPtr("bogus")}, 1, 20); !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("error = %v, want ErrInvalidStatus", err)
		}
	})

	t.Run("other companies cannot list", func(t *testing.T) {
		if _, err := svc.ListForInternship(ctx, uuid.New(), f.internship,
			StatusFilter{}, 1, 20); !errors.Is(err, ErrNotInternshipOwner) {
			t.Errorf("error = %v, want ErrNotInternshipOwner", err)
		}
	})
}

func strPtr(s string) *string { return &s }
