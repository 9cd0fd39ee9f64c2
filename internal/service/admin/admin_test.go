package admin

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	casbin "github.com/casbin/casbin/v2"
	fileadapter "github.com/casbin/casbin/v2/persist/file-adapter"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/internlink/internlink_backend/config"
	"github.com/internlink/internlink_backend/internal/events"
	"github.com/internlink/internlink_backend/internal/repo"
	entapp "github.com/internlink/internlink_backend/internal/repo/application"
	"github.com/internlink/internlink_backend/internal/repo/enttest"
	entintern "github.com/internlink/internlink_backend/internal/repo/internship"
	entuser "github.com/internlink/internlink_backend/internal/repo/user"
	"github.com/internlink/internlink_backend/pkg/authorize"
	"github.com/internlink/internlink_backend/pkg/database"
)

func newTestClient(t *testing.T) *repo.Client {
	t.Helper()
	client := enttest.Open(t, dialect.SQLite,
		fmt.Sprintf("file:%s?mode=memory&_fk=1", t.Name()))
	t.Cleanup(func() { client.Close() })
	return client
}

func newTestAuth(t *testing.T) authorize.IAuthorization {
	t.Helper()

	tmpDir := t.TempDir()
	modelPath := filepath.Join(tmpDir, "model.conf")
	modelContent := `[request_definition]
r = sub, dom, obj, act

[policy_definition]
p = sub, dom, obj, act, eft

[role_definition]
g = _, _, _
g2 = _, _

[policy_effect]
e = some(where (p.eft == allow)) && !some(where (p.eft == deny))

[matchers]
m = (g(r.sub, p.sub, r.dom) || g2(r.sub, p.sub)) && (p.dom == "*" || p.dom == r.dom) && (p.obj == "*" || keyMatch2(r.obj, p.obj)) && (p.act == "*" || keyMatch(r.act, p.act))
`
	if err := os.WriteFile(modelPath, []byte(modelContent), 0644); err != nil {
		t.Fatalf("write model file: %v", err)
	}
	policyPath := filepath.Join(tmpDir, "policy.csv")
	if err := os.WriteFile(policyPath, []byte(""), 0644); err != nil {
		t.Fatalf("write policy file: %v", err)
	}

	e, err := casbin.NewDistributedEnforcer(modelPath, fileadapter.NewAdapter(policyPath))
	if err != nil {
		t.Fatalf("create enforcer: %v", err)
	}
	e.EnableAutoSave(false)

	auth, err := authorize.NewAuthorization(e)
	if err != nil {
		t.Fatalf("create authorization: %v", err)
	}
	return auth
}

func newTestService(t *testing.T, db *repo.Client) Service {
	t.Helper()
	return New(db, nil, events.NewPublisher(nil), newTestAuth(t), &config.Config{})
}

func createUser(t *testing.T, db *repo.Client, email string, userType entuser.UserType) *repo.User {
	t.Helper()
	u, err := db.User.Create().
		SetEmail(email).
		SetPasswordHash("x").
		SetUserType(userType).
		Save(context.Background())
	if err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return u
}

func createCompany(t *testing.T, db *repo.Client, email string, approved bool) *repo.User {
	t.Helper()
	u := createUser(t, db, email, entuser.UserTypeCompany)
	c := db.CompanyProfile.Create().
		SetUserID(u.ID).
		SetCompanyName("Co " + email).
		SetApproved(approved)
	if approved {
		c = c.SetApprovedAt(time.Now())
	}
	if _, err := c.Save(context.Background()); err != nil {
		t.Fatalf("create company profile: %v", err)
	}
	return u
}

func TestListUsers(t *testing.T) {
	db := newTestClient(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	createUser(t, db, "a@test.local", entuser.UserTypeStudent)
	createUser(t, db, "b@test.local", entuser.UserTypeCompany)
	createUser(t, db, "root@test.local", entuser.UserTypeAdmin)

	users, total, err := svc.ListUsers(ctx, UserFilter{}, 1, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 3 || len(users) != 3 {
		t.Errorf("got %d/%d users, want 3/3", len(users), total)
	}

	studentType := "student"
	users, total, err = svc.ListUsers(ctx, UserFilter{UserType: &studentType}, 1, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 || len(users) != 1 {
		t.Errorf("type filter: got %d/%d, want 1/1", len(users), total)
	}

	search := "ROOT"
	users, total, err = svc.ListUsers(ctx, UserFilter{Search: &search}, 1, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 {
		t.Errorf("search filter: total = %d, want 1", total)
	}
	if len(users) == 1 && users[0].Email != "root@test.local" {
		t.Errorf("search found %s", users[0].Email)
	}
}

func TestGetUser(t *testing.T) {
	db := newTestClient(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	t.Run("company with profile", func(t *testing.T) {
		company := createCompany(t, db, "c@test.local", true)

		detail, err := svc.GetUser(ctx, company.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if detail.User.ID != company.ID {
			t.Errorf("user id = %s, want %s", detail.User.ID, company.ID)
		}
		if detail.Company == nil || !detail.Company.Approved {
			t.Errorf("company profile = %+v, want approved profile", detail.Company)
		}
		if detail.Student != nil || detail.College != nil {
			t.Error("unexpected cross-role profile loaded")
		}
	})

	t.Run("student without profile", func(t *testing.T) {
		student := createUser(t, db, "s@test.local", entuser.UserTypeStudent)

		detail, err := svc.GetUser(ctx, student.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if detail.Student != nil {
			t.Errorf("student profile = %+v, want nil", detail.Student)
		}
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := svc.GetUser(ctx, uuid.Must(uuid.NewV7()))
		if !errors.Is(err, ErrUserNotFound) {
			t.Errorf("err = %v, want ErrUserNotFound", err)
		}
	})
}

func TestListAllCatalog(t *testing.T) {
	db := newTestClient(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	student := createUser(t, db, "s@test.local", entuser.UserTypeStudent)
	company := createCompany(t, db, "c@test.local", true)

	in, err := db.Internship.Create().
		SetCompanyID(company.ID).
		SetTitle("Backend Intern").
		SetStatus(entintern.StatusClosed).
		Save(ctx)
	if err != nil {
		t.Fatalf("create internship: %v", err)
	}
	if _, err := db.Application.Create().
		SetStudentID(student.ID).
		SetInternshipID(in.ID).
		SetAppliedAt(time.Now()).
		Save(ctx); err != nil {
		t.Fatalf("create application: %v", err)
	}

	t.Run("internships include closed", func(t *testing.T) {
		list, err := svc.ListAllInternships(ctx, 1, 20)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 1 {
			t.Fatalf("got %d internships, want 1", len(list))
		}
		if list[0].Edges.Company == nil {
			t.Error("company edge not loaded")
		}
	})

	t.Run("applications load edges", func(t *testing.T) {
		list, err := svc.ListAllApplications(ctx, 1, 20)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 1 {
			t.Fatalf("got %d applications, want 1", len(list))
		}
		if list[0].Edges.Student == nil || list[0].Edges.Internship == nil {
			t.Error("student/internship edges not loaded")
		}
	})
}

func TestCreateAdmin(t *testing.T) {
	db := newTestClient(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	u, err := svc.CreateAdmin(ctx, CreateAdminRequest{
		Email:    "  Admin@Test.Local ",
		Password: "long-enough-pass",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Email != "admin@test.local" {
		t.Errorf("email = %q, want lowercased trimmed", u.Email)
	}
	if u.UserType != entuser.UserTypeAdmin {
		t.Errorf("user_type = %v, want admin", u.UserType)
	}

	if _, err := svc.CreateAdmin(ctx, CreateAdminRequest{
		Email:    "admin@test.local",
		Password: "long-enough-pass",
	}); !errors.Is(err, ErrEmailAlreadyExists) {
		t.Errorf("duplicate: error = %v, want ErrEmailAlreadyExists", err)
	}

	if _, err := svc.CreateAdmin(ctx, CreateAdminRequest{
		Email:    "short@test.local",
		Password: "short",
	}); !errors.Is(err, ErrPasswordTooShort) {
		t.Errorf("short password: error = %v, want ErrPasswordTooShort", err)
	}
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("student cascade", func(t *testing.T) {
		db := newTestClient(t)
		svc := newTestService(t, db)

		student := createUser(t, db, "s@test.local", entuser.UserTypeStudent)
		if _, err := db.StudentProfile.Create().
			SetUserID(student.ID).
			SetFirstName("S").
			Save(ctx); err != nil {
			t.Fatalf("create profile: %v", err)
		}

		company := createCompany(t, db, "c@test.local", true)
		in, err := db.Internship.Create().
			SetCompanyID(company.ID).
			SetTitle("Intern").
			Save(ctx)
		if err != nil {
			t.Fatalf("create internship: %v", err)
		}
		if _, err := db.Application.Create().
			SetStudentID(student.ID).
			SetInternshipID(in.ID).
			SetAppliedAt(time.Now()).
			Save(ctx); err != nil {
			t.Fatalf("create application: %v", err)
		}

		college := createUser(t, db, "col@test.local", entuser.UserTypeCollege)
		if _, err := db.CollegeStudent.Create().
			SetCollegeID(college.ID).
			SetStudentID(student.ID).
			Save(ctx); err != nil {
			t.Fatalf("create roster entry: %v", err)
		}

		if err := svc.DeleteUser(ctx, student.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}

		if _, err := db.User.Get(ctx, student.ID); !repo.IsNotFound(err) {
			t.Errorf("user still present, err = %v", err)
		}
		if n := db.Application.Query().CountX(ctx); n != 0 {
			t.Errorf("applications left: %d", n)
		}
		if n := db.StudentProfile.Query().CountX(ctx); n != 0 {
			t.Errorf("profiles left: %d", n)
		}
		if n := db.CollegeStudent.Query().CountX(ctx); n != 0 {
			t.Errorf("roster entries left: %d", n)
		}
		// The internship belongs to the company and survives.
		if n := db.Internship.Query().CountX(ctx); n != 1 {
			t.Errorf("internships = %d, want 1", n)
		}
	})

	t.Run("company cascade takes postings and applications", func(t *testing.T) {
		db := newTestClient(t)
		svc := newTestService(t, db)

		company := createCompany(t, db, "c2@test.local", true)
		student := createUser(t, db, "s2@test.local", entuser.UserTypeStudent)
		in, err := db.Internship.Create().
			SetCompanyID(company.ID).
			SetTitle("Intern").
			Save(ctx)
		if err != nil {
			t.Fatalf("create internship: %v", err)
		}
		if _, err := db.Application.Create().
			SetStudentID(student.ID).
			SetInternshipID(in.ID).
			SetAppliedAt(time.Now()).
			Save(ctx); err != nil {
			t.Fatalf("create application: %v", err)
		}

		if err := svc.DeleteUser(ctx, company.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}

		if n := db.Internship.Query().CountX(ctx); n != 0 {
			t.Errorf("internships left: %d", n)
		}
		if n := db.Application.Query().CountX(ctx); n != 0 {
			t.Errorf("applications left: %d", n)
		}
		if n := db.CompanyProfile.Query().CountX(ctx); n != 0 {
			t.Errorf("company profiles left: %d", n)
		}
		// The student account is untouched.
		if _, err := db.User.Get(ctx, student.ID); err != nil {
			t.Errorf("student gone: %v", err)
		}
	})

	t.Run("failed cascade rolls back completely", func(t *testing.T) {
		db := newTestClient(t)

		company := createCompany(t, db, "c3@test.local", true)
		student := createUser(t, db, "s3@test.local", entuser.UserTypeStudent)
		in, err := db.Internship.Create().
			SetCompanyID(company.ID).
			SetTitle("Intern").
			Save(ctx)
		if err != nil {
			t.Fatalf("create internship: %v", err)
		}
		if _, err := db.Application.Create().
			SetStudentID(student.ID).
			SetInternshipID(in.ID).
			SetAppliedAt(time.Now()).
			Save(ctx); err != nil {
			t.Fatalf("create application: %v", err)
		}

		// Run the real cascade, then fail before commit.
		boom := errors.New("boom")
		err = database.WithTx(ctx, db, func(tx *repo.Tx) error {
			if err := deleteUserCascade(ctx, tx, company); err != nil {
				return err
			}
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("error = %v, want the injected failure", err)
		}

		if n := db.User.Query().CountX(ctx); n != 2 {
			t.Errorf("users = %d, want 2", n)
		}
		if n := db.CompanyProfile.Query().CountX(ctx); n != 1 {
			t.Errorf("company profiles = %d, want 1", n)
		}
		if n := db.Internship.Query().CountX(ctx); n != 1 {
			t.Errorf("internships = %d, want 1", n)
		}
		if n := db.Application.Query().CountX(ctx); n != 1 {
			t.Errorf("applications = %d, want 1", n)
		}
	})

	t.Run("admins are protected", func(t *testing.T) {
		db := newTestClient(t)
		svc := newTestService(t, db)

		admin := createUser(t, db, "root@test.local", entuser.UserTypeAdmin)
		if err := svc.DeleteUser(ctx, admin.ID); !errors.Is(err, ErrCannotDeleteAdmin) {
			t.Errorf("error = %v, want ErrCannotDeleteAdmin", err)
		}
		if err := svc.DeleteUser(ctx, uuid.New()); !errors.Is(err, ErrUserNotFound) {
			t.Errorf("missing: error = %v, want ErrUserNotFound", err)
		}
	})
}

func TestCompanyApproval(t *testing.T) {
	ctx := context.Background()

	t.Run("approve is idempotent", func(t *testing.T) {
		db := newTestClient(t)
		svc := newTestService(t, db)

		company := createCompany(t, db, "pending@test.local", false)

		pending, err := svc.ListPendingCompanies(ctx, 1, 20)
		if err != nil {
			t.Fatalf("list pending: %v", err)
		}
		if len(pending) != 1 {
			t.Fatalf("pending = %d, want 1", len(pending))
		}

		cp, err := svc.ApproveCompany(ctx, company.ID)
		if err != nil {
			t.Fatalf("approve: %v", err)
		}
		if !cp.Approved || cp.ApprovedAt == nil {
			t.Errorf("not approved: %+v", cp)
		}
		firstApprovedAt := *cp.ApprovedAt

		cp, err = svc.ApproveCompany(ctx, company.ID)
		if err != nil {
			t.Fatalf("second approve: %v", err)
		}
		if cp.ApprovedAt == nil || !cp.ApprovedAt.Equal(firstApprovedAt) {
			t.Errorf("second approve changed approved_at")
		}

		pending, err = svc.ListPendingCompanies(ctx, 1, 20)
		if err != nil {
			t.Fatalf("list pending: %v", err)
		}
		if len(pending) != 0 {
			t.Errorf("pending = %d, want 0", len(pending))
		}
	})

	t.Run("reject removes the registration", func(t *testing.T) {
		db := newTestClient(t)
		svc := newTestService(t, db)

		company := createCompany(t, db, "reject@test.local", false)
		in, err := db.Internship.Create().
			SetCompanyID(company.ID).
			SetTitle("Never happened").
			Save(ctx)
		if err != nil {
			t.Fatalf("create internship: %v", err)
		}
		student := createUser(t, db, "s@test.local", entuser.UserTypeStudent)
		if _, err := db.Application.Create().
			SetStudentID(student.ID).
			SetInternshipID(in.ID).
			SetAppliedAt(time.Now()).
			Save(ctx); err != nil {
			t.Fatalf("create application: %v", err)
		}

		if err := svc.RejectCompany(ctx, company.ID); err != nil {
			t.Fatalf("reject: %v", err)
		}

		if _, err := db.User.Get(ctx, company.ID); !repo.IsNotFound(err) {
			t.Errorf("company user still present, err = %v", err)
		}
		if n := db.CompanyProfile.Query().CountX(ctx); n != 0 {
			t.Errorf("profiles left: %d", n)
		}
		if n := db.Internship.Query().CountX(ctx); n != 0 {
			t.Errorf("internships left: %d", n)
		}
		if n := db.Application.Query().CountX(ctx); n != 0 {
			t.Errorf("applications left: %d", n)
		}
	})

	t.Run("reject refuses non-companies", func(t *testing.T) {
		db := newTestClient(t)
		svc := newTestService(t, db)

		student := createUser(t, db, "s3@test.local", entuser.UserTypeStudent)
		if err := svc.RejectCompany(ctx, student.ID); !errors.Is(err, ErrCompanyNotFound) {
			t.Errorf("error = %v, want ErrCompanyNotFound", err)
		}
		if _, err := svc.ApproveCompany(ctx, uuid.New()); !errors.Is(err, ErrCompanyNotFound) {
			t.Errorf("approve missing: error = %v, want ErrCompanyNotFound", err)
		}
	})
}

func TestStatsAndReports(t *testing.T) {
	db := newTestClient(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	student := createUser(t, db, "s@test.local", entuser.UserTypeStudent)
	student2 := createUser(t, db, "s2@test.local", entuser.UserTypeStudent)
	createUser(t, db, "col@test.local", entuser.UserTypeCollege)
	company := createCompany(t, db, "c@test.local", true)
	createCompany(t, db, "p@test.local", false)

	in, err := db.Internship.Create().
		SetCompanyID(company.ID).
		SetTitle("Intern").
		Save(ctx)
	if err != nil {
		t.Fatalf("create internship: %v", err)
	}
	if _, err := db.Application.Create().
		SetStudentID(student.ID).
		SetInternshipID(in.ID).
		SetStatus(entapp.StatusSelected).
		SetAppliedAt(time.Now()).
		Save(ctx); err != nil {
		t.Fatalf("create application: %v", err)
	}
	if _, err := db.Application.Create().
		SetStudentID(student2.ID).
		SetInternshipID(in.ID).
		SetAppliedAt(time.Now()).
		Save(ctx); err != nil {
		t.Fatalf("create application: %v", err)
	}

	t.Run("stats", func(t *testing.T) {
		stats, err := svc.GetStats(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := Stats{
			Students:         2,
			Companies:        2,
			Colleges:         1,
			Internships:      1,
			Applications:     2,
			PendingCompanies: 1,
		}
		if *stats != want {
			t.Errorf("stats = %+v, want %+v", *stats, want)
		}
	})

	t.Run("applications by status", func(t *testing.T) {
		rows, err := svc.ReportApplicationsByStatus(ctx, nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		counts := map[string]int{}
		for _, r := range rows {
			counts[r.Status] = r.Count
		}
		if counts["pending"] != 1 || counts["selected"] != 1 {
			t.Errorf("counts = %v", counts)
		}

		// A window in the future catches nothing.
		from := time.Now().Add(time.Hour)
		rows, err = svc.ReportApplicationsByStatus(ctx, &from, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 0 {
			t.Errorf("future window: rows = %v", rows)
		}
	})

	t.Run("companies report covers approved only", func(t *testing.T) {
		reports, err := svc.ReportCompanies(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(reports) != 1 {
			t.Fatalf("reports = %d, want 1", len(reports))
		}
		r := reports[0]
		if r.CompanyUserID != company.ID {
			t.Errorf("company = %v, want %v", r.CompanyUserID, company.ID)
		}
		if r.InternshipCount != 1 || r.ApplicationCount != 2 || r.SelectedCount != 1 {
			t.Errorf("report = %+v", r)
		}
	})
}

func TestDemoData(t *testing.T) {
	db := newTestClient(t)
	svc := newTestService(t, db)
	ctx := context.Background()

	// Real data that the demo sweep must not touch.
	keeper := createUser(t, db, "keeper@real.test", entuser.UserTypeStudent)

	if err := svc.ImportDemoData(ctx); err != nil {
		t.Fatalf("import: %v", err)
	}

	demoUsers := db.User.Query().
		Where(entuser.EmailHasSuffix("@" + demoEmailDomain)).
		CountX(ctx)
	if demoUsers != 5 {
		t.Errorf("demo users = %d, want 5", demoUsers)
	}
	if n := db.Internship.Query().CountX(ctx); n != 2 {
		t.Errorf("demo internships = %d, want 2", n)
	}
	if n := db.Application.Query().CountX(ctx); n != 1 {
		t.Errorf("demo applications = %d, want 1", n)
	}

	// Second import is a no-op.
	if err := svc.ImportDemoData(ctx); err != nil {
		t.Fatalf("second import: %v", err)
	}
	if n := db.User.Query().CountX(ctx); n != 6 {
		t.Errorf("users after second import = %d, want 6", n)
	}

	if err := svc.DeleteDemoData(ctx); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n := db.User.Query().
		Where(entuser.EmailHasSuffix("@" + demoEmailDomain)).
		CountX(ctx); n != 0 {
		t.Errorf("demo users left: %d", n)
	}
	if n := db.Internship.Query().CountX(ctx); n != 0 {
		t.Errorf("internships left: %d", n)
	}
	if _, err := db.User.Get(ctx, keeper.ID); err != nil {
		t.Errorf("real user swept away: %v", err)
	}

	// Deleting twice is fine.
	if err := svc.DeleteDemoData(ctx); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}
